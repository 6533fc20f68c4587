// Copyright (c) 2026, cpuinfo-app authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package humanize

import (
	"math"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/avelev99/cpuinfo-app/pkg/i18n"
	"github.com/avelev99/cpuinfo-app/pkg/report"
)

func TestBytes(t *testing.T) {
	f := New(nil)

	tests := []struct {
		name  string
		count float64
		want  string
	}{
		{"negative", -1, report.Sentinel},
		{"nan", math.NaN(), report.Sentinel},
		{"zero", 0, "0.00 B"},
		{"below one kilobyte", 512, "512.00 B"},
		{"just below boundary", 1023, "1023.00 B"},
		{"exact kilobyte", 1024, "1.00 KB"},
		{"fractional kilobyte", 1536, "1.50 KB"},
		{"exact megabyte", 1 << 20, "1.00 MB"},
		{"eight gigabytes", 8 << 30, "8.00 GB"},
		{"exact terabyte", 1 << 40, "1.00 TB"},
		{"exact petabyte", 1 << 50, "1.00 PB"},
		{"past petabyte stays in petabytes", 1 << 60, "1024.00 PB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Bytes(tt.count); got != tt.want {
				t.Errorf("Bytes(%v) = %q, want %q", tt.count, got, tt.want)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	f := New(nil)

	tests := []struct {
		name    string
		seconds int64
		want    string
	}{
		{"negative", -1, report.Sentinel},
		{"zero", 0, "00:00:00"},
		{"under a minute", 59, "00:00:59"},
		{"mixed units", 3661, "01:01:01"},
		{"just below a day", 86399, "23:59:59"},
		{"exactly one day", 86400, "1d 00:00:00"},
		{"day and change", 90061, "1d 01:01:01"},
		{"several days", 5*86400 + 3*3600 + 2*60 + 1, "5d 03:02:01"},
		{"a thousand days", 1000 * 86400, "1000d 00:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Duration(tt.seconds); got != tt.want {
				t.Errorf("Duration(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestDurationLocalized(t *testing.T) {
	f := New(i18n.NewPrinter(language.Bulgarian))

	tests := []struct {
		name    string
		seconds int64
		want    string
	}{
		{"day suffix is translated", 86400, "1д 00:00:00"},
		{"several days", 2*86400 + 3600, "2д 01:00:00"},
		{"no day component stays plain", 3661, "01:01:01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Duration(tt.seconds); got != tt.want {
				t.Errorf("Duration(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

// Day counts render as plain digits in every locale: a localized printer
// must never group them into thousands, or the rendered string stops
// matching the seconds it was derived from.
func TestDurationLargeDayCounts(t *testing.T) {
	const seconds = 1000*86400 + 3661

	tests := []struct {
		name    string
		printer *message.Printer
		want    string
	}{
		{"default printer", nil, "1000d 01:01:01"},
		{"english catalog printer", i18n.NewPrinter(language.English), "1000d 01:01:01"},
		{"bulgarian catalog printer", i18n.NewPrinter(language.Bulgarian), "1000д 01:01:01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.printer).Duration(seconds); got != tt.want {
				t.Errorf("Duration(%d) = %q, want %q", seconds, got, tt.want)
			}
		})
	}
}
