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

// Package humanize renders byte counts and second counts as short
// human-readable strings. Day-carrying durations go through a
// message.Printer so the day suffix follows the active language.
package humanize

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/avelev99/cpuinfo-app/pkg/report"
)

const (
	unitStep       = 1024.0
	secondsPerDay  = 86400
	secondsPerHour = 3600
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// Formatter renders numeric values for humans. Construct one with New,
// the zero value has no printer bound.
type Formatter struct {
	p *message.Printer
}

// New creates a Formatter bound to the given printer. A nil printer
// falls back to plain English output.
func New(p *message.Printer) *Formatter {
	if p == nil {
		p = message.NewPrinter(language.English)
	}
	return &Formatter{p: p}
}

// Bytes renders a byte count with binary 1024 steps, two decimal places
// and a short unit, for example "1.50 GB". Negative counts and NaN
// render as the unknown sentinel. Counts past the TB range stay in PB.
func (f *Formatter) Bytes(count float64) string {
	if math.IsNaN(count) || count < 0 {
		return report.Sentinel
	}
	size := count
	for _, unit := range byteUnits {
		if size < unitStep {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= unitStep
	}
	return fmt.Sprintf("%.2f PB", size)
}

// Duration renders a second count as "hh:mm:ss", prefixed with a
// localized day component once the count reaches a full day. Negative
// counts render as the unknown sentinel.
func (f *Formatter) Duration(seconds int64) string {
	if seconds < 0 {
		return report.Sentinel
	}
	days := seconds / secondsPerDay
	rem := seconds % secondsPerDay
	hours := rem / secondsPerHour
	minutes := rem % secondsPerHour / 60
	secs := rem % 60
	if days > 0 {
		// The day count goes through as preformatted text; the printer's
		// %d verb adds locale digit grouping past three digits.
		return f.p.Sprintf("%sd %02d:%02d:%02d", strconv.FormatInt(days, 10), hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
