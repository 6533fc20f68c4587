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

package defaults_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/avelev99/cpuinfo-app/pkg/defaults"
	"github.com/avelev99/cpuinfo-app/pkg/logging"
)

func TestSampleWindow(t *testing.T) {
	// The window is a human-perceptible delay on every run, so it has to
	// stay well under a second while remaining long enough for the usage
	// reading to mean anything.
	if defaults.SampleWindow < 10*time.Millisecond {
		t.Errorf("SampleWindow (%v) is too short to produce a stable reading", defaults.SampleWindow)
	}
	if defaults.SampleWindow > time.Second {
		t.Errorf("SampleWindow (%v) delays every invocation too long", defaults.SampleWindow)
	}
}

func TestLogLevelIsRecognized(t *testing.T) {
	if got := logging.ParseLevel(defaults.LogLevel); got != slog.LevelWarn {
		t.Errorf("ParseLevel(%q) = %v, want %v", defaults.LogLevel, got, slog.LevelWarn)
	}
}
