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

package defaults

import "time"

// Collection defaults for probing the host.
const (
	// SampleWindow is the default window the usage probe observes CPU
	// utilization over. Longer windows smooth the reading at the cost of
	// runtime; the window is the only deliberate delay in a collection.
	SampleWindow = 100 * time.Millisecond
)

// Logging defaults for the command line tool.
const (
	// LogLevel is the default level for structured logging. Reports go
	// to stdout, so logging stays quiet unless the user raises it.
	LogLevel = "warn"
)
