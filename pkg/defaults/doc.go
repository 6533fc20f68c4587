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

// Package defaults provides centralized configuration constants.
//
// This package holds the default values shared between the command line
// flags and the collectors, so the flag help text and the fallback
// behavior of library consumers cannot drift apart.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/avelev99/cpuinfo-app/pkg/defaults"
//
//	c := &cpu.Collector{SampleWindow: defaults.SampleWindow}
package defaults
