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

// Package cpu collects processor information.
//
// The collector resolves the fields of a report.CPU record: brand,
// architecture, core counts, frequency, utilization, feature flags and
// cache sizes. Each field comes from its own probe and degrades to the
// unknown sentinel independently, so a record always carries every
// field even on exotic or locked-down hosts.
//
// # Collected Data
//
//   - brand: marketing model name, two-tier resolution (platform API,
//     then the "model name" line of the info pseudo-file)
//   - architecture: machine identifier such as x86_64
//   - physical_cores / logical_processors: positive core counts
//   - frequency_mhz: current, minimum and maximum clock in MHz
//   - usage_percent: utilization sampled over a short window
//   - features: flag tokens from the info pseudo-file
//   - cache: largest reported size label per cache level (L1 to L3)
//
// # Usage
//
// Create a collector and collect:
//
//	c := &cpu.Collector{}
//	record := c.Collect(ctx)
//	fmt.Println(record.Brand)
//
// Collect never returns an error. Fields whose sources are absent or
// malformed report as unknown and marshal as the "N/A" sentinel.
//
// # Data Sources
//
// The default probes read from:
//   - the CPUID instruction set (brand)
//   - platform info queries (brand fallback, counts, frequency, usage)
//   - /proc/cpuinfo: "model name", "flags" or "Features" lines
//   - /sys/devices/system/cpu/cpu0/cpufreq: clock readings in kHz
//   - /sys/devices/system/cpu/cpu0/cache: per-index level and size
//
// All paths and the probe set itself are overridable through Collector
// fields, which is how the tests run against fixture directories.
//
// # Timing
//
// The usage probe blocks for the sampling window, 100ms unless
// configured otherwise. This is the only deliberate delay in a
// collection and it must elapse for the reading to be instantaneous
// rather than cumulative since boot.
package cpu
