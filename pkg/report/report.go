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

package report

// Snapshot is the complete point-in-time result of one collection run.
// It is constructed once per invocation, immutable after assembly, and
// always fully populated: every leaf holds a value or the Sentinel.
type Snapshot struct {
	CPU    CPU    `json:"cpu" yaml:"cpu"`
	System System `json:"system" yaml:"system"`
}

// CPU describes the processor as reported by best-effort probes.
type CPU struct {
	Brand             Value[string]   `json:"brand" yaml:"brand"`
	Architecture      Value[string]   `json:"architecture" yaml:"architecture"`
	PhysicalCores     Value[int]      `json:"physical_cores" yaml:"physical_cores"`
	LogicalProcessors Value[int]      `json:"logical_processors" yaml:"logical_processors"`
	Frequency         Frequency       `json:"frequency_mhz" yaml:"frequency_mhz"`
	UsagePercent      Value[float64]  `json:"usage_percent" yaml:"usage_percent"`
	Features          Value[[]string] `json:"features" yaml:"features"`
	Cache             Cache           `json:"cache" yaml:"cache"`
}

// Frequency holds CPU clock readings in MHz, rounded to two decimals.
// Sub-values are independent; any of them may be unknown.
type Frequency struct {
	Current Value[float64] `json:"current" yaml:"current"`
	Min     Value[float64] `json:"min" yaml:"min"`
	Max     Value[float64] `json:"max" yaml:"max"`
}

// Cache holds the raw size label (e.g. "32K", "1M") of the largest reported
// cache at each level.
type Cache struct {
	L1 Value[string] `json:"L1" yaml:"L1"`
	L2 Value[string] `json:"L2" yaml:"L2"`
	L3 Value[string] `json:"L3" yaml:"L3"`
}

// System describes the host: OS identity, hostname, uptime, and memory.
type System struct {
	OS            OSInfo        `json:"os" yaml:"os"`
	Hostname      Value[string] `json:"hostname" yaml:"hostname"`
	UptimeSeconds Value[int64]  `json:"uptime_seconds" yaml:"uptime_seconds"`
	UptimeHuman   Value[string] `json:"uptime_human" yaml:"uptime_human"`
	Memory        Memory        `json:"memory" yaml:"memory"`
}

// OSInfo is the operating system identity triple.
type OSInfo struct {
	Name    Value[string] `json:"name" yaml:"name"`
	Release Value[string] `json:"release" yaml:"release"`
	Version Value[string] `json:"version" yaml:"version"`
}

// Memory holds total and available memory. The byte fields and their human
// forms are set or unset together, never mixed.
type Memory struct {
	TotalBytes     Value[uint64] `json:"total_bytes" yaml:"total_bytes"`
	AvailableBytes Value[uint64] `json:"available_bytes" yaml:"available_bytes"`
	TotalHuman     Value[string] `json:"total_human" yaml:"total_human"`
	AvailableHuman Value[string] `json:"available_human" yaml:"available_human"`
}

// UnknownCount returns the number of leaves holding the Sentinel. A fully
// populated snapshot returns 0; a snapshot from a host where nothing could
// be probed returns LeafCount.
func (s *Snapshot) UnknownCount() int {
	return s.CPU.unknownCount() + s.System.unknownCount()
}

// LeafCount is the fixed number of leaf fields in a Snapshot.
const LeafCount = 22

func (c *CPU) unknownCount() int {
	n := 0
	for _, known := range []bool{
		c.Brand.IsKnown(),
		c.Architecture.IsKnown(),
		c.PhysicalCores.IsKnown(),
		c.LogicalProcessors.IsKnown(),
		c.Frequency.Current.IsKnown(),
		c.Frequency.Min.IsKnown(),
		c.Frequency.Max.IsKnown(),
		c.UsagePercent.IsKnown(),
		c.Features.IsKnown(),
		c.Cache.L1.IsKnown(),
		c.Cache.L2.IsKnown(),
		c.Cache.L3.IsKnown(),
	} {
		if !known {
			n++
		}
	}
	return n
}

func (s *System) unknownCount() int {
	n := 0
	for _, known := range []bool{
		s.OS.Name.IsKnown(),
		s.OS.Release.IsKnown(),
		s.OS.Version.IsKnown(),
		s.Hostname.IsKnown(),
		s.UptimeSeconds.IsKnown(),
		s.UptimeHuman.IsKnown(),
		s.Memory.TotalBytes.IsKnown(),
		s.Memory.AvailableBytes.IsKnown(),
		s.Memory.TotalHuman.IsKnown(),
		s.Memory.AvailableHuman.IsKnown(),
	} {
		if !known {
			n++
		}
	}
	return n
}
