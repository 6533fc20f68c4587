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

// Package report defines the snapshot schema produced by one collection run.
//
// # Shape
//
// A Snapshot is a fixed two-key structure:
//
//	{
//	  "cpu":    { brand, architecture, physical_cores, logical_processors,
//	              frequency_mhz{current,min,max}, usage_percent, features,
//	              cache{L1,L2,L3} },
//	  "system": { os{name,release,version}, hostname, uptime_seconds,
//	              uptime_human, memory{total_bytes, available_bytes,
//	              total_human, available_human} }
//	}
//
// # Unknown data
//
// Every leaf is a Value[T]: either Known(v) or Unknown. Unknown leaves
// serialize as the "N/A" sentinel string; no leaf is ever omitted or null.
// Rendering code therefore never branches on field presence:
//
//	snap.CPU.Brand.String()        // "AMD Ryzen 9 5950X" or "N/A"
//	mhz, ok := snap.CPU.Frequency.Current.Get()
//
// Known values marshal as their raw underlying value, so a populated
// document is indistinguishable from one produced without the union type.
package report
