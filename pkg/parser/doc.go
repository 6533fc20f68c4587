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

// Package parser reads the pseudo-files the collectors probe: /proc/cpuinfo
// style key:value listings and single-value sysfs attributes.
//
// # Usage
//
// Scan a repeated-key listing for its first occurrence:
//
//	p := parser.NewParser()
//	brand, err := p.FirstValue("/proc/cpuinfo", "model name")
//
// Read a single-value attribute:
//
//	size, err := p.Value("/sys/devices/system/cpu/cpu0/cache/index0/size")
//
// # Error Handling
//
// Every failure (missing file, permission denied, invalid UTF-8, oversized
// file, absent key, empty content) is reported as ErrCodeUnavailable. The
// probe layer turns these into sentinel fields; none of them is fatal.
//
// # Thread Safety
//
// A Parser carries only immutable configuration and is safe for concurrent
// use.
package parser
