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

// Package system collects host information.
//
// The collector resolves the fields of a report.System record: OS
// identity, hostname, uptime and memory. Fields degrade to the unknown
// sentinel independently, with two deliberate exceptions that change
// together or not at all:
//
//   - uptime_seconds and uptime_human derive from one boot timestamp
//   - the four memory fields derive from one memory reading
//
// This keeps the numeric values and their human-readable forms
// consistent within a single record.
//
// # Data Sources
//
// The default probes use the platform host info query, the hostname
// call, the boot timestamp and a virtual memory reading. Kernel
// release and version additionally fall back to
// /proc/sys/kernel/osrelease and /proc/sys/kernel/version when the
// unified query cannot fill them.
//
// # Usage
//
//	c := &system.Collector{}
//	record := c.Collect(ctx)
//	fmt.Println(record.Hostname)
//
// Collect never returns an error. The Clock and Formatter fields exist
// for tests and localized output: a fake clock pins the uptime
// computation, a localized formatter renders the human-readable forms
// in the active language.
package system
