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

package system

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/avelev99/cpuinfo-app/pkg/clock"
	"github.com/avelev99/cpuinfo-app/pkg/humanize"
	"github.com/avelev99/cpuinfo-app/pkg/parser"
	"github.com/avelev99/cpuinfo-app/pkg/probe"
	"github.com/avelev99/cpuinfo-app/pkg/report"
)

const (
	defaultOSReleasePath = "/proc/sys/kernel/osrelease"
	defaultVersionPath   = "/proc/sys/kernel/version"
)

// Collector gathers host facts: OS identity, hostname, uptime and
// memory. Every field degrades to the unknown sentinel on its own, a
// Collector never fails as a whole.
type Collector struct {
	// Clock supplies the current time for the uptime computation. If
	// nil, the real clock is used.
	Clock clock.Clock

	// Formatter renders the human-readable uptime and memory fields.
	// If nil, a plain English formatter is used.
	Formatter *humanize.Formatter

	// OSReleasePath is the pseudo-file backing the kernel release
	// fallback. If empty, /proc/sys/kernel/osrelease is used.
	OSReleasePath string

	// VersionPath is the pseudo-file backing the kernel version
	// fallback. If empty, /proc/sys/kernel/version is used.
	VersionPath string

	// Probes overrides the platform probe set. If nil, the real
	// platform probes are used.
	Probes *Probes
}

// Collect gathers every system field. Probes run sequentially and
// degrade independently. A canceled context yields a fully unknown
// record.
func (c *Collector) Collect(ctx context.Context) report.System {
	slog.Debug("collecting system information")

	if err := ctx.Err(); err != nil {
		slog.Debug("system collection skipped", slog.String("error", err.Error()))
		return report.System{}
	}

	uptimeSeconds, uptimeHuman := c.collectUptime(ctx)

	return report.System{
		OS:            c.collectOS(ctx),
		Hostname:      c.collectHostname(),
		UptimeSeconds: uptimeSeconds,
		UptimeHuman:   uptimeHuman,
		Memory:        c.collectMemory(ctx),
	}
}

// collectOS resolves the OS identity. The unified platform probe is
// consulted first and each empty field falls back on its own: the name
// to the compile-time OS, release and version to their kernel
// pseudo-files, and finally to unknown.
func (c *Collector) collectOS(ctx context.Context) report.OSInfo {
	identity, _ := probe.Try("system_identity", func() (Identity, error) {
		return c.probes().Identity(ctx)
	})

	name := identity.Name
	if name == "" {
		name = runtime.GOOS
	}

	release := report.Unknown[string]()
	if identity.Release != "" {
		release = report.Known(identity.Release)
	} else if v, ok := probe.Try("system_release_file", func() (string, error) {
		return c.fileParser().Value(c.osReleasePath())
	}); ok {
		release = report.Known(v)
	}

	version := report.Unknown[string]()
	if identity.Version != "" {
		version = report.Known(identity.Version)
	} else if v, ok := probe.Try("system_version_file", func() (string, error) {
		return c.fileParser().Value(c.versionPath())
	}); ok {
		version = report.Known(v)
	}

	return report.OSInfo{
		Name:    report.Known(name),
		Release: release,
		Version: version,
	}
}

func (c *Collector) collectHostname() report.Value[string] {
	name, ok := probe.Try("system_hostname", func() (string, error) {
		return c.probes().Hostname()
	})
	if !ok || name == "" {
		return report.Unknown[string]()
	}
	return report.Known(name)
}

// collectUptime derives the uptime pair from the boot timestamp. The
// numeric and human forms are always set together, clamped at zero for
// clocks that disagree with the recorded boot time.
func (c *Collector) collectUptime(ctx context.Context) (report.Value[int64], report.Value[string]) {
	boot, ok := probe.Try("system_boot_time", func() (uint64, error) {
		return c.probes().BootTime(ctx)
	})
	if !ok {
		return report.Unknown[int64](), report.Unknown[string]()
	}

	seconds := c.wallClock().Now().Unix() - int64(boot)
	if seconds < 0 {
		seconds = 0
	}
	return report.Known(seconds), report.Known(c.formatter().Duration(seconds))
}

// collectMemory reports the memory quadruple from a single reading, so
// the byte counts and their human forms never disagree.
func (c *Collector) collectMemory(ctx context.Context) report.Memory {
	sample, ok := probe.Try("system_memory", func() (MemSample, error) {
		return c.probes().Memory(ctx)
	})
	if !ok {
		return report.Memory{}
	}
	return report.Memory{
		TotalBytes:     report.Known(sample.Total),
		AvailableBytes: report.Known(sample.Available),
		TotalHuman:     report.Known(c.formatter().Bytes(float64(sample.Total))),
		AvailableHuman: report.Known(c.formatter().Bytes(float64(sample.Available))),
	}
}

func (c *Collector) probes() *Probes {
	if c.Probes != nil {
		return c.Probes
	}
	return platformProbes()
}

func (c *Collector) wallClock() clock.Clock {
	if c.Clock != nil {
		return c.Clock
	}
	return clock.Real()
}

func (c *Collector) formatter() *humanize.Formatter {
	if c.Formatter != nil {
		return c.Formatter
	}
	return humanize.New(nil)
}

func (c *Collector) fileParser() *parser.Parser {
	return parser.NewParser()
}

func (c *Collector) osReleasePath() string {
	if c.OSReleasePath != "" {
		return c.OSReleasePath
	}
	return defaultOSReleasePath
}

func (c *Collector) versionPath() string {
	if c.VersionPath != "" {
		return c.VersionPath
	}
	return defaultVersionPath
}
