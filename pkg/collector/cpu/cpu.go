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

package cpu

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/avelev99/cpuinfo-app/pkg/defaults"
	"github.com/avelev99/cpuinfo-app/pkg/parser"
	"github.com/avelev99/cpuinfo-app/pkg/probe"
	"github.com/avelev99/cpuinfo-app/pkg/report"
)

const (
	defaultProcPath = "/proc/cpuinfo"
	defaultCacheDir = "/sys/devices/system/cpu/cpu0/cache"
	defaultFreqDir  = "/sys/devices/system/cpu/cpu0/cpufreq"

	brandKey       = "model name"
	flagsKey       = "flags"
	armFeaturesKey = "Features"
)

// genericBrandNames lists bare architecture identifiers some platforms
// report instead of a marketing name. A brand matching one of these is
// rejected so the pseudo-file can supply the real model string. The
// membership is a fixed policy choice, not derived.
var genericBrandNames = map[string]struct{}{
	"x86_64":  {},
	"amd64":   {},
	"arm64":   {},
	"aarch64": {},
	"i386":    {},
	"i686":    {},
}

// Collector gathers CPU facts from hardware registers, platform APIs
// and Linux pseudo-files. Every field degrades to the unknown sentinel
// on its own, a Collector never fails as a whole.
type Collector struct {
	// ProcPath is the processor info pseudo-file scanned by the brand
	// and feature-flag fallbacks. If empty, /proc/cpuinfo is used.
	ProcPath string

	// CacheDir is the cache topology directory holding the per-index
	// level and size files. If empty,
	// /sys/devices/system/cpu/cpu0/cache is used.
	CacheDir string

	// FreqDir is the cpufreq sysfs directory backing the frequency
	// probe. If empty, /sys/devices/system/cpu/cpu0/cpufreq is used.
	FreqDir string

	// SampleWindow is how long the usage probe samples utilization.
	// If zero, 100ms is used.
	SampleWindow time.Duration

	// Probes overrides the platform probe set. If nil, the real
	// hardware probes are used.
	Probes *Probes
}

// Collect gathers every CPU field. Probes run sequentially and degrade
// independently. A canceled context yields a fully unknown record.
func (c *Collector) Collect(ctx context.Context) report.CPU {
	slog.Debug("collecting cpu information")

	if err := ctx.Err(); err != nil {
		slog.Debug("cpu collection skipped", slog.String("error", err.Error()))
		return report.CPU{}
	}

	return report.CPU{
		Brand:             c.collectBrand(ctx),
		Architecture:      c.collectArchitecture(ctx),
		PhysicalCores:     c.collectCount(ctx, "cpu_count_physical", false),
		LogicalProcessors: c.collectCount(ctx, "cpu_count_logical", true),
		Frequency:         c.collectFrequency(ctx),
		UsagePercent:      c.collectUsage(ctx),
		Features:          c.collectFeatures(),
		Cache:             c.collectCache(),
	}
}

// collectBrand resolves the processor model name in two tiers. The
// platform API tier is consulted first; an empty result or a bare
// architecture identifier does not count as a brand and sends the
// lookup to the pseudo-file tier, which takes the first "model name"
// entry. An accepted API value is returned exactly as reported.
func (c *Collector) collectBrand(ctx context.Context) report.Value[string] {
	if name, ok := probe.Try("cpu_brand", func() (string, error) {
		return c.probes().Brand(ctx)
	}); ok && !genericBrand(name) {
		return report.Known(name)
	}

	name, ok := probe.Try("cpu_brand_file", func() (string, error) {
		return c.fileParser().FirstValue(c.procPath(), brandKey)
	})
	return report.KnownIf(name, ok)
}

func genericBrand(name string) bool {
	if name == "" {
		return true
	}
	_, generic := genericBrandNames[strings.ToLower(strings.TrimSpace(name))]
	return generic
}

func (c *Collector) collectArchitecture(ctx context.Context) report.Value[string] {
	arch, ok := probe.Try("cpu_architecture", func() (string, error) {
		return c.probes().Arch(ctx)
	})
	if !ok || arch == "" {
		return report.Unknown[string]()
	}
	return report.Known(arch)
}

// collectCount reports a core count. Only positive counts are usable,
// anything else degrades to unknown.
func (c *Collector) collectCount(ctx context.Context, name string, logical bool) report.Value[int] {
	n, ok := probe.Try(name, func() (int, error) {
		return c.probes().Counts(ctx, logical)
	})
	if !ok || n <= 0 {
		return report.Unknown[int]()
	}
	return report.Known(n)
}

// collectFrequency takes one reading and rounds each sub-value to two
// decimals independently. A failed probe leaves all three unknown, a
// partial reading leaves only the absent sub-values unknown.
func (c *Collector) collectFrequency(ctx context.Context) report.Frequency {
	sample, ok := probe.Try("cpu_frequency", func() (FreqSample, error) {
		return c.probes().Frequency(ctx)
	})
	if !ok {
		return report.Frequency{}
	}
	return report.Frequency{
		Current: roundMHz(sample.Current),
		Min:     roundMHz(sample.Min),
		Max:     roundMHz(sample.Max),
	}
}

func roundMHz(v *float64) report.Value[float64] {
	if v == nil {
		return report.Unknown[float64]()
	}
	return report.Known(math.Round(*v*100) / 100)
}

// collectUsage samples utilization over the configured window. The
// window must elapse for the reading to reflect current load rather
// than a cumulative-since-boot figure.
func (c *Collector) collectUsage(ctx context.Context) report.Value[float64] {
	pct, ok := probe.Try("cpu_usage", func() (float64, error) {
		return c.probes().Usage(ctx, c.sampleWindow())
	})
	if !ok || math.IsNaN(pct) {
		return report.Unknown[float64]()
	}
	return report.Known(math.Round(pct*10) / 10)
}

// collectFeatures reads the feature flag list from the pseudo-file,
// trying the x86 "flags" entry first and the ARM "Features" entry
// second. An unreadable file, no matching entry or an empty token list
// all degrade to unknown.
func (c *Collector) collectFeatures() report.Value[[]string] {
	raw, ok := probe.Try("cpu_features", func() (string, error) {
		return probe.First(
			func() (string, error) { return c.fileParser().FirstValue(c.procPath(), flagsKey) },
			func() (string, error) { return c.fileParser().FirstValue(c.procPath(), armFeaturesKey) },
		)
	})
	if !ok {
		return report.Unknown[[]string]()
	}
	features := strings.Fields(raw)
	if len(features) == 0 {
		return report.Unknown[[]string]()
	}
	return report.Known(features)
}

func (c *Collector) probes() *Probes {
	if c.Probes != nil {
		return c.Probes
	}
	return platformProbes(c.freqDir())
}

func (c *Collector) fileParser() *parser.Parser {
	return parser.NewParser()
}

func (c *Collector) procPath() string {
	if c.ProcPath != "" {
		return c.ProcPath
	}
	return defaultProcPath
}

func (c *Collector) cacheDir() string {
	if c.CacheDir != "" {
		return c.CacheDir
	}
	return defaultCacheDir
}

func (c *Collector) freqDir() string {
	if c.FreqDir != "" {
		return c.FreqDir
	}
	return defaultFreqDir
}

func (c *Collector) sampleWindow() time.Duration {
	if c.SampleWindow > 0 {
		return c.SampleWindow
	}
	return defaults.SampleWindow
}
