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
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/klauspost/cpuid/v2"
	pscpu "github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"

	"github.com/avelev99/cpuinfo-app/pkg/errors"
	"github.com/avelev99/cpuinfo-app/pkg/parser"
	"github.com/avelev99/cpuinfo-app/pkg/probe"
)

// FreqSample is one frequency reading in MHz. Sub-values the platform
// does not expose are nil.
type FreqSample struct {
	Current *float64
	Min     *float64
	Max     *float64
}

// Probes is the set of platform calls backing a Collector. Each entry
// may be replaced to exercise the collector without real hardware.
type Probes struct {
	// Brand returns the processor name as reported by the platform.
	Brand func(ctx context.Context) (string, error)

	// Arch returns the machine architecture identifier.
	Arch func(ctx context.Context) (string, error)

	// Counts returns the number of physical cores (logical false) or
	// logical processors (logical true).
	Counts func(ctx context.Context, logical bool) (int, error)

	// Frequency returns one frequency reading.
	Frequency func(ctx context.Context) (FreqSample, error)

	// Usage samples overall utilization over the given window and
	// returns a percentage.
	Usage func(ctx context.Context, window time.Duration) (float64, error)
}

// platformProbes wires the real hardware sources: the CPUID
// instruction for the brand, uname for the architecture and platform
// info queries for counts, frequency and usage. freqDir supplies the
// sysfs tier of the frequency probe.
func platformProbes(freqDir string) *Probes {
	return &Probes{
		Brand:     brandProbe,
		Arch:      archProbe,
		Counts:    countProbe,
		Frequency: frequencyProbe(freqDir),
		Usage:     usageProbe,
	}
}

// brandProbe chains the CPUID register read with the slower platform
// info query, taking the first non-empty name.
func brandProbe(ctx context.Context) (string, error) {
	return probe.First(
		func() (string, error) {
			if name := cpuid.CPU.BrandName; name != "" {
				return name, nil
			}
			return "", errors.New(errors.ErrCodeUnavailable, "cpuid reports no brand name")
		},
		func() (string, error) {
			return brandFromInfo(ctx)
		},
	)
}

func brandFromInfo(ctx context.Context) (string, error) {
	infos, err := pscpu.InfoWithContext(ctx)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeUnavailable, "cpu info query failed", err)
	}
	for _, info := range infos {
		if info.ModelName != "" {
			return info.ModelName, nil
		}
	}
	return "", errors.New(errors.ErrCodeUnavailable, "cpu info carries no model name")
}

// archProbe prefers the kernel's machine identifier, such as x86_64,
// and falls back to the compile-time architecture.
func archProbe(ctx context.Context) (string, error) {
	return probe.First(
		func() (string, error) {
			arch, err := host.KernelArch()
			if err != nil {
				return "", errors.Wrap(errors.ErrCodeUnavailable, "kernel arch query failed", err)
			}
			if arch == "" {
				return "", errors.New(errors.ErrCodeUnavailable, "kernel arch is empty")
			}
			return arch, nil
		},
		func() (string, error) {
			return runtime.GOARCH, nil
		},
	)
}

func countProbe(ctx context.Context, logical bool) (int, error) {
	n, err := pscpu.CountsWithContext(ctx, logical)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeUnavailable, "cpu count query failed", err)
	}
	return n, nil
}

// frequencyProbe chains the sysfs cpufreq files with the advertised
// clock from the platform info query.
func frequencyProbe(freqDir string) func(ctx context.Context) (FreqSample, error) {
	return func(ctx context.Context) (FreqSample, error) {
		return probe.First(
			func() (FreqSample, error) {
				return sysfsFrequency(freqDir)
			},
			func() (FreqSample, error) {
				return infoFrequency(ctx)
			},
		)
	}
}

// sysfsFrequency reads the cpufreq files for core 0. The kernel
// reports kilohertz, readings convert to MHz. Each file is optional on
// its own, the tier fails only when none of them is usable.
func sysfsFrequency(dir string) (FreqSample, error) {
	sample := FreqSample{
		Current: readFreqFile(filepath.Join(dir, "scaling_cur_freq")),
		Min:     readFreqFile(filepath.Join(dir, "cpuinfo_min_freq")),
		Max:     readFreqFile(filepath.Join(dir, "cpuinfo_max_freq")),
	}
	if sample.Current == nil && sample.Min == nil && sample.Max == nil {
		return FreqSample{}, errors.NewWithContext(errors.ErrCodeUnavailable,
			"no usable cpufreq files", map[string]any{"dir": dir})
	}
	return sample, nil
}

func readFreqFile(path string) *float64 {
	text, err := parser.NewParser().Value(path)
	if err != nil {
		return nil
	}
	khz, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}
	mhz := khz / 1000
	return &mhz
}

// infoFrequency reports the advertised clock as the current value.
// Minimum and maximum are not available from this source.
func infoFrequency(ctx context.Context) (FreqSample, error) {
	infos, err := pscpu.InfoWithContext(ctx)
	if err != nil {
		return FreqSample{}, errors.Wrap(errors.ErrCodeUnavailable, "cpu info query failed", err)
	}
	for _, info := range infos {
		if info.Mhz > 0 {
			mhz := info.Mhz
			return FreqSample{Current: &mhz}, nil
		}
	}
	return FreqSample{}, errors.New(errors.ErrCodeUnavailable, "cpu info carries no frequency")
}

func usageProbe(ctx context.Context, window time.Duration) (float64, error) {
	percents, err := pscpu.PercentWithContext(ctx, window, false)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeUnavailable, "usage sampling failed", err)
	}
	if len(percents) == 0 {
		return 0, errors.New(errors.ErrCodeUnavailable, "usage sampling returned no readings")
	}
	return percents[0], nil
}
