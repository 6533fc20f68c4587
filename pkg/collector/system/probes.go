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
	"os"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/avelev99/cpuinfo-app/pkg/errors"
)

// Identity carries the OS identity strings from the unified platform
// probe. Fields the probe cannot fill stay empty and fall back
// per-field in the collector.
type Identity struct {
	Name    string
	Release string
	Version string
}

// MemSample is one virtual memory reading in bytes.
type MemSample struct {
	Total     uint64
	Available uint64
}

// Probes is the set of platform calls backing a Collector. Each entry
// may be replaced to exercise the collector without touching the host.
type Probes struct {
	// Identity returns the OS identity strings.
	Identity func(ctx context.Context) (Identity, error)

	// Hostname returns the host name.
	Hostname func() (string, error)

	// BootTime returns the boot timestamp in Unix seconds.
	BootTime func(ctx context.Context) (uint64, error)

	// Memory returns one virtual memory reading.
	Memory func(ctx context.Context) (MemSample, error)
}

func platformProbes() *Probes {
	return &Probes{
		Identity: identityProbe,
		Hostname: os.Hostname,
		BootTime: host.BootTimeWithContext,
		Memory:   memoryProbe,
	}
}

// identityProbe maps the host info query onto the identity strings.
// The query has no analog of the kernel build string, so Version stays
// empty and resolves through the pseudo-file fallback.
func identityProbe(ctx context.Context) (Identity, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return Identity{}, errors.Wrap(errors.ErrCodeUnavailable, "host info query failed", err)
	}
	return Identity{
		Name:    info.OS,
		Release: info.KernelVersion,
	}, nil
}

func memoryProbe(ctx context.Context) (MemSample, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemSample{}, errors.Wrap(errors.ErrCodeUnavailable, "virtual memory query failed", err)
	}
	if vm == nil {
		return MemSample{}, errors.New(errors.ErrCodeUnavailable, "virtual memory query returned nothing")
	}
	return MemSample{Total: vm.Total, Available: vm.Available}, nil
}
