package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/avelev99/cpuinfo-app/pkg/clock"
	"github.com/avelev99/cpuinfo-app/pkg/collector/cpu"
	"github.com/avelev99/cpuinfo-app/pkg/collector/system"
	"github.com/avelev99/cpuinfo-app/pkg/errors"
	"github.com/avelev99/cpuinfo-app/pkg/report"
)

var errProbeDisabled = errors.New(errors.ErrCodeUnavailable, "probe disabled in test")

func fptr(v float64) *float64 {
	return &v
}

// unavailableCPU returns a CPU collector whose every source fails.
func unavailableCPU(t *testing.T) *cpu.Collector {
	t.Helper()
	dir := t.TempDir()
	return &cpu.Collector{
		Probes: &cpu.Probes{
			Brand: func(context.Context) (string, error) { return "", errProbeDisabled },
			Arch:  func(context.Context) (string, error) { return "", errProbeDisabled },
			Counts: func(context.Context, bool) (int, error) {
				return 0, errProbeDisabled
			},
			Frequency: func(context.Context) (cpu.FreqSample, error) {
				return cpu.FreqSample{}, errProbeDisabled
			},
			Usage: func(context.Context, time.Duration) (float64, error) {
				return 0, errProbeDisabled
			},
		},
		ProcPath: filepath.Join(dir, "cpuinfo"),
		CacheDir: filepath.Join(dir, "cache"),
		FreqDir:  filepath.Join(dir, "cpufreq"),
	}
}

// unavailableSystem returns a system collector whose every source fails.
func unavailableSystem(t *testing.T) *system.Collector {
	t.Helper()
	dir := t.TempDir()
	return &system.Collector{
		Probes: &system.Probes{
			Identity: func(context.Context) (system.Identity, error) {
				return system.Identity{}, errProbeDisabled
			},
			Hostname: func() (string, error) { return "", errProbeDisabled },
			BootTime: func(context.Context) (uint64, error) {
				return 0, errProbeDisabled
			},
			Memory: func(context.Context) (system.MemSample, error) {
				return system.MemSample{}, errProbeDisabled
			},
		},
		OSReleasePath: filepath.Join(dir, "osrelease"),
		VersionPath:   filepath.Join(dir, "version"),
	}
}

// healthyCPU returns a CPU collector with fake probes and fixtures
// that resolve every field.
func healthyCPU(t *testing.T) *cpu.Collector {
	t.Helper()
	return &cpu.Collector{
		Probes: &cpu.Probes{
			Brand: func(context.Context) (string, error) {
				return "Example CPU X9", nil
			},
			Arch: func(context.Context) (string, error) { return "x86_64", nil },
			Counts: func(_ context.Context, logical bool) (int, error) {
				if logical {
					return 16, nil
				}
				return 8, nil
			},
			Frequency: func(context.Context) (cpu.FreqSample, error) {
				return cpu.FreqSample{
					Current: fptr(2400.5),
					Min:     fptr(800),
					Max:     fptr(4600),
				}, nil
			},
			Usage: func(context.Context, time.Duration) (float64, error) {
				return 12.5, nil
			},
		},
		ProcPath: writeFile(t, "cpuinfo", "flags\t: fpu vme sse2\n"),
		CacheDir: writeCacheFixture(t),
	}
}

// healthySystem returns a system collector with fake probes that
// resolve every field.
func healthySystem(t *testing.T) *system.Collector {
	t.Helper()
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	return &system.Collector{
		Clock: clock.Fake(now),
		Probes: &system.Probes{
			Identity: func(context.Context) (system.Identity, error) {
				return system.Identity{
					Name:    "linux",
					Release: "6.8.0-49-generic",
					Version: "#49-Ubuntu SMP",
				}, nil
			},
			Hostname: func() (string, error) { return "node-7", nil },
			BootTime: func(context.Context) (uint64, error) {
				return uint64(now.Add(-time.Hour).Unix()), nil
			},
			Memory: func(context.Context) (system.MemSample, error) {
				return system.MemSample{Total: 8 << 30, Available: 2 << 30}, nil
			},
		},
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func writeCacheFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, files := range map[string]map[string]string{
		"index0": {"level": "1", "size": "32K"},
		"index1": {"level": "2", "size": "1M"},
		"index2": {"level": "3", "size": "32M"},
	} {
		idx := filepath.Join(dir, name)
		if err := os.MkdirAll(idx, 0o755); err != nil {
			t.Fatalf("failed to create fixture dir: %v", err)
		}
		for file, content := range files {
			if err := os.WriteFile(filepath.Join(idx, file), []byte(content), 0o600); err != nil {
				t.Fatalf("failed to write fixture file: %v", err)
			}
		}
	}
	return dir
}

func TestCollect_AllSourcesUnavailable(t *testing.T) {
	s := &Snapshotter{CPU: unavailableCPU(t), System: unavailableSystem(t)}

	degradedBefore := testutil.ToFloat64(collectionsTotal.WithLabelValues(statusDegraded))

	snap := s.Collect(context.Background())
	assert.NotNil(t, snap)

	// Every leaf except the OS name, which always resolves to the
	// compile-time value, reports unknown.
	assert.Equal(t, report.LeafCount-1, snap.UnknownCount())
	assert.False(t, snap.CPU.Brand.IsKnown())
	assert.False(t, snap.System.Memory.TotalBytes.IsKnown())

	assert.Equal(t, degradedBefore+1,
		testutil.ToFloat64(collectionsTotal.WithLabelValues(statusDegraded)))
	assert.Equal(t, float64(report.LeafCount-1), testutil.ToFloat64(unknownFields))
}

func TestCollect_AllSourcesHealthy(t *testing.T) {
	s := &Snapshotter{CPU: healthyCPU(t), System: healthySystem(t)}

	completeBefore := testutil.ToFloat64(collectionsTotal.WithLabelValues(statusComplete))

	snap := s.Collect(context.Background())

	assert.Equal(t, 0, snap.UnknownCount())
	assert.Equal(t, "Example CPU X9", snap.CPU.Brand.Or(""))
	assert.Equal(t, 8, snap.CPU.PhysicalCores.Or(0))
	assert.Equal(t, "32M", snap.CPU.Cache.L3.Or(""))
	assert.Equal(t, "node-7", snap.System.Hostname.Or(""))
	assert.Equal(t, int64(3600), snap.System.UptimeSeconds.Or(-1))
	assert.Equal(t, "01:00:00", snap.System.UptimeHuman.Or(""))
	assert.Equal(t, "8.00 GB", snap.System.Memory.TotalHuman.Or(""))

	assert.Equal(t, completeBefore+1,
		testutil.ToFloat64(collectionsTotal.WithLabelValues(statusComplete)))
	assert.Equal(t, float64(0), testutil.ToFloat64(unknownFields))
}

func TestCollect_InstallsDefaultCollectors(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping host probing in short mode")
	}

	s := &Snapshotter{}
	snap := s.Collect(context.Background())

	assert.NotNil(t, snap)
	assert.NotNil(t, s.CPU)
	assert.NotNil(t, s.System)
}
