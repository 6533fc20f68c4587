package snapshot

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/avelev99/cpuinfo-app/pkg/collector/cpu"
	"github.com/avelev99/cpuinfo-app/pkg/collector/system"
	"github.com/avelev99/cpuinfo-app/pkg/report"
)

// Snapshotter assembles one report.Snapshot from the CPU and system
// collectors. Collectors run sequentially; the usage sampling window
// inside the CPU collector is the only deliberate delay.
type Snapshotter struct {
	// CPU is the processor collector. If nil, a default collector is used.
	CPU *cpu.Collector

	// System is the host collector. If nil, a default collector is used.
	System *system.Collector
}

// Collect gathers one snapshot. It never fails: fields whose sources
// are unavailable report as unknown and the snapshot ships regardless.
func (s *Snapshotter) Collect(ctx context.Context) *report.Snapshot {
	id := uuid.NewString()
	slog.Debug("starting snapshot", slog.String("id", id))

	start := time.Now()
	defer func() {
		collectionDuration.Observe(time.Since(start).Seconds())
	}()

	if s.CPU == nil {
		s.CPU = &cpu.Collector{}
	}
	if s.System == nil {
		s.System = &system.Collector{}
	}

	snap := &report.Snapshot{
		CPU:    s.CPU.Collect(ctx),
		System: s.System.Collect(ctx),
	}

	unknown := snap.UnknownCount()
	unknownFields.Set(float64(unknown))

	status := statusComplete
	if unknown > 0 {
		status = statusDegraded
	}
	collectionsTotal.WithLabelValues(status).Inc()

	slog.Debug("snapshot assembled",
		slog.String("id", id),
		slog.Int("unknown_fields", unknown),
		slog.String("status", status))

	return snap
}
