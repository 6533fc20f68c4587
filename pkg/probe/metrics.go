package probe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Individual probe metrics
	probeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cpuinfo_probe_duration_seconds",
			Help:    "Time taken by individual probes",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5},
		},
		[]string{"probe"}, // cpu.brand, cpu.usage, system.memory, ...
	)

	probeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cpuinfo_probe_failures_total",
			Help: "Total number of probes that degraded to their fallback",
		},
		[]string{"probe"},
	)
)
