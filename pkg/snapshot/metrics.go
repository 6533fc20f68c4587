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

package snapshot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusComplete = "complete"
	statusDegraded = "degraded"
)

var (
	// Snapshot assembly metrics
	collectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cpuinfo_collection_duration_seconds",
			Help:    "Time taken to assemble a complete snapshot",
			Buckets: []float64{0.05, 0.1, 0.15, 0.25, 0.5, 1, 2.5},
		},
	)

	collectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cpuinfo_collections_total",
			Help: "Total number of snapshot collections",
		},
		[]string{"status"}, // complete or degraded
	)

	unknownFields = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cpuinfo_snapshot_unknown_fields",
			Help: "Number of unknown fields in the last collected snapshot",
		},
	)
)
