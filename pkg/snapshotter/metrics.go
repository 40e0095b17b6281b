// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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


package snapshotter

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Snapshot collection metrics
	snapshotCollectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sysdiag_snapshot_collection_duration_seconds",
			Help:    "Time taken to collect a complete host snapshot",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
		},
	)

	snapshotCollectionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sysdiag_snapshot_collection_total",
			Help: "Total number of snapshot collection attempts",
		},
		[]string{"status"}, // success or error
	)

	snapshotCollectorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sysdiag_snapshot_collector_duration_seconds",
			Help:    "Time taken by individual collection steps",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"collector"}, // os, uptime, cpu, memory, disks, network, top_processes
	)

	snapshotTopProcesses = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sysdiag_snapshot_top_processes",
			Help: "Number of processes in the last collected snapshot",
		},
	)
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// ObserveCollector records the duration of one collection step. It matches
// the signature expected by collector.WithObserver.
func ObserveCollector(step string, d time.Duration) {
	snapshotCollectorDuration.WithLabelValues(step).Observe(d.Seconds())
}

// WriteMetrics writes the default registry to path in the textfile format.
func WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
