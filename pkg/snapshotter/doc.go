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


// Package snapshotter orchestrates a single diagnostic run: collect the host
// snapshot, persist it, optionally render the HTML report, and record run
// metrics.
//
// # Usage
//
//	s := &snapshotter.NodeSnapshotter{
//	    Version: "v1.0.0",
//	    TopN:    10,
//	    HTML:    true,
//	}
//
//	res, err := s.Measure(ctx)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.DataPath, res.HTMLPath)
//
// Collector and Reporter default to the host collector and a reporter
// writing to the default directories. Any implementation of the Collector
// and Reporter interfaces can be supplied instead.
//
// # Metrics
//
// Each run updates the following Prometheus metrics in the default registry:
//
//	sysdiag_snapshot_collection_duration_seconds
//	sysdiag_snapshot_collection_total{status}
//	sysdiag_snapshot_collector_duration_seconds{collector}
//	sysdiag_snapshot_top_processes
//
// When MetricsFile is set the registry is written to that path in the
// node-exporter textfile format after the run.
package snapshotter
