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
	"context"
	"log/slog"
	"time"

	"github.com/mchmarny/sysdiag/pkg/collector"
	"github.com/mchmarny/sysdiag/pkg/defaults"
	apperrors "github.com/mchmarny/sysdiag/pkg/errors"
	"github.com/mchmarny/sysdiag/pkg/reporter"
	"github.com/mchmarny/sysdiag/pkg/serializer"
)

// NodeSnapshotter takes a diagnostic snapshot of the current host.
type NodeSnapshotter struct {
	// Version is the tool version, added to log lines.
	Version string

	// Collector gathers the snapshot. If nil, the host collector is used.
	Collector Collector

	// Reporter persists the snapshot. If nil, a reporter with default directories is used.
	Reporter Reporter

	// TopN is the number of processes to include. Must not be negative.
	TopN int

	// Format of the data report. Empty means JSON.
	Format serializer.Format

	// HTML enables the HTML report.
	HTML bool

	// MetricsFile, when set, receives the run metrics in textfile format.
	MetricsFile string
}

// Measure collects the snapshot and writes the reports.
// When the HTML report fails the returned Result still carries the data
// report path alongside the error.
func (n *NodeSnapshotter) Measure(ctx context.Context) (res *Result, err error) {
	if n.TopN < 0 {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"top process count must not be negative", map[string]any{"top": n.TopN})
	}

	if n.Collector == nil {
		n.Collector = collector.New(collector.WithObserver(ObserveCollector))
	}
	if n.Reporter == nil {
		n.Reporter = reporter.New(reporter.Config{})
	}
	format := n.Format
	if format == "" {
		format = serializer.FormatJSON
	}

	if n.MetricsFile != "" {
		defer func() {
			if werr := WriteMetrics(n.MetricsFile); werr != nil {
				slog.Warn("failed to write metrics file", "path", n.MetricsFile, "error", werr)
				if err == nil {
					err = apperrors.WrapWithContext(apperrors.ErrCodeInternal,
						"failed to write metrics file", werr, map[string]any{"path": n.MetricsFile})
				}
			}
		}()
	}

	slog.Debug("starting host snapshot", "version", n.Version, "top", n.TopN)

	cctx, cancel := context.WithTimeout(ctx, defaults.CollectorTimeout)
	defer cancel()

	start := time.Now()
	snap, err := n.Collector.CollectAll(cctx, n.TopN)
	snapshotCollectionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		snapshotCollectionTotal.WithLabelValues(statusError).Inc()
		slog.Error("snapshot collection failed", "error", err)
		return nil, err
	}

	snapshotCollectionTotal.WithLabelValues(statusSuccess).Inc()
	snapshotTopProcesses.Set(float64(len(snap.TopProcesses)))

	slog.Debug("snapshot collection complete",
		"duration", time.Since(start).String(),
		"disks", len(snap.Disks),
		"interfaces", len(snap.Network.Interfaces),
		"processes", len(snap.TopProcesses))

	res = &Result{Snapshot: snap}

	res.DataPath, err = n.Reporter.Save(ctx, snap, format)
	if err != nil {
		return nil, err
	}

	if n.HTML {
		res.HTMLPath, err = n.Reporter.RenderHTML(ctx, snap)
		if err != nil {
			return res, err
		}
	}

	return res, nil
}
