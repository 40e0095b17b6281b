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

package collector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mchmarny/sysdiag/pkg/measurement"
)

// CPU reads core counts, frequency, load average and a utilization sample.
// The utilization sample blocks for the configured sample interval.
func (c *Collector) CPU(ctx context.Context) (measurement.CPUInfo, error) {
	res := measurement.CPUInfo{
		PhysicalCores: c.cpuCount(ctx, false),
		TotalCores:    c.cpuCount(ctx, true),
		FreqMHz:       c.cpuFreq(ctx),
	}

	pcts, err := c.source.CPUPercent(ctx, c.sampleInterval)
	if err != nil {
		return measurement.CPUInfo{}, fmt.Errorf("failed to sample cpu utilization: %w", err)
	}
	if len(pcts) > 0 {
		res.Percent = pcts[0]
	}

	if avg, err := c.source.LoadAvg(ctx); err != nil {
		slog.Debug("load average unavailable", "error", err)
	} else if avg != nil {
		res.LoadAvg = &measurement.LoadAvg{
			Load1:  avg.Load1,
			Load5:  avg.Load5,
			Load15: avg.Load15,
		}
	}

	return res, nil
}

func (c *Collector) cpuCount(ctx context.Context, logical bool) *int {
	n, err := c.source.CPUCounts(ctx, logical)
	if err != nil || n <= 0 {
		slog.Debug("cpu count unavailable", "logical", logical, "error", err)
		return nil
	}
	return measurement.Ptr(n)
}

// cpuFreq averages the per-CPU clock reported by the OS.
func (c *Collector) cpuFreq(ctx context.Context) *float64 {
	infos, err := c.source.CPUInfo(ctx)
	if err != nil {
		slog.Debug("cpu frequency unavailable", "error", err)
		return nil
	}

	var sum float64
	var n int
	for _, info := range infos {
		if info.Mhz > 0 {
			sum += info.Mhz
			n++
		}
	}
	if n == 0 {
		return nil
	}

	return measurement.Ptr(sum / float64(n))
}
