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
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/mchmarny/sysdiag/pkg/measurement"
)

// TopProcesses returns the n processes with the highest cpu percent.
// Missing cpu values count as zero; ties are ordered by ascending PID.
// A negative n is treated as zero.
func (c *Collector) TopProcesses(ctx context.Context, n int) ([]measurement.Process, error) {
	procs, err := c.source.Processes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	return RankProcesses(procs, n), nil
}

// RankProcesses sorts procs by descending cpu percent, then ascending PID,
// and returns the first min(n, len(procs)) entries. procs is not modified.
func RankProcesses(procs []measurement.Process, n int) []measurement.Process {
	ranked := slices.Clone(procs)
	slices.SortFunc(ranked, func(a, b measurement.Process) int {
		if c := cmp.Compare(b.CPU(), a.CPU()); c != 0 {
			return c
		}
		return cmp.Compare(a.PID, b.PID)
	})

	n = max(0, min(n, len(ranked)))
	if ranked == nil {
		return make([]measurement.Process, 0)
	}
	return ranked[:n:n]
}
