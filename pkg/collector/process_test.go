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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/sysdiag/pkg/measurement"
)

func TestRankProcesses_Length(t *testing.T) {
	procs := make([]measurement.Process, 7)
	for i := range procs {
		procs[i] = measurement.Process{PID: int32(i + 1), CPUPercent: measurement.Ptr(float64(i))}
	}

	for _, n := range []int{-3, 0, 1, 3, 7, 8, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			got := RankProcesses(procs, n)
			want := max(0, min(n, len(procs)))
			assert.Len(t, got, want)
			assert.NotNil(t, got)
		})
	}
}

func TestRankProcesses_Order(t *testing.T) {
	procs := []measurement.Process{
		{PID: 30, CPUPercent: measurement.Ptr(5.0)},
		{PID: 10},
		{PID: 20, CPUPercent: measurement.Ptr(5.0)},
		{PID: 5, CPUPercent: measurement.Ptr(0.0)},
		{PID: 40, CPUPercent: measurement.Ptr(99.0)},
	}

	got := RankProcesses(procs, len(procs))

	pids := make([]int32, 0, len(got))
	for _, p := range got {
		pids = append(pids, p.PID)
	}
	// ties on cpu (5.0 and the zero/missing group) break by ascending pid
	assert.Equal(t, []int32{40, 20, 30, 5, 10}, pids)

	// input is left untouched
	assert.Equal(t, int32(30), procs[0].PID)
}

func TestRankProcesses_NonIncreasing(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	procs := make([]measurement.Process, 200)
	for i := range procs {
		procs[i] = measurement.Process{PID: int32(i)}
		if r.IntN(4) != 0 {
			procs[i].CPUPercent = measurement.Ptr(float64(r.IntN(20)))
		}
	}

	got := RankProcesses(procs, len(procs))
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].CPU(), got[i].CPU(), "index %d", i)
		if got[i-1].CPU() == got[i].CPU() {
			assert.Less(t, got[i-1].PID, got[i].PID, "tie-break at index %d", i)
		}
	}
}

func TestRankProcesses_Empty(t *testing.T) {
	got := RankProcesses(nil, 10)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTopProcesses_FiftyProcesses(t *testing.T) {
	src := newFakeSource()
	r := rand.New(rand.NewPCG(3, 4))
	src.procs = make([]measurement.Process, 50)
	var maxCPU float64
	for i := range src.procs {
		v := r.Float64() * 100
		maxCPU = max(maxCPU, v)
		src.procs[i] = measurement.Process{PID: int32(1000 + i), Name: fmt.Sprintf("p%d", i), CPUPercent: measurement.Ptr(v)}
	}

	c := newTestCollector(src, &fakeRunner{})
	top, err := c.TopProcesses(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, top, 3)
	assert.Equal(t, maxCPU, top[0].CPU())
}
