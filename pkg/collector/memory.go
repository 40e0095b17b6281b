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

	"github.com/mchmarny/sysdiag/pkg/measurement"
)

// Memory reads instantaneous RAM and swap counters.
func (c *Collector) Memory(ctx context.Context) (measurement.MemoryInfo, error) {
	vm, err := c.source.VirtualMemory(ctx)
	if err != nil {
		return measurement.MemoryInfo{}, fmt.Errorf("failed to read virtual memory: %w", err)
	}

	sm, err := c.source.SwapMemory(ctx)
	if err != nil {
		return measurement.MemoryInfo{}, fmt.Errorf("failed to read swap memory: %w", err)
	}

	return measurement.MemoryInfo{
		RAM: measurement.RAM{
			Total:     vm.Total,
			Available: vm.Available,
			Used:      vm.Used,
			Percent:   vm.UsedPercent,
		},
		Swap: measurement.Swap{
			Total:   sm.Total,
			Used:    sm.Used,
			Percent: sm.UsedPercent,
		},
	}, nil
}
