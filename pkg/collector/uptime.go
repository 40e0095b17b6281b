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
	"time"

	"github.com/mchmarny/sysdiag/pkg/measurement"
)

// Uptime reads the boot time and derives the uptime relative to now.
func (c *Collector) Uptime(ctx context.Context) (measurement.Uptime, error) {
	boot, err := c.source.BootTime(ctx)
	if err != nil {
		return measurement.Uptime{}, fmt.Errorf("failed to read boot time: %w", err)
	}

	bootTime := time.Unix(int64(boot), 0)
	seconds := int64(c.now().Sub(bootTime) / time.Second)
	if seconds < 0 {
		seconds = 0
	}

	return measurement.Uptime{
		BootTimeISO:   bootTime.UTC().Format(time.RFC3339),
		UptimeSeconds: seconds,
		UptimeHuman:   HumanUptime(seconds),
	}, nil
}

// HumanUptime formats seconds as "{hours}h {minutes}m" using floor division.
func HumanUptime(seconds int64) string {
	return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
}
