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
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/mchmarny/sysdiag/pkg/measurement"
)

// Disks reports usage for every physical partition in OS enumeration order.
// Mounts denied by permissions are skipped silently; other per-mount usage
// failures are skipped with a warning.
func (c *Collector) Disks(ctx context.Context) ([]measurement.Disk, error) {
	parts, err := c.source.Partitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list partitions: %w", err)
	}

	res := make([]measurement.Disk, 0, len(parts))
	for _, p := range parts {
		usage, err := c.source.DiskUsage(ctx, p.Mountpoint)
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				slog.Debug("skipping protected mount", "mountpoint", p.Mountpoint)
			} else {
				slog.Warn("skipping unreadable mount", "mountpoint", p.Mountpoint, "error", err)
			}
			continue
		}

		res = append(res, measurement.Disk{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			FSType:     p.Fstype,
			Total:      usage.Total,
			Used:       usage.Used,
			Free:       usage.Free,
			Percent:    usage.UsedPercent,
		})
	}

	return res, nil
}
