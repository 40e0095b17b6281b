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
	"log/slog"
	"runtime"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mchmarny/sysdiag/pkg/measurement"
)

var titleCaser = cases.Title(language.English)

// OSInfo reads static platform identity. It never fails: values the OS does
// not report are left empty.
//
//	system=Linux hostname=node-1 release=6.8.0-45-generic machine=x86_64
func (c *Collector) OSInfo(ctx context.Context) measurement.OSInfo {
	res := measurement.OSInfo{
		System:         titleCaser.String(runtime.GOOS),
		RuntimeVersion: runtime.Version(),
	}

	if hi, err := c.source.HostInfo(ctx); err != nil {
		slog.Debug("host info unavailable", "error", err)
	} else {
		if hi.OS != "" {
			res.System = titleCaser.String(hi.OS)
		}
		res.Hostname = hi.Hostname
		res.Release = hi.KernelVersion
		res.Machine = hi.KernelArch
		// Windows has no uname; the platform version is the closest equivalent.
		res.Version = hi.PlatformVersion
	}

	if u, err := c.source.Uname(ctx); err != nil {
		slog.Debug("uname unavailable", "error", err)
	} else {
		if u.Release != "" {
			res.Release = u.Release
		}
		if u.Version != "" {
			res.Version = u.Version
		}
		if u.Machine != "" {
			res.Machine = u.Machine
		}
	}

	if infos, err := c.source.CPUInfo(ctx); err != nil {
		slog.Debug("cpu info unavailable", "error", err)
	} else if len(infos) > 0 {
		res.Processor = infos[0].ModelName
	}

	return res
}
