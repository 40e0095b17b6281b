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
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/mchmarny/sysdiag/pkg/measurement"
)

// Uname holds the kernel identity strings reported by uname(2).
type Uname struct {
	Release string
	Version string
	Machine string
}

// Source is the set of OS reads the Collector depends on.
// Each call is a single blocking query that opens and releases its own handles.
// This interface enables dependency injection for testing.
type Source interface {
	HostInfo(ctx context.Context) (*host.InfoStat, error)
	Uname(ctx context.Context) (*Uname, error)
	BootTime(ctx context.Context) (uint64, error)

	CPUCounts(ctx context.Context, logical bool) (int, error)
	CPUInfo(ctx context.Context) ([]cpu.InfoStat, error)
	CPUPercent(ctx context.Context, interval time.Duration) ([]float64, error)
	LoadAvg(ctx context.Context) (*load.AvgStat, error)

	VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error)
	SwapMemory(ctx context.Context) (*mem.SwapMemoryStat, error)

	Partitions(ctx context.Context) ([]disk.PartitionStat, error)
	DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error)

	Interfaces(ctx context.Context) (net.InterfaceStatList, error)
	NetIOCounters(ctx context.Context) ([]net.IOCountersStat, error)

	// Processes returns one record per live process. Fields the OS refuses
	// to disclose for a process are left nil.
	Processes(ctx context.Context) ([]measurement.Process, error)
}

// NewHostSource returns a Source backed by gopsutil.
func NewHostSource() Source {
	return &hostSource{}
}

type hostSource struct{}

func (hostSource) HostInfo(ctx context.Context) (*host.InfoStat, error) {
	return host.InfoWithContext(ctx)
}

func (hostSource) Uname(ctx context.Context) (*Uname, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return uname()
}

func (hostSource) BootTime(ctx context.Context) (uint64, error) {
	return host.BootTimeWithContext(ctx)
}

func (hostSource) CPUCounts(ctx context.Context, logical bool) (int, error) {
	return cpu.CountsWithContext(ctx, logical)
}

func (hostSource) CPUInfo(ctx context.Context) ([]cpu.InfoStat, error) {
	return cpu.InfoWithContext(ctx)
}

func (hostSource) CPUPercent(ctx context.Context, interval time.Duration) ([]float64, error) {
	return cpu.PercentWithContext(ctx, interval, false)
}

func (hostSource) LoadAvg(ctx context.Context) (*load.AvgStat, error) {
	return load.AvgWithContext(ctx)
}

func (hostSource) VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return mem.VirtualMemoryWithContext(ctx)
}

func (hostSource) SwapMemory(ctx context.Context) (*mem.SwapMemoryStat, error) {
	return mem.SwapMemoryWithContext(ctx)
}

// Partitions lists physical partitions only; pseudo filesystems are excluded.
func (hostSource) Partitions(ctx context.Context) ([]disk.PartitionStat, error) {
	return disk.PartitionsWithContext(ctx, false)
}

func (hostSource) DiskUsage(ctx context.Context, path string) (*disk.UsageStat, error) {
	return disk.UsageWithContext(ctx, path)
}

func (hostSource) Interfaces(ctx context.Context) (net.InterfaceStatList, error) {
	return net.InterfacesWithContext(ctx)
}

func (hostSource) NetIOCounters(ctx context.Context) ([]net.IOCountersStat, error) {
	return net.IOCountersWithContext(ctx, true)
}

func (hostSource) Processes(ctx context.Context) ([]measurement.Process, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]measurement.Process, 0, len(procs))
	for _, p := range procs {
		rec := measurement.Process{PID: p.Pid}

		// Processes may exit or deny access between enumeration and inspection.
		if name, err := p.NameWithContext(ctx); err == nil {
			rec.Name = name
		}
		if user, err := p.UsernameWithContext(ctx); err == nil {
			rec.Username = measurement.Ptr(user)
		}
		if pct, err := p.CPUPercentWithContext(ctx); err == nil {
			rec.CPUPercent = measurement.Ptr(pct)
		}
		if pct, err := p.MemoryPercentWithContext(ctx); err == nil {
			rec.MemoryPercent = measurement.Ptr(pct)
		}

		res = append(res, rec)
	}

	return res, nil
}
