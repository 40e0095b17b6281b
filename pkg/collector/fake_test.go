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

	"github.com/mchmarny/sysdiag/pkg/measurement"
)

// fakeSource is a Source with canned values. A non-nil error field makes the
// matching call fail.
type fakeSource struct {
	hostInfo    *host.InfoStat
	hostInfoErr error
	uname       *Uname
	unameErr    error
	bootTime    uint64
	bootTimeErr error

	physical, logical       int
	physicalErr, logicalErr error
	cpuInfo                 []cpu.InfoStat
	cpuInfoErr              error
	cpuPercent              []float64
	cpuPercentErr           error
	sampledInterval         time.Duration
	loadAvg                 *load.AvgStat
	loadAvgErr              error

	vm    *mem.VirtualMemoryStat
	vmErr error
	sm    *mem.SwapMemoryStat
	smErr error

	partitions    []disk.PartitionStat
	partitionsErr error
	usage         map[string]*disk.UsageStat
	usageErr      map[string]error

	ifaces    net.InterfaceStatList
	ifacesErr error
	io        []net.IOCountersStat
	ioErr     error

	procs    []measurement.Process
	procsErr error
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		hostInfo: &host.InfoStat{
			Hostname:        "node-1",
			OS:              "linux",
			KernelVersion:   "6.8.0-45-generic",
			KernelArch:      "x86_64",
			PlatformVersion: "24.04",
		},
		uname: &Uname{
			Release: "6.8.0-45-generic",
			Version: "#45-Ubuntu SMP PREEMPT_DYNAMIC",
			Machine: "x86_64",
		},
		bootTime:   uint64(testNow.Add(-90 * time.Minute).Unix()),
		physical:   4,
		logical:    8,
		cpuInfo:    []cpu.InfoStat{{ModelName: "Test CPU", Mhz: 2000}, {ModelName: "Test CPU", Mhz: 3000}},
		cpuPercent: []float64{12.5},
		loadAvg:    &load.AvgStat{Load1: 0.5, Load5: 0.75, Load15: 1.0},
		vm:         &mem.VirtualMemoryStat{Total: 16 << 30, Available: 8 << 30, Used: 8 << 30, UsedPercent: 50},
		sm:         &mem.SwapMemoryStat{Total: 2 << 30, Used: 1 << 30, UsedPercent: 50},
		partitions: []disk.PartitionStat{
			{Device: "/dev/sda1", Mountpoint: "/", Fstype: "ext4"},
			{Device: "/dev/sda2", Mountpoint: "/home", Fstype: "ext4"},
		},
		usage: map[string]*disk.UsageStat{
			"/":     {Total: 100, Used: 40, Free: 60, UsedPercent: 40},
			"/home": {Total: 200, Used: 50, Free: 150, UsedPercent: 25},
		},
		ifaces: net.InterfaceStatList{
			{Name: "lo", Addrs: net.InterfaceAddrList{{Addr: "127.0.0.1/8"}, {Addr: "::1/128"}}},
			{Name: "eth0", Addrs: net.InterfaceAddrList{{Addr: "10.0.0.5/24"}}},
		},
		io: []net.IOCountersStat{
			{Name: "lo", BytesSent: 100, BytesRecv: 100},
			{Name: "eth0", BytesSent: 2048, BytesRecv: 4096},
		},
		procs: []measurement.Process{
			{PID: 1, Name: "init", Username: measurement.Ptr("root"), CPUPercent: measurement.Ptr(0.1)},
			{PID: 42, Name: "worker", CPUPercent: measurement.Ptr(55.0)},
			{PID: 7, Name: "zombie"},
		},
	}
}

func (f *fakeSource) HostInfo(context.Context) (*host.InfoStat, error) {
	return f.hostInfo, f.hostInfoErr
}

func (f *fakeSource) Uname(context.Context) (*Uname, error) {
	return f.uname, f.unameErr
}

func (f *fakeSource) BootTime(context.Context) (uint64, error) {
	return f.bootTime, f.bootTimeErr
}

func (f *fakeSource) CPUCounts(_ context.Context, logical bool) (int, error) {
	if logical {
		return f.logical, f.logicalErr
	}
	return f.physical, f.physicalErr
}

func (f *fakeSource) CPUInfo(context.Context) ([]cpu.InfoStat, error) {
	return f.cpuInfo, f.cpuInfoErr
}

func (f *fakeSource) CPUPercent(_ context.Context, interval time.Duration) ([]float64, error) {
	f.sampledInterval = interval
	return f.cpuPercent, f.cpuPercentErr
}

func (f *fakeSource) LoadAvg(context.Context) (*load.AvgStat, error) {
	return f.loadAvg, f.loadAvgErr
}

func (f *fakeSource) VirtualMemory(context.Context) (*mem.VirtualMemoryStat, error) {
	return f.vm, f.vmErr
}

func (f *fakeSource) SwapMemory(context.Context) (*mem.SwapMemoryStat, error) {
	return f.sm, f.smErr
}

func (f *fakeSource) Partitions(context.Context) ([]disk.PartitionStat, error) {
	return f.partitions, f.partitionsErr
}

func (f *fakeSource) DiskUsage(_ context.Context, path string) (*disk.UsageStat, error) {
	if err, ok := f.usageErr[path]; ok {
		return nil, err
	}
	return f.usage[path], nil
}

func (f *fakeSource) Interfaces(context.Context) (net.InterfaceStatList, error) {
	return f.ifaces, f.ifacesErr
}

func (f *fakeSource) NetIOCounters(context.Context) ([]net.IOCountersStat, error) {
	return f.io, f.ioErr
}

func (f *fakeSource) Processes(context.Context) ([]measurement.Process, error) {
	return f.procs, f.procsErr
}

// fakeRunner records the last invocation and returns canned results.
type fakeRunner struct {
	result *CommandResult
	err    error

	name string
	args []string
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) (*CommandResult, error) {
	r.name = name
	r.args = args
	return r.result, r.err
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestCollector(src Source, runner Runner, opts ...Option) *Collector {
	base := []Option{
		WithSource(src),
		WithRunner(runner),
		WithSampleInterval(0),
		WithClock(func() time.Time { return testNow }),
	}
	return New(append(base, opts...)...)
}
