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

package measurement

// Address family names reported for interface addresses.
const (
	FamilyIPv4 = "AF_INET"
	FamilyIPv6 = "AF_INET6"
)

// Snapshot is a point-in-time record of all collected host metrics.
// It is populated in one pass by the collector and never updated afterwards.
type Snapshot struct {
	// Timestamp is the UTC capture time in RFC3339 format.
	Timestamp    string      `json:"timestamp" yaml:"timestamp"`
	OS           OSInfo      `json:"os" yaml:"os"`
	Uptime       Uptime      `json:"uptime" yaml:"uptime"`
	CPU          CPUInfo     `json:"cpu" yaml:"cpu"`
	Memory       MemoryInfo  `json:"memory" yaml:"memory"`
	Disks        []Disk      `json:"disks" yaml:"disks"`
	Network      NetworkInfo `json:"network" yaml:"network"`
	TopProcesses []Process   `json:"top_processes" yaml:"top_processes"`
}

// OSInfo holds static host identity strings. Unknown values are empty.
type OSInfo struct {
	System         string `json:"system" yaml:"system"`
	Hostname       string `json:"hostname" yaml:"hostname"`
	Release        string `json:"release" yaml:"release"`
	Version        string `json:"version" yaml:"version"`
	Machine        string `json:"machine" yaml:"machine"`
	Processor      string `json:"processor" yaml:"processor"`
	RuntimeVersion string `json:"runtime_version" yaml:"runtime_version"`
}

// Uptime is derived from the boot time and the capture time.
type Uptime struct {
	BootTimeISO   string `json:"boot_time_iso" yaml:"boot_time_iso"`
	UptimeSeconds int64  `json:"uptime_seconds" yaml:"uptime_seconds"`
	UptimeHuman   string `json:"uptime_human" yaml:"uptime_human"`
}

// CPUInfo describes processor counts, frequency, utilization and load.
// Nil fields were unavailable on this platform.
type CPUInfo struct {
	PhysicalCores *int     `json:"physical_cores" yaml:"physical_cores"`
	TotalCores    *int     `json:"total_cores" yaml:"total_cores"`
	FreqMHz       *float64 `json:"freq_mhz" yaml:"freq_mhz"`
	Percent       float64  `json:"percent" yaml:"percent"`
	LoadAvg       *LoadAvg `json:"loadavg" yaml:"loadavg"`
}

// LoadAvg holds the 1, 5 and 15 minute load averages.
type LoadAvg struct {
	Load1  float64 `json:"1min" yaml:"1min"`
	Load5  float64 `json:"5min" yaml:"5min"`
	Load15 float64 `json:"15min" yaml:"15min"`
}

// MemoryInfo holds RAM and swap counters in bytes.
type MemoryInfo struct {
	RAM  RAM  `json:"ram" yaml:"ram"`
	Swap Swap `json:"swap" yaml:"swap"`
}

// RAM is physical memory usage.
type RAM struct {
	Total     uint64  `json:"total" yaml:"total"`
	Available uint64  `json:"available" yaml:"available"`
	Used      uint64  `json:"used" yaml:"used"`
	Percent   float64 `json:"percent" yaml:"percent"`
}

// Swap is swap space usage.
type Swap struct {
	Total   uint64  `json:"total" yaml:"total"`
	Used    uint64  `json:"used" yaml:"used"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// Disk is the usage of one mounted partition.
type Disk struct {
	Device     string  `json:"device" yaml:"device"`
	Mountpoint string  `json:"mountpoint" yaml:"mountpoint"`
	FSType     string  `json:"fstype" yaml:"fstype"`
	Total      uint64  `json:"total" yaml:"total"`
	Used       uint64  `json:"used" yaml:"used"`
	Free       uint64  `json:"free" yaml:"free"`
	Percent    float64 `json:"percent" yaml:"percent"`
}

// NetworkInfo holds per-interface data and the connectivity probe outcome.
type NetworkInfo struct {
	Interfaces map[string]Interface `json:"interfaces" yaml:"interfaces"`
	PingOK     bool                 `json:"ping_ok" yaml:"ping_ok"`
	PingStdout string               `json:"ping_stdout" yaml:"ping_stdout"`
	PingStderr string               `json:"ping_stderr" yaml:"ping_stderr"`
}

// Interface is one network interface. Byte counters are nil when the OS
// reports no I/O counters for it.
type Interface struct {
	IPs       []Address `json:"ips" yaml:"ips"`
	BytesSent *uint64   `json:"bytes_sent" yaml:"bytes_sent"`
	BytesRecv *uint64   `json:"bytes_recv" yaml:"bytes_recv"`
}

// Address is an IPv4 or IPv6 address bound to an interface.
type Address struct {
	Family  string `json:"family" yaml:"family"`
	Address string `json:"address" yaml:"address"`
}

// Process is one entry of the process table at capture time.
// Fields the OS refused to disclose are nil.
type Process struct {
	PID           int32    `json:"pid" yaml:"pid"`
	Name          string   `json:"name" yaml:"name"`
	Username      *string  `json:"username" yaml:"username"`
	CPUPercent    *float64 `json:"cpu_percent" yaml:"cpu_percent"`
	MemoryPercent *float32 `json:"memory_percent" yaml:"memory_percent"`
}

// CPU returns the cpu percent, treating a missing value as zero.
func (p Process) CPU() float64 {
	if p.CPUPercent == nil {
		return 0
	}
	return *p.CPUPercent
}

// Ptr returns a pointer to v. It is used to populate optional fields.
func Ptr[T any](v T) *T {
	return &v
}
