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

// Package collector reads host metrics from the local operating system.
//
// # Overview
//
// A Collector exposes one method per metric group and a CollectAll method that
// runs them in a fixed sequence and assembles a measurement.Snapshot:
//
//	c := collector.New()
//	snap, err := c.CollectAll(ctx, 10)
//
// Groups and their degradation behavior:
//   - OSInfo: never fails, unknown strings stay empty
//   - Uptime: fails only when the boot time cannot be read
//   - CPU: core counts, frequency and load average become nil when unavailable;
//     the utilization sample blocks for the sample window (700ms by default)
//   - Memory: fails only when the memory counters cannot be read
//   - Disks: mounts that cannot be queried are skipped
//   - Network: IPv4/IPv6 addresses only; missing byte counters become nil;
//     the connectivity probe never fails
//   - TopProcesses: sorted by cpu percent descending, ties by ascending PID
//
// # Dependency Injection
//
// All OS reads go through the Source interface and the connectivity probe goes
// through the Runner interface. Production implementations are NewHostSource
// (gopsutil) and ExecRunner (os/exec). Tests replace both:
//
//	c := collector.New(
//	    collector.WithSource(fakeSource),
//	    collector.WithRunner(fakeRunner),
//	    collector.WithSampleInterval(0),
//	)
//
// # Concurrency
//
// Collection is sequential. No handles are retained between calls and no step
// is retried.
package collector
