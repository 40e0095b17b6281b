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

// Package measurement defines the host diagnostic Snapshot and its records.
//
// # Core Types
//
// A Snapshot groups seven fixed-shape records:
//   - OSInfo: static host identity
//   - Uptime: boot time and derived uptime
//   - CPUInfo: core counts, frequency, utilization, load average
//   - MemoryInfo: RAM and swap counters
//   - Disk: per-mount usage, in partition enumeration order
//   - NetworkInfo: interface addresses, byte counters, connectivity probe result
//   - Process: top entries of the process table
//
// # Optional Values
//
// Metrics that may be unavailable on a platform are pointers and serialize as
// null rather than being omitted:
//
//	cpu := CPUInfo{
//	    TotalCores: Ptr(8),
//	    Percent:    12.5,
//	    // LoadAvg stays nil where the OS has no load average
//	}
//
// All records carry json and yaml tags so a persisted snapshot can be read
// back field for field.
package measurement
