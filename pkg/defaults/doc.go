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

// Package defaults provides centralized configuration constants for sysdiag.
//
// This package defines sampling windows, timeouts, default paths, and file
// naming conventions used across the codebase.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/mchmarny/sysdiag/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.PingTimeout)
//	defer cancel()
//
// # Timing Guidelines
//
//   - CPU utilization: a single 700ms blocking sample per snapshot
//   - Connectivity probe: 3s upper bound, timeout is a normal failure
//   - Whole collection: bounded by CollectorTimeout
package defaults
