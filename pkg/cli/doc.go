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


// Package cli implements the sysdiag command line.
//
// # Usage
//
//	sysdiag [--top N] [--html] [--format json|yaml] [--output-dir DIR]
//
// A run collects a host snapshot (OS identity, uptime, CPU, memory, disks,
// network with a connectivity probe, and the busiest processes), writes it to
// the reports directory and prints the written paths:
//
//	[OK] JSON saved: reports/sysdiag-20250601-120000.json
//	[OK] HTML saved: reports/sysdiag-20250601-120000.html
//
// # Flags
//
//	--top            Number of processes to include (default: 10)
//	--html           Also render templates/report.html
//	--format         Data report format: json, yaml (default: json)
//	--output-dir     Reports directory (default: reports)
//	--templates-dir  Templates directory (default: templates)
//	--ping-host      Connectivity probe target (default: 8.8.8.8)
//	--metrics-file   Write run metrics in Prometheus textfile format
//	--log-level      debug, info, warn, error (default: info)
//	--version, -v    Show version information
//
// # Environment Variables
//
//	SYSDIAG_TOP            Default for --top
//	SYSDIAG_HTML           Default for --html
//	SYSDIAG_OUTPUT_DIR     Default for --output-dir
//	SYSDIAG_TEMPLATES_DIR  Default for --templates-dir
//	SYSDIAG_FORMAT         Default for --format
//	SYSDIAG_PING_HOST      Default for --ping-host
//	SYSDIAG_METRICS_FILE   Default for --metrics-file
//	LOG_LEVEL              Default for --log-level
//
// # Exit Codes
//
//	0  Success
//	1  Any error (invalid arguments, collection or write failure)
package cli
