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

package defaults

import "time"

// Collector timing for data collection operations.
const (
	// CPUSampleInterval is the blocking window used to measure CPU utilization.
	// The whole collection pipeline waits for this duration.
	CPUSampleInterval = 700 * time.Millisecond

	// PingTimeout bounds the connectivity probe subprocess.
	PingTimeout = 3 * time.Second

	// CollectorTimeout is the overall budget for a single snapshot collection.
	// It must exceed CPUSampleInterval plus PingTimeout.
	CollectorTimeout = 2 * time.Minute
)

// Collector inputs.
const (
	// PingHost is the well-known address used by the connectivity probe.
	PingHost = "8.8.8.8"

	// TopProcesses is the default number of processes included in a snapshot.
	TopProcesses = 10
)

// Reporter paths.
const (
	// ReportsDir is the default output directory, created on demand.
	ReportsDir = "reports"

	// TemplatesDir is the default directory holding report templates.
	TemplatesDir = "templates"

	// ReportTemplate is the template file rendered into the HTML report.
	ReportTemplate = "report.html"

	// ReportFilePrefix prefixes every persisted report file name.
	ReportFilePrefix = "sysdiag"

	// ReportTimeLayout is the second-resolution stamp in report file names.
	ReportTimeLayout = "20060102-150405"
)

// File permissions for persisted reports.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)
