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


package snapshotter

import (
	"context"

	"github.com/mchmarny/sysdiag/pkg/measurement"
	"github.com/mchmarny/sysdiag/pkg/serializer"
)

// Snapshotter defines the interface for taking a diagnostic snapshot.
type Snapshotter interface {
	Measure(ctx context.Context) (*Result, error)
}

// Collector gathers a complete host snapshot.
type Collector interface {
	CollectAll(ctx context.Context, topN int) (*measurement.Snapshot, error)
}

// Reporter persists snapshots.
type Reporter interface {
	Save(ctx context.Context, snap *measurement.Snapshot, format serializer.Format) (string, error)
	RenderHTML(ctx context.Context, snap *measurement.Snapshot) (string, error)
}

// Result describes the files written by a run.
type Result struct {
	// Snapshot is the collected data.
	Snapshot *measurement.Snapshot
	// DataPath is the JSON or YAML report.
	DataPath string
	// HTMLPath is the rendered report, empty unless HTML was requested.
	HTMLPath string
}
