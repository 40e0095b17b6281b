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


// Package reporter persists snapshots to disk.
//
// Data reports are written through the serializer package as JSON (the
// default) or YAML. An optional HTML report is rendered from the
// report.html template found in the configured templates directory using
// html/template, so every value taken from the host is contextually escaped.
//
// File names carry a second-resolution local timestamp:
//
//	reports/sysdiag-20250601-120000.json
//	reports/sysdiag-20250601-120000.html
//
// Two reports written within the same second share a name; the last writer
// wins.
package reporter
