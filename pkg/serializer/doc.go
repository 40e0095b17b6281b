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


// Package serializer encodes and decodes snapshot data as JSON or YAML.
//
// # Supported Formats
//
// JSON:
//   - 2-space indentation, the canonical report format
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - gopkg.in/yaml.v3 package
//
// # Usage - Encoding
//
//	w, err := serializer.NewFileWriter(serializer.FormatJSON, "reports/sysdiag-20250601-120000.json")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, snap); err != nil {
//	    return err
//	}
//
// # Usage - Decoding
//
//	snap, err := serializer.FromFile[measurement.Snapshot]("reports/sysdiag-20250601-120000.json")
//
// The format of a file is derived from its extension by FormatFromPath.
package serializer
