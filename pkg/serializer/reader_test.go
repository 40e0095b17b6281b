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


package serializer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"report.json", FormatJSON},
		{"REPORT.JSON", FormatJSON},
		{"report.yaml", FormatYAML},
		{"report.yml", FormatYAML},
		{"/tmp/dir.json/report.Yml", FormatYAML},
		{"report.txt", FormatJSON},
		{"report", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewReader(t *testing.T) {
	if _, err := NewReader(Format("table"), strings.NewReader("")); err == nil {
		t.Error("expected error for unknown format")
	}

	r, err := NewReader(FormatJSON, strings.NewReader(`{"name":"test","value":7}`))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	var got testConfig
	if err := r.Deserialize(&got); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if got.Name != testName || got.Value != 7 || got.Freq != nil {
		t.Errorf("unexpected data: %+v", got)
	}
}

func TestReader_DeserializeYAML(t *testing.T) {
	r, err := NewReader(FormatYAML, strings.NewReader("name: test\nvalue: 9\nfreq: 2.5\n"))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	var got testConfig
	if err := r.Deserialize(&got); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if got.Freq == nil || *got.Freq != 2.5 {
		t.Errorf("expected freq 2.5, got %v", got.Freq)
	}
}

func TestReader_DeserializeNilChecks(t *testing.T) {
	var nilReader *Reader
	if err := nilReader.Deserialize(&testConfig{}); err == nil {
		t.Error("expected error for nil reader")
	}
	if err := nilReader.Close(); err != nil {
		t.Errorf("Close on nil reader should not error: %v", err)
	}

	r := &Reader{format: FormatJSON}
	if err := r.Deserialize(&testConfig{}); err == nil {
		t.Error("expected error for nil input")
	}
}

func TestReader_InvalidContent(t *testing.T) {
	r, err := NewReader(FormatJSON, strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	if err := r.Deserialize(&testConfig{}); err == nil {
		t.Error("expected decode error")
	}
}

func TestFromFile_RoundTrip(t *testing.T) {
	freq := 3200.5
	want := testConfig{Name: testName, Value: 42, Freq: &freq}

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data."+format.Ext())

			w, err := NewFileWriter(format, path)
			if err != nil {
				t.Fatalf("NewFileWriter failed: %v", err)
			}
			if err := w.Serialize(context.Background(), want); err != nil {
				t.Fatalf("Serialize failed: %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}

			got, err := FromFile[testConfig](path)
			if err != nil {
				t.Fatalf("FromFile failed: %v", err)
			}
			if got.Name != want.Name || got.Value != want.Value || got.Freq == nil || *got.Freq != freq {
				t.Errorf("round trip mismatch: got %+v", got)
			}
		})
	}
}

func TestFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := FromFile[testConfig](filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("name: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := FromFile[testConfig](bad); err == nil {
		t.Error("expected error for malformed file")
	}
}
