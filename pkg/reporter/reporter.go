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


package reporter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mchmarny/sysdiag/pkg/defaults"
	apperrors "github.com/mchmarny/sysdiag/pkg/errors"
	"github.com/mchmarny/sysdiag/pkg/measurement"
	"github.com/mchmarny/sysdiag/pkg/serializer"
)

// ErrTemplateNotFound is matched by errors.Is when the report template is missing.
var ErrTemplateNotFound = errors.New("template not found")

// Config holds the reporter directories. Empty values fall back to defaults.
type Config struct {
	ReportsDir   string
	TemplatesDir string
}

// Reporter writes snapshot files.
type Reporter struct {
	cfg Config
	now func() time.Time
}

// Option is a functional option for configuring Reporter instances.
type Option func(*Reporter)

// WithClock sets the time source used for file names.
func WithClock(now func() time.Time) Option {
	return func(r *Reporter) {
		r.now = now
	}
}

// New creates a Reporter.
func New(cfg Config, opts ...Option) *Reporter {
	if cfg.ReportsDir == "" {
		cfg.ReportsDir = defaults.ReportsDir
	}
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = defaults.TemplatesDir
	}

	r := &Reporter{
		cfg: cfg,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the effective configuration.
func (r *Reporter) Config() Config {
	return r.cfg
}

// EnsureReportsDir creates path and any missing parents. An existing
// directory is not an error.
func EnsureReportsDir(path string) (string, error) {
	if path == "" {
		return "", apperrors.New(apperrors.ErrCodeInvalidRequest, "reports directory is required")
	}
	if err := os.MkdirAll(path, defaults.DirPerm); err != nil {
		return "", apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to create reports directory", err, map[string]any{"dir": path})
	}
	return path, nil
}

// SaveJSON writes snap as indented JSON and returns the file path.
func (r *Reporter) SaveJSON(ctx context.Context, snap *measurement.Snapshot) (string, error) {
	return r.Save(ctx, snap, serializer.FormatJSON)
}

// Save writes snap in the given format and returns the file path.
func (r *Reporter) Save(ctx context.Context, snap *measurement.Snapshot, format serializer.Format) (string, error) {
	if snap == nil {
		return "", apperrors.New(apperrors.ErrCodeInvalidRequest, "snapshot is required")
	}
	if format.IsUnknown() {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"unsupported report format", map[string]any{"format": string(format)})
	}

	dir, err := EnsureReportsDir(r.cfg.ReportsDir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, r.fileName(format.Ext()))

	w, err := serializer.NewFileWriter(format, path)
	if err != nil {
		return "", apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to open report file", err, map[string]any{"path": path})
	}

	if err := w.Serialize(ctx, snap); err != nil {
		_ = w.Close()
		return "", apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to write report", err, map[string]any{"path": path})
	}

	if err := w.Close(); err != nil {
		return "", apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to close report file", err, map[string]any{"path": path})
	}

	slog.Debug("report saved", "path", path, "format", format)

	return path, nil
}

// RenderHTML renders snap through the report template and returns the
// file path. Nothing is written when the template is missing or fails.
func (r *Reporter) RenderHTML(ctx context.Context, snap *measurement.Snapshot) (string, error) {
	if snap == nil {
		return "", apperrors.New(apperrors.ErrCodeInvalidRequest, "snapshot is required")
	}

	tmplPath := filepath.Join(r.cfg.TemplatesDir, defaults.ReportTemplate)
	if _, err := os.Stat(tmplPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
				fmt.Sprintf("template %s not found", defaults.ReportTemplate),
				fmt.Errorf("%w: %w", ErrTemplateNotFound, err),
				map[string]any{"template": defaults.ReportTemplate, "dir": r.cfg.TemplatesDir})
		}
		return "", apperrors.Wrap(apperrors.ErrCodeInternal, "failed to stat template", err)
	}

	tmpl, err := template.New(defaults.ReportTemplate).Funcs(templateFuncs()).ParseFiles(tmplPath)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInternal,
			fmt.Sprintf("failed to parse template %s", tmplPath), err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, snap); err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInternal,
			fmt.Sprintf("failed to execute template %s", tmplPath), err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir, err := EnsureReportsDir(r.cfg.ReportsDir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, r.fileName("html"))
	if err := os.WriteFile(path, buf.Bytes(), defaults.FilePerm); err != nil {
		return "", apperrors.WrapWithContext(apperrors.ErrCodeInternal,
			"failed to write HTML report", err, map[string]any{"path": path})
	}

	slog.Debug("html report rendered", "path", path, "bytes", buf.Len())

	return path, nil
}

func (r *Reporter) fileName(ext string) string {
	return fmt.Sprintf("%s-%s.%s", defaults.ReportFilePrefix,
		r.now().Local().Format(defaults.ReportTimeLayout), ext)
}
