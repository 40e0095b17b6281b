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


package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	apperrors "github.com/mchmarny/sysdiag/pkg/errors"
	"github.com/mchmarny/sysdiag/pkg/reporter"
	"github.com/mchmarny/sysdiag/pkg/serializer"
	"github.com/mchmarny/sysdiag/pkg/snapshotter"
)

// parseSnapshotter runs the flag set against args and returns the mapped snapshotter.
func parseSnapshotter(t *testing.T, args ...string) (*snapshotter.NodeSnapshotter, error) {
	t.Helper()

	var (
		ns     *snapshotter.NodeSnapshotter
		mapErr error
	)
	cmd := &cli.Command{
		Name:  name,
		Flags: snapshotFlags(),
		Action: func(_ context.Context, c *cli.Command) error {
			ns, mapErr = newSnapshotter(c)
			return nil
		},
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{name}, args...)))
	return ns, mapErr
}

func TestNewSnapshotter_Defaults(t *testing.T) {
	ns, err := parseSnapshotter(t)
	require.NoError(t, err)

	assert.Equal(t, 10, ns.TopN)
	assert.Equal(t, serializer.FormatJSON, ns.Format)
	assert.False(t, ns.HTML)
	assert.Empty(t, ns.MetricsFile)
	assert.NotNil(t, ns.Collector)

	rep, ok := ns.Reporter.(*reporter.Reporter)
	require.True(t, ok)
	assert.Equal(t, "reports", rep.Config().ReportsDir)
	assert.Equal(t, "templates", rep.Config().TemplatesDir)
}

func TestNewSnapshotter_Flags(t *testing.T) {
	ns, err := parseSnapshotter(t,
		"--top", "3",
		"--html",
		"--format", "yaml",
		"--output-dir", "out",
		"--templates-dir", "tmpl",
		"--metrics-file", "sysdiag.prom",
	)
	require.NoError(t, err)

	assert.Equal(t, 3, ns.TopN)
	assert.True(t, ns.HTML)
	assert.Equal(t, serializer.FormatYAML, ns.Format)
	assert.Equal(t, "sysdiag.prom", ns.MetricsFile)

	rep := ns.Reporter.(*reporter.Reporter)
	assert.Equal(t, "out", rep.Config().ReportsDir)
	assert.Equal(t, "tmpl", rep.Config().TemplatesDir)
}

func TestNewSnapshotter_Env(t *testing.T) {
	t.Setenv("SYSDIAG_TOP", "5")
	t.Setenv("SYSDIAG_HTML", "true")

	ns, err := parseSnapshotter(t)
	require.NoError(t, err)
	assert.Equal(t, 5, ns.TopN)
	assert.True(t, ns.HTML)

	ns, err = parseSnapshotter(t, "--top", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, ns.TopN, "flag overrides environment")
}

func TestNewSnapshotter_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative top", []string{"--top=-1"}},
		{"unknown format", []string{"--format", "table"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns, err := parseSnapshotter(t, tt.args...)
			require.Error(t, err)
			assert.Nil(t, ns)
			assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
		})
	}
}

func TestRootCmd_NegativeTop(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.Writer = &out

	err := cmd.Run(context.Background(), []string{name, "--top=-2", "--output-dir", t.TempDir()})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
	assert.Empty(t, out.String())
}

func TestPrintResult(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var out bytes.Buffer
	printResult(&out, serializer.FormatJSON, &snapshotter.Result{
		DataPath: "reports/sysdiag-20250601-120000.json",
		HTMLPath: "reports/sysdiag-20250601-120000.html",
	})
	assert.Equal(t,
		"[OK] JSON saved: reports/sysdiag-20250601-120000.json\n"+
			"[OK] HTML saved: reports/sysdiag-20250601-120000.html\n",
		out.String())

	out.Reset()
	printResult(&out, serializer.FormatYAML, &snapshotter.Result{DataPath: "r.yaml"})
	assert.Equal(t, "[OK] YAML saved: r.yaml\n", out.String())
}

func TestRootCmd_Run(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping host collection in short mode")
	}

	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	reports := filepath.Join(t.TempDir(), "reports")
	tmpl := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpl, "report.html"), []byte(`<p>{{.OS.Hostname}}</p>`), 0o600))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.Writer = &out

	err := cmd.Run(context.Background(), []string{name,
		"--top", "3",
		"--html",
		"--output-dir", reports,
		"--templates-dir", tmpl,
		"--ping-host", "127.0.0.1",
		"--log-level", "error",
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Regexp(t, regexp.MustCompile(`^\[OK\] JSON saved: .*sysdiag-\d{8}-\d{6}\.json$`), lines[0])
	assert.Regexp(t, regexp.MustCompile(`^\[OK\] HTML saved: .*sysdiag-\d{8}-\d{6}\.html$`), lines[1])

	entries, err := os.ReadDir(reports)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRootCmd_MissingTemplate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping host collection in short mode")
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.Writer = &out

	err := cmd.Run(context.Background(), []string{name,
		"--top", "1",
		"--html",
		"--output-dir", t.TempDir(),
		"--templates-dir", filepath.Join(t.TempDir(), "missing"),
		"--ping-host", "127.0.0.1",
		"--log-level", "error",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, reporter.ErrTemplateNotFound)
	assert.Contains(t, out.String(), "JSON saved:")
	assert.NotContains(t, out.String(), "HTML saved:")
}
