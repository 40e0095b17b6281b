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
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/mchmarny/sysdiag/pkg/collector"
	"github.com/mchmarny/sysdiag/pkg/defaults"
	apperrors "github.com/mchmarny/sysdiag/pkg/errors"
	"github.com/mchmarny/sysdiag/pkg/logging"
	"github.com/mchmarny/sysdiag/pkg/reporter"
	"github.com/mchmarny/sysdiag/pkg/serializer"
	"github.com/mchmarny/sysdiag/pkg/snapshotter"
)

const (
	flagTop          = "top"
	flagHTML         = "html"
	flagFormat       = "format"
	flagOutputDir    = "output-dir"
	flagTemplatesDir = "templates-dir"
	flagPingHost     = "ping-host"
	flagMetricsFile  = "metrics-file"
	flagLogLevel     = "log-level"
)

var okLabel = color.New(color.FgGreen, color.Bold).SprintFunc()

func snapshotFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    flagTop,
			Usage:   "Number of processes to include, ranked by CPU usage",
			Value:   defaults.TopProcesses,
			Sources: cli.EnvVars("SYSDIAG_TOP"),
		},
		&cli.BoolFlag{
			Name:    flagHTML,
			Usage:   "Also render the HTML report",
			Sources: cli.EnvVars("SYSDIAG_HTML"),
		},
		&cli.StringFlag{
			Name:    flagFormat,
			Aliases: []string{"t"},
			Usage:   fmt.Sprintf("Data report format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
			Value:   string(serializer.FormatJSON),
			Sources: cli.EnvVars("SYSDIAG_FORMAT"),
		},
		&cli.StringFlag{
			Name:    flagOutputDir,
			Aliases: []string{"o"},
			Usage:   "Directory for report files, created if missing",
			Value:   defaults.ReportsDir,
			Sources: cli.EnvVars("SYSDIAG_OUTPUT_DIR"),
		},
		&cli.StringFlag{
			Name:    flagTemplatesDir,
			Usage:   "Directory holding " + defaults.ReportTemplate,
			Value:   defaults.TemplatesDir,
			Sources: cli.EnvVars("SYSDIAG_TEMPLATES_DIR"),
		},
		&cli.StringFlag{
			Name:    flagPingHost,
			Usage:   "Host used by the connectivity probe",
			Value:   defaults.PingHost,
			Sources: cli.EnvVars("SYSDIAG_PING_HOST"),
		},
		&cli.StringFlag{
			Name:    flagMetricsFile,
			Usage:   "Write run metrics to this file in Prometheus textfile format",
			Sources: cli.EnvVars("SYSDIAG_METRICS_FILE"),
		},
		&cli.StringFlag{
			Name:    flagLogLevel,
			Usage:   "Log level (debug, info, warn, error)",
			Value:   "info",
			Sources: cli.EnvVars(logging.EnvLogLevel),
		},
	}
}

func snapshotAction(ctx context.Context, cmd *cli.Command) error {
	ns, err := newSnapshotter(cmd)
	if err != nil {
		return err
	}

	res, err := ns.Measure(ctx)
	if res != nil {
		printResult(cmd.Root().Writer, ns.Format, res)
	}
	return err
}

// newSnapshotter maps parsed flags onto a NodeSnapshotter.
func newSnapshotter(cmd *cli.Command) (*snapshotter.NodeSnapshotter, error) {
	top := cmd.Int(flagTop)
	if top < 0 {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"--top must not be negative", map[string]any{"top": top})
	}

	format, err := serializer.ParseFormat(cmd.String(flagFormat))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid --format", err)
	}

	return &snapshotter.NodeSnapshotter{
		Version: version,
		Collector: collector.New(
			collector.WithProbeHost(cmd.String(flagPingHost)),
			collector.WithObserver(snapshotter.ObserveCollector),
		),
		Reporter: reporter.New(reporter.Config{
			ReportsDir:   cmd.String(flagOutputDir),
			TemplatesDir: cmd.String(flagTemplatesDir),
		}),
		TopN:        top,
		Format:      format,
		HTML:        cmd.Bool(flagHTML),
		MetricsFile: cmd.String(flagMetricsFile),
	}, nil
}

func printResult(w io.Writer, format serializer.Format, res *snapshotter.Result) {
	if res.DataPath != "" {
		fmt.Fprintf(w, "%s %s saved: %s\n", okLabel("[OK]"), strings.ToUpper(format.Ext()), res.DataPath)
	}
	if res.HTMLPath != "" {
		fmt.Fprintf(w, "%s HTML saved: %s\n", okLabel("[OK]"), res.HTMLPath)
	}
}
