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

package collector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"

	apperrors "github.com/mchmarny/sysdiag/pkg/errors"
)

// probeFailedExitCode is recorded when the probe could not produce an exit code.
const probeFailedExitCode = -1

// CommandResult is the outcome of a command that ran to completion.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes an external command. A non-zero exit is reported through
// CommandResult; an error means the command could not be run or did not finish.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (*CommandResult, error)
}

// ExecRunner runs commands as local subprocesses.
type ExecRunner struct{}

// Run starts the command and waits for it, killing it when ctx expires.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (*CommandResult, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return nil, apperrors.Wrap(apperrors.ErrCodeTimeout,
				fmt.Sprintf("%s did not finish in time", name), ctxErr)
		}
		return nil, ctxErr
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, fmt.Errorf("failed to run %s: %w", name, err)
	}

	res := &CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if exitErr != nil {
		res.ExitCode = exitErr.ExitCode()
	}

	return res, nil
}

// ProbeResult is the outcome of the connectivity probe.
type ProbeResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// OK reports whether the probe process exited with code 0.
func (p ProbeResult) OK() bool {
	return p.ExitCode == 0
}

// Probe sends a single ICMP echo to the probe host through the runner.
// It never fails: timeouts and spawn errors are recorded with exit code -1
// and the error text as stderr.
func (c *Collector) Probe(ctx context.Context) ProbeResult {
	pctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	name, args := pingCommand(runtime.GOOS, c.probeHost)

	res, err := c.runner.Run(pctx, name, args...)
	if err != nil {
		slog.Debug("connectivity probe failed", "host", c.probeHost, "error", err)
		return ProbeResult{
			ExitCode: probeFailedExitCode,
			Stderr:   err.Error(),
		}
	}

	return ProbeResult{
		ExitCode: res.ExitCode,
		Stdout:   strings.TrimSpace(res.Stdout),
		Stderr:   strings.TrimSpace(res.Stderr),
	}
}

// pingCommand returns a single-packet ping invocation for the given OS.
func pingCommand(goos, host string) (string, []string) {
	if goos == "windows" {
		return "ping", []string{"-n", "1", host}
	}
	return "ping", []string{"-c", "1", host}
}
