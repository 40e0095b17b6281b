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
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mchmarny/sysdiag/pkg/defaults"
	apperrors "github.com/mchmarny/sysdiag/pkg/errors"
	"github.com/mchmarny/sysdiag/pkg/measurement"
)

// Collection step names, in the order CollectAll runs them.
const (
	StepOS        = "os"
	StepUptime    = "uptime"
	StepCPU       = "cpu"
	StepMemory    = "memory"
	StepDisks     = "disks"
	StepNetwork   = "network"
	StepProcesses = "top_processes"
)

// Option is a functional option for configuring a Collector.
type Option func(*Collector)

// WithSource sets the OS source. Defaults to NewHostSource().
func WithSource(s Source) Option {
	return func(c *Collector) {
		c.source = s
	}
}

// WithRunner sets the command runner used by the connectivity probe.
func WithRunner(r Runner) Option {
	return func(c *Collector) {
		c.runner = r
	}
}

// WithProbeHost sets the address pinged by the connectivity probe.
func WithProbeHost(host string) Option {
	return func(c *Collector) {
		c.probeHost = host
	}
}

// WithProbeTimeout bounds the connectivity probe.
func WithProbeTimeout(d time.Duration) Option {
	return func(c *Collector) {
		c.probeTimeout = d
	}
}

// WithSampleInterval sets the CPU utilization sample window.
func WithSampleInterval(d time.Duration) Option {
	return func(c *Collector) {
		c.sampleInterval = d
	}
}

// WithClock overrides the time source used for timestamps and uptime.
func WithClock(now func() time.Time) Option {
	return func(c *Collector) {
		c.now = now
	}
}

// WithObserver registers a callback invoked after each CollectAll step
// with the step name and its duration.
func WithObserver(fn func(step string, d time.Duration)) Option {
	return func(c *Collector) {
		c.observe = fn
	}
}

// Collector reads live OS and runtime state into measurement records.
// Every read is attempted once; degraded metrics become nil or are skipped.
type Collector struct {
	source         Source
	runner         Runner
	probeHost      string
	probeTimeout   time.Duration
	sampleInterval time.Duration
	now            func() time.Time
	observe        func(step string, d time.Duration)
}

// New creates a Collector with production defaults.
func New(opts ...Option) *Collector {
	c := &Collector{
		source:         NewHostSource(),
		runner:         &ExecRunner{},
		probeHost:      defaults.PingHost,
		probeTimeout:   defaults.PingTimeout,
		sampleInterval: defaults.CPUSampleInterval,
		now:            time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CollectAll runs every collection step in a fixed sequence and returns the
// assembled snapshot. A step that cannot read its OS API at all aborts the
// collection; degraded sub-metrics do not.
func (c *Collector) CollectAll(ctx context.Context, topN int) (*measurement.Snapshot, error) {
	slog.Info("collecting host snapshot", "top", topN)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap := &measurement.Snapshot{
		Timestamp: c.now().UTC().Format(time.RFC3339),
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{StepOS, func() error {
			snap.OS = c.OSInfo(ctx)
			return nil
		}},
		{StepUptime, func() (err error) {
			snap.Uptime, err = c.Uptime(ctx)
			return err
		}},
		{StepCPU, func() (err error) {
			snap.CPU, err = c.CPU(ctx)
			return err
		}},
		{StepMemory, func() (err error) {
			snap.Memory, err = c.Memory(ctx)
			return err
		}},
		{StepDisks, func() (err error) {
			snap.Disks, err = c.Disks(ctx)
			return err
		}},
		{StepNetwork, func() (err error) {
			snap.Network, err = c.Network(ctx)
			return err
		}},
		{StepProcesses, func() (err error) {
			snap.TopProcesses, err = c.TopProcesses(ctx, topN)
			return err
		}},
	}

	for _, s := range steps {
		start := time.Now()
		err := s.fn()
		if c.observe != nil {
			c.observe(s.name, time.Since(start))
		}
		if err != nil {
			slog.Error("collection step failed", "step", s.name, "error", err)
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeUnavailable,
				fmt.Sprintf("failed to collect %s", s.name), err,
				map[string]any{"step": s.name})
		}
		slog.Debug("collection step complete", "step", s.name, "duration", time.Since(start))
	}

	return snap, nil
}
