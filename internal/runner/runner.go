// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"

	"github.com/staranto/stagebuild/internal/stage"
)

// Runner executes stages against an external build tool.
type Runner struct {
	// Tool is the build tool binary, "docker" when empty.
	Tool string
	// Context is the build context directory, "." when empty.
	Context string
	// DryRun announces commands without executing them.
	DryRun bool

	Executor Executor
	Out      io.Writer
}

// New returns a Runner that executes through the host shell.
func New(tool, contextDir string) *Runner {
	return &Runner{
		Tool:     tool,
		Context:  contextDir,
		Executor: NewShellExecutor(),
		Out:      os.Stdout,
	}
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// ExecuteStage runs a single stage and blocks until the build tool exits. A
// non-zero exit is reported on Out and returned as a *CommandError.
func (r *Runner) ExecuteStage(ctx context.Context, s stage.Stage) error {
	if err := s.Validate(); err != nil {
		return err
	}

	command := s.Command(r.Tool, r.Context)

	if r.DryRun {
		fmt.Fprintf(r.out(), "[DRY RUN] %s\n", command)
		return nil
	}

	fmt.Fprintf(r.out(), "Running: %s\n", command)

	if r.Executor == nil {
		r.Executor = NewShellExecutor()
	}

	start := time.Now()
	code, err := r.Executor.Execute(ctx, command)
	if err != nil {
		return fmt.Errorf("stage %s: %w", s.Target, err)
	}
	log.Debugf("stage %s exited %d after %s", s.Target, code,
		elapsed(start))

	if code != 0 {
		fmt.Fprintf(r.out(), "Command failed with return code %d\n", code)
		return &CommandError{Stage: s, Command: command, Code: code}
	}

	return nil
}

// Run executes the pipeline in order. Stage N+1 starts only after stage N
// exited zero; the first failure ends the run.
func (r *Runner) Run(ctx context.Context, p stage.Pipeline) error {
	start := time.Now()
	for i, s := range p {
		log.Debugf("stage %d/%d: %s", i+1, len(p), s.Target)
		if err := r.ExecuteStage(ctx, s); err != nil {
			return err
		}
	}
	log.Debugf("pipeline of %d stage(s) done in %s", len(p),
		elapsed(start))
	return nil
}

// elapsed renders the time since start, e.g. "3 seconds".
func elapsed(start time.Time) string {
	return strings.TrimSpace(humanize.RelTime(start, time.Now(), "", ""))
}
