// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Executor runs a composed command line. code is the process exit status; err
// is reserved for commands that could not be started at all.
type Executor interface {
	Execute(ctx context.Context, cmdline string) (code int, err error)
}

// ShellExecutor runs command lines through "<Shell> -c" with the standard
// streams of the current process.
type ShellExecutor struct {
	Shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewShellExecutor returns a ShellExecutor bound to sh and os.Std*.
func NewShellExecutor() *ShellExecutor {
	return &ShellExecutor{
		Shell:  "sh",
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Execute blocks until the command exits.
func (e *ShellExecutor) Execute(ctx context.Context, cmdline string) (int, error) {
	shell := e.Shell
	if shell == "" {
		shell = "sh"
	}

	cmd := exec.CommandContext(ctx, shell, "-c", cmdline)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	cmd.Env = os.Environ()

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		// Killed by a signal.
		return 1, nil
	}

	if errors.Is(err, context.Canceled) {
		return 0, fmt.Errorf("command canceled: %s", cmdline)
	}
	return 0, fmt.Errorf("failed to run command: %s: %w", cmdline, err)
}
