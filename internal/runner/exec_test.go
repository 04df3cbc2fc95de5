// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package runner

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedShell(t *testing.T) (*ShellExecutor, *bytes.Buffer) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	var out bytes.Buffer
	return &ShellExecutor{Shell: "sh", Stdout: &out, Stderr: &out}, &out
}

func TestShellExecutor_ExitCodes(t *testing.T) {
	e, _ := newBufferedShell(t)

	tests := []struct {
		cmdline string
		want    int
	}{
		{"true", 0},
		{"exit 3", 3},
		{"false", 1},
	}

	for _, tt := range tests {
		t.Run(tt.cmdline, func(t *testing.T) {
			code, err := e.Execute(context.Background(), tt.cmdline)
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestShellExecutor_UsesShell(t *testing.T) {
	e, out := newBufferedShell(t)

	code, err := e.Execute(context.Background(), "echo  one   two | tr a-z A-Z")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "ONE TWO\n", out.String())
}

func TestShellExecutor_MissingShell(t *testing.T) {
	e := &ShellExecutor{Shell: "/nonexistent/shell"}

	_, err := e.Execute(context.Background(), "true")
	assert.ErrorContains(t, err, "failed to run command")
}
