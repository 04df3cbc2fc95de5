// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"errors"
	"fmt"

	"github.com/staranto/stagebuild/internal/stage"
)

// CommandError is returned when a stage's build command exits non-zero.
type CommandError struct {
	Stage   stage.Stage
	Command string
	Code    int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("stage %s failed (exit=%d): %s", e.Stage.Target, e.Code, e.Command)
}

// ExitCode maps err to a process exit status. A failed stage keeps its own
// status, anything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return 1
}
