// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/staranto/stagebuild/internal/command"
	mylog "github.com/staranto/stagebuild/internal/log"
	"github.com/staranto/stagebuild/internal/runner"
	"github.com/staranto/stagebuild/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args))
}

func realMain(args []string) int {
	mylog.InitLogger()

	// Short-circuit --version/-v.
	for _, a := range args[1:] {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return 0
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		// A failed stage has already been reported on stdout; exit with its
		// status.
		var ce *runner.CommandError
		if errors.As(err, &ce) {
			return ce.Code
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}
