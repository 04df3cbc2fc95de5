// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/stagebuild/internal/config"
	"github.com/staranto/stagebuild/internal/meta"
	"github.com/staranto/stagebuild/internal/stage"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// A missing config file is fine, everything has a default. A config file
	// that exists but cannot be read or parsed is not.
	cfg, err := config.Load()
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	pipeline, ok, err := cfg.Pipeline()
	if err != nil {
		return nil, err
	}
	if !ok {
		pipeline = stage.DefaultPipeline()
	}
	log.Debugf("pipeline: %v", pipeline.Targets())

	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		Pipeline:    pipeline,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:           "stagebuild",
		Usage:          "build a multi-stage image one stage at a time",
		DefaultCommand: "run",
		Writer:         os.Stdout,
		ErrWriter:      os.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "stagebuild version info",
				HideDefault: true,
			},
		},
		// Exit codes are decided by main, never by the cli package.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}

	app.Commands = append(app.Commands,
		RunCommandBuilder(app, meta),
		PlanCommandBuilder(app, meta),
		CompletionCommandBuilder(app, meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
