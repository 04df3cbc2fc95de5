// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/stagebuild/internal/meta"
	"github.com/staranto/stagebuild/internal/runner"
)

// newExecutor builds the executor used by run. Tests replace it.
var newExecutor = func() runner.Executor {
	return runner.NewShellExecutor()
}

// RunCommandAction is the action handler for the "run" subcommand. It executes
// the resolved pipeline stage by stage and returns the first stage failure as
// a *runner.CommandError.
func RunCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	p, err := ResolvePipeline(cmd)
	if err != nil {
		return err
	}

	r := runner.New(cmd.String("tool"), cmd.String("context"))
	r.DryRun = cmd.Bool("dry-run")
	r.Executor = newExecutor()
	r.Out = Writer(cmd)

	return r.Run(ctx, p)
}

// RunCommandBuilder constructs the cli.Command for "run".
func RunCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&PipelineCommandBuilder{
		Name:      "run",
		Usage:     "build every stage in order, stopping at the first failure",
		UsageText: `stagebuild run [options]`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"n"},
				Usage:   "print the build commands without running them",
				Sources: cli.NewValueSourceChain(
					cli.EnvVar("STAGEBUILD_DRY_RUN"),
					yaml.YAML("run.dry_run", altsrc.StringSourcer(meta.Config.Source)),
				),
				Value: false,
			},
		},
		Action: RunCommandAction,
		Meta:   meta,
	}).Build()
}
