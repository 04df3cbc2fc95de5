// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/staranto/stagebuild/internal/config"
	"github.com/staranto/stagebuild/internal/meta"
	"github.com/staranto/stagebuild/internal/output"
)

// PlanCommandAction is the action handler for the "plan" subcommand. It
// prints the resolved pipeline and the command each stage would run.
func PlanCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	config.Config.Namespace = "plan"

	p, err := ResolvePipeline(cmd)
	if err != nil {
		return err
	}

	rows := output.BuildRows(p, cmd.String("tool"), cmd.String("context"))
	return output.Spit(Writer(cmd), rows, output.Options{
		Format: cmd.String("output"),
		Titles: cmd.Bool("titles"),
		Color:  useColor(cmd),
	})
}

// PlanCommandBuilder constructs the cli.Command for "plan".
func PlanCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&PipelineCommandBuilder{
		Name:      "plan",
		Usage:     "show the stages and build commands without running them",
		UsageText: `stagebuild plan [options]`,
		Flags:     NewOutputFlags("plan", meta.Config.Source),
		Action:    PlanCommandAction,
		Meta:      meta,
	}).Build()
}

// useColor honors an explicit --color/--no-color and otherwise colors only
// when writing to a terminal.
func useColor(cmd *cli.Command) bool {
	if cmd.IsSet("color") {
		return cmd.Bool("color")
	}
	if f, ok := Writer(cmd).(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
