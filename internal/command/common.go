// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/stagebuild/internal/meta"
	"github.com/staranto/stagebuild/internal/stage"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// ResolvePipeline applies --stage selection and --repo qualification to the
// configured pipeline.
func ResolvePipeline(cmd *cli.Command) (stage.Pipeline, error) {
	m := GetMeta(cmd)

	p := m.Pipeline
	if len(p) == 0 {
		p = stage.DefaultPipeline()
	}

	p, err := stage.Select(p, cmd.StringSlice("stage")...)
	if err != nil {
		return nil, err
	}

	p = p.WithRepository(cmd.String("repo"))
	if err := p.Validate(); err != nil {
		return nil, err
	}

	log.Debugf("resolved pipeline: %v", p.Targets())
	return p, nil
}

// Writer is where a command prints its results.
func Writer(cmd *cli.Command) io.Writer {
	if cmd != nil {
		if root := cmd.Root(); root != nil && root.Writer != nil {
			return root.Writer
		}
	}
	return os.Stdout
}

// PipelineCommandBuilder constructs a cli.Command for subcommands that work on
// the resolved pipeline (run, plan). It wires metadata, the shared pipeline
// flags, and sets up validators.
type PipelineCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (pcb *PipelineCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      pcb.Name,
		Usage:     pcb.Usage,
		UsageText: pcb.UsageText,
		Metadata: map[string]any{
			"meta": pcb.Meta,
		},
		Flags: append(pcb.Flags, NewPipelineFlags(pcb.Name, pcb.Meta.Config.Source)...),
		Action: pcb.Action,
	}
}
