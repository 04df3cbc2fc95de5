// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/stagebuild/internal/stage"
)

// NewPipelineFlags returns the flags shared by every command that resolves a
// pipeline. ns is the command name and doubles as the config namespace, so
// "run.tool" overrides "tool" for the run command only. path is the config
// file.
func NewPipelineFlags(ns string, path string) (flags []cli.Flag) {
	flags = []cli.Flag{
		NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.StringFlag{
			Name:  "context",
			Usage: "build context directory",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("STAGEBUILD_CONTEXT"),
			),
			Value: stage.DefaultContext,
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, NotEmptyValidator, NoWhitespaceValidator)
			},
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "image repository used to qualify stage tags, e.g. rchat",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("STAGEBUILD_REPO"),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, NoWhitespaceValidator)
			},
		}),
		&cli.StringSliceFlag{
			Name:    "stage",
			Aliases: []string{"s"},
			Usage:   "only the named stage(s), in pipeline order. Repeatable",
		},
		NameSpacedValueChainFlagFromConfigFile(ns, path, &cli.StringFlag{
			Name:  "tool",
			Usage: "container build tool",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("STAGEBUILD_TOOL"),
			),
			Value: stage.DefaultTool,
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, NotEmptyValidator, NoWhitespaceValidator)
			},
		}),
	}

	return
}

// NewOutputFlags returns the rendering flags of the plan command.
func NewOutputFlags(ns string, path string) []cli.Flag {
	return []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output. Defaults to on for terminals",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"color", altsrc.StringSourcer(path)),
				yaml.YAML("color", altsrc.StringSourcer(path)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"output", altsrc.StringSourcer(path)),
				yaml.YAML("output", altsrc.StringSourcer(path)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"titles", altsrc.StringSourcer(path)),
				yaml.YAML("titles", altsrc.StringSourcer(path)),
			),
			Value: false,
		},
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain, after any env sources.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
