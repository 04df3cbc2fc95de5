// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"context"

	"github.com/staranto/stagebuild/internal/config"
	"github.com/staranto/stagebuild/internal/stage"
)

// Meta are the meta-options that are available on all commands.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	// Pipeline is the pipeline from the config file, or the default one.
	Pipeline    stage.Pipeline
	StartingDir string
}
