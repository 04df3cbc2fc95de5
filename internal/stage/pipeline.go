// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package stage

import (
	"fmt"
	"strings"
)

// Pipeline is an ordered list of stages. Order is execution order.
type Pipeline []Stage

// DefaultPipeline is the canonical five stage build. The runtime image is
// always rebuilt from scratch.
func DefaultPipeline() Pipeline {
	return Pipeline{
		{Target: "base-deps", Tag: "base-deps"},
		{Target: "project-builder", Tag: "project-builder", CacheFrom: "base-deps"},
		{Target: "dependencies", Tag: "dependencies"},
		{Target: "build", Tag: "build", CacheFrom: "dependencies"},
		{Target: "runner", Tag: "runner", CacheFrom: "project-builder", NoCache: true},
	}
}

// Validate validates every stage.
func (p Pipeline) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("pipeline has no stages")
	}
	for i, s := range p {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("stage %d: %w", i+1, err)
		}
	}
	return nil
}

// Targets lists the stage targets in order.
func (p Pipeline) Targets() []string {
	targets := make([]string, 0, len(p))
	for _, s := range p {
		targets = append(targets, s.Target)
	}
	return targets
}

// WithRepository applies Stage.WithRepository to a copy of the pipeline.
func (p Pipeline) WithRepository(repo string) Pipeline {
	out := make(Pipeline, len(p))
	for i, s := range p {
		out[i] = s.WithRepository(repo)
	}
	return out
}

// Select returns the stages whose targets are named, keeping pipeline order.
// No names selects the whole pipeline.
func Select(p Pipeline, names ...string) (Pipeline, error) {
	if len(names) == 0 {
		return p, nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = false
	}

	var out Pipeline
	for _, s := range p {
		if _, ok := want[s.Target]; ok {
			want[s.Target] = true
			out = append(out, s)
		}
	}

	var unknown []string
	for _, n := range names {
		if !want[n] {
			unknown = append(unknown, n)
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown stage(s) %s, must be one of %v",
			strings.Join(unknown, ","), p.Targets())
	}

	return out, nil
}
