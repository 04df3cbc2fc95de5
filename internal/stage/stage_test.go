// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package stage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_EndToEnd(t *testing.T) {
	tests := []struct {
		name  string
		stage Stage
		want  string
	}{
		{
			name:  "no cache",
			stage: Stage{Target: "runner", Tag: "x:runner", NoCache: true},
			want:  "docker build --no-cache  --target runner -t x:runner .",
		},
		{
			name:  "cache from",
			stage: Stage{Target: "build", Tag: "x:build", CacheFrom: "x:deps"},
			want:  "docker build  --cache-from x:deps --target build -t x:build .",
		},
		{
			name:  "plain",
			stage: Stage{Target: "base-deps", Tag: "base-deps"},
			want:  "docker build   --target base-deps -t base-deps .",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stage.Command("", ""))
		})
	}
}

func TestCommand_CacheOptions(t *testing.T) {
	tests := []struct {
		name          string
		stage         Stage
		wantNoCache   bool
		wantCacheFrom string
	}{
		{"no-cache wins over source", Stage{Target: "t", Tag: "i", CacheFrom: "src", NoCache: true}, true, ""},
		{"no-cache without source", Stage{Target: "t", Tag: "i", NoCache: true}, true, ""},
		{"source only", Stage{Target: "t", Tag: "i", CacheFrom: "src"}, false, "--cache-from src"},
		{"neither", Stage{Target: "t", Tag: "i"}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.stage.Command("docker", ".")

			assert.Equal(t, tt.wantNoCache, strings.Contains(cmd, "--no-cache"))
			if tt.wantCacheFrom == "" {
				assert.NotContains(t, cmd, "--cache-from")
			} else {
				assert.Contains(t, cmd, tt.wantCacheFrom)
			}

			assert.Equal(t, 1, strings.Count(cmd, "--target "+tt.stage.Target+" "))
			assert.Equal(t, 1, strings.Count(cmd, " -t "+tt.stage.Tag+" "))
		})
	}
}

func TestCommand_ToolAndContext(t *testing.T) {
	s := Stage{Target: "build", Tag: "build"}
	assert.Equal(t, "podman build   --target build -t build ./app", s.Command("podman", "./app"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		stage   Stage
		wantErr string
	}{
		{"valid", Stage{Target: "build", Tag: "x:build"}, ""},
		{"empty target", Stage{Tag: "x:build"}, "target must not be empty"},
		{"blank target", Stage{Target: "  ", Tag: "x:build"}, "target must not be empty"},
		{"empty tag", Stage{Target: "build"}, "tag must not be empty"},
		{"space in tag", Stage{Target: "build", Tag: "x build"}, "must not contain whitespace"},
		{"space in cache source", Stage{Target: "build", Tag: "b", CacheFrom: "a b"}, "must not contain whitespace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.stage.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestWithRepository(t *testing.T) {
	s := Stage{Target: "runner", Tag: "runner", CacheFrom: "project-builder", NoCache: true}

	got := s.WithRepository("rchat")
	assert.Equal(t, "rchat:runner", got.Tag)
	assert.Equal(t, "rchat:project-builder", got.CacheFrom)
	assert.True(t, got.NoCache)
	assert.Equal(t, "runner", s.Tag, "receiver must not change")

	qualified := Stage{Target: "build", Tag: "other:build"}.WithRepository("rchat")
	assert.Equal(t, "other:build", qualified.Tag)
	assert.Empty(t, qualified.CacheFrom)

	assert.Equal(t, s, s.WithRepository(""))
}

func TestEffectiveCacheFrom(t *testing.T) {
	assert.Equal(t, "src", Stage{CacheFrom: "src"}.EffectiveCacheFrom())
	assert.Empty(t, Stage{CacheFrom: "src", NoCache: true}.EffectiveCacheFrom())
	assert.Empty(t, Stage{}.CacheFromOption())
}
