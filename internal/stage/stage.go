// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package stage

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultTool    = "docker"
	DefaultContext = "."
)

// Stage is a single build invocation. Target names a stage in the external
// multi-stage build file and Tag is the image the invocation produces.
type Stage struct {
	Target    string `yaml:"target" json:"target"`
	Tag       string `yaml:"tag" json:"tag"`
	CacheFrom string `yaml:"cache_from,omitempty" json:"cache_from,omitempty"`
	NoCache   bool   `yaml:"no_cache,omitempty" json:"no_cache,omitempty"`
}

// Validate checks the required fields. Values end up on a shell command line
// so whitespace is rejected outright.
func (s Stage) Validate() error {
	if strings.TrimSpace(s.Target) == "" {
		return errors.New("stage target must not be empty")
	}
	if strings.TrimSpace(s.Tag) == "" {
		return fmt.Errorf("stage %s: tag must not be empty", s.Target)
	}
	for name, v := range map[string]string{
		"target":     s.Target,
		"tag":        s.Tag,
		"cache_from": s.CacheFrom,
	} {
		if strings.ContainsAny(v, " \t\r\n") {
			return fmt.Errorf("stage %s: %s %q must not contain whitespace", s.Target, name, v)
		}
	}
	return nil
}

// NoCacheOption returns the no-cache switch, or "" when caching is allowed.
func (s Stage) NoCacheOption() string {
	if s.NoCache {
		return "--no-cache"
	}
	return ""
}

// EffectiveCacheFrom is the cache source the build will actually be given.
// A forced rebuild wins over any cache source.
func (s Stage) EffectiveCacheFrom() string {
	if s.NoCache {
		return ""
	}
	return s.CacheFrom
}

// CacheFromOption returns the cache source switch, or "".
func (s Stage) CacheFromOption() string {
	if src := s.EffectiveCacheFrom(); src != "" {
		return "--cache-from " + src
	}
	return ""
}

// Command composes the build command line. Empty options keep their
// separating spaces, e.g.
//
//	docker build --no-cache  --target runner -t x:runner .
func (s Stage) Command(tool, contextDir string) string {
	if tool == "" {
		tool = DefaultTool
	}
	if contextDir == "" {
		contextDir = DefaultContext
	}
	return fmt.Sprintf("%s build %s %s --target %s -t %s %s",
		tool, s.NoCacheOption(), s.CacheFromOption(), s.Target, s.Tag, contextDir)
}

// WithRepository qualifies Tag and CacheFrom with an image repository, so
// "runner" becomes "repo:runner". Values that already carry a ":" are kept.
func (s Stage) WithRepository(repo string) Stage {
	if repo == "" {
		return s
	}
	qualify := func(v string) string {
		if v == "" || strings.Contains(v, ":") {
			return v
		}
		return repo + ":" + v
	}
	s.Tag = qualify(s.Tag)
	s.CacheFrom = qualify(s.CacheFrom)
	return s
}
