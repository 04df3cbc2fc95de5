// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"

	"github.com/staranto/stagebuild/internal/stage"
)

// FileName is the config file looked up in the standard locations.
const FileName = "stagebuild.yaml"

type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

var Config Type

// ErrNotFound is returned by Load when no config file exists in any of the
// standard locations.
var ErrNotFound = errors.New("no config file found in standard locations")

// Load reads the config file. An explicit path wins over the lookup chain.
// When no file is found the global Config is reset and ErrNotFound returned,
// which callers that only want defaults can ignore.
func Load(cfgFilePath ...string) (Type, error) {
	var path string
	if len(cfgFilePath) > 0 && cfgFilePath[0] != "" {
		path = cfgFilePath[0]
	} else {
		p, err := getConfigPath()
		if err != nil {
			Config = Type{}
			return Config, err
		}
		path = p
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	Config = Type{
		Source: path,
		Data:   data}

	return Config, nil
}

// get traverses the map using a dotted key path, trying the namespaced key
// first.
func (cfg *Type) get(kspec string) (any, error) {
	candidateKeys := []string{kspec}
	if cfg.Namespace != "" {
		candidateKeys = []string{cfg.Namespace + "." + kspec, kspec}
	}

	for _, key := range candidateKeys {
		keys := strings.Split(key, ".")
		var current interface{} = cfg.Data

		success := true
		for _, key := range keys {
			m, ok := current.(map[string]interface{})
			if !ok {
				success = false
				break
			}
			current, ok = m[key]
			if !ok {
				success = false
				break
			}
		}

		if success {
			return current, nil
		}
	}

	return nil, fmt.Errorf("no valid path found among: %v", candidateKeys)
}

func GetString(key string, defaultValue ...string) (string, error) {
	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", errors.New("value is not a string")
	}

	return s, nil
}

func GetBool(key string, defaultValue ...bool) (bool, error) {
	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return false, err
	}

	b, ok := val.(bool)
	if !ok {
		return false, errors.New("value is not a bool")
	}

	return b, nil
}

// Pipeline decodes the top level "stages" list. ok is false when the config
// does not define one, in which case the caller falls back to the default
// pipeline.
func (cfg *Type) Pipeline() (p stage.Pipeline, ok bool, err error) {
	raw, found := cfg.Data["stages"]
	if !found || raw == nil {
		return nil, false, nil
	}

	// Round-trip through YAML so the stage struct tags drive decoding.
	b, err := yaml.Marshal(raw)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read stages from %s: %w", cfg.Source, err)
	}
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, true, fmt.Errorf("failed to read stages from %s: %w", cfg.Source, err)
	}
	if err := p.Validate(); err != nil {
		return nil, true, fmt.Errorf("%s: %w", cfg.Source, err)
	}

	return p, true, nil
}

func getConfigPath() (string, error) {
	if p := os.Getenv("STAGEBUILD_CFG"); p != "" {
		if fileInfo, err := os.Stat(p); err == nil && !fileInfo.IsDir() {
			log.Debugf("using config file from STAGEBUILD_CFG: %s", p)
			return p, nil
		}
		return "", fmt.Errorf("STAGEBUILD_CFG %s is not a file", p)
	}

	wd, _ := os.Getwd()
	var candidates []string = []string{
		wd,
		os.Getenv("XDG_CONFIG_HOME"),
		os.Getenv("APPDATA"),
		os.Getenv("HOME"),
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		file := filepath.Join(c, FileName)
		if fileInfo, err := os.Stat(file); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using config file: %s", file)
				return file, nil
			}
		}
	}
	return "", ErrNotFound
}
