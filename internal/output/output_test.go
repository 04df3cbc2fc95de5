// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/staranto/stagebuild/internal/stage"
)

func TestBuildRows(t *testing.T) {
	rows := BuildRows(stage.DefaultPipeline(), "", "")
	require.Len(t, rows, 5)

	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, "base-deps", rows[0].Target)
	assert.Empty(t, rows[0].CacheFrom)

	assert.Equal(t, "dependencies", rows[3].CacheFrom)

	// The runner's cache source is dropped by the forced rebuild.
	assert.Equal(t, 5, rows[4].Index)
	assert.True(t, rows[4].NoCache)
	assert.Empty(t, rows[4].CacheFrom)
	assert.Equal(t, "docker build --no-cache  --target runner -t runner .", rows[4].Command)
}

func TestSpit_JSON(t *testing.T) {
	var buf bytes.Buffer
	rows := BuildRows(stage.DefaultPipeline(), "docker", ".")
	require.NoError(t, Spit(&buf, rows, Options{Format: "json"}))

	var got []Row
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, rows, got)
}

func TestSpit_YAML(t *testing.T) {
	var buf bytes.Buffer
	rows := BuildRows(stage.Pipeline{{Target: "build", Tag: "x:build", CacheFrom: "x:deps"}}, "", "")
	require.NoError(t, Spit(&buf, rows, Options{Format: "yaml"}))

	assert.Contains(t, buf.String(), "target: build")
	assert.Contains(t, buf.String(), "cache_from: x:deps")

	var got []Row
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, rows, got)
}

func TestSpit_Text(t *testing.T) {
	var buf bytes.Buffer
	rows := BuildRows(stage.DefaultPipeline(), "", "")
	require.NoError(t, Spit(&buf, rows, Options{Format: "text", Titles: true}))

	out := buf.String()
	assert.Contains(t, out, "TARGET")
	assert.Contains(t, out, "CACHE FROM")
	for _, r := range rows {
		assert.Contains(t, out, r.Target)
		assert.Contains(t, out, r.Command)
	}
}

func TestSpit_TextNoTitles(t *testing.T) {
	var buf bytes.Buffer
	rows := BuildRows(stage.Pipeline{{Target: "build", Tag: "build"}}, "", "")
	require.NoError(t, Spit(&buf, rows, Options{}))

	out := buf.String()
	assert.NotContains(t, out, "TARGET")
	assert.Contains(t, out, "build")
}

func TestSpit_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Spit(&buf, nil, Options{Format: "text"}))
	assert.Empty(t, buf.String())
}

func TestSpit_UnknownFormat(t *testing.T) {
	err := Spit(&bytes.Buffer{}, nil, Options{Format: "xml"})
	assert.ErrorContains(t, err, "must be one of")
}

func TestValueOr(t *testing.T) {
	assert.Equal(t, "-", valueOr("", "-"))
	assert.Equal(t, "x", valueOr("x", "-"))
}
