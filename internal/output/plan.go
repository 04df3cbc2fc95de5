// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"gopkg.in/yaml.v2"

	"github.com/staranto/stagebuild/internal/config"
	"github.com/staranto/stagebuild/internal/stage"
)

// Formats accepted by Spit.
var Formats = []string{"text", "json", "yaml"}

// Row is one stage of a plan together with the command it would run.
type Row struct {
	Index     int    `json:"index" yaml:"index"`
	Target    string `json:"target" yaml:"target"`
	Tag       string `json:"tag" yaml:"tag"`
	CacheFrom string `json:"cache_from,omitempty" yaml:"cache_from,omitempty"`
	NoCache   bool   `json:"no_cache" yaml:"no_cache"`
	Command   string `json:"command" yaml:"command"`
}

// Options controls rendering.
type Options struct {
	Format string
	Titles bool
	Color  bool
}

// BuildRows resolves the command line for every stage of p.
func BuildRows(p stage.Pipeline, tool, contextDir string) []Row {
	rows := make([]Row, 0, len(p))
	for i, s := range p {
		rows = append(rows, Row{
			Index:     i + 1,
			Target:    s.Target,
			Tag:       s.Tag,
			CacheFrom: s.EffectiveCacheFrom(),
			NoCache:   s.NoCache,
			Command:   s.Command(tool, contextDir),
		})
	}
	return rows
}

// Spit writes rows to w in the requested format.
func Spit(w io.Writer, rows []Row, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	switch opts.Format {
	case "json":
		b, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal plan: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("failed to marshal plan: %w", err)
		}
		_, err = w.Write(b)
		return err
	case "", "text":
		return TableWriter(w, rows, opts)
	default:
		return fmt.Errorf("unknown output format %q, must be one of %v", opts.Format, Formats)
	}
}

// TableWriter renders rows as a borderless table honoring color and titles.
func TableWriter(w io.Writer, rows []Row, opts Options) error {
	if len(rows) == 0 {
		return nil
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			strconv.Itoa(r.Index),
			r.Target,
			r.Tag,
			valueOr(r.CacheFrom, "-"),
			strconv.FormatBool(r.NoCache),
			r.Command,
		})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}
			if col > 0 {
				style = style.PaddingLeft(1)
			}
			return style
		}).
		Headers().
		Rows(cells...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers("#", "TARGET", "TAG", "CACHE FROM", "NO CACHE", "COMMAND").BorderHeader(false)
	}

	log.Debugf("rendering %d plan row(s)", len(rows))
	_, err := fmt.Fprintln(w, t)
	return err
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

func valueOr(s, empty string) string {
	if s == "" {
		return empty
	}
	return s
}
