// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"humanname/internal/formatters"
	"humanname/internal/name"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"cyan":  color.New(color.FgCyan),
			"white": color.New(color.FgWhite, color.Bold),
			"faint": color.New(color.Faint),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

// Format renders one display line per name, or a labeled field breakdown
// in verbose mode.
func (f *Formatter) Format(names []*name.Name, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder
	for i, n := range names {
		if options.Verbose {
			if i > 0 {
				builder.WriteByte('\n')
			}
			f.appendDetailedName(&builder, n)
			continue
		}
		builder.WriteString(n.DisplayFull())
		builder.WriteByte('\n')
	}

	return strings.TrimRight(builder.String(), "\n"), nil
}

// appendDetailedName prints every populated accessor as a labeled line.
func (f *Formatter) appendDetailedName(builder *strings.Builder, n *name.Name) {
	builder.WriteString(f.colors["white"].Sprint(n.DisplayFull()))
	builder.WriteByte('\n')

	fields := []struct {
		label string
		value string
	}{
		{"Surname", n.Surname()},
		{"Given name", n.GivenName()},
		{"Middle names", n.MiddleName()},
		{"Initials", n.Initials()},
		{"Suffix", n.Suffix()},
		{"Honorific", n.HonorificPrefix()},
	}
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		fmt.Fprintf(builder, "  %s %s\n",
			f.colors["cyan"].Sprintf("%-13s", field.label+":"), field.value)
	}
	if n.GoesByMiddleName() {
		builder.WriteString(f.colors["faint"].Sprint("  (goes by middle name)"))
		builder.WriteByte('\n')
	}
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
