// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"
	"strings"

	"humanname/internal/formatters"
	"humanname/internal/name"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

// Format renders one JSON object per parsed name. In compact mode each
// object occupies a single line, the shape line-oriented consumers expect;
// otherwise the names are emitted as an indented JSON array.
func (f *Formatter) Format(names []*name.Name, options formatters.FormatterOptions) (string, error) {
	if options.Compact {
		var builder strings.Builder
		for _, n := range names {
			data, err := json.Marshal(n)
			if err != nil {
				return "", fmt.Errorf("error formatting JSON: %w", err)
			}
			builder.Write(data)
			builder.WriteByte('\n')
		}
		return strings.TrimRight(builder.String(), "\n"), nil
	}

	if len(names) == 0 {
		return "[]", nil
	}
	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error formatting JSON: %w", err)
	}
	return string(data), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
