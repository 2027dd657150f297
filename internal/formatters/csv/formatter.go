// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"fmt"
	"strings"

	"humanname/internal/formatters"
	"humanname/internal/name"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

var headers = []string{
	"surname", "given_name", "middle_names",
	"first_initial", "middle_initials", "suffix", "honorific_prefix",
}

// Format renders a header row followed by one row per name.
func (f *Formatter) Format(names []*name.Name, options formatters.FormatterOptions) (string, error) {
	csvRows := []string{strings.Join(headers, ",")}

	for _, n := range names {
		csvRows = append(csvRows, f.createCSVRow(n))
	}

	return strings.Join(csvRows, "\n"), nil
}

func (f *Formatter) createCSVRow(n *name.Name) string {
	row := []string{
		f.escapeCSVField(n.Surname()),
		f.escapeCSVField(n.GivenName()),
		f.escapeCSVField(n.MiddleName()),
		f.escapeCSVField(n.FirstInitial()),
		f.escapeCSVField(n.MiddleInitials()),
		f.escapeCSVField(n.Suffix()),
		f.escapeCSVField(n.HonorificPrefix()),
	}
	return strings.Join(row, ",")
}

// escapeCSVField properly escapes a field for CSV format and prevents CSV injection
func (f *Formatter) escapeCSVField(field string) string {
	// Prevent CSV injection by sanitizing formula characters
	field = f.sanitizeFormulaInjection(field)

	// If field contains comma, quote, or newline, wrap in quotes and escape internal quotes
	if strings.Contains(field, ",") || strings.Contains(field, "\"") || strings.Contains(field, "\n") || strings.Contains(field, "\r") {
		escaped := strings.ReplaceAll(field, "\"", "\"\"")
		return fmt.Sprintf("\"%s\"", escaped)
	}
	return field
}

// sanitizeFormulaInjection prevents CSV injection attacks by sanitizing formula characters
func (f *Formatter) sanitizeFormulaInjection(field string) string {
	if len(field) == 0 {
		return field
	}

	firstChar := field[0]
	if firstChar == '=' || firstChar == '+' || firstChar == '-' || firstChar == '@' {
		// Prefix with single quote to prevent formula execution
		return "'" + field
	}

	return field
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
