// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"strings"
	"testing"

	"humanname/internal/formatters"
	"humanname/internal/name"
)

func parseAll(t *testing.T, inputs ...string) []*name.Name {
	t.Helper()
	var names []*name.Name
	for _, input := range inputs {
		parsed, ok := name.Parse(input)
		if !ok {
			t.Fatalf("expected %q to parse", input)
		}
		names = append(names, parsed)
	}
	return names
}

func TestFormatCompact(t *testing.T) {
	formatter := NewFormatter()
	names := parseAll(t, "Jane Doe", "John Smith")

	output, err := formatter.Format(names, formatters.FormatterOptions{Compact: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(output, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected one line per name, got %d lines", len(lines))
	}
	for _, line := range lines {
		var fields map[string]string
		if err := json.Unmarshal([]byte(line), &fields); err != nil {
			t.Errorf("line %q is not valid JSON: %v", line, err)
		}
	}

	var first map[string]string
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first["surname"] != "Doe" {
		t.Errorf("expected surname=Doe, got %q", first["surname"])
	}
	if first["given_name"] != "Jane" {
		t.Errorf("expected given_name=Jane, got %q", first["given_name"])
	}
}

func TestFormatIndented(t *testing.T) {
	formatter := NewFormatter()
	names := parseAll(t, "Jane Doe")

	output, err := formatter.Format(names, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []map[string]string
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not a valid JSON array: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 element, got %d", len(decoded))
	}
	if !strings.Contains(output, "\n") {
		t.Error("expected indented output to span multiple lines")
	}
}

func TestFormatEmpty(t *testing.T) {
	formatter := NewFormatter()

	output, err := formatter.Format(nil, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "[]" {
		t.Errorf("expected empty array, got %q", output)
	}

	output, err = formatter.Format(nil, formatters.FormatterOptions{Compact: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "" {
		t.Errorf("expected empty compact output, got %q", output)
	}
}

func TestRegisteredByDefault(t *testing.T) {
	if _, exists := formatters.Get("json"); !exists {
		t.Error("expected json formatter to self-register")
	}
}
