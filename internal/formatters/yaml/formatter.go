// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	"humanname/internal/formatters"
	"humanname/internal/name"

	"gopkg.in/yaml.v3"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML format output, same field structure as JSON"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

// yamlName mirrors the JSON serialization shape.
type yamlName struct {
	Surname         string `yaml:"surname"`
	GivenName       string `yaml:"given_name,omitempty"`
	MiddleNames     string `yaml:"middle_names,omitempty"`
	FirstInitial    string `yaml:"first_initial"`
	MiddleInitials  string `yaml:"middle_initials,omitempty"`
	Suffix          string `yaml:"suffix,omitempty"`
	HonorificPrefix string `yaml:"honorific_prefix,omitempty"`
}

// Format renders the names as a YAML document under a "names" key.
func (f *Formatter) Format(names []*name.Name, options formatters.FormatterOptions) (string, error) {
	if len(names) == 0 {
		return "names: []\n", nil
	}

	document := struct {
		Names []yamlName `yaml:"names"`
	}{Names: make([]yamlName, 0, len(names))}

	for _, n := range names {
		document.Names = append(document.Names, yamlName{
			Surname:         n.Surname(),
			GivenName:       n.GivenName(),
			MiddleNames:     n.MiddleName(),
			FirstInitial:    n.FirstInitial(),
			MiddleInitials:  n.MiddleInitials(),
			Suffix:          n.Suffix(),
			HonorificPrefix: n.HonorificPrefix(),
		})
	}

	yamlData, err := yaml.Marshal(document)
	if err != nil {
		return "", fmt.Errorf("error formatting YAML: %w", err)
	}

	return string(yamlData), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
