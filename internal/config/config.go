// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings for the CLI
	Defaults struct {
		Format  string `yaml:"format"`
		Verbose bool   `yaml:"verbose"`
		NoColor bool   `yaml:"no_color"`
		Compact bool   `yaml:"compact"`
	} `yaml:"defaults"`
}

// LoadConfig loads configuration from the specified file path. An empty
// path returns the built-in defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set default values
	config.Defaults.Format = "json"
	config.Defaults.Verbose = false
	config.Defaults.NoColor = false
	config.Defaults.Compact = true

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Store default values before unmarshaling
	defaultCompact := config.Defaults.Compact

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Restore defaults if not explicitly set in config file
	// This handles the case where YAML unmarshaling sets bool fields to false
	// when they're not present in the config file
	if !containsField(data, "defaults", "compact") {
		config.Defaults.Compact = defaultCompact
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first (project-specific config)
	if fileExists(".humanname.yaml") {
		return ".humanname.yaml"
	}
	if fileExists(".humanname.yml") {
		return ".humanname.yml"
	}

	// Check user home directory
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	candidates := []string{
		filepath.Join(home, ".humanname.yaml"),
		filepath.Join(home, ".config", "humanname", "config.yaml"),
	}
	for _, candidate := range candidates {
		if fileExists(candidate) {
			return candidate
		}
	}

	return ""
}

// LoadConfigOrDefault loads the given config file, or the first one found
// in the standard locations, or the built-in defaults. Load errors are
// reported on stderr but never fatal.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		config, _ = LoadConfig("")
	}
	return config
}

// ValidateConfig validates the configuration values
func ValidateConfig(config *Config) error {
	switch config.Defaults.Format {
	case "json", "text", "csv", "yaml":
		return nil
	}
	return fmt.Errorf("invalid format %q (valid formats: json, text, csv, yaml)", config.Defaults.Format)
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// containsField checks if the YAML data explicitly contains a field at the
// given path, so absent booleans keep their defaults
func containsField(data []byte, path ...string) bool {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return false
	}

	current := raw
	for i, key := range path {
		value, exists := current[key]
		if !exists {
			return false
		}
		if i == len(path)-1 {
			return true
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			return false
		}
		current = next
	}
	return false
}
