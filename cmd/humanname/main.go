// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package main provides the entry point for the humanname CLI application.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"humanname/internal/config"
	"humanname/internal/version"
)

// errNotConsistent signals the eq exit status; it carries no message.
var errNotConsistent = errors.New("names not consistent")

var (
	configFile string
	noColor    bool
	verbose    bool
)

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, errNotConsistent) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:           "humanname",
		Short:         "Parse human personal names and check whether two names could be the same person",
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")

	rootCmd.AddCommand(
		newParseCmd(),
		newEqCmd(),
		newVersionCmd(),
	)

	return rootCmd.Execute()
}

// loadConfig resolves the effective configuration and applies the color
// gate: color is off when requested, when configured off, or when stdout
// is not a terminal.
func loadConfig() *config.Config {
	cfg := config.LoadConfigOrDefault(configFile)

	if verbose {
		cfg.Defaults.Verbose = true
	}
	if noColor || cfg.Defaults.NoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.Defaults.NoColor = true
		color.NoColor = true
	}

	return cfg
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Info())
		},
	}
}
