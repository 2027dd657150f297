// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"humanname/internal/formatters"
	_ "humanname/internal/formatters/csv"
	_ "humanname/internal/formatters/json"
	_ "humanname/internal/formatters/text"
	_ "humanname/internal/formatters/yaml"
	"humanname/internal/name"
)

func newParseCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse [name ...]",
		Short: "Parse names into structured fields",
		Long: `Parses each argument (or each stdin line, with "-" or no arguments) as a
personal name and emits the structured fields. Inputs that cannot be
resolved to a name produce no output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, text, csv, yaml)")

	return cmd
}

func runParse(args []string, format string) error {
	cfg := loadConfig()
	if format == "" {
		format = cfg.Defaults.Format
	}

	var names []*name.Name
	failed := 0
	err := eachInput(args, func(input string) {
		parsed, ok := name.Parse(input)
		if !ok {
			failed++
			if cfg.Defaults.Verbose {
				fmt.Fprintf(os.Stderr, "Warning: could not parse %q\n", input)
			}
			return
		}
		names = append(names, parsed)
	})
	if err != nil {
		return err
	}

	output, err := formatters.Export(format, names, formatters.FormatterOptions{
		Verbose: cfg.Defaults.Verbose,
		NoColor: cfg.Defaults.NoColor,
		Compact: cfg.Defaults.Compact,
	})
	if err != nil {
		return err
	}
	if output != "" {
		fmt.Println(output)
	}

	if cfg.Defaults.Verbose && failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d inputs could not be parsed\n", failed, failed+len(names))
	}
	return nil
}

// eachInput applies fn to every name input: each argument, or each stdin
// line when the arguments are empty or a lone "-".
func eachInput(args []string, fn func(string)) error {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		for _, arg := range args {
			fn(arg)
		}
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return nil
}
