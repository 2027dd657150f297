// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"humanname/internal/name"
)

func newEqCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eq <name> <name|->",
		Short: "Check whether two names could be the same person",
		Long: `Compares the first name against the second, printing "y" when the names
are consistent and "n" when they are not. With "-" as the second
argument, every stdin line is compared against the first name, one
verdict per line. The exit status is 0 when any comparison was
consistent, 1 otherwise.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEq(args[0], args[1])
		},
	}
}

func runEq(reference, candidate string) error {
	loadConfig()

	ref, ok := name.Parse(reference)
	if !ok {
		return fmt.Errorf("could not parse %q as a name", reference)
	}

	anyConsistent := false
	report := func(input string) {
		if compare(ref, input) {
			anyConsistent = true
			color.Green("y")
		} else {
			color.Red("n")
		}
	}

	if candidate != "-" {
		report(candidate)
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			report(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	if !anyConsistent {
		return errNotConsistent
	}
	return nil
}

// compare parses the candidate and checks consistency, using the surname
// hash as the cheap first-pass reject.
func compare(ref *name.Name, input string) bool {
	candidate, ok := name.Parse(input)
	if !ok {
		return false
	}
	if ref.SurnameHash() != candidate.SurnameHash() {
		return false
	}
	return ref.ConsistentWith(candidate)
}
