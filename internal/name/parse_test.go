// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package name

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input          string
		surname        string
		givenName      string
		middleName     string
		firstInitial   string
		middleInitials string
		suffix         string
	}{
		{
			input:        "Linda Jones",
			surname:      "Jones",
			givenName:    "Linda",
			firstInitial: "L",
		},
		{
			input:          "Doe, John A. Kenneth III",
			surname:        "Doe",
			givenName:      "John",
			middleName:     "Kenneth",
			firstInitial:   "J",
			middleInitials: "AK",
			suffix:         "III",
		},
		{
			input:        "Juan Velasquez y Garcia",
			surname:      "Velasquez y Garcia",
			givenName:    "Juan",
			firstInitial: "J",
		},
		{
			input:        "Velasquez y Garcia, Juan",
			surname:      "Velasquez y Garcia",
			givenName:    "Juan",
			firstInitial: "J",
		},
		{
			input:        "de la Hoya, Oscar",
			surname:      "de la Hoya",
			givenName:    "Oscar",
			firstInitial: "O",
		},
		{
			input:        "van der Berg, Jan",
			surname:      "van der Berg",
			givenName:    "Jan",
			firstInitial: "J",
		},
		{
			input:        "MR OSCAR DE LA HOYA JR",
			surname:      "de la Hoya",
			givenName:    "Oscar",
			firstInitial: "O",
			suffix:       "Jr.",
		},
		{
			input:          "Larry James Johnson I",
			surname:        "Johnson",
			givenName:      "Larry",
			middleName:     "James",
			firstInitial:   "L",
			middleInitials: "J",
			suffix:         "Sr.",
		},
		{
			input:        "John SMITH",
			surname:      "Smith",
			givenName:    "John",
			firstInitial: "J",
		},
		{
			input:        "DOE, JOHN",
			surname:      "Doe",
			givenName:    "John",
			firstInitial: "J",
		},
		{
			input:        "Griffey, Jr., Ken",
			surname:      "Griffey",
			givenName:    "Ken",
			firstInitial: "K",
			suffix:       "Jr.",
		},
		{
			input:        "Dr. John Smith",
			surname:      "Smith",
			givenName:    "John",
			firstInitial: "J",
		},
		{
			input:          "M.D. ANDREWS, MD",
			surname:        "Andrews",
			firstInitial:   "M",
			middleInitials: "D",
		},
		{
			input:          "Andrews, M.D.",
			surname:        "Andrews",
			firstInitial:   "M",
			middleInitials: "D",
		},
		{
			input:          "J. Henry Doe",
			surname:        "Doe",
			givenName:      "Henry",
			firstInitial:   "J",
			middleInitials: "H",
		},
		{
			input:        "John Smith, Esq.",
			surname:      "Smith",
			givenName:    "John",
			firstInitial: "J",
		},
		{
			input:        "JOHN MA",
			surname:      "Ma",
			givenName:    "John",
			firstInitial: "J",
		},
		{
			input:        `Juan "Don Juan" Xavier`,
			surname:      "Xavier",
			givenName:    "Juan",
			firstInitial: "J",
		},
		{
			input:        "o'connor, mary-jane",
			surname:      "O'Connor",
			givenName:    "Mary-Jane",
			firstInitial: "M",
		},
		{
			input:        "John Ng",
			surname:      "Ng",
			givenName:    "John",
			firstInitial: "J",
		},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			parsed, ok := Parse(tc.input)
			require.True(t, ok, "expected %q to parse", tc.input)

			assert.Equal(t, tc.surname, parsed.Surname())
			assert.Equal(t, tc.givenName, parsed.GivenName())
			assert.Equal(t, tc.middleName, parsed.MiddleName())
			assert.Equal(t, tc.firstInitial, parsed.FirstInitial())
			assert.Equal(t, tc.middleInitials, parsed.MiddleInitials())
			assert.Equal(t, tc.suffix, parsed.Suffix())
		})
	}
}

func TestParseFailures(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"John",
		"Smith",
		"Dr. Smith",
		"foo@bar.com",
		"...",
		"123 456",
		strings.Repeat("a b ", 300),
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, ok := Parse(input)
			assert.False(t, ok, "expected %q not to parse", input)
		})
	}
}

func TestParseHonorificPrefix(t *testing.T) {
	parsed, ok := Parse("Dr. John Smith")
	require.True(t, ok)
	assert.Equal(t, "Dr.", parsed.HonorificPrefix())

	parsed, ok = Parse("John Smith")
	require.True(t, ok)
	assert.Empty(t, parsed.HonorificPrefix())
}

func TestParseGoesByMiddleName(t *testing.T) {
	parsed, ok := Parse("J. Henry Doe")
	require.True(t, ok)
	assert.True(t, parsed.GoesByMiddleName())

	parsed, ok = Parse("John Henry Doe")
	require.True(t, ok)
	assert.False(t, parsed.GoesByMiddleName())

	// No given name at all: nothing to go by
	parsed, ok = Parse("J. Doe")
	require.True(t, ok)
	assert.False(t, parsed.GoesByMiddleName())
}

func TestParseInitialsExpand(t *testing.T) {
	// A multi-letter initial-run contributes one initial per letter
	parsed, ok := Parse("Doe, J.A.K.")
	require.True(t, ok)
	assert.Equal(t, "JAK", parsed.Initials())
	assert.Equal(t, "J", parsed.FirstInitial())
	assert.Equal(t, "AK", parsed.MiddleInitials())
	assert.Empty(t, parsed.GivenName())
}

func TestParseIdempotentUnderDisplay(t *testing.T) {
	inputs := []string{
		"Linda Jones",
		"Doe, John A. Kenneth III",
		"Juan Velasquez y Garcia",
		"MR OSCAR DE LA HOYA JR",
		"Larry James Johnson I",
		"J. Henry Doe",
		"M.D. ANDREWS, MD",
		"Griffey, Jr., Ken",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, ok := Parse(input)
			require.True(t, ok)

			second, ok := Parse(first.DisplayFull())
			require.True(t, ok, "expected %q to re-parse", first.DisplayFull())

			assert.Equal(t, first.Surname(), second.Surname())
			assert.Equal(t, first.GivenName(), second.GivenName())
			assert.Equal(t, first.Initials(), second.Initials())
			assert.Equal(t, first.Suffix(), second.Suffix())
		})
	}
}
