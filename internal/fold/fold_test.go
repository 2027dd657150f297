// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package fold

import "testing"

func TestKey(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Smith", "smith"},
		{"SMITH", "smith"},
		{"de la Hoya", "delahoya"},
		{"O'Connor", "oconnor"},
		{"Doe-Ray", "doeray"},
		{"Müller", "muller"},
		{"Gutiérrez", "gutierrez"},
		{"SØRENSEN", "sørensen"},
		{"", ""},
		{"...", ""},
	}
	for _, tc := range cases {
		if got := Key(tc.input); got != tc.want {
			t.Errorf("Key(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestEqual(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Smith", "SMITH", true},
		{"Gutiérrez", "Gutierrez", true},
		{"de la Hoya", "De La Hoya", true},
		{"Smith", "Smyth", false},
		{"Doe", "Dee", false},
	}
	for _, tc := range cases {
		if got := Equal(tc.a, tc.b); got != tc.want {
			t.Errorf("Equal(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestEqualOrPrefix(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Dan", "Daniel", true},
		{"Daniel", "Dan", true},
		{"Jane", "Jane", true},
		{"José", "Jose", true},
		{"Jane", "John", false},
		{"", "Jane", true},
	}
	for _, tc := range cases {
		if got := EqualOrPrefix(tc.a, tc.b); got != tc.want {
			t.Errorf("EqualOrPrefix(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestInitial(t *testing.T) {
	cases := []struct {
		input rune
		want  rune
	}{
		{'J', 'J'},
		{'j', 'J'},
		{'é', 'E'},
		{'Ö', 'O'},
	}
	for _, tc := range cases {
		if got := Initial(tc.input); got != tc.want {
			t.Errorf("Initial(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
