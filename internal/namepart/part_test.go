// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package namepart

import (
	"strings"
	"testing"
)

func TestFromWordCategories(t *testing.T) {
	cases := []struct {
		word      string
		trustCaps bool
		location  Location
		want      Category
	}{
		{"John", true, Start, CategoryName},
		{"JOHN", true, Start, CategoryInitials},
		{"JOHN", false, Start, CategoryName},
		{"J", true, Start, CategoryInitials},
		{"J.", true, Start, CategoryInitials},
		{"J.K.", true, Start, CategoryInitials},
		{"Dr.", true, Start, CategoryAbbreviation},
		{"Ph.D.", true, End, CategoryAbbreviation},
		{"JM", false, Start, CategoryInitials},
		{"Jo", false, Start, CategoryName},
		{"Xq", false, Start, CategoryInitials},
		{"Ng", false, End, CategoryName},
		{"Ng", false, Middle, CategoryInitials},
		{"SMITH", true, End, CategoryInitials},
		{"Smith", true, End, CategoryName},
		{"PPELD", true, End, CategoryInitials},
		{"#$%^", true, Middle, CategoryOther},
		{"&", true, Middle, CategoryOther},
		{"傅", false, End, CategoryName},
	}
	for _, tc := range cases {
		part := FromWord(tc.word, tc.trustCaps, tc.location)
		if part.Category != tc.want {
			t.Errorf("FromWord(%q, trustCaps=%v, loc=%v) = category %v, want %v",
				tc.word, tc.trustCaps, tc.location, part.Category, tc.want)
		}
	}
}

func TestAllFromTextCounts(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"one word", "John", 1},
		{"two words with junk", "&* John Doe! ☃", 2},
		{"only junk", " ... 23 ", 0},
		{"period splits word", "J.Doe", 2},
		{"han word splits per ideograph", "鈴木 Smith", 3},
		{"empty", "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := len(AllFromText(tc.text, true, Start)); got != tc.want {
				t.Errorf("AllFromText(%q) produced %d parts, want %d", tc.text, got, tc.want)
			}
		})
	}
}

func TestAllFromTextLocations(t *testing.T) {
	// A particle only lowercases in middle position, so the starting
	// location is observable through the namecased forms.
	parts := AllFromText("de la smith", false, Start)
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(parts))
	}
	for i, want := range []string{"De", "la", "Smith"} {
		if got := parts[i].Namecased(); got != want {
			t.Errorf("part %d namecased = %q, want %q", i, got, want)
		}
	}

	// Passed a non-start location, the first word is mid-name.
	parts = AllFromText("de la smith", false, End)
	if got := parts[0].Namecased(); got != "de" {
		t.Errorf("first part namecased = %q, want %q", got, "de")
	}
}

func TestAllFromTextUnicodeSubsegments(t *testing.T) {
	// A word with no ASCII letters splits on Unicode word boundaries, and
	// every resulting piece classifies as a name.
	parts := AllFromText("鈴木 Garcia", true, End)
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(parts))
	}
	for i, want := range []string{"鈴", "木", "Garcia"} {
		if parts[i].Word != want {
			t.Errorf("part %d = %q, want %q", i, parts[i].Word, want)
		}
		if !parts[i].IsNamelike() {
			t.Errorf("part %q classified as %v, want a name", parts[i].Word, parts[i].Category)
		}
	}
}

func TestNamecased(t *testing.T) {
	cases := []struct {
		word      string
		trustCaps bool
		location  Location
		want      string
	}{
		{"john", false, Start, "John"},
		{"SMITH", false, End, "Smith"},
		{"Smith", true, End, "Smith"},
		{"DE", false, Middle, "de"},
		{"macdonald", false, End, "MacDonald"},
	}
	for _, tc := range cases {
		part := FromWord(tc.word, tc.trustCaps, tc.location)
		if got := part.Namecased(); got != tc.want {
			t.Errorf("Namecased(%q) = %q, want %q", tc.word, got, tc.want)
		}
	}
}

func TestAppendInitials(t *testing.T) {
	cases := []struct {
		word      string
		trustCaps bool
		want      string
	}{
		{"John", true, "J"},
		{"Doe-Ray", true, "D"},
		{"J.K.", true, "JK"},
		{"JM", false, "JM"},
		{"j.", false, "J"},
	}
	for _, tc := range cases {
		part := FromWord(tc.word, tc.trustCaps, Start)
		var b strings.Builder
		part.AppendInitials(&b)
		if got := b.String(); got != tc.want {
			t.Errorf("AppendInitials(%q) = %q, want %q", tc.word, got, tc.want)
		}
	}
}
