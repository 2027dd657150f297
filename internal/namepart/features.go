// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package namepart

import "unicode"

// CharacterCounts summarizes the rune makeup of a single word. The counts
// drive classification: a word with no vowels is probably initials, a word
// with too much punctuation is probably junk, and so on.
type CharacterCounts struct {
	Chars      int // total runes
	Alpha      int // letters (any script)
	Upper      int // uppercase letters
	ASCIIAlpha int // ASCII letters
}

// CategorizeChars counts the character classes of a word in one pass.
func CategorizeChars(word string) CharacterCounts {
	var c CharacterCounts
	for _, r := range word {
		switch {
		case r >= 'a' && r <= 'z':
			c.ASCIIAlpha++
		case r >= 'A' && r <= 'Z':
			c.ASCIIAlpha++
			c.Upper++
		case unicode.IsUpper(r):
			c.Alpha++
			c.Upper++
		case unicode.IsLetter(r):
			c.Alpha++
		default:
			c.Chars++
		}
	}
	c.Alpha += c.ASCIIAlpha
	c.Chars += c.Alpha
	return c
}

func hasNoVowels(word string) bool {
	for _, r := range word {
		switch r {
		case 'a', 'e', 'i', 'o', 'u', 'y', 'A', 'E', 'I', 'O', 'U', 'Y':
			return false
		}
	}
	return true
}

func startsWithUppercase(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

// hasSequentialAlphas reports whether the word contains two adjacent
// letters. "Dr." does, "D.R." does not; this separates abbreviations from
// period-separated initials.
func hasSequentialAlphas(word string) bool {
	prevAlpha := false
	for _, r := range word {
		alpha := unicode.IsLetter(r)
		if prevAlpha && alpha {
			return true
		}
		prevAlpha = alpha
	}
	return false
}

// combiningChars counts combining marks, which look like punctuation to the
// junk heuristic but are really part of the letters they follow.
func combiningChars(word string) int {
	n := 0
	for _, r := range word {
		if unicode.Is(unicode.Mn, r) {
			n++
		}
	}
	return n
}
