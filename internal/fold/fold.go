// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package fold provides the case- and accent-insensitive comparison keys
// used by name consistency checking and surname hashing. Folding keeps
// letters only: punctuation, spaces and combining marks are dropped, so
// "de la Hoya" and "DE LA HOYA" fold to the same key.
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes compatibility ligatures and accented letters, then
// removes the combining marks left behind.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// asciiLetters reports whether s consists entirely of ASCII letters.
func asciiLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isASCIILetter(s[i]) {
			return false
		}
	}
	return len(s) > 0
}

// Key returns the folded comparison key for s: lowercase letters only,
// accents and combining marks removed. ASCII-letter input takes an
// allocation-light path.
func Key(s string) string {
	if asciiLetters(s) {
		return strings.ToLower(s)
	}

	decomposed, _, err := transform.String(stripMarks, s)
	if err != nil {
		decomposed = s
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r < 128 {
			if isASCIILetter(byte(r)) {
				b.WriteByte(byte(unicode.ToLower(r)))
			}
			continue
		}
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Equal reports whether two strings fold to the same key.
func Equal(a, b string) bool {
	if asciiLetters(a) && asciiLetters(b) {
		return strings.EqualFold(a, b)
	}
	return Key(a) == Key(b)
}

// EqualOrPrefix reports whether one folded key is a prefix of the other.
// Used for given and middle name comparison, where "Dan" and "Daniel" are
// treated as compatible.
func EqualOrPrefix(a, b string) bool {
	ka, kb := Key(a), Key(b)
	if len(ka) > len(kb) {
		ka, kb = kb, ka
	}
	return strings.HasPrefix(kb, ka)
}

// Initial returns the folded uppercase form of an initial letter. Accented
// initials decompose to their base letter ("É" to 'E'); letters with no
// single uppercase form are returned unchanged.
func Initial(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r
	}
	k := Key(string(r))
	if k == "" {
		return unicode.ToUpper(r)
	}
	return unicode.ToUpper([]rune(k)[0])
}
