// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package namecase recases name words for display: first letter uppercase,
// remainder lowercase, with the exceptions real names demand. Hyphenated and
// apostrophe-joined segments capitalize independently ("Doe-Ray",
// "O'Connor"), Mac/Mc surnames capitalize the letter after the prefix unless
// listed as an exception ("MacDonald" but "Machado"), and surname particles
// stay lowercase ("de la Hoya").
package namecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"humanname/internal/dictionary"
)

// nonASCIIHyphens are normalized to '-' during recasing.
const nonASCIIHyphens = "‐‑‒–—―−－﹘﹣"

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func allASCIIAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isASCIIAlpha(s[i]) {
			return false
		}
	}
	return len(s) > 0
}

// Word recases a single name word. mightBeParticle is set for words in a
// position where a surname particle could occur; known particles are then
// kept entirely lowercase.
func Word(word string, mightBeParticle bool) string {
	if word == "" {
		return word
	}
	if mightBeParticle && dictionary.LowercaseParticle(word) {
		return strings.ToLower(word)
	}

	var result string
	if allASCIIAlpha(word) {
		result = capitalizeASCII(word)
	} else {
		result = capitalizeUnicode(word)
	}

	return applyMacRule(result)
}

// capitalizeASCII is the fast path: one allocation, no table lookups.
func capitalizeASCII(word string) string {
	b := make([]byte, len(word))
	b[0] = byte(unicode.ToUpper(rune(word[0])))
	for i := 1; i < len(word); i++ {
		b[i] = byte(unicode.ToLower(rune(word[i])))
	}
	return string(b)
}

// capitalizeUnicode decomposes the word (expanding ligatures), recases each
// segment, and recomposes for display. Segments are separated by any
// non-alphanumeric rune other than a combining mark, so hyphenated and
// apostrophe-joined compounds capitalize each part.
func capitalizeUnicode(word string) string {
	decomposed := norm.NFKD.String(word)

	var b strings.Builder
	b.Grow(len(decomposed))
	capitalizeNext := true
	for _, r := range decomposed {
		switch {
		case capitalizeNext && unicode.IsLetter(r):
			if r == 'ß' {
				b.WriteString("Ss")
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			capitalizeNext = false
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r):
			b.WriteRune(unicode.ToLower(r))
		default:
			capitalizeNext = true
			if strings.ContainsRune(nonASCIIHyphens, r) {
				b.WriteRune('-')
			} else {
				b.WriteRune(r)
			}
		}
	}

	return norm.NFC.String(b.String())
}

// applyMacRule capitalizes the letter following a "Mac"/"Mc" prefix, except
// for surnames in the exception table.
func applyMacRule(word string) string {
	rest := ""
	prefix := ""
	switch {
	case len(word) > 4 && strings.HasPrefix(word, "Mac") && !dictionary.IsMacException(word):
		prefix, rest = "Mac", word[3:]
	case len(word) > 3 && strings.HasPrefix(word, "Mc"):
		prefix, rest = "Mc", word[2:]
	default:
		return word
	}
	if !isASCIIAlpha(rest[0]) {
		return word
	}
	return prefix + string(byte(unicode.ToUpper(rune(rest[0])))) + rest[1:]
}
