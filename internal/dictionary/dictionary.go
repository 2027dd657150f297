// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package dictionary holds the static lexical tables used to classify name
// tokens: honorific title words, postfix titles, generational suffixes,
// surname particles, and the casing exception lists. All tables are built
// once at package load and are never mutated, so lookups are safe from any
// goroutine without locking.
package dictionary

import "strings"

// normalizeKey lowercases a token and strips trailing periods so that
// "Jr.", "JR" and "jr" all hit the same table entry.
func normalizeKey(word string) string {
	return strings.ToLower(strings.TrimRight(word, "."))
}

// GenerationFromSuffix returns the generation number (1-9) encoded by a
// suffix token, or 0 if the token is not a generational suffix.
func GenerationFromSuffix(word string) int {
	return generationBySuffix[normalizeKey(word)]
}

// SuffixDisplay returns the canonical display form for a generation number
// ("Sr.", "Jr.", "III", ...). Returns "" for out-of-range values.
func SuffixDisplay(generation int) string {
	if generation < 1 || generation > len(suffixByGeneration) {
		return ""
	}
	return suffixByGeneration[generation-1]
}

// IsPrefixTitleWord reports whether a word may appear inside an honorific
// prefix ("Lt.", "Rt.", "Hon.", "Secretary", ...).
func IsPrefixTitleWord(word string) bool {
	return prefixTitleWords[normalizeKey(word)]
}

// IsTwoCharTitle reports whether a two-letter word is one of the very common
// abbreviated titles (mr, ms, sr, dr). Only these are allowed to end a
// prefix title; any other two-letter word is more likely to be initials.
func IsTwoCharTitle(word string) bool {
	switch normalizeKey(word) {
	case "mr", "ms", "sr", "dr":
		return true
	}
	return false
}

// IsPostfixTitle reports whether a namelike word is a known postfix title
// or separator phrase word ("Esq", "et", "al", "Co", ...). Abbreviations and
// stray initial-runs are recognized as postfix titles positionally by the
// parser, not through this table.
func IsPostfixTitle(word string) bool {
	return postfixTitles[normalizeKey(word)]
}

// IsSurnameParticle reports whether a word is a particle that binds to the
// following surname word ("de", "van", "von", "bin", ...).
func IsSurnameParticle(word string) bool {
	return surnameParticles[normalizeKey(word)]
}

// IsConjunction reports whether a word is a single-letter surname
// conjunction as used in Spanish and Portuguese compound surnames
// ("Velasquez y Garcia", "Dato e Iradier").
func IsConjunction(word string) bool {
	return word == "y" || word == "e" || word == "Y" || word == "E"
}

// IsVowellessSurname reports whether a vowel-free word is a known surname
// rather than a run of initials. When capitalization is trusted the match is
// exact; otherwise it is case-insensitive.
func IsVowellessSurname(word string, trustCapitalization bool) bool {
	if trustCapitalization {
		for _, s := range vowellessSurnames {
			if word == s {
				return true
			}
		}
		return false
	}
	for _, s := range vowellessSurnames {
		if strings.EqualFold(word, s) {
			return true
		}
	}
	return false
}

// IsTwoLetterGivenName reports whether a two-letter word is a reasonably
// common given name ("Jo", "Ty", "Al", ...) rather than a pair of initials.
func IsTwoLetterGivenName(word string) bool {
	return twoLetterGivenNames[strings.ToLower(word)]
}

// LowercaseParticle reports whether a word is a particle that stays
// lowercase when a surname is recased ("de la Hoya", "van der Berg").
// Capitalization-dependent particles like "ben" and "bin" are deliberately
// absent: those keep whatever case the input gave them.
func LowercaseParticle(word string) bool {
	return uncapitalizedParticles[strings.ToLower(word)]
}

// IsMacException reports whether a Mac-prefixed surname should NOT have the
// letter after "Mac" capitalized ("Machado", not "MacHado"). The lookup is
// case-insensitive.
func IsMacException(word string) bool {
	return macExceptions[strings.ToLower(word)]
}
