// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package dictionary

// surnameParticles lists words that mark the probable start of a compound
// surname. A particle binds to the surname side, never to the given or
// middle names. Keys are lowercase.
var surnameParticles = func() map[string]bool {
	words := []string{
		"abu", "abd", "al", "bar", "ben", "bin", "bon", "da", "das", "dal",
		"de", "del", "dela", "della", "den", "der", "des", "di", "dí", "do",
		"dos", "du", "ibn", "la", "le", "lo", "na", "san", "santa", "st",
		"ste", "ten", "ter", "van", "vel", "von", "zu", "zur",
	}
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}()

// uncapitalizedParticles is the subset of particles that are lowercased
// when a surname is recased. "ben", "bin" and "al" are excluded: those stay
// capitalized unless the input itself wrote them lowercase.
var uncapitalizedParticles = func() map[string]bool {
	words := []string{
		"af", "av", "da", "das", "dal", "de", "del", "dela", "della", "den",
		"der", "des", "di", "dí", "do", "dos", "du", "e", "la", "le", "na",
		"ten", "ter", "van", "vel", "von", "y", "zu", "zur",
	}
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}()

// vowellessSurnames lists known surnames with no vowels, which would
// otherwise classify as initial-runs when they appear in surname position.
var vowellessSurnames = [...]string{"Ng", "Lv", "Mtz", "Hdz"}

// macExceptions lists surnames beginning with "Mac" where the letter after
// the prefix is NOT independently capitalized ("Machado", not "MacHado").
var macExceptions = func() map[string]bool {
	words := []string{
		"macedo", "macevicius", "machado", "machar", "machin", "machlin",
		"macias", "maciulis", "mackie", "macklin", "mackle", "macomber",
		"macquarie", "macey", "macken", "machen", "maclin", "macon",
	}
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}()

// twoLetterGivenNames lists two-letter given names common enough in the US
// Social Security data to outweigh the initials interpretation when
// capitalization is not trusted.
var twoLetterGivenNames = func() map[string]bool {
	words := []string{
		"ab", "ai", "aj", "al", "an", "bo", "cy", "da", "de", "di", "do",
		"ed", "el", "em", "ev", "gi", "go", "ha", "ho", "ja", "ji", "jo",
		"ka", "ki", "ky", "la", "le", "li", "lo", "lu", "ly", "ma", "mi",
		"mo", "my", "na", "om", "oz", "pa", "ra", "ry", "su", "sy", "tu",
		"ty", "vi", "vu", "vy", "yi", "yu",
	}
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}()
