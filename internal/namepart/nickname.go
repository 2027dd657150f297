// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package namepart

import "strings"

type asideDelim struct {
	open, close rune
	bracket     bool // an unterminated bracket swallows the rest of the input
}

// nickname asides are delimited by any of these pairs. Quotes only open an
// aside at a word boundary, so apostrophes inside names ("O'Connor") are
// left alone.
var asideDelims = [...]asideDelim{
	{'(', ')', true},
	{'[', ']', true},
	{'"', '"', false},
	{'“', '”', false}, // curly double quotes
	{'‘', '’', false}, // curly single quotes
	{'«', '»', false}, // guillemets
	{'\'', '\'', false},
}

// StripAsides removes bracketed and quoted asides ("nicknames") from raw
// input before tokenization: `Juan "Don Juan" Xavier` becomes `Juan  Xavier`.
// An unterminated bracket at the end of input is dropped as junk. Returns
// the input unchanged (no allocation) when there is nothing to strip.
func StripAsides(input string) string {
	var b strings.Builder
	changed := false
	rest := input

	for {
		openIdx, delim := nextAside(rest)
		if openIdx < 0 {
			break
		}
		if !changed {
			b.Grow(len(input))
			changed = true
		}
		b.WriteString(rest[:openIdx])

		after := rest[openIdx+runeLen(delim.open):]
		closeIdx := closingIndex(after, delim.close)
		if closeIdx < 0 {
			if delim.bracket {
				// unterminated bracket: drop the remainder
				rest = ""
				break
			}
			// unmatched quote: keep the character, it may be meaningful
			b.WriteRune(delim.open)
			rest = after
			continue
		}
		rest = after[closeIdx+runeLen(delim.close):]
	}

	if !changed {
		return input
	}
	b.WriteString(rest)
	return b.String()
}

// nextAside finds the first rune that opens an aside at a word boundary.
func nextAside(s string) (int, asideDelim) {
	prevBoundary := true
	for i, r := range s {
		if prevBoundary {
			for _, d := range asideDelims {
				if d.open == r {
					return i, d
				}
			}
		}
		prevBoundary = r == ' ' || r == '\t'
	}
	return -1, asideDelim{}
}

// closingIndex finds the matching close delimiter. A straight single quote
// only closes when followed by a space or end of input, so possessives and
// contractions inside the aside do not end it early.
func closingIndex(s string, close rune) int {
	for i, r := range s {
		if r != close {
			continue
		}
		if close == '\'' {
			next := i + runeLen(r)
			if next < len(s) && s[next] != ' ' {
				continue
			}
		}
		return i
	}
	return -1
}

func runeLen(r rune) int {
	return len(string(r))
}
