// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package namepart

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// maxWordLen guards against pathological input; longer words are dropped.
const maxWordLen = 255

// Segment is one candidate word of the input, referencing the input string
// directly (no copy on the common path).
type Segment struct {
	Word   string
	Counts CharacterCounts
}

// segments splits text into candidate words. Words are separated by
// whitespace, but a period also ends a word ("J.Doe" splits after "J.").
// Words with no letters are dropped, except a lone "&", which is kept so
// trailing "& Co." phrases strip cleanly. Words with no ASCII letters at
// all (Hangul, Han, ...) are sub-segmented by Unicode word boundaries.
func segments(text string) []Segment {
	var out []Segment
	for len(text) > 0 {
		text = strings.TrimLeftFunc(text, unicode.IsSpace)
		if text == "" {
			break
		}

		end := strings.IndexFunc(text, unicode.IsSpace)
		if end < 0 {
			end = len(text)
		}
		if i := strings.IndexByte(text[:end], '.'); i >= 0 {
			end = i + 1
		}

		word := text[:end]
		text = text[end:]

		if len(word) > maxWordLen {
			continue
		}
		if word == "&" {
			out = append(out, Segment{Word: "&", Counts: CharacterCounts{Chars: 1}})
			continue
		}

		counts := CategorizeChars(word)
		switch {
		case counts.Alpha == 0:
			// not a word
		case counts.ASCIIAlpha == 0:
			out = append(out, unicodeSubsegments(word)...)
		default:
			out = append(out, Segment{Word: word, Counts: counts})
		}
	}
	return out
}

// unicodeSubsegments splits a fully non-ASCII word on Unicode word
// boundaries and keeps the pieces that contain letters.
func unicodeSubsegments(word string) []Segment {
	var out []Segment
	state := -1
	for len(word) > 0 {
		var sub string
		sub, word, state = uniseg.FirstWordInString(word, state)
		counts := CategorizeChars(sub)
		if counts.Alpha > 0 {
			out = append(out, Segment{Word: sub, Counts: counts})
		}
	}
	return out
}
