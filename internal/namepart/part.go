// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package namepart splits raw input into words and classifies each word as
// a name, initials, an abbreviation, or junk. Classification is heuristic
// and depends on where the word sits and whether the input's capitalization
// looks deliberate.
package namepart

import (
	"strings"
	"unicode"

	"humanname/internal/dictionary"
	"humanname/internal/namecase"
)

// Location is the position of a word within the text it came from.
type Location int

const (
	Start Location = iota
	Middle
	End
)

// Category is the classification of a single word.
type Category int

const (
	// CategoryName is a word usable as a name ("John", "Ng").
	CategoryName Category = iota
	// CategoryInitials is one or more initials ("J", "J.K.", "JM").
	CategoryInitials
	// CategoryAbbreviation is a period-terminated abbreviation that is not
	// initials ("Dr.", "Esq.").
	CategoryAbbreviation
	// CategoryOther is junk that cannot be part of a name.
	CategoryOther
)

// Part is one classified word.
type Part struct {
	Word     string
	Counts   CharacterCounts
	Category Category

	// namecased is the display form, set when Category is CategoryName.
	namecased string
}

// FromWord classifies a single word.
func FromWord(word string, trustCapitalization bool, location Location) Part {
	return FromWordAndCounts(word, CategorizeChars(word), trustCapitalization, location)
}

// FromWordAndCounts classifies a word whose character counts are already
// known.
func FromWordAndCounts(word string, counts CharacterCounts, trustCapitalization bool, location Location) Part {
	part := Part{Word: word, Counts: counts}

	namecased := func() string {
		if trustCapitalization && startsWithUppercase(word) {
			return word
		}
		return namecase.Word(word, location == Middle)
	}

	switch {
	case counts.Chars == 1:
		switch {
		case counts.ASCIIAlpha == 1:
			part.Category = CategoryInitials
		case counts.Upper > 0:
			part.Category = CategoryName
			part.namecased = word
		case counts.Alpha > 0:
			part.Category = CategoryName
			part.namecased = strings.ToUpper(word)
		default:
			part.Category = CategoryOther
		}
	case strings.HasSuffix(word, "."):
		if counts.Alpha >= 2 && hasSequentialAlphas(word) {
			part.Category = CategoryAbbreviation
		} else {
			part.Category = CategoryInitials
		}
	case counts.Chars-counts.Alpha > 2 && counts.Chars-counts.Alpha-combiningChars(word) > 2:
		// too much punctuation to be a name
		part.Category = CategoryOther
	case trustCapitalization && counts.Alpha == counts.Upper:
		if counts.Chars <= 5 || (counts.ASCIIAlpha > 0 && hasNoVowels(word)) {
			part.Category = CategoryInitials
		} else {
			part.Category = CategoryName
			part.namecased = namecased()
		}
	case counts.ASCIIAlpha > 0 && hasNoVowels(word):
		switch {
		case location == End && dictionary.IsVowellessSurname(word, trustCapitalization):
			part.Category = CategoryName
			part.namecased = namecased()
		case counts.Chars <= 5:
			part.Category = CategoryInitials
		default:
			part.Category = CategoryOther
		}
	case counts.Chars == 2 && !trustCapitalization && !dictionary.IsTwoLetterGivenName(word):
		part.Category = CategoryInitials
	default:
		part.Category = CategoryName
		part.namecased = namecased()
	}

	return part
}

// AllFromText splits text into words and classifies each. The first word
// gets the given location if it is Start; the last word gets End; words in
// between get Middle.
func AllFromText(text string, trustCapitalization bool, location Location) []Part {
	segs := segments(text)
	parts := make([]Part, 0, len(segs))
	for i, seg := range segs {
		loc := Middle
		if i == 0 && location == Start {
			loc = Start
		} else if i == len(segs)-1 {
			loc = End
		}
		parts = append(parts, FromWordAndCounts(seg.Word, seg.Counts, trustCapitalization, loc))
	}
	return parts
}

func (p *Part) IsInitials() bool {
	return p.Category == CategoryInitials
}

func (p *Part) IsNamelike() bool {
	return p.Category == CategoryName
}

// Namecased returns the display form of the word. Normally called on a
// name, but tolerates initials in case the word was mis-categorized and is
// being used as a name anyway.
func (p *Part) Namecased() string {
	switch {
	case p.Category == CategoryName:
		return p.namecased
	case p.Counts.Upper == 1 && (p.Counts.Alpha == 1 || startsWithUppercase(p.Word)) &&
		p.Word != "Y" && p.Word != "E":
		return p.Word
	default:
		return namecase.Word(p.Word, true)
	}
}

// AppendInitials appends the initials this word contributes. A name
// contributes its first letter; an initials word contributes each of its
// letters, uppercased.
func (p *Part) AppendInitials(b *strings.Builder) {
	switch {
	case p.Category == CategoryName:
		for _, r := range p.namecased {
			if unicode.IsLetter(r) {
				b.WriteRune(unicode.ToUpper(r))
				return
			}
		}
	case p.Counts.Upper == p.Counts.Chars:
		b.WriteString(p.Word)
	default:
		for _, r := range p.Word {
			if unicode.IsUpper(r) {
				b.WriteRune(r)
			} else if unicode.IsLetter(r) {
				b.WriteRune(unicode.ToUpper(r))
			}
		}
	}
}
