// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package name

import (
	"strings"
	"unicode"

	"humanname/internal/dictionary"
	"humanname/internal/namepart"
)

// maxInputLen bounds the input so that pathological strings fail fast.
const maxInputLen = 1000

// maxSurnameIndex bounds how many given and middle words a plausible name
// can carry before the surname.
const maxSurnameIndex = 6

// Parse parses a free-form name string. The second return value is false
// when the input cannot be resolved to a surname plus a given name or
// initial; malformed input never causes an error or panic.
func Parse(text string) (*Name, bool) {
	if len(text) >= maxInputLen || !containsLetter(text) {
		return nil, false
	}

	// Capitalization is only a meaningful signal when the input mixes
	// upper and lower case; ALL CAPS and all-lowercase input is recased
	// from scratch.
	trustCapitalization := isMixedCase(text)

	text = namepart.StripAsides(text)

	op := parseOp{trustCapitalization: trustCapitalization}
	words, surnameIndex := op.run(text)

	if !plausible(words, surnameIndex) {
		return nil, false
	}

	return assemble(words, surnameIndex, op.generation, op.honorific), true
}

// plausible is the structural validity check: at least two usable words,
// nothing junk-categorized, a surname that starts past the given name but
// within bounds, and at least one namelike surname word.
func plausible(words []namepart.Part, surnameIndex int) bool {
	if len(words) < 2 || surnameIndex <= 0 || surnameIndex >= maxSurnameIndex {
		return false
	}
	for i := range words {
		if !words[i].IsNamelike() && !words[i].IsInitials() {
			return false
		}
	}
	return anyNamelike(words[surnameIndex:])
}

// assemble builds the immutable entity from the classified words. Words
// before the surname that are bare initials contribute letters to the
// initials string and are dropped; namelike words contribute their first
// letter(s) and are kept.
func assemble(words []namepart.Part, surnameIndex, generation int, honorific []namepart.Part) *Name {
	names := make([]string, 0, len(words))
	var initials strings.Builder
	surnameIndexInNames := surnameIndex

	for i := range words {
		word := &words[i]
		if i < surnameIndex {
			word.AppendInitials(&initials)
			if !word.IsNamelike() {
				surnameIndexInNames--
				continue
			}
		}
		names = append(names, word.Namecased())
	}

	return &Name{
		words:        names,
		surnameIndex: surnameIndexInNames,
		initials:     initials.String(),
		generation:   generation,
		honorific:    honorificDisplay(honorific),
	}
}

func honorificDisplay(parts []namepart.Part) string {
	if len(parts) == 0 {
		return ""
	}
	var b strings.Builder
	for i := range parts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(parts[i].Namecased())
	}
	return b.String()
}

// parseOp tracks state across the comma-separated pieces of one input.
type parseOp struct {
	surnameIndex        int
	generation          int
	honorific           []namepart.Part
	maybeNotPrefix      *namepart.Part
	maybeNotPostfix     *namepart.Part
	trustCapitalization bool
}

func (op *parseOp) run(text string) ([]namepart.Part, int) {
	var words []namepart.Part

	// Peel comma-separated suffixes and titles, then flip the remaining
	// words around the remaining comma, if any.
	for _, piece := range strings.Split(text, ",") {
		switch {
		case len(words) == 0:
			// Either the surname ("Smith, John") or the whole name
			// ("John Smith" or "John Smith, Esq.").
			words = op.handleBeforeComma(piece)
		case op.surnameIndex == 0:
			// One piece processed and it looked like a bare surname, so
			// this may be the given name or initials.
			words = op.handleAfterComma(piece, words)
		default:
			// The full name is already resolved; anything further is a
			// postfix title or suffix.
			op.handleAfterSurname(piece)
		}
	}

	// With two or fewer words left, e.g. "JOHN MA", ambiguous strings
	// like "MA" are better read as surnames than as stripped titles.
	if fixablyInvalid(words, op.surnameIndex) {
		if op.maybeNotPostfix != nil {
			words = append(words, *op.maybeNotPostfix)
		} else if op.maybeNotPrefix != nil {
			words = append([]namepart.Part{*op.maybeNotPrefix}, words...)
		}
	}

	// A trailing word that still looks like initials is probably a stray
	// postfix.
	for len(words) > 0 && !words[len(words)-1].IsNamelike() {
		removed := words[len(words)-1]
		words = words[:len(words)-1]

		// Any earlier surname guess is now stale.
		op.surnameIndex = 0

		// If dropping the word leaves nothing parseable, retry it with
		// capitalization ignored; this rescues an all-caps surname in
		// otherwise mixed-case input ("John SMITH").
		if op.trustCapitalization && fixablyInvalid(words, op.surnameIndex) {
			recased := namepart.FromWord(removed.Namecased(), false, namepart.End)
			if recased.IsNamelike() {
				words = append(words, recased)
				break
			}
		}
	}

	if op.surnameIndex == 0 && len(words) > 1 {
		op.surnameIndex = findSurnameIndex(words)
	}

	return words, op.surnameIndex
}

func fixablyInvalid(words []namepart.Part, surnameIndex int) bool {
	return len(words) < 2 || !anyNamelike(words[surnameIndex:])
}

// handleBeforeComma processes the text before any comma, which holds
// either the whole name or just the surname.
func (op *parseOp) handleBeforeComma(piece string) []namepart.Part {
	words := namepart.AllFromText(piece, op.trustCapitalization, namepart.End)
	if len(words) == 0 {
		return words
	}

	// "Dr. John Smith", "Right Hon. John Smith"
	var title []namepart.Part
	if len(words) > 1 {
		title, words = stripPrefixTitle(words)
	}

	// "John Smith Jr.", "John Smith Esq."
	words = op.stripPostfixes(words, false)

	if title != nil {
		op.foundPrefixTitle(title)
	}
	if bareCompoundSurname(words) {
		// "de la Hoya, Oscar" or "Velasquez y Garcia, Juan": the whole
		// chunk is one compound surname, and the given name, if any, is
		// coming after a comma.
		op.surnameIndex = 0
	} else {
		op.surnameIndex = findSurnameIndex(words)
	}

	return words
}

// bareCompoundSurname reports whether a pre-comma chunk reads as one
// multi-word surname with no given name in front: it starts with a surname
// particle, or its second word is a conjunction joining the words around
// it. Such a chunk waits for the given name after the comma instead of
// sacrificing its leading words.
func bareCompoundSurname(words []namepart.Part) bool {
	if len(words) < 2 {
		return false
	}
	if dictionary.IsSurnameParticle(words[0].Word) {
		return true
	}
	return len(words) >= 3 && dictionary.IsConjunction(words[1].Word) &&
		!words[0].IsInitials() && !words[2].IsInitials()
}

// handleAfterComma processes the piece after the first comma when the text
// before it looked like a bare surname ("Smith, John M.").
func (op *parseOp) handleAfterComma(piece string, surnameWords []namepart.Part) []namepart.Part {
	words := namepart.AllFromText(piece, op.trustCapitalization, namepart.Start)
	if len(words) == 0 {
		return surnameWords
	}

	// Unusual but seen: "Smith, Dr. John M."
	if len(words) > 1 {
		if title, rest := stripPrefixTitle(words); title != nil {
			op.foundPrefixTitle(title)
			words = rest
		}
	}

	// Isolated suffixes ("Griffey, Jr., Ken") and trailing titles
	// ("Smith, John Jr.").
	words = op.stripPostfixes(words, true)

	// Whatever remains includes the given name or first initial, so it
	// moves in front of the surname.
	if len(words) == 0 {
		return surnameWords
	}
	op.surnameIndex = len(words)
	return append(words, surnameWords...)
}

// handleAfterSurname consumes comma-separated trailers once the name is
// fully resolved; they can only be suffixes or postfix titles.
func (op *parseOp) handleAfterSurname(piece string) {
	if op.maybeNotPostfix != nil && op.generation != 0 {
		return
	}

	for _, word := range namepart.AllFromText(piece, op.trustCapitalization, namepart.End) {
		if op.maybeNotPostfix != nil && op.generation != 0 {
			return
		}
		if generation := generationFromSuffix(&word, false); generation != 0 {
			op.foundSuffix(word, generation)
		} else {
			op.foundPostfixTitle(word)
		}
	}
}

// stripPostfixes removes trailing suffix and postfix-title words. Before
// the comma the first word is never a postfix; after a comma, while the
// given name is still unresolved, ambiguous single letters are left alone
// because they are more likely initials.
func (op *parseOp) stripPostfixes(words []namepart.Part, afterComma bool) []namepart.Part {
	skip := 1
	if afterComma {
		skip = 0
	}
	if len(words) <= skip {
		return words
	}
	expectInitials := afterComma && op.surnameIndex == 0

	tail := words[skip:]

	lastNonPostfix := -1
	for i := len(tail) - 1; i >= 0; i-- {
		if generationFromSuffix(&tail[i], expectInitials) == 0 &&
			!isPostfixTitle(&tail[i], expectInitials) {
			lastNonPostfix = i
			break
		}
	}

	firstAbbr := len(tail)
	for i := range tail {
		if !tail[i].IsNamelike() && !tail[i].IsInitials() {
			firstAbbr = i
			break
		}
	}

	firstPostfix := min(firstAbbr+skip, lastNonPostfix+1+skip)
	if firstPostfix >= len(words) {
		return words
	}

	first := words[firstPostfix]
	words = words[:firstPostfix]
	if generation := generationFromSuffix(&first, expectInitials); generation != 0 {
		op.foundSuffix(first, generation)
	} else {
		op.foundPostfixTitle(first)
	}
	return words
}

func (op *parseOp) foundSuffix(suffix namepart.Part, generation int) {
	if op.generation == 0 {
		op.generation = generation
	}
	op.foundPostfixTitle(suffix)
}

// foundPostfixTitle discards a postfix title but remembers the first
// namelike one, in case elimination later shows it was really a surname.
func (op *parseOp) foundPostfixTitle(postfix namepart.Part) {
	if op.maybeNotPostfix == nil && (postfix.IsNamelike() || postfix.IsInitials()) {
		op.maybeNotPostfix = &postfix
	}
}

// foundPrefixTitle records the honorific and remembers its last namelike
// word, mirroring foundPostfixTitle.
func (op *parseOp) foundPrefixTitle(title []namepart.Part) {
	if op.honorific == nil {
		op.honorific = title
	}
	if op.maybeNotPrefix != nil {
		return
	}
	for i := len(title) - 1; i >= 0; i-- {
		if title[i].IsNamelike() || title[i].IsInitials() {
			op.maybeNotPrefix = &title[i]
			return
		}
	}
}

// generationFromSuffix returns the generation a word encodes, or 0. A
// single bare letter ("I", "V") only counts as a suffix when initials are
// not expected at its position.
func generationFromSuffix(part *namepart.Part, mightBeInitials bool) int {
	switch part.Category {
	case namepart.CategoryName:
		return dictionary.GenerationFromSuffix(part.Namecased())
	case namepart.CategoryAbbreviation:
		return dictionary.GenerationFromSuffix(part.Word)
	case namepart.CategoryInitials:
		if part.Counts.Chars > 1 || !mightBeInitials {
			return dictionary.GenerationFromSuffix(part.Word)
		}
	}
	return 0
}

// isPostfixTitle reports whether a word in trailing position reads as a
// discarded title. Namelike words must be in the postfix dictionary;
// multi-letter initial-runs ("MD", "PhD") count unless initials are
// expected there; junk always counts.
func isPostfixTitle(part *namepart.Part, mightBeInitials bool) bool {
	switch {
	case part.IsNamelike():
		return dictionary.IsPostfixTitle(part.Namecased())
	case part.IsInitials():
		return !mightBeInitials && letterCount(part.Word) > 1
	default:
		return true
	}
}

// stripPrefixTitle finds the longest honorific prefix whose final word is
// a plausible title ending and whose other words are all title words, and
// splits it off. Returns (nil, words) when there is no prefix.
func stripPrefixTitle(words []namepart.Part) (title, rest []namepart.Part) {
	for prefixLen := len(words) - 1; prefixLen > 0; prefixLen-- {
		next := &words[prefixLen]
		if (next.IsNamelike() || next.IsInitials()) && isPrefixTitle(words[:prefixLen]) {
			return words[:prefixLen], words[prefixLen:]
		}
	}
	return nil, words
}

func isPrefixTitle(words []namepart.Part) bool {
	if len(words) == 0 {
		return false
	}
	if !mightBeLastTitlePart(&words[len(words)-1]) {
		return false
	}
	for i := 0; i < len(words)-1; i++ {
		if !mightBeTitlePart(&words[i]) {
			return false
		}
	}
	return true
}

func mightBeTitlePart(word *namepart.Part) bool {
	if word.Counts.Chars < 3 {
		return true
	}
	if !word.IsNamelike() {
		return true
	}
	return dictionary.IsPrefixTitleWord(word.Namecased())
}

// mightBeLastTitlePart rejects one- and two-letter words as the final
// title word, except the very common title abbreviations; short trailers
// are otherwise more likely to be initials.
func mightBeLastTitlePart(word *namepart.Part) bool {
	switch word.Counts.Chars {
	case 1:
		return false
	case 2:
		return dictionary.IsTwoCharTitle(word.Word)
	default:
		return mightBeTitlePart(word)
	}
}

// findSurnameIndex guesses where the surname starts. A particle ("de",
// "van") marks the start directly; a single-letter conjunction between two
// full words marks the word before it; otherwise the last word stands
// alone as the surname. Returns 0 when there are not enough words.
func findSurnameIndex(words []namepart.Part) int {
	if len(words) < 2 {
		return 0
	}
	if len(words) == 2 {
		return 1
	}

	// The first word is the given name, so the scan starts after it.
	for i := 1; i < len(words)-1; i++ {
		if dictionary.IsSurnameParticle(words[i].Word) {
			return i
		}
	}

	// "Romero y Galdámez", "Dato e Iradier": the conjunction joins the
	// words on either side into one compound surname.
	for i := 2; i < len(words)-1; i++ {
		if dictionary.IsConjunction(words[i].Word) &&
			!words[i-1].IsInitials() && !words[i+1].IsInitials() {
			return i - 1
		}
	}

	return len(words) - 1
}

func anyNamelike(words []namepart.Part) bool {
	for i := range words {
		if words[i].IsNamelike() {
			return true
		}
	}
	return false
}

func containsLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

func isMixedCase(s string) bool {
	var hasUpper, hasLower bool
	for _, r := range s {
		if unicode.IsUpper(r) {
			hasUpper = true
		} else if unicode.IsLower(r) {
			hasLower = true
		}
		if hasUpper && hasLower {
			return true
		}
	}
	return false
}

func letterCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}
