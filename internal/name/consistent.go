// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package name

import (
	"strings"
	"unicode/utf8"

	"humanname/internal/fold"
)

// ConsistentWith reports whether two names could plausibly denote the same
// person. Missing information never contradicts: "J. Doe" is consistent
// with both "Jane Doe" and "John Doe". The relation is reflexive and
// symmetric but NOT transitive, and is weaker than equality; do not use it
// to derive a unique key.
//
// The checks run cheapest-reject-first: initials, then surname, then the
// spelled-out given and middle names, then suffix.
func (n *Name) ConsistentWith(other *Name) bool {
	return n.initialsConsistent(other) &&
		n.surnameConsistent(other) &&
		n.givenAndMiddleConsistent(other) &&
		n.suffixConsistent(other)
}

// foldInitials maps each stored initial to its folded base letter, so that
// "É" and "E" compare equal the same way folded surnames do.
func foldInitials(initials string) string {
	var b strings.Builder
	b.Grow(len(initials))
	for _, r := range initials {
		b.WriteRune(fold.Initial(r))
	}
	return b.String()
}

func (n *Name) initialsConsistent(other *Name) bool {
	mine := foldInitials(n.initials)
	theirs := foldInitials(other.initials)

	if n.GoesByMiddleName() == other.GoesByMiddleName() {
		// Normal case: the first initials must agree and the middle
		// initial sequences must not diverge, meaning one is a prefix of
		// the other (an absent sequence is the empty prefix).
		myFirst, mySize := utf8.DecodeRuneInString(mine)
		theirFirst, theirSize := utf8.DecodeRuneInString(theirs)
		if myFirst != theirFirst {
			return false
		}
		myMiddle, theirMiddle := mine[mySize:], theirs[theirSize:]
		return strings.HasPrefix(myMiddle, theirMiddle) || strings.HasPrefix(theirMiddle, myMiddle)
	}

	// When exactly one side goes by a middle name ("H. Manuel Alperin" vs
	// "Manuel Alperin"), its leading initial may simply be omitted on the
	// other side, so the requirement relaxes to containment of the
	// shorter initial sequence in the fuller one.
	if n.GoesByMiddleName() {
		return strings.Contains(mine, theirs)
	}
	return strings.Contains(theirs, mine)
}

func (n *Name) surnameConsistent(other *Name) bool {
	return fold.Equal(n.Surname(), other.Surname())
}

// givenAndMiddleConsistent aligns the spelled-out words of both names
// against the fuller initial sequence. Where both sides spell out a word
// for the same initial, the words must be equal after folding, or one must
// be a folded prefix of the other ("Dan" vs "Daniel").
func (n *Name) givenAndMiddleConsistent(other *Name) bool {
	if n.surnameIndex == 0 || other.surnameIndex == 0 {
		return true
	}

	// The initials checks passed, so the longer sequence covers the first
	// letters of every given and middle word on both sides.
	initials := []rune(foldInitials(n.initials))
	if theirs := []rune(foldInitials(other.initials)); len(theirs) > len(initials) {
		initials = theirs
	}

	mine := n.words[:n.surnameIndex]
	theirs := other.words[:other.surnameIndex]

	for _, initial := range initials {
		if len(mine) == 0 || len(theirs) == 0 {
			return true
		}

		// A word is only compared at the position of its own initial; if
		// the next word does not match this initial, this side knows the
		// word only as an initial.
		var myWord, theirWord string
		if leadInitial(mine[0]) == initial {
			myWord, mine = mine[0], mine[1:]
		}
		if leadInitial(theirs[0]) == initial {
			theirWord, theirs = theirs[0], theirs[1:]
		}

		if myWord != "" && theirWord != "" && !fold.EqualOrPrefix(myWord, theirWord) {
			return false
		}
	}

	return true
}

// leadInitial returns the folded initial of a word's first letter.
func leadInitial(word string) rune {
	for _, r := range word {
		return fold.Initial(r)
	}
	return 0
}

func (n *Name) suffixConsistent(other *Name) bool {
	return n.generation == 0 || other.generation == 0 || n.generation == other.generation
}
