// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package name

import (
	"strings"

	"humanname/internal/dictionary"
)

// DisplayShort renders "Given Surname", or "F. Surname" when only the
// first initial is known.
func (n *Name) DisplayShort() string {
	var b strings.Builder
	if given := n.GivenName(); given != "" {
		b.WriteString(given)
	} else {
		b.WriteString(n.FirstInitial())
		b.WriteByte('.')
	}
	b.WriteByte(' ')
	b.WriteString(n.Surname())
	return b.String()
}

// DisplayFull renders every known component: spelled-out words where they
// exist, period-terminated initials where they do not, then the surname
// and a comma-separated suffix. Re-parsing the result reproduces the same
// structured fields.
func (n *Name) DisplayFull() string {
	var b strings.Builder

	wordIdx := 0
	for _, initial := range n.initials {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		if wordIdx < n.surnameIndex && strings.HasPrefix(n.words[wordIdx], string(initial)) {
			b.WriteString(n.words[wordIdx])
			wordIdx++
		} else {
			b.WriteRune(initial)
			b.WriteByte('.')
		}
	}

	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(n.Surname())

	if n.generation != 0 {
		b.WriteString(", ")
		b.WriteString(dictionary.SuffixDisplay(n.generation))
	}

	return b.String()
}
