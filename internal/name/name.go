// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package name parses free-form personal name strings into a structured,
// immutable Name and compares two Names for consistency. Parsing is
// heuristic and best-effort: it targets Latin-script, Western-ordered
// names and returns no result rather than an error when the input cannot
// support a surname plus a given name or initial.
package name

import (
	"strings"

	"humanname/internal/dictionary"
)

// Name is a parsed personal name. It is constructed once by Parse and is
// immutable afterwards; all methods are read-only and safe for concurrent
// use. Empty-string returns from the optional accessors mean the field is
// absent.
type Name struct {
	// words holds the namecased given name, middle names and surname words
	// in order. Initials that never resolved to a full word are not stored
	// here, only in initials.
	words        []string
	surnameIndex int
	initials     string
	generation   int
	honorific    string
}

// Surname returns the full surname, particles included ("de la Hoya").
// Never empty for a Name produced by Parse.
func (n *Name) Surname() string {
	if len(n.words)-n.surnameIndex == 1 {
		return n.words[n.surnameIndex]
	}
	return strings.Join(n.words[n.surnameIndex:], " ")
}

// GivenName returns the given name, or "" when only an initial is known.
func (n *Name) GivenName() string {
	if n.surnameIndex > 0 {
		return n.words[0]
	}
	return ""
}

// MiddleNames returns the spelled-out middle names, if any. The slice may
// be shorter than MiddleInitials when some middle names are known only by
// initial.
func (n *Name) MiddleNames() []string {
	if n.surnameIndex > 1 {
		return n.words[1:n.surnameIndex]
	}
	return nil
}

// MiddleName returns the middle names joined by spaces, or "".
func (n *Name) MiddleName() string {
	middle := n.MiddleNames()
	if len(middle) == 1 {
		return middle[0]
	}
	return strings.Join(middle, " ")
}

// Initials returns all known initials, first included, as uppercase
// letters with no punctuation. Never empty.
func (n *Name) Initials() string {
	return n.initials
}

// FirstInitial returns the first initial as a one-letter string.
func (n *Name) FirstInitial() string {
	for _, r := range n.initials {
		return string(r)
	}
	return ""
}

// MiddleInitials returns the initials after the first, or "".
func (n *Name) MiddleInitials() string {
	for i := range n.initials {
		if i > 0 {
			return n.initials[i:]
		}
	}
	return ""
}

// Suffix returns the canonical generational suffix ("Jr.", "III", ...),
// or "".
func (n *Name) Suffix() string {
	return dictionary.SuffixDisplay(n.generation)
}

// Generation returns the generation number encoded by the suffix, 1 for
// "Sr.", 2 for "Jr.", and so on. Zero when no suffix was found.
func (n *Name) Generation() int {
	return n.generation
}

// HonorificPrefix returns the honorific title stripped from the front of
// the input ("Dr.", "Rt Hon"), namecased, or "".
func (n *Name) HonorificPrefix() string {
	return n.honorific
}

// GoesByMiddleName reports whether the name looks like "J. Henry Doe":
// a leading initial followed by the name the person actually goes by.
func (n *Name) GoesByMiddleName() bool {
	given := n.GivenName()
	return given != "" && !strings.HasPrefix(given, n.FirstInitial())
}
