// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package name

import (
	"hash/fnv"

	"humanname/internal/fold"
)

// SurnameHash returns a 64-bit FNV-1a hash of the folded surname, for
// bucketing names before running ConsistentWith. Consistent names always
// hash equally, because the fold is exactly the surname comparison key;
// the hash deliberately ignores given names and initials, since those may
// be absent on one side. Distinct surnames may still collide, so a hash
// match is a candidate, not a conclusion.
func (n *Name) SurnameHash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(fold.Key(n.Surname())))
	return h.Sum64()
}
