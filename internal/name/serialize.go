// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package name

import "encoding/json"

// serializedName mirrors the accessor surface for interchange. Absent
// fields are omitted entirely rather than serialized empty.
type serializedName struct {
	Surname         string `json:"surname"`
	GivenName       string `json:"given_name,omitempty"`
	MiddleNames     string `json:"middle_names,omitempty"`
	FirstInitial    string `json:"first_initial"`
	MiddleInitials  string `json:"middle_initials,omitempty"`
	Suffix          string `json:"suffix,omitempty"`
	HonorificPrefix string `json:"honorific_prefix,omitempty"`
}

// MarshalJSON implements json.Marshaler. There is no unmarshaling
// counterpart; the round trip is DisplayFull plus a re-parse.
func (n *Name) MarshalJSON() ([]byte, error) {
	return json.Marshal(serializedName{
		Surname:         n.Surname(),
		GivenName:       n.GivenName(),
		MiddleNames:     n.MiddleName(),
		FirstInitial:    n.FirstInitial(),
		MiddleInitials:  n.MiddleInitials(),
		Suffix:          n.Suffix(),
		HonorificPrefix: n.HonorificPrefix(),
	})
}
