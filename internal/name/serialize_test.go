// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package name

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSONFull(t *testing.T) {
	parsed := mustParse(t, "Dr. John A. Kenneth Doe, Jr.")

	raw, err := json.Marshal(parsed)
	require.NoError(t, err)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.Equal(t, map[string]string{
		"surname":          "Doe",
		"given_name":       "John",
		"middle_names":     "Kenneth",
		"first_initial":    "J",
		"middle_initials":  "AK",
		"suffix":           "Jr.",
		"honorific_prefix": "Dr.",
	}, fields)
}

func TestMarshalJSONOmitsAbsentFields(t *testing.T) {
	parsed := mustParse(t, "J. Doe")

	raw, err := json.Marshal(parsed)
	require.NoError(t, err)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(raw, &fields))

	assert.Equal(t, map[string]string{
		"surname":       "Doe",
		"first_initial": "J",
	}, fields)
}
