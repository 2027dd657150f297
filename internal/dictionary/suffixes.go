// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package dictionary

// suffixByGeneration maps a generation number (index+1) to its canonical
// display form. Note that generation 1 displays as "Sr." and 2 as "Jr.";
// an input of "II" is therefore rendered "Jr.", and a lone "I" that the
// parser resolves as a suffix is rendered "Sr.".
var suffixByGeneration = [...]string{
	"Sr.", "Jr.", "III", "IV", "V", "VI", "VII", "VIII", "IX",
}

// generationBySuffix maps normalized suffix tokens to generation numbers.
// Keys are lowercase with trailing periods stripped.
var generationBySuffix = map[string]int{
	"sr":     1,
	"snr":    1,
	"senior": 1,
	"i":      1,
	"1st":    1,
	"jr":     2,
	"jnr":    2,
	"junior": 2,
	"ii":     2,
	"2nd":    2,
	"iii":    3,
	"3rd":    3,
	"iv":     4,
	"4th":    4,
	"v":      5,
	"5th":    5,
	"vi":     6,
	"6th":    6,
	"vii":    7,
	"7th":    7,
	"viii":   8,
	"8th":    8,
	"ix":     9,
	"9th":    9,
}
