// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package phonetic encodes names into Double Metaphone code pairs.
//
// Standard Double Metaphone only understands the basic Latin alphabet, so
// Scandinavian letters are first mapped onto their closest phonetic ASCII
// equivalents (Å sounds like "o", Ä and Æ like "e", Þ like "th") before the
// consonant/vowel rule table runs. Encoding is fully deterministic and free
// of locale dependence.
package phonetic

import (
	"strings"
	"unicode"

	"github.com/antzucaro/matchr"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// scandinavianLetters maps letters the Double Metaphone rule table cannot
// see onto phonetic ASCII equivalents. Lower case only; input is lower-cased
// before the replacement pass.
var scandinavianLetters = strings.NewReplacer(
	"å", "o",
	"ä", "e",
	"æ", "e",
	"ö", "o",
	"ø", "o",
	"þ", "th",
	"ð", "d",
	"ü", "u",
	"ß", "s",
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Encode returns the primary and secondary Double Metaphone codes for name.
// When the algorithm produces no alternate pronunciation the secondary code
// equals the primary. Empty or entirely non-alphabetic input yields two
// empty strings.
func Encode(name string) [2]string {
	prepared := prepare(name)
	if prepared == "" {
		return [2]string{"", ""}
	}
	primary, secondary := matchr.DoubleMetaphone(prepared)
	if secondary == "" {
		secondary = primary
	}
	return [2]string{primary, secondary}
}

// Overlap reports whether two code pairs share at least one non-empty code.
func Overlap(a, b [2]string) bool {
	for _, ac := range a {
		if ac == "" {
			continue
		}
		if ac == b[0] || ac == b[1] {
			return true
		}
	}
	return false
}

// prepare lower-cases the input, maps Scandinavian letters to ASCII
// equivalents, strips remaining diacritics, and drops anything that is not
// a basic Latin letter.
func prepare(name string) string {
	s := scandinavianLetters.Replace(strings.ToLower(name))
	if folded, _, err := transform.String(stripAccents, s); err == nil {
		s = folded
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
