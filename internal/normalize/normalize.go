// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package normalize provides the shared string normalization used for corpus
// lookup keys and similarity comparisons: case folding, Scandinavian letter
// expansion, and diacritic stripping.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents removes combining marks after NFD decomposition, turning
// "ä" into "a" and "é" into "e".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// specialLetters handles letters that do not decompose into a base letter
// plus combining marks and would otherwise survive accent stripping.
var specialLetters = strings.NewReplacer(
	"æ", "ae",
	"ø", "o",
	"œ", "oe",
	"ð", "d",
	"þ", "th",
	"ß", "ss",
	"đ", "d",
	"ł", "l",
)

// Key returns the normalized lookup form of a name: lower-cased,
// diacritic-stripped, with surrounding whitespace trimmed and internal runs
// of whitespace collapsed to a single space. Key("Åke") == Key("ake").
func Key(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	s = specialLetters.Replace(s)
	if folded, _, err := transform.String(stripAccents, s); err == nil {
		s = folded
	}
	return strings.Join(strings.Fields(s), " ")
}

// Equal reports whether two names share the same normalized form.
func Equal(a, b string) bool {
	return Key(a) == Key(b)
}
