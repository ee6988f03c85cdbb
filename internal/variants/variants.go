// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package variants generates plausible Nordic spellings of a name from a
// static orthographic substitution table: digraphs that historically encode
// Scandinavian letters (aa for å, oe for ø or ö), Germanic simplifications
// (ph to f, sch to sk), and Icelandic accent patterns.
//
// Each substitution site produces one variant per applicable replacement;
// substitutions are not combined, matching the behavior of the upstream
// rule set. Replacements preserve the leading capitalization of the
// replaced segment.
package variants

import (
	"sort"
	"strings"
	"unicode"
)

// subRule is one replacement choice for a source segment. An empty
// countries list means the rule applies everywhere; exclude removes
// specific countries from an otherwise unrestricted rule.
type subRule struct {
	target    string
	countries []string
	exclude   []string
}

// substitutions maps lower-case source segments to their replacement
// rules. Longer segments are applied first and claim their positions, so
// "sch" wins over "ch" which wins over "c".
var substitutions = map[string][]subRule{
	"sch": {{target: "sk"}},
	"aa":  {{target: "å", countries: []string{"SE", "DK", "NO"}}},
	"ae": {
		{target: "æ", countries: []string{"DK", "NO", "IS"}},
		{target: "ä", countries: []string{"SE", "FI"}},
	},
	"oe": {
		{target: "ø", countries: []string{"DK", "NO"}},
		{target: "ö", countries: []string{"SE", "FI", "IS"}},
	},
	"th": {
		{target: "þ", countries: []string{"IS"}},
		{target: "t"},
	},
	"ph": {{target: "f"}},
	"ch": {{target: "k"}},
	"ck": {{target: "k"}},
	"qu": {{target: "kv"}},
	"a": {
		{target: "å", countries: []string{"SE", "DK"}},
		{target: "ä", countries: []string{"SE", "FI"}},
		{target: "á", countries: []string{"IS"}},
	},
	"o": {
		{target: "ö", countries: []string{"SE", "FI", "IS"}},
		{target: "ø", countries: []string{"DK", "NO"}},
		{target: "ó", countries: []string{"IS"}},
	},
	"e": {{target: "é", countries: []string{"IS"}}},
	"i": {{target: "í", countries: []string{"IS"}}},
	"u": {{target: "ú", countries: []string{"IS"}}},
	"y": {{target: "ý", countries: []string{"IS"}}},
	"d": {{target: "ð", countries: []string{"IS"}}},
	"c": {
		{target: "k"},
		{target: "s"},
	},
	"w": {{target: "v", exclude: []string{"FI"}}},
	"x": {{target: "ks"}},
	"z": {{target: "s"}},
}

// patternSubs are two-letter, country-keyed patterns that commonly mark a
// vowel shift (Göran written as Goran, Søren as Soren).
var patternSubs = map[string]map[string]string{
	"go": {"SE": "gö", "DK": "gø", "NO": "gø"},
	"so": {"SE": "sö", "DK": "sø", "NO": "sø"},
	"mo": {"DK": "mø", "NO": "mø"},
}

// initialSubs apply to the first letter only.
var initialSubs = map[string]map[string]string{
	"t": {"IS": "þ"},
}

// segment lengths in descending application order.
var segmentLengths = []int{3, 2, 1}

// Generate returns all rule-generated variants of name, sorted and without
// the input itself. country filters country-restricted rules; pass the
// empty string to apply every rule. An empty name yields no variants.
func Generate(name, country string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	original := []rune(name)
	lower := []rune(strings.ToLower(name))
	results := make(map[string]struct{})
	processed := make(map[int]struct{})

	for _, length := range segmentLengths {
		if length > len(lower) {
			continue
		}
		for i := 0; i+length <= len(lower); i++ {
			if _, done := processed[i]; done {
				continue
			}
			seg := string(lower[i : i+length])
			rules, ok := substitutions[seg]
			if !ok {
				continue
			}
			applied := false
			for _, rule := range rules {
				if !ruleApplies(rule, country) {
					continue
				}
				replacement := preserveCase(original[i:i+length], rule.target)
				variant := string(original[:i]) + replacement + string(original[i+length:])
				results[variant] = struct{}{}
				applied = true
			}
			if applied {
				for j := 0; j < length; j++ {
					processed[i+j] = struct{}{}
				}
			}
		}
	}

	for i := 0; i+2 <= len(lower); i++ {
		pattern := string(lower[i : i+2])
		sub, ok := patternSubs[pattern]
		if !ok {
			continue
		}
		for cc, replacement := range sub {
			if country != "" && country != cc {
				continue
			}
			variant := string(original[:i]) + preserveCase(original[i:i+2], replacement) + string(original[i+2:])
			results[variant] = struct{}{}
		}
	}

	if _, done := processed[0]; !done {
		if sub, ok := initialSubs[string(lower[0])]; ok {
			for cc, replacement := range sub {
				if country != "" && country != cc {
					continue
				}
				variant := preserveCase(original[:1], replacement) + string(original[1:])
				results[variant] = struct{}{}
			}
		}
	}

	delete(results, name)

	out := make([]string, 0, len(results))
	for v := range results {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// ruleApplies checks a rule's country restrictions against the (possibly
// empty) query country.
func ruleApplies(rule subRule, country string) bool {
	if country == "" {
		return true
	}
	for _, cc := range rule.exclude {
		if cc == country {
			return false
		}
	}
	if len(rule.countries) == 0 {
		return true
	}
	for _, cc := range rule.countries {
		if cc == country {
			return true
		}
	}
	return false
}

// preserveCase applies the casing of the replaced segment to the
// replacement: an upper-case leading letter keeps the replacement
// title-cased, everything else stays lower-case.
func preserveCase(source []rune, replacement string) string {
	if len(source) == 0 || replacement == "" {
		return replacement
	}
	if unicode.IsUpper(source[0]) {
		runes := []rune(strings.ToLower(replacement))
		runes[0] = unicode.ToUpper(runes[0])
		return string(runes)
	}
	return strings.ToLower(replacement)
}
