// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package similarity computes the base string similarity between a query
// and a candidate name, independent of phonetics.
package similarity

import (
	"math"

	"github.com/agnivade/levenshtein"

	"namecorrect/internal/normalize"
)

// Ratio returns a 0-100 similarity between query and candidate. Both inputs
// are normalized (case and diacritics folded) before a length-normalized
// Levenshtein ratio is computed:
//
//	ratio = 100 * (1 - distance / max(len(query), len(candidate)))
//
// Identical normalized forms always yield exactly 100, including when both
// inputs are empty. An empty query against a non-empty candidate (and the
// reverse) yields 0.
func Ratio(query, candidate string) int {
	q := normalize.Key(query)
	c := normalize.Key(candidate)

	if q == c {
		return 100
	}
	if q == "" || c == "" {
		return 0
	}

	distance := levenshtein.ComputeDistance(q, c)
	longest := len([]rune(q))
	if l := len([]rune(c)); l > longest {
		longest = l
	}

	ratio := 100 * (1 - float64(distance)/float64(longest))
	if ratio < 0 {
		return 0
	}
	return int(math.Round(ratio))
}
