// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package rank orders a field's scored candidates deterministically:
// deduplicate by normalized name, sort, filter, truncate.
package rank

import (
	"sort"

	"namecorrect/internal/match"
	"namecorrect/internal/normalize"
)

// DefaultTopK bounds each match list when no override is configured.
const DefaultTopK = 10

// Rank deduplicates candidates by normalized name (keeping the better
// scored one), sorts by descending score, then descending base similarity,
// then ascending name, drops candidates below minScore (score 0 is always
// dropped), and truncates to topK. The input slice is not modified.
func Rank(cands []match.Candidate, topK, minScore int) []match.Candidate {
	if topK <= 0 {
		topK = DefaultTopK
	}
	if minScore < 1 {
		minScore = 1
	}

	best := make(map[string]match.Candidate, len(cands))
	for _, c := range cands {
		if c.Score < minScore {
			continue
		}
		key := normalize.Key(c.Name)
		prev, seen := best[key]
		if !seen || better(c, prev) {
			best[key] = c
		}
	}

	out := make([]match.Candidate, 0, len(best))
	for _, c := range best {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return better(out[i], out[j])
	})

	if len(out) > topK {
		out = out[:topK]
	}
	return out
}

// better implements the ranking order between two candidates.
func better(a, b match.Candidate) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.BaseSimilarity != b.BaseSimilarity {
		return a.BaseSimilarity > b.BaseSimilarity
	}
	return a.Name < b.Name
}
