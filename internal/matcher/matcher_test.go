// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namecorrect/internal/corpus"
	"namecorrect/internal/match"
)

func newTestMatcher(t *testing.T, opts ...Option) *Matcher {
	t.Helper()
	store, err := corpus.LoadEmbedded()
	require.NoError(t, err)
	return New(store, opts...)
}

func TestCorrectCanonicalQuery(t *testing.T) {
	m := newTestMatcher(t)
	result := m.Correct(match.Query{
		FirstName:   "Ake",
		LastName:    "Svensson",
		CountryCode: "SE",
	})

	require.NotEmpty(t, result.FirstNameMatches)
	require.NotEmpty(t, result.LastNameMatches)

	first := result.FirstNameMatches[0]
	assert.Equal(t, "Åke", first.Name)
	assert.Equal(t, 100, first.Score)
	assert.True(t, first.IsNordic)
	assert.True(t, first.InDataset)
	assert.True(t, first.IsQueryVariant)

	last := result.LastNameMatches[0]
	assert.Equal(t, "Svensson", last.Name)
	assert.Equal(t, 100, last.Score)
	assert.True(t, last.IsNordic)
	assert.True(t, last.InDataset)
	assert.False(t, last.IsQueryVariant)
	assert.True(t, last.HasReason(match.ExactMatch))
	assert.True(t, last.HasReason(match.NordicBonus))
}

func TestCorrectEmptyFields(t *testing.T) {
	m := newTestMatcher(t)

	result := m.Correct(match.Query{})
	assert.Empty(t, result.FirstNameMatches)
	assert.Empty(t, result.LastNameMatches)

	result = m.Correct(match.Query{FirstName: "   ", LastName: "\t"})
	assert.Empty(t, result.FirstNameMatches)
	assert.Empty(t, result.LastNameMatches)
}

func TestCorrectOneFieldOnly(t *testing.T) {
	m := newTestMatcher(t)
	result := m.Correct(match.Query{FirstName: "Erik"})
	assert.NotEmpty(t, result.FirstNameMatches)
	assert.Empty(t, result.LastNameMatches)
}

func TestCorrectNonAlphabeticField(t *testing.T) {
	m := newTestMatcher(t)
	result := m.Correct(match.Query{FirstName: "12345", LastName: "!!!"})
	assert.Empty(t, result.FirstNameMatches)
	assert.Empty(t, result.LastNameMatches)
}

func TestCorrectUnknownCountry(t *testing.T) {
	m := newTestMatcher(t)
	result := m.Correct(match.Query{FirstName: "Erik", CountryCode: "ZZ"})

	require.NotEmpty(t, result.FirstNameMatches)
	for _, c := range result.FirstNameMatches {
		for _, r := range c.ScoreReasons {
			assert.NotEqual(t, match.PopularInCountry, r.Kind,
				"unknown country must not contribute popularity scoring for %s", c.Name)
			assert.NotEqual(t, match.CountryMismatch, r.Kind,
				"unknown country must not contribute mismatch scoring for %s", c.Name)
		}
	}
}

func TestCorrectCountryCaseInsensitive(t *testing.T) {
	m := newTestMatcher(t)
	upper := m.Correct(match.Query{FirstName: "Ake", CountryCode: "SE"})
	lower := m.Correct(match.Query{FirstName: "Ake", CountryCode: "se"})
	assert.Equal(t, upper, lower)
}

func TestCorrectIncludesRuleVariants(t *testing.T) {
	m := newTestMatcher(t)
	// "Soeren" has no corpus entry, but the oe rule produces "Søren"
	// which does. The rule path must not duplicate corpus candidates.
	result := m.Correct(match.Query{FirstName: "Thorvald", CountryCode: "DK"})

	var sawRule bool
	for _, c := range result.FirstNameMatches {
		if c.HasReason(match.RuleGenerated) {
			sawRule = true
			assert.False(t, c.InDataset)
			assert.True(t, c.IsNordic)
			assert.True(t, c.IsQueryVariant)
		}
	}
	assert.True(t, sawRule, "expected at least one rule-generated candidate")
}

func TestCorrectRuleVariantsNeverDuplicateCorpus(t *testing.T) {
	m := newTestMatcher(t)
	// The oe rule maps "Soeren" to the corpus name "Søren"; only the
	// corpus-backed candidate may appear.
	result := m.Correct(match.Query{FirstName: "Soeren", CountryCode: "DK"})

	seen := map[string]int{}
	for _, c := range result.FirstNameMatches {
		seen[c.Name]++
	}
	assert.Equal(t, 1, seen["Søren"])
	for _, c := range result.FirstNameMatches {
		if c.Name == "Søren" {
			assert.True(t, c.InDataset)
		}
	}
}

func TestCorrectScoreBounds(t *testing.T) {
	m := newTestMatcher(t)
	queries := []match.Query{
		{FirstName: "Bjorn", LastName: "Sorensen", CountryCode: "NO"},
		{FirstName: "Gudrun", LastName: "Jonsdottir", CountryCode: "IS"},
		{FirstName: "Mikael", LastName: "Makinen", CountryCode: "FI"},
		{FirstName: "Q", LastName: "X"},
	}
	for _, q := range queries {
		result := m.Correct(q)
		for _, t2 := range match.Types() {
			for _, c := range result.Matches(t2) {
				assert.GreaterOrEqual(t, c.Score, 1, "%+v -> %s", q, c.Name)
				assert.LessOrEqual(t, c.Score, 100, "%+v -> %s", q, c.Name)
				assert.Equal(t, t2, c.Type)
			}
		}
	}
}

func TestCorrectRankingOrder(t *testing.T) {
	m := newTestMatcher(t)
	result := m.Correct(match.Query{LastName: "Jensen", CountryCode: "DK"})

	require.NotEmpty(t, result.LastNameMatches)
	assert.Equal(t, "Jensen", result.LastNameMatches[0].Name)
	for i := 1; i < len(result.LastNameMatches); i++ {
		assert.GreaterOrEqual(t,
			result.LastNameMatches[i-1].Score,
			result.LastNameMatches[i].Score)
	}
}

func TestCorrectDeterministic(t *testing.T) {
	m := newTestMatcher(t)
	q := match.Query{FirstName: "Bjorn", LastName: "Sorensen", CountryCode: "SE"}

	base := m.Correct(q)
	for i := 0; i < 20; i++ {
		assert.True(t, reflect.DeepEqual(base, m.Correct(q)), "run %d diverged", i)
	}
}

func TestCorrectWorkerCountsAgree(t *testing.T) {
	store, err := corpus.LoadEmbedded()
	require.NoError(t, err)

	q := match.Query{FirstName: "Karin", LastName: "Lindqvist", CountryCode: "SE"}
	sequential := New(store, WithWorkers(1)).Correct(q)
	for _, workers := range []int{2, 4, 16} {
		parallel := New(store, WithWorkers(workers)).Correct(q)
		assert.Equal(t, sequential, parallel, "workers=%d", workers)
	}
}

func TestCorrectTopK(t *testing.T) {
	m := newTestMatcher(t, WithTopK(3))
	result := m.Correct(match.Query{FirstName: "Anna"})
	assert.LessOrEqual(t, len(result.FirstNameMatches), 3)
}

func TestCorrectMinScore(t *testing.T) {
	m := newTestMatcher(t, WithMinScore(90))
	result := m.Correct(match.Query{LastName: "Svenson", CountryCode: "SE"})
	for _, c := range result.LastNameMatches {
		assert.GreaterOrEqual(t, c.Score, 90)
	}
}

func TestNameDetails(t *testing.T) {
	m := newTestMatcher(t)

	d, ok := m.NameDetails(match.FirstName, "ake")
	require.True(t, ok)
	assert.Equal(t, "Åke", d.Name)
	assert.Equal(t, match.FirstName, d.Type)
	assert.True(t, d.IsNordic)
	assert.True(t, d.InDataset)
	assert.NotEmpty(t, d.Metaphone[0])
	require.NotNil(t, d.Data)
	assert.NotEmpty(t, d.Data.Country)

	_, ok = m.NameDetails(match.LastName, "ake")
	assert.False(t, ok, "first name must not resolve as last name")

	_, ok = m.NameDetails(match.FirstName, "notaname")
	assert.False(t, ok)
}
