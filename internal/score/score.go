// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package score composes the final 0-100 score of one candidate from its
// base similarity, phonetic equality, exact-match status, Nordic
// classification, and country popularity, together with the reasons that
// explain it.
package score

import (
	"strings"

	"namecorrect/internal/corpus"
	"namecorrect/internal/match"
	"namecorrect/internal/normalize"
	"namecorrect/internal/phonetic"
	"namecorrect/internal/similarity"
)

// Params holds the tunable scoring constants. Magnitudes mirror the
// observed API behavior; override them through configuration when a
// byte-compatible rewrite needs different values.
type Params struct {
	PhoneticBonus    int
	NordicBonus      int
	PopularBonus     int
	MismatchPenalty  int
	VariantScore     int
	PopularThreshold float64
}

// DefaultParams returns the production scoring constants.
func DefaultParams() Params {
	return Params{
		PhoneticBonus:    10,
		NordicBonus:      5,
		PopularBonus:     10,
		MismatchPenalty:  10,
		VariantScore:     75,
		PopularThreshold: 0.5,
	}
}

// Query carries everything about the request side that scoring needs,
// precomputed once per field.
type Query struct {
	// Raw is the query string as submitted (trimmed).
	Raw string
	// Key is the normalized form of Raw.
	Key string
	// Codes is the metaphone pair of Raw.
	Codes [2]string
	// Country is the validated upper-case country code, or "" when the
	// request carried none or an unknown one.
	Country string
	// VariantKeys holds the normalized forms of the query's rule-generated
	// Nordic variants, used for the query-variant flag.
	VariantKeys map[string]struct{}
}

// NewQuery precomputes the scoring inputs for one query field. country must
// already be validated; variantNames are the rule-generated spellings.
func NewQuery(raw, country string, variantNames []string) Query {
	q := Query{
		Raw:     strings.TrimSpace(raw),
		Country: country,
	}
	q.Key = normalize.Key(q.Raw)
	q.Codes = phonetic.Encode(q.Raw)
	q.VariantKeys = make(map[string]struct{}, len(variantNames))
	for _, v := range variantNames {
		q.VariantKeys[normalize.Key(v)] = struct{}{}
	}
	return q
}

// Compose scores one corpus record against the query.
//
// An exact normalized match pins the score to 100 and skips the phonetic
// bonus and the country adjustments; the Nordic bonus is still reported
// and the clamp keeps the score at 100. Otherwise the base similarity is
// adjusted by the phonetic bonus (when the metaphone pairs intersect),
// the Nordic bonus, and, for first names under a valid request country, the
// popularity bonus or mismatch penalty. The result is clamped to [0, 100].
func Compose(q Query, rec *corpus.Record, p Params) match.Candidate {
	base := similarity.Ratio(q.Raw, rec.Name)
	exact := q.Key != "" && q.Key == rec.Key()

	cand := match.Candidate{
		Name:           rec.Name,
		BaseSimilarity: base,
		Metaphone:      rec.Codes,
		IsNordic:       rec.Nordic,
		InDataset:      true,
		Type:           rec.Type,
		Data:           &rec.Meta,
	}

	score := base
	var reasons []match.Reason

	if exact {
		score = 100
		reasons = append(reasons, match.Reason{Kind: match.ExactMatch})
	} else if base < 100 && phonetic.Overlap(q.Codes, rec.Codes) {
		score += p.PhoneticBonus
		reasons = append(reasons, match.Reason{Kind: match.PhoneticMatch, Delta: p.PhoneticBonus})
	}
	if rec.Nordic {
		score += p.NordicBonus
		reasons = append(reasons, match.Reason{Kind: match.NordicBonus, Delta: p.NordicBonus})
	}
	if !exact {
		if r, ok := countryAdjustment(q.Country, rec, p); ok {
			score += r.Delta
			reasons = append(reasons, r)
		}
	}

	cand.Score = clamp(score)
	cand.IsQueryVariant = isQueryVariant(q, rec.Name, rec.Key())
	if len(reasons) == 0 {
		reasons = append(reasons, match.Reason{Kind: match.SimilarityOnly})
	}
	cand.ScoreReasons = reasons
	return cand
}

// ComposeVariant builds the candidate for a rule-generated spelling that is
// absent from the corpus. Only string similarity and phonetics apply; there
// is no record, hence no Nordic or country contribution from data.
func ComposeVariant(q Query, variant string, t match.NameType, p Params) match.Candidate {
	return match.Candidate{
		Name:           variant,
		Score:          clamp(p.VariantScore),
		BaseSimilarity: similarity.Ratio(q.Raw, variant),
		Metaphone:      phonetic.Encode(variant),
		IsNordic:       true,
		IsQueryVariant: true,
		InDataset:      false,
		Type:           t,
		ScoreReasons:   []match.Reason{{Kind: match.RuleGenerated, Delta: clamp(p.VariantScore)}},
	}
}

// countryAdjustment returns the popularity bonus or mismatch penalty, if
// any. Country scoring applies to first names only and needs a validated
// request country and a country distribution on the record.
func countryAdjustment(country string, rec *corpus.Record, p Params) (match.Reason, bool) {
	if country == "" || rec.Type != match.FirstName || len(rec.Meta.Country) == 0 {
		return match.Reason{}, false
	}
	if freq, ok := rec.Meta.Country[country]; ok {
		if freq > p.PopularThreshold {
			return match.Reason{Kind: match.PopularInCountry, Delta: p.PopularBonus, Country: country}, true
		}
		return match.Reason{}, false
	}
	return match.Reason{Kind: match.CountryMismatch, Delta: -p.MismatchPenalty, Country: country}, true
}

// isQueryVariant reports whether the candidate differs from the raw query
// only by case, diacritics, or whitespace, or matches one of the query's
// rule-generated Nordic spellings.
func isQueryVariant(q Query, name, key string) bool {
	if name == q.Raw {
		return false
	}
	if key == q.Key && q.Key != "" {
		return true
	}
	_, ok := q.VariantKeys[key]
	return ok
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
