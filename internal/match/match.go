// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package match defines the shared data model of the correction engine:
// queries, scored candidates, correction results, and the closed set of
// score reasons. Every other engine package consumes these types.
package match

import (
	"encoding/json"
	"fmt"
)

// NameType distinguishes the two reference corpora.
type NameType string

const (
	FirstName NameType = "first_name"
	LastName  NameType = "last_name"
)

// Types returns both name types in a stable order.
func Types() []NameType {
	return []NameType{FirstName, LastName}
}

// Query is one correction request. Absent fields are empty strings; an
// empty field short-circuits to an empty match list for that field.
type Query struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CountryCode string `json:"country_code"`
}

// Metadata carries the demographic data of a corpus record. Gender is
// populated for first names only.
type Metadata struct {
	Country map[string]float64 `json:"country" yaml:"country"`
	Gender  map[string]float64 `json:"gender,omitempty" yaml:"gender,omitempty"`
	Rank    map[string]int     `json:"rank" yaml:"rank"`
}

// Candidate is one scored suggestion. Never mutated after scoring.
type Candidate struct {
	Name           string    `json:"name" yaml:"name"`
	Score          int       `json:"score" yaml:"score"`
	BaseSimilarity int       `json:"base_similarity" yaml:"base_similarity"`
	Metaphone      [2]string `json:"metaphone" yaml:"metaphone,flow"`
	IsNordic       bool      `json:"is_nordic" yaml:"is_nordic"`
	IsQueryVariant bool      `json:"is_query_variant" yaml:"is_query_variant"`
	InDataset      bool      `json:"in_dataset" yaml:"in_dataset"`
	Type           NameType  `json:"type" yaml:"type"`
	Data           *Metadata `json:"data,omitempty" yaml:"data,omitempty"`
	ScoreReasons   []Reason  `json:"score_reasons" yaml:"score_reasons"`
}

// Result pairs the ranked candidate lists for both name fields.
type Result struct {
	FirstNameMatches []Candidate `json:"first_name_matches" yaml:"first_name_matches"`
	LastNameMatches  []Candidate `json:"last_name_matches" yaml:"last_name_matches"`
}

// Matches returns the candidate list for the given name type.
func (r *Result) Matches(t NameType) []Candidate {
	if t == FirstName {
		return r.FirstNameMatches
	}
	return r.LastNameMatches
}

// ReasonKind enumerates every way a candidate's score can be explained.
// Keeping the set closed (instead of free-form strings) prevents typos and
// allows exhaustive matching in tests; display strings are produced only at
// the output boundary.
type ReasonKind int

const (
	ExactMatch ReasonKind = iota
	PhoneticMatch
	NordicBonus
	PopularInCountry
	CountryMismatch
	RuleGenerated
	SimilarityOnly
)

// Reason is one score annotation. Delta carries the signed score
// contribution for bonus/penalty kinds; Country is set for country-specific
// kinds only.
type Reason struct {
	Kind    ReasonKind
	Delta   int
	Country string
}

// String renders the reason in the wire format consumed by clients.
func (r Reason) String() string {
	switch r.Kind {
	case ExactMatch:
		return "Exact Match"
	case PhoneticMatch:
		return "Phonetic Match"
	case NordicBonus:
		return fmt.Sprintf("+%d (Nordic)", r.Delta)
	case PopularInCountry:
		return fmt.Sprintf("+%d (Popular:%s)", r.Delta, r.Country)
	case CountryMismatch:
		return fmt.Sprintf("-%d (Not in %s)", -r.Delta, r.Country)
	case RuleGenerated:
		return fmt.Sprintf("Rule-Generated (%d base)", r.Delta)
	case SimilarityOnly:
		return "Similarity Only"
	}
	return "Unknown"
}

// MarshalJSON serializes the reason as its display string.
func (r Reason) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// MarshalYAML serializes the reason as its display string.
func (r Reason) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// HasReason reports whether the candidate carries a reason of the given kind.
func (c *Candidate) HasReason(kind ReasonKind) bool {
	for _, r := range c.ScoreReasons {
		if r.Kind == kind {
			return true
		}
	}
	return false
}
