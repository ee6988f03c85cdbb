// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestReasonString(t *testing.T) {
	cases := []struct {
		name   string
		reason Reason
		want   string
	}{
		{"exact", Reason{Kind: ExactMatch}, "Exact Match"},
		{"phonetic", Reason{Kind: PhoneticMatch}, "Phonetic Match"},
		{"nordic", Reason{Kind: NordicBonus, Delta: 5}, "+5 (Nordic)"},
		{"popular", Reason{Kind: PopularInCountry, Delta: 10, Country: "SE"}, "+10 (Popular:SE)"},
		{"mismatch", Reason{Kind: CountryMismatch, Delta: -10, Country: "DK"}, "-10 (Not in DK)"},
		{"rule generated", Reason{Kind: RuleGenerated, Delta: 75}, "Rule-Generated (75 base)"},
		{"similarity only", Reason{Kind: SimilarityOnly}, "Similarity Only"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.reason.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCandidateJSONShape(t *testing.T) {
	c := Candidate{
		Name:           "Svensson",
		Score:          100,
		BaseSimilarity: 100,
		Metaphone:      [2]string{"SFNSN", "SFNSN"},
		IsNordic:       true,
		InDataset:      true,
		Type:           LastName,
		Data: &Metadata{
			Country: map[string]float64{"SE": 1.0},
			Rank:    map[string]int{"SE": 1},
		},
		ScoreReasons: []Reason{{Kind: ExactMatch}, {Kind: NordicBonus, Delta: 5}},
	}

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	out := string(data)

	for _, fragment := range []string{
		`"name":"Svensson"`,
		`"metaphone":["SFNSN","SFNSN"]`,
		`"score_reasons":["Exact Match","+5 (Nordic)"]`,
		`"is_nordic":true`,
		`"in_dataset":true`,
		`"type":"last_name"`,
	} {
		if !strings.Contains(out, fragment) {
			t.Errorf("JSON output missing %s: %s", fragment, out)
		}
	}
	if strings.Contains(out, `"gender"`) {
		t.Errorf("gender must be omitted for last names: %s", out)
	}
}

func TestCandidateJSONOmitsDataWhenAbsent(t *testing.T) {
	c := Candidate{Name: "Svenssøn", Score: 75, Type: LastName}
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(data), `"data"`) {
		t.Errorf("data must be omitted for out-of-dataset candidates: %s", data)
	}
}

func TestHasReason(t *testing.T) {
	c := Candidate{ScoreReasons: []Reason{{Kind: PhoneticMatch}}}
	if !c.HasReason(PhoneticMatch) {
		t.Error("expected PhoneticMatch reason")
	}
	if c.HasReason(ExactMatch) {
		t.Error("unexpected ExactMatch reason")
	}
}
