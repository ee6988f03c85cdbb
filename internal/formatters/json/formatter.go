// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"namecorrect/internal/formatters"
	"namecorrect/internal/match"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

func (f *Formatter) Format(result match.Result, options formatters.FormatterOptions) (string, error) {
	if !options.Verbose {
		result = trim(result)
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error generating JSON output: %w", err)
	}
	return string(data), nil
}

// trim drops the per-name frequency metadata that only verbose consumers
// want. Score reasons always stay, they explain the ranking.
func trim(result match.Result) match.Result {
	result.FirstNameMatches = trimCandidates(result.FirstNameMatches)
	result.LastNameMatches = trimCandidates(result.LastNameMatches)
	return result
}

func trimCandidates(cands []match.Candidate) []match.Candidate {
	out := make([]match.Candidate, len(cands))
	for i, c := range cands {
		c.Data = nil
		out[i] = c
	}
	return out
}

func init() {
	formatters.Register(NewFormatter())
}
