// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	"namecorrect/internal/formatters"
	"namecorrect/internal/match"

	"gopkg.in/yaml.v3"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML output for configuration-style consumption"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

func (f *Formatter) Format(result match.Result, options formatters.FormatterOptions) (string, error) {
	if !options.Verbose {
		result = trim(result)
	}
	data, err := yaml.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("error generating YAML output: %w", err)
	}
	return string(data), nil
}

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
