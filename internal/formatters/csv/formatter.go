// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/json"
	"fmt"
	"strings"

	"namecorrect/internal/formatters"
	"namecorrect/internal/match"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(result match.Result, options formatters.FormatterOptions) (string, error) {
	headers := []string{"Field", "Name", "Score", "Base Similarity", "Nordic", "In Dataset", "Query Variant", "Reasons"}
	if options.Verbose {
		headers = append(headers, "Metaphone", "Metadata")
	}

	csvRows := []string{strings.Join(headers, ",")}

	for _, t := range match.Types() {
		for _, c := range result.Matches(t) {
			row := []string{
				string(t),
				escapeCSV(c.Name),
				fmt.Sprintf("%d", c.Score),
				fmt.Sprintf("%d", c.BaseSimilarity),
				fmt.Sprintf("%t", c.IsNordic),
				fmt.Sprintf("%t", c.InDataset),
				fmt.Sprintf("%t", c.IsQueryVariant),
				escapeCSV(joinReasons(c.ScoreReasons)),
			}
			if options.Verbose {
				row = append(row, escapeCSV(c.Metaphone[0]+"/"+c.Metaphone[1]))
				row = append(row, escapeCSV(metadataJSON(c.Data)))
			}
			csvRows = append(csvRows, strings.Join(row, ","))
		}
	}

	return strings.Join(csvRows, "\n"), nil
}

func joinReasons(reasons []match.Reason) string {
	parts := make([]string, len(reasons))
	for i, r := range reasons {
		parts[i] = r.String()
	}
	return strings.Join(parts, "; ")
}

func metadataJSON(meta *match.Metadata) string {
	if meta == nil {
		return ""
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return ""
	}
	return string(data)
}

// escapeCSV quotes a field when it contains commas, quotes or newlines
func escapeCSV(field string) string {
	if strings.ContainsAny(field, ",\"\n") {
		return "\"" + strings.ReplaceAll(field, "\"", "\"\"") + "\""
	}
	return field
}

func init() {
	formatters.Register(NewFormatter())
}
