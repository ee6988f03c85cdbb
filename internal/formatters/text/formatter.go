// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"sort"
	"strings"

	"namecorrect/internal/formatters"
	"namecorrect/internal/match"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(result match.Result, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	if len(result.FirstNameMatches) == 0 && len(result.LastNameMatches) == 0 {
		return "No suggestions found.", nil
	}

	var builder strings.Builder
	f.appendSection(&builder, "First name suggestions", result.FirstNameMatches, options)
	f.appendSection(&builder, "Last name suggestions", result.LastNameMatches, options)
	return strings.TrimRight(builder.String(), "\n"), nil
}

func (f *Formatter) appendSection(builder *strings.Builder, title string, cands []match.Candidate, options formatters.FormatterOptions) {
	if len(cands) == 0 {
		return
	}

	builder.WriteString(f.colors["white"].Sprint(title) + "\n")
	for i, c := range cands {
		scoreColor := f.scoreColor(c.Score)
		builder.WriteString(fmt.Sprintf("  %2d. %-20s %s",
			i+1,
			f.colors["cyan"].Sprint(c.Name),
			scoreColor.Sprintf("%3d", c.Score)))

		tags := f.tags(c)
		if len(tags) > 0 {
			builder.WriteString("  [" + strings.Join(tags, ", ") + "]")
		}
		builder.WriteString("\n")

		if options.Verbose {
			for _, r := range c.ScoreReasons {
				builder.WriteString("        - " + r.String() + "\n")
			}
			if c.Data != nil && len(c.Data.Country) > 0 {
				builder.WriteString("        countries: " + formatCountries(c.Data.Country) + "\n")
			}
		}
	}
	builder.WriteString("\n")
}

func (f *Formatter) tags(c match.Candidate) []string {
	var tags []string
	if c.IsNordic {
		tags = append(tags, "nordic")
	}
	if !c.InDataset {
		tags = append(tags, "rule-generated")
	}
	if c.IsQueryVariant {
		tags = append(tags, "variant")
	}
	return tags
}

// scoreColor maps a final score to a display color
func (f *Formatter) scoreColor(score int) *color.Color {
	switch {
	case score >= 90:
		return f.colors["green"]
	case score >= 60:
		return f.colors["yellow"]
	default:
		return f.colors["red"]
	}
}

func formatCountries(freq map[string]float64) string {
	parts := make([]string, 0, len(freq))
	for _, code := range sortedKeys(freq) {
		parts = append(parts, fmt.Sprintf("%s %.0f%%", code, freq[code]*100))
	}
	return strings.Join(parts, ", ")
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	formatters.Register(NewFormatter())
}
