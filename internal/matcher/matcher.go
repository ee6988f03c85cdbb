// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package matcher runs the full correction pipeline: for each name field it
// scores every corpus record of that type plus the query's rule-generated
// Nordic spellings, then ranks the candidates. The matcher holds only
// immutable state and is safe for arbitrarily many concurrent requests.
package matcher

import (
	"runtime"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"

	"namecorrect/internal/corpus"
	"namecorrect/internal/countries"
	"namecorrect/internal/match"
	"namecorrect/internal/normalize"
	"namecorrect/internal/observability"
	"namecorrect/internal/rank"
	"namecorrect/internal/score"
	"namecorrect/internal/variants"
)

// parallelThreshold is the corpus size below which candidate scoring runs
// sequentially; sharding tiny corpora costs more than it saves.
const parallelThreshold = 64

// Matcher corrects name queries against a loaded corpus store.
type Matcher struct {
	store    *corpus.Store
	params   score.Params
	topK     int
	minScore int
	workers  int
	observer *observability.Observer
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithParams overrides the scoring constants.
func WithParams(p score.Params) Option {
	return func(m *Matcher) { m.params = p }
}

// WithTopK bounds each field's match list.
func WithTopK(k int) Option {
	return func(m *Matcher) { m.topK = k }
}

// WithMinScore sets the minimum final score a candidate needs to be
// reported. Values below 1 keep the default behavior of excluding only
// zero scores.
func WithMinScore(s int) Option {
	return func(m *Matcher) { m.minScore = s }
}

// WithWorkers sets the number of goroutines used for candidate scoring.
func WithWorkers(n int) Option {
	return func(m *Matcher) { m.workers = n }
}

// WithObserver attaches an operation logger.
func WithObserver(o *observability.Observer) Option {
	return func(m *Matcher) { m.observer = o }
}

// New creates a matcher over the given store.
func New(store *corpus.Store, opts ...Option) *Matcher {
	m := &Matcher{
		store:    store,
		params:   score.DefaultParams(),
		topK:     rank.DefaultTopK,
		minScore: 1,
		workers:  runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.workers < 1 {
		m.workers = 1
	}
	return m
}

// Correct runs the pipeline for both name fields and assembles the result.
// An empty field yields an empty match list; an unknown country code
// disables country-specific scoring but never fails the request.
func (m *Matcher) Correct(q match.Query) match.Result {
	done := m.observer.StartTiming("matcher", "correct")

	country, _ := countries.Normalize(q.CountryCode)

	var result match.Result
	var g errgroup.Group
	g.Go(func() error {
		result.FirstNameMatches = m.correctField(q.FirstName, match.FirstName, country)
		return nil
	})
	g.Go(func() error {
		result.LastNameMatches = m.correctField(q.LastName, match.LastName, country)
		return nil
	})
	_ = g.Wait()

	done(true, len(result.FirstNameMatches)+len(result.LastNameMatches), map[string]any{
		"country": country,
	})
	return result
}

// correctField scores one query field against one corpus.
func (m *Matcher) correctField(raw string, t match.NameType, country string) []match.Candidate {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []match.Candidate{}
	}
	if !strings.ContainsFunc(raw, unicode.IsLetter) || normalize.Key(raw) == "" {
		// Nothing alphabetic to match against; degrade to an empty result.
		return []match.Candidate{}
	}

	ruleVariants := variants.Generate(raw, country)
	query := score.NewQuery(raw, country, ruleVariants)

	candidates := m.scoreRecords(query, m.store.All(t))

	for _, v := range ruleVariants {
		if _, known := m.store.Lookup(t, v); known {
			continue
		}
		candidates = append(candidates, score.ComposeVariant(query, v, t, m.params))
	}

	return rank.Rank(candidates, m.topK, m.minScore)
}

// scoreRecords evaluates every record against the query, sharding the
// corpus across workers. Shards are merged in order, so the output is
// independent of scheduling.
func (m *Matcher) scoreRecords(query score.Query, records []*corpus.Record) []match.Candidate {
	if len(records) < parallelThreshold || m.workers == 1 {
		out := make([]match.Candidate, 0, len(records))
		for _, rec := range records {
			out = append(out, score.Compose(query, rec, m.params))
		}
		return out
	}

	workers := m.workers
	chunk := (len(records) + workers - 1) / workers
	shards := make([][]match.Candidate, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(records) {
			break
		}
		hi := lo + chunk
		if hi > len(records) {
			hi = len(records)
		}
		w := w
		g.Go(func() error {
			out := make([]match.Candidate, 0, hi-lo)
			for _, rec := range records[lo:hi] {
				out = append(out, score.Compose(query, rec, m.params))
			}
			shards[w] = out
			return nil
		})
	}
	_ = g.Wait()

	out := make([]match.Candidate, 0, len(records))
	for _, shard := range shards {
		out = append(out, shard...)
	}
	return out
}

// Details describes one corpus name, for the lookup endpoint.
type Details struct {
	Name      string          `json:"name"`
	Type      match.NameType  `json:"type"`
	Metaphone [2]string       `json:"metaphone"`
	IsNordic  bool            `json:"is_nordic"`
	InDataset bool            `json:"in_dataset"`
	Data      *match.Metadata `json:"data,omitempty"`
}

// NameDetails returns the stored details for one name of the given type.
func (m *Matcher) NameDetails(t match.NameType, name string) (Details, bool) {
	rec, ok := m.store.Lookup(t, name)
	if !ok {
		return Details{}, false
	}
	return Details{
		Name:      rec.Name,
		Type:      rec.Type,
		Metaphone: rec.Codes,
		IsNordic:  rec.Nordic,
		InDataset: true,
		Data:      &rec.Meta,
	}, true
}
