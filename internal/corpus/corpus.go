// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package corpus loads and holds the reference name dataset. The store is
// built exactly once at startup and is read-only afterwards, so it can be
// shared across concurrent requests without locking. A malformed dataset is
// the engine's only fatal error: Load fails and nothing is served.
package corpus

import (
	"fmt"
	"math"
	"strings"

	"namecorrect/internal/countries"
	"namecorrect/internal/match"
	"namecorrect/internal/normalize"
	"namecorrect/internal/phonetic"
)

// fractionTolerance bounds how far a country or gender distribution may
// drift from summing to exactly 1.0.
const fractionTolerance = 1e-3

// DefaultNordicFrequency is the per-country frequency above which a name
// counts as historically Nordic.
const DefaultNordicFrequency = 0.1

// nordicLetters marks a name as Nordic by spelling alone.
const nordicLetters = "åäöæøþðÅÄÖÆØÞÐ"

// Record is one known name of one type. Immutable once loaded.
type Record struct {
	// Name is the canonical display form ("Åke", not "ake").
	Name string
	Type match.NameType
	Meta match.Metadata
	// Nordic is true when the name is classified as historically Nordic,
	// either by spelling or by frequency in a Nordic country.
	Nordic bool
	// Codes is the precomputed Double Metaphone pair for the name.
	Codes [2]string

	key string
}

// Key returns the normalized lookup form of the record's name.
func (r *Record) Key() string {
	return r.key
}

// NewRecord builds a record with its normalized key and phonetic codes
// precomputed. Loading goes through build, which validates first; this
// constructor is for callers that already hold trusted data.
func NewRecord(name string, t match.NameType, meta match.Metadata, nordic bool) *Record {
	return &Record{
		Name:   name,
		Type:   t,
		Meta:   meta,
		Nordic: nordic,
		Codes:  phonetic.Encode(name),
		key:    normalize.Key(name),
	}
}

// index holds one name type's records.
type index struct {
	byKey map[string]*Record
	order []*Record
}

// Store holds both corpora.
type Store struct {
	first index
	last  index
}

// Lookup returns the record whose normalized form matches name, if any.
// The input may be a raw or an already normalized name.
func (s *Store) Lookup(t match.NameType, name string) (*Record, bool) {
	rec, ok := s.index(t).byKey[normalize.Key(name)]
	return rec, ok
}

// All returns every record of the given type in load order. The returned
// slice is shared and must not be mutated.
func (s *Store) All(t match.NameType) []*Record {
	return s.index(t).order
}

// Count returns the number of records of the given type.
func (s *Store) Count(t match.NameType) int {
	return len(s.index(t).order)
}

func (s *Store) index(t match.NameType) *index {
	if t == match.FirstName {
		return &s.first
	}
	return &s.last
}

// namesFile is the on-disk corpus schema.
type namesFile struct {
	Names []recordEntry `yaml:"names"`
}

type recordEntry struct {
	Name    string             `yaml:"name"`
	Country map[string]float64 `yaml:"country"`
	Gender  map[string]float64 `yaml:"gender"`
	Rank    map[string]int     `yaml:"rank"`
}

// build validates and indexes one corpus. Any malformed record aborts the
// load with an error naming the record.
func build(idx *index, entries []recordEntry, t match.NameType, nordicFrequency float64) error {
	idx.byKey = make(map[string]*Record, len(entries))
	idx.order = make([]*Record, 0, len(entries))

	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return fmt.Errorf("%s corpus: record with empty name", t)
		}
		key := normalize.Key(name)
		if key == "" {
			return fmt.Errorf("%s corpus: name %q normalizes to nothing", t, name)
		}
		if _, dup := idx.byKey[key]; dup {
			return fmt.Errorf("%s corpus: duplicate name %q", t, name)
		}
		if len(entry.Country) == 0 {
			return fmt.Errorf("%s corpus: name %q has no country distribution", t, name)
		}
		if err := checkDistribution(entry.Country); err != nil {
			return fmt.Errorf("%s corpus: name %q country distribution: %w", t, name, err)
		}
		switch t {
		case match.FirstName:
			if len(entry.Gender) == 0 {
				return fmt.Errorf("first_name corpus: name %q has no gender distribution", name)
			}
			if err := checkDistribution(entry.Gender); err != nil {
				return fmt.Errorf("first_name corpus: name %q gender distribution: %w", name, err)
			}
		case match.LastName:
			if len(entry.Gender) != 0 {
				return fmt.Errorf("last_name corpus: name %q carries a gender distribution", name)
			}
		}
		for cc, rank := range entry.Rank {
			if rank <= 0 {
				return fmt.Errorf("%s corpus: name %q has non-positive rank %d for %s", t, name, rank, cc)
			}
		}

		rec := NewRecord(name, t, match.Metadata{
			Country: entry.Country,
			Gender:  entry.Gender,
			Rank:    entry.Rank,
		}, isNordic(name, entry.Country, nordicFrequency))
		idx.byKey[key] = rec
		idx.order = append(idx.order, rec)
	}
	return nil
}

// checkDistribution verifies all fractions are in (0, 1] and sum to 1.0
// within tolerance.
func checkDistribution(dist map[string]float64) error {
	sum := 0.0
	for k, v := range dist {
		if v <= 0 || v > 1 {
			return fmt.Errorf("fraction %g for %q out of range", v, k)
		}
		sum += v
	}
	if math.Abs(sum-1.0) > fractionTolerance {
		return fmt.Errorf("fractions sum to %g, want 1.0", sum)
	}
	return nil
}

// isNordic classifies a name as historically Nordic: Nordic letters in the
// canonical spelling, or more than nordicFrequency of its bearers in any
// single Nordic country.
func isNordic(name string, country map[string]float64, nordicFrequency float64) bool {
	if strings.ContainsAny(name, nordicLetters) {
		return true
	}
	for _, cc := range countries.Nordic() {
		if country[cc] > nordicFrequency {
			return true
		}
	}
	return false
}
