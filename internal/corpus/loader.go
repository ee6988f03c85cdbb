// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package corpus

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"namecorrect/internal/match"
)

// Embedded default corpus, used when no corpus directory is configured.
//
//go:embed data/first_names.yaml
var embeddedFirstNames []byte

//go:embed data/last_names.yaml
var embeddedLastNames []byte

// File names expected inside a corpus directory.
const (
	FirstNamesFile = "first_names.yaml"
	LastNamesFile  = "last_names.yaml"
)

// Options tunes corpus loading.
type Options struct {
	// NordicFrequency overrides the per-country frequency threshold for
	// the Nordic classification. Zero means DefaultNordicFrequency.
	NordicFrequency float64
}

func (o Options) nordicFrequency() float64 {
	if o.NordicFrequency > 0 {
		return o.NordicFrequency
	}
	return DefaultNordicFrequency
}

// Load builds a store from a corpus directory, or from the embedded default
// dataset when dir is empty. Any malformed record fails the whole load.
func Load(dir string, opts Options) (*Store, error) {
	if dir == "" {
		return loadBytes(embeddedFirstNames, embeddedLastNames, opts)
	}

	firstData, err := os.ReadFile(filepath.Join(dir, FirstNamesFile))
	if err != nil {
		return nil, fmt.Errorf("reading first-name corpus: %w", err)
	}
	lastData, err := os.ReadFile(filepath.Join(dir, LastNamesFile))
	if err != nil {
		return nil, fmt.Errorf("reading last-name corpus: %w", err)
	}
	return loadBytes(firstData, lastData, opts)
}

// LoadEmbedded builds a store from the embedded default dataset.
func LoadEmbedded() (*Store, error) {
	return Load("", Options{})
}

func loadBytes(firstData, lastData []byte, opts Options) (*Store, error) {
	store := &Store{}

	var first namesFile
	if err := yaml.Unmarshal(firstData, &first); err != nil {
		return nil, fmt.Errorf("parsing first-name corpus: %w", err)
	}
	if err := build(&store.first, first.Names, match.FirstName, opts.nordicFrequency()); err != nil {
		return nil, err
	}

	var last namesFile
	if err := yaml.Unmarshal(lastData, &last); err != nil {
		return nil, fmt.Errorf("parsing last-name corpus: %w", err)
	}
	if err := build(&store.last, last.Names, match.LastName, opts.nordicFrequency()); err != nil {
		return nil, err
	}

	return store, nil
}
