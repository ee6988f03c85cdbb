// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"namecorrect/internal/corpus"
	"namecorrect/internal/paths"
	"namecorrect/internal/rank"
	"namecorrect/internal/score"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format    string `yaml:"format"`
		TopK      int    `yaml:"top_k"`
		MinScore  int    `yaml:"min_score"`
		CorpusDir string `yaml:"corpus_dir"`
		Verbose   bool   `yaml:"verbose"`
		Debug     bool   `yaml:"debug"`
		NoColor   bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Scoring constants applied on top of base similarity
	Scoring struct {
		PhoneticBonus    int     `yaml:"phonetic_bonus"`
		NordicBonus      int     `yaml:"nordic_bonus"`
		PopularBonus     int     `yaml:"popular_bonus"`
		PopularThreshold float64 `yaml:"popular_threshold"`
		MismatchPenalty  int     `yaml:"mismatch_penalty"`
		VariantScore     int     `yaml:"variant_score"`
		NordicFrequency  float64 `yaml:"nordic_frequency"`
	} `yaml:"scoring"`

	// Profiles for different correction scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a correction profile with specific settings
type Profile struct {
	Format      string `yaml:"format"`
	TopK        int    `yaml:"top_k"`
	MinScore    int    `yaml:"min_score"`
	Verbose     bool   `yaml:"verbose"`
	Debug       bool   `yaml:"debug"`
	NoColor     bool   `yaml:"no_color"`
	Description string `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func defaultConfig() *Config {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	p := score.DefaultParams()
	config.Defaults.Format = "text"
	config.Defaults.TopK = rank.DefaultTopK
	config.Defaults.MinScore = 1
	config.Scoring.PhoneticBonus = p.PhoneticBonus
	config.Scoring.NordicBonus = p.NordicBonus
	config.Scoring.PopularBonus = p.PopularBonus
	config.Scoring.PopularThreshold = p.PopularThreshold
	config.Scoring.MismatchPenalty = p.MismatchPenalty
	config.Scoring.VariantScore = p.VariantScore
	config.Scoring.NordicFrequency = corpus.DefaultNordicFrequency

	// Default strict profile for callers that only want confident
	// corrections.
	config.Profiles["strict"] = Profile{
		Format:      "text",
		TopK:        5,
		MinScore:    70,
		Description: "High-confidence suggestions only, short result lists",
	}

	return config
}

// Params converts the configured scoring constants to engine parameters.
func (c *Config) Params() score.Params {
	return score.Params{
		PhoneticBonus:    c.Scoring.PhoneticBonus,
		NordicBonus:      c.Scoring.NordicBonus,
		PopularBonus:     c.Scoring.PopularBonus,
		PopularThreshold: c.Scoring.PopularThreshold,
		MismatchPenalty:  c.Scoring.MismatchPenalty,
		VariantScore:     c.Scoring.VariantScore,
	}
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first - prioritize config.yaml
	for _, name := range []string{
		"config.yaml",
		"namecorrect.yaml",
		"namecorrect.yml",
		".namecorrect.yaml",
		".namecorrect.yml",
	} {
		if fileExists(name) {
			return name
		}
	}

	// Check standard per-user location
	standardConfig := paths.GetConfigFile()
	if fileExists(standardConfig) {
		return standardConfig
	}

	// Check legacy dotfiles in the home directory
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{".namecorrect.yaml", ".namecorrect.yml"} {
		homeConfig := filepath.Join(home, name)
		if fileExists(homeConfig) {
			return homeConfig
		}
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && !info.IsDir()
}

// ListProfiles returns the available profile names, sorted
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	if config.Defaults.TopK < 1 {
		return fmt.Errorf("defaults.top_k must be at least 1, got %d", config.Defaults.TopK)
	}
	if config.Defaults.MinScore < 0 || config.Defaults.MinScore > 100 {
		return fmt.Errorf("defaults.min_score must be between 0 and 100, got %d", config.Defaults.MinScore)
	}
	if config.Scoring.PopularThreshold < 0 || config.Scoring.PopularThreshold > 1 {
		return fmt.Errorf("scoring.popular_threshold must be between 0 and 1, got %g", config.Scoring.PopularThreshold)
	}
	if config.Scoring.NordicFrequency < 0 || config.Scoring.NordicFrequency > 1 {
		return fmt.Errorf("scoring.nordic_frequency must be between 0 and 1, got %g", config.Scoring.NordicFrequency)
	}
	if config.Scoring.VariantScore < 0 || config.Scoring.VariantScore > 100 {
		return fmt.Errorf("scoring.variant_score must be between 0 and 100, got %d", config.Scoring.VariantScore)
	}
	if config.Defaults.CorpusDir != "" {
		info, err := os.Stat(config.Defaults.CorpusDir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("defaults.corpus_dir is not a directory: %s", config.Defaults.CorpusDir)
		}
	}

	for name, profile := range config.Profiles {
		if profile.TopK < 0 {
			return fmt.Errorf("profile '%s': top_k cannot be negative", name)
		}
		if profile.MinScore < 0 || profile.MinScore > 100 {
			return fmt.Errorf("profile '%s': min_score must be between 0 and 100, got %d", name, profile.MinScore)
		}
	}

	return nil
}

// LoadConfigOrDefault loads configuration from configFile (or searches standard locations
// when configFile is empty). If loading fails, it returns a default configuration.
// This is the shared helper used by both the CLI and the web server.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		// A missing or bad config file falls back to the defaults.
		cfg, _ = LoadConfig("")
	}
	return cfg
}
