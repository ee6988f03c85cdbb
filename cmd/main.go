// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"namecorrect/internal/config"
	"namecorrect/internal/corpus"
	"namecorrect/internal/help"
	"namecorrect/internal/match"
	"namecorrect/internal/matcher"
	"namecorrect/internal/observability"
	"namecorrect/internal/paths"
	"namecorrect/internal/version"
	"namecorrect/internal/web"

	"namecorrect/internal/formatters"
	_ "namecorrect/internal/formatters/csv"
	_ "namecorrect/internal/formatters/json"
	_ "namecorrect/internal/formatters/text"
	_ "namecorrect/internal/formatters/yaml"

	"golang.org/x/term"
)

// finalConfiguration holds resolved configuration values, flag values
// taking precedence over profile values over config defaults
type finalConfiguration struct {
	format    string
	topK      int
	minScore  int
	corpusDir string
	verbose   bool
	debug     bool
	noColor   bool
}

func main() {
	firstName := flag.String("first", "", "First name to correct")
	lastName := flag.String("last", "", "Last name to correct")
	countryCode := flag.String("country", "", "ISO 3166-1 alpha-2 country code for popularity scoring")
	outputFormat := flag.String("format", "", "Output format: text, json, csv, yaml (default: text)")
	topK := flag.Int("top", 0, "Maximum suggestions per field")
	minScore := flag.Int("min-score", -1, "Minimum score a suggestion needs to be shown")
	corpusDir := flag.String("corpus", "", "Directory with name data files (default: embedded data)")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	profileName := flag.String("profile", "", "Profile name to use from config file")
	listProfiles := flag.Bool("list-profiles", false, "List available profiles in config file")
	verbose := flag.Bool("verbose", false, "Display score reasons and name metadata")
	debug := flag.Bool("debug", false, "Enable debug logging of engine operations")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	showHelp := flag.Bool("help", false, "Show help information")
	showVersion := flag.Bool("version", false, "Show version information")

	// API server flags
	serveMode := flag.Bool("serve", false, "Start API server mode instead of a one-shot correction")
	servePort := flag.String("port", "8080", "Port for API server (default: 8080)")

	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	if *showHelp {
		showHelpAndExit(*noColor, flag.Arg(0))
	}

	cfg := config.LoadConfigOrDefault(*configFile)

	if *listProfiles {
		printProfiles(cfg)
		return
	}

	activeProfile, err := resolveProfile(cfg, *profileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	finalConfig := resolveConfiguration(cfg, activeProfile, flagValues{
		format:    *outputFormat,
		topK:      *topK,
		minScore:  *minScore,
		corpusDir: *corpusDir,
		verbose:   *verbose,
		debug:     *debug,
		noColor:   *noColor,
	})

	// Disable colors when stdout is not a terminal
	if !isTerminal(os.Stdout) || *outputFile != "" {
		finalConfig.noColor = true
	}

	observer := newObserver(finalConfig.debug)

	engine, err := buildMatcher(cfg, finalConfig, observer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *serveMode {
		if err := startAPIServer(*servePort, engine, observer); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if strings.TrimSpace(*firstName) == "" && strings.TrimSpace(*lastName) == "" {
		fmt.Fprintln(os.Stderr, "Error: at least one of --first or --last is required")
		fmt.Fprintln(os.Stderr, "Use --help for usage information")
		os.Exit(1)
	}

	result := engine.Correct(match.Query{
		FirstName:   *firstName,
		LastName:    *lastName,
		CountryCode: *countryCode,
	})

	output, err := formatters.Export(finalConfig.format, result, formatters.FormatterOptions{
		Verbose: finalConfig.verbose,
		NoColor: finalConfig.noColor,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output+"\n"), 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Println(output)
}

// flagValues holds the raw command line flag values
type flagValues struct {
	format    string
	topK      int
	minScore  int
	corpusDir string
	verbose   bool
	debug     bool
	noColor   bool
}

// resolveProfile returns the named profile, or nil when no name was given
func resolveProfile(cfg *config.Config, name string) (*config.Profile, error) {
	if name == "" {
		return nil, nil
	}
	profile := cfg.GetProfile(name)
	if profile == nil {
		return nil, fmt.Errorf("profile '%s' not found. Available profiles: %s",
			name, strings.Join(cfg.ListProfiles(), ", "))
	}
	return profile, nil
}

// resolveConfiguration merges config defaults, the active profile and
// explicit flags into the effective settings
func resolveConfiguration(cfg *config.Config, profile *config.Profile, flags flagValues) finalConfiguration {
	final := finalConfiguration{
		format:    cfg.Defaults.Format,
		topK:      cfg.Defaults.TopK,
		minScore:  cfg.Defaults.MinScore,
		corpusDir: cfg.Defaults.CorpusDir,
		verbose:   cfg.Defaults.Verbose,
		debug:     cfg.Defaults.Debug,
		noColor:   cfg.Defaults.NoColor,
	}

	if profile != nil {
		if profile.Format != "" {
			final.format = profile.Format
		}
		if profile.TopK > 0 {
			final.topK = profile.TopK
		}
		if profile.MinScore > 0 {
			final.minScore = profile.MinScore
		}
		final.verbose = final.verbose || profile.Verbose
		final.debug = final.debug || profile.Debug
		final.noColor = final.noColor || profile.NoColor
	}

	if flags.format != "" {
		final.format = flags.format
	}
	if flags.topK > 0 {
		final.topK = flags.topK
	}
	if flags.minScore >= 0 {
		final.minScore = flags.minScore
	}
	if flags.corpusDir != "" {
		final.corpusDir = flags.corpusDir
	}
	final.verbose = final.verbose || flags.verbose
	final.debug = final.debug || flags.debug
	final.noColor = final.noColor || flags.noColor

	return final
}

// newObserver creates the engine observer, debug level when requested
func newObserver(debug bool) *observability.Observer {
	level := observability.Off
	if debug {
		level = observability.Debug
	}
	return observability.NewObserver(level, os.Stderr)
}

// buildMatcher loads the name corpus and assembles the correction engine
func buildMatcher(cfg *config.Config, finalConfig finalConfiguration, observer *observability.Observer) (*matcher.Matcher, error) {
	dir := finalConfig.corpusDir
	if dir == "" {
		dir = paths.GetCorpusDir()
	}

	store, err := corpus.Load(dir, corpus.Options{
		NordicFrequency: cfg.Scoring.NordicFrequency,
	})
	if err != nil {
		return nil, fmt.Errorf("loading name data: %w", err)
	}

	return matcher.New(store,
		matcher.WithParams(cfg.Params()),
		matcher.WithTopK(finalConfig.topK),
		matcher.WithMinScore(finalConfig.minScore),
		matcher.WithObserver(observer),
	), nil
}

// printProfiles lists the profiles defined in the loaded configuration
func printProfiles(cfg *config.Config) {
	names := cfg.ListProfiles()
	if len(names) == 0 {
		fmt.Println("No profiles defined.")
		return
	}
	fmt.Println("Available profiles:")
	for _, name := range names {
		profile := cfg.GetProfile(name)
		if profile.Description != "" {
			fmt.Printf("  %s - %s\n", name, profile.Description)
		} else {
			fmt.Printf("  %s\n", name)
		}
	}
}

// showHelpAndExit renders general or topic help and exits
func showHelpAndExit(noColor bool, topic string) {
	helpSystem := help.NewSystem(noColor)
	switch {
	case topic == "":
		helpSystem.ShowGeneralHelp()
	case topic == "topics":
		helpSystem.ShowTopicsHelp()
	default:
		if !helpSystem.ShowTopicHelp(topic) {
			fmt.Fprintf(os.Stderr, "Unknown help topic: %s\n", topic)
			helpSystem.ShowTopicsHelp()
			os.Exit(1)
		}
	}
	os.Exit(0)
}

// startAPIServer validates the port and starts the HTTP API
func startAPIServer(port string, engine *matcher.Matcher, observer *observability.Observer) error {
	validatedPort, err := validatePort(port)
	if err != nil {
		return err
	}
	server := web.NewWebServer(validatedPort, engine, observer)
	return server.Start()
}

// validatePort validates that the port string is a valid port number
func validatePort(portStr string) (string, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", fmt.Errorf("invalid port format '%s': must be a number", portStr)
	}

	if port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}

	if port < 1024 && os.Geteuid() != 0 {
		return "", fmt.Errorf("port %d requires root privileges (ports below 1024 are privileged)", port)
	}

	return portStr, nil
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
