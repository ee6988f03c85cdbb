// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// TopicInfo contains standardized information about a scoring topic
type TopicInfo struct {
	Name                string   // Name of the topic (e.g., "phonetic")
	ShortDescription    string   // Short description for the topics list
	DetailedDescription string   // Detailed description of how the factor works
	Examples            []string // Usage examples
}

// System manages help content for the application
type System struct {
	topics  map[string]TopicInfo
	noColor bool
	colors  map[string]*color.Color
}

// NewSystem creates a new help system with the built-in scoring topics
func NewSystem(noColor bool) *System {
	// Disable colors if requested
	if noColor {
		color.NoColor = true
	}

	h := &System{
		topics:  make(map[string]TopicInfo),
		noColor: noColor,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"example":  color.New(color.FgMagenta),
		},
	}
	for _, topic := range builtinTopics() {
		h.RegisterTopic(topic)
	}
	return h
}

// RegisterTopic adds a help topic to the system
func (h *System) RegisterTopic(info TopicInfo) {
	h.topics[strings.ToLower(info.Name)] = info
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("Namecorrect - Scandinavian Name Correction")
	fmt.Println("==========================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  namecorrect --first <name> [--last <name>] [options]")
	fmt.Println("  namecorrect --serve [--port <port>]  # API server mode")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --first\t<name>\tFirst name to correct")
	fmt.Fprintln(w, "  --last\t<name>\tLast name to correct")
	fmt.Fprintln(w, "  --country\t<code>\tISO 3166-1 alpha-2 country code for popularity scoring")
	fmt.Fprintln(w, "  --format\t<format>\tOutput format: text, json, csv, yaml (default: text)")
	fmt.Fprintln(w, "  --top\t<n>\tMaximum suggestions per field (default: 10)")
	fmt.Fprintln(w, "  --min-score\t<n>\tMinimum score a suggestion needs to be shown")
	fmt.Fprintln(w, "  --corpus\t<path>\tDirectory with name data files (default: embedded data)")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  --list-profiles\t\tList available profiles in config file")
	fmt.Fprintln(w, "  --verbose\t\tDisplay score reasons and name metadata")
	fmt.Fprintln(w, "  --debug\t\tEnable debug logging of engine operations")
	fmt.Fprintln(w, "  --output\t<path>\tPath to output file (if not specified, output to stdout)")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --serve\t\tStart API server mode instead of a one-shot correction")
	fmt.Fprintln(w, "  --port\t<port>\tPort for API server (default: 8080, only used with --serve)")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	fmt.Fprintln(w, "  --help\t\tShow this help message")
	fmt.Fprintln(w, "  --help topics\t\tList the scoring topics")
	fmt.Fprintln(w, "  --help <topic>\t\tShow detailed help for a scoring topic")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("EXAMPLES:")
	fmt.Println("  Basic Usage:")
	h.colors["example"].Println("    namecorrect --first Ake --last Svenson --country SE")
	h.colors["example"].Println("    namecorrect --first Bjorn --format json --verbose")
	fmt.Println("  Configuration and Profiles:")
	h.colors["example"].Println("    namecorrect --first Soren --config namecorrect.yaml --profile strict")
	h.colors["example"].Println("    namecorrect --list-profiles --config namecorrect.yaml")

	fmt.Println()
	h.colors["header"].Println("API Server Examples:")
	h.colors["example"].Println("  namecorrect --serve  # Start API server on default port")
	h.colors["example"].Println("  namecorrect --serve --port 9000  # Start API server on custom port")

	fmt.Println()
	h.colors["header"].Println("CONFIGURATION:")
	fmt.Println("  Default config: <user config dir>/namecorrect/config.yaml")
	fmt.Println("  Project config: namecorrect.yaml or .namecorrect.yaml (in current directory)")
	fmt.Println("  Environment: NAMECORRECT_CONFIG_DIR - Override config directory")
	fmt.Println("  Environment: NAMECORRECT_DATA_DIR - Override name data directory")
}

// ShowTopicsHelp displays information about all scoring topics
func (h *System) ShowTopicsHelp() {
	h.colors["title"].Println("Scoring Topics")
	fmt.Println("==============")
	fmt.Println()
	fmt.Println("Suggestion scores combine the following factors:")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	h.colors["header"].Fprintln(w, "  TOPIC\tDESCRIPTION")
	h.colors["header"].Fprintln(w, "  -----\t-----------")

	names := make([]string, 0, len(h.topics))
	for name := range h.topics {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		info := h.topics[name]
		fmt.Fprintf(w, "  ")
		h.colors["emphasis"].Fprintf(w, "%s", info.Name)
		fmt.Fprintf(w, "\t%s\n", info.ShortDescription)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("For detailed information about a specific topic, use:")
	h.colors["example"].Println("  namecorrect --help <topic>")
}

// ShowTopicHelp displays detailed help for a specific topic. It returns
// false when the topic is unknown.
func (h *System) ShowTopicHelp(name string) bool {
	info, exists := h.topics[strings.ToLower(name)]
	if !exists {
		return false
	}

	h.colors["title"].Printf("Topic: %s\n", info.Name)
	fmt.Println(strings.Repeat("=", 7+len(info.Name)))
	fmt.Println()
	fmt.Println(info.DetailedDescription)

	if len(info.Examples) > 0 {
		fmt.Println()
		h.colors["header"].Println("EXAMPLES:")
		for _, example := range info.Examples {
			h.colors["example"].Println("  " + example)
		}
	}
	return true
}

func builtinTopics() []TopicInfo {
	return []TopicInfo{
		{
			Name:             "similarity",
			ShortDescription: "Base score from edit distance between query and candidate",
			DetailedDescription: "The base score is the Levenshtein similarity between the\n" +
				"normalized query and the normalized candidate, scaled to 0-100.\n" +
				"Identical normalized spellings score 100 and pin the final score\n" +
				"regardless of other factors.",
			Examples: []string{`namecorrect --first Svenson --verbose`},
		},
		{
			Name:             "phonetic",
			ShortDescription: "Bonus when query and candidate share a Double Metaphone code",
			DetailedDescription: "Each name is encoded with Double Metaphone after mapping\n" +
				"Scandinavian letters to their closest ASCII sounds. Candidates\n" +
				"sharing a code with the query earn a bonus, so 'Carl' still finds\n" +
				"'Karl' despite the spelling difference.",
			Examples: []string{`namecorrect --first Carl --verbose`},
		},
		{
			Name:             "nordic",
			ShortDescription: "Bonus for names classified as historically Nordic",
			DetailedDescription: "A name counts as Nordic when its spelling uses Nordic letters\n" +
				"or when it is common in Sweden, Norway, Denmark, Finland or\n" +
				"Iceland. Nordic candidates earn a small bonus over otherwise\n" +
				"equal suggestions.",
			Examples: []string{`namecorrect --first Bjorn --verbose`},
		},
		{
			Name:             "country",
			ShortDescription: "Popularity adjustment for the requested country",
			DetailedDescription: "With a valid --country code, first names popular in that\n" +
				"country earn a bonus and names absent from it are penalized.\n" +
				"Last names and requests without a country are unaffected, as are\n" +
				"unknown country codes.",
			Examples: []string{`namecorrect --first Ake --country SE --verbose`},
		},
		{
			Name:             "variants",
			ShortDescription: "Rule-generated Nordic spellings of the query",
			DetailedDescription: "Substitution rules rewrite the query into plausible Nordic\n" +
				"spellings ('aa' to 'å', 'oe' to 'ø', and so on). Variants not\n" +
				"already in the name data appear as rule-generated suggestions\n" +
				"with a fixed base score.",
			Examples: []string{`namecorrect --first Soeren --country DK --verbose`},
		},
	}
}
