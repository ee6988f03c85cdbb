// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Command encode inspects the engine's view of a name: its normalized key,
// Double Metaphone codes and the rule-generated Nordic spellings. Useful
// when tuning name data or debugging unexpected suggestions.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"namecorrect/internal/normalize"
	"namecorrect/internal/phonetic"
	"namecorrect/internal/similarity"
	"namecorrect/internal/variants"
)

func main() {
	country := flag.String("country", "", "Country code for the variant rules")
	compare := flag.String("compare", "", "Second name to compute similarity against")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: encode [--country <code>] [--compare <name>] <name>...")
		os.Exit(1)
	}

	for _, name := range flag.Args() {
		codes := phonetic.Encode(name)
		fmt.Printf("%s\n", name)
		fmt.Printf("  key:       %s\n", normalize.Key(name))
		fmt.Printf("  metaphone: %s / %s\n", codes[0], codes[1])

		if vars := variants.Generate(name, *country); len(vars) > 0 {
			fmt.Printf("  variants:  %s\n", strings.Join(vars, ", "))
		}
		if *compare != "" {
			fmt.Printf("  similarity to %s: %d\n", *compare, similarity.Ratio(name, *compare))
		}
	}
}
