package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// searchCmd implements the "search" command.
type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "searches for tickers on Yahoo Finance" }
func (*searchCmd) Usage() string {
	return `fonda search <search term>

  Searches Yahoo Finance for securities matching the term and prints all
  candidates, so you can pick the exact listing to analyze.
`
}

func (*searchCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	searchTerm := strings.Join(f.Args(), " ")

	results, err := yahooClient.SearchQuotes(searchTerm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching securities: %v\n", err)
		return subcommands.ExitFailure
	}

	if len(results) == 0 {
		fmt.Printf("No results found for '%s'.\n", searchTerm)
		return subcommands.ExitSuccess
	}

	fmt.Printf("Found %d results for '%s':\n\n", len(results), searchTerm)
	for _, item := range results {
		name := item.LongName
		if name == "" {
			name = item.ShortName
		}
		fmt.Printf("➡️   %-8s %s\n", item.Symbol, name)
		fmt.Printf("    Type: %s, Exchange: %s\n", item.QuoteType, item.Exchange)
		fmt.Printf("    $ fonda analyze %s\n\n", item.Symbol)
	}

	return subcommands.ExitSuccess
}
