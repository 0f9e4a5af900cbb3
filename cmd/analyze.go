package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fonda"
	"github.com/etnz/fonda/renderer"
	"github.com/google/subcommands"
)

// analyzeCmd implements the "analyze" command, the main entry point.
type analyzeCmd struct {
	peers  string
	asJSON bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "runs the full fundamental analysis of a company" }
func (*analyzeCmd) Usage() string {
	return `fonda analyze [-peers <tickers>] [-json] <company name or ticker>

  Resolves the company's ticker, fetches its financial statements from
  Yahoo Finance, computes the fundamental ratios, rates them against the
  sector profile, and prints the analysis report with a valuation and a
  suggested entry price.

Usage Examples:
# Analyze by company name.
$ fonda analyze air liquide

# Analyze by ticker and compare against peers.
$ fonda analyze AAPL -peers MSFT,GOOG
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.peers, "peers", "", "comma-separated peer tickers to compare multiples against")
	f.BoolVar(&c.asJSON, "json", false, "print the report as JSON instead of markdown")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	input := strings.Join(f.Args(), " ")
	if strings.TrimSpace(input) == "" {
		// interactive fallback, like the prompt of a REPL
		fmt.Print("Company name: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error: a company name is required.")
			return subcommands.ExitUsageError
		}
		input = strings.TrimSpace(line)
	}
	if input == "" {
		fmt.Fprintln(os.Stderr, "Error: a company name is required.")
		return subcommands.ExitUsageError
	}

	var opts fonda.Options
	if c.peers != "" {
		for _, p := range strings.Split(c.peers, ",") {
			if p = strings.TrimSpace(p); p != "" {
				opts.Peers = append(opts.Peers, strings.ToUpper(p))
			}
		}
	}

	report, err := fonda.Analyze(newResolver(), yahooClient, input, opts)
	if err != nil {
		switch {
		case errors.Is(err, fonda.ErrTickerNotFound):
			fmt.Fprintf(os.Stderr, "Error: could not resolve %q to a ticker: %v\n", input, err)
		case errors.Is(err, fonda.ErrDataUnavailable):
			fmt.Fprintf(os.Stderr, "Error: no usable market data: %v\n", err)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return subcommands.ExitFailure
	}

	view := renderer.NewReport(report)
	if c.asJSON {
		out, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(out))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderReport(view))
	return subcommands.ExitSuccess
}
