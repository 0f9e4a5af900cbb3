package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// resolveCmd implements the "resolve" command.
type resolveCmd struct{}

func (*resolveCmd) Name() string     { return "resolve" }
func (*resolveCmd) Synopsis() string { return "resolves a company name to its ticker" }
func (*resolveCmd) Usage() string {
	return `fonda resolve <company name>

  Resolves a company name to its exchange ticker: the curated table first,
  then the Yahoo Finance search as fallback.

Usage Examples:
$ fonda resolve credit agricole
ACA.PA
`
}

func (*resolveCmd) SetFlags(f *flag.FlagSet) {}

func (c *resolveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a company name is required.")
		return subcommands.ExitUsageError
	}
	name := strings.Join(f.Args(), " ")

	ticker, err := newResolver().Resolve(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(ticker)
	return subcommands.ExitSuccess
}
