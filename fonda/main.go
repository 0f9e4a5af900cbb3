package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/fonda/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// handle shell completion requests before anything else.
	completion().Complete("fonda")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the CLI for shell completion (install with
// COMP_INSTALL=1 fonda).
func completion() *complete.Command {
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"analyze": {
				Flags: map[string]complete.Predictor{
					"peers": predict.Something,
					"json":  predict.Nothing,
				},
			},
			"resolve": {},
			"search":  {},
			"topic": {
				Args: predict.Set{"readme", "ratios", "thresholds", "valuation", "peers"},
			},
			"assist": {},
		},
	}
}
