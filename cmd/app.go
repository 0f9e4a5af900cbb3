// Package cmd implements the CLI application to analyze company fundamentals.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fonda"
	"github.com/etnz/fonda/yahoo"
	"github.com/google/subcommands"
)

// Commands is the list of subcommands a main package registers.
// A main package will call Register() on each, and Execute() on the user-selected one.
var Commands = []subcommands.Command{
	&analyzeCmd{},
	&resolveCmd{},
	&searchCmd{},
	&topicCmd{},
	&AssistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var yahooClient = yahoo.NewClient()

// newResolver returns the name-to-ticker resolver backed by the Yahoo search.
func newResolver() *fonda.Resolver {
	return fonda.NewResolver(yahooClient)
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// unstyled markdown is still readable
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
