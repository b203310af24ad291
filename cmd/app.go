// Package cmd implements the CLI application around the extraction engine.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute()
// on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&extractCmd{}, "extraction")
	c.Register(&searchCmd{}, "lookup")
	c.Register(&topicCmd{}, "documentation")
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables.

var configFile = flag.String("config", "", "Path to the settings file (default $HOME/.fda.yaml)")

// printMarkdown renders markdown for the terminal, falling back to the raw
// source when the renderer cannot run (e.g. no usable TTY profile).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

func errorf(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
