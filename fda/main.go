package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/aviadkim/findoc-analyzer-sub003/cmd"
)

func main() {
	// Shell completion; only effective when invoked by the completion hooks.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"extract": {
				Flags: map[string]complete.Predictor{
					"format": predict.Set{"json", "report"},
					"llm":    predict.Nothing,
					"enrich": predict.Nothing,
				},
				Args: predict.Files("*"),
			},
			"search": {Flags: map[string]complete.Predictor{"show-errors": predict.Nothing}},
			"topic":  {Args: predict.Set{"readme", "extraction", "enrichment", "*"}},
		},
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
		},
	}
	completion.Complete("fda")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(subcommands.HelpCommand(), "")
	commander.Register(subcommands.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
