package main

import (
	"context"
	"flag"
	"os"
	"path"

	"chartdata/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs first and exits when invoked by the shell.
	completion().Complete("cdt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	kinds := predict.Set{"budget", "daily_balance", "ledger"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
			"currency": predict.Set{"USD", "EUR", "GBP"},
		},
		Sub: map[string]*complete.Command{
			"ingest": {Flags: map[string]complete.Predictor{
				"c": predict.Nothing,
				"n": predict.Nothing,
				"t": kinds,
				"f": predict.Files("*"),
			}},
			"show":       {Flags: map[string]complete.Predictor{"json": predict.Nothing}},
			"list":       {},
			"threshold":  {},
			"validate":   {Flags: map[string]complete.Predictor{"w": predict.Nothing}},
			"export":     {Flags: map[string]complete.Predictor{"o": predict.Dirs("*"), "format": predict.Set{"md", "html"}}},
			"add-client": {},
			"rm-client":  {},
			"topic":      {},
			"assist":     {},
		},
	}
}
