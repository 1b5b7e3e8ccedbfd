package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"chartdata"
	"github.com/google/subcommands"
)

type addClientCmd struct{}

func (*addClientCmd) Name() string     { return "add-client" }
func (*addClientCmd) Synopsis() string { return "register a new client" }
func (*addClientCmd) Usage() string {
	return `cdt add-client <name>

  Registers a new client. The client id is derived from the name: lower case,
  spaces and dashes folded to underscores.
`
}

func (*addClientCmd) SetFlags(*flag.FlagSet) {}

func (*addClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected <name>")
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	id, err := store.AddClient(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := store.Save(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added client %q\n", id)
	return subcommands.ExitSuccess
}

type rmClientCmd struct{}

func (*rmClientCmd) Name() string     { return "rm-client" }
func (*rmClientCmd) Synopsis() string { return "delete a client and all its datasets" }
func (*rmClientCmd) Usage() string {
	return `cdt rm-client <id>

  Deletes a client and its data file. This cannot be undone.
`
}

func (*rmClientCmd) SetFlags(*flag.FlagSet) {}

func (*rmClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected <id>")
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	id := chartdata.ClientID(f.Arg(0))
	if err := store.DeleteClient(id); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted client %q\n", id)
	return subcommands.ExitSuccess
}
