package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list clients and their stored datasets" }
func (*listCmd) Usage() string {
	return `cdt list

  Lists every client with the name and chart kind of each stored dataset.
`
}

func (*listCmd) SetFlags(*flag.FlagSet) {}

func (*listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	ids := store.Clients()
	if len(ids) == 0 {
		fmt.Println("no clients stored")
		return subcommands.ExitSuccess
	}
	for _, id := range ids {
		c, _ := store.Client(id)
		fmt.Printf("%s (%s)\n", id, c.Name)
		names := make([]string, 0, len(c.Datasets))
		for name := range c.Datasets {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %s\t%s\n", name, c.Datasets[name].ChartType)
		}
	}
	return subcommands.ExitSuccess
}
