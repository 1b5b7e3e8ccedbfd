package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"chartdata"
	"chartdata/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	asJSON bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display a stored dataset" }
func (*showCmd) Usage() string {
	return `cdt show [-json] <client> <dataset>

  Renders a stored dataset as a markdown summary, or as its canonical JSON
  record with -json (the exact payload a chart front end consumes).
`
}

func (p *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.asJSON, "json", false, "Print the canonical JSON record instead of a summary.")
}

func (p *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <client> <dataset>")
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	ds, err := store.Dataset(chartdata.ClientID(f.Arg(0)), f.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if p.asJSON {
		data, err := json.MarshalIndent(ds, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(data))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderDataset(f.Arg(1), ds, *currency))
	return subcommands.ExitSuccess
}
