package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type validateCmd struct {
	write bool
}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "repair stored records to the canonical shape" }
func (*validateCmd) Usage() string {
	return `cdt validate [-w]

  Loads every client file, repairing records written by older versions:
  missing chart types are inferred from field signatures, bare arrays are
  wrapped, and derivable fields (net income, colors, totals, running
  balances) are backfilled. With -w the repaired records are written back.
`
}

func (p *validateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.write, "w", false, "Write repaired records back to disk.")
}

func (p *validateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	dirty := store.Dirty()
	if len(dirty) == 0 {
		fmt.Println("All stored records are canonical.")
		return subcommands.ExitSuccess
	}
	for _, id := range dirty {
		fmt.Printf("client %q: repairs needed\n", id)
	}
	if !p.write {
		fmt.Println("Run with -w to write the repaired records back.")
		return subcommands.ExitSuccess
	}
	if err := store.Save(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Repaired %d client file(s).\n", len(dirty))
	return subcommands.ExitSuccess
}
