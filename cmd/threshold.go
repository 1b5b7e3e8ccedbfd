package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"chartdata"
	"github.com/google/subcommands"
)

type thresholdCmd struct {
	lower     string
	lowerName string
	upper     string
	upperName string
}

func (*thresholdCmd) Name() string     { return "threshold" }
func (*thresholdCmd) Synopsis() string { return "annotate a daily-balance dataset with thresholds" }
func (*thresholdCmd) Usage() string {
	return `cdt threshold [-lower <value>] [-upper <value>] <client> <dataset>

  Attaches lower and upper threshold line annotations to a stored
  daily-balance dataset, for example an overdraft limit or a savings goal.
`
}

func (p *thresholdCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.lower, "lower", "", "Lower threshold value.")
	f.StringVar(&p.lowerName, "lower-name", "", "Label for the lower threshold.")
	f.StringVar(&p.upper, "upper", "", "Upper threshold value.")
	f.StringVar(&p.upperName, "upper-name", "", "Label for the upper threshold.")
}

func (p *thresholdCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <client> <dataset>")
		return subcommands.ExitUsageError
	}
	if p.lower == "" && p.upper == "" {
		fmt.Fprintln(os.Stderr, "Error: nothing to set, pass -lower and/or -upper")
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	client := chartdata.ClientID(f.Arg(0))
	ds, err := store.Dataset(client, f.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	// An unparseable value is skipped with a warning rather than discarding
	// the whole update.
	applied := false
	if p.lower != "" {
		if v, err := strconv.ParseFloat(p.lower, 64); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring invalid -lower value %q\n", p.lower)
		} else if err := ds.SetLowerThreshold(v, p.lowerName); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		} else {
			applied = true
		}
	}
	if p.upper != "" {
		if v, err := strconv.ParseFloat(p.upper, 64); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring invalid -upper value %q\n", p.upper)
		} else if err := ds.SetUpperThreshold(v, p.upperName); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		} else {
			applied = true
		}
	}
	if !applied {
		fmt.Fprintln(os.Stderr, "Warning: no threshold applied")
		return subcommands.ExitSuccess
	}

	if err := store.PutDataset(client, f.Arg(1), ds); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := store.Save(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated thresholds on %s/%s\n", client, f.Arg(1))
	return subcommands.ExitSuccess
}
