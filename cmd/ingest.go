package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"chartdata"
	"chartdata/date"
	"chartdata/renderer"
	"github.com/google/subcommands"
)

type ingestCmd struct {
	client     string
	name       string
	kind       string
	file       string
	dayFirst   bool
	transposed bool
	lower      string
	lowerName  string
	upper      string
	upperName  string
}

func (*ingestCmd) Name() string { return "ingest" }
func (*ingestCmd) Synopsis() string {
	return "parse raw spreadsheet text into a canonical chart dataset"
}
func (*ingestCmd) Usage() string {
	return `cdt ingest -c <client> -n <name> -t <kind> [-f <file>] [options]

  Reads raw spreadsheet text (tab, comma, pipe or semicolon separated) from a
  file or stdin, builds the canonical dataset for the given chart kind
  (budget, daily_balance or ledger) and stores it under the client.
  Garbled cells degrade gracefully and are reported after the import.

Usage Examples:
# Paste a budget for client acme, reading from stdin.
$ pbpaste | cdt ingest -c acme -n "2024 budget" -t budget

# Import a day-first bank export with an overdraft threshold.
$ cdt ingest -c acme -n balances -t daily_balance -f export.csv -day-first -lower 500

`
}

func (p *ingestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.client, "c", "", "Client id to store the dataset under.")
	f.StringVar(&p.name, "n", "", "Name of the dataset.")
	f.StringVar(&p.kind, "t", "", "Chart kind: budget, daily_balance or ledger.")
	f.StringVar(&p.file, "f", "", "Input file. Reads stdin by default.")
	f.BoolVar(&p.dayFirst, "day-first", false, "Read ambiguous numeric dates as day/month instead of month/day.")
	f.BoolVar(&p.transposed, "transposed", false, "Budget only: categories in rows, periods in columns.")
	f.StringVar(&p.lower, "lower", "", "Daily balance only: lower threshold value.")
	f.StringVar(&p.lowerName, "lower-name", "", "Label for the lower threshold.")
	f.StringVar(&p.upper, "upper", "", "Daily balance only: upper threshold value.")
	f.StringVar(&p.upperName, "upper-name", "", "Label for the upper threshold.")
}

func (p *ingestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.client == "" || p.name == "" || p.kind == "" {
		fmt.Fprintln(os.Stderr, "Error: -c, -n and -t are required")
		return subcommands.ExitUsageError
	}
	kind, err := chartdata.ParseChartKind(p.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	text, err := readInput(p.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	opts := chartdata.IngestOptions{Transposed: p.transposed}
	if p.dayFirst {
		opts.DateConvention = date.DayFirst
	}
	ds, diags, err := chartdata.IngestWith(kind, text, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	p.applyThresholds(ds)

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := store.PutDataset(chartdata.ClientID(p.client), p.name, ds); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := store.Save(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if !diags.Empty() {
		fmt.Fprintf(os.Stderr, "%d cells degraded during import:\n", len(diags.Degradations))
		for _, d := range diags.Degradations {
			fmt.Fprintln(os.Stderr, "  ", d.String())
		}
	}
	printMarkdown(renderer.RenderDataset(p.name, ds, *currency))
	return subcommands.ExitSuccess
}

// applyThresholds attaches the optional threshold annotations. A threshold
// that cannot be applied is skipped with a warning: the parsed dataset is
// worth storing either way.
func (p *ingestCmd) applyThresholds(ds *chartdata.Dataset) {
	set := func(flag, raw, name string, apply func(float64, string) error) {
		if raw == "" {
			return
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring invalid -%s value %q\n", flag, raw)
			return
		}
		if err := apply(v, name); err != nil {
			fmt.Fprintln(os.Stderr, "Warning:", err)
		}
	}
	set("lower", p.lower, p.lowerName, ds.SetLowerThreshold)
	set("upper", p.upper, p.upperName, ds.SetUpperThreshold)
}

// readInput reads the whole input, from a file or stdin.
func readInput(file string) (string, error) {
	if file == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("could not read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("could not read input file %q: %w", file, err)
	}
	return string(data), nil
}
