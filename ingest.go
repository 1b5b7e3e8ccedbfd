package chartdata

import (
	"strings"

	"chartdata/date"
)

// IngestOptions tune one ingestion call.
type IngestOptions struct {
	// DateConvention resolves ambiguous numeric date pairs like 03/04/2024.
	// The default is month-first.
	DateConvention date.Convention
	// Transposed reads budget input with categories in rows and periods in
	// columns, the natural spreadsheet export shape. Ignored for other kinds.
	Transposed bool
}

// Ingest parses raw pasted or uploaded spreadsheet text into the canonical
// dataset for the given chart kind.
//
// The pipeline is: delimiter detection on the first line, row/cell split,
// column-role classification, then the kind's dataset builder. The returned
// Diagnostics lists every cell that degraded to a default; it is never nil
// and never turns into an error. A non-nil error is always a *FormatError
// scoped to this call.
func Ingest(kind ChartKind, text string) (*Dataset, *Diagnostics, error) {
	return IngestWith(kind, text, IngestOptions{})
}

// IngestWith is Ingest with explicit options.
func IngestWith(kind ChartKind, text string, opts IngestOptions) (*Dataset, *Diagnostics, error) {
	diags := &Diagnostics{}
	first, _, _ := strings.Cut(text, "\n")
	delim := DetectDelimiter(first)
	rows := SplitRows(text, delim)

	if kind == Budget && opts.Transposed {
		b, err := BuildBudgetTransposed(rows, diags)
		if err != nil {
			return nil, diags, err
		}
		return &Dataset{ChartType: Budget, Budget: b}, diags, nil
	}

	layout, err := Classify(kind, rows)
	if err != nil {
		return nil, diags, err
	}

	ds := &Dataset{ChartType: kind}
	switch kind {
	case Budget:
		ds.Budget, err = BuildBudget(rows, layout, diags)
	case DailyBalance:
		ds.DailyBalance, err = BuildDailyBalance(rows, layout, opts.DateConvention, diags)
	case Ledger:
		ds.Ledger, err = BuildLedger(rows, layout, opts.DateConvention, diags)
	default:
		err = formatErrorf(kind, "not an ingestable chart kind")
	}
	if err != nil {
		return nil, diags, err
	}
	return ds, diags, nil
}
