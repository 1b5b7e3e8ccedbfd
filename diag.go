package chartdata

import "fmt"

// Degradation records a single cell that could not be parsed and was replaced
// by a safe default. Degradations never abort an ingestion call.
type Degradation struct {
	Row     int    // zero-based row index in the raw input
	Col     int    // zero-based column index
	Cell    string // original cell content
	Kind    string // "numeric" or "date"
	Applied string // the default that was used instead
}

func (d Degradation) String() string {
	return fmt.Sprintf("row %d col %d: %s cell %q replaced by %s", d.Row, d.Col, d.Kind, d.Cell, d.Applied)
}

// Diagnostics collects the non-fatal degradations of one ingestion call so
// the caller can surface warnings without a change in control flow.
type Diagnostics struct {
	Degradations []Degradation
}

func (g *Diagnostics) numeric(row, col int, cell string) {
	if g == nil {
		return
	}
	g.Degradations = append(g.Degradations, Degradation{Row: row, Col: col, Cell: cell, Kind: "numeric", Applied: "0"})
}

func (g *Diagnostics) date(row, col int, cell string) {
	if g == nil {
		return
	}
	g.Degradations = append(g.Degradations, Degradation{Row: row, Col: col, Cell: cell, Kind: "date", Applied: "original text"})
}

// Empty reports whether no degradation was recorded.
func (g *Diagnostics) Empty() bool { return g == nil || len(g.Degradations) == 0 }
