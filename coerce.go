package chartdata

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Coerce converts a currency or locale formatted cell into a float64. It
// strips a leading dollar sign and grouping commas, trims whitespace, and
// parses the rest as an exact decimal. An empty cell or the literal "nan"
// (any case) yields 0, as does any other parse failure: coercion never
// returns an error. Use CoerceCell to know whether a value was degraded.
func Coerce(cell string) float64 {
	v, _ := coerce(cell)
	return v
}

// CoerceCell is Coerce with diagnostics: a cell that fails to parse (other
// than the expected blanks "" and "nan") is recorded in diags at the given
// raw-input position.
func CoerceCell(cell string, row, col int, diags *Diagnostics) float64 {
	v, ok := coerce(cell)
	if !ok {
		diags.numeric(row, col, cell)
	}
	return v
}

// coerce returns the parsed value and whether the cell was clean. Blanks and
// "nan" are clean zeros, any other unparseable content is a degraded zero.
func coerce(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" || strings.EqualFold(s, "nan") {
		return 0, true
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	// Accounting exports wrap negatives in parentheses.
	if len(s) > 1 && s[0] == '(' && s[len(s)-1] == ')' {
		s = "-" + s[1:len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	return d.InexactFloat64(), true
}
