package chartdata

import (
	"sort"
	"strings"

	"chartdata/date"
	"github.com/shopspring/decimal"
)

// uncategorized is the category assigned to ledger rows whose input carries
// no category column or an empty cell.
const uncategorized = "Uncategorized"

// BuildLedger turns classified rows into the canonical categorized
// transaction ledger. Rows are sorted by date ascending with a stable
// tie-break preserving input order, the running balance is the cumulative sum
// of amounts in that order, and each category keeps its own ordered
// subsequence.
func BuildLedger(rows [][]string, layout Layout, conv date.Convention, diags *Diagnostics) (*LedgerDataset, error) {
	dateCol := layout.find(RoleDate)
	amountCol := layout.find(RoleBalance)
	if dateCol < 0 {
		return nil, formatErrorf(Ledger, "no date column could be identified")
	}
	if amountCol < 0 {
		return nil, formatErrorf(Ledger, "no amount column could be identified")
	}
	descCol := layout.find(RoleDescription)
	categoryCol := layout.find(RoleCategory)

	type entry struct {
		day         string
		description string
		amount      float64
		category    string
	}
	cell := func(row []string, col int) string {
		if col >= 0 && col < len(row) {
			return row[col]
		}
		return ""
	}

	var entries []entry
	for r := layout.DataStart; r < len(rows); r++ {
		row := rows[r]
		if len(row) <= dateCol || strings.TrimSpace(row[dateCol]) == "" {
			continue
		}
		day := normalizeDay(row[dateCol], conv, r, dateCol, diags)
		category := strings.TrimSpace(cell(row, categoryCol))
		if category == "" {
			category = uncategorized
		}
		entries = append(entries, entry{
			day:         day,
			description: strings.TrimSpace(cell(row, descCol)),
			amount:      CoerceCell(cell(row, amountCol), r, amountCol, diags),
			category:    category,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].day < entries[j].day })

	ds := &LedgerDataset{
		Dates:          []string{},
		Descriptions:   []string{},
		Amounts:        []float64{},
		Categories:     []string{},
		RunningBalance: []float64{},
		CategoryData:   make(map[string]CategorySeries),
		CategoryColors: make(map[string]string),
	}
	var order []string
	running := decimal.Zero
	for _, e := range entries {
		ds.Dates = append(ds.Dates, e.day)
		ds.Descriptions = append(ds.Descriptions, e.description)
		ds.Amounts = append(ds.Amounts, e.amount)
		ds.Categories = append(ds.Categories, e.category)
		running = running.Add(decimal.NewFromFloat(e.amount))
		ds.RunningBalance = append(ds.RunningBalance, running.InexactFloat64())

		series, seen := ds.CategoryData[e.category]
		if !seen {
			order = append(order, e.category)
			series = CategorySeries{Dates: []string{}, Amounts: []float64{}, Descriptions: []string{}}
		}
		series.Dates = append(series.Dates, e.day)
		series.Amounts = append(series.Amounts, e.amount)
		series.Descriptions = append(series.Descriptions, e.description)
		ds.CategoryData[e.category] = series
	}
	for i, cat := range order {
		ds.CategoryColors[cat] = colorFor(i)
	}
	return ds, nil
}
