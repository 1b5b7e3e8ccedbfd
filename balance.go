package chartdata

import (
	"strings"

	"chartdata/date"
	"github.com/shopspring/decimal"
)

// BuildDailyBalance turns classified rows into the canonical multi-account
// daily balance series.
//
// In the wide layout every non-date column is its own account; in the long
// layout rows are grouped by the account column and each group ordered by
// date. Either way an account's series is exactly its own observed
// subsequence: the engine never forward-fills a missing day, that is a
// renderer's choice to make.
//
// Duplicate observations for the same (date, account) pair resolve to the
// last one in input order: balances are point-in-time readings, so summing
// them would double-count.
func BuildDailyBalance(rows [][]string, layout Layout, conv date.Convention, diags *Diagnostics) (*DailyBalanceDataset, error) {
	if layout.Long {
		return buildLongBalance(rows, layout, conv, diags)
	}
	return buildWideBalance(rows, layout, conv, diags)
}

func buildWideBalance(rows [][]string, layout Layout, conv date.Convention, diags *Diagnostics) (*DailyBalanceDataset, error) {
	dateCol := layout.find(RoleDate)
	if dateCol < 0 {
		return nil, formatErrorf(DailyBalance, "no date column could be identified")
	}
	var accountCols []int
	for i, r := range layout.Roles {
		if r == RoleAccount && i != dateCol && !excludedHeader(layout.Headers[i]) {
			accountCols = append(accountCols, i)
		}
	}
	if len(accountCols) == 0 {
		return nil, formatErrorf(DailyBalance, "no account columns found")
	}

	histories := make(map[string]*date.History[float64])
	var order []string
	for _, col := range accountCols {
		name := layout.Headers[col]
		if _, dup := histories[name]; dup {
			continue
		}
		histories[name] = &date.History[float64]{}
		order = append(order, name)
	}

	for r := layout.DataStart; r < len(rows); r++ {
		row := rows[r]
		if len(row) <= dateCol {
			continue
		}
		day := normalizeDay(row[dateCol], conv, r, dateCol, diags)
		if day == "" {
			continue
		}
		for _, col := range accountCols {
			name := layout.Headers[col]
			if h, ok := histories[name]; ok {
				var cellValue string
				if col < len(row) {
					cellValue = row[col]
				}
				h.Append(day, CoerceCell(cellValue, r, col, diags))
			}
		}
	}
	return assembleBalance(order, histories), nil
}

func buildLongBalance(rows [][]string, layout Layout, conv date.Convention, diags *Diagnostics) (*DailyBalanceDataset, error) {
	dateCol := layout.find(RoleDate)
	accountCol := layout.find(RoleAccount)
	balanceCol := layout.find(RoleBalance)
	if dateCol < 0 || accountCol < 0 || balanceCol < 0 {
		return nil, formatErrorf(DailyBalance, "long layout needs date, account and balance columns")
	}

	histories := make(map[string]*date.History[float64])
	var order []string
	for r := layout.DataStart; r < len(rows); r++ {
		row := rows[r]
		if len(row) <= dateCol || len(row) <= accountCol {
			continue
		}
		account := strings.TrimSpace(row[accountCol])
		if account == "" {
			continue
		}
		day := normalizeDay(row[dateCol], conv, r, dateCol, diags)
		if day == "" {
			continue
		}
		h, ok := histories[account]
		if !ok {
			h = &date.History[float64]{}
			histories[account] = h
			order = append(order, account)
		}
		var cellValue string
		if balanceCol < len(row) {
			cellValue = row[balanceCol]
		}
		h.Append(day, CoerceCell(cellValue, r, balanceCol, diags))
	}
	if len(order) == 0 {
		return nil, formatErrorf(DailyBalance, "no account readings found")
	}
	return assembleBalance(order, histories), nil
}

// normalizeDay canonicalizes a date cell, honoring the fail-open contract: an
// unparseable non-empty cell keeps its original text (recorded in diags) and
// still anchors observations. Empty cells void the row.
func normalizeDay(cell string, conv date.Convention, row, col int, diags *Diagnostics) string {
	s := strings.TrimSpace(cell)
	if s == "" {
		return ""
	}
	day := date.NormalizeWith(conv, s)
	if day == s {
		if _, err := date.ParseWith(conv, s); err != nil {
			diags.date(row, col, s)
		}
	}
	return day
}

// assembleBalance builds the dataset from per-account histories: the shared
// axis is the sorted union of observation days, colors follow first-seen
// account order, and each total sums only the accounts reporting exactly on
// that day.
func assembleBalance(order []string, histories map[string]*date.History[float64]) *DailyBalanceDataset {
	var axis date.History[float64]
	for _, name := range order {
		for day := range histories[name].Values() {
			axis.Append(day, 0)
		}
	}

	ds := &DailyBalanceDataset{
		Dates:         append([]string{}, axis.Days()...),
		AccountData:   make(map[string]AccountSeries),
		AccountColors: make(map[string]string),
		TotalBalances: []float64{},
	}
	for i, name := range order {
		h := histories[name]
		series := AccountSeries{Dates: []string{}, Balances: []float64{}}
		for day, v := range h.Values() {
			series.Dates = append(series.Dates, day)
			series.Balances = append(series.Balances, v)
		}
		ds.AccountData[name] = series
		ds.AccountColors[name] = colorFor(i)
	}
	for _, day := range ds.Dates {
		total := decimal.Zero
		for _, name := range order {
			if v, ok := histories[name].Get(day); ok {
				total = total.Add(decimal.NewFromFloat(v))
			}
		}
		ds.TotalBalances = append(ds.TotalBalances, total.InexactFloat64())
	}
	return ds
}
