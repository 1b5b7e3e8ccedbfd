package chartdata

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BuildBudget turns classified rows into the canonical period income/expense
// breakdown. The layout must locate an income column or the whole call fails
// with a FormatError; everything else degrades gracefully: garbled numeric
// cells coerce to zero (recorded in diags) and a missing or garbled
// net-income cell is recomputed as income minus the sum of expenses.
func BuildBudget(rows [][]string, layout Layout, diags *Diagnostics) (*BudgetDataset, error) {
	incomeCol := layout.find(RoleIncome)
	if incomeCol < 0 {
		return nil, formatErrorf(Budget, "no income column could be identified")
	}
	netCol := layout.find(RoleNetIncome)

	// Expense categories in column order, skipping duplicates of an already
	// registered header.
	var expenseCols []int
	seen := make(map[string]bool)
	for i, r := range layout.Roles {
		if r != RoleExpense {
			continue
		}
		name := strings.TrimSpace(layout.Headers[i])
		if excludedHeader(name) || seen[name] {
			continue
		}
		seen[name] = true
		expenseCols = append(expenseCols, i)
	}

	ds := &BudgetDataset{
		IncomeValues:    []float64{},
		ExpenseData:     make(map[string][]float64),
		ExpenseColors:   make(map[string]string),
		NetIncomeValues: []float64{},
	}
	for _, col := range expenseCols {
		ds.ExpenseData[layout.Headers[col]] = []float64{}
	}

	cell := func(row []string, col int) string {
		if col < len(row) {
			return row[col]
		}
		return ""
	}

	for r := layout.DataStart; r < len(rows); r++ {
		row := rows[r]
		if len(row) < 2 {
			continue
		}
		period := strings.TrimSpace(row[0])
		if excludedHeader(period) {
			continue // grand-total and blank rows are not periods
		}
		ds.Months = append(ds.Months, period)

		income := CoerceCell(cell(row, incomeCol), r, incomeCol, diags)
		ds.IncomeValues = append(ds.IncomeValues, income)

		expenseSum := decimal.Zero
		for _, col := range expenseCols {
			v := CoerceCell(cell(row, col), r, col, diags)
			name := layout.Headers[col]
			ds.ExpenseData[name] = append(ds.ExpenseData[name], v)
			expenseSum = expenseSum.Add(decimal.NewFromFloat(v))
		}

		net, ok := 0.0, false
		if netCol >= 0 {
			// A blank or nan net-income cell means "derive it", not zero.
			if s := strings.TrimSpace(cell(row, netCol)); s != "" && !strings.EqualFold(s, "nan") {
				net, ok = coerce(s)
			}
		}
		if netCol < 0 || !ok {
			net = decimal.NewFromFloat(income).Sub(expenseSum).InexactFloat64()
		}
		ds.NetIncomeValues = append(ds.NetIncomeValues, net)
	}

	for i, col := range expenseCols {
		ds.ExpenseColors[layout.Headers[col]] = colorFor(i)
	}
	return ds, nil
}

// BuildBudgetTransposed handles the natural spreadsheet export where
// categories occupy rows and periods occupy columns. A trailing TOTAL column
// is dropped from the period axis. The income row is the first label
// containing INCOME without NET; a NET+INCOME label supplies net income;
// every other labeled, non-empty row is an expense category.
func BuildBudgetTransposed(rows [][]string, diags *Diagnostics) (*BudgetDataset, error) {
	if len(rows) < 2 || len(rows[0]) < 2 {
		return nil, formatErrorf(Budget, "transposed input needs a period header row and at least one category row")
	}
	months := rows[0][1:]
	if n := len(months); n > 0 && excludedHeader(months[n-1]) {
		months = months[:n-1]
	}
	if len(months) == 0 {
		return nil, formatErrorf(Budget, "no period columns found")
	}

	values := func(row []string, r int) []float64 {
		out := make([]float64, len(months))
		for i := range months {
			if i+1 < len(row) {
				out[i] = CoerceCell(row[i+1], r, i+1, diags)
			}
		}
		return out
	}
	blank := func(row []string) bool {
		for i := range months {
			if i+1 < len(row) && strings.TrimSpace(row[i+1]) != "" {
				return false
			}
		}
		return true
	}

	ds := &BudgetDataset{
		Months:        append([]string(nil), months...),
		ExpenseData:   make(map[string][]float64),
		ExpenseColors: make(map[string]string),
	}
	var expenseOrder []string
	var netIncome []float64

	for r := 1; r < len(rows); r++ {
		row := rows[r]
		label := strings.TrimSpace(row[0])
		up := strings.ToUpper(label)
		switch {
		case strings.Contains(up, "NET") && strings.Contains(up, "INCOME"):
			netIncome = values(row, r)
		case strings.Contains(up, "INCOME") && ds.IncomeValues == nil:
			ds.IncomeValues = values(row, r)
		case excludedHeader(label) || up == "TOTAL EXPENSES":
			continue
		case blank(row):
			continue // section header rows carry no values
		default:
			if _, dup := ds.ExpenseData[label]; dup {
				continue
			}
			ds.ExpenseData[label] = values(row, r)
			expenseOrder = append(expenseOrder, label)
		}
	}

	if ds.IncomeValues == nil {
		return nil, formatErrorf(Budget, "no income row could be identified")
	}
	if netIncome == nil {
		netIncome = make([]float64, len(months))
		for i := range months {
			sum := decimal.NewFromFloat(ds.IncomeValues[i])
			for _, cat := range expenseOrder {
				sum = sum.Sub(decimal.NewFromFloat(ds.ExpenseData[cat][i]))
			}
			netIncome[i] = sum.InexactFloat64()
		}
	}
	ds.NetIncomeValues = netIncome

	for i, cat := range expenseOrder {
		ds.ExpenseColors[cat] = colorFor(i)
	}
	return ds, nil
}
