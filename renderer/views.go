package renderer

import (
	"sort"

	"chartdata"
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// amount formats a float as a currency string with the right symbol and
// minor-unit precision. An unknown code falls back to USD.
func amount(v float64, code string) string {
	if money.GetCurrency(code) == nil {
		code = money.USD
	}
	return money.NewFromFloat(v, code).Display()
}

// BudgetRow is one period line of the budget summary.
type BudgetRow struct {
	Month    string
	Income   string
	Expenses string
	Net      string
}

// BudgetCategory is one expense category with its total over all periods.
type BudgetCategory struct {
	Name  string
	Color string
	Total string
}

// BudgetView is the template model for a budget summary.
type BudgetView struct {
	Title      string
	Rows       []BudgetRow
	Categories []BudgetCategory
}

// NewBudgetView flattens a budget dataset into formatted rows and sorted
// category totals.
func NewBudgetView(title string, b *chartdata.BudgetDataset, currency string) *BudgetView {
	v := &BudgetView{Title: title}
	for i, month := range b.Months {
		expenses := decimal.Zero
		for _, series := range b.ExpenseData {
			if i < len(series) {
				expenses = expenses.Add(decimal.NewFromFloat(series[i]))
			}
		}
		row := BudgetRow{Month: month, Expenses: amount(expenses.InexactFloat64(), currency)}
		if i < len(b.IncomeValues) {
			row.Income = amount(b.IncomeValues[i], currency)
		}
		if i < len(b.NetIncomeValues) {
			row.Net = amount(b.NetIncomeValues[i], currency)
		}
		v.Rows = append(v.Rows, row)
	}

	names := make([]string, 0, len(b.ExpenseData))
	for name := range b.ExpenseData {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		total := decimal.Zero
		for _, x := range b.ExpenseData[name] {
			total = total.Add(decimal.NewFromFloat(x))
		}
		v.Categories = append(v.Categories, BudgetCategory{
			Name:  name,
			Color: b.ExpenseColors[name],
			Total: amount(total.InexactFloat64(), currency),
		})
	}
	return v
}

// BalanceAccount summarizes one account's series.
type BalanceAccount struct {
	Name         string
	Color        string
	Observations int
	First        string
	Last         string
	Latest       string
}

// BalanceView is the template model for a daily-balance summary.
type BalanceView struct {
	Title       string
	Days        int
	From        string
	To          string
	Accounts    []BalanceAccount
	LatestTotal string

	HasLower  bool
	Lower     string
	LowerName string
	HasUpper  bool
	Upper     string
	UpperName string
}

// NewBalanceView summarizes a daily-balance dataset, carrying over threshold
// annotations when present.
func NewBalanceView(title string, ds *chartdata.Dataset, currency string) *BalanceView {
	b := ds.DailyBalance
	v := &BalanceView{Title: title, Days: len(b.Dates)}
	if len(b.Dates) > 0 {
		v.From, v.To = b.Dates[0], b.Dates[len(b.Dates)-1]
	}
	if len(b.TotalBalances) > 0 {
		v.LatestTotal = amount(b.TotalBalances[len(b.TotalBalances)-1], currency)
	}

	names := make([]string, 0, len(b.AccountData))
	for name := range b.AccountData {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		series := b.AccountData[name]
		a := BalanceAccount{Name: name, Color: b.AccountColors[name], Observations: len(series.Dates)}
		if n := len(series.Dates); n > 0 {
			a.First, a.Last = series.Dates[0], series.Dates[n-1]
		}
		if n := len(series.Balances); n > 0 {
			a.Latest = amount(series.Balances[n-1], currency)
		}
		v.Accounts = append(v.Accounts, a)
	}

	if ds.LowerThreshold != nil {
		v.HasLower, v.Lower, v.LowerName = true, amount(*ds.LowerThreshold, currency), ds.LowerThresholdName
	}
	if ds.UpperThreshold != nil {
		v.HasUpper, v.Upper, v.UpperName = true, amount(*ds.UpperThreshold, currency), ds.UpperThresholdName
	}
	return v
}

// LedgerRow is one transaction line.
type LedgerRow struct {
	Date        string
	Description string
	Amount      string
	Category    string
	Balance     string
}

// LedgerCategory is one category with its transaction count and total.
type LedgerCategory struct {
	Name  string
	Color string
	Count int
	Total string
}

// LedgerView is the template model for a ledger summary.
type LedgerView struct {
	Title        string
	Rows         []LedgerRow
	FinalBalance string
	Categories   []LedgerCategory
}

// NewLedgerView flattens a ledger dataset into formatted transaction rows and
// sorted category totals.
func NewLedgerView(title string, l *chartdata.LedgerDataset, currency string) *LedgerView {
	v := &LedgerView{Title: title}
	for i, day := range l.Dates {
		row := LedgerRow{Date: day}
		if i < len(l.Descriptions) {
			row.Description = l.Descriptions[i]
		}
		if i < len(l.Amounts) {
			row.Amount = amount(l.Amounts[i], currency)
		}
		if i < len(l.Categories) {
			row.Category = l.Categories[i]
		}
		if i < len(l.RunningBalance) {
			row.Balance = amount(l.RunningBalance[i], currency)
		}
		v.Rows = append(v.Rows, row)
	}
	if n := len(l.RunningBalance); n > 0 {
		v.FinalBalance = amount(l.RunningBalance[n-1], currency)
	}

	names := make([]string, 0, len(l.CategoryData))
	for name := range l.CategoryData {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		series := l.CategoryData[name]
		total := decimal.Zero
		for _, x := range series.Amounts {
			total = total.Add(decimal.NewFromFloat(x))
		}
		v.Categories = append(v.Categories, LedgerCategory{
			Name:  name,
			Color: l.CategoryColors[name],
			Count: len(series.Amounts),
			Total: amount(total.InexactFloat64(), currency),
		})
	}
	return v
}
