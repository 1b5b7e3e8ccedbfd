package renderer

import (
	"strings"
	"testing"

	"chartdata"
)

func TestRenderBudget(t *testing.T) {
	b := &chartdata.BudgetDataset{
		Months:          []string{"Jan'24", "Feb'24"},
		IncomeValues:    []float64{1000, 1100},
		ExpenseData:     map[string][]float64{"OPEX": {200, 250}},
		ExpenseColors:   map[string]string{"OPEX": "#4169E1"},
		NetIncomeValues: []float64{800, 850},
	}
	got := RenderBudget("acme", b, "USD")

	for _, want := range []string{
		"# Budget: acme",
		"| Jan'24 | $1,000.00 | $200.00 | $800.00 |",
		"| Feb'24 | $1,100.00 | $250.00 | $850.00 |",
		"## Expense Categories",
		"| OPEX | `#4169E1` | $450.00 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered budget missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderDailyBalanceWithThresholds(t *testing.T) {
	ds := &chartdata.Dataset{
		ChartType: chartdata.DailyBalance,
		DailyBalance: &chartdata.DailyBalanceDataset{
			Dates: []string{"2024-01-01", "2024-01-02"},
			AccountData: map[string]chartdata.AccountSeries{
				"Checking": {Dates: []string{"2024-01-01", "2024-01-02"}, Balances: []float64{100, 150}},
			},
			AccountColors: map[string]string{"Checking": "#4169E1"},
			TotalBalances: []float64{100, 150},
		},
	}
	if err := ds.SetLowerThreshold(50, "overdraft guard"); err != nil {
		t.Fatal(err)
	}
	got := RenderDailyBalance("acme", ds, "EUR")

	for _, want := range []string{
		"# Daily Balance: acme",
		"2 observation days from 2024-01-01 to 2024-01-02",
		"Checking",
		"## Thresholds",
		"overdraft guard",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered balance missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderLedger(t *testing.T) {
	l := &chartdata.LedgerDataset{
		Dates:          []string{"2024-01-01", "2024-01-03"},
		Descriptions:   []string{"Invoice", "Rent"},
		Amounts:        []float64{500, -200},
		Categories:     []string{"Sales", "Housing"},
		RunningBalance: []float64{500, 300},
		CategoryData: map[string]chartdata.CategorySeries{
			"Sales":   {Dates: []string{"2024-01-01"}, Amounts: []float64{500}, Descriptions: []string{"Invoice"}},
			"Housing": {Dates: []string{"2024-01-03"}, Amounts: []float64{-200}, Descriptions: []string{"Rent"}},
		},
		CategoryColors: map[string]string{"Sales": "#4169E1", "Housing": "#40E0D0"},
	}
	got := RenderLedger("acme", l, "USD")

	for _, want := range []string{
		"# Ledger: acme",
		"| 2024-01-01 | Invoice | $500.00 | Sales | $500.00 |",
		"**Final balance: $300.00**",
		"## Categories",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered ledger missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderDatasetUnknown(t *testing.T) {
	ds := &chartdata.Dataset{ChartType: chartdata.Unknown}
	got := RenderDataset("mystery", ds, "USD")
	if !strings.Contains(got, "# mystery") || !strings.Contains(got, "no recognized chart type") {
		t.Errorf("unexpected unknown rendering:\n%s", got)
	}
}
