package chartdata

import (
	"testing"

	"chartdata/date"
)

func classifyBalance(t *testing.T, rows [][]string) Layout {
	t.Helper()
	layout, err := Classify(DailyBalance, rows)
	if err != nil {
		t.Fatal(err)
	}
	return layout
}

func TestBuildDailyBalanceWide(t *testing.T) {
	rows := [][]string{
		{"Date", "Checking", "Savings"},
		{"2024-01-01", "100", "500"},
		{"2024-01-02", "120", "500"},
	}
	ds, err := BuildDailyBalance(rows, classifyBalance(t, rows), date.MonthFirst, &Diagnostics{})
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Dates) != 2 || ds.Dates[0] != "2024-01-01" {
		t.Errorf("unexpected axis: %v", ds.Dates)
	}
	if got := ds.AccountData["Checking"].Balances; got[1] != 120 {
		t.Errorf("unexpected Checking series: %v", got)
	}
	if ds.TotalBalances[0] != 600 || ds.TotalBalances[1] != 620 {
		t.Errorf("unexpected totals: %v", ds.TotalBalances)
	}
}

func TestBuildDailyBalanceDuplicateLastWins(t *testing.T) {
	rows := [][]string{
		{"Date", "Checking"},
		{"2024-01-01", "100"},
		{"2024-01-01", "150"},
	}
	ds, err := BuildDailyBalance(rows, classifyBalance(t, rows), date.MonthFirst, nil)
	if err != nil {
		t.Fatal(err)
	}
	series := ds.AccountData["Checking"]
	if len(series.Dates) != 1 {
		t.Fatalf("duplicate day must collapse, got %v", series.Dates)
	}
	if series.Balances[0] != 150 {
		t.Errorf("last observation must win, got %v", series.Balances[0])
	}
	if ds.TotalBalances[0] != 150 {
		t.Errorf("total must use the winning value, got %v", ds.TotalBalances[0])
	}
}

func TestBuildDailyBalanceLong(t *testing.T) {
	rows := [][]string{
		{"Date", "Account", "Balance"},
		{"2024-01-01", "Checking", "100"},
		{"2024-01-02", "Checking", "120"},
		{"2024-01-02", "Savings", "500"},
	}
	ds, err := BuildDailyBalance(rows, classifyBalance(t, rows), date.MonthFirst, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Dates) != 2 {
		t.Fatalf("axis must be the union of observation days, got %v", ds.Dates)
	}
	// No forward-fill: Savings has only its own observation.
	savings := ds.AccountData["Savings"]
	if len(savings.Dates) != 1 || savings.Dates[0] != "2024-01-02" {
		t.Errorf("unexpected Savings series: %+v", savings)
	}
	// Totals sum only the accounts reporting exactly on that day.
	if ds.TotalBalances[0] != 100 || ds.TotalBalances[1] != 620 {
		t.Errorf("unexpected totals: %v", ds.TotalBalances)
	}
}

func TestBuildDailyBalanceLongAccountKeywordOnly(t *testing.T) {
	// Only the account header matches a keyword; the value column is claimed
	// positionally and the account names never coerce into a series.
	rows := [][]string{
		{"Date", "Account", "Val"},
		{"2024-01-01", "Checking", "100"},
		{"2024-01-02", "Checking", "120"},
	}
	ds, err := BuildDailyBalance(rows, classifyBalance(t, rows), date.MonthFirst, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.AccountData) != 1 {
		t.Fatalf("expected one account, got %v", ds.AccountData)
	}
	checking := ds.AccountData["Checking"]
	if len(checking.Balances) != 2 || checking.Balances[0] != 100 || checking.Balances[1] != 120 {
		t.Errorf("unexpected Checking series: %+v", checking)
	}
}

func TestBuildDailyBalanceNormalizesDates(t *testing.T) {
	rows := [][]string{
		{"Date", "Checking"},
		{"01/02/2024", "100"},
	}
	ds, err := BuildDailyBalance(rows, classifyBalance(t, rows), date.MonthFirst, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Dates[0] != "2024-01-02" {
		t.Errorf("month-first 01/02/2024 = %q, want 2024-01-02", ds.Dates[0])
	}

	dayFirst, err := BuildDailyBalance(rows, classifyBalance(t, rows), date.DayFirst, nil)
	if err != nil {
		t.Fatal(err)
	}
	if dayFirst.Dates[0] != "2024-02-01" {
		t.Errorf("day-first 01/02/2024 = %q, want 2024-02-01", dayFirst.Dates[0])
	}
}

func TestBuildDailyBalanceUnparseableDatePassesThrough(t *testing.T) {
	rows := [][]string{
		{"Date", "Checking"},
		{"sometime soon", "100"},
	}
	diags := &Diagnostics{}
	ds, err := BuildDailyBalance(rows, classifyBalance(t, rows), date.MonthFirst, diags)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Dates[0] != "sometime soon" {
		t.Errorf("unparseable date must pass through, got %q", ds.Dates[0])
	}
	if diags.Empty() || diags.Degradations[0].Kind != "date" {
		t.Errorf("date degradation must be recorded, got %v", diags.Degradations)
	}
}

func TestBuildDailyBalanceBlankDateVoidsRow(t *testing.T) {
	rows := [][]string{
		{"Date", "Checking"},
		{"", "100"},
		{"2024-01-01", "120"},
	}
	ds, err := BuildDailyBalance(rows, classifyBalance(t, rows), date.MonthFirst, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Dates) != 1 {
		t.Errorf("blank date must void the row, got %v", ds.Dates)
	}
}
