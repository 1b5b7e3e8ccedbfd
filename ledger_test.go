package chartdata

import (
	"testing"

	"chartdata/date"
)

func classifyLedger(t *testing.T, rows [][]string) Layout {
	t.Helper()
	layout, err := Classify(Ledger, rows)
	if err != nil {
		t.Fatal(err)
	}
	return layout
}

func TestBuildLedgerSortsByDate(t *testing.T) {
	rows := [][]string{
		{"Date", "Description", "Amount", "Category"},
		{"2024-01-03", "Rent", "-200", "Housing"},
		{"2024-01-01", "Invoice", "500", "Sales"},
	}
	ds, err := BuildLedger(rows, classifyLedger(t, rows), date.MonthFirst, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Dates[0] != "2024-01-01" || ds.Dates[1] != "2024-01-03" {
		t.Errorf("rows must sort by date, got %v", ds.Dates)
	}
	if ds.Descriptions[0] != "Invoice" {
		t.Errorf("parallel sequences must move together, got %v", ds.Descriptions)
	}
	// Running balance follows the sorted order.
	if ds.RunningBalance[0] != 500 || ds.RunningBalance[1] != 300 {
		t.Errorf("unexpected running balance: %v", ds.RunningBalance)
	}
}

func TestBuildLedgerStableTieBreak(t *testing.T) {
	rows := [][]string{
		{"Date", "Description", "Amount", "Category"},
		{"2024-01-01", "first", "1", "A"},
		{"2024-01-01", "second", "2", "A"},
		{"2024-01-01", "third", "3", "A"},
	}
	ds, err := BuildLedger(rows, classifyLedger(t, rows), date.MonthFirst, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if ds.Descriptions[i] != w {
			t.Errorf("same-day rows must keep input order: got %v", ds.Descriptions)
			break
		}
	}
}

func TestBuildLedgerParallelLengths(t *testing.T) {
	rows := [][]string{
		{"Date", "Description", "Amount", "Category"},
		{"2024-01-01", "a", "1", "A"},
		{"2024-01-02", "b", "2", "B"},
		{"2024-01-03", "c", "3", "A"},
	}
	ds, err := BuildLedger(rows, classifyLedger(t, rows), date.MonthFirst, nil)
	if err != nil {
		t.Fatal(err)
	}
	n := len(ds.Dates)
	if len(ds.Descriptions) != n || len(ds.Amounts) != n || len(ds.Categories) != n || len(ds.RunningBalance) != n {
		t.Error("the five parallel sequences must have equal length")
	}
	// Category subsequences preserve order.
	a := ds.CategoryData["A"]
	if len(a.Dates) != 2 || a.Dates[0] != "2024-01-01" || a.Dates[1] != "2024-01-03" {
		t.Errorf("unexpected category A subsequence: %+v", a)
	}
}

func TestBuildLedgerDefaults(t *testing.T) {
	// Two columns only: date and amount by position, no description, no category.
	rows := [][]string{
		{"Date", "Amount"},
		{"2024-01-01", "50"},
	}
	ds, err := BuildLedger(rows, classifyLedger(t, rows), date.MonthFirst, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Categories[0] != "Uncategorized" {
		t.Errorf("missing category must default, got %q", ds.Categories[0])
	}
	if ds.Descriptions[0] != "" {
		t.Errorf("missing description must be empty, got %q", ds.Descriptions[0])
	}
}

func TestBuildLedgerMissingAmountColumn(t *testing.T) {
	layout := Layout{
		Headers:   []string{"Date", "Description"},
		Roles:     []ColumnRole{RoleDate, RoleDescription},
		DataStart: 1,
	}
	_, err := BuildLedger([][]string{{"Date", "Description"}}, layout, date.MonthFirst, nil)
	if err == nil {
		t.Fatal("expected FormatError without an amount column")
	}
	if fe, ok := err.(*FormatError); !ok || fe.Kind != Ledger {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBuildLedgerSkipsBlankDateRows(t *testing.T) {
	rows := [][]string{
		{"Date", "Description", "Amount", "Category"},
		{"", "stray", "1", "A"},
		{"2024-01-01", "kept", "2", "A"},
	}
	ds, err := BuildLedger(rows, classifyLedger(t, rows), date.MonthFirst, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Dates) != 1 || ds.Descriptions[0] != "kept" {
		t.Errorf("blank-date rows must be skipped, got %v", ds.Descriptions)
	}
}
