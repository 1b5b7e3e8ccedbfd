package chartdata

import "testing"

func TestClassifyBudgetKeyword(t *testing.T) {
	rows := [][]string{
		{"Month", "Income", "OPEX", "Marketing"},
		{"Jan'24", "1000", "200", "100"},
	}
	layout, err := Classify(Budget, rows)
	if err != nil {
		t.Fatal(err)
	}
	if layout.DataStart != 1 {
		t.Errorf("DataStart = %d, want 1", layout.DataStart)
	}
	want := []ColumnRole{RolePeriod, RoleIncome, RoleExpense, RoleExpense}
	for i, r := range want {
		if layout.Roles[i] != r {
			t.Errorf("Roles[%d] = %s, want %s", i, layout.Roles[i], r)
		}
	}
}

func TestClassifyBudgetNetIncome(t *testing.T) {
	rows := [][]string{
		{"Month", "Total Income", "Rent", "Net Income"},
		{"Jan'24", "1000", "200", "800"},
	}
	layout, err := Classify(Budget, rows)
	if err != nil {
		t.Fatal(err)
	}
	if got := layout.find(RoleNetIncome); got != 3 {
		t.Errorf("net income column = %d, want 3", got)
	}
	if got := layout.find(RoleIncome); got != 1 {
		t.Errorf("income column = %d, want 1", got)
	}
}

func TestClassifyBudgetPositionalFallback(t *testing.T) {
	// No identifying keyword anywhere: column 1 becomes income by position.
	rows := [][]string{
		{"Period", "Salary", "Rent"},
		{"Jan'24", "1000", "200"},
	}
	layout, err := Classify(Budget, rows)
	if err != nil {
		t.Fatal(err)
	}
	if layout.Roles[1] != RoleIncome || layout.Roles[2] != RoleExpense {
		t.Errorf("unexpected positional roles: %v", layout.Roles)
	}
}

func TestClassifyBudgetTooFewColumns(t *testing.T) {
	rows := [][]string{{"Month", "Income"}}
	_, err := Classify(Budget, rows)
	if err == nil {
		t.Fatal("expected error for budget with fewer than 3 columns")
	}
	if _, ok := err.(*FormatError); !ok {
		t.Errorf("expected *FormatError, got %T", err)
	}
}

func TestClassifyAnnotatedRow(t *testing.T) {
	rows := [][]string{
		{"When", "Main", "Side"},
		{"type", "income", "expense"},
		{"Jan'24", "1000", "200"},
	}
	layout, err := Classify(Budget, rows)
	if err != nil {
		t.Fatal(err)
	}
	if layout.DataStart != 2 {
		t.Errorf("DataStart = %d, want 2", layout.DataStart)
	}
	want := []ColumnRole{RolePeriod, RoleIncome, RoleExpense}
	for i, r := range want {
		if layout.Roles[i] != r {
			t.Errorf("Roles[%d] = %s, want %s", i, layout.Roles[i], r)
		}
	}
}

func TestClassifyBalanceWide(t *testing.T) {
	rows := [][]string{
		{"Date", "Checking", "Savings"},
		{"2024-01-01", "100", "500"},
	}
	layout, err := Classify(DailyBalance, rows)
	if err != nil {
		t.Fatal(err)
	}
	if layout.Long {
		t.Error("wide input classified as long")
	}
	if layout.Roles[0] != RoleDate || layout.Roles[1] != RoleAccount || layout.Roles[2] != RoleAccount {
		t.Errorf("unexpected roles: %v", layout.Roles)
	}
}

func TestClassifyBalanceLong(t *testing.T) {
	rows := [][]string{
		{"Date", "Account", "Balance"},
		{"2024-01-01", "Checking", "100"},
	}
	layout, err := Classify(DailyBalance, rows)
	if err != nil {
		t.Fatal(err)
	}
	if !layout.Long {
		t.Fatal("account+balance headers must classify as long layout")
	}
	if layout.find(RoleAccount) != 1 || layout.find(RoleBalance) != 2 {
		t.Errorf("unexpected roles: %v", layout.Roles)
	}
}

func TestClassifyBalanceLongSingleKeyword(t *testing.T) {
	// One matching header group is enough; the other role falls back to the
	// first unclaimed column.
	tests := []struct {
		name             string
		headers          []string
		account, balance int
	}{
		{"account only", []string{"Date", "Account", "Val"}, 1, 2},
		{"balance only", []string{"Date", "Holder", "Amount"}, 1, 2},
		{"source before date", []string{"Source", "Date", "Val"}, 0, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			layout, err := Classify(DailyBalance, [][]string{tc.headers})
			if err != nil {
				t.Fatal(err)
			}
			if !layout.Long {
				t.Fatal("a single keyword must classify as long layout")
			}
			if got := layout.find(RoleAccount); got != tc.account {
				t.Errorf("account column = %d, want %d", got, tc.account)
			}
			if got := layout.find(RoleBalance); got != tc.balance {
				t.Errorf("balance column = %d, want %d", got, tc.balance)
			}
		})
	}
}

func TestClassifyAnnotatedBalanceStaysWide(t *testing.T) {
	// Every column marked as an account is a wide shape: without a balance
	// annotation there is no long layout to build.
	rows := [][]string{
		{"Date", "Checking", "Savings"},
		{"type", "account", "account"},
		{"2024-01-01", "100", "500"},
	}
	layout, err := Classify(DailyBalance, rows)
	if err != nil {
		t.Fatal(err)
	}
	if layout.Long {
		t.Error("all-account annotation classified as long")
	}
	if layout.Roles[1] != RoleAccount || layout.Roles[2] != RoleAccount {
		t.Errorf("unexpected roles: %v", layout.Roles)
	}
}

func TestClassifyAnnotatedBalanceLong(t *testing.T) {
	rows := [][]string{
		{"Date", "Holder", "Val"},
		{"type", "account", "balance"},
		{"2024-01-01", "Checking", "100"},
	}
	layout, err := Classify(DailyBalance, rows)
	if err != nil {
		t.Fatal(err)
	}
	if !layout.Long {
		t.Error("account+balance annotations must classify as long")
	}
}

func TestClassifyLedgerKeywordsAnyOrder(t *testing.T) {
	rows := [][]string{
		{"Amount", "Date", "Memo", "Type"},
		{"12.5", "2024-01-01", "Coffee", "Food"},
	}
	layout, err := Classify(Ledger, rows)
	if err != nil {
		t.Fatal(err)
	}
	if layout.find(RoleDate) != 1 || layout.find(RoleBalance) != 0 ||
		layout.find(RoleDescription) != 2 || layout.find(RoleCategory) != 3 {
		t.Errorf("unexpected roles: %v", layout.Roles)
	}
}

func TestClassifyLedgerPositional(t *testing.T) {
	rows := [][]string{
		{"a", "b", "c", "d"},
		{"2024-01-01", "Coffee", "12.5", "Food"},
	}
	layout, err := Classify(Ledger, rows)
	if err != nil {
		t.Fatal(err)
	}
	want := []ColumnRole{RoleDate, RoleDescription, RoleBalance, RoleCategory}
	for i, r := range want {
		if layout.Roles[i] != r {
			t.Errorf("Roles[%d] = %s, want %s", i, layout.Roles[i], r)
		}
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	if _, err := Classify(Ledger, nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}
