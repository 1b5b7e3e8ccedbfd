package chartdata

import "strings"

// Layout is the result of column-role classification: one role per input
// column, the header labels, and where data rows begin.
type Layout struct {
	Headers   []string
	Roles     []ColumnRole
	DataStart int  // index of the first data row
	Long      bool // daily-balance only: one row per account reading
}

// find returns the index of the first column with the given role, or -1.
func (l Layout) find(role ColumnRole) int {
	for i, r := range l.Roles {
		if r == role {
			return i
		}
	}
	return -1
}

// A classifierRule attempts to derive a layout from the raw rows. It reports
// ok=false when it does not apply, letting the next rule try.
type classifierRule struct {
	name string
	fn   func(kind ChartKind, rows [][]string) (Layout, bool)
}

// rules are tried in order: an explicit annotation row always wins, then
// header keywords, then pure column positions.
var rules = []classifierRule{
	{"annotated-row", annotatedRule},
	{"header-keyword", keywordRule},
	{"positional", positionalRule},
}

// Classify decides the role of every column for the given chart kind.
//
// Input contract: rows[0] is the header row; rows[1] is an optional
// annotation row, active when its first cell is "type" or "category"
// (case-insensitive); the remainder are data rows.
//
// Classification never inspects data cells, only the header and annotation
// rows, so a shape that passes here can still carry garbled cells; those
// degrade during building instead of failing.
func Classify(kind ChartKind, rows [][]string) (Layout, error) {
	if len(rows) == 0 {
		return Layout{}, formatErrorf(kind, "input has no rows")
	}
	min := minColumns(kind)
	if len(rows[0]) < min {
		return Layout{}, formatErrorf(kind, "need at least %d columns, got %d", min, len(rows[0]))
	}
	for _, r := range rules {
		if l, ok := r.fn(kind, rows); ok {
			return l, nil
		}
	}
	// The positional rule applies to every input, so this is unreachable.
	return Layout{}, formatErrorf(kind, "no classifier rule matched")
}

func minColumns(kind ChartKind) int {
	switch kind {
	case Budget:
		return 3 // period, income, at least one expense
	default:
		return 2
	}
}

// annotatedRule applies when the second row's first cell is "type" or
// "category": that row then declares each column's role explicitly and data
// starts on the third row.
func annotatedRule(kind ChartKind, rows [][]string) (Layout, bool) {
	if len(rows) < 2 || len(rows[1]) == 0 {
		return Layout{}, false
	}
	marker := strings.ToLower(strings.TrimSpace(rows[1][0]))
	if marker != "type" && marker != "category" {
		return Layout{}, false
	}
	headers := rows[0]
	roles := make([]ColumnRole, len(headers))
	for i := range headers {
		if i < len(rows[1]) {
			roles[i] = parseRole(rows[1][i])
		}
	}
	// The first column is the axis regardless of its annotation: the marker
	// cell itself occupies it.
	if kind == Budget {
		roles[0] = RolePeriod
	} else {
		roles[0] = RoleDate
	}
	long := false
	if kind == DailyBalance {
		// One row per account reading needs both a dedicated account and a
		// dedicated balance column; an all-account annotation stays wide.
		l := Layout{Roles: roles}
		long = l.find(RoleAccount) >= 0 && l.find(RoleBalance) >= 0
	}
	return Layout{Headers: headers, Roles: roles, DataStart: 2, Long: long}, true
}

// keywordRule derives roles from header labels. It applies only when at
// least one identifying keyword is present; otherwise classification falls
// through to the positional rule.
func keywordRule(kind ChartKind, rows [][]string) (Layout, bool) {
	headers := rows[0]
	switch kind {
	case Budget:
		return budgetKeywordLayout(headers)
	case DailyBalance:
		return longBalanceLayout(headers)
	case Ledger:
		return ledgerLayout(headers, true)
	default:
		return Layout{}, false
	}
}

// positionalRule is the last resort: column 0 is the period or date axis and
// the remaining columns take the kind's default roles.
func positionalRule(kind ChartKind, rows [][]string) (Layout, bool) {
	headers := rows[0]
	roles := make([]ColumnRole, len(headers))
	switch kind {
	case Budget:
		roles[0] = RolePeriod
		for i := 1; i < len(headers); i++ {
			switch {
			case i == 1:
				roles[i] = RoleIncome
			case excludedHeader(headers[i]):
				roles[i] = RoleUnknown
			default:
				roles[i] = RoleExpense
			}
		}
	case DailyBalance:
		// Wide layout: every non-date column is its own account.
		roles[0] = RoleDate
		for i := 1; i < len(headers); i++ {
			if excludedHeader(headers[i]) {
				roles[i] = RoleUnknown
			} else {
				roles[i] = RoleAccount
			}
		}
	case Ledger:
		l, _ := ledgerLayout(headers, false)
		return l, true
	default:
		return Layout{}, false
	}
	return Layout{Headers: headers, Roles: roles, DataStart: 1}, true
}

// budgetKeywordLayout looks for an income column by keyword and a net-income
// column by NET+INCOME containment. Every other column after the period axis
// is an expense category, except columns labeled TOTAL or left blank.
func budgetKeywordLayout(headers []string) (Layout, bool) {
	incomeCol, netCol := -1, -1
	for i := 1; i < len(headers); i++ {
		up := strings.ToUpper(strings.TrimSpace(headers[i]))
		switch {
		case strings.Contains(up, "NET") && strings.Contains(up, "INCOME"):
			if netCol < 0 {
				netCol = i
			}
		case up == "INCOME" || up == "REVENUE" || up == "TOTAL INCOME":
			if incomeCol < 0 {
				incomeCol = i
			}
		}
	}
	if incomeCol < 0 && netCol < 0 {
		return Layout{}, false
	}
	if incomeCol < 0 {
		incomeCol = 1 // income defaults to the column after the period axis
	}
	roles := make([]ColumnRole, len(headers))
	roles[0] = RolePeriod
	for i := 1; i < len(headers); i++ {
		switch {
		case i == incomeCol:
			roles[i] = RoleIncome
		case i == netCol:
			roles[i] = RoleNetIncome
		case excludedHeader(headers[i]):
			roles[i] = RoleUnknown
		default:
			roles[i] = RoleExpense
		}
	}
	return Layout{Headers: headers, Roles: roles, DataStart: 1}, true
}

// longBalanceLayout detects the one-row-per-account-reading shape: a single
// account-ish or balance-ish header is enough to call it long, and the other
// role then falls back to the first unclaimed column. Headers matching
// neither group fall through to the wide layout.
func longBalanceLayout(headers []string) (Layout, bool) {
	accountCol, balanceCol, dateCol := -1, -1, -1
	for i, h := range headers {
		up := strings.ToUpper(strings.TrimSpace(h))
		switch {
		case up == "DATE":
			if dateCol < 0 {
				dateCol = i
			}
		case up == "ACCOUNT" || up == "ACCOUNTS" || up == "SOURCE" || up == "CATEGORY":
			if accountCol < 0 {
				accountCol = i
			}
		case up == "BALANCE" || up == "AMOUNT" || up == "VALUE":
			if balanceCol < 0 {
				balanceCol = i
			}
		}
	}
	if accountCol < 0 && balanceCol < 0 {
		return Layout{}, false
	}
	if dateCol < 0 {
		dateCol = 0
	}
	unclaimed := func() int {
		for i := range headers {
			if i != dateCol && i != accountCol && i != balanceCol {
				return i
			}
		}
		return -1
	}
	if accountCol < 0 {
		accountCol = unclaimed()
	}
	if balanceCol < 0 {
		balanceCol = unclaimed()
	}
	roles := make([]ColumnRole, len(headers))
	roles[dateCol] = RoleDate
	if accountCol >= 0 {
		roles[accountCol] = RoleAccount
	}
	if balanceCol >= 0 {
		roles[balanceCol] = RoleBalance
	}
	return Layout{Headers: headers, Roles: roles, DataStart: 1, Long: true}, true
}

// ledgerLayout matches ledger headers by keyword. Unmatched roles fall back
// to columns 0-3 (date, description, amount, category). With requireMatch
// the layout only applies when at least one keyword matched.
func ledgerLayout(headers []string, requireMatch bool) (Layout, bool) {
	dateCol, descCol, amountCol, categoryCol := -1, -1, -1, -1
	for i, h := range headers {
		up := strings.ToUpper(strings.TrimSpace(h))
		switch {
		case up == "DATE":
			if dateCol < 0 {
				dateCol = i
			}
		case up == "DESCRIPTION" || up == "DESC" || up == "MEMO":
			if descCol < 0 {
				descCol = i
			}
		case up == "AMOUNT" || up == "VALUE" || up == "TRANSACTION":
			if amountCol < 0 {
				amountCol = i
			}
		case up == "CATEGORY" || up == "TYPE" || up == "GROUP":
			if categoryCol < 0 {
				categoryCol = i
			}
		}
	}
	matched := dateCol >= 0 || descCol >= 0 || amountCol >= 0 || categoryCol >= 0
	if requireMatch && !matched {
		return Layout{}, false
	}
	n := len(headers)
	claimed := make(map[int]bool)
	for _, col := range []int{dateCol, descCol, amountCol, categoryCol} {
		if col >= 0 {
			claimed[col] = true
		}
	}
	// A positional fallback never steals a column a keyword already matched.
	fallback := func(col, pos int) int {
		if col >= 0 {
			return col
		}
		if pos < n && !claimed[pos] {
			claimed[pos] = true
			return pos
		}
		return -1
	}
	dateCol = fallback(dateCol, 0)
	descCol = fallback(descCol, 1)
	amountCol = fallback(amountCol, 2)
	categoryCol = fallback(categoryCol, 3)

	roles := make([]ColumnRole, n)
	set := func(col int, r ColumnRole) {
		if col >= 0 && col < n && roles[col] == RoleUnknown {
			roles[col] = r
		}
	}
	set(dateCol, RoleDate)
	set(descCol, RoleDescription)
	set(amountCol, RoleBalance)
	set(categoryCol, RoleCategory)
	return Layout{Headers: headers, Roles: roles, DataStart: 1}, true
}

// excludedHeader reports whether a header labels a column that must not
// become a category or account: blanks and grand-total columns.
func excludedHeader(h string) bool {
	up := strings.ToUpper(strings.TrimSpace(h))
	return up == "" || up == "TOTAL" || up == "SUM" || up == "TOTALS"
}
