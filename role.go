package chartdata

import (
	"fmt"
	"strings"
)

// ChartKind discriminates the three canonical dataset shapes, plus the
// catch-all for persisted records whose shape cannot be recognized.
type ChartKind int

const (
	Budget ChartKind = iota
	DailyBalance
	Ledger
	Unknown
)

func (k ChartKind) String() string {
	switch k {
	case Budget:
		return "budget"
	case DailyBalance:
		return "daily_balance"
	case Ledger:
		return "ledger"
	default:
		return "unknown"
	}
}

// ParseChartKind parses a string into a ChartKind.
func ParseChartKind(s string) (ChartKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "budget":
		return Budget, nil
	case "daily_balance", "daily-balance":
		return DailyBalance, nil
	case "ledger":
		return Ledger, nil
	case "unknown":
		return Unknown, nil
	default:
		return Unknown, fmt.Errorf("unknown chart kind: %q", s)
	}
}

// ColumnRole is the semantic meaning assigned to a raw input column.
type ColumnRole int

const (
	RoleUnknown ColumnRole = iota
	RolePeriod
	RoleIncome
	RoleExpense
	RoleNetIncome
	RoleDate
	RoleAccount
	RoleBalance
	RoleDescription
	RoleCategory
)

func (r ColumnRole) String() string {
	switch r {
	case RolePeriod:
		return "period"
	case RoleIncome:
		return "income"
	case RoleExpense:
		return "expense"
	case RoleNetIncome:
		return "net income"
	case RoleDate:
		return "date"
	case RoleAccount:
		return "account"
	case RoleBalance:
		return "balance"
	case RoleDescription:
		return "description"
	case RoleCategory:
		return "category"
	default:
		return "unknown"
	}
}

// parseRole maps an annotation-row cell to a column role. Unrecognized
// annotations map to RoleUnknown and the column is ignored.
func parseRole(cell string) ColumnRole {
	up := strings.ToUpper(strings.TrimSpace(cell))
	if strings.Contains(up, "NET") && strings.Contains(up, "INCOME") {
		return RoleNetIncome
	}
	switch up {
	case "PERIOD", "MONTH":
		return RolePeriod
	case "INCOME", "REVENUE":
		return RoleIncome
	case "EXPENSE", "EXPENSES":
		return RoleExpense
	case "NET INCOME", "NETINCOME", "NET":
		return RoleNetIncome
	case "DATE":
		return RoleDate
	case "ACCOUNT", "SOURCE":
		return RoleAccount
	case "BALANCE", "AMOUNT":
		return RoleBalance
	case "DESCRIPTION", "DESC", "MEMO":
		return RoleDescription
	case "CATEGORY", "GROUP":
		return RoleCategory
	default:
		return RoleUnknown
	}
}
