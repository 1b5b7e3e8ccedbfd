package chartdata

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Repair normalizes a persisted dataset record to the current canonical
// shape and reports whether anything had to change, so the caller can decide
// to persist the repaired copy.
//
// Rules, in order:
//   - a record that is not a JSON object is wrapped into a minimal Unknown
//     record preserving the original payload;
//   - a missing chart_type is inferred from field signatures;
//   - canonical fields absent from a recognized record are backfilled with
//     the same derivations the builders use (net income, colors, totals,
//     running balance).
//
// The operation is idempotent: repairing an already canonical record yields
// changed == false and an identical record.
func Repair(raw json.RawMessage) (*Dataset, bool, error) {
	var obj any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false, fmt.Errorf("stored record is not valid JSON: %w", err)
	}
	if _, isObject := obj.(map[string]any); !isObject {
		// Bare sequences and scalars from old versions are kept, not lost.
		return &Dataset{ChartType: Unknown, Raw: append(json.RawMessage(nil), raw...)}, true, nil
	}

	changed := false
	kind, declared := declaredKind(obj)
	if !declared {
		kind = inferKind(obj)
		changed = true
	}

	// Decode the variant directly from the inferred kind; going through
	// Dataset.UnmarshalJSON would re-read the possibly absent discriminator.
	ds := &Dataset{ChartType: kind}
	var ann struct {
		LowerThreshold     *float64 `json:"lower_threshold"`
		LowerThresholdName string   `json:"lower_threshold_name"`
		UpperThreshold     *float64 `json:"upper_threshold"`
		UpperThresholdName string   `json:"upper_threshold_name"`
	}
	if err := json.Unmarshal(raw, &ann); err != nil {
		return nil, false, err
	}
	ds.LowerThreshold, ds.LowerThresholdName = ann.LowerThreshold, ann.LowerThresholdName
	ds.UpperThreshold, ds.UpperThresholdName = ann.UpperThreshold, ann.UpperThresholdName

	switch kind {
	case Budget:
		ds.Budget = &BudgetDataset{}
		if err := json.Unmarshal(raw, ds.Budget); err != nil {
			return nil, false, err
		}
		changed = repairBudget(ds.Budget) || changed
	case DailyBalance:
		ds.DailyBalance = &DailyBalanceDataset{}
		if err := json.Unmarshal(raw, ds.DailyBalance); err != nil {
			return nil, false, err
		}
		c, err := repairDailyBalance(ds, raw)
		if err != nil {
			return nil, false, err
		}
		changed = c || changed
	case Ledger:
		ds.Ledger = &LedgerDataset{}
		if err := json.Unmarshal(raw, ds.Ledger); err != nil {
			return nil, false, err
		}
		changed = repairLedger(ds.Ledger) || changed
	default:
		ds.Raw = append(json.RawMessage(nil), raw...)
	}
	return ds, changed, nil
}

// declaredKind reads an explicit chart_type discriminator if present.
func declaredKind(obj any) (ChartKind, bool) {
	v, err := jsonpath.Get("$.chart_type", obj)
	if err != nil {
		return Unknown, false
	}
	s, ok := v.(string)
	if !ok {
		return Unknown, false
	}
	k, err := ParseChartKind(s)
	if err != nil {
		return Unknown, false
	}
	return k, true
}

// inferKind recognizes a record's shape from its field signature.
func inferKind(obj any) ChartKind {
	has := func(path string) bool {
		_, err := jsonpath.Get(path, obj)
		return err == nil
	}
	switch {
	case has("$.months") && has("$.income_values"):
		return Budget
	case has("$.dates") && (has("$.account_data") || has("$.accounts")):
		return DailyBalance
	case has("$.dates") && has("$.amounts") && has("$.running_balance"):
		return Ledger
	default:
		return Unknown
	}
}

func repairBudget(b *BudgetDataset) bool {
	changed := false
	if b.Months == nil {
		b.Months, changed = []string{}, true
	}
	if b.IncomeValues == nil {
		b.IncomeValues, changed = []float64{}, true
	}
	if b.ExpenseData == nil {
		b.ExpenseData, changed = map[string][]float64{}, true
	}
	if b.ExpenseColors == nil {
		b.ExpenseColors = make(map[string]string)
		for i, cat := range sortedKeys(b.ExpenseData) {
			b.ExpenseColors[cat] = colorFor(i)
		}
		changed = true
	}
	if b.NetIncomeValues == nil || len(b.NetIncomeValues) != len(b.IncomeValues) {
		b.NetIncomeValues = deriveNetIncome(b.IncomeValues, b.ExpenseData)
		changed = true
	}
	return changed
}

// deriveNetIncome computes income minus the sum of expenses per index, the
// same derivation BuildBudget applies when no net-income column exists.
func deriveNetIncome(income []float64, expenses map[string][]float64) []float64 {
	net := make([]float64, len(income))
	for i, inc := range income {
		sum := decimal.NewFromFloat(inc)
		for _, series := range expenses {
			if i < len(series) {
				sum = sum.Sub(decimal.NewFromFloat(series[i]))
			}
		}
		net[i] = sum.InexactFloat64()
	}
	return net
}

func repairDailyBalance(ds *Dataset, raw json.RawMessage) (bool, error) {
	b := ds.DailyBalance
	changed := false

	// Legacy records stored a list of account objects instead of the map.
	if b.AccountData == nil {
		var legacy struct {
			Accounts []struct {
				Name     string    `json:"name"`
				Dates    []string  `json:"dates"`
				Balances []float64 `json:"balances"`
			} `json:"accounts"`
		}
		if err := json.Unmarshal(raw, &legacy); err != nil {
			return false, err
		}
		b.AccountData = make(map[string]AccountSeries)
		for _, a := range legacy.Accounts {
			name := a.Name
			if name == "" {
				name = "Unknown"
			}
			b.AccountData[name] = AccountSeries{Dates: a.Dates, Balances: a.Balances}
		}
		changed = true
	}
	if b.AccountColors == nil {
		b.AccountColors = make(map[string]string)
		for i, name := range sortedKeys(b.AccountData) {
			b.AccountColors[name] = colorFor(i)
		}
		changed = true
	}
	if b.Dates == nil || b.TotalBalances == nil || len(b.TotalBalances) != len(b.Dates) {
		recomputeBalanceAxis(b)
		changed = true
	}
	return changed, nil
}

// recomputeBalanceAxis rebuilds the shared date axis and exact-date totals
// from the per-account series.
func recomputeBalanceAxis(b *DailyBalanceDataset) {
	daySet := make(map[string]bool)
	for _, series := range b.AccountData {
		for _, day := range series.Dates {
			daySet[day] = true
		}
	}
	days := make([]string, 0, len(daySet))
	for day := range daySet {
		days = append(days, day)
	}
	sort.Strings(days)

	b.Dates = days
	b.TotalBalances = make([]float64, len(days))
	for i, day := range days {
		total := decimal.Zero
		for _, series := range b.AccountData {
			for j, d := range series.Dates {
				if d == day && j < len(series.Balances) {
					total = total.Add(decimal.NewFromFloat(series.Balances[j]))
					break
				}
			}
		}
		b.TotalBalances[i] = total.InexactFloat64()
	}
}

func repairLedger(l *LedgerDataset) bool {
	changed := false
	if l.Dates == nil {
		l.Dates, changed = []string{}, true
	}
	if l.Descriptions == nil || len(l.Descriptions) != len(l.Dates) {
		padded := make([]string, len(l.Dates))
		copy(padded, l.Descriptions)
		l.Descriptions, changed = padded, true
	}
	if l.Amounts == nil {
		l.Amounts, changed = []float64{}, true
	}
	if l.Categories == nil || len(l.Categories) != len(l.Dates) {
		padded := make([]string, len(l.Dates))
		copy(padded, l.Categories)
		for i := range padded {
			if padded[i] == "" {
				padded[i] = uncategorized
			}
		}
		l.Categories, changed = padded, true
	}
	if l.RunningBalance == nil || len(l.RunningBalance) != len(l.Amounts) {
		l.RunningBalance = make([]float64, len(l.Amounts))
		running := decimal.Zero
		for i, a := range l.Amounts {
			running = running.Add(decimal.NewFromFloat(a))
			l.RunningBalance[i] = running.InexactFloat64()
		}
		changed = true
	}
	if l.CategoryData == nil {
		l.CategoryData = make(map[string]CategorySeries)
		for i, cat := range l.Categories {
			series := l.CategoryData[cat]
			if i < len(l.Dates) {
				series.Dates = append(series.Dates, l.Dates[i])
			}
			if i < len(l.Amounts) {
				series.Amounts = append(series.Amounts, l.Amounts[i])
			}
			if i < len(l.Descriptions) {
				series.Descriptions = append(series.Descriptions, l.Descriptions[i])
			}
			l.CategoryData[cat] = series
		}
		changed = true
	}
	if l.CategoryColors == nil {
		l.CategoryColors = make(map[string]string)
		for i, cat := range sortedKeys(l.CategoryData) {
			l.CategoryColors[cat] = colorFor(i)
		}
		changed = true
	}
	return changed
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
