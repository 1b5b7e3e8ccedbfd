package chartdata

import (
	"encoding/json"
	"fmt"
)

// palette is the fixed color cycle assigned to categories and accounts in
// first-seen order. Assignment wraps around, so the same input ordering
// always produces the same colors.
var palette = [...]string{
	"#4169E1", "#40E0D0", "#BA55D3", "#FF69B4", "#FBBC04",
	"#FF00FF", "#FF8000", "#32CD32", "#9370DB", "#008080",
}

// colorFor returns the palette color for the i-th first-seen entity.
func colorFor(i int) string { return palette[i%len(palette)] }

// BudgetDataset is the canonical shape behind a period income/expense
// breakdown chart. All sequences are aligned to Months.
type BudgetDataset struct {
	Months          []string             `json:"months"`
	IncomeValues    []float64            `json:"income_values"`
	ExpenseData     map[string][]float64 `json:"expense_data"`
	ExpenseColors   map[string]string    `json:"expense_colors"`
	NetIncomeValues []float64            `json:"net_income_values"`
}

// AccountSeries is one account's own observations: Dates is exactly the
// subsequence of days the account reported on, no forward-fill.
type AccountSeries struct {
	Dates    []string  `json:"dates"`
	Balances []float64 `json:"balances"`
}

// DailyBalanceDataset is the canonical shape behind a multi-account daily
// balance chart. Dates is the ascending, de-duplicated union of all account
// observation days; TotalBalances[i] sums the accounts reporting exactly on
// Dates[i].
type DailyBalanceDataset struct {
	Dates         []string                 `json:"dates"`
	AccountData   map[string]AccountSeries `json:"account_data"`
	AccountColors map[string]string        `json:"account_colors"`
	TotalBalances []float64                `json:"total_balances"`
}

// CategorySeries is one category's ordered subsequence of a ledger.
type CategorySeries struct {
	Dates        []string  `json:"dates"`
	Amounts      []float64 `json:"amounts"`
	Descriptions []string  `json:"descriptions"`
}

// LedgerDataset is the canonical shape behind a categorized transaction
// ledger chart. The four parallel sequences are sorted by date ascending
// (stable) and RunningBalance is the cumulative sum of Amounts in that order.
type LedgerDataset struct {
	Dates          []string                  `json:"dates"`
	Descriptions   []string                  `json:"descriptions"`
	Amounts        []float64                 `json:"amounts"`
	Categories     []string                  `json:"categories"`
	RunningBalance []float64                 `json:"running_balance"`
	CategoryData   map[string]CategorySeries `json:"category_data"`
	CategoryColors map[string]string         `json:"category_colors"`
}

// Dataset is the tagged union of the canonical chart shapes, discriminated
// by ChartType. Exactly one of Budget, DailyBalance, Ledger is non-nil,
// except for ChartType Unknown where the original payload is preserved in
// Raw.
//
// Threshold annotations apply to daily-balance datasets only and can be
// attached after construction without altering the canonical core fields.
type Dataset struct {
	ChartType    ChartKind
	Budget       *BudgetDataset
	DailyBalance *DailyBalanceDataset
	Ledger       *LedgerDataset
	Raw          json.RawMessage

	LowerThreshold     *float64
	LowerThresholdName string
	UpperThreshold     *float64
	UpperThresholdName string
}

// SetLowerThreshold attaches a lower threshold line annotation.
func (d *Dataset) SetLowerThreshold(value float64, name string) error {
	if d.ChartType != DailyBalance {
		return fmt.Errorf("thresholds apply to %s datasets only, not %s", DailyBalance, d.ChartType)
	}
	d.LowerThreshold, d.LowerThresholdName = &value, name
	return nil
}

// SetUpperThreshold attaches an upper threshold line annotation.
func (d *Dataset) SetUpperThreshold(value float64, name string) error {
	if d.ChartType != DailyBalance {
		return fmt.Errorf("thresholds apply to %s datasets only, not %s", DailyBalance, d.ChartType)
	}
	d.UpperThreshold, d.UpperThresholdName = &value, name
	return nil
}

// MarshalJSON flattens the union into a single object: the chart_type
// discriminator first, then the variant's fields, then any annotations.
// encoding/json sorts map keys, so the output is deterministic.
func (d *Dataset) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("chart_type", d.ChartType.String())
	switch d.ChartType {
	case Budget:
		w.EmbedFrom(d.Budget)
	case DailyBalance:
		w.EmbedFrom(d.DailyBalance)
	case Ledger:
		w.EmbedFrom(d.Ledger)
	default:
		if len(d.Raw) > 0 {
			w.Append("data", d.Raw)
		}
	}
	w.Optional("lower_threshold", d.LowerThreshold)
	w.Optional("lower_threshold_name", d.LowerThresholdName)
	w.Optional("upper_threshold", d.UpperThreshold)
	w.Optional("upper_threshold_name", d.UpperThresholdName)
	return w.MarshalJSON()
}

// UnmarshalJSON reads the flat object back into the union. A record with a
// missing or unrecognized chart_type is preserved verbatim as Unknown; use
// Repair to infer its shape from field signatures.
func (d *Dataset) UnmarshalJSON(data []byte) error {
	var head struct {
		ChartType          string          `json:"chart_type"`
		Data               json.RawMessage `json:"data"`
		LowerThreshold     *float64        `json:"lower_threshold"`
		LowerThresholdName string          `json:"lower_threshold_name"`
		UpperThreshold     *float64        `json:"upper_threshold"`
		UpperThresholdName string          `json:"upper_threshold_name"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	kind, err := ParseChartKind(head.ChartType)
	if err != nil {
		kind = Unknown
	}
	*d = Dataset{
		ChartType:          kind,
		LowerThreshold:     head.LowerThreshold,
		LowerThresholdName: head.LowerThresholdName,
		UpperThreshold:     head.UpperThreshold,
		UpperThresholdName: head.UpperThresholdName,
	}
	switch kind {
	case Budget:
		d.Budget = &BudgetDataset{}
		return json.Unmarshal(data, d.Budget)
	case DailyBalance:
		d.DailyBalance = &DailyBalanceDataset{}
		return json.Unmarshal(data, d.DailyBalance)
	case Ledger:
		d.Ledger = &LedgerDataset{}
		return json.Unmarshal(data, d.Ledger)
	default:
		if len(head.Data) > 0 {
			d.Raw = head.Data
		} else {
			d.Raw = append(json.RawMessage(nil), data...)
		}
		return nil
	}
}

var _ json.Marshaler = (*Dataset)(nil)
var _ json.Unmarshaler = (*Dataset)(nil)
