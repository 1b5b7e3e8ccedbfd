package chartdata

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDatasetMarshalBudget(t *testing.T) {
	ds := &Dataset{
		ChartType: Budget,
		Budget: &BudgetDataset{
			Months:          []string{"Jan'24"},
			IncomeValues:    []float64{1000},
			ExpenseData:     map[string][]float64{"OPEX": {200}},
			ExpenseColors:   map[string]string{"OPEX": "#4169E1"},
			NetIncomeValues: []float64{800},
		},
	}
	data, err := json.Marshal(ds)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if !strings.HasPrefix(s, `{"chart_type":"budget"`) {
		t.Errorf("chart_type must come first: %s", s)
	}
	for _, field := range []string{`"months"`, `"income_values"`, `"expense_data"`, `"expense_colors"`, `"net_income_values"`} {
		if !strings.Contains(s, field) {
			t.Errorf("missing field %s in %s", field, s)
		}
	}
	if strings.Contains(s, "threshold") {
		t.Errorf("unset thresholds must be omitted: %s", s)
	}
}

func TestDatasetThresholds(t *testing.T) {
	ds := &Dataset{ChartType: Budget, Budget: &BudgetDataset{}}
	if err := ds.SetLowerThreshold(100, "floor"); err == nil {
		t.Error("thresholds must be rejected on non daily-balance datasets")
	}

	ds = &Dataset{ChartType: DailyBalance, DailyBalance: &DailyBalanceDataset{}}
	if err := ds.SetLowerThreshold(100, "floor"); err != nil {
		t.Fatal(err)
	}
	if err := ds.SetUpperThreshold(5000, "goal"); err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(ds)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, want := range []string{`"lower_threshold":100`, `"lower_threshold_name":"floor"`, `"upper_threshold":5000`, `"upper_threshold_name":"goal"`} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %s in %s", want, s)
		}
	}
}

func TestDatasetRoundTrip(t *testing.T) {
	original, _, err := Ingest(Ledger, "Date\tDescription\tAmount\tCategory\n2024-01-01\tInvoice\t500\tSales\n")
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Dataset
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.ChartType != Ledger || decoded.Ledger == nil {
		t.Fatal("round trip lost the chart type")
	}
	again, err := json.Marshal(&decoded)
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != string(data) {
		t.Errorf("round trip is not byte-stable:\n%s\n%s", data, again)
	}
}

func TestDatasetUnknownPreserved(t *testing.T) {
	raw := `{"chart_type":"sunburst","petals":7}`
	var ds Dataset
	if err := json.Unmarshal([]byte(raw), &ds); err != nil {
		t.Fatal(err)
	}
	if ds.ChartType != Unknown {
		t.Fatalf("unrecognized chart_type must map to Unknown, got %s", ds.ChartType)
	}
	if !strings.Contains(string(ds.Raw), "petals") {
		t.Errorf("original payload must be preserved, got %s", ds.Raw)
	}
}
