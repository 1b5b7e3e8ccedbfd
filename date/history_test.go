package date

import (
	"slices"
	"testing"
)

func TestHistory_AppendLastWins(t *testing.T) {
	var h History[float64]
	h.Append("2024-01-01", 100)
	h.Append("2024-01-02", 120)
	h.Append("2024-01-01", 150) // same day, replaces

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	got, ok := h.Get("2024-01-01")
	if !ok || got != 150 {
		t.Errorf("Get(2024-01-01) = %v, %v; want 150, true", got, ok)
	}
}

func TestHistory_SortedDays(t *testing.T) {
	var h History[float64]
	h.Append("2024-03-01", 3)
	h.Append("2024-01-01", 1)
	h.Append("2024-02-01", 2)

	want := []string{"2024-01-01", "2024-02-01", "2024-03-01"}
	if !slices.Equal(h.Days(), want) {
		t.Errorf("Days() = %v, want %v", h.Days(), want)
	}

	var vals []float64
	for _, v := range h.Values() {
		vals = append(vals, v)
	}
	if !slices.Equal(vals, []float64{1, 2, 3}) {
		t.Errorf("Values() = %v, want [1 2 3]", vals)
	}
}
