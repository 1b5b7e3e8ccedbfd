package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in   string
		want Date
	}{
		{"2024-01-05", New(2024, time.January, 5)},
		{"2024-1-5", New(2024, time.January, 5)},
		{"01/05/2024", New(2024, time.January, 5)},
		{"1/5/2024", New(2024, time.January, 5)},
		{"01/05/24", New(2024, time.January, 5)},
		{"1-5-2024", New(2024, time.January, 5)},
		{"01-05-24", New(2024, time.January, 5)},
		{"Jan 5, 2024", New(2024, time.January, 5)},
		{"2024/01/05", New(2024, time.January, 5)},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q) returned unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "Jan'24", "not a date", "13/32/2024"} {
		if d, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) = %v, want error", in, d)
		}
	}
}

func TestParseWith_DayFirst(t *testing.T) {
	got, err := ParseWith(DayFirst, "05/01/2024")
	if err != nil {
		t.Fatalf("ParseWith() returned unexpected error: %v", err)
	}
	if want := New(2024, time.January, 5); got != want {
		t.Errorf("ParseWith(DayFirst, 05/01/2024) = %v, want %v", got, want)
	}
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"iso is unchanged", "2024-01-05", "2024-01-05"},
		{"slash month first", "01/05/2024", "2024-01-05"},
		{"dash single digits", "1-5-2024", "2024-01-05"},
		{"two digit year", "01/05/24", "2024-01-05"},
		{"period label passes through", "Jan'24", "Jan'24"},
		{"garbage passes through", "n/a", "n/a"},
		{"trims whitespace", " 2024-01-05 ", "2024-01-05"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeWith_DayFirst(t *testing.T) {
	if got := NormalizeWith(DayFirst, "05/01/2024"); got != "2024-01-05" {
		t.Errorf("NormalizeWith(DayFirst, 05/01/2024) = %q, want 2024-01-05", got)
	}
}

func TestDate_Ordering(t *testing.T) {
	a := New(2024, time.January, 5)
	b := New(2024, time.February, 1)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("expected %v before %v", a, b)
	}
	if !b.After(a) {
		t.Errorf("expected %v after %v", b, a)
	}
}
