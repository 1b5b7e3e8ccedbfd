// Package date provides a day-granularity calendar date, lenient parsing of
// the date spellings found in spreadsheet exports, and a chronological
// series type keyed by canonical day labels.
package date

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format is the canonical ISO-8601 representation of a date.
const Format = "2006-01-02"

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in its canonical ISO-8601 form.
func (d Date) String() string { return d.time().Format(Format) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// Convention selects how an ambiguous two-number pair like 03/04/2024 is read.
type Convention int

const (
	// MonthFirst reads 03/04/2024 as March 4th (US spreadsheets).
	MonthFirst Convention = iota
	// DayFirst reads 03/04/2024 as April 3rd.
	DayFirst
)

func (c Convention) String() string {
	if c == DayFirst {
		return "day-first"
	}
	return "month-first"
}

// monthFirstLayouts are tried in order. Permissive variants (single-digit
// month or day) follow each strict one.
var monthFirstLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"01-02-2006",
	"1-2-2006",
	"01-02-06",
	"1-2-06",
}

var dayFirstLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"02/01/2006",
	"2/1/2006",
	"02/01/06",
	"2/1/06",
	"02-01-2006",
	"2-1-2006",
	"02-01-06",
	"2-1-06",
}

// flexibleLayouts is the last-resort ladder for spellings that are not
// ambiguous between conventions.
var flexibleLayouts = []string{
	"2006/01/02",
	"2006/1/2",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2 2006",
	"20060102",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// Parse parses a Date from a string using the month-first convention.
func Parse(str string) (Date, error) { return ParseWith(MonthFirst, str) }

// ParseWith parses a Date from a string. It tries, in order: ISO 2006-01-02,
// slash- and dash-separated numeric pairs read according to the convention
// (two- and four-digit years), then a generic flexible ladder.
func ParseWith(conv Convention, str string) (Date, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return Date{}, fmt.Errorf("empty date")
	}
	layouts := monthFirstLayouts
	if conv == DayFirst {
		layouts = dayFirstLayouts
	}
	for _, layout := range layouts {
		if on, err := time.Parse(layout, str); err == nil {
			return New(on.Date()), nil
		}
	}
	for _, layout := range flexibleLayouts {
		if on, err := time.Parse(layout, str); err == nil {
			return New(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q want format %q", str, Format)
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Normalize rewrites a date spelling into canonical ISO-8601 form using the
// month-first convention. When the string cannot be parsed at all it is
// returned unchanged: callers rely on this pass-through to keep arbitrary
// period labels (like "Jan'24") intact.
func Normalize(str string) string { return NormalizeWith(MonthFirst, str) }

// NormalizeWith is Normalize with an explicit convention.
func NormalizeWith(conv Convention, str string) string {
	d, err := ParseWith(conv, strings.TrimSpace(str))
	if err != nil {
		return str
	}
	return d.String()
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
