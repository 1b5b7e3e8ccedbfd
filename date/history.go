package date

import (
	"iter"
	"slices"
	"sort"
)

// History stores a chronological series of values, each associated with a day
// label. Labels are canonical ISO-8601 strings whenever the source date was
// parseable, so lexicographic order is chronological order; unparseable
// labels are kept verbatim and sort among themselves. Labels are unique and
// the series is always sorted.
type History[T float64 | string] struct {
	days   []string
	values []T
}

// Len returns the number of points in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Days returns the sorted day labels of the history.
func (h *History[T]) Days() []string { return h.days }

// sort sorts the history chronologically, keeping days and values aligned.
type chronological[T float64 | string] struct{ *History[T] }

func (s chronological[T]) Less(i, j int) bool { return s.days[i] < s.days[j] }
func (s chronological[T]) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

func (h *History[T]) sortDays() { sort.Sort(chronological[T]{h}) }

// Append adds a point to the history.
//
// An existing value on the same day is overwritten: the last observation wins.
func (h *History[T]) Append(day string, v T) *History[T] {
	if i := slices.Index(h.days, day); i >= 0 {
		h.values[i] = v
		return h
	}
	h.days, h.values = append(h.days, day), append(h.values, v)
	h.sortDays()
	return h
}

// Get returns the value on 'day' and true, or the zero value and false.
func (h *History[T]) Get(day string) (T, bool) {
	if i := slices.Index(h.days, day); i >= 0 {
		return h.values[i], true
	}
	var zero T
	return zero, false
}

// Values returns an iterator over all day/value pairs in chronological order.
func (h *History[T]) Values() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}
