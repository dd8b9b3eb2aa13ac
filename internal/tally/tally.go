// Package tally counts survey rows against predicates.
//
// A tally is an indicator series: one 0/1 value per row, so the count is the
// series sum and the total is its length.
package tally

import (
	"alumstats/domain/survey"

	"github.com/montanaflynn/stats"
)

// Predicate decides whether a row is counted.
type Predicate func(survey.Row) bool

// Selected matches rows that ticked a select-all-that-apply option.
func Selected(f survey.Field) Predicate {
	return func(r survey.Row) bool { return r.Selected(f) }
}

// Equals matches rows whose answer is exactly want.
func Equals(f survey.Field, want string) Predicate {
	return func(r survey.Row) bool { return r.Is(f, want) }
}

// HasPrefix matches rows whose answer starts with prefix.
func HasPrefix(f survey.Field, prefix string) Predicate {
	return func(r survey.Row) bool { return r.HasPrefix(f, prefix) }
}

// NonEmpty matches rows with any answer at all.
func NonEmpty(f survey.Field) Predicate {
	return func(r survey.Row) bool { return r.Value(f) != "" }
}

// And matches rows satisfying every predicate.
func And(preds ...Predicate) Predicate {
	return func(r survey.Row) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Or matches rows satisfying at least one predicate.
func Or(preds ...Predicate) Predicate {
	return func(r survey.Row) bool {
		for _, p := range preds {
			if p(r) {
				return true
			}
		}
		return false
	}
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return func(r survey.Row) bool { return !p(r) }
}

// Series is the indicator series of a predicate over a set of rows.
type Series struct {
	data stats.Float64Data
}

// Of evaluates pred once per row.
func Of(rows []survey.Row, pred Predicate) Series {
	data := make(stats.Float64Data, len(rows))
	for i, row := range rows {
		if pred(row) {
			data[i] = 1
		}
	}
	return Series{data: data}
}

// Count is the number of matching rows.
func (s Series) Count() int {
	sum, err := s.data.Sum()
	if err != nil {
		return 0
	}
	return int(sum)
}

// Total is the number of rows evaluated.
func (s Series) Total() int {
	return s.data.Len()
}

// Filter returns the matching rows in order, for use as the denominator of a
// nested breakdown.
func Filter(rows []survey.Row, pred Predicate) []survey.Row {
	var out []survey.Row
	for _, row := range rows {
		if pred(row) {
			out = append(out, row)
		}
	}
	return out
}
