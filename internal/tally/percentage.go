package tally

import (
	"fmt"
	"math"

	"alumstats/domain/core"
	apperrors "alumstats/internal/errors"
)

// Percentage returns count/total*100 rounded to the nearest integer, ties to
// even. A zero total yields core.ErrZeroTotal.
func Percentage(count, total int) (float64, error) {
	if total == 0 {
		return 0, core.ErrZeroTotal
	}
	return math.RoundToEven(float64(count) / float64(total) * 100), nil
}

// FormatShare renders "<label>: <percent>% (<count>)".
func FormatShare(label string, count, total int) (string, error) {
	pct, err := Percentage(count, total)
	if err != nil {
		return "", apperrors.DivisionError(label)
	}
	return fmt.Sprintf("%s: %.0f%% (%d)", label, pct, count), nil
}
