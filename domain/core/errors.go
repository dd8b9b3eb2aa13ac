package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// Input errors
	ErrFileUnreadable = errors.New("survey file unreadable")
	ErrMalformedInput = errors.New("malformed survey export")

	// Schema errors
	ErrMissingColumn = errors.New("missing expected column")

	// Computation errors
	ErrZeroTotal        = errors.New("percentage of an empty total")
	ErrInvalidConfLevel = errors.New("confidence level must be in (0, 1)")
)

// NewMissingColumnError names every absent question in one error
func NewMissingColumnError(questions []string) error {
	quoted := make([]string, len(questions))
	for i, q := range questions {
		quoted[i] = fmt.Sprintf("%q", q)
	}
	return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(quoted, ", "))
}

// NewZeroTotalError reports which share could not be computed
func NewZeroTotalError(label string) error {
	return fmt.Errorf("%w: %s", ErrZeroTotal, label)
}

// Error checking helpers
func IsMissingColumnError(err error) bool {
	return errors.Is(err, ErrMissingColumn)
}

func IsZeroTotalError(err error) bool {
	return errors.Is(err, ErrZeroTotal)
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrFileUnreadable) ||
		errors.Is(err, ErrMalformedInput)
}
