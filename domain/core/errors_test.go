package core

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewMissingColumnError(t *testing.T) {
	err := NewMissingColumnError([]string{"Are you currently:", "Do you identify as transgender?"})

	if !IsMissingColumnError(err) {
		t.Fatalf("Expected missing column error, got %v", err)
	}
	for _, want := range []string{`"Are you currently:"`, `"Do you identify as transgender?"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected %s in %q", want, err.Error())
		}
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		zeroTotal bool
		input     bool
	}{
		{"zero total", NewZeroTotalError("Students"), true, false},
		{"wrapped zero total", fmt.Errorf("pass failed: %w", NewZeroTotalError("Men")), true, false},
		{"file", fmt.Errorf("%w: survey.csv", ErrFileUnreadable), false, true},
		{"malformed", fmt.Errorf("%w: line 3", ErrMalformedInput), false, true},
		{"missing column", NewMissingColumnError([]string{"x"}), false, false},
	}

	for _, test := range tests {
		if got := IsZeroTotalError(test.err); got != test.zeroTotal {
			t.Errorf("%s: IsZeroTotalError = %v, want %v", test.name, got, test.zeroTotal)
		}
		if got := IsInputError(test.err); got != test.input {
			t.Errorf("%s: IsInputError = %v, want %v", test.name, got, test.input)
		}
	}
}
