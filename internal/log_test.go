package internal

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
		ok    bool
	}{
		{"ERROR", LogLevelError, true},
		{"warn", LogLevelWarn, true},
		{" Info ", LogLevelInfo, true},
		{"DEBUG", LogLevelDebug, true},
		{"trace", LogLevelTrace, true},
		{"", LogLevelInfo, false},
		{"verbose", LogLevelInfo, false},
	}

	for _, test := range tests {
		got, ok := ParseLogLevel(test.input)
		if got != test.want || ok != test.ok {
			t.Errorf("ParseLogLevel(%q) = %v, %v; want %v, %v", test.input, got, ok, test.want, test.ok)
		}
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(LogLevelWarn, &buf)

	logger.Error("loader failed: %s", "boom")
	logger.Warn("column %d missing", 3)
	logger.Info("hidden")
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "[ERROR] loader failed: boom") {
		t.Errorf("Expected error line, got %q", out)
	}
	if !strings.Contains(out, "[WARN] column 3 missing") {
		t.Errorf("Expected warn line, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected info and debug to be filtered, got %q", out)
	}
	if logger.GetLevel() != LogLevelWarn {
		t.Errorf("Expected level %v, got %v", LogLevelWarn, logger.GetLevel())
	}
}
