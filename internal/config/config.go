package config

import (
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"alumstats/app"
	"alumstats/internal"
	"alumstats/internal/errors"
	"alumstats/internal/report"
)

// Config represents the complete run configuration
type Config struct {
	Input  InputConfig
	Report ReportConfig
	Log    LogConfig
}

// InputConfig locates and describes the survey export
type InputConfig struct {
	Path      string
	Delimiter string
	Sheet     string
}

// ReportConfig holds report generation settings
type ReportConfig struct {
	Successes      string // "0" or "1"
	Format         string
	Out            string // empty means stdout
	ZeroTotal      string
	MissingColumns string
	Confidence     float64
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables. Flags applied on top
// must be followed by Validate.
func Load() *Config {
	return &Config{
		Input:  *loadInputConfig(),
		Report: *loadReportConfig(),
		Log:    LogConfig{Level: getEnvOrDefault("LOG_LEVEL", "INFO")},
	}
}

func loadInputConfig() *InputConfig {
	return &InputConfig{
		Path:      getEnvOrDefault("SURVEY_CSV", ""),
		Delimiter: getEnvOrDefault("CSV_DELIMITER", ";"),
		Sheet:     getEnvOrDefault("XLSX_SHEET", "Sheet1"),
	}
}

func loadReportConfig() *ReportConfig {
	return &ReportConfig{
		Successes:      getEnvOrDefault("SURVEY_SUCCESSES", "0"),
		Format:         getEnvOrDefault("REPORT_FORMAT", string(report.FormatText)),
		Out:            getEnvOrDefault("REPORT_OUT", ""),
		ZeroTotal:      getEnvOrDefault("ZERO_TOTAL_POLICY", string(report.ZeroTotalError)),
		MissingColumns: getEnvOrDefault("MISSING_COLUMN_POLICY", string(app.MissingColumnsFatal)),
		Confidence:     getEnvFloatOrDefault("CONFIDENCE_LEVEL", 0),
	}
}

// Validate rejects settings no run could use
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return errors.ConfigInvalid("survey CSV path is required (--csv or SURVEY_CSV)")
	}
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return errors.ConfigInvalid(fmt.Sprintf("delimiter must be a single character, got %q", c.Input.Delimiter))
	}
	if c.Report.Successes != "0" && c.Report.Successes != "1" {
		return errors.ConfigInvalid(fmt.Sprintf("successes must be 0 or 1, got %q", c.Report.Successes))
	}
	if _, err := report.NewRenderer(report.Format(c.Report.Format)); err != nil {
		return errors.Wrap(err, "invalid report format")
	}
	if _, err := report.ParseZeroTotalPolicy(c.Report.ZeroTotal); err != nil {
		return errors.Wrap(err, "invalid zero-total policy")
	}
	if _, err := app.ParseMissingColumnPolicy(c.Report.MissingColumns); err != nil {
		return errors.Wrap(err, "invalid missing-columns policy")
	}
	if c.Report.Confidence < 0 || c.Report.Confidence >= 1 {
		return errors.ConfigInvalid(fmt.Sprintf("confidence must be in [0, 1), got %g", c.Report.Confidence))
	}
	if _, ok := internal.ParseLogLevel(c.Log.Level); !ok {
		return errors.ConfigInvalid(fmt.Sprintf("unknown log level %q", c.Log.Level))
	}
	return nil
}

// DelimiterRune returns the CSV field separator. Call after Validate.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Input.Delimiter)
	return r
}

// SuccessesEnabled reports whether the success stories pass runs
func (c *Config) SuccessesEnabled() bool {
	return c.Report.Successes == "1"
}

// ReportOptions assembles the pass options. Call after Validate.
func (c *Config) ReportOptions() report.Options {
	policy, _ := report.ParseZeroTotalPolicy(c.Report.ZeroTotal)
	return report.Options{ZeroTotal: policy, Confidence: c.Report.Confidence}
}

// MissingColumnPolicy returns the parsed policy. Call after Validate.
func (c *Config) MissingColumnPolicy() app.MissingColumnPolicy {
	policy, _ := app.ParseMissingColumnPolicy(c.Report.MissingColumns)
	return policy
}

// LogLevel returns the parsed log level. Call after Validate.
func (c *Config) LogLevel() internal.LogLevel {
	level, _ := internal.ParseLogLevel(c.Log.Level)
	return level
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
