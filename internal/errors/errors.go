package errors

import (
	"errors"
	"fmt"
	"strings"

	"alumstats/domain/core"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeFileError     = "FILE_ERROR"
	CodeParseError    = "PARSE_ERROR"
	CodeMissingColumn = "MISSING_COLUMN"
	CodeDivisionError = "DIVISION_ERROR"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInternalError = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// FileError reports an input path that could not be opened or read.
func FileError(path string, cause error) *AppError {
	return &AppError{
		Code:    CodeFileError,
		Message: fmt.Sprintf("cannot read %s", path),
		Cause:   fmt.Errorf("%w: %v", core.ErrFileUnreadable, cause),
	}
}

// ParseError reports a survey export that is not well-formed.
func ParseError(path string, cause error) *AppError {
	return &AppError{
		Code:    CodeParseError,
		Message: fmt.Sprintf("cannot parse %s", path),
		Cause:   fmt.Errorf("%w: %v", core.ErrMalformedInput, cause),
	}
}

// MissingColumn lists every expected question absent from the header row.
func MissingColumn(questions []string) *AppError {
	return &AppError{
		Code:    CodeMissingColumn,
		Message: fmt.Sprintf("%d expected column(s) not found in header", len(questions)),
		Cause:   core.NewMissingColumnError(questions),
	}
}

// DivisionError reports a percentage requested against a zero total.
func DivisionError(label string) *AppError {
	return &AppError{
		Code:    CodeDivisionError,
		Message: "division by zero",
		Cause:   core.NewZeroTotalError(strings.TrimSpace(label)),
	}
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}
