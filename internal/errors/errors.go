package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig = "CONFIG"
	ErrTheme  = "THEME"
	ErrUsage  = "USAGE"
	ErrRender = "RENDER"
	ErrOutput = "OUTPUT"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Error messages follow the format:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrRender code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrRender,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// NewUnknownTheme creates an error for a theme name that is not registered.
func NewUnknownTheme(name string) *Error {
	return &Error{
		Code:       ErrTheme,
		Message:    fmt.Sprintf("Unknown theme: %q", name),
		Suggestion: "Run 'pulsegif themes' to list available themes",
	}
}

// NewInvalidExtraUsage creates an error for an extra-usage pair that cannot
// be turned into a percentage (non-numeric values or a zero limit).
func NewInvalidExtraUsage(used, limit string) *Error {
	return &Error{
		Code:       ErrUsage,
		Message:    fmt.Sprintf("Invalid extra usage pair: %s/%s", used, limit),
		Suggestion: "Extra usage values must be numeric with an optional currency prefix, and the limit must be non-zero",
	}
}

// Error implements the error interface with formatted output.
func (e *Error) Error() string {
	var b strings.Builder

	// First line: failure symbol + main message
	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	// Include cause if present (why it failed)
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	// Include suggestion if present (how to fix)
	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var pulseErr *Error
	if errors.As(err, &pulseErr) {
		return pulseErr.Code == code
	}
	return false
}
