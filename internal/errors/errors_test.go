package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	// Verify all expected error codes exist
	codes := []string{
		ErrConfig,
		ErrTheme,
		ErrUsage,
		ErrRender,
		ErrOutput,
	}

	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
	}

	// Verify codes are unique
	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .pulsegif.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "theme error",
			code:       ErrTheme,
			message:    "Unknown theme: \"lava\"",
			suggestion: "Run 'pulsegif themes' to list available themes",
		},
		{
			name:       "usage error",
			code:       ErrUsage,
			message:    "Invalid extra usage pair: £0.00/£0.00",
			suggestion: "Extra usage limit must be non-zero",
		},
		{
			name:       "output error",
			code:       ErrOutput,
			message:    "Failed to write manifest",
			suggestion: "Check directory permissions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name: "basic error formatting",
			err:  New(ErrConfig, "Invalid configuration", "Check .pulsegif.yaml syntax"),
			expectedParts: []string{
				"Invalid configuration",
				"Check .pulsegif.yaml syntax",
			},
		},
		{
			name: "error with failure symbol",
			err:  New(ErrRender, "Frame composition failed", "Try again"),
			expectedParts: []string{
				"✗",
				"Frame composition failed",
			},
		},
		{
			name: "error without suggestion",
			err:  New(ErrOutput, "Write failed", ""),
			expectedParts: []string{
				"Write failed",
			},
			notExpected: []string{
				"suggestion", // Should not include suggestion header if empty
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part, "output should contain %q", part)
			}

			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part, "output should not contain %q", part)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying template error")
	wrapped := Wrap(cause, "Mockup frame failed")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrRender, wrapped.Code, "Wrap should default to ErrRender code")
	assert.Equal(t, "Mockup frame failed", wrapped.Message)
	assert.Equal(t, cause, wrapped.Cause)
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("file not found")
	wrapped := WrapWithCode(cause, ErrConfig, "Failed to load config", "Create .pulsegif.yaml file")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrConfig, wrapped.Code)
	assert.Equal(t, "Failed to load config", wrapped.Message)
	assert.Equal(t, "Create .pulsegif.yaml file", wrapped.Suggestion)
	assert.Equal(t, cause, wrapped.Cause)
}

func TestNewUnknownTheme(t *testing.T) {
	err := NewUnknownTheme("lava")

	require.NotNil(t, err)
	assert.Equal(t, ErrTheme, err.Code)
	assert.Contains(t, err.Message, "lava")
	assert.True(t, IsCode(err, ErrTheme))
}

func TestNewInvalidExtraUsage(t *testing.T) {
	err := NewInvalidExtraUsage("£0.00", "£0.00")

	require.NotNil(t, err)
	assert.Equal(t, ErrUsage, err.Code)
	assert.Contains(t, err.Message, "£0.00/£0.00")
	assert.True(t, IsCode(err, ErrUsage))
}

func TestErrorWrappingPreservesCause(t *testing.T) {
	original := errors.New("original error")
	wrapped := WrapWithCode(original, ErrOutput, "Manifest write failed", "")

	// Should preserve the original cause
	assert.Equal(t, original, wrapped.Cause)

	// Error message should include cause information
	errStr := wrapped.Error()
	assert.Contains(t, errStr, "original error")
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := WrapWithCode(cause, ErrRender, "Composition failed", "")

	// Should implement Unwrap for errors.Is/errors.As
	unwrapped := wrapped.Unwrap()
	assert.Equal(t, cause, unwrapped)
}

func TestErrorsIs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := WrapWithCode(cause, ErrOutput, "Output error", "")

	// errors.Is should work with wrapped errors
	assert.True(t, errors.Is(wrapped, cause))
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     string
		expected bool
	}{
		{"nil error", nil, ErrTheme, false},
		{"matching code", NewUnknownTheme("x"), ErrTheme, true},
		{"non-matching code", NewUnknownTheme("x"), ErrUsage, false},
		{"plain error", errors.New("plain"), ErrTheme, false},
		{"wrapped structured error", WrapWithCode(New(ErrUsage, "m", ""), ErrUsage, "outer", ""), ErrUsage, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCode(tt.err, tt.code))
		})
	}
}

func TestMultilineFormatting(t *testing.T) {
	err := WrapWithCode(errors.New("parse error at line 3"), ErrConfig,
		"Failed to read config", "Fix the YAML syntax")

	output := err.Error()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	assert.GreaterOrEqual(t, len(lines), 3, "cause and suggestion should be on separate lines")
	assert.True(t, strings.HasPrefix(lines[0], "✗ "), "first line carries the failure symbol")
}
