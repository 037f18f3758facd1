package cli

import (
	"encoding/json"
	stderrors "errors"
	"io"

	"github.com/NoobyGains/claude-pulse/internal/errors"
)

// MachineMode returns true if machine-readable output is enabled
func MachineMode() bool {
	return jsonFlag
}

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodeConfigInvalid = "CONFIG_INVALID"
	ErrCodeUnknownTheme  = "UNKNOWN_THEME"
	ErrCodeInvalidUsage  = "INVALID_EXTRA_USAGE"
	ErrCodeRenderFailed  = "RENDER_FAILED"
	ErrCodeOutputFailed  = "OUTPUT_FAILED"
	ErrCodeUnknown       = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: true,
		Data:    data,
	})
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	})
}

// ErrorToJSON maps a structured error onto its machine-readable form.
func ErrorToJSON(err error) *JSONError {
	out := &JSONError{Code: ErrCodeUnknown, Message: err.Error()}

	var structured *errors.Error
	if !stderrors.As(err, &structured) {
		return out
	}

	out.Message = structured.Message
	out.Suggestion = structured.Suggestion
	switch structured.Code {
	case errors.ErrConfig:
		out.Code = ErrCodeConfigInvalid
	case errors.ErrTheme:
		out.Code = ErrCodeUnknownTheme
	case errors.ErrUsage:
		out.Code = ErrCodeInvalidUsage
	case errors.ErrRender:
		out.Code = ErrCodeRenderFailed
	case errors.ErrOutput:
		out.Code = ErrCodeOutputFailed
	}
	return out
}

// writeJSONEnvelope writes the envelope with consistent formatting.
func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}
