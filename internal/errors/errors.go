package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// =============================================================================
// ERROR CODES
// =============================================================================

// Error code constants for structured errors.
const (
	CodeConfigError      = "CONFIG_ERROR"
	CodeInvalidConfig    = "INVALID_CONFIG"
	CodeValidationError  = "VALIDATION_ERROR"
	CodeUnknownPane      = "UNKNOWN_PANE"
	CodeWidgetInitFailed = "WIDGET_INIT_FAILED"
	CodeHandlerPanic     = "HANDLER_PANIC"
)

// =============================================================================
// DASHUB ERROR (STRUCTURED ERROR)
// =============================================================================

// DashubError represents a structured error with context.
type DashubError struct {
	Code      string
	Message   string
	Cause     error
	Timestamp time.Time
	Context   map[string]any
}

func (e *DashubError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

func (e *DashubError) Unwrap() error {
	return e.Cause
}

// Is compares by error code, so a constructed error matches its sentinel.
func (e *DashubError) Is(target error) bool {
	t, ok := target.(*DashubError)
	if !ok {
		return false
	}

	return e.Code != "" && e.Code == t.Code
}

// WithContext adds context to the error.
func (e *DashubError) WithContext(key string, value any) *DashubError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}

	e.Context[key] = value

	return e
}

func newError(code, message string, cause error, ctx map[string]any) *DashubError {
	if ctx == nil {
		ctx = make(map[string]any)
	}

	return &DashubError{
		Code:      code,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
		Context:   ctx,
	}
}

// ErrConfigError creates a config error.
func ErrConfigError(message string, cause error) *DashubError {
	return newError(CodeConfigError, message, cause, nil)
}

// ErrInvalidConfig creates an error for a configuration key that failed validation.
func ErrInvalidConfig(configKey string, cause error) *DashubError {
	return newError(CodeInvalidConfig, "invalid configuration for key '"+configKey+"'", cause,
		map[string]any{"config_key": configKey})
}

// ErrValidationError creates a validation error.
func ErrValidationError(field string, cause error) *DashubError {
	return newError(CodeValidationError, fmt.Sprintf("validation error for field '%s'", field), cause,
		map[string]any{"field": field})
}

// ErrUnknownPane is returned when navigation targets a pane the form does not have.
func ErrUnknownPane(pane string) *DashubError {
	return newError(CodeUnknownPane, "unknown pane '"+pane+"'", nil,
		map[string]any{"pane": pane})
}

// ErrWidgetInitFailed wraps a widget initializer failure.
func ErrWidgetInitFailed(widget string, cause error) *DashubError {
	return newError(CodeWidgetInitFailed, "widget '"+widget+"' failed to initialize", cause,
		map[string]any{"widget": widget})
}

// ErrHandlerPanic records a recovered panic from an event handler.
func ErrHandlerPanic(event string, recovered any) *DashubError {
	return newError(CodeHandlerPanic, fmt.Sprintf("handler for '%s' panicked: %v", event, recovered), nil,
		map[string]any{"event": event})
}

// =============================================================================
// HTTP ERRORS
// =============================================================================

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	Code    int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.Err != nil {
		return e.Err.Error()
	}

	return http.StatusText(e.Code)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// Is compares by HTTP status code.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}

	return e.Code == t.Code
}

func BadRequest(message string) *HTTPError {
	return &HTTPError{Code: http.StatusBadRequest, Message: message}
}

func NotFound(message string) *HTTPError {
	return &HTTPError{Code: http.StatusNotFound, Message: message}
}

func InternalError(err error) *HTTPError {
	return &HTTPError{Code: http.StatusInternalServerError, Err: err}
}

// GetHTTPStatusCode extracts the HTTP status code from err, 500 if none.
func GetHTTPStatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// =============================================================================
// STANDARD ERRORS PACKAGE INTEGRATION
// =============================================================================

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// =============================================================================
// SENTINEL ERRORS (for use with Is)
// =============================================================================

var (
	ErrConfigErrorSentinel      = &DashubError{Code: CodeConfigError}
	ErrInvalidConfigSentinel    = &DashubError{Code: CodeInvalidConfig}
	ErrValidationErrorSentinel  = &DashubError{Code: CodeValidationError}
	ErrUnknownPaneSentinel      = &DashubError{Code: CodeUnknownPane}
	ErrWidgetInitFailedSentinel = &DashubError{Code: CodeWidgetInitFailed}
)

// IsUnknownPane checks if the error is an unknown pane error.
func IsUnknownPane(err error) bool {
	return Is(err, ErrUnknownPaneSentinel)
}

// IsInvalidConfig checks if the error is an invalid configuration error.
func IsInvalidConfig(err error) bool {
	return Is(err, ErrInvalidConfigSentinel)
}

// IsWidgetInitFailed checks if the error is a widget initialization error.
func IsWidgetInitFailed(err error) bool {
	return Is(err, ErrWidgetInitFailedSentinel)
}
