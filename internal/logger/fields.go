package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field is a structured log field.
type Field = zap.Field

// Field constructors.
var (
	String   = zap.String
	Strings  = zap.Strings
	Int      = zap.Int
	Int64    = zap.Int64
	Float64  = zap.Float64
	Bool     = zap.Bool
	Any      = zap.Any
	Duration = zap.Duration
	Time     = zap.Time
	Stack    = zap.Stack
)

// Err creates an error field under the conventional "error" key.
func Err(err error) Field {
	return zap.Error(err)
}

// HTTPMethod creates an HTTP method field.
func HTTPMethod(method string) Field {
	return zap.String("http.method", method)
}

// HTTPPath creates an HTTP path field.
func HTTPPath(path string) Field {
	return zap.String("http.path", path)
}

// HTTPStatus creates an HTTP status field.
func HTTPStatus(status int) Field {
	return zap.Int("http.status", status)
}

// LatencyMs creates a latency field in milliseconds.
func LatencyMs(d time.Duration) Field {
	return zap.Float64("latency_ms", float64(d.Microseconds())/1000)
}
