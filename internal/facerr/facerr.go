// Package facerr defines the stable error taxonomy shared by the engine
// packages and the surfaces that expose them.
package facerr

import (
	"errors"
	"fmt"
)

// Code identifies a failure category. Codes are stable: callers branch on
// them and the HTTP surface maps them to status codes.
type Code string

const (
	CodeInsufficientLandmarks Code = "insufficient_landmarks"
	CodeMissingLandmark       Code = "missing_landmark"
	CodeInvalidInput          Code = "invalid_input"
	CodeInvalidImage          Code = "invalid_image"
	CodeAnalysisFailed        Code = "analysis_failed"
	CodeInvalidConfig         Code = "invalid_config"
	CodeDetectorUnavailable   Code = "detector_unavailable"
)

// Error pairs a stable code with the underlying cause.
type Error struct {
	Code Code
	Err  error
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on code alone, so errors.Is(err, &Error{Code: c}) works
// regardless of the wrapped cause.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// New creates an error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Err: errors.New(msg)}
}

// Newf creates an error with the given code and formatted message.
func Newf(code Code, format string, args ...interface{}) error {
	return &Error{Code: code, Err: fmt.Errorf(format, args...)}
}

// Wrap attaches a code to an existing error, preserving the chain.
func Wrap(code Code, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Err: err}
}

// CodeOf extracts the code from an error chain. The second return is false
// when no coded error is present.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}

// HasCode reports whether the error chain carries the given code.
func HasCode(err error, code Code) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}
