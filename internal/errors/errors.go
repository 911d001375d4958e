// Package errors provides coded errors for the apigen scaffolder.
//
// Overview:
//   - Responsibility: Classify failures (bad input, missing inputs, file system)
//   - Key Types: Code for classification, E for structured errors
//   - Concurrency Model: All functions are safe for concurrent use
//   - Error Semantics: Compatible with standard library wrapping (errors.Is/As)
//   - Performance Notes: One allocation per error
//
// Usage:
//
//	err := errors.New(errors.CodeInvalidArgument, "service name is required")
//	wrapped := errors.Wrap(errors.CodeInternal, "billing/app.py", ioErr)
//	code := errors.CodeOf(err)
package errors

import (
	"errors"
	"fmt"
)

// Code represents an error classification code.
type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"
)

// E is a structured error. Op names the artifact or step that failed,
// usually a path relative to the output root.
type E struct {
	Code Code
	Op   string
	Err  error
	Msg  string
}

// Error implements the error interface.
func (e *E) Error() string {
	var s string
	switch {
	case e.Op != "" && e.Msg != "":
		s = fmt.Sprintf("%s: %s: %s", e.Code, e.Op, e.Msg)
	case e.Op != "":
		s = fmt.Sprintf("%s: %s", e.Code, e.Op)
	default:
		s = fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
	if e.Err != nil {
		return s + ": " + e.Err.Error()
	}
	return s
}

// Unwrap returns the underlying error.
func (e *E) Unwrap() error {
	return e.Err
}

// New creates an error with the given code and message.
func New(code Code, msg string) error {
	return &E{Code: code, Msg: msg}
}

// Newf creates an error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &E{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap wraps err with a code and the operation that failed.
// A nil err yields nil so call sites can wrap unconditionally.
func Wrap(code Code, op string, err error) error {
	if err == nil {
		return nil
	}
	return &E{Code: code, Op: op, Err: err}
}

// Wrapf wraps err with a code, operation, and formatted message.
func Wrapf(code Code, op string, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &E{Code: code, Op: op, Err: err, Msg: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the code from err, or "" if err carries none.
func CodeOf(err error) Code {
	var e *E
	if err != nil && errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// Is forwards to the standard library errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As forwards to the standard library errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
