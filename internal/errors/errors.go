package errors

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

// Error is the failure type returned across component boundaries
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// Error renders "CODE: message" followed by the cause, if any
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error target with the same code, so
// errors.Is(err, NotFound("")) works through wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// WithMeta attaches a key/value pair and returns the same error
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// Retryable reports whether re-issuing the failed request could succeed
func (e *Error) Retryable() bool {
	return e.Code.Retryable()
}

// New creates an error with the given code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with the given code and a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap annotates err with message. The code and metadata of an *Error cause
// carry over; any other cause becomes CodeInternal. Wrap(nil) is nil.
func Wrap(err error, message string) *Error {
	return wrap(err, "", message)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	return wrap(err, "", fmt.Sprintf(format, args...))
}

// WrapWithCode annotates err and replaces its code
func WrapWithCode(err error, code Code, message string) *Error {
	return wrap(err, code, message)
}

// WrapWithCodef is WrapWithCode with a formatted message
func WrapWithCodef(err error, code Code, format string, args ...any) *Error {
	return wrap(err, code, fmt.Sprintf(format, args...))
}

func wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	out := &Error{Code: CodeInternal, Message: message, Cause: err}
	var cause *Error
	if errors.As(err, &cause) {
		out.Code = cause.Code
		out.Meta = maps.Clone(cause.Meta)
	}
	if code != "" {
		out.Code = code
	}
	return out
}

// NotFound reports a remote resource that does not exist
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf is NotFound with a formatted message
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument reports bad caller input
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf is InvalidArgument with a formatted message
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// FailedPrecondition reports an operation not allowed in the current state
func FailedPrecondition(message string) *Error {
	return New(CodeFailedPrecondition, message)
}

// Internal reports a local failure with no better code
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Unavailable reports a transport failure or a remote 5xx
func Unavailable(message string) *Error {
	return New(CodeUnavailable, message)
}

// Unavailablef is Unavailable with a formatted message
func Unavailablef(format string, args ...any) *Error {
	return Newf(CodeUnavailable, format, args...)
}

// DataLossf reports stored or received data that could not be decoded
func DataLossf(format string, args ...any) *Error {
	return Newf(CodeDataLoss, format, args...)
}
