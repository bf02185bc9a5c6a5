package gateway

import (
	"errors"
)

type ErrorKind string

// One kind per branch of the error taxonomy the screens care about. The
// handler layer maps kinds to banners in exactly one place; nothing else in
// the codebase inspects status codes.
const (
	KindValidation  ErrorKind = "VALIDATION"
	KindAuth        ErrorKind = "AUTH"
	KindForbidden   ErrorKind = "FORBIDDEN"
	KindNotFound    ErrorKind = "NOT_FOUND"
	KindUnavailable ErrorKind = "UNAVAILABLE"
)

// Error is the typed result of a failed gateway call: a kind for routing and
// the upstream message for display.
type Error struct {
	Kind    ErrorKind
	Message string
	err     error // wrapped transport or decode error
}

func (e *Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

func NewError(kind ErrorKind, message string, err error) *Error {
	if message == "" {
		message = defaultMessage(kind)
	}
	return &Error{Kind: kind, Message: message, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// MessageOf returns the display message of a gateway error, or a generic one.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Something went wrong. Please try again."
}

func classifyStatus(status int, message string) *Error {
	switch {
	case status == 400:
		return NewError(KindValidation, message, nil)
	case status == 401:
		return NewError(KindAuth, message, nil)
	case status == 403:
		return NewError(KindForbidden, message, nil)
	case status == 404:
		return NewError(KindNotFound, message, nil)
	default:
		return NewError(KindUnavailable, message, nil)
	}
}

func defaultMessage(kind ErrorKind) string {
	switch kind {
	case KindValidation:
		return "Invalid request"
	case KindAuth:
		return "Your session has expired. Please log in again."
	case KindForbidden:
		return "Access denied. Please log in with the required role."
	case KindNotFound:
		return "Not found"
	default:
		return "Service temporarily unavailable. Please try again."
	}
}
