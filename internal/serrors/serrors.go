// Package serrors carries the semantic error kinds the services return.
// Handlers translate kinds into HTTP status codes; everything else only
// needs errors.Is.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a sentinel naming an error category.
type Kind interface {
	error
	kind()
}

type kindValue string

func (k kindValue) Error() string { return string(k) }
func (k kindValue) kind()         {}

// NewKind declares a new category.
func NewKind(name string) Kind { return kindValue(name) }

var (
	// ErrBadRequest marks malformed or missing input.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrUnauthorized marks a missing or unusable identity.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden marks an identity lacking the role or ownership required.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrNotFound marks an unknown id.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrConflict marks a violated state precondition: wrong moderation status,
	// duplicate unique value, duplicate application or unavailable parent.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal marks a storage or programming failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error pairs a Kind with a client-facing message and an optional cause.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

// New builds an error of kind k with a formatted message.
func New(k Kind, format string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an error of kind k around cause.
func Wrap(k Kind, cause error, format string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...), cause: cause}
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.cause != nil:
		return e.msg + ": " + e.cause.Error()
	case e.msg != "":
		return e.msg
	case e.cause != nil:
		return e.cause.Error()
	case e.kind != nil:
		return e.kind.Error()
	}

	return "unknown error"
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches either the kind or anything in the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil {
		return target == nil
	}
	if e.kind != nil && e.kind == target {
		return true
	}

	return e.cause != nil && errors.Is(e.cause, target)
}

// Kind returns the category of e.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the client-facing message without the cause.
func (e *Error) Message() string { return e.msg }

// KindOf reports the category of err, falling back to ErrInternal for
// errors that carry none.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) && se.kind != nil {
		return se.kind
	}
	for _, k := range []Kind{ErrBadRequest, ErrUnauthorized, ErrForbidden, ErrNotFound, ErrConflict} {
		if errors.Is(err, k) {
			return k
		}
	}

	return ErrInternal
}

// MessageOf returns the client-facing message of err, or the kind name.
func MessageOf(err error) string {
	var se *Error
	if errors.As(err, &se) && se.msg != "" {
		return se.msg
	}

	return KindOf(err).Error()
}
