package apperr

import "errors"

// Kind discriminates concrete error kinds. Errors of different kinds are never
// equal, even when their messages match.
type Kind string

// KindApplication is the kind of errors built from the default catalog.
const KindApplication Kind = "ApplicationException"

// Error is the catalog-backed application error.
// Values are immutable once constructed and safe to share between goroutines.
type Error struct {
	kind       Kind
	key        Key
	message    string
	hasMessage bool
	cause      error
	base       error
}

// NewMessage creates an application error carrying message verbatim, without
// a catalog lookup.
func NewMessage(message string) *Error {
	return &Error{
		kind:       KindApplication,
		message:    message,
		hasMessage: true,
	}
}

// NewNoMessage creates an application error without a message.
func NewNoMessage() *Error {
	return &Error{kind: KindApplication}
}

// Error implements the error interface.
// An error without a message reports its kind.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.hasMessage {
		return e.message
	}
	return string(e.kind)
}

// Unwrap returns the immediate wrapped error (cause).
// The base sentinel is matched by Is, not returned here.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is reports whether target is the base sentinel of e, or an *Error equal to e.
// errors.Is continues with the cause chain through Unwrap.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	if e.base != nil && errors.Is(e.base, target) {
		return true
	}
	return e.Equal(target)
}

// Equal reports whether other is an *Error of the same kind with the same
// message. The cause, key and base are not compared; an error without a
// message only equals another error without a message.
func (e *Error) Equal(other error) bool {
	o, ok := other.(*Error)
	if !ok {
		return false
	}
	if e == o {
		return true
	}
	if e == nil || o == nil {
		return false
	}
	if e.kind != o.kind {
		return false
	}
	if !e.hasMessage {
		return !o.hasMessage
	}
	return o.hasMessage && e.message == o.message
}

// Hash returns a hash consistent with Equal. It is never zero.
func (e *Error) Hash() int32 {
	if e == nil {
		return 1
	}
	const prime = 31
	result := int32(1)
	result = prime*result + stringHash(string(e.kind))
	if e.hasMessage {
		result = prime*result + stringHash(e.message)
	} else {
		result = prime * result
	}
	if result == 0 {
		return 1
	}
	return result
}

func stringHash(s string) int32 {
	var h int32
	for _, r := range s {
		h = 31*h + int32(r)
	}
	return h
}

// Kind returns the error kind.
func (e *Error) Kind() Kind {
	if e == nil {
		return ""
	}
	return e.kind
}

// Key returns the catalog key the message was built from, or nil for errors
// created with NewMessage or NewNoMessage.
func (e *Error) Key() Key {
	if e == nil {
		return nil
	}
	return e.key
}

// Message returns the rendered message.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// HasMessage reports whether the error carries a message.
func (e *Error) HasMessage() bool {
	return e != nil && e.hasMessage
}

// Cause returns the wrapped error, if any.
func (e *Error) Cause() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Base returns the sentinel base error, if any.
func (e *Error) Base() error {
	if e == nil {
		return nil
	}
	return e.base
}

// WithBase sets the sentinel base error used for errors.Is matching.
// Returns a new error with the base set to avoid mutating the original.
func (e *Error) WithBase(base error) *Error {
	if e == nil {
		return nil
	}
	clone := *e
	clone.base = base
	return &clone
}
