package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// UserString returns a user-safe error message.
// It extracts the message of the outermost *Error in the chain, falling back
// to the standard error message for other errors.
func UserString(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}

// IsError checks if the given error is, or wraps, an *Error.
func IsError(err error) bool {
	if err == nil {
		return false
	}
	var e *Error
	return errors.As(err, &e)
}

// DebugString returns a verbose error string with kinds, keys and the chain
// of causes, one numbered line per error.
func DebugString(err error) string {
	if err == nil {
		return ""
	}
	chain := flattenChain(err)
	var b strings.Builder
	for i, item := range chain {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch typed := item.(type) {
		case *Error:
			b.WriteString(fmt.Sprintf("%d: %T: %s | kind=%s", i+1, typed, typed.Error(), typed.kind))
			if typed.key != nil {
				b.WriteString(fmt.Sprintf(" | key=%s", typed.key))
			}
			if typed.hasMessage {
				b.WriteString(fmt.Sprintf(" | message=%q", typed.message))
			}
			if typed.base != nil {
				b.WriteString(fmt.Sprintf(" | base=%q", typed.base.Error()))
			}
		default:
			b.WriteString(fmt.Sprintf("%d: %T: %s", i+1, item, item.Error()))
		}
	}
	return b.String()
}

func flattenChain(err error) []error {
	var out []error
	queue := []error{err}
	const maxEntries = 64
	for len(queue) > 0 && len(out) < maxEntries {
		current := queue[0]
		queue = queue[1:]
		if current == nil {
			continue
		}
		out = append(out, current)
		queue = append(queue, unwrapAll(current)...)
	}
	return out
}

func unwrapAll(err error) []error {
	switch unwrapped := err.(type) {
	case interface{ Unwrap() []error }:
		return unwrapped.Unwrap()
	case interface{ Unwrap() error }:
		if next := unwrapped.Unwrap(); next != nil {
			return []error{next}
		}
	}
	return nil
}
