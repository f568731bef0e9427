package apperr

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

// Format renders key from the default catalog with args.
// See Catalog.Format.
func Format(key Key, args ...any) (string, error) {
	return Default().Format(key, args...)
}

// render pretty-prints args and substitutes them into format. Arguments
// missing for the key's arity are rendered as NullArg; surplus arguments are
// an error.
func render(key Key, format string, args []any) (string, error) {
	arity := key.Arity()
	if len(args) > arity {
		return "", fmt.Errorf("%w: %s takes %d arguments, got %d", ErrMalformedFormatString, key, arity, len(args))
	}

	pretty := PrettyArgs(args)
	values := make([]any, arity)
	for i := range values {
		if i < len(pretty) {
			values[i] = pretty[i]
		} else {
			values[i] = NullArg
		}
	}

	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()
	fmt.Fprintf(buf, format, values...)
	return buf.String(), nil
}

// stringVerbs are the verbs that accept the pre-rendered string arguments.
const stringVerbs = "svq"

// formatArity returns the number of arguments a printf-style format string
// consumes. Explicit argument indexes ("%[2]s") are honoured and "%%" is
// ignored. ok is false for a format ending in a bare '%', for a '*' width or
// precision and for verbs other than %s, %v and %q.
func formatArity(format string) (arity int, ok bool) {
	argNum := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		for i < len(format) && strings.IndexByte("+-# 0123456789.", format[i]) >= 0 {
			i++
		}
		if i < len(format) && format[i] == '[' {
			end := strings.IndexByte(format[i:], ']')
			if end < 0 {
				return 0, false
			}
			n, err := strconv.Atoi(format[i+1 : i+end])
			if err != nil || n < 1 {
				return 0, false
			}
			argNum = n - 1
			i += end + 1
			for i < len(format) && strings.IndexByte("0123456789.", format[i]) >= 0 {
				i++
			}
		}
		if i >= len(format) {
			return 0, false
		}
		if format[i] == '%' {
			continue
		}
		if strings.IndexByte(stringVerbs, format[i]) < 0 {
			return 0, false
		}
		argNum++
		if argNum > arity {
			arity = argNum
		}
	}
	return arity, true
}
