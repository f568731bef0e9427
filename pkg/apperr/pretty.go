package apperr

import (
	"fmt"
	"reflect"
	"strings"
)

// NullArg is the rendering of a nil argument.
const NullArg = "<null>"

const listSeparator = ", "

// Pretty renders a single argument for substitution into a format string.
// nil renders as NullArg and strings are wrapped in double quotes without
// escaping; any other value uses its default fmt representation.
func Pretty(v any) string {
	if isNil(v) {
		return NullArg
	}
	if s, ok := v.(string); ok {
		return `"` + s + `"`
	}
	return fmt.Sprint(v)
}

// PrettyArgs renders every argument with Pretty. An argument that is itself a
// slice or array (other than []byte) renders as its elements joined with ", ";
// nesting is not followed past that level. A nil args renders as an empty
// slice.
func PrettyArgs(args []any) []string {
	pretty := make([]string, len(args))
	for i, arg := range args {
		switch {
		case isNil(arg):
			pretty[i] = NullArg
		case isList(arg):
			pretty[i] = prettyList(reflect.ValueOf(arg))
		default:
			pretty[i] = Pretty(arg)
		}
	}
	return pretty
}

func prettyList(list reflect.Value) string {
	var b strings.Builder
	for i := 0; i < list.Len(); i++ {
		if i > 0 {
			b.WriteString(listSeparator)
		}
		b.WriteString(Pretty(list.Index(i).Interface()))
	}
	return b.String()
}

func isList(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Type().Elem().Kind() != reflect.Uint8
	}
	return false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// CommaDelimited joins names with ", ". Empty or nil input yields "".
func CommaDelimited(names []string) string {
	return strings.Join(names, listSeparator)
}

// KeyValueCommaDelimited renders parallel names and values as
// "name: value" entries joined with ", ". Values use their default fmt
// representation without quoting; a name without a value renders as <nil>.
func KeyValueCommaDelimited(names []string, values []any) string {
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString(listSeparator)
		}
		var value any
		if i < len(values) {
			value = values[i]
		}
		b.WriteString(name)
		b.WriteString(": ")
		fmt.Fprint(&b, value)
	}
	return b.String()
}
