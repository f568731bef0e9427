package apperr

import "reflect"

// New builds an error from key of the default catalog.
// It panics if args exceed the key's arity.
func New(key Key, args ...any) *Error {
	return Default().New(key, args...)
}

// Wrap builds an error from key of the default catalog and attaches cause.
func Wrap(cause error, key Key, args ...any) *Error {
	return Default().Wrap(cause, key, args...)
}

// NotImplemented reports functionality that does not exist yet.
func NotImplemented() *Error {
	return New(MsgNotImplemented)
}

// NotSupported reports an unsupported value or operation.
func NotSupported(object any) *Error {
	return New(MsgNotSupported, object)
}

// FailedToInitializeComponent reports that component could not be
// initialized because of cause. component is named by its Go type; a
// reflect.Type is used as is.
func FailedToInitializeComponent(component any, cause error) *Error {
	return Wrap(cause, MsgFailedToInitializeComponent, typeName(component), cause)
}

// FailedToInitializeComponentDetail reports that component could not be
// initialized, with a detail message when no error caused the failure.
func FailedToInitializeComponentDetail(component any, details string) *Error {
	return New(MsgFailedToInitializeComponent, typeName(component), details)
}

// UnsupportedDateString reports a date string in an unsupported layout.
func UnsupportedDateString(date string) *Error {
	return New(MsgUnsupportedDate, date)
}

// PreGenerated reports an attempt to modify something that is pre-generated.
func PreGenerated(what any) *Error {
	return New(MsgPreGenerated, what)
}

// MissingResourceBundle reports a resource bundle that could not be loaded.
func MissingResourceBundle(bundleName string, cause error) *Error {
	return Wrap(cause, MsgMissingResourceBundle, bundleName, cause)
}

// NoResourceBundle reports that no resource bundle is available at all.
func NoResourceBundle() *Error {
	return New(MsgNoResourceBundle)
}

// InvalidParameterValue reports that paramName holds the invalid paramValue.
func InvalidParameterValue(paramName, paramValue string) *Error {
	return New(MsgInvalidValue, paramName, paramValue)
}

// InvalidParameterValues reports invalid values for several parameters.
// Use CommaDelimited or KeyValueCommaDelimited to build the arguments.
func InvalidParameterValues(paramNames, paramValues string) *Error {
	return New(MsgInvalidValues, paramNames, paramValues)
}

// MissingParameterValue reports that paramName has no value.
func MissingParameterValue(paramName string) *Error {
	return New(MsgMissingValue, paramName)
}

// MissingParameterValues reports that the named parameters have no value.
func MissingParameterValues(paramNames string) *Error {
	return New(MsgMissingValues, paramNames)
}

// typeName returns the package-qualified name of v's type, without pointer
// indirections. A nil v yields nil so that it renders as NullArg.
func typeName(v any) any {
	var t reflect.Type
	switch typed := v.(type) {
	case nil:
		return nil
	case reflect.Type:
		t = typed
	default:
		t = reflect.TypeOf(v)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}
