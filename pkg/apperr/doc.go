// Package apperr provides catalog-backed application errors with consistent,
// localizable messages.
//
// Every error message comes from a closed set of message keys. Each key maps,
// through a TOML catalog loaded once per process, to a printf-style format
// string. Constructors select a key, render their arguments and return an
// immutable *Error carrying the message and an optional cause:
//
//	return apperr.MissingParameterValue("name")
//
//	if err := load(); err != nil {
//		return apperr.MissingResourceBundle("reports", err)
//	}
//
// Arguments are rendered before substitution:
//   - nil becomes <null>
//   - strings are wrapped in double quotes
//   - slices and arrays are rendered element by element and joined with ", "
//   - everything else uses its default fmt representation
//
// Two errors are equal when they have the same Kind and the same message; the
// cause is not compared. *Error implements Is on top of that, so tests can
// write:
//
//	if errors.Is(err, apperr.NotImplemented()) {
//		// Handle specific error
//	}
//
// The default catalog is embedded and resolved on first use, or explicitly
// with Init. Other packages can declare their own key sets and load them with
// LoadCatalog under a different Kind.
//
// Construction can be traced by installing a Logger (see ZapLogger and
// LogrLogger); the rendered message is emitted at debug level.
package apperr
