package apperr

import "errors"

// Sentinel errors for catalog and formatting failures.
var (
	// ErrMissingCatalogResource is the base of errors reporting that a catalog
	// resource could not be located or read.
	ErrMissingCatalogResource = errors.New("catalog resource not found")

	// ErrIncompleteCatalog is returned when a catalog lacks entries for some keys.
	ErrIncompleteCatalog = errors.New("catalog is missing message keys")

	// ErrUnknownMessageKey is returned when a key has no entry in the catalog.
	ErrUnknownMessageKey = errors.New("unknown message key")

	// ErrMalformedFormatString is returned when a format string does not match
	// the arity of its key, or when a key is formatted with too many arguments.
	ErrMalformedFormatString = errors.New("malformed format string")

	// ErrAlreadyInitialized is returned by Init once the default catalog is loaded.
	ErrAlreadyInitialized = errors.New("default catalog already initialized")
)

// noResourceBundleMessage reports a default catalog that cannot be loaded. It
// is never looked up so that the failure can be reported without a catalog.
const noResourceBundleMessage = "no resource bundle available"

func errNoResourceBundle(cause error) *Error {
	return &Error{
		kind:       KindApplication,
		key:        MsgNoResourceBundle,
		message:    noResourceBundleMessage,
		hasMessage: true,
		cause:      cause,
		base:       ErrMissingCatalogResource,
	}
}

// missingResourceBundleFormat matches the source-language catalog entry of
// MsgMissingResourceBundle.
const missingResourceBundleFormat = "Missing resource bundle %s: %s"

// errMissingResourceBundle reports a catalog resource that could not be
// loaded. It uses the default catalog only once that is loaded, and the
// source-language wording otherwise.
func errMissingResourceBundle(name string, cause error, l Logger) *Error {
	if c := loadedDefault.Load(); c != nil {
		return c.Wrap(cause, MsgMissingResourceBundle, name, cause).WithBase(ErrMissingCatalogResource)
	}
	message, err := render(MsgMissingResourceBundle, missingResourceBundleFormat, []any{name, cause})
	if err != nil {
		message = noResourceBundleMessage
	}
	e := &Error{
		kind:       KindApplication,
		key:        MsgMissingResourceBundle,
		message:    message,
		hasMessage: true,
		cause:      cause,
		base:       ErrMissingCatalogResource,
	}
	logConstructed(l, e)
	return e
}
