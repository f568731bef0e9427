package apperr

import (
	"io/fs"

	"golang.org/x/text/language"
)

// Option configures catalog loading.
type Option func(*options)

type options struct {
	language language.Tag
	overlays []fs.FS
	logger   Logger
}

func newOptions(opts []Option) options {
	o := options{language: SourceLanguage}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithLanguage selects the language messages are resolved in. Entries missing
// in that language fall back to SourceLanguage.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.language = tag
	}
}

// WithCatalogFS adds a file system whose catalog files are loaded after the
// built-in ones, replacing entries with the same key.
func WithCatalogFS(fsys fs.FS) Option {
	return func(o *options) {
		if fsys != nil {
			o.overlays = append(o.overlays, fsys)
		}
	}
}

// WithLogger installs the logger used to trace error construction.
// See SetLogger.
func WithLogger(l Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
