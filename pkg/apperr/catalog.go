package apperr

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"sync/atomic"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"apperror/pkg/apperr/messages"
)

// SourceLanguage is the language catalogs are authored in. Entries missing in
// another language fall back to it.
var SourceLanguage = language.English

// Catalog maps message keys to format strings for one kind of error.
// A Catalog is immutable once loaded.
type Catalog struct {
	kind     Kind
	language language.Tag
	bundle   *i18n.Bundle
	keys     []Key
	byName   map[string]Key
	formats  map[string]string
	logger   Logger
}

// Entry is a key with its format string.
type Entry struct {
	Key    Key
	Format string
}

var defaultOnce = new(sync.Once)

var (
	defaultCatalog *Catalog
	defaultErr     error
	loadedDefault  atomic.Pointer[Catalog]
)

// Init loads the default catalog with opts. It returns ErrAlreadyInitialized
// if the default catalog was already loaded, either by an earlier Init or by
// first use.
func Init(opts ...Option) error {
	ran := false
	defaultOnce.Do(func() {
		ran = true
		defaultCatalog, defaultErr = loadDefault(opts)
		if defaultErr == nil {
			loadedDefault.Store(defaultCatalog)
		}
	})
	if !ran {
		return ErrAlreadyInitialized
	}
	return defaultErr
}

// Default returns the default catalog, loading it on first use.
// It panics if the catalog cannot be loaded.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = loadDefault(nil)
		if defaultErr == nil {
			loadedDefault.Store(defaultCatalog)
		}
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultCatalog
}

func loadDefault(opts []Option) (*Catalog, error) {
	o := newOptions(opts)
	sources := append([]fs.FS{messages.FS}, o.overlays...)
	c, err := loadCatalog(KindApplication, sources, MessageKeys(), o)
	if errors.Is(err, ErrMissingCatalogResource) {
		return nil, errNoResourceBundle(err)
	}
	return c, err
}

// LoadCatalog loads the catalog for kind from fsys. Catalog files are named
// after the kind, e.g. "ApplicationException.en.toml", and must define an
// entry for every key. Keys must be comparable.
//
// LoadCatalog never loads the default catalog, so it may run before Init.
func LoadCatalog(kind Kind, fsys fs.FS, keys []Key, opts ...Option) (*Catalog, error) {
	o := newOptions(opts)
	sources := append([]fs.FS{fsys}, o.overlays...)
	c, err := loadCatalog(kind, sources, keys, o)
	if errors.Is(err, ErrMissingCatalogResource) {
		return nil, errMissingResourceBundle(resourceName(kind), err, o.logger)
	}
	return c, err
}

func resourceName(kind Kind) string {
	return string(kind)
}

func loadCatalog(kind Kind, sources []fs.FS, keys []Key, o options) (*Catalog, error) {
	name := resourceName(kind)
	bundle := i18n.NewBundle(SourceLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	loaded := 0
	for _, fsys := range sources {
		if fsys == nil {
			continue
		}
		files, err := fs.Glob(fsys, name+".*.toml")
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMissingCatalogResource, name, err)
		}
		for _, file := range files {
			if _, err := bundle.LoadMessageFileFS(fsys, file); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrMissingCatalogResource, file, err)
			}
			loaded++
		}
	}
	if loaded == 0 {
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingCatalogResource, name, fs.ErrNotExist)
	}

	c := &Catalog{
		kind:     kind,
		language: o.language,
		bundle:   bundle,
		keys:     append([]Key(nil), keys...),
		byName:   make(map[string]Key, len(keys)),
		formats:  make(map[string]string, len(keys)),
		logger:   o.logger,
	}

	localizer := i18n.NewLocalizer(bundle, o.language.String())
	var missing []string
	for _, key := range c.keys {
		text, _, ok := localize(localizer, key)
		if !ok {
			missing = append(missing, keyName(key))
			continue
		}
		c.byName[key.String()] = key
		c.formats[key.String()] = text
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s: %s", ErrIncompleteCatalog, name, CommaDelimited(missing))
	}
	if err := c.verifyArity(); err != nil {
		return nil, err
	}
	return c, nil
}

// verifyArity checks the entries of every loaded language against the arity
// of their keys.
func (c *Catalog) verifyArity() error {
	var malformed []string
	for _, tag := range c.bundle.LanguageTags() {
		localizer := i18n.NewLocalizer(c.bundle, tag.String())
		for _, key := range c.keys {
			text, found, ok := localize(localizer, key)
			if !ok || found != tag {
				continue
			}
			if n, valid := formatArity(text); !valid || n != key.Arity() {
				malformed = append(malformed, fmt.Sprintf("%s[%s]", key, tag))
			}
		}
	}
	if len(malformed) > 0 {
		return fmt.Errorf("%w: %s: %s", ErrMalformedFormatString, resourceName(c.kind), CommaDelimited(malformed))
	}
	return nil
}

func localize(localizer *i18n.Localizer, key Key) (string, language.Tag, bool) {
	if key == nil {
		return "", language.Und, false
	}
	text, tag, _ := localizer.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: key.String()})
	if tag == language.Und {
		return "", language.Und, false
	}
	return text, tag, true
}

// Kind returns the kind of errors built from the catalog.
func (c *Catalog) Kind() Kind {
	return c.kind
}

// Language returns the language the catalog resolved its entries in.
func (c *Catalog) Language() language.Tag {
	return c.language
}

// Languages returns the languages with at least one catalog file.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// Keys returns the catalog keys in declaration order.
func (c *Catalog) Keys() []Key {
	keys := make([]Key, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// KeyByName returns the key registered under name.
func (c *Catalog) KeyByName(name string) (Key, bool) {
	key, ok := c.byName[name]
	return key, ok
}

// Lookup returns the format string for key.
func (c *Catalog) Lookup(key Key) (string, bool) {
	if key == nil {
		return "", false
	}
	registered, ok := c.byName[key.String()]
	if !ok || registered != key {
		return "", false
	}
	return c.formats[key.String()], true
}

// Entries returns every key with its format string in lang, falling back to
// the catalog language. An empty lang selects the catalog language.
func (c *Catalog) Entries(lang string) []Entry {
	entries := make([]Entry, 0, len(c.keys))
	if lang == "" {
		for _, key := range c.keys {
			entries = append(entries, Entry{Key: key, Format: c.formats[key.String()]})
		}
		return entries
	}
	localizer := i18n.NewLocalizer(c.bundle, lang, c.language.String())
	for _, key := range c.keys {
		text, _, ok := localize(localizer, key)
		if !ok {
			text = c.formats[key.String()]
		}
		entries = append(entries, Entry{Key: key, Format: text})
	}
	return entries
}

// Format looks up key, renders args with PrettyArgs and substitutes them into
// the format string. Arguments missing for the key's arity render as NullArg.
// It fails with ErrUnknownMessageKey for keys outside the catalog and with
// ErrMalformedFormatString for surplus arguments.
func (c *Catalog) Format(key Key, args ...any) (string, error) {
	format, ok := c.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownMessageKey, keyName(key))
	}
	return render(key, format, args)
}

// Localize is Format in another language. lang is a BCP 47 tag; entries
// missing in lang fall back to the catalog language.
func (c *Catalog) Localize(lang string, key Key, args ...any) (string, error) {
	if _, ok := c.Lookup(key); !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownMessageKey, keyName(key))
	}
	localizer := i18n.NewLocalizer(c.bundle, lang, c.language.String())
	format, _, ok := localize(localizer, key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownMessageKey, keyName(key))
	}
	return render(key, format, args)
}

// New builds an error of the catalog's kind from key and args.
// It panics if key is not in the catalog or args exceed its arity.
func (c *Catalog) New(key Key, args ...any) *Error {
	return c.build(nil, key, args)
}

// Wrap is New with a cause attached.
func (c *Catalog) Wrap(cause error, key Key, args ...any) *Error {
	return c.build(cause, key, args)
}

func (c *Catalog) build(cause error, key Key, args []any) *Error {
	message, err := c.Format(key, args...)
	if err != nil {
		panic(err)
	}
	e := &Error{
		kind:       c.kind,
		key:        key,
		message:    message,
		hasMessage: true,
		cause:      cause,
	}
	logConstructed(c.logger, e)
	return e
}
