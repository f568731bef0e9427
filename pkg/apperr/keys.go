package apperr

import "fmt"

// Key identifies one catalog entry.
// String returns the catalog name of the entry and Arity the number of
// arguments its format string consumes.
type Key interface {
	String() string
	Arity() int
}

// MessageKey is the closed set of keys understood by the default catalog.
type MessageKey int

// Message keys of the default catalog.
const (
	MsgNotImplemented MessageKey = iota
	MsgNotSupported
	MsgFailedToInitializeComponent
	MsgUnsupportedDate
	MsgPreGenerated
	MsgMissingResourceBundle
	MsgNoResourceBundle
	MsgInvalidValue
	MsgMissingValue
	MsgInvalidValues
	MsgMissingValues
)

// KeyEntry describes a registered message key.
type KeyEntry struct {
	Key   MessageKey
	Name  string
	Arity int
}

var keyEntries = []KeyEntry{
	{Key: MsgNotImplemented, Name: "MSG_NOT_IMPLEMENTED", Arity: 0},
	{Key: MsgNotSupported, Name: "MSG_NOT_SUPPORTED", Arity: 1},
	{Key: MsgFailedToInitializeComponent, Name: "MSG_FAILED_TO_INITIALIZE_COMPONENT", Arity: 2},
	{Key: MsgUnsupportedDate, Name: "MSG_UNSUPPORTED_DATE", Arity: 1},
	{Key: MsgPreGenerated, Name: "MSG_PRE_GENERATED", Arity: 1},
	{Key: MsgMissingResourceBundle, Name: "MSG_MISSING_RESOURCE_BUNDLE", Arity: 2},
	{Key: MsgNoResourceBundle, Name: "MSG_NO_RESOURCE_BUNDLE", Arity: 0},
	{Key: MsgInvalidValue, Name: "MSG_INVALID_VALUE", Arity: 2},
	{Key: MsgMissingValue, Name: "MSG_MISSING_VALUE", Arity: 1},
	{Key: MsgInvalidValues, Name: "MSG_INVALID_VALUES", Arity: 2},
	{Key: MsgMissingValues, Name: "MSG_MISSING_VALUES", Arity: 1},
}

var keysByName = func() map[string]MessageKey {
	m := make(map[string]MessageKey, len(keyEntries))
	for _, entry := range keyEntries {
		m[entry.Name] = entry.Key
	}
	return m
}()

func (k MessageKey) valid() bool {
	return k >= 0 && int(k) < len(keyEntries)
}

// String returns the catalog name of the key, e.g. "MSG_NOT_IMPLEMENTED".
func (k MessageKey) String() string {
	if !k.valid() {
		return fmt.Sprintf("MessageKey(%d)", int(k))
	}
	return keyEntries[k].Name
}

// Arity returns the number of arguments the key's format string consumes.
func (k MessageKey) Arity() int {
	if !k.valid() {
		return 0
	}
	return keyEntries[k].Arity
}

// KeyRegistry returns the registered message keys in deterministic order.
func KeyRegistry() []KeyEntry {
	entries := make([]KeyEntry, len(keyEntries))
	copy(entries, keyEntries)
	return entries
}

// MessageKeys returns every key of the default catalog.
func MessageKeys() []Key {
	keys := make([]Key, len(keyEntries))
	for i, entry := range keyEntries {
		keys[i] = entry.Key
	}
	return keys
}

// ParseMessageKey returns the key registered under name.
func ParseMessageKey(name string) (MessageKey, bool) {
	k, ok := keysByName[name]
	return k, ok
}

// keyName tolerates a nil Key.
func keyName(k Key) string {
	if k == nil {
		return "<nil>"
	}
	return k.String()
}
