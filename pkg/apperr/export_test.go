package apperr

import "sync"

// resetDefault forgets the default catalog so that a test can load it again.
func resetDefault() {
	defaultOnce = new(sync.Once)
	defaultCatalog = nil
	defaultErr = nil
	loadedDefault.Store(nil)
}
