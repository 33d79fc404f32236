package pdfstrings

import (
	"sync"

	"github.com/tsawler/pdfstrings/boundary"
)

var (
	defaultMu  sync.Mutex
	defaultLib *boundary.Library
)

// DefaultLibrary returns the engine used when an Extractor has none set. The
// native library is located with boundary.FindLibrary and loaded on first use.
// A failed load is returned as a *LoadError and retried on the next call.
func DefaultLibrary() (*boundary.Library, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLib != nil {
		return defaultLib, nil
	}
	lib, err := boundary.LoadNative(boundary.FindLibrary())
	if err != nil {
		return nil, err
	}
	defaultLib = lib
	return lib, nil
}

// SetDefaultLibrary replaces the default engine, for example with an OCR
// engine or a preloaded native library. A nil lib restores lazy loading.
func SetDefaultLibrary(lib *boundary.Library) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLib = lib
}
