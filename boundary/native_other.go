//go:build !(darwin || linux || freebsd)

package boundary

import (
	"errors"
	"runtime"
)

// ErrUnsupportedPlatform is wrapped by the LoadError returned on platforms
// without a dynamic loader binding.
var ErrUnsupportedPlatform = errors.New("native engine loading is not supported on " + runtime.GOOS)

// LoadNative always fails on this platform.
func LoadNative(path string) (*Library, error) {
	if path == "" {
		path = FindLibrary()
	}
	return nil, &LoadError{Path: path, Err: ErrUnsupportedPlatform}
}
