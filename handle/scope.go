package handle

import (
	"errors"

	"github.com/tsawler/pdfstrings/boundary"
)

// With acquires src, calls fn, and releases the handle however fn returns,
// including by panic. An acquisition error is returned without calling fn.
func With(lib *boundary.Library, src Source, fn func(*Handle) error, opts ...Option) (err error) {
	h, err := Acquire(lib, src, opts...)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, h.Close())
	}()

	return fn(h)
}
