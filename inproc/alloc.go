package inproc

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/tsawler/pdfstrings/boundary"
)

// errNUL is returned by alloc for text that cannot be a C string.
var errNUL = errors.New("text contains a NUL byte")

// cString copies s into foreign memory with a terminating NUL.
func cString(s string) ([]byte, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, errNUL
	}
	buf, err := foreignAlloc(len(s) + 1)
	if err != nil {
		return nil, fmt.Errorf("allocate %d bytes: %w", len(s)+1, err)
	}
	copy(buf, s)
	buf[len(s)] = 0
	return buf, nil
}

func addr(buf []byte) boundary.CStr {
	return boundary.CStr(uintptr(unsafe.Pointer(&buf[0])))
}

// allocator hands out NUL-terminated buffers in foreign memory whose
// addresses cross the boundary as boundary.CStr.
type allocator struct {
	live         map[boundary.CStr][]byte
	allocated    int
	invalidFrees int
}

func newAllocator() *allocator {
	return &allocator{live: make(map[boundary.CStr][]byte)}
}

// alloc copies s into a new buffer. It fails with errNUL if s contains a NUL
// byte.
func (a *allocator) alloc(s string) (boundary.CStr, error) {
	buf, err := cString(s)
	if err != nil {
		return 0, err
	}
	p := addr(buf)
	a.live[p] = buf
	a.allocated++
	return p, nil
}

// free releases p. Null is ignored; an unknown pointer counts as an invalid
// release (double free or foreign pointer).
func (a *allocator) free(p boundary.CStr) {
	if p == 0 {
		return
	}
	buf, ok := a.live[p]
	if !ok {
		a.invalidFrees++
		return
	}
	delete(a.live, p)
	foreignFree(buf)
}

func (a *allocator) outstanding() int {
	return len(a.live)
}
