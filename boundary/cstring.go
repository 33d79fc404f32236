package boundary

import "unsafe"

// GoString copies the NUL-terminated buffer at s into a Go string.
// It returns "" for a null pointer. The engine buffer is not released.
func GoString(s CStr) string {
	if s == 0 {
		return ""
	}
	p := unsafe.Pointer(uintptr(s))

	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(p), n))
}
