//go:build darwin || linux || freebsd

package inproc

import "syscall"

// foreignAlloc returns n zeroed bytes of anonymous mapped memory. The memory
// is outside the Go heap, so its address may cross the boundary as a plain
// integer the way a C allocation would.
func foreignAlloc(n int) ([]byte, error) {
	return syscall.Mmap(-1, 0, n, syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_ANON|syscall.MAP_PRIVATE)
}

func foreignFree(b []byte) {
	_ = syscall.Munmap(b)
}
