//go:build !(darwin || linux || freebsd)

package inproc

import (
	"runtime"
	"sync"
)

var (
	pinMu   sync.Mutex
	pinners = make(map[*byte]*runtime.Pinner)
)

// foreignAlloc falls back to pinned Go memory where anonymous mappings are
// not available. Converting these addresses back to pointers is not accepted
// by -d=checkptr.
func foreignAlloc(n int) ([]byte, error) {
	b := make([]byte, n)
	p := new(runtime.Pinner)
	p.Pin(&b[0])

	pinMu.Lock()
	pinners[&b[0]] = p
	pinMu.Unlock()
	return b, nil
}

func foreignFree(b []byte) {
	pinMu.Lock()
	p := pinners[&b[0]]
	delete(pinners, &b[0])
	pinMu.Unlock()
	if p != nil {
		p.Unpin()
	}
}
