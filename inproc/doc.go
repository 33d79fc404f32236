// Package inproc runs a Go-implemented extractor behind the boundary.Engine
// contract.
//
// An in-process engine behaves like a native one: it hands out opaque
// handles, returns text in engine-owned NUL-terminated buffers that must be
// released, and records failures in a single last-error slot. Buffers are
// tracked, so [Engine.Stats] can report leaks and invalid releases.
//
// The OCR engine is built on this package, and so are the test fixtures used
// throughout the module:
//
//	eng := inproc.New(inproc.Static{
//	    "invoice.pdf": {Lines: lines},
//	}.Extract)
//	lib := boundary.New("static", eng)
package inproc
