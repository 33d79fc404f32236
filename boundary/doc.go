// Package boundary defines the call contract between Go and a text
// extraction engine, and the only code that is allowed to invoke it.
//
// An [Engine] is the raw set of entry points: four acquisition calls, four
// grid queries, two renderers, three release calls and a last-error query.
// Values crossing the boundary are pointer-sized integers. A zero [Handle] or
// [CStr] is the engine's null.
//
// Host code never calls an Engine directly. [Library] wraps it and, for every
// call, holds a process-wide lock and pins the calling goroutine to its OS
// thread until the engine's last-error slot has been read, so a failing call
// is always paired with its own message. Library also copies every
// engine-owned string into Go memory and hands it back to the matching
// release call before returning.
//
// The native engine is loaded with [LoadNative], which uses purego and does
// not require cgo:
//
//	lib, err := boundary.LoadNative("")
//	if err != nil {
//	    log.Fatal(err) // *boundary.LoadError
//	}
package boundary
