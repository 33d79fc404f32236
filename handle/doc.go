// Package handle owns extraction results held by the engine.
//
// A [Handle] is acquired from a [Source] (a path or an in-memory buffer, with
// or without a password), answers grid queries while open, and is released
// exactly once by [Handle.Close]. Close is idempotent; every operation after
// it fails with [ErrStaleHandle] without reaching the engine.
//
// Other components receive a [Ref], a non-owning view that can render text
// through the handle but cannot close it. Use [With] to guarantee release on
// every exit path:
//
//	err := handle.With(lib, handle.Path("report.pdf"), func(h *handle.Handle) error {
//	    n, err := h.LineCount()
//	    ...
//	})
package handle
