package handle

// Ref is a non-owning reference to a Handle. It can render text while the
// handle is open and reports ErrStaleHandle afterwards. A Ref never releases
// the handle.
//
// The zero Ref refers to no handle and behaves as a released one.
type Ref struct {
	h *Handle
}

// Valid reports whether the referenced handle is still open.
func (r Ref) Valid() bool {
	return r.h != nil && !r.h.Closed()
}

// Closed reports whether the referenced handle has been released. The zero Ref
// reports true.
func (r Ref) Closed() bool {
	return !r.Valid()
}

// ID returns the referenced handle's correlation ID, or "".
func (r Ref) ID() string {
	if r.h == nil {
		return ""
	}
	return r.h.id
}

// RenderPlain returns the engine's plain text for the referenced handle.
func (r Ref) RenderPlain() (string, error) {
	if r.h == nil {
		return "", ErrStaleHandle
	}
	return r.h.renderPlain()
}

// RenderPretty returns the engine's layout-preserving text for the referenced
// handle.
func (r Ref) RenderPretty() (string, error) {
	if r.h == nil {
		return "", ErrStaleHandle
	}
	return r.h.renderPretty()
}
