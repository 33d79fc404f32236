package boundary

import (
	"errors"
	"runtime"
	"sync"

	"github.com/tsawler/pdfstrings/model"
)

// callMu serializes every engine call in the process. The engine's error slot
// is shared state with no synchronization of its own.
var callMu sync.Mutex

// Library is the guarded entry point to an Engine. Every method performs one
// engine call (plus its error read or buffer release) as a single critical
// section. A Library is safe for concurrent use.
type Library struct {
	eng  Engine
	name string
}

// New wraps eng. The name is used in log records and errors.
func New(name string, eng Engine) *Library {
	return &Library{eng: eng, name: name}
}

// Name returns the name the library was created with.
func (l *Library) Name() string {
	return l.name
}

// do runs fn with the process-wide lock held and the goroutine pinned to its
// OS thread, so an engine that keeps its last error in thread-local storage
// still sees the read on the same thread as the failing call.
func (l *Library) do(fn func()) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	callMu.Lock()
	defer callMu.Unlock()
	fn()
}

// lastError must be called with callMu held.
func (l *Library) lastError(op string) error {
	msg := GoString(l.eng.LastError())
	if msg == "" {
		msg = UnknownError
	}
	return &CallError{Op: op, Message: msg}
}

// ExtractPath calls extractFromPath, or extractFromPathWithPassword when
// withPassword is set.
func (l *Library) ExtractPath(path, password string, withPassword bool) (Handle, error) {
	var h Handle
	var err error
	l.do(func() {
		op := "extractFromPath"
		if withPassword {
			op = "extractFromPathWithPassword"
			h = l.eng.ExtractFromPathWithPassword(path, password)
		} else {
			h = l.eng.ExtractFromPath(path)
		}
		if h == 0 {
			err = l.lastError(op)
		}
	})
	return h, err
}

// ExtractBytes calls extractFromBytes, or extractFromBytesWithPassword when
// withPassword is set.
func (l *Library) ExtractBytes(data []byte, password string, withPassword bool) (Handle, error) {
	var h Handle
	var err error
	l.do(func() {
		op := "extractFromBytes"
		if withPassword {
			op = "extractFromBytesWithPassword"
			h = l.eng.ExtractFromBytesWithPassword(data, password)
		} else {
			h = l.eng.ExtractFromBytes(data)
		}
		if h == 0 {
			err = l.lastError(op)
		}
	})
	return h, err
}

// LineCount returns the number of lines in h.
func (l *Library) LineCount(h Handle) int {
	var n uint
	l.do(func() {
		n = l.eng.LineCount(h)
	})
	return int(n)
}

// SpanCount returns the number of spans in line i of h.
func (l *Library) SpanCount(h Handle, i int) int {
	var n uint
	l.do(func() {
		n = l.eng.LineSpanCount(h, uint(i))
	})
	return int(n)
}

// Span reads span j of line i. The engine's text buffer is copied and
// released before Span returns.
func (l *Library) Span(h Handle, i, j int) (model.Span, error) {
	var out SpanC
	var span model.Span
	var err error
	l.do(func() {
		if rc := l.eng.GetSpan(h, uint(i), uint(j), &out); rc != 0 {
			// out is not written on failure; nothing to release.
			err = l.lastError("getSpan")
			return
		}
		text := GoString(out.Text)
		if out.Text != 0 {
			l.eng.ReleaseSpanText(out.Text)
		}
		span = model.Span{
			Text: text,
			BBox: model.BoundingBox{
				Top:    out.BBox.T,
				Right:  out.BBox.R,
				Bottom: out.BBox.B,
				Left:   out.BBox.L,
			},
			FontSize: out.FontSize,
			Page:     out.Page,
		}
	})
	return span, err
}

// RenderPlain returns the engine's plain text rendering of h.
func (l *Library) RenderPlain(h Handle) (string, error) {
	return l.render("renderPlain", h, l.eng.RenderPlain)
}

// RenderPretty returns the engine's layout-preserving rendering of h.
func (l *Library) RenderPretty(h Handle) (string, error) {
	return l.render("renderPretty", h, l.eng.RenderPretty)
}

func (l *Library) render(op string, h Handle, fn func(Handle) CStr) (string, error) {
	var text string
	var err error
	l.do(func() {
		s := fn(h)
		if s == 0 {
			err = l.lastError(op)
			return
		}
		text = GoString(s)
		l.eng.ReleaseString(s)
	})
	return text, err
}

// ErrNullHandle is returned by Release for a zero handle.
var ErrNullHandle = errors.New("boundary: null handle")

// Release frees h. The engine does not guard against a null or repeated
// release, so callers must track ownership; a zero handle is rejected here.
func (l *Library) Release(h Handle) error {
	if h == 0 {
		return ErrNullHandle
	}
	l.do(func() {
		l.eng.ReleaseHandle(h)
	})
	return nil
}
