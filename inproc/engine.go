package inproc

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/tsawler/pdfstrings/boundary"
	"github.com/tsawler/pdfstrings/gridtext"
	"github.com/tsawler/pdfstrings/model"
)

// Input is one extraction request.
type Input struct {
	// Path is set for path acquisition.
	Path string

	// Data is set for in-memory acquisition.
	Data []byte

	// FromBytes reports whether one of the in-memory entry points was used.
	FromBytes bool

	// Password is meaningful only when HasPassword is set.
	Password    string
	HasPassword bool
}

// ExtractFunc produces the line grid for one input.
type ExtractFunc func(in Input) ([]model.Line, error)

// ErrPasswordRequired may be returned by an ExtractFunc for encrypted input
// opened without a password.
var ErrPasswordRequired = errors.New("document is encrypted and no password was supplied")

// ErrWrongPassword may be returned by an ExtractFunc for a bad password.
var ErrWrongPassword = errors.New("incorrect password")

// Stats describes the engine's resource accounting.
type Stats struct {
	// OpenHandles is the number of handles not yet released.
	OpenHandles int

	// OutstandingBuffers is the number of strings and span texts handed out
	// and not yet released.
	OutstandingBuffers int

	// BuffersAllocated is the total number of buffers ever handed out.
	BuffersAllocated int

	// InvalidReleases counts releases of unknown handles or buffers.
	InvalidReleases int

	// Calls is the total number of entry-point calls, excluding LastError.
	Calls int
}

type result struct {
	lines []model.Line
}

// Engine implements boundary.Engine around an ExtractFunc.
type Engine struct {
	mu      sync.Mutex
	extract ExtractFunc

	results        map[boundary.Handle]*result
	next           boundary.Handle
	invalidHandles int
	calls          int
	alloc          *allocator
	lastErr        []byte // foreign memory, see foreignAlloc
	failRender     map[boundary.Handle]string
	failSpan       map[spanKey]string
}

type spanKey struct {
	h          boundary.Handle
	line, span uint
}

// New returns an engine that runs extract for every acquisition.
func New(extract ExtractFunc) *Engine {
	return &Engine{
		extract:    extract,
		results:    make(map[boundary.Handle]*result),
		alloc:      newAllocator(),
		failRender: make(map[boundary.Handle]string),
		failSpan:   make(map[spanKey]string),
	}
}

// Stats returns a snapshot of the engine's accounting.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Stats{
		OpenHandles:        len(e.results),
		OutstandingBuffers: e.alloc.outstanding(),
		BuffersAllocated:   e.alloc.allocated,
		InvalidReleases:    e.alloc.invalidFrees + e.invalidHandles,
		Calls:              e.calls,
	}
}

// FailRender makes both render calls on h fail with msg.
func (e *Engine) FailRender(h boundary.Handle, msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failRender[h] = msg
}

// FailSpan makes GetSpan(h, line, span) fail with msg.
func (e *Engine) FailSpan(h boundary.Handle, line, span uint, msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failSpan[spanKey{h, line, span}] = msg
}

// LastHandle returns the most recently issued handle, or zero.
func (e *Engine) LastHandle() boundary.Handle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.next
}

// setError must be called with mu held.
func (e *Engine) setError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	buf, err := cString(strings.ReplaceAll(msg, "\x00", ""))
	if err != nil {
		// Out of memory for the message; callers see "unknown error".
		buf = nil
	}
	if e.lastErr != nil {
		foreignFree(e.lastErr)
	}
	e.lastErr = buf
}

func (e *Engine) open(in Input) boundary.Handle {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++

	switch {
	case in.FromBytes && len(in.Data) == 0:
		e.setError("Data pointer is null")
		return 0
	case !in.FromBytes && in.Path == "":
		e.setError("Path pointer is null")
		return 0
	}

	lines, err := e.extract(in)
	if err != nil {
		e.setError("Failed to extract PDF: %v", err)
		return 0
	}

	e.next++
	e.results[e.next] = &result{lines: lines}
	return e.next
}

// lookup must be called with mu held.
func (e *Engine) lookup(h boundary.Handle) (*result, bool) {
	if h == 0 {
		e.setError("Handle is null")
		return nil, false
	}
	r, ok := e.results[h]
	if !ok {
		e.setError("Handle %d is not open", h)
		return nil, false
	}
	return r, true
}

// ExtractFromPath implements boundary.Engine.
func (e *Engine) ExtractFromPath(path string) boundary.Handle {
	return e.open(Input{Path: path})
}

// ExtractFromPathWithPassword implements boundary.Engine.
func (e *Engine) ExtractFromPathWithPassword(path, password string) boundary.Handle {
	return e.open(Input{Path: path, Password: password, HasPassword: true})
}

// ExtractFromBytes implements boundary.Engine.
func (e *Engine) ExtractFromBytes(data []byte) boundary.Handle {
	return e.open(Input{Data: data, FromBytes: true})
}

// ExtractFromBytesWithPassword implements boundary.Engine.
func (e *Engine) ExtractFromBytesWithPassword(data []byte, password string) boundary.Handle {
	return e.open(Input{Data: data, FromBytes: true, Password: password, HasPassword: true})
}

// LineCount implements boundary.Engine.
func (e *Engine) LineCount(h boundary.Handle) uint {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++

	r, ok := e.lookup(h)
	if !ok {
		return 0
	}
	return uint(len(r.lines))
}

// LineSpanCount implements boundary.Engine.
func (e *Engine) LineSpanCount(h boundary.Handle, line uint) uint {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++

	r, ok := e.lookup(h)
	if !ok {
		return 0
	}
	if line >= uint(len(r.lines)) {
		e.setError("Line index %d out of bounds", line)
		return 0
	}
	return uint(len(r.lines[line]))
}

// GetSpan implements boundary.Engine.
func (e *Engine) GetSpan(h boundary.Handle, line, span uint, out *boundary.SpanC) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++

	r, ok := e.lookup(h)
	if !ok {
		return -1
	}
	if out == nil {
		e.setError("Output pointer is null")
		return -1
	}
	if msg, ok := e.failSpan[spanKey{h, line, span}]; ok {
		e.setError("%s", msg)
		return -1
	}
	if line >= uint(len(r.lines)) {
		e.setError("Line index %d out of bounds", line)
		return -1
	}
	if span >= uint(len(r.lines[line])) {
		e.setError("Span index %d out of bounds", span)
		return -1
	}

	s := r.lines[line][span]
	text, err := e.alloc.alloc(s.Text)
	if errors.Is(err, errNUL) {
		// Text that cannot be a C string is delivered empty.
		text, err = e.alloc.alloc("")
	}
	if err != nil {
		e.setError("Failed to allocate span text: %v", err)
		return -1
	}
	*out = boundary.SpanC{
		Text: text,
		BBox: boundary.BBoxC{
			T: s.BBox.Top,
			R: s.BBox.Right,
			B: s.BBox.Bottom,
			L: s.BBox.Left,
		},
		FontSize: s.FontSize,
		Page:     s.Page,
	}
	return 0
}

// RenderPlain implements boundary.Engine.
func (e *Engine) RenderPlain(h boundary.Handle) boundary.CStr {
	return e.render(h, gridtext.Plain)
}

// RenderPretty implements boundary.Engine.
func (e *Engine) RenderPretty(h boundary.Handle) boundary.CStr {
	return e.render(h, gridtext.Pretty)
}

func (e *Engine) render(h boundary.Handle, fn func([]model.Line) string) boundary.CStr {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++

	r, ok := e.lookup(h)
	if !ok {
		return 0
	}
	if msg, ok := e.failRender[h]; ok {
		e.setError("%s", msg)
		return 0
	}

	s, err := e.alloc.alloc(fn(r.lines))
	if err != nil {
		e.setError("Failed to convert text to C string: %v", err)
		return 0
	}
	return s
}

// ReleaseString implements boundary.Engine.
func (e *Engine) ReleaseString(s boundary.CStr) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	e.alloc.free(s)
}

// ReleaseSpanText implements boundary.Engine.
func (e *Engine) ReleaseSpanText(s boundary.CStr) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	e.alloc.free(s)
}

// ReleaseHandle implements boundary.Engine.
func (e *Engine) ReleaseHandle(h boundary.Handle) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++

	if h == 0 {
		return
	}
	if _, ok := e.results[h]; !ok {
		e.invalidHandles++
		return
	}
	delete(e.results, h)
	delete(e.failRender, h)
}

// LastError implements boundary.Engine. The returned buffer is borrowed and
// stays valid until the next failing call.
func (e *Engine) LastError() boundary.CStr {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lastErr == nil {
		return 0
	}
	return addr(e.lastErr)
}

// ReadFile is the default way for an ExtractFunc to resolve a path input.
func ReadFile(in Input) ([]byte, error) {
	if in.FromBytes {
		return in.Data, nil
	}
	return os.ReadFile(in.Path)
}
