package handle

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/tsawler/pdfstrings/boundary"
	"github.com/tsawler/pdfstrings/model"
)

// Handle exclusively owns one engine extraction result.
//
// All methods are safe for concurrent use; a Close never overlaps a query on
// the same handle.
type Handle struct {
	mu     sync.Mutex
	lib    *boundary.Library
	raw    boundary.Handle
	closed bool

	id     string
	source string
	opts   options
	log    *slog.Logger
}

// Acquire opens src through lib using the entry point that matches the source
// kind and whether a password was given.
func Acquire(lib *boundary.Library, src Source, opts ...Option) (*Handle, error) {
	if lib == nil {
		return nil, ErrNoLibrary
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var raw boundary.Handle
	var err error
	if src.inMem {
		raw, err = lib.ExtractBytes(src.data, o.password, o.hasPassword)
	} else {
		raw, err = lib.ExtractPath(src.path, o.password, o.hasPassword)
	}
	if err != nil {
		o.logger.Debug("extraction failed",
			slog.String("engine", lib.Name()),
			slog.String("source", src.String()),
			slog.Any("error", err))
		return nil, &ExtractionError{
			Source:  src.String(),
			Message: engineMessage(err),
			Err:     err,
		}
	}

	h := &Handle{
		lib:    lib,
		raw:    raw,
		id:     uuid.NewString(),
		source: src.String(),
		opts:   o,
	}
	h.log = o.logger.With(slog.String("handle_id", h.id))
	h.log.Debug("handle opened",
		slog.String("engine", lib.Name()),
		slog.String("source", h.source))
	return h, nil
}

// AcquirePath is shorthand for Acquire(lib, Path(path), opts...).
func AcquirePath(lib *boundary.Library, path string, opts ...Option) (*Handle, error) {
	return Acquire(lib, Path(path), opts...)
}

// AcquireBytes is shorthand for Acquire(lib, Bytes(data), opts...).
func AcquireBytes(lib *boundary.Library, data []byte, opts ...Option) (*Handle, error) {
	return Acquire(lib, Bytes(data), opts...)
}

// ID returns the handle's correlation ID.
func (h *Handle) ID() string {
	return h.id
}

// Source describes what the handle was acquired from.
func (h *Handle) Source() string {
	return h.source
}

// Closed reports whether the handle has been released.
func (h *Handle) Closed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

// LineCount returns the number of lines in the result.
func (h *Handle) LineCount() (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.checkOpen("lineCount"); err != nil {
		return 0, err
	}
	return h.lib.LineCount(h.raw), nil
}

// SpanCount returns the number of spans in line i. i must be less than
// LineCount(); the engine's behavior for other indexes is not relied upon.
func (h *Handle) SpanCount(i int) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.checkOpen("lineSpanCount"); err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, fmt.Errorf("line index %d out of range", i)
	}
	return h.lib.SpanCount(h.raw, i), nil
}

// Span reads span j of line i into Go memory. The engine's text buffer has
// been released by the time Span returns.
func (h *Handle) Span(i, j int) (model.Span, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.checkOpen("getSpan"); err != nil {
		return model.Span{}, err
	}
	if i < 0 || j < 0 {
		return model.Span{}, &SpanError{Line: i, Span: j, Message: "negative index"}
	}

	span, err := h.lib.Span(h.raw, i, j)
	if err != nil {
		h.log.Warn("span read failed",
			slog.Int("line", i),
			slog.Int("span", j),
			slog.Any("error", err))
		return model.Span{}, &SpanError{Line: i, Span: j, Message: engineMessage(err), Err: err}
	}
	if h.opts.normalize {
		span.Text = h.opts.form.String(span.Text)
	}
	return span, nil
}

// Close releases the engine result. It is safe to call more than once and on
// a nil handle; only the first call reaches the engine.
func (h *Handle) Close() error {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	raw := h.raw
	h.raw = 0
	if raw == 0 {
		return nil
	}
	if err := h.lib.Release(raw); err != nil {
		return err
	}
	h.log.Debug("handle released")
	return nil
}

// Ref returns a non-owning view of h for rendering.
func (h *Handle) Ref() Ref {
	return Ref{h: h}
}

func (h *Handle) renderPlain() (string, error) {
	return h.render("plain", h.lib.RenderPlain)
}

func (h *Handle) renderPretty() (string, error) {
	return h.render("pretty", h.lib.RenderPretty)
}

func (h *Handle) render(mode string, fn func(boundary.Handle) (string, error)) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.checkOpen("render " + mode); err != nil {
		return "", err
	}

	text, err := fn(h.raw)
	if err != nil {
		h.log.Warn("render failed", slog.String("mode", mode), slog.Any("error", err))
		return "", &RenderError{Mode: mode, Message: engineMessage(err), Err: err}
	}
	return text, nil
}

// checkOpen must be called with mu held.
func (h *Handle) checkOpen(op string) error {
	if h.closed {
		h.log.Warn("operation on released handle", slog.String("op", op))
		return ErrStaleHandle
	}
	return nil
}

// engineMessage extracts the engine's text from a boundary error.
func engineMessage(err error) string {
	var ce *boundary.CallError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return err.Error()
}
