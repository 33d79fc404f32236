package pdfstrings

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tsawler/pdfstrings/boundary"
	"github.com/tsawler/pdfstrings/handle"
	"github.com/tsawler/pdfstrings/model"
	"github.com/tsawler/pdfstrings/output"
	"golang.org/x/text/unicode/norm"
)

// Extractor provides a fluent interface for extracting text from one PDF.
// Each configuration method returns a new Extractor instance, making it
// safe to share a partially configured Extractor and allowing method chaining.
type Extractor struct {
	source handle.Source

	// Lifecycle
	h   *handle.Handle // set by Document; owned until Close
	doc *output.Document

	// Configuration
	options ExtractOptions
}

// Result is an extracted document together with the engine result it renders
// from. Close releases the engine result; the structured data stays usable
// but ToPlainText and ToPrettyText then fail with ErrStaleHandle.
type Result struct {
	*output.Document
	h *handle.Handle
}

// ID returns the correlation ID used in log records for this result.
func (r *Result) ID() string {
	return r.h.ID()
}

// Close releases the engine result. It is safe to call Close multiple times.
func (r *Result) Close() error {
	if r == nil {
		return nil
	}
	return r.h.Close()
}

// clone creates a copy of the Extractor's configuration. The handle is not
// carried over: each clone acquires its own.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		source:  e.source,
		options: e.options,
	}
}

// Password opens an encrypted document. An empty password is the same as
// not calling Password.
func (e *Extractor) Password(password string) *Extractor {
	newExt := e.clone()
	newExt.options.password = password
	newExt.options.hasPassword = password != ""
	return newExt
}

// Normalize converts every span's text to the given Unicode normal form.
// norm.NFC is the usual choice.
func (e *Extractor) Normalize(form norm.Form) *Extractor {
	newExt := e.clone()
	newExt.options.normalize = true
	newExt.options.form = form
	return newExt
}

// Library selects the engine. Without it DefaultLibrary is used.
func (e *Extractor) Library(lib *boundary.Library) *Extractor {
	newExt := e.clone()
	newExt.options.library = lib
	return newExt
}

// Logger sets the logger for handle lifecycle and failure records.
func (e *Extractor) Logger(l *slog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = l
	return newExt
}

// Workers limits how many documents ExtractAll processes at once. Values
// below 1 are treated as 1.
func (e *Extractor) Workers(n int) *Extractor {
	newExt := e.clone()
	newExt.options.workers = max(n, 1)
	return newExt
}

func (e *Extractor) library() (*boundary.Library, error) {
	if e.options.library != nil {
		return e.options.library, nil
	}
	return DefaultLibrary()
}

// acquire opens a new handle for the Extractor's source.
func (e *Extractor) acquire() (*handle.Handle, error) {
	lib, err := e.library()
	if err != nil {
		return nil, err
	}
	return handle.Acquire(lib, e.source, e.options.handleOptions()...)
}

// Result extracts the document and hands ownership of the engine result to
// the caller, who must close it.
func (e *Extractor) Result() (*Result, error) {
	h, err := e.acquire()
	if err != nil {
		return nil, err
	}

	doc, err := output.Build(h)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to build document: %w", err), h.Close())
	}
	return &Result{Document: doc, h: h}, nil
}

// Document extracts the document. The engine result stays open, so the
// document can render text, until the Extractor is closed. Calling Document
// again returns the same document.
func (e *Extractor) Document() (*output.Document, error) {
	if e.doc != nil {
		return e.doc, nil
	}

	res, err := e.Result()
	if err != nil {
		return nil, err
	}
	e.h = res.h
	e.doc = res.Document
	return e.doc, nil
}

// With extracts the document, calls fn, and releases the engine result
// however fn returns, including by panic.
func (e *Extractor) With(fn func(doc *output.Document) error) error {
	res, err := e.Result()
	if err != nil {
		return err
	}
	defer res.Close()
	return fn(res.Document)
}

// Close releases the engine result opened by Document.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.h == nil {
		return nil
	}
	err := e.h.Close()
	e.h = nil
	return err
}

// Text returns the engine's plain text: one line per row, spans separated by
// single spaces. This is a terminal operation and closes the Extractor.
func (e *Extractor) Text() (string, error) {
	return e.render(handle.Ref.RenderPlain)
}

// PrettyText returns the engine's layout-preserving text. This is a terminal
// operation and closes the Extractor.
func (e *Extractor) PrettyText() (string, error) {
	return e.render(handle.Ref.RenderPretty)
}

// Lines returns the document's lines of spans. This is a terminal operation
// and closes the Extractor.
func (e *Extractor) Lines() ([]model.Line, error) {
	defer e.Close()

	doc, err := e.Document()
	if err != nil {
		return nil, err
	}
	return doc.Lines(), nil
}

// render renders straight from the handle; no span is read.
func (e *Extractor) render(fn func(handle.Ref) (string, error)) (string, error) {
	defer e.Close()

	if e.h != nil {
		return fn(e.h.Ref())
	}

	h, err := e.acquire()
	if err != nil {
		return "", err
	}
	defer h.Close()
	return fn(h.Ref())
}
