// Package pdfstrings extracts positioned text from PDF files through a
// pre-built extraction engine and exposes it as lines of spans.
//
// Basic usage:
//
//	text, err := pdfstrings.Open("document.pdf").Text()
//	if err != nil {
//	    // handle error
//	}
//
// Structured access:
//
//	res, err := pdfstrings.FromPath("statement.pdf", "password")
//	if err != nil {
//	    // handle error
//	}
//	defer res.Close()
//	for _, line := range res.Lines() {
//	    for _, span := range line {
//	        fmt.Println(span.Text, span.BBox, span.Page)
//	    }
//	}
//
// The engine is a shared library located through PDFSTRINGS_LIB or a search of
// the usual build output directories. Any boundary.Engine can be used instead
// via Extractor.Library.
package pdfstrings

import (
	"github.com/tsawler/pdfstrings/boundary"
	"github.com/tsawler/pdfstrings/handle"
	"github.com/tsawler/pdfstrings/model"
	"github.com/tsawler/pdfstrings/output"
)

// Aliases for the types callers handle most.
type (
	Document    = output.Document
	Line        = model.Line
	Span        = model.Span
	BoundingBox = model.BoundingBox
)

// Error types. Use errors.As to inspect them.
type (
	ExtractionError = handle.ExtractionError
	SpanError       = handle.SpanError
	RenderError     = handle.RenderError
	LoadError       = boundary.LoadError
)

// ErrStaleHandle is returned when rendering a Document whose Result has been
// closed.
var ErrStaleHandle = handle.ErrStaleHandle

// Open returns an Extractor for the PDF at path.
// The Extractor must be closed when done, either explicitly via Close() or
// implicitly by a terminal operation like Text().
//
// Example:
//
//	text, err := pdfstrings.Open("document.pdf").Text()
func Open(path string) *Extractor {
	return &Extractor{
		source:  handle.Path(path),
		options: defaultOptions(),
	}
}

// Load returns an Extractor for a PDF held in memory. data is only read while
// the engine extracts; it may be reused afterwards.
//
// Example:
//
//	text, err := pdfstrings.Load(body).Password("secret").Text()
func Load(data []byte) *Extractor {
	return &Extractor{
		source:  handle.Bytes(data),
		options: defaultOptions(),
	}
}

// FromPath extracts the PDF at path with the default engine. An optional
// password opens encrypted documents. The Result must be closed.
func FromPath(path string, password ...string) (*Result, error) {
	return withPassword(Open(path), password).Result()
}

// FromBytes is FromPath for a PDF held in memory.
func FromBytes(data []byte, password ...string) (*Result, error) {
	return withPassword(Load(data), password).Result()
}

func withPassword(e *Extractor, password []string) *Extractor {
	if len(password) > 0 {
		return e.Password(password[0])
	}
	return e
}

// With extracts the PDF at path, calls fn with the document, and releases the
// engine's result however fn returns.
//
// Example:
//
//	err := pdfstrings.With("report.pdf", func(doc *pdfstrings.Document) error {
//	    text, err := doc.ToPrettyText()
//	    fmt.Print(text)
//	    return err
//	})
func With(path string, fn func(doc *Document) error) error {
	return Open(path).With(fn)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	text := pdfstrings.Must(pdfstrings.Open("document.pdf").Text())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
