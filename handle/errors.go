package handle

import (
	"errors"
	"fmt"
)

// ErrStaleHandle is returned by any operation on a handle that has been
// released.
var ErrStaleHandle = errors.New("extraction handle has been released")

// ErrNoLibrary is returned when acquisition is attempted without an engine.
var ErrNoLibrary = errors.New("no extraction engine configured")

// ExtractionError reports a failed acquisition: a missing or unreadable file,
// a corrupt or unsupported PDF, or a missing or wrong password.
type ExtractionError struct {
	// Source describes what was being opened.
	Source string

	// Message is the engine's error text, verbatim.
	Message string

	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %s", e.Source, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// SpanError reports a failed span read.
type SpanError struct {
	Line    int
	Span    int
	Message string
	Err     error
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("read span %d of line %d: %s", e.Span, e.Line, e.Message)
}

func (e *SpanError) Unwrap() error {
	return e.Err
}

// RenderError reports a failed render call on an open handle.
type RenderError struct {
	// Mode is "plain" or "pretty".
	Mode    string
	Message string
	Err     error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s text: %s", e.Mode, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
