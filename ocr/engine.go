package ocr

import (
	"errors"

	"github.com/tsawler/pdfstrings/boundary"
	"github.com/tsawler/pdfstrings/inproc"
	"github.com/tsawler/pdfstrings/model"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// ErrPasswordUnsupported is returned when a password is supplied for an
// image. Images carry no encryption.
var ErrPasswordUnsupported = errors.New("images cannot be opened with a password")

// Recognizer finds words in an encoded image. *Client is a Recognizer.
type Recognizer interface {
	Recognize(imageData []byte) ([]Word, error)
}

// Options tunes image preparation and word filtering.
type Options struct {
	// MinWidth is the width, in pixels, below which images are upscaled
	// before recognition. Zero disables upscaling.
	MinWidth int

	// MinConfidence drops words Tesseract is less sure of (0-100).
	MinConfidence float64
}

// DefaultOptions returns the options used by NewEngine.
func DefaultOptions() Options {
	return Options{
		MinWidth:      1500,
		MinConfidence: 0,
	}
}

// NewEngine returns an extraction engine that recognizes the text of single
// images. Each image is one page, numbered 1, and each recognized word is one
// span with its box in the original image's pixel coordinates.
func NewEngine(r Recognizer) *inproc.Engine {
	return NewEngineWithOptions(r, DefaultOptions())
}

// NewEngineWithOptions is NewEngine with explicit options.
func NewEngineWithOptions(r Recognizer, opts Options) *inproc.Engine {
	return inproc.New(func(in inproc.Input) ([]model.Line, error) {
		if in.HasPassword {
			return nil, ErrPasswordUnsupported
		}

		data, err := inproc.ReadFile(in)
		if err != nil {
			return nil, err
		}

		img, scale, err := prepareImage(data, opts.MinWidth)
		if err != nil {
			return nil, err
		}

		words, err := r.Recognize(img)
		if err != nil {
			return nil, err
		}
		return groupWords(words, scale, opts.MinConfidence), nil
	})
}

// Library wraps NewEngine(r) for use with the handle and root packages.
func Library(r Recognizer) *boundary.Library {
	return boundary.New("tesseract", NewEngine(r))
}
