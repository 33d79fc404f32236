package ocr

import (
	"image"
	"strings"

	"github.com/tsawler/pdfstrings/model"
)

// Word is one recognized word. Box is in the pixel coordinates of the image
// that was recognized.
type Word struct {
	Text       string
	Box        image.Rectangle
	Confidence float64

	// Block, Paragraph and Line identify the text line the word belongs to.
	Block     int
	Paragraph int
	Line      int
}

type lineKey struct {
	block, paragraph, line int
}

// groupWords turns words into lines of spans, one span per word. Words are
// expected in reading order; a new line starts whenever the block, paragraph
// or line number changes. Boxes are divided by scale to undo any upscaling,
// and words below minConfidence or without text are dropped.
func groupWords(words []Word, scale, minConfidence float64) []model.Line {
	if scale <= 0 {
		scale = 1
	}

	var lines []model.Line
	var current model.Line
	var key lineKey
	started := false

	for _, w := range words {
		text := strings.TrimSpace(w.Text)
		if text == "" || w.Confidence < minConfidence {
			continue
		}

		k := lineKey{w.Block, w.Paragraph, w.Line}
		if started && k != key {
			lines = append(lines, current)
			current = nil
		}
		key = k
		started = true

		box := scaleBox(w.Box, scale)
		current = append(current, model.Span{
			Text:     text,
			BBox:     box,
			FontSize: box.Height(),
			Page:     1,
		})
	}
	if started {
		lines = append(lines, current)
	}
	return lines
}

func scaleBox(r image.Rectangle, scale float64) model.BoundingBox {
	return model.BoundingBox{
		Top:    float32(float64(r.Min.Y) / scale),
		Right:  float32(float64(r.Max.X) / scale),
		Bottom: float32(float64(r.Max.Y) / scale),
		Left:   float32(float64(r.Min.X) / scale),
	}
}
