package output

import (
	"fmt"

	"github.com/tsawler/pdfstrings/handle"
	"github.com/tsawler/pdfstrings/model"
)

// Document is a frozen snapshot of an extraction result.
type Document struct {
	lines []model.Line
	ref   handle.Ref
}

// Build reads the full line and span grid of h. It does not close h, even on
// failure; the first span error is returned as is.
func Build(h *handle.Handle) (*Document, error) {
	lineCount, err := h.LineCount()
	if err != nil {
		return nil, err
	}

	lines := make([]model.Line, lineCount)
	for i := 0; i < lineCount; i++ {
		spanCount, err := h.SpanCount(i)
		if err != nil {
			return nil, err
		}

		line := make(model.Line, 0, spanCount)
		for j := 0; j < spanCount; j++ {
			span, err := h.Span(i, j)
			if err != nil {
				return nil, err
			}
			line = append(line, span)
		}
		lines[i] = line
	}

	return &Document{lines: lines, ref: h.Ref()}, nil
}

// NewDocument returns a document over lines with no engine behind it.
// Rendering such a document fails with handle.ErrStaleHandle.
func NewDocument(lines []model.Line) *Document {
	out := make([]model.Line, len(lines))
	for i, line := range lines {
		out[i] = line.Clone()
	}
	return &Document{lines: out}
}

// Lines returns a copy of the document's lines.
func (d *Document) Lines() []model.Line {
	out := make([]model.Line, len(d.lines))
	for i, line := range d.lines {
		out[i] = line.Clone()
	}
	return out
}

// Line returns a copy of line i. It panics if i is out of range.
func (d *Document) Line(i int) model.Line {
	return d.lines[i].Clone()
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// SpanCount returns the total number of spans across all lines.
func (d *Document) SpanCount() int {
	n := 0
	for _, line := range d.lines {
		n += len(line)
	}
	return n
}

// Spans returns all spans in line order.
func (d *Document) Spans() []model.Span {
	out := make([]model.Span, 0, d.SpanCount())
	for _, line := range d.lines {
		out = append(out, line...)
	}
	return out
}

// Pages returns the page numbers that appear in the document, in the order
// they are first seen.
func (d *Document) Pages() []uint32 {
	seen := make(map[uint32]bool)
	var pages []uint32
	for _, line := range d.lines {
		for _, span := range line {
			if !seen[span.Page] {
				seen[span.Page] = true
				pages = append(pages, span.Page)
			}
		}
	}
	return pages
}

// Renderable reports whether the engine handle behind the document is still
// open.
func (d *Document) Renderable() bool {
	return d.ref.Valid()
}

// ToPlainText asks the engine for plain text: one line per row, spans
// separated by spaces.
func (d *Document) ToPlainText() (string, error) {
	return d.ref.RenderPlain()
}

// ToPrettyText asks the engine for text that preserves the page layout.
func (d *Document) ToPrettyText() (string, error) {
	return d.ref.RenderPretty()
}

// String returns the plain text, or "" if rendering fails.
func (d *Document) String() string {
	text, err := d.ToPlainText()
	if err != nil {
		return ""
	}
	return text
}

// Format implements fmt.Formatter. %s and %v print plain text; the '#' flag
// (%#s, %#v) prints the layout-preserving text. Rendering errors are printed
// as %!s(ERROR=...).
func (d *Document) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
	default:
		fmt.Fprintf(f, "%%!%c(*output.Document)", verb)
		return
	}

	render := d.ToPlainText
	if f.Flag('#') {
		render = d.ToPrettyText
	}

	text, err := render()
	if err != nil {
		fmt.Fprintf(f, "%%!%c(ERROR=%v)", verb, err)
		return
	}
	fmt.Fprint(f, text)
}
