package output

import (
	"encoding/json"

	"github.com/tsawler/pdfstrings/model"
)

type jsonBBox struct {
	Top    float32 `json:"top"`
	Right  float32 `json:"right"`
	Bottom float32 `json:"bottom"`
	Left   float32 `json:"left"`
}

type jsonSpan struct {
	Text     string   `json:"text"`
	BBox     jsonBBox `json:"bbox"`
	FontSize float32  `json:"font_size"`
	Page     uint32   `json:"page"`
}

type jsonDocument struct {
	LineCount int          `json:"line_count"`
	Pages     []uint32     `json:"pages"`
	Lines     [][]jsonSpan `json:"lines"`
}

// MarshalJSON encodes the document as its lines of spans.
func (d *Document) MarshalJSON() ([]byte, error) {
	doc := jsonDocument{
		LineCount: len(d.lines),
		Pages:     d.Pages(),
		Lines:     make([][]jsonSpan, len(d.lines)),
	}
	if doc.Pages == nil {
		doc.Pages = []uint32{}
	}

	for i, line := range d.lines {
		spans := make([]jsonSpan, len(line))
		for j, span := range line {
			spans[j] = toJSONSpan(span)
		}
		doc.Lines[i] = spans
	}
	return json.Marshal(doc)
}

func toJSONSpan(s model.Span) jsonSpan {
	return jsonSpan{
		Text: s.Text,
		BBox: jsonBBox{
			Top:    s.BBox.Top,
			Right:  s.BBox.Right,
			Bottom: s.BBox.Bottom,
			Left:   s.BBox.Left,
		},
		FontSize: s.FontSize,
		Page:     s.Page,
	}
}
