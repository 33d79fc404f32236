package output

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WriteHTML writes the document as an HTML fragment: one relatively
// positioned <div class="page"> per page containing one absolutely positioned
// <span> per text span. Coordinates are used as CSS pixels and assume the
// engine's top-down orientation. Span text is escaped by the renderer.
func (d *Document) WriteHTML(w io.Writer) error {
	root := element(atom.Div, attr("class", "pdfstrings-document"))

	type pageBox struct {
		node          *html.Node
		width, height float32
	}
	pages := make(map[uint32]*pageBox)

	for i, line := range d.lines {
		for _, span := range line {
			pb, ok := pages[span.Page]
			if !ok {
				pb = &pageBox{node: element(atom.Div,
					attr("class", "page"),
					attr("data-page", strconv.FormatUint(uint64(span.Page), 10)),
				)}
				pages[span.Page] = pb
				root.AppendChild(pb.node)
			}
			if span.BBox.Right > pb.width {
				pb.width = span.BBox.Right
			}
			if span.BBox.Bottom > pb.height {
				pb.height = span.BBox.Bottom
			}

			s := element(atom.Span,
				attr("class", "span"),
				attr("data-line", strconv.Itoa(i)),
				attr("style", fmt.Sprintf("position:absolute;left:%.1fpx;top:%.1fpx;font-size:%.1fpx",
					span.BBox.Left, span.BBox.Top, span.FontSize)),
			)
			s.AppendChild(&html.Node{Type: html.TextNode, Data: span.Text})
			pb.node.AppendChild(s)
		}
	}

	for _, pb := range pages {
		pb.node.Attr = append(pb.node.Attr, attr("style",
			fmt.Sprintf("position:relative;width:%.1fpx;height:%.1fpx", pb.width, pb.height)))
	}

	return html.Render(w, root)
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}
