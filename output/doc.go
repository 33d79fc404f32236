// Package output materializes an extraction result into a Go document model
// and renders it.
//
// [Build] drains every span of an open handle into a [Document] in one pass.
// The Document owns copies of all span data; it keeps only a non-owning
// reference to the handle so it can ask the engine for rendered text:
//
//	doc, err := output.Build(h)
//	if err != nil {
//	    return err
//	}
//	text, err := doc.ToPlainText()
//	pretty, err := doc.ToPrettyText()
//
// Once the handle is closed the spans stay readable, but rendering fails with
// handle.ErrStaleHandle.
//
// Documents can also be written without the engine: [Document.WriteDebug]
// dumps spans with their boxes, [Document.WriteHTML] positions spans
// absolutely per page, and Document implements json.Marshaler.
package output
