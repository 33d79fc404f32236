// Package gridtext renders lines of positioned spans as text.
//
// [Plain] joins the spans of each line with a single space. [Pretty] places
// every span on a monospace character grid derived from its bounding box, so
// indentation and table columns survive:
//
//	Invoice                                   #1042
//	Widgets          4                        $12.00
//	Total                                     $48.00
//
// Right-aligned columns (amounts, page numbers) are detected across the whole
// document with [RightAlignedColumns] and are aligned on their right edge
// instead of their left edge.
//
// In-process engines use this package to implement their render entry
// points. Host code renders through the engine instead.
package gridtext
