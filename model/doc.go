// Package model defines the value types produced by text extraction: spans of
// text with their position on the page, grouped into lines.
//
// All types in this package are plain values. They hold no reference to the
// extraction engine and remain valid after the engine handle they were read
// from has been released.
//
// # Geometry
//
// A [BoundingBox] stores the four edges of a span as reported by the engine.
// The coordinate space (units, axis orientation) is defined by the engine and
// is not validated here. The reference engine reports PDF points with the
// origin at the top-left of the page, so Top <= Bottom, but callers should not
// rely on that for other engines.
//
// # Text
//
//   - [Span] - one run of text at one position on one page
//   - [Line] - spans in the engine's reading order
package model
