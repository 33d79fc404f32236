package ocr

// PageSegMode controls how Tesseract analyzes the page layout. Values match
// Tesseract's own numbering.
type PageSegMode int

// Page segmentation modes.
const (
	PSMAuto         PageSegMode = 3  // Fully automatic (default)
	PSMSingleColumn PageSegMode = 4  // Single column of variable sizes
	PSMSingleBlock  PageSegMode = 6  // Single uniform block of text
	PSMSingleLine   PageSegMode = 7  // Single text line
	PSMSparseText   PageSegMode = 11 // Find as much text as possible
)
