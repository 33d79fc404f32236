package inproc

import (
	"fmt"

	"github.com/tsawler/pdfstrings/model"
)

// Document is a pre-built extraction result served by Static.
type Document struct {
	// Lines is returned for every successful acquisition.
	Lines []model.Line

	// Password, when non-empty, must be supplied to open the document.
	Password string
}

// Static serves fixed documents keyed by path. In-memory inputs are looked up
// by their content, so Static{"%PDF-1.7 ...": doc} also serves FromBytes.
type Static map[string]Document

// Extract is an ExtractFunc.
func (s Static) Extract(in Input) ([]model.Line, error) {
	key := in.Path
	if in.FromBytes {
		key = string(in.Data)
	}

	doc, ok := s[key]
	if !ok {
		if in.FromBytes {
			return nil, fmt.Errorf("PDF error: invalid file header")
		}
		return nil, fmt.Errorf("IO error: %s: no such file or directory", in.Path)
	}

	if doc.Password != "" {
		if !in.HasPassword {
			return nil, ErrPasswordRequired
		}
		if in.Password != doc.Password {
			return nil, ErrWrongPassword
		}
	}

	lines := make([]model.Line, len(doc.Lines))
	for i, line := range doc.Lines {
		lines[i] = line.Clone()
	}
	return lines, nil
}
