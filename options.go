package pdfstrings

import (
	"log/slog"
	"runtime"

	"github.com/tsawler/pdfstrings/boundary"
	"github.com/tsawler/pdfstrings/handle"
	"golang.org/x/text/unicode/norm"
)

// ExtractOptions holds configuration for extraction.
type ExtractOptions struct {
	// Encryption
	password    string
	hasPassword bool

	// Text post-processing
	normalize bool
	form      norm.Form

	// Engine and diagnostics; nil means the default engine and no logging
	library *boundary.Library
	logger  *slog.Logger

	// Batch parallelism
	workers int
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		workers: runtime.GOMAXPROCS(0),
	}
}

// handleOptions translates the options for handle.Acquire.
func (o ExtractOptions) handleOptions() []handle.Option {
	var opts []handle.Option
	if o.hasPassword {
		opts = append(opts, handle.WithPassword(o.password))
	}
	if o.normalize {
		opts = append(opts, handle.WithNormalization(o.form))
	}
	if o.logger != nil {
		opts = append(opts, handle.WithLogger(o.logger))
	}
	return opts
}
