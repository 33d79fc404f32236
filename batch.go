package pdfstrings

import (
	"context"

	"github.com/tsawler/pdfstrings/handle"
	"golang.org/x/sync/errgroup"
)

// ExtractAll extracts every path with base's configuration, at most
// base.Workers at a time, and calls fn with each result. The result is closed
// when fn returns. base's own source is ignored; a nil base uses the defaults.
//
// fn may be called concurrently. The first error stops documents that have
// not started yet and is returned; ctx is checked before each document.
func ExtractAll(ctx context.Context, base *Extractor, paths []string, fn func(path string, r *Result) error) error {
	if base == nil {
		base = Open("")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(base.options.workers, 1))

	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			e := base.clone()
			e.source = handle.Path(path)

			res, err := e.Result()
			if err != nil {
				return err
			}
			defer res.Close()

			return fn(path, res)
		})
	}
	return g.Wait()
}
