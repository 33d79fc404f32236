// Command pdfstrings prints the text of PDF files, or serves extraction over
// HTTP.
//
// Usage:
//
//	pdfstrings [flags] <pdf>...
//	pdfstrings serve
//
// Configuration is read from the environment and .env; see internal/config.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/pdfstrings"
	"github.com/tsawler/pdfstrings/boundary"
	"github.com/tsawler/pdfstrings/internal/config"
	"github.com/tsawler/pdfstrings/internal/server"
	"github.com/tsawler/pdfstrings/ocr"
)

var formats = []string{"plain", "pretty", "debug", "json", "html"}

type options struct {
	paths     []string
	password  string
	format    string
	normalize bool
	engine    string
	serve     bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdfstrings: %v\n", err)
		os.Exit(2)
	}
	opts, err := parseFlags(os.Args[1:], cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdfstrings: %v\n", err)
		os.Exit(2)
	}

	logger := cfg.Logger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, opts, logger, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "pdfstrings: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, cfg *config.Config) (options, error) {
	return parseFlagsTo(os.Stderr, args, cfg)
}

// parseFlagsTo parses args, writing usage and flag errors to output.
func parseFlagsTo(output io.Writer, args []string, cfg *config.Config) (options, error) {
	var opts options

	fs := flag.NewFlagSet("pdfstrings", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: pdfstrings [flags] <pdf>...\n       pdfstrings serve\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.password, "password", "", "Password to open encrypted PDFs")
	fs.StringVar(&opts.format, "format", "plain", "Output format: plain, pretty, debug, json or html")
	fs.BoolVar(&opts.normalize, "nfc", false, "Normalize span text to Unicode NFC")
	fs.StringVar(&opts.engine, "engine", cfg.Engine, "Extraction engine: native or ocr")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch opts.engine {
	case config.EngineNative, config.EngineOCR:
	default:
		return options{}, fmt.Errorf("unknown engine %q", opts.engine)
	}

	if fs.NArg() == 1 && fs.Arg(0) == "serve" {
		opts.serve = true
		return opts, nil
	}

	if !validFormat(opts.format) {
		return options{}, fmt.Errorf("unknown format %q", opts.format)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return options{}, errors.New("missing pdf path")
	}
	opts.paths = fs.Args()
	return opts, nil
}

func validFormat(format string) bool {
	return slices.Contains(formats, format)
}

type ocrSettings interface {
	SetLanguage(lang string) error
	SetPageSegMode(mode ocr.PageSegMode) error
}

func configureOCR(c ocrSettings, cfg *config.Config) error {
	if err := c.SetLanguage(cfg.OCRLang); err != nil {
		return fmt.Errorf("set OCR language: %w", err)
	}
	if err := c.SetPageSegMode(ocr.PageSegMode(cfg.OCRPSM)); err != nil {
		return fmt.Errorf("set OCR page segmentation mode: %w", err)
	}
	return nil
}

// openLibrary loads the configured engine. The returned function releases it.
func openLibrary(cfg *config.Config, engine string) (*boundary.Library, func() error, error) {
	if engine == config.EngineOCR {
		client, err := ocr.New()
		if err != nil {
			return nil, nil, err
		}
		if err := configureOCR(client, cfg); err != nil {
			client.Close()
			return nil, nil, err
		}
		return ocr.Library(client), client.Close, nil
	}

	path := cfg.LibraryPath
	if path == "" {
		path = boundary.FindLibrary()
	}
	lib, err := boundary.LoadNative(path)
	if err != nil {
		return nil, nil, err
	}
	return lib, func() error { return nil }, nil
}

func run(ctx context.Context, cfg *config.Config, opts options, logger *slog.Logger, stdout io.Writer) error {
	lib, closeLib, err := openLibrary(cfg, opts.engine)
	if err != nil {
		return err
	}
	defer closeLib()

	logger.Debug("engine loaded", slog.String("engine", lib.Name()))

	if opts.serve {
		return serve(ctx, cfg, lib, logger)
	}
	return extract(ctx, lib, opts, cfg.Workers, logger, stdout)
}

func serve(ctx context.Context, cfg *config.Config, lib *boundary.Library, logger *slog.Logger) error {
	srv := server.New(cfg, lib, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// extract writes every path in order. With more than one path each document
// is preceded by a "==> path <==" header.
func extract(ctx context.Context, lib *boundary.Library, opts options, workers int, logger *slog.Logger, stdout io.Writer) error {
	base := pdfstrings.Open("").Library(lib).Logger(logger).Workers(workers).Password(opts.password)
	if opts.normalize {
		base = base.Normalize(norm.NFC)
	}

	var mu sync.Mutex
	outputs := make(map[string][]byte, len(opts.paths))
	err := pdfstrings.ExtractAll(ctx, base, opts.paths, func(path string, r *pdfstrings.Result) error {
		var buf bytes.Buffer
		if err := writeDocument(&buf, opts.format, r.Document); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		mu.Lock()
		outputs[path] = buf.Bytes()
		mu.Unlock()
		return nil
	})
	if err != nil {
		return err
	}

	for i, path := range opts.paths {
		if len(opts.paths) > 1 {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			fmt.Fprintf(stdout, "==> %s <==\n", path)
		}
		if _, err := stdout.Write(outputs[path]); err != nil {
			return err
		}
	}
	return nil
}

func writeDocument(w io.Writer, format string, doc *pdfstrings.Document) error {
	switch format {
	case "plain", "pretty":
		render := doc.ToPlainText
		if format == "pretty" {
			render = doc.ToPrettyText
		}
		text, err := render()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, text)
		return err
	case "debug":
		return doc.WriteDebug(w)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "html":
		if err := doc.WriteHTML(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
