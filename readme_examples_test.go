package pdfstrings_test

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/tsawler/pdfstrings"
	"github.com/tsawler/pdfstrings/boundary"
	"golang.org/x/text/unicode/norm"
)

// These examples verify the README code samples compile correctly.
// They are not meant to be run as actual tests since they require the
// native engine and PDF files.

func Example_extractText() {
	text, err := pdfstrings.Open("document.pdf").Text()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(text)
}

func Example_prettyText() {
	text, err := pdfstrings.Open("invoice.pdf").
		Password("secret").
		PrettyText()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(text)
}

func Example_spans() {
	res, err := pdfstrings.FromPath("document.pdf")
	if err != nil {
		log.Fatal(err)
	}
	defer res.Close()

	for i, line := range res.Lines() {
		for _, span := range line {
			fmt.Printf("line %d page %d %s %q (%.1fpt)\n",
				i, span.Page, span.BBox, span.Text, span.FontSize)
		}
	}
}

func Example_formatting() {
	err := pdfstrings.With("document.pdf", func(doc *pdfstrings.Document) error {
		fmt.Printf("%s", doc)  // plain text
		fmt.Printf("%#s", doc) // layout-preserving text
		return doc.WriteDebug(os.Stdout)
	})
	if err != nil {
		log.Fatal(err)
	}
}

func Example_fromBytes() {
	data, err := os.ReadFile("document.pdf")
	if err != nil {
		log.Fatal(err)
	}

	lines, err := pdfstrings.Load(data).Normalize(norm.NFC).Lines()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(lines), "lines")
}

func Example_customLibrary() {
	lib, err := boundary.LoadNative("/opt/pdfstrings/libpdf_strings_ffi.so")
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	text, err := pdfstrings.Open("document.pdf").
		Library(lib).
		Logger(logger).
		Text()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(text)
}

func Example_batch() {
	paths := []string{"a.pdf", "b.pdf", "c.pdf"}

	err := pdfstrings.ExtractAll(context.Background(), pdfstrings.Open("").Workers(4), paths,
		func(path string, r *pdfstrings.Result) error {
			fmt.Println(path, r.LineCount(), "lines")
			return nil
		})
	if err != nil {
		log.Fatal(err)
	}
}
