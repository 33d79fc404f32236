package ocr

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tsawler/pdfstrings/boundary"
	"github.com/tsawler/pdfstrings/model"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// createTestPNG creates a white image with a black rectangle.
func createTestPNG(width, height int) []byte {
	var buf bytes.Buffer
	_ = png.Encode(&buf, testImage(width, height))
	return buf.Bytes()
}

func testImage(width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	for x := width / 10; x < width/2; x++ {
		for y := height / 5; y < height/2; y++ {
			img.Set(x, y, color.Black)
		}
	}
	return img
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}

// fakeRecognizer returns fixed words and records the image it was given.
type fakeRecognizer struct {
	words []Word
	err   error
	got   []byte
}

func (f *fakeRecognizer) Recognize(data []byte) ([]Word, error) {
	f.got = data
	return f.words, f.err
}

func TestGroupWords(t *testing.T) {
	words := []Word{
		{Text: "Hello", Box: image.Rect(10, 20, 60, 40), Confidence: 95, Block: 1, Paragraph: 1, Line: 1},
		{Text: "world", Box: image.Rect(70, 20, 120, 40), Confidence: 90, Block: 1, Paragraph: 1, Line: 1},
		{Text: "  ", Box: image.Rect(130, 20, 140, 40), Confidence: 90, Block: 1, Paragraph: 1, Line: 1},
		{Text: "noise", Box: image.Rect(0, 0, 5, 5), Confidence: 10, Block: 1, Paragraph: 1, Line: 2},
		{Text: "Next", Box: image.Rect(10, 60, 50, 80), Confidence: 88, Block: 1, Paragraph: 2, Line: 1},
	}

	got := groupWords(words, 2, 50)
	want := []model.Line{
		{
			{Text: "Hello", BBox: model.BoundingBox{Top: 10, Right: 30, Bottom: 20, Left: 5}, FontSize: 10, Page: 1},
			{Text: "world", BBox: model.BoundingBox{Top: 10, Right: 60, Bottom: 20, Left: 35}, FontSize: 10, Page: 1},
		},
		{
			{Text: "Next", BBox: model.BoundingBox{Top: 30, Right: 25, Bottom: 40, Left: 5}, FontSize: 10, Page: 1},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("groupWords mismatch (-want +got):\n%s", diff)
	}

	if lines := groupWords(nil, 1, 0); lines != nil {
		t.Errorf("groupWords(nil) = %v, want nil", lines)
	}
}

func TestPrepareImage(t *testing.T) {
	src := createTestPNG(100, 50)

	out, scale, err := prepareImage(src, 0)
	if err != nil {
		t.Fatal(err)
	}
	if scale != 1 || !bytes.Equal(out, src) {
		t.Errorf("PNG without upscaling should pass through, scale = %v", scale)
	}

	out, scale, err = prepareImage(src, 400)
	if err != nil {
		t.Fatal(err)
	}
	if scale != 4 {
		t.Errorf("scale = %v, want 4", scale)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 400 || cfg.Height != 200 {
		t.Errorf("upscaled size = %dx%d, want 400x200", cfg.Width, cfg.Height)
	}

	if _, _, err := prepareImage([]byte("not an image"), 0); err == nil {
		t.Error("expected decode error")
	}
}

func TestPrepareImageFormats(t *testing.T) {
	img := testImage(80, 40)

	var tiffBuf, bmpBuf bytes.Buffer
	if err := tiff.Encode(&tiffBuf, img, nil); err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(&bmpBuf, img); err != nil {
		t.Fatal(err)
	}

	for name, data := range map[string][]byte{"tiff": tiffBuf.Bytes(), "bmp": bmpBuf.Bytes()} {
		out, _, err := prepareImage(data, 0)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if _, err := png.DecodeConfig(bytes.NewReader(out)); err != nil {
			t.Errorf("%s: output is not PNG: %v", name, err)
		}
	}
}

func TestEngine(t *testing.T) {
	rec := &fakeRecognizer{words: []Word{
		{Text: "Scanned", Box: image.Rect(40, 40, 200, 80), Confidence: 91, Block: 1, Paragraph: 1, Line: 1},
		{Text: "page", Box: image.Rect(220, 40, 300, 80), Confidence: 93, Block: 1, Paragraph: 1, Line: 1},
	}}
	lib := boundary.New("test", NewEngineWithOptions(rec, Options{MinWidth: 0}))

	h, err := lib.ExtractBytes(createTestPNG(320, 120), "", false)
	if err != nil {
		t.Fatal(err)
	}
	defer lib.Release(h)

	if n := lib.LineCount(h); n != 1 {
		t.Fatalf("LineCount = %d, want 1", n)
	}
	text, err := lib.RenderPlain(h)
	if err != nil {
		t.Fatal(err)
	}
	if text != "Scanned page\n" {
		t.Errorf("RenderPlain = %q", text)
	}
	if len(rec.got) == 0 {
		t.Error("recognizer was not called")
	}
}

func TestEngineErrors(t *testing.T) {
	boom := errors.New("tesseract crashed")
	lib := Library(&fakeRecognizer{err: boom})

	if _, err := lib.ExtractBytes(createTestPNG(10, 10), "secret", true); err == nil ||
		!contains(err.Error(), ErrPasswordUnsupported.Error()) {
		t.Errorf("password: got %v", err)
	}
	if _, err := lib.ExtractBytes(createTestPNG(10, 10), "", false); err == nil ||
		!contains(err.Error(), "tesseract crashed") {
		t.Errorf("recognizer failure: got %v", err)
	}
	if _, err := lib.ExtractPath("/no/such/scan.png", "", false); err == nil {
		t.Error("missing file should fail")
	}
	if _, err := lib.ExtractBytes([]byte("garbage"), "", false); err == nil ||
		!contains(err.Error(), "decode image") {
		t.Errorf("garbage: got %v", err)
	}
}
