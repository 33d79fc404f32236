package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	// Decoders for the formats scanners commonly produce.
	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// prepareImage decodes data and, when the image is narrower than minWidth,
// upscales it with Catmull-Rom interpolation. Tesseract recognizes small
// glyphs poorly. The result is PNG-encoded along with the scale factor that
// was applied.
func prepareImage(data []byte, minWidth int) ([]byte, float64, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("decode image: %w", err)
	}

	b := src.Bounds()
	if b.Empty() {
		return nil, 0, fmt.Errorf("decode image: %s image is empty", format)
	}

	scale := 1.0
	img := src
	if minWidth > 0 && b.Dx() < minWidth {
		scale = float64(minWidth) / float64(b.Dx())
		dst := image.NewRGBA(image.Rect(0, 0, minWidth, int(float64(b.Dy())*scale+0.5)))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		img = dst
	} else if format == "png" && b.Min == (image.Point{}) {
		return data, scale, nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, 0, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), scale, nil
}
