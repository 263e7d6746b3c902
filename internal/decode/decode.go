// Package decode turns a source raster file into the straight NRGBA pixel
// buffer vtrace.Trace expects, with an optional Lanczos pre-resize for
// large sources.
package decode

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Raster is a decoded source image reduced to the plain RGBA byte layout
// vtrace.Trace consumes, plus the metadata callers need for a manifest entry.
type Raster struct {
	Pixels   []byte // width*height*4, RGBA, row-major
	Width    int
	Height   int
	Format   string // as reported by image.Decode's format string
	HasAlpha bool
}

// DefaultMaxDimension is the default cap on the width or height passed into
// vtrace.Trace after resizing. A cap of 0 disables resizing.
const DefaultMaxDimension = 2048

// File opens path and decodes it into a Raster. maxDim, if positive, bounds
// the image's longer side via a Lanczos resize before tracing — vectorizing
// a multi-megapixel photo pixel-by-pixel is both slow and rarely what a
// caller wants.
func File(path string, maxDim int) (Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return Raster{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f, maxDim)
}

// Decode reads and decodes an image from r, applying the same optional
// pre-resize as File.
func Decode(r io.Reader, maxDim int) (Raster, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return Raster{}, fmt.Errorf("decode: %w", err)
	}

	if maxDim > 0 {
		img = resizeToFit(img, maxDim)
	}

	nrgba := toNRGBA(img)
	bounds := nrgba.Bounds()

	return Raster{
		Pixels:   nrgba.Pix,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Format:   format,
		HasAlpha: hasAlpha(nrgba),
	}, nil
}

// resizeToFit downsizes img so neither side exceeds maxDim, preserving
// aspect ratio. Images already within bounds pass through unchanged.
func resizeToFit(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}
	if w >= h {
		return imaging.Resize(img, maxDim, 0, imaging.Lanczos)
	}
	return imaging.Resize(img, 0, maxDim, imaging.Lanczos)
}

// toNRGBA normalizes any decoded image.Image to a tightly packed *image.NRGBA
// so Trace always sees straight (non-premultiplied), top-left-origin pixels.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) && n.Stride == n.Bounds().Dx()*4 {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x-b.Min.X, y-b.Min.Y, img.At(x, y))
		}
	}
	return out
}

// Image reconstructs an *image.NRGBA view over Pixels, for callers (such as
// thumbhash.Encode) that want an image.Image rather than a raw buffer.
func (r Raster) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    r.Pixels,
		Stride: r.Width * 4,
		Rect:   image.Rect(0, 0, r.Width, r.Height),
	}
}

func hasAlpha(img *image.NRGBA) bool {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] < 255 {
			return true
		}
	}
	return false
}
