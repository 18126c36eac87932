// Package texture decodes image files into tightly packed NRGBA pixels.
package texture

import (
	"fmt"
	"image"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Pix is a decoded image. Data holds W*H NRGBA pixels at Stride bytes per
// row and is invalid once Release has been called.
type Pix struct {
	W, H   int
	Stride int
	Data   []uint8

	// Format is the decoder's name for the source format, e.g. "png".
	Format string
}

// Release drops the pixel memory. Any later use of Data is a bug and will
// fault on the nil slice rather than read stale pixels.
func (p *Pix) Release() { p.Data = nil }

// LoadFile decodes the image at path.
func LoadFile(path string) (*Pix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode decodes image data from r using whichever registered format
// matches, converting to NRGBA.
func Decode(r io.Reader) (*Pix, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("texture: decode: %w", err)
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &Pix{
		W:      b.Dx(),
		H:      b.Dy(),
		Stride: dst.Stride,
		Data:   dst.Pix,
		Format: format,
	}, nil
}

// Fit caps p at max pixels on its long side, downscaling with Lanczos3 and
// preserving aspect. p is returned as-is when already within max.
func Fit(p *Pix, max int) *Pix {
	if max <= 0 || (p.W <= max && p.H <= max) {
		return p
	}
	src := &image.NRGBA{Pix: p.Data, Stride: p.Stride, Rect: image.Rect(0, 0, p.W, p.H)}
	out := resize.Thumbnail(uint(max), uint(max), src, resize.Lanczos3)

	b := out.Bounds()
	dst, ok := out.(*image.NRGBA)
	if !ok {
		dst = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(dst, dst.Bounds(), out, b.Min, draw.Src)
	}
	return &Pix{
		W:      b.Dx(),
		H:      b.Dy(),
		Stride: dst.Stride,
		Data:   dst.Pix,
		Format: p.Format,
	}
}
