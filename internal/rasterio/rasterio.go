// Package rasterio converts between stdlib image.Image values and the
// tightly-packed B, G, R, A premultiplied raster layout svgfilter's core
// consumes. It registers additional decode formats (TIFF) the way the
// teacher repo's own tiff.go does, generalized from an HDR-specific
// target type to the plain 8-bit Raster this fork's core operates on.
package rasterio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// Raster mirrors svgfilter.Raster's layout without importing the core
// package, keeping this helper package free of a dependency cycle.
type Raster struct {
	Pix    []byte
	Width  int
	Height int
	Stride int
}

// Decode decodes any registered image format (PNG, JPEG, TIFF) into a
// Raster in premultiplied B, G, R, A byte order.
func Decode(data []byte) (Raster, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Raster{}, fmt.Errorf("rasterio: decode: %w", err)
	}
	return FromImage(img), nil
}

// FromImage converts an arbitrary image.Image into a tightly-packed
// premultiplied B, G, R, A Raster. This is a one-time layout conversion
// for the demo CLI's benefit, not the per-primitive resize the core
// itself must never perform. It draws the source through
// golang.org/x/image/draw's CatmullRom scaler into an origin-anchored
// NRGBA of the source's own width and height, so a source whose bounds
// don't start at the origin is moved to (0, 0); no scaling takes place.
func FromImage(img image.Image) Raster {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(nrgba, nrgba.Bounds(), img, b, draw.Src, nil)

	out := Raster{Pix: make([]byte, w*h*4), Width: w, Height: h, Stride: w * 4}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := nrgba.PixOffset(x, y)
			r, g, bch, a := nrgba.Pix[i], nrgba.Pix[i+1], nrgba.Pix[i+2], nrgba.Pix[i+3]
			pr, pg, pb := premultiply(r, a), premultiply(g, a), premultiply(bch, a)
			o := y*out.Stride + x*4
			out.Pix[o], out.Pix[o+1], out.Pix[o+2], out.Pix[o+3] = pb, pg, pr, a
		}
	}
	return out
}

func premultiply(c, a byte) byte {
	return byte(uint32(c) * uint32(a) / 255)
}

// ToImage converts a premultiplied B, G, R, A Raster back into a
// straight-alpha image.NRGBA for encoding with the standard library's
// image/png or image/jpeg packages.
func ToImage(r Raster) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		row := r.Pix[y*r.Stride:]
		for x := 0; x < r.Width; x++ {
			o := x * 4
			bch, g, rch, a := row[o], row[o+1], row[o+2], row[o+3]
			i := out.PixOffset(x, y)
			out.Pix[i] = unpremultiply(rch, a)
			out.Pix[i+1] = unpremultiply(g, a)
			out.Pix[i+2] = unpremultiply(bch, a)
			out.Pix[i+3] = a
		}
	}
	return out
}

func unpremultiply(c, a byte) byte {
	if a == 0 {
		return 0
	}
	v := uint32(c) * 255 / uint32(a)
	if v > 255 {
		v = 255
	}
	return byte(v)
}
