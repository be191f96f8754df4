package svgfilter

import (
	"math"
	"sync"
)

// Extents describes the layout of an external 8-bit raster: width and
// height in pixels, and stride in bytes between the start of one row and
// the next. Stride may exceed 4*Width for alignment.
type Extents struct {
	Width, Height, Stride int
}

// srgbToLinear converts a single sRGB channel value in [0, 1] to linear
// light. Grounded on the teacher's srgbInvOetf.
func srgbToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return float32(math.Pow(float64((c+0.055)/1.055), 2.4))
}

// linearToSRGB converts a single linear-light channel value in [0, 1] to
// sRGB. Grounded on the teacher's srgbOetf.
func linearToSRGB(c float32) float32 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*float32(math.Pow(float64(c), 1.0/2.4)) - 0.055
}

var (
	srgbToLinearTableOnce sync.Once
	srgbToLinearTable     [256]float32
)

// initSRGBToLinearTable lazily builds the 256-entry sRGB-to-linear lookup
// table once, in the same one-time-init style as the teacher's
// weightsCache/workerSemOnce globals in resize_interpolation.go. The
// table is read-only after this point and is the only process-wide
// shared state in the package, safe to read concurrently across
// independent ApplyFilter calls per spec.
func initSRGBToLinearTable() {
	srgbToLinearTableOnce.Do(func() {
		for i := range srgbToLinearTable {
			srgbToLinearTable[i] = srgbToLinear(float32(i) / 255)
		}
	})
}

// rasterToLinear converts an 8-bit sRGB-premultiplied raster (byte order
// B, G, R, A per pixel) into a LinearImage. Implements spec.md §4.1
// Raster -> LinearImage.
func rasterToLinear(pix []byte, ext Extents) *LinearImage {
	initSRGBToLinearTable()

	img := NewLinearImage(ext.Width, ext.Height)
	for y := 0; y < ext.Height; y++ {
		row := pix[y*ext.Stride:]
		for x := 0; x < ext.Width; x++ {
			o := x * 4
			bb, gg, rr, aa := row[o], row[o+1], row[o+2], row[o+3]
			a := float32(aa) / 255
			if a == 0 {
				continue // already transparent black
			}
			r := unpremultiplyByte(rr, aa)
			g := unpremultiplyByte(gg, aa)
			b := unpremultiplyByte(bb, aa)
			img.Set(x, y, Pixel{
				R: srgbToLinearTable[clampByteIndex(r)] * a,
				G: srgbToLinearTable[clampByteIndex(g)] * a,
				B: srgbToLinearTable[clampByteIndex(b)] * a,
				A: a,
			})
		}
	}
	return img
}

// unpremultiplyByte divides a premultiplied byte channel by its alpha
// byte, returning a byte-scale result still in [0, 255].
func unpremultiplyByte(c, a byte) float32 {
	return float32(c) * 255 / float32(a)
}

func clampByteIndex(v float32) int {
	i := int(v + 0.5)
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return i
}

// linearToRaster converts a LinearImage back into an 8-bit
// sRGB-premultiplied raster of the given extents, writing into pix.
// Implements spec.md §4.1 LinearImage -> Raster.
func linearToRaster(img *LinearImage, pix []byte, ext Extents) {
	for y := 0; y < ext.Height; y++ {
		row := pix[y*ext.Stride:]
		for x := 0; x < ext.Width; x++ {
			o := x * 4
			p := img.At(x, y)
			a := clamp01(p.A)
			if a < 1e-4 {
				row[o], row[o+1], row[o+2], row[o+3] = 0, 0, 0, 0
				continue
			}
			r := clamp01(p.R / a)
			g := clamp01(p.G / a)
			b := clamp01(p.B / a)
			r = linearToSRGB(r) * a
			g = linearToSRGB(g) * a
			b = linearToSRGB(b) * a
			row[o] = toByteRound(b)
			row[o+1] = toByteRound(g)
			row[o+2] = toByteRound(r)
			row[o+3] = toByteRound(a)
		}
	}
}

func toByteRound(v float32) byte {
	i := int(v*255 + 0.5)
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return byte(i)
}

// sourceAlphaFrom derives SourceAlpha from src by zeroing r, g, b while
// preserving alpha, per spec.md §4.5.
func sourceAlphaFrom(src *LinearImage) *LinearImage {
	out := NewLinearImage(src.Width, src.Height)
	for i, p := range src.Pix {
		out.Pix[i] = Pixel{A: p.A}
	}
	return out
}
