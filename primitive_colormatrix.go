package svgfilter

import "math"

// luminance weights used by Saturate, HueRotate, and LuminanceToAlpha,
// per the standard SVG formulas spec.md §4.4 ColorMatrix names.
const (
	lumaR = 0.2125
	lumaG = 0.7154
	lumaB = 0.0721

	saturateLumaR = 0.213
	saturateLumaG = 0.715
	saturateLumaB = 0.072
)

// ColorMatrix is a row-major 4x5 matrix: 4 output rows (R, G, B, A),
// each a linear combination of (r, g, b, a, 1). Exported so callers can
// build the Saturate/HueRotate/LuminanceToAlpha matrices directly — a
// spec-compliant ergonomic addition, not a new primitive kind — without
// going through a PrimitiveDescriptor.
type ColorMatrix [20]float32

// buildColorMatrix constructs the 4x5 matrix for the requested kind and
// parameters, per spec.md §4.4 ColorMatrix. The default for Saturate (1)
// and HueRotate (0) applies only when MatrixValues is empty, i.e. no
// value was supplied at all — an explicitly supplied 0 is not the
// default and must take effect (spec.md §4.4, scenario S3).
func buildColorMatrix(d PrimitiveDescriptor) ColorMatrix {
	switch d.MatrixKind {
	case MatrixSaturate:
		s := float32(1)
		if len(d.MatrixValues) > 0 {
			s = d.MatrixValues[0]
		}
		return NewSaturateMatrix(s)
	case MatrixHueRotate:
		var degrees float32
		if len(d.MatrixValues) > 0 {
			degrees = d.MatrixValues[0]
		}
		return NewHueRotateMatrix(degrees)
	case MatrixLuminanceToAlpha:
		return NewLuminanceToAlphaMatrix()
	default:
		return newRawMatrix(d.MatrixValues)
	}
}

// newRawMatrix takes the first 20 supplied values; fewer than 20 yields
// the all-zero matrix.
func newRawMatrix(values []float32) ColorMatrix {
	var m ColorMatrix
	if len(values) < 20 {
		return m
	}
	copy(m[:], values[:20])
	return m
}

// NewSaturateMatrix builds the standard SVG saturation matrix for
// saturation factor s.
func NewSaturateMatrix(s float32) ColorMatrix {
	return ColorMatrix{
		(1-s)*saturateLumaR + s, (1 - s) * saturateLumaG, (1 - s) * saturateLumaB, 0, 0,
		(1 - s) * saturateLumaR, (1-s)*saturateLumaG + s, (1 - s) * saturateLumaB, 0, 0,
		(1 - s) * saturateLumaR, (1 - s) * saturateLumaG, (1-s)*saturateLumaB + s, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// NewHueRotateMatrix builds the standard SVG 4x5 hue-rotation matrix for
// angle degrees.
func NewHueRotateMatrix(degrees float32) ColorMatrix {
	theta := float64(degrees) * math.Pi / 180
	c := float32(math.Cos(theta))
	s := float32(math.Sin(theta))
	return ColorMatrix{
		saturateLumaR + c*(1-saturateLumaR) - s*saturateLumaR,
		saturateLumaG - c*saturateLumaG - s*saturateLumaG,
		saturateLumaB - c*saturateLumaB + s*(1-saturateLumaB),
		0, 0,

		saturateLumaR - c*saturateLumaR + s*0.143,
		saturateLumaG + c*(1-saturateLumaG) + s*0.140,
		saturateLumaB - c*saturateLumaB - s*0.283,
		0, 0,

		saturateLumaR - c*saturateLumaR - s*(1-saturateLumaR),
		saturateLumaG - c*saturateLumaG + s*saturateLumaG,
		saturateLumaB + c*(1-saturateLumaB) + s*saturateLumaB,
		0, 0,

		0, 0, 0, 1, 0,
	}
}

// NewLuminanceToAlphaMatrix builds the matrix that zeroes R, G, B and
// sets alpha to the standard luminance weighting of the input RGB.
func NewLuminanceToAlphaMatrix() ColorMatrix {
	return ColorMatrix{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		lumaR, lumaG, lumaB, 0, 0,
	}
}

// runColorMatrix implements feColorMatrix, spec.md §4.4: per pixel
// (skipped, i.e. left transparent black, when s.a == 0), unpremultiply
// RGB by alpha, apply the matrix, clamp and repremultiply by the new
// alpha.
func runColorMatrix(in *LinearImage, d PrimitiveDescriptor) *LinearImage {
	m := buildColorMatrix(d)
	out := NewLinearImage(in.Width, in.Height)
	for i, p := range in.Pix {
		if p.A == 0 {
			continue
		}
		r, g, b := p.R/p.A, p.G/p.A, p.B/p.A
		a := p.A

		na := clamp01(m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19])
		nr := m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]
		ng := m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]
		nb := m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]

		out.Pix[i] = Pixel{R: nr * na, G: ng * na, B: nb * na, A: na}
	}
	return out
}
