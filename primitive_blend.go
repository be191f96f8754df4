package svgfilter

// runBlend implements feBlend, spec.md §4.4, for the five modes this
// fork supports: Normal, Multiply, Screen, Darken, Lighten.
func runBlend(s, d *LinearImage, mode BlendMode) *LinearImage {
	out := NewLinearImage(s.Width, s.Height)
	for i := range out.Pix {
		out.Pix[i] = blendPixel(s.Pix[i], d.Pix[i], mode)
	}
	return out
}

func blendPixel(s, d Pixel, mode BlendMode) Pixel {
	if mode == BlendNormal {
		return srcOver(s, d)
	}

	sr, sg, sb := unpremultiplyGuarded(s)
	dr, dg, db := unpremultiplyGuarded(d)

	br := blendFunc(sr, dr, mode)
	bg := blendFunc(sg, dg, mode)
	bb := blendFunc(sb, db, mode)

	sa, da := s.A, d.A
	return Pixel{
		R: br*sa*da + s.R*(1-da) + d.R*(1-sa),
		G: bg*sa*da + s.G*(1-da) + d.G*(1-sa),
		B: bb*sa*da + s.B*(1-da) + d.B*(1-sa),
		A: sa + da - sa*da,
	}
}

// unpremultiplyGuarded divides p's RGB by its own alpha, returning zero
// per channel when alpha is zero (the divide-by-zero guard spec.md
// §4.4 Blend calls for).
func unpremultiplyGuarded(p Pixel) (r, g, b float32) {
	if p.A == 0 {
		return 0, 0, 0
	}
	return p.R / p.A, p.G / p.A, p.B / p.A
}

func blendFunc(s, d float32, mode BlendMode) float32 {
	switch mode {
	case BlendMultiply:
		return s * d
	case BlendScreen:
		return s + d - s*d
	case BlendDarken:
		if s < d {
			return s
		}
		return d
	case BlendLighten:
		if s > d {
			return s
		}
		return d
	default:
		return s
	}
}
