package svgfilter

// runDropShadow implements feDropShadow, spec.md §4.4, as a compound
// primitive built from already-grounded building blocks: a flood-like
// shadow-alpha fill, BoxBlur, Offset, and a Src-Over-shaped composite.
func runDropShadow(in *LinearImage, d PrimitiveDescriptor) *LinearImage {
	shadow := buildShadowAlpha(in, d.FloodColor, d.FloodOpacity)
	rx := gaussianRadius(d.StdDeviationX)
	ry := gaussianRadius(d.StdDeviationY)
	shadow = boxBlurGaussian(shadow, rx, ry)
	shadow = runOffset(shadow, d.DX, d.DY)

	out := NewLinearImage(in.Width, in.Height)
	for i, src := range in.Pix {
		sh := shadow.Pix[i]
		inv := 1 - src.A
		out.Pix[i] = Pixel{
			R: src.R + sh.R*inv,
			G: src.G + sh.G*inv,
			B: src.B + sh.B*inv,
			A: src.A + sh.A*inv,
		}
	}
	return out
}

// buildShadowAlpha builds {r', g', b', a'} where a' = input.a *
// flood_opacity and r', g', b' = L(flood_color) * a', per spec.md §4.4
// DropShadow step 1.
func buildShadowAlpha(in *LinearImage, color Color, opacity float32) *LinearImage {
	lr := srgbToLinear(color.R)
	lg := srgbToLinear(color.G)
	lb := srgbToLinear(color.B)
	out := NewLinearImage(in.Width, in.Height)
	for i, p := range in.Pix {
		a := p.A * opacity
		out.Pix[i] = Pixel{R: lr * a, G: lg * a, B: lb * a, A: a}
	}
	return out
}
