package svgfilter

// runFlood implements feFlood, spec.md §4.4: a constant-filled image of
// the context's dimensions, {L(r)*a, L(g)*a, L(b)*a, a} where a is
// flood_opacity.
func runFlood(width, height int, color Color, opacity float32) *LinearImage {
	a := clamp01(opacity)
	p := Pixel{
		R: srgbToLinear(color.R) * a,
		G: srgbToLinear(color.G) * a,
		B: srgbToLinear(color.B) * a,
		A: a,
	}
	out := NewLinearImage(width, height)
	for i := range out.Pix {
		out.Pix[i] = p
	}
	return out
}
