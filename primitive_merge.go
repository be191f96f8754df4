package svgfilter

// srcOver composites s over d in linear premultiplied space:
// out = s + d * (1 - s.a). This is the default Porter-Duff compositor
// used directly by Merge and as the Normal blend mode; DropShadow
// computes the same formula inline.
func srcOver(s, d Pixel) Pixel {
	inv := 1 - s.A
	return Pixel{
		R: s.R + d.R*inv,
		G: s.G + d.G*inv,
		B: s.B + d.B*inv,
		A: s.A + d.A*inv,
	}
}

// runMerge implements feMerge/feMergeNode, spec.md §4.4: starting from
// transparent black, each named input blends Src-Over into the
// accumulator in order. Unknown references are skipped without error.
func runMerge(ctx *FilterContext, inputs []string) *LinearImage {
	width, height := ctx.dimensions()
	out := NewLinearImage(width, height)
	for _, name := range inputs {
		in, ok := ctx.getInput(name)
		if !ok {
			continue
		}
		for i, s := range in.Pix {
			out.Pix[i] = srcOver(s, out.Pix[i])
		}
	}
	return out
}
