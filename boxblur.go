package svgfilter

import "math"

// gaussianRadius derives the box-blur radius approximating a Gaussian of
// the given per-axis standard deviation, per spec.md §4.3. The formula
// and its two integer truncations (the floor, then the divide-by-two)
// are load-bearing: they are how this fork quantises the analytically
// derived box radius for three successive box passes, and must not be
// replaced with an analytically "nicer" derivation (spec.md §9).
func gaussianRadius(sigma float32) int {
	if sigma <= 0 {
		return 0
	}
	r := int(math.Floor(float64(sigma)*3*math.Sqrt(2*math.Pi)/4 + 0.5))
	return r / 2
}

// boxBlurPass runs one sliding-window mean pass over src into dst, both
// w x h, blurring along rows if horizontal is true, else along columns.
// The window is edge-extended at the strip boundary, and the running sum
// is maintained incrementally: acc += src[right] - src[left] per step,
// seeded from the first edge-extended window. O(w*h) per pass.
func boxBlurPass(src, dst *LinearImage, radius int, horizontal bool) {
	if radius <= 0 {
		copy(dst.Pix, src.Pix)
		return
	}
	w, h := src.Width, src.Height
	window := float32(2*radius + 1)
	inv := 1 / window

	if horizontal {
		for y := 0; y < h; y++ {
			boxBlurStrip(src.Pix[y*w:(y+1)*w], dst.Pix[y*w:(y+1)*w], radius, inv)
		}
		return
	}

	col := make([]Pixel, h)
	out := make([]Pixel, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col[y] = src.Pix[y*w+x]
		}
		boxBlurStrip(col, out, radius, inv)
		for y := 0; y < h; y++ {
			dst.Pix[y*w+x] = out[y]
		}
	}
}

// boxBlurStrip computes the sliding-window mean over a 1-D strip of
// length n = len(src), with edge-extend boundary handling.
func boxBlurStrip(src, dst []Pixel, radius int, inv float32) {
	n := len(src)
	var accR, accG, accB, accA float32
	for k := -radius; k <= radius; k++ {
		p := src[clampToEdge(k, n)]
		accR += p.R
		accG += p.G
		accB += p.B
		accA += p.A
	}
	for i := 0; i < n; i++ {
		dst[i] = Pixel{R: accR * inv, G: accG * inv, B: accB * inv, A: accA * inv}
		if i+1 < n {
			left := src[clampToEdge(i-radius, n)]
			right := src[clampToEdge(i+radius+1, n)]
			accR += right.R - left.R
			accG += right.G - left.G
			accB += right.B - left.B
			accA += right.A - left.A
		}
	}
}

// boxBlurGaussian applies three alternating horizontal/vertical box-blur
// passes per axis (six total when both radii are non-zero) to approximate
// a Gaussian blur, per spec.md §4.3. Axes with a zero radius are skipped.
func boxBlurGaussian(src *LinearImage, rx, ry int) *LinearImage {
	if rx == 0 && ry == 0 {
		out := NewLinearImage(src.Width, src.Height)
		copy(out.Pix, src.Pix)
		return out
	}

	a := NewLinearImage(src.Width, src.Height)
	b := NewLinearImage(src.Width, src.Height)
	copy(a.Pix, src.Pix)

	for pass := 0; pass < 3; pass++ {
		if rx > 0 {
			boxBlurPass(a, b, rx, true)
			a, b = b, a
		}
		if ry > 0 {
			boxBlurPass(a, b, ry, false)
			a, b = b, a
		}
	}
	return a
}
