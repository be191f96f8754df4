package svgfilter

import "math"

// roundHalfAwayFromZero matches the teacher's own int(x + 0.5) style
// float-to-int snap (seen throughout rebase.go), generalized to handle
// negative offsets.
func roundHalfAwayFromZero(v float32) int {
	if v >= 0 {
		return int(math.Floor(float64(v) + 0.5))
	}
	return -int(math.Floor(-float64(v) + 0.5))
}

// runOffset implements feOffset, spec.md §4.4. Output pixel (x, y)
// equals input pixel (x - round(dx), y - round(dy)) when that source
// pixel is in bounds, else transparent black. There is no edge-extend
// here, unlike BoxBlur.
func runOffset(in *LinearImage, dx, dy float32) *LinearImage {
	out := NewLinearImage(in.Width, in.Height)
	idx := roundHalfAwayFromZero(dx)
	idy := roundHalfAwayFromZero(dy)
	for y := 0; y < in.Height; y++ {
		sy := y - idy
		if sy < 0 || sy >= in.Height {
			continue
		}
		for x := 0; x < in.Width; x++ {
			sx := x - idx
			if sx < 0 || sx >= in.Width {
				continue
			}
			out.Set(x, y, in.At(sx, sy))
		}
	}
	return out
}
