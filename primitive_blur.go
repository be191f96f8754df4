package svgfilter

// runGaussianBlur implements feGaussianBlur, spec.md §4.4. Each axis
// takes its radius from its own field (StdDeviationX, StdDeviationY);
// one field is never copied into the other. An axis whose radius is zero
// is not blurred, and zero on both axes yields a copy of the input.
func runGaussianBlur(in *LinearImage, d PrimitiveDescriptor) *LinearImage {
	rx := gaussianRadius(d.StdDeviationX)
	ry := gaussianRadius(d.StdDeviationY)
	return boxBlurGaussian(in, rx, ry)
}
