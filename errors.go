package svgfilter

import "errors"

// Sentinel errors, checkable with errors.Is, following the teacher's own
// errors.New + fmt.Errorf("%w", ...) convention (rebase.go, resize.go,
// split_join.go) rather than a third-party error package — none appears
// anywhere in the retrieved corpus.
var (
	// ErrInvalidDimensions is returned when a source raster's extents are
	// not strictly positive.
	ErrInvalidDimensions = errors.New("svgfilter: invalid raster dimensions")

	// ErrRegionTooLarge is returned when EvalOptions.MaxPixels is set and
	// the source raster's pixel count exceeds it. The invocation is
	// aborted before any primitive runs; the caller gets back the
	// unsuccessful result described in spec.md §7, with the source
	// raster unchanged.
	ErrRegionTooLarge = errors.New("svgfilter: filter region exceeds configured maximum")
)
