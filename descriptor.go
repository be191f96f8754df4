package svgfilter

// PrimitiveKind tags the closed set of filter primitives this evaluator
// supports. A tagged variant plus a single dispatch switch is used
// instead of an inheritance/virtual-render hierarchy, per spec.md §9:
// it keeps PrimitiveDescriptor freely copyable and makes the closed
// primitive set explicit at compile time.
type PrimitiveKind int

const (
	KindGaussianBlur PrimitiveKind = iota
	KindOffset
	KindDropShadow
	KindMerge
	KindFlood
	KindBlend
	KindComposite
	KindColorMatrix
)

// BlendMode is the closed set of SVG blend modes this fork implements
// (spec.md §4.4 Blend names exactly these five).
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendDarken
	BlendLighten
)

// CompositeOperator is the closed set of feComposite operators.
type CompositeOperator int

const (
	CompositeOver CompositeOperator = iota
	CompositeIn
	CompositeOut
	CompositeAtop
	CompositeXor
	CompositeArithmetic
)

// MatrixKind is the closed set of feColorMatrix construction modes.
type MatrixKind int

const (
	MatrixRaw MatrixKind = iota
	MatrixSaturate
	MatrixHueRotate
	MatrixLuminanceToAlpha
)

// Color is an sRGB color with components in [0, 1], used by Flood and
// DropShadow's flood_color parameter.
type Color struct {
	R, G, B float32
}

// PrimitiveDescriptor is the already-parsed, already-resolved
// description of a single filter primitive handed to the evaluator by
// the surrounding renderer. In and In2 are empty to mean "last produced
// result"; Result is empty to mean "unnamed, still becomes last".
type PrimitiveDescriptor struct {
	Kind   PrimitiveKind
	In     string
	In2    string
	Result string

	// GaussianBlur
	StdDeviationX, StdDeviationY float32

	// Offset, DropShadow
	DX, DY float32

	// DropShadow, Flood
	FloodColor   Color
	FloodOpacity float32

	// Merge
	MergeInputs []string

	// Blend
	BlendMode BlendMode

	// Composite
	CompositeOperator CompositeOperator
	K1, K2, K3, K4    float32

	// ColorMatrix. MatrixValues is the raw `values` list: all 20
	// coefficients for MatrixRaw, the single saturation factor for
	// MatrixSaturate, the single rotation angle in degrees for
	// MatrixHueRotate, unused for MatrixLuminanceToAlpha. An empty
	// MatrixValues means "no value supplied", which is not the same as a
	// supplied value of 0 — Saturate(0) and HueRotate(0) are both
	// meaningful, non-default settings.
	MatrixKind   MatrixKind
	MatrixValues []float32
}

// FilterProgram is the flat, ordered list of primitives the surrounding
// renderer resolved for one filter invocation. It cannot form a cycle by
// construction: every primitive refers only to prior names (spec.md
// §4.5 Cycle safety).
type FilterProgram struct {
	Primitives []PrimitiveDescriptor
}
