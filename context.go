package svgfilter

// Reserved input names seeded by the evaluator before any primitive runs.
const (
	SourceGraphic = "SourceGraphic"
	SourceAlpha   = "SourceAlpha"
)

// FilterContext is owned by one filter invocation and holds the
// named-result table plus the "last produced result" pointer that an
// empty in/in2 reference resolves to. It is never shared across
// goroutines, so the results map needs no synchronization (spec.md §5).
type FilterContext struct {
	results map[string]*LinearImage
	last    *LinearImage
	width   int
	height  int
}

// newFilterContext seeds SourceGraphic and SourceAlpha and sets last to
// SourceGraphic, per spec.md §4.5.
func newFilterContext(sourceGraphic *LinearImage) *FilterContext {
	ctx := &FilterContext{
		results: make(map[string]*LinearImage, 4),
		last:    sourceGraphic,
		width:   sourceGraphic.Width,
		height:  sourceGraphic.Height,
	}
	ctx.results[SourceGraphic] = sourceGraphic
	ctx.results[SourceAlpha] = sourceAlphaFrom(sourceGraphic)
	return ctx
}

// getInput resolves a primitive's `in` (or `in2`) reference. An empty
// name resolves to the most recently produced result; an unknown name
// resolves to (nil, false), the "not found" case spec.md §3/§7 define.
func (ctx *FilterContext) getInput(name string) (*LinearImage, bool) {
	if name == "" {
		return ctx.last, true
	}
	img, ok := ctx.results[name]
	return img, ok
}

// addResult records img under name (if non-empty) and always advances
// last, per spec.md §4.4's common primitive contract.
func (ctx *FilterContext) addResult(name string, img *LinearImage) {
	if name != "" {
		ctx.results[name] = img
	}
	ctx.last = img
}

// dimensions returns the fixed width/height every primitive output must
// match, per spec.md §3's dimensional invariant.
func (ctx *FilterContext) dimensions() (int, int) {
	return ctx.width, ctx.height
}
