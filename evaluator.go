package svgfilter

import (
	"context"
	"fmt"
	"log/slog"
)

// Raster is an 8-bit sRGB-premultiplied raster, byte order B, G, R, A
// per pixel, as produced by the generic SVG painter. Stride is in bytes
// and may exceed 4*Width for alignment; the core never resizes it.
type Raster struct {
	Pix    []byte
	Width  int
	Height int
	Stride int
}

func (r Raster) extents() Extents {
	return Extents{Width: r.Width, Height: r.Height, Stride: r.Stride}
}

// EvalOptions configures one ApplyFilter invocation. The zero value is a
// valid, unconfigured set of options: no pixel cap and no observer.
// Logging is not configured here; ApplyFilter always logs through the
// package-level logger (see SetLogger).
type EvalOptions struct {
	// MaxPixels caps Width*Height; zero means unlimited. This is the
	// evaluator's own realization of the "caller must cap work
	// externally" responsibility spec.md §5 describes: a convenience,
	// not a replacement for the caller's own region intersection.
	MaxPixels int

	// OnPrimitive, if set, is called after each primitive in document
	// order with its zero-based index and descriptor, for diagnostics
	// and tests.
	OnPrimitive func(index int, d PrimitiveDescriptor)
}

// Option mutates an EvalOptions, following the teacher's own
// functional-options convention (ResizeOptions, DecodeOptions,
// EncodeOptions in resize.go/encode_decode.go).
type Option func(*EvalOptions)

// WithMaxPixels sets EvalOptions.MaxPixels.
func WithMaxPixels(n int) Option {
	return func(o *EvalOptions) { o.MaxPixels = n }
}

// WithPrimitiveObserver sets EvalOptions.OnPrimitive.
func WithPrimitiveObserver(fn func(index int, d PrimitiveDescriptor)) Option {
	return func(o *EvalOptions) { o.OnPrimitive = fn }
}

// ApplyFilter is the one logical operation this package exposes: it
// converts src to the linear-light intermediate representation, walks
// program.Primitives in document order exactly once, and converts the
// final result back to an sRGB-premultiplied raster matching src's
// dimensions and byte layout (spec.md §6).
//
// ctx is checked once at entry; a caller that passes an already
// cancelled context gets ctx.Err() back without any work being done.
// No primitive itself is cancellable: a single invocation is
// synchronous and non-suspending throughout (spec.md §5).
//
// Every primitive evaluates in linear light regardless of any
// color-interpolation-filters hint the caller might otherwise have
// honored; this fork does not special-case sRGB-space evaluation
// (spec.md §9).
func ApplyFilter(ctx context.Context, program FilterProgram, src Raster, opts ...Option) (Raster, error) {
	if err := ctx.Err(); err != nil {
		return src, err
	}
	if src.Width <= 0 || src.Height <= 0 {
		return src, ErrInvalidDimensions
	}

	var o EvalOptions
	for _, apply := range opts {
		apply(&o)
	}
	log := Logger()

	if o.MaxPixels > 0 && src.Width*src.Height > o.MaxPixels {
		return src, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrRegionTooLarge, src.Width, src.Height, o.MaxPixels)
	}

	sourceGraphic := rasterToLinear(src.Pix, src.extents())
	fctx := newFilterContext(sourceGraphic)

	for i, d := range program.Primitives {
		result, resultName, ok := evalPrimitive(fctx, d, log)
		if ok {
			fctx.addResult(resultName, result)
		}
		if o.OnPrimitive != nil {
			o.OnPrimitive(i, d)
		}
	}

	out := Raster{
		Pix:    make([]byte, len(src.Pix)),
		Width:  src.Width,
		Height: src.Height,
		Stride: src.Stride,
	}
	linearToRaster(fctx.last, out.Pix, out.extents())
	return out, nil
}

// evalPrimitive resolves a primitive's inputs and dispatches on Kind,
// returning (output, resultName, true), or (nil, "", false) when a
// required input failed to resolve — spec.md §7's missing-input policy:
// no output, last does not advance, no error.
func evalPrimitive(fctx *FilterContext, d PrimitiveDescriptor, log *slog.Logger) (*LinearImage, string, bool) {
	switch d.Kind {
	case KindGaussianBlur:
		in, ok := fctx.getInput(d.In)
		if !ok {
			log.Warn("svgfilter: unresolved input, primitive skipped", "kind", "GaussianBlur", "in", d.In)
			return nil, "", false
		}
		log.Debug("svgfilter: primitive", "kind", "GaussianBlur", "in", d.In, "result", d.Result)
		return runGaussianBlur(in, d), d.Result, true

	case KindOffset:
		in, ok := fctx.getInput(d.In)
		if !ok {
			log.Warn("svgfilter: unresolved input, primitive skipped", "kind", "Offset", "in", d.In)
			return nil, "", false
		}
		log.Debug("svgfilter: primitive", "kind", "Offset", "in", d.In, "result", d.Result)
		return runOffset(in, d.DX, d.DY), d.Result, true

	case KindDropShadow:
		in, ok := fctx.getInput(d.In)
		if !ok {
			log.Warn("svgfilter: unresolved input, primitive skipped", "kind", "DropShadow", "in", d.In)
			return nil, "", false
		}
		log.Debug("svgfilter: primitive", "kind", "DropShadow", "in", d.In, "result", d.Result)
		return runDropShadow(in, d), d.Result, true

	case KindMerge:
		log.Debug("svgfilter: primitive", "kind", "Merge", "inputs", len(d.MergeInputs), "result", d.Result)
		return runMerge(fctx, d.MergeInputs), d.Result, true

	case KindFlood:
		w, h := fctx.dimensions()
		log.Debug("svgfilter: primitive", "kind", "Flood", "result", d.Result)
		return runFlood(w, h, d.FloodColor, d.FloodOpacity), d.Result, true

	case KindBlend:
		in, ok := fctx.getInput(d.In)
		if !ok {
			log.Warn("svgfilter: unresolved input, primitive skipped", "kind", "Blend", "in", d.In)
			return nil, "", false
		}
		in2, ok := fctx.getInput(d.In2)
		if !ok {
			log.Warn("svgfilter: unresolved input, primitive skipped", "kind", "Blend", "in2", d.In2)
			return nil, "", false
		}
		log.Debug("svgfilter: primitive", "kind", "Blend", "in", d.In, "in2", d.In2, "result", d.Result)
		return runBlend(in, in2, d.BlendMode), d.Result, true

	case KindComposite:
		in, ok := fctx.getInput(d.In)
		if !ok {
			log.Warn("svgfilter: unresolved input, primitive skipped", "kind", "Composite", "in", d.In)
			return nil, "", false
		}
		in2, ok := fctx.getInput(d.In2)
		if !ok {
			log.Warn("svgfilter: unresolved input, primitive skipped", "kind", "Composite", "in2", d.In2)
			return nil, "", false
		}
		log.Debug("svgfilter: primitive", "kind", "Composite", "in", d.In, "in2", d.In2, "result", d.Result)
		return runComposite(in, in2, d.CompositeOperator, d.K1, d.K2, d.K3, d.K4), d.Result, true

	case KindColorMatrix:
		in, ok := fctx.getInput(d.In)
		if !ok {
			log.Warn("svgfilter: unresolved input, primitive skipped", "kind", "ColorMatrix", "in", d.In)
			return nil, "", false
		}
		log.Debug("svgfilter: primitive", "kind", "ColorMatrix", "in", d.In, "result", d.Result)
		return runColorMatrix(in, d), d.Result, true

	default:
		return nil, "", false
	}
}
