package svgfilter

import (
	"context"
	"testing"
)

func TestApplyFilterEmptyProgramIsRoundTrip(t *testing.T) {
	src := solidRaster(16, 16, 10, 20, 200, 255)
	out, err := ApplyFilter(context.Background(), FilterProgram{}, src)
	if err != nil {
		t.Fatalf("ApplyFilter: %v", err)
	}
	for i, want := range src.Pix {
		got := out.Pix[i]
		if d := int(got) - int(want); d < -1 || d > 1 {
			t.Fatalf("byte %d: got %d want %d", i, got, want)
		}
	}
}

func TestApplyFilterRejectsOversizedRegion(t *testing.T) {
	src := solidRaster(100, 100, 0, 0, 0, 255)
	_, err := ApplyFilter(context.Background(), FilterProgram{}, src, WithMaxPixels(100))
	if err == nil {
		t.Fatal("expected ErrRegionTooLarge, got nil")
	}
}

func TestApplyFilterRejectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := solidRaster(4, 4, 0, 0, 0, 255)
	_, err := ApplyFilter(ctx, FilterProgram{}, src)
	if err == nil {
		t.Fatal("expected context error, got nil")
	}
}

// TestBlurOnlyScenario mirrors spec scenario S1: after blurring a uniform
// opaque red raster, the center pixel is still strongly red.
func TestBlurOnlyScenario(t *testing.T) {
	src := solidRaster(100, 100, 0, 0, 255, 255) // opaque red
	program := FilterProgram{Primitives: []PrimitiveDescriptor{
		{Kind: KindGaussianBlur, StdDeviationX: 2, StdDeviationY: 2},
	}}
	out, err := ApplyFilter(context.Background(), program, src)
	if err != nil {
		t.Fatalf("ApplyFilter: %v", err)
	}
	center := (50*100 + 50) * 4
	if out.Pix[center+2] < 200 { // R channel still strongly red
		t.Fatalf("center R channel = %d, expected still strongly red", out.Pix[center+2])
	}
}

// TestDropShadowScenario mirrors spec scenario S2.
func TestDropShadowScenario(t *testing.T) {
	w, h := 50, 50
	src := solidRaster(w, h, 0, 0, 0, 0)
	for y := 20; y < 30; y++ {
		for x := 20; x < 30; x++ {
			o := (y*w + x) * 4
			src.Pix[o], src.Pix[o+1], src.Pix[o+2], src.Pix[o+3] = 255, 255, 255, 255
		}
	}
	program := FilterProgram{Primitives: []PrimitiveDescriptor{
		{
			Kind: KindDropShadow,
			DX:   2, DY: 2,
			StdDeviationX: 1.5, StdDeviationY: 1.5,
			FloodColor:   Color{0, 0, 0},
			FloodOpacity: 0.5,
		},
	}}
	out, err := ApplyFilter(context.Background(), program, src)
	if err != nil {
		t.Fatalf("ApplyFilter: %v", err)
	}
	o := (25*w + 25) * 4
	if out.Pix[o+3] != 255 {
		t.Fatalf("square alpha = %d, want 255 (fully opaque, unshifted)", out.Pix[o+3])
	}
	shadowOffset := (31*w + 31) * 4 // just past the square's corner, in the shifted+blurred shadow's reach
	if out.Pix[shadowOffset+3] == 0 {
		t.Fatalf("expected some shadow alpha near the offset shadow region, got fully transparent")
	}
}

// TestMergeOverFloodScenario mirrors spec scenario S5.
func TestMergeOverFloodScenario(t *testing.T) {
	w, h := 4, 4
	src := solidRaster(w, h, 0, 0, 0, 0) // fully transparent source
	program := FilterProgram{Primitives: []PrimitiveDescriptor{
		{Kind: KindFlood, FloodColor: Color{0, 0, 1}, FloodOpacity: 1, Result: "bg"},
		{Kind: KindMerge, MergeInputs: []string{"bg", SourceGraphic}},
	}}
	out, err := ApplyFilter(context.Background(), program, src)
	if err != nil {
		t.Fatalf("ApplyFilter: %v", err)
	}
	for i := 0; i < w*h; i++ {
		o := i * 4
		if out.Pix[o+3] != 255 {
			t.Fatalf("pixel %d alpha = %d, want 255 (flood fills transparent source)", i, out.Pix[o+3])
		}
		if out.Pix[o] < 200 { // strongly blue
			t.Fatalf("pixel %d blue channel = %d, want strongly blue", i, out.Pix[o])
		}
	}
}

func TestMissingInputProducesNoOutputAndDoesNotAdvanceLast(t *testing.T) {
	src := solidRaster(2, 2, 0, 0, 255, 255)
	program := FilterProgram{Primitives: []PrimitiveDescriptor{
		{Kind: KindOffset, In: "doesNotExist", DX: 1, DY: 1, Result: "shifted"},
	}}
	out, err := ApplyFilter(context.Background(), program, src)
	if err != nil {
		t.Fatalf("ApplyFilter: %v", err)
	}
	// last never advanced past SourceGraphic, so output is the round trip
	// of the original source.
	for i, want := range src.Pix {
		if d := int(out.Pix[i]) - int(want); d < -1 || d > 1 {
			t.Fatalf("byte %d: got %d want %d", i, out.Pix[i], want)
		}
	}
}

func TestPrimitiveObserverIsCalledInOrder(t *testing.T) {
	src := solidRaster(2, 2, 0, 0, 0, 255)
	program := FilterProgram{Primitives: []PrimitiveDescriptor{
		{Kind: KindFlood, FloodColor: Color{1, 0, 0}, FloodOpacity: 1, Result: "a"},
		{Kind: KindFlood, FloodColor: Color{0, 1, 0}, FloodOpacity: 1, Result: "b"},
	}}
	var seen []int
	_, err := ApplyFilter(context.Background(), program, src, WithPrimitiveObserver(func(i int, d PrimitiveDescriptor) {
		seen = append(seen, i)
	}))
	if err != nil {
		t.Fatalf("ApplyFilter: %v", err)
	}
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 1 {
		t.Fatalf("observer saw %v, want [0 1]", seen)
	}
}
