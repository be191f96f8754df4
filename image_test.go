package svgfilter

import "testing"

func TestNewLinearImageIsTransparentBlack(t *testing.T) {
	img := NewLinearImage(3, 2)
	if img.Width != 3 || img.Height != 2 || len(img.Pix) != 6 {
		t.Fatalf("unexpected dimensions: %dx%d, %d pixels", img.Width, img.Height, len(img.Pix))
	}
	for i, p := range img.Pix {
		if p != Transparent {
			t.Fatalf("pixel %d = %+v, want transparent black", i, p)
		}
	}
}

func TestSetAndAt(t *testing.T) {
	img := NewLinearImage(4, 4)
	p := Pixel{R: 0.1, G: 0.2, B: 0.3, A: 0.4}
	img.Set(2, 1, p)
	if got := img.At(2, 1); got != p {
		t.Fatalf("At(2,1) = %+v, want %+v", got, p)
	}
}

func TestSameDimensions(t *testing.T) {
	a := NewLinearImage(5, 5)
	b := NewLinearImage(5, 5)
	c := NewLinearImage(5, 6)
	if !a.SameDimensions(b) {
		t.Fatal("expected equal-sized images to report SameDimensions")
	}
	if a.SameDimensions(c) {
		t.Fatal("expected different-sized images to report not SameDimensions")
	}
}

func TestClampToEdge(t *testing.T) {
	cases := []struct{ v, n, want int }{
		{-5, 10, 0},
		{0, 10, 0},
		{9, 10, 9},
		{15, 10, 9},
	}
	for _, c := range cases {
		if got := clampToEdge(c.v, c.n); got != c.want {
			t.Fatalf("clampToEdge(%d, %d) = %d, want %d", c.v, c.n, got, c.want)
		}
	}
}
