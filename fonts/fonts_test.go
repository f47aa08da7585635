package fonts

import (
	"errors"
	"image/color"
	"testing"

	"lcdlink/layout"
)

var testColor = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}

func TestMeasureBoundsRasterizedExtent(t *testing.T) {
	s := New()
	ref := layout.FontRef{Builtin: "org01"}

	w, h, err := s.Measure("42", ref, 12)
	if err != nil {
		t.Fatalf("Measure() err = %v, want nil", err)
	}
	if w <= 0 || h <= 0 {
		t.Fatalf("Measure() = %dx%d, want positive box", w, h)
	}

	patch, err := s.Rasterize("42", ref, 12, testColor)
	if err != nil {
		t.Fatalf("Rasterize() err = %v, want nil", err)
	}
	if patch.Bounds().Dx() > w || patch.Bounds().Dy() > h {
		t.Fatalf("Rasterize() patch %v exceeds measured box %dx%d", patch.Bounds(), w, h)
	}

	inked := false
	for y := patch.Bounds().Min.Y; y < patch.Bounds().Max.Y; y++ {
		for x := patch.Bounds().Min.X; x < patch.Bounds().Max.X; x++ {
			if patch.RGBAAt(x, y).A != 0 {
				inked = true
			}
		}
	}
	if !inked {
		t.Fatalf("Rasterize() produced a fully transparent patch")
	}
}

func TestRasterizeCachesPatches(t *testing.T) {
	s := New()
	ref := layout.FontRef{Builtin: "tomthumb"}

	first, err := s.Rasterize("55C", ref, 12, testColor)
	if err != nil {
		t.Fatalf("Rasterize() err = %v, want nil", err)
	}
	second, err := s.Rasterize("55C", ref, 12, testColor)
	if err != nil {
		t.Fatalf("Rasterize() err = %v, want nil", err)
	}
	if first != second {
		t.Fatalf("Rasterize() second call returned a new patch, want cached")
	}

	// A different tint is a different patch.
	other, err := s.Rasterize("55C", ref, 12, color.RGBA{R: 0xff, A: 0xff})
	if err != nil {
		t.Fatalf("Rasterize() err = %v, want nil", err)
	}
	if other == first {
		t.Fatalf("Rasterize() with different color returned the same patch")
	}
}

func TestDefaultFace(t *testing.T) {
	s := New()

	w, h, err := s.Measure("0", layout.FontRef{}, 12)
	if err != nil {
		t.Fatalf("Measure() with zero font ref err = %v, want nil", err)
	}
	if w <= 0 || h <= 0 {
		t.Fatalf("Measure() with zero font ref = %dx%d, want positive box", w, h)
	}
}

func TestUnknownBuiltinFace(t *testing.T) {
	s := New()

	_, err := s.Rasterize("x", layout.FontRef{Builtin: "comic-sans"}, 12, testColor)
	var ferr *FontLoadError
	if !errors.As(err, &ferr) {
		t.Fatalf("Rasterize() err = %T, want *FontLoadError", err)
	}
}

func TestMalformedTTF(t *testing.T) {
	s := New()

	_, _, err := s.Measure("x", layout.FontRef{TTF: []byte("not a font")}, 12)
	var ferr *FontLoadError
	if !errors.As(err, &ferr) {
		t.Fatalf("Measure() err = %T, want *FontLoadError", err)
	}
}

func TestPathFontWithoutLoader(t *testing.T) {
	s := New()

	_, err := s.Rasterize("x", layout.FontRef{Path: "missing.ttf"}, 12, testColor)
	var ferr *FontLoadError
	if !errors.As(err, &ferr) {
		t.Fatalf("Rasterize() err = %T, want *FontLoadError", err)
	}
}
