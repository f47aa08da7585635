package hal

import (
	"image"
	"image/color"
	"testing"
)

func TestRGB565RoundTripPrimaries(t *testing.T) {
	tests := []struct{ r, g, b uint8 }{
		{0xff, 0x00, 0x00},
		{0x00, 0xff, 0x00},
		{0x00, 0x00, 0xff},
		{0xff, 0xff, 0xff},
		{0x00, 0x00, 0x00},
	}
	for _, tc := range tests {
		r, g, b := rgb888From565(rgb565(tc.r, tc.g, tc.b))
		if r != tc.r || g != tc.g || b != tc.b {
			t.Fatalf("rgb888From565(rgb565(%d,%d,%d)) = %d,%d,%d, want identity",
				tc.r, tc.g, tc.b, r, g, b)
		}
	}
}

func TestCopyRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	red := color.RGBA{R: 0xff, A: 0xff}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetRGBA(x, y, red)
		}
	}

	fb := NewRGB565(2, 2)
	if err := CopyRGBA(fb, img); err != nil {
		t.Fatalf("CopyRGBA() err = %v, want nil", err)
	}

	buf := fb.Buffer()
	// Red in RGB565 is 0xF800, stored little-endian.
	if buf[0] != 0x00 || buf[1] != 0xF8 {
		t.Fatalf("framebuffer pixel = %02x%02x, want 00f8", buf[0], buf[1])
	}
}

func TestCopyRGBASizeMismatch(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	fb := NewRGB565(2, 2)
	if err := CopyRGBA(fb, img); err == nil {
		t.Fatalf("CopyRGBA() with size mismatch err = nil, want error")
	}
}
