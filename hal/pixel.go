package hal

import (
	"fmt"
	"image"
)

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// CopyRGBA packs a rendered canvas into an RGB565 framebuffer. The canvas
// must match the framebuffer dimensions; alpha is dropped, the compositor
// has already flattened the frame.
func CopyRGBA(fb Framebuffer, img *image.RGBA) error {
	if fb.Format() != PixelFormatRGB565 {
		return fmt.Errorf("hal: unsupported pixel format %d", fb.Format())
	}
	w, h := fb.Width(), fb.Height()
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		return fmt.Errorf("hal: frame %dx%d does not fit %dx%d framebuffer",
			img.Bounds().Dx(), img.Bounds().Dy(), w, h)
	}

	buf := fb.Buffer()
	stride := fb.StrideBytes()
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		off := y * stride
		for x := 0; x < w; x++ {
			p := rgb565(row[x*4], row[x*4+1], row[x*4+2])
			buf[off+x*2] = byte(p)
			buf[off+x*2+1] = byte(p >> 8)
		}
	}
	return nil
}
