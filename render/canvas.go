package render

import (
	"image"
	"image/color"
)

// blendPixel paints c over the destination pixel (src-over).
func blendPixel(dst *image.RGBA, x, y int, c color.RGBA) {
	if c.A == 0 {
		return
	}
	if c.A == 0xff {
		dst.SetRGBA(x, y, c)
		return
	}
	d := dst.RGBAAt(x, y)
	a := uint32(c.A)
	inv := 255 - a
	dst.SetRGBA(x, y, color.RGBA{
		R: uint8((uint32(c.R)*a + uint32(d.R)*inv + 127) / 255),
		G: uint8((uint32(c.G)*a + uint32(d.G)*inv + 127) / 255),
		B: uint8((uint32(c.B)*a + uint32(d.B)*inv + 127) / 255),
		A: uint8((a*255 + uint32(d.A)*inv + 127) / 255),
	})
}

// blendPatch paints a patch over dst with its top-left corner at (ox, oy),
// restricted to clip.
func blendPatch(dst *image.RGBA, patch *image.RGBA, ox, oy int, clip image.Rectangle) {
	pb := patch.Bounds()
	target := image.Rect(ox, oy, ox+pb.Dx(), oy+pb.Dy()).Intersect(clip)
	for y := target.Min.Y; y < target.Max.Y; y++ {
		for x := target.Min.X; x < target.Max.X; x++ {
			blendPixel(dst, x, y, patch.RGBAAt(x-ox+pb.Min.X, y-oy+pb.Min.Y))
		}
	}
}

// drawLine draws the segment (x0,y0)-(x1,y1) in c, clipped to clip.
func drawLine(dst *image.RGBA, x0, y0, x1, y1 int, c color.RGBA, clip image.Rectangle) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if image.Pt(x0, y0).In(clip) {
			blendPixel(dst, x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// drawHollowRect outlines r in c.
func drawHollowRect(dst *image.RGBA, r image.Rectangle, c color.RGBA, clip image.Rectangle) {
	if r.Empty() {
		return
	}
	drawLine(dst, r.Min.X, r.Min.Y, r.Max.X-1, r.Min.Y, c, clip)
	drawLine(dst, r.Min.X, r.Max.Y-1, r.Max.X-1, r.Max.Y-1, c, clip)
	drawLine(dst, r.Min.X, r.Min.Y, r.Min.X, r.Max.Y-1, c, clip)
	drawLine(dst, r.Max.X-1, r.Min.Y, r.Max.X-1, r.Max.Y-1, c, clip)
}

// fillColumn paints the vertical run x,[y0..y1] in c, clipped to clip.
func fillColumn(dst *image.RGBA, x, y0, y1 int, c color.RGBA, clip image.Rectangle) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if x < clip.Min.X || x >= clip.Max.X {
		return
	}
	if y0 < clip.Min.Y {
		y0 = clip.Min.Y
	}
	if y1 >= clip.Max.Y {
		y1 = clip.Max.Y - 1
	}
	for y := y0; y <= y1; y++ {
		blendPixel(dst, x, y, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
