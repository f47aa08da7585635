package render

import (
	"image"
	"image/color"
	"math"

	"lcdlink/layout"
)

func (s *Session) renderGraph(canvas *image.RGBA, e *layout.Element, snap layout.SensorSnapshot) error {
	g := e.Graph
	rd, err := snap.Reading(g.Sensor)
	if err != nil {
		return err
	}
	plotGraph(canvas, e.Rect, g, rd.History, elementClip(canvas, e.Rect))
	return nil
}

// plotGraph maps a bounded history onto the target rectangle.
//
// Bounds are the explicit min/max when given, otherwise the history's
// extremes. An empty history or a degenerate range (min == max) plots a
// flat baseline at the rectangle's vertical midpoint instead of dividing
// by zero. Samples outside the bounds are clamped visually, never dropped,
// so a sensor spike can never paint outside the rectangle. Histories wider
// than the rectangle are windowed to the most recent samples.
func plotGraph(dst *image.RGBA, r layout.Rect, g *layout.Graph, history []float64, clip image.Rectangle) {
	h := history
	if len(h) > r.W {
		h = h[len(h)-r.W:]
	}

	lo, hi, ok := graphBounds(g, h)
	var pts []image.Point
	if !ok {
		midY := r.Y + (r.H-1)/2
		pts = []image.Point{{X: r.X, Y: midY}, {X: r.X + r.W - 1, Y: midY}}
	} else {
		n := len(h)
		pts = make([]image.Point, n)
		for i, v := range h {
			x := r.X + r.W/2
			if n > 1 {
				x = r.X + i*(r.W-1)/(n-1)
			}
			v = math.Max(lo, math.Min(hi, v))
			y := r.Y + int(math.Round(float64(r.H-1)*(1-(v-lo)/(hi-lo))))
			pts[i] = image.Point{X: x, Y: y}
		}
	}

	if g.Mode == layout.GraphFilled {
		fill := g.FillColor
		if fill.A == 0 {
			fill = g.LineColor
		}
		bottom := r.Y + r.H - 1
		for i := 0; i < len(pts); i++ {
			if i+1 < len(pts) {
				fillSegment(dst, pts[i], pts[i+1], bottom, fill, clip)
			} else if len(pts) == 1 {
				fillColumn(dst, pts[i].X, pts[i].Y, bottom, fill, clip)
			}
		}
	}

	half := g.StrokeWidth / 2
	if len(pts) == 1 {
		p := pts[0]
		for off := -half; off <= half; off++ {
			drawLine(dst, p.X+off, p.Y, p.X+off, p.Y, g.LineColor, clip)
		}
	}
	for i := 0; i+1 < len(pts); i++ {
		for off := -half; off <= half; off++ {
			drawLine(dst, pts[i].X+off, pts[i].Y, pts[i+1].X+off, pts[i+1].Y, g.LineColor, clip)
		}
	}

	if g.BorderColor.A != 0 {
		drawHollowRect(dst, image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H), g.BorderColor, clip)
	}
}

// fillSegment paints the area between the p0-p1 line and the baseline,
// one column at a time with linear interpolation.
func fillSegment(dst *image.RGBA, p0, p1 image.Point, bottom int, c color.RGBA, clip image.Rectangle) {
	if p1.X < p0.X {
		p0, p1 = p1, p0
	}
	dx := p1.X - p0.X
	for x := p0.X; x <= p1.X; x++ {
		y := p0.Y
		if dx > 0 {
			y = p0.Y + (p1.Y-p0.Y)*(x-p0.X)/dx
		}
		fillColumn(dst, x, y, bottom, c, clip)
	}
}

// graphBounds returns the effective plot range. ok is false when the range
// is degenerate and the caller should plot a flat baseline.
func graphBounds(g *layout.Graph, h []float64) (lo, hi float64, ok bool) {
	if g.HasMin {
		lo = g.Min
	} else if len(h) > 0 {
		lo = h[0]
		for _, v := range h {
			lo = math.Min(lo, v)
		}
	}
	if g.HasMax {
		hi = g.Max
	} else if len(h) > 0 {
		hi = h[0]
		for _, v := range h {
			hi = math.Max(hi, v)
		}
	}
	if len(h) == 0 || lo >= hi {
		return 0, 0, false
	}
	return lo, hi, true
}
