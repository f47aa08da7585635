package layout

// Validate checks the element's geometry and kind payload. The rectangle is
// only checked against itself here; the canvas-bounds check happens in
// Envelope.Validate where the canvas size is known.
func (e *Element) Validate() error {
	if e.Rect.W <= 0 || e.Rect.H <= 0 {
		return validationErrorf(e.ID, "size %dx%d not positive", e.Rect.W, e.Rect.H)
	}
	if e.Rect.X < 0 || e.Rect.Y < 0 {
		return validationErrorf(e.ID, "position %d,%d negative", e.Rect.X, e.Rect.Y)
	}

	n := 0
	if e.StaticImage != nil {
		n++
	}
	if e.Text != nil {
		n++
	}
	if e.Graph != nil {
		n++
	}
	if e.ConditionalImage != nil {
		n++
	}
	if n != 1 {
		return validationErrorf(e.ID, "%d kind payloads, want 1", n)
	}

	switch e.Kind {
	case KindStaticImage:
		if e.StaticImage == nil {
			return validationErrorf(e.ID, "kind %s without payload", e.Kind)
		}
		if len(e.StaticImage.Data) == 0 && e.StaticImage.Path == "" {
			return validationErrorf(e.ID, "static image has neither data nor path")
		}
	case KindText:
		if e.Text == nil {
			return validationErrorf(e.ID, "kind %s without payload", e.Kind)
		}
		return e.Text.validate(e.ID)
	case KindGraph:
		if e.Graph == nil {
			return validationErrorf(e.ID, "kind %s without payload", e.Kind)
		}
		return e.Graph.validate(e.ID)
	case KindConditionalImage:
		if e.ConditionalImage == nil {
			return validationErrorf(e.ID, "kind %s without payload", e.Kind)
		}
		return e.ConditionalImage.validate(e.ID)
	default:
		return validationErrorf(e.ID, "unknown element kind %d", uint8(e.Kind))
	}
	return nil
}

func (t *Text) validate(id string) error {
	if t.Sensor == "" {
		return validationErrorf(id, "text element without sensor binding")
	}
	if t.Align > AlignRight {
		return validationErrorf(id, "unknown text alignment %d", uint8(t.Align))
	}
	if t.Style.FontSize <= 0 {
		return validationErrorf(id, "font size %d not positive", t.Style.FontSize)
	}
	return nil
}

func (g *Graph) validate(id string) error {
	if g.Sensor == "" {
		return validationErrorf(id, "graph element without sensor binding")
	}
	if g.Mode > GraphFilled {
		return validationErrorf(id, "unknown graph mode %d", uint8(g.Mode))
	}
	if g.HasMin && g.HasMax && g.Min >= g.Max {
		return validationErrorf(id, "graph min %v not below max %v", g.Min, g.Max)
	}
	if g.StrokeWidth < 1 {
		return validationErrorf(id, "stroke width %d below 1", g.StrokeWidth)
	}
	return nil
}

func (c *ConditionalImage) validate(id string) error {
	if c.Sensor == "" {
		return validationErrorf(id, "conditional image without sensor binding")
	}
	if len(c.Ranges) == 0 {
		return validationErrorf(id, "conditional image without ranges")
	}
	for i, r := range c.Ranges {
		if r.Lo > r.Hi {
			return validationErrorf(id, "range %d: lower bound %v above upper bound %v", i, r.Lo, r.Hi)
		}
		if len(r.Image) == 0 {
			return validationErrorf(id, "range %d: empty image", i)
		}
	}
	// Bounds are inclusive both ends, so touching bounds count as overlap.
	for i := range c.Ranges {
		for j := i + 1; j < len(c.Ranges); j++ {
			a, b := c.Ranges[i], c.Ranges[j]
			if a.Lo <= b.Hi && b.Lo <= a.Hi {
				return validationErrorf(id, "ranges %d and %d overlap", i, j)
			}
		}
	}
	return nil
}
