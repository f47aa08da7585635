package layout

import "image/color"

// Background fills the canvas before elements are painted. When Image is
// non-empty it is decoded and scaled to cover the canvas; otherwise the
// solid Color is used.
type Background struct {
	Color color.RGBA
	Image []byte
}

// Envelope is the unit that crosses the link: canvas dimensions, a
// background and the ordered element list. It is immutable during a render
// pass; a fresh sensor snapshot is supplied per tick instead.
type Envelope struct {
	Width      int
	Height     int
	Background Background
	Elements   []Element
}

// Validate checks canvas dimensions, every element, and that every element
// rectangle lies inside the canvas.
func (env *Envelope) Validate() error {
	if env.Width <= 0 || env.Height <= 0 {
		return validationErrorf("", "canvas %dx%d not positive", env.Width, env.Height)
	}
	for i := range env.Elements {
		e := &env.Elements[i]
		if err := e.Validate(); err != nil {
			return err
		}
		if !e.Rect.Contains(env.Width, env.Height) {
			return validationErrorf(e.ID, "rect %+v outside %dx%d canvas", e.Rect, env.Width, env.Height)
		}
	}
	return nil
}
