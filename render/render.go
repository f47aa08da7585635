package render

import (
	"image"
	"image/draw"

	"go.uber.org/zap"

	"lcdlink/layout"
)

// Render rasterizes one frame. Structural problems (an invalid envelope)
// abort with a non-nil error. Per-element failures do not: the element is
// skipped, its canvas area left untouched, and the failure reported in the
// returned slice so no error is silently swallowed. Skipping rather than
// painting a placeholder is the one supported policy; a gap on a live
// dashboard reads better than a synthetic tile.
func (s *Session) Render(env *layout.Envelope, snap layout.SensorSnapshot) (*image.RGBA, []ElementError, error) {
	if err := env.Validate(); err != nil {
		return nil, nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, env.Width, env.Height))
	if err := s.paintBackground(canvas, env); err != nil {
		return nil, nil, err
	}

	var failed []ElementError
	for i := range env.Elements {
		e := &env.Elements[i]
		if err := s.renderElement(canvas, e, snap); err != nil {
			failed = append(failed, ElementError{ID: e.ID, Kind: e.Kind, Err: err})
			s.log.Warn("element skipped",
				zap.String("element", e.ID),
				zap.Stringer("kind", e.Kind),
				zap.Error(err))
		}
	}
	return canvas, failed, nil
}

func (s *Session) renderElement(canvas *image.RGBA, e *layout.Element, snap layout.SensorSnapshot) error {
	switch e.Kind {
	case layout.KindStaticImage:
		return s.renderStaticImage(canvas, e)
	case layout.KindText:
		return s.renderText(canvas, e, snap)
	case layout.KindGraph:
		return s.renderGraph(canvas, e, snap)
	case layout.KindConditionalImage:
		return s.renderConditionalImage(canvas, e, snap)
	default:
		// Unreachable after Validate; keep the dispatch exhaustive anyway.
		return &layout.ValidationError{Element: e.ID, Reason: "unknown element kind"}
	}
}

func (s *Session) paintBackground(canvas *image.RGBA, env *layout.Envelope) error {
	bg := env.Background
	if len(bg.Image) > 0 {
		patch, err := s.imagePatch("background", bg.Image, "", env.Width, env.Height)
		if err != nil {
			return err
		}
		draw.Draw(canvas, canvas.Bounds(), patch, image.Point{}, draw.Src)
		return nil
	}
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg.Color), image.Point{}, draw.Src)
	return nil
}

func (s *Session) renderStaticImage(canvas *image.RGBA, e *layout.Element) error {
	patch, err := s.imagePatch(e.ID, e.StaticImage.Data, e.StaticImage.Path, e.Rect.W, e.Rect.H)
	if err != nil {
		return err
	}
	clip := elementClip(canvas, e.Rect)
	blendPatch(canvas, patch, e.Rect.X, e.Rect.Y, clip)
	return nil
}

// elementClip is the drawable area of an element: its rectangle clipped to
// the canvas.
func elementClip(canvas *image.RGBA, r layout.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H).Intersect(canvas.Bounds())
}
