package render

import (
	"fmt"
	"image"

	"lcdlink/layout"
)

// ResolutionError reports a conditional image whose value matched no
// configured range and whose element carries no default image.
type ResolutionError struct {
	Value float64
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("value %v matches no configured range", e.Value)
}

// Resolve selects the image for v: the first range in declared order whose
// inclusive bounds contain v, else the default image when present.
// Validation rejects overlapping ranges, so declared order only decides
// values sitting exactly on a shared bound.
func Resolve(c *layout.ConditionalImage, v float64) ([]byte, error) {
	for _, r := range c.Ranges {
		if v >= r.Lo && v <= r.Hi {
			return r.Image, nil
		}
	}
	if len(c.Default) > 0 {
		return c.Default, nil
	}
	return nil, &ResolutionError{Value: v}
}

func (s *Session) renderConditionalImage(canvas *image.RGBA, e *layout.Element, snap layout.SensorSnapshot) error {
	c := e.ConditionalImage
	rd, err := snap.Reading(c.Sensor)
	if err != nil {
		return err
	}

	data, err := Resolve(c, rd.Value)
	if err != nil {
		return err
	}

	patch, err := s.imagePatch(e.ID, data, "", e.Rect.W, e.Rect.H)
	if err != nil {
		return err
	}
	blendPatch(canvas, patch, e.Rect.X, e.Rect.Y, elementClip(canvas, e.Rect))
	return nil
}
