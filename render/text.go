package render

import (
	"image"
	"strconv"
	"strings"

	"lcdlink/layout"
)

// defaultTextFormat is used when an element gives no format string.
const defaultTextFormat = "{value}{unit}"

func (s *Session) renderText(canvas *image.RGBA, e *layout.Element, snap layout.SensorSnapshot) error {
	t := e.Text
	rd, err := snap.Reading(t.Sensor)
	if err != nil {
		return err
	}

	patch, err := s.fonts.Rasterize(formatText(t.Format, rd), t.Style.Font, t.Style.FontSize, t.Style.Color)
	if err != nil {
		return err
	}

	pb := patch.Bounds()
	x := e.Rect.X
	switch t.Align {
	case layout.AlignCenter:
		x += (e.Rect.W - pb.Dx()) / 2
	case layout.AlignRight:
		x += e.Rect.W - pb.Dx()
	}
	y := e.Rect.Y + (e.Rect.H-pb.Dy())/2

	// A run wider than the rectangle is cropped by the clip, not scaled.
	blendPatch(canvas, patch, x, y, elementClip(canvas, e.Rect))
	return nil
}

// formatText expands the {value} and {unit} placeholders.
func formatText(format string, rd layout.Reading) string {
	if format == "" {
		format = defaultTextFormat
	}
	value := strconv.FormatFloat(rd.Value, 'f', -1, 64)
	out := strings.ReplaceAll(format, "{value}", value)
	return strings.ReplaceAll(out, "{unit}", rd.Unit)
}
