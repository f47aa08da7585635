package wire

import (
	"encoding/binary"
	"image/color"
	"math"

	"lcdlink/layout"
)

// Encode serializes a validated envelope.
//
// Layout (little-endian):
//   - u16: magic
//   - u8:  version
//   - u16: canvas width
//   - u16: canvas height
//   - u8:  background kind (0 color / 1 image)
//   - u32: background color (RGBA)
//   - [u32 + bytes]: background image (image kind only)
//   - u16: element count
//   - per element: u8 kind, string id, u16 x/y/w/h, kind payload
//
// Strings are u16 length-prefixed UTF-8, blobs u32 length-prefixed, floats
// IEEE-754 bits as u64. Geometry and string lengths beyond the field widths
// are rejected as validation errors.
func Encode(env *layout.Envelope) ([]byte, error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}
	if err := checkFieldWidths(env); err != nil {
		return nil, err
	}

	var w writer
	w.u16(Magic)
	w.u8(Version)
	w.u16(uint16(env.Width))
	w.u16(uint16(env.Height))

	if len(env.Background.Image) > 0 {
		w.u8(bgImage)
		w.rgba(env.Background.Color)
		w.blob(env.Background.Image)
	} else {
		w.u8(bgColor)
		w.rgba(env.Background.Color)
	}

	w.u16(uint16(len(env.Elements)))
	for i := range env.Elements {
		encodeElement(&w, &env.Elements[i])
	}
	return w.buf, nil
}

func encodeElement(w *writer, e *layout.Element) {
	w.u8(uint8(e.Kind))
	w.str(e.ID)
	w.u16(uint16(e.Rect.X))
	w.u16(uint16(e.Rect.Y))
	w.u16(uint16(e.Rect.W))
	w.u16(uint16(e.Rect.H))

	switch e.Kind {
	case layout.KindStaticImage:
		w.str(e.StaticImage.Path)
		w.blob(e.StaticImage.Data)
	case layout.KindText:
		t := e.Text
		w.str(t.Sensor)
		w.str(t.Format)
		w.u8(uint8(t.Align))
		encodeStyle(w, &t.Style)
	case layout.KindGraph:
		g := e.Graph
		w.str(g.Sensor)
		w.u8(uint8(g.Mode))
		var flags uint8
		if g.HasMin {
			flags |= 1
		}
		if g.HasMax {
			flags |= 2
		}
		w.u8(flags)
		if g.HasMin {
			w.f64(g.Min)
		}
		if g.HasMax {
			w.f64(g.Max)
		}
		w.u8(uint8(g.StrokeWidth))
		w.rgba(g.LineColor)
		w.rgba(g.FillColor)
		w.rgba(g.BorderColor)
	case layout.KindConditionalImage:
		c := e.ConditionalImage
		w.str(c.Sensor)
		w.u16(uint16(len(c.Ranges)))
		for _, r := range c.Ranges {
			w.f64(r.Lo)
			w.f64(r.Hi)
			w.blob(r.Image)
		}
		w.blob(c.Default)
	}
}

// encodeStyle writes a Style.
//
// Layout (little-endian):
//   - u32: color (RGBA)
//   - u16: font size
//   - u8:  fill flag (0/1)
//   - u8:  font ref kind (0 none / 1 builtin / 2 path / 3 embedded)
//   - string or blob: font name or bytes (kind-dependent)
func encodeStyle(w *writer, s *layout.Style) {
	w.rgba(s.Color)
	w.u16(uint16(s.FontSize))
	if s.Fill {
		w.u8(1)
	} else {
		w.u8(0)
	}
	switch {
	case s.Font.Builtin != "":
		w.u8(fontBuiltin)
		w.str(s.Font.Builtin)
	case s.Font.Path != "":
		w.u8(fontPath)
		w.str(s.Font.Path)
	case len(s.Font.TTF) > 0:
		w.u8(fontEmbedded)
		w.blob(s.Font.TTF)
	default:
		w.u8(fontNone)
	}
}

func checkFieldWidths(env *layout.Envelope) error {
	fail := func(what string) error {
		return &layout.ValidationError{Reason: what + " exceeds wire field width"}
	}
	if env.Width > math.MaxUint16 || env.Height > math.MaxUint16 {
		return fail("canvas size")
	}
	if len(env.Elements) > math.MaxUint16 {
		return fail("element count")
	}
	if len(env.Background.Image) > math.MaxUint32 {
		return fail("background image")
	}
	for i := range env.Elements {
		e := &env.Elements[i]
		r := e.Rect
		if r.X > math.MaxUint16 || r.Y > math.MaxUint16 || r.W > math.MaxUint16 || r.H > math.MaxUint16 {
			return fail("element rect")
		}
		if len(e.ID) > math.MaxUint16 {
			return fail("element id")
		}
		switch e.Kind {
		case layout.KindText:
			if len(e.Text.Sensor) > math.MaxUint16 || len(e.Text.Format) > math.MaxUint16 {
				return fail("text strings")
			}
			if e.Text.Style.FontSize > math.MaxUint16 {
				return fail("font size")
			}
		case layout.KindGraph:
			if e.Graph.StrokeWidth > math.MaxUint8 {
				return fail("stroke width")
			}
		case layout.KindConditionalImage:
			if len(e.ConditionalImage.Ranges) > math.MaxUint16 {
				return fail("range count")
			}
		}
	}
	return nil
}

type writer struct {
	buf []byte
}

func (w *writer) u8(v uint8) { w.buf = append(w.buf, v) }

func (w *writer) u16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *writer) u32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *writer) f64(v float64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, math.Float64bits(v))
}

func (w *writer) str(s string) {
	w.u16(uint16(len(s)))
	w.buf = append(w.buf, s...)
}

func (w *writer) blob(b []byte) {
	w.u32(uint32(len(b)))
	w.buf = append(w.buf, b...)
}

func (w *writer) rgba(c color.RGBA) {
	w.u32(uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A))
}
