package wire

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"math"

	"lcdlink/layout"
)

// Decode parses envelope bytes produced by Encode. The returned envelope
// has passed structural validation; any defect in the input aborts the
// whole decode with a DecodeError.
func Decode(b []byte) (*layout.Envelope, error) {
	r := &reader{b: b}

	if m := r.u16(); r.err == nil && m != Magic {
		return nil, r.fail("bad magic 0x%04X", m)
	}
	if v := r.u8(); r.err == nil && v != Version {
		return nil, r.fail("unsupported version %d", v)
	}

	var env layout.Envelope
	env.Width = int(r.u16())
	env.Height = int(r.u16())

	bgKind := r.u8()
	env.Background.Color = r.rgba()
	switch bgKind {
	case bgColor:
	case bgImage:
		env.Background.Image = r.blob()
	default:
		if r.err == nil {
			return nil, r.fail("unknown background kind %d", bgKind)
		}
	}

	n := int(r.u16())
	for i := 0; i < n && r.err == nil; i++ {
		env.Elements = append(env.Elements, decodeElement(r))
	}

	if r.err != nil {
		return nil, r.err
	}
	if r.off != len(r.b) {
		return nil, r.fail("%d trailing bytes", len(r.b)-r.off)
	}
	if err := env.Validate(); err != nil {
		return nil, &DecodeError{Offset: len(b), Reason: "envelope validation", Err: err}
	}
	return &env, nil
}

func decodeElement(r *reader) layout.Element {
	var e layout.Element
	kind := r.u8()
	e.ID = r.str()
	e.Rect.X = int(r.u16())
	e.Rect.Y = int(r.u16())
	e.Rect.W = int(r.u16())
	e.Rect.H = int(r.u16())
	if r.err != nil {
		return e
	}

	e.Kind = layout.ElementKind(kind)
	switch e.Kind {
	case layout.KindStaticImage:
		var s layout.StaticImage
		s.Path = r.str()
		s.Data = r.blob()
		e.StaticImage = &s
	case layout.KindText:
		var t layout.Text
		t.Sensor = r.str()
		t.Format = r.str()
		t.Align = layout.TextAlign(r.u8())
		t.Style = decodeStyle(r)
		e.Text = &t
	case layout.KindGraph:
		var g layout.Graph
		g.Sensor = r.str()
		g.Mode = layout.GraphMode(r.u8())
		flags := r.u8()
		g.HasMin = flags&1 != 0
		g.HasMax = flags&2 != 0
		if g.HasMin {
			g.Min = r.f64()
		}
		if g.HasMax {
			g.Max = r.f64()
		}
		g.StrokeWidth = int(r.u8())
		g.LineColor = r.rgba()
		g.FillColor = r.rgba()
		g.BorderColor = r.rgba()
		e.Graph = &g
	case layout.KindConditionalImage:
		var c layout.ConditionalImage
		c.Sensor = r.str()
		nr := int(r.u16())
		for i := 0; i < nr && r.err == nil; i++ {
			var ir layout.ImageRange
			ir.Lo = r.f64()
			ir.Hi = r.f64()
			ir.Image = r.blob()
			c.Ranges = append(c.Ranges, ir)
		}
		c.Default = r.blob()
		e.ConditionalImage = &c
	default:
		r.fail("unknown element kind %d", kind)
	}
	return e
}

func decodeStyle(r *reader) layout.Style {
	var s layout.Style
	s.Color = r.rgba()
	s.FontSize = int(r.u16())
	s.Fill = r.u8() != 0
	switch kind := r.u8(); kind {
	case fontNone:
	case fontBuiltin:
		s.Font.Builtin = r.str()
	case fontPath:
		s.Font.Path = r.str()
	case fontEmbedded:
		s.Font.TTF = r.blob()
	default:
		r.fail("unknown font ref kind %d", kind)
	}
	return s
}

// reader walks the input, recording the first failure. Once err is set all
// further reads return zero values so decode logic stays linear.
type reader struct {
	b   []byte
	off int
	err error
}

func (r *reader) fail(format string, args ...any) error {
	if r.err == nil {
		r.err = &DecodeError{Offset: r.off, Reason: fmt.Sprintf(format, args...)}
	}
	return r.err
}

func (r *reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || len(r.b)-r.off < n {
		r.fail("truncated (%d bytes left, need %d)", len(r.b)-r.off, n)
		return nil
	}
	b := r.b[r.off : r.off+n]
	r.off += n
	return b
}

func (r *reader) u8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *reader) u16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *reader) u32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *reader) f64() float64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

func (r *reader) str() string {
	n := int(r.u16())
	b := r.take(n)
	if len(b) == 0 {
		return ""
	}
	return string(b)
}

func (r *reader) blob() []byte {
	n := int(r.u32())
	b := r.take(n)
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

func (r *reader) rgba() color.RGBA {
	v := r.u32()
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}
