package wire

import (
	"errors"
	"image/color"
	"math/rand"
	"reflect"
	"testing"

	"lcdlink/layout"
)

func testEnvelope(t *testing.T) *layout.Envelope {
	t.Helper()

	img, err := layout.NewStaticImage("logo", layout.Rect{X: 0, Y: 0, W: 32, H: 32},
		layout.StaticImage{Data: []byte{0x89, 0x50, 0x4E, 0x47}})
	if err != nil {
		t.Fatalf("NewStaticImage() err = %v", err)
	}

	txt, err := layout.NewText("cpu-label", layout.Rect{X: 40, Y: 4, W: 120, H: 20}, layout.Text{
		Sensor: "cpu_temp",
		Format: "CPU {value}{unit}",
		Align:  layout.AlignCenter,
		Style: layout.Style{
			Color:    color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
			Font:     layout.FontRef{Builtin: "org01"},
			FontSize: 12,
		},
	})
	if err != nil {
		t.Fatalf("NewText() err = %v", err)
	}

	gr, err := layout.NewGraph("cpu-graph", layout.Rect{X: 0, Y: 40, W: 160, H: 60}, layout.Graph{
		Sensor:      "cpu_temp",
		Mode:        layout.GraphFilled,
		HasMin:      true,
		Min:         0,
		HasMax:      true,
		Max:         100,
		StrokeWidth: 2,
		LineColor:   color.RGBA{G: 0xff, A: 0xff},
		FillColor:   color.RGBA{G: 0xff, A: 0x66},
		BorderColor: color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
	})
	if err != nil {
		t.Fatalf("NewGraph() err = %v", err)
	}

	cond, err := layout.NewConditionalImage("status", layout.Rect{X: 128, Y: 0, W: 32, H: 32},
		layout.ConditionalImage{
			Sensor: "cpu_temp",
			Ranges: []layout.ImageRange{
				{Lo: 0, Hi: 50, Image: []byte("cold")},
				{Lo: 51, Hi: 100, Image: []byte("hot")},
			},
			Default: []byte("unknown"),
		})
	if err != nil {
		t.Fatalf("NewConditionalImage() err = %v", err)
	}

	return &layout.Envelope{
		Width:  160,
		Height: 128,
		Background: layout.Background{
			Color: color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff},
		},
		Elements: []layout.Element{img, txt, gr, cond},
	}
}

func TestRoundTrip(t *testing.T) {
	env := testEnvelope(t)

	b, err := Encode(env)
	if err != nil {
		t.Fatalf("Encode() err = %v, want nil", err)
	}

	got, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode() err = %v, want nil", err)
	}
	if !reflect.DeepEqual(got, env) {
		t.Fatalf("Decode(Encode(env)) = %+v, want %+v", got, env)
	}
}

func TestRoundTripBackgroundImage(t *testing.T) {
	env := &layout.Envelope{
		Width:  32,
		Height: 32,
		Background: layout.Background{
			Color: color.RGBA{A: 0xff},
			Image: []byte{1, 2, 3, 4},
		},
	}

	b, err := Encode(env)
	if err != nil {
		t.Fatalf("Encode() err = %v, want nil", err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode() err = %v, want nil", err)
	}
	if !reflect.DeepEqual(got, env) {
		t.Fatalf("Decode(Encode(env)) = %+v, want %+v", got, env)
	}
}

func TestDecodeTruncatedAtEveryOffset(t *testing.T) {
	b, err := Encode(testEnvelope(t))
	if err != nil {
		t.Fatalf("Encode() err = %v, want nil", err)
	}

	for n := 0; n < len(b); n++ {
		env, err := Decode(b[:n])
		if err == nil {
			t.Fatalf("Decode() of %d/%d bytes err = nil, want DecodeError", n, len(b))
		}
		if env != nil {
			t.Fatalf("Decode() of truncated input returned envelope %+v, want nil", env)
		}
		var derr *DecodeError
		if !errors.As(err, &derr) {
			t.Fatalf("Decode() of truncated input err = %T, want *DecodeError", err)
		}
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	b, err := Encode(testEnvelope(t))
	if err != nil {
		t.Fatalf("Encode() err = %v, want nil", err)
	}

	if _, err := Decode(append(b, 0x00)); err == nil {
		t.Fatalf("Decode() with trailing byte err = nil, want DecodeError")
	}
}

func TestDecodeBadHeader(t *testing.T) {
	b, err := Encode(testEnvelope(t))
	if err != nil {
		t.Fatalf("Encode() err = %v, want nil", err)
	}

	bad := append([]byte(nil), b...)
	bad[0] ^= 0xff
	if _, err := Decode(bad); err == nil {
		t.Fatalf("Decode() with bad magic err = nil, want DecodeError")
	}

	bad = append([]byte(nil), b...)
	bad[2] = Version + 1
	if _, err := Decode(bad); err == nil {
		t.Fatalf("Decode() with future version err = nil, want DecodeError")
	}
}

func TestDecodeUnknownElementKind(t *testing.T) {
	env := &layout.Envelope{Width: 16, Height: 16}
	txt, err := layout.NewText("t", layout.Rect{W: 16, H: 16},
		layout.Text{Sensor: "s", Style: layout.Style{FontSize: 10}})
	if err != nil {
		t.Fatalf("NewText() err = %v", err)
	}
	env.Elements = []layout.Element{txt}

	b, err := Encode(env)
	if err != nil {
		t.Fatalf("Encode() err = %v, want nil", err)
	}

	// The element kind tag follows magic, version, canvas size, background
	// kind+color and the element count.
	const kindOffset = 2 + 1 + 2 + 2 + 1 + 4 + 2
	if b[kindOffset] != uint8(layout.KindText) {
		t.Fatalf("kind tag at offset %d = %d, want %d", kindOffset, b[kindOffset], layout.KindText)
	}
	b[kindOffset] = 0x7f
	if _, err := Decode(b); err == nil {
		t.Fatalf("Decode() with unknown kind err = nil, want DecodeError")
	}
}

func TestDecodeRandomBytes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		b := make([]byte, rng.Intn(256))
		rng.Read(b)
		if len(b) > 0 {
			b[0] = 0x00 // never a valid magic
		}

		env, err := Decode(b)
		if err == nil {
			t.Fatalf("Decode() of random input err = nil, envelope %+v", env)
		}
		var derr *DecodeError
		if !errors.As(err, &derr) {
			t.Fatalf("Decode() of random input err = %T, want *DecodeError", err)
		}
	}
}

func TestDecodeRejectsInvalidGeometry(t *testing.T) {
	env := testEnvelope(t)
	b, err := Encode(env)
	if err != nil {
		t.Fatalf("Encode() err = %v, want nil", err)
	}

	// Zero the canvas width in place; decode must fail validation closed.
	b[3], b[4] = 0, 0
	if _, err := Decode(b); err == nil {
		t.Fatalf("Decode() with zero canvas width err = nil, want DecodeError")
	}
}

func TestEncodeRejectsInvalidEnvelope(t *testing.T) {
	env := &layout.Envelope{Width: 0, Height: 10}
	if _, err := Encode(env); err == nil {
		t.Fatalf("Encode() of invalid envelope err = nil, want ValidationError")
	}
}
