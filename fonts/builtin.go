package fonts

import (
	"fmt"
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/freesans"

	"lcdlink/layout"
)

// Built-in bitmap faces. These render identically on every host, need no
// asset loading, and are cheap enough for the display-side preview, so they
// are the fallback whenever an element names no font.
var builtins = map[string]tinyfont.Fonter{
	"org01":      &tinyfont.Org01,
	"picopixel":  &tinyfont.Picopixel,
	"tomthumb":   &tinyfont.TomThumb,
	"freemono9":  &freemono.Regular9pt7b,
	"freemono12": &freemono.Regular12pt7b,
	"freesans9":  &freesans.Regular9pt7b,
	"freesans12": &freesans.Regular12pt7b,
}

// BuiltinNames lists the recognized built-in face names.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	return names
}

// builtinFace resolves a FontRef to a bitmap face. ok is false when the ref
// points at a TTF/OTF instead; an unknown builtin name is a FontLoadError.
func builtinFace(ref layout.FontRef) (f tinyfont.Fonter, ok bool, err error) {
	name := ""
	switch {
	case ref.Builtin != "":
		name = ref.Builtin
	case ref.IsZero():
		name = DefaultBuiltin
	default:
		return nil, false, nil
	}
	f, found := builtins[name]
	if !found {
		return nil, false, &FontLoadError{Font: name, Err: fmt.Errorf("unknown builtin face")}
	}
	return f, true, nil
}

// patchDisplayer adapts an RGBA patch to drivers.Displayer so tinyfont can
// draw onto it. Out-of-bounds pixels are dropped.
type patchDisplayer struct {
	img *image.RGBA
}

func newPatchDisplayer(img *image.RGBA) *patchDisplayer {
	return &patchDisplayer{img: img}
}

var _ drivers.Displayer = (*patchDisplayer)(nil)

func (d *patchDisplayer) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *patchDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if !image.Pt(int(x), int(y)).In(d.img.Bounds()) {
		return
	}
	d.img.SetRGBA(int(x), int(y), c)
}

func (d *patchDisplayer) Display() error { return nil }
