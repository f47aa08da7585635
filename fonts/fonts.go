// Package fonts measures and rasterizes glyph runs for the compositor.
//
// Two face families are supported: built-in bitmap faces (tinyfont, drawn
// the same way the display side draws its terminal glyphs) and TTF/OTF
// faces parsed with x/image/font/opentype. Rasterized runs are tinted RGBA
// patches with a transparent background, ready for alpha blending, and are
// cached per service instance keyed by (text, font, size, color).
//
// A Service is owned by one rendering session and is not safe for
// concurrent use.
package fonts

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"tinygo.org/x/tinyfont"

	"lcdlink/layout"
)

// DefaultBuiltin is the face used when an element names no font.
const DefaultBuiltin = "org01"

// FontLoadError reports a font that could not be obtained or parsed.
type FontLoadError struct {
	Font string
	Err  error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("font %q: %v", e.Font, e.Err)
}

func (e *FontLoadError) Unwrap() error { return e.Err }

// Service loads faces and rasterizes text runs.
type Service struct {
	loader  layout.AssetLoader
	hinting font.Hinting

	parsed  map[string]*sfnt.Font
	faces   map[faceKey]font.Face
	patches map[patchKey]*image.RGBA
}

type faceKey struct {
	font string
	size int
}

type patchKey struct {
	text string
	font string
	size int
	c    color.RGBA
}

// Option configures a Service.
type Option func(*Service)

// WithLoader supplies the resolver for path-referenced fonts.
func WithLoader(l layout.AssetLoader) Option {
	return func(s *Service) { s.loader = l }
}

// WithHinting sets the rasterization quality for TTF faces. Full hinting is
// the default; font.HintingNone trades quality for speed.
func WithHinting(h font.Hinting) Option {
	return func(s *Service) { s.hinting = h }
}

// New builds a font service.
func New(opts ...Option) *Service {
	s := &Service{
		hinting: font.HintingFull,
		parsed:  make(map[string]*sfnt.Font),
		faces:   make(map[faceKey]font.Face),
		patches: make(map[patchKey]*image.RGBA),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Measure returns the pixel bounding box text would occupy. The rasterized
// patch for the same inputs never exceeds this box.
func (s *Service) Measure(text string, ref layout.FontRef, size int) (w, h int, err error) {
	if bf, ok, err := builtinFace(ref); err != nil {
		return 0, 0, err
	} else if ok {
		_, lw := tinyfont.LineWidth(bf, text)
		return int(lw), int(bf.GetYAdvance()), nil
	}

	face, err := s.face(ref, size)
	if err != nil {
		return 0, 0, err
	}
	bounds, _ := font.BoundString(face, text)
	w = (bounds.Max.X - bounds.Min.X).Ceil()
	h = (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h, nil
}

// Rasterize returns the tinted patch for a text run, from cache when the
// run was drawn before in this session. Callers must not modify the
// returned image.
func (s *Service) Rasterize(text string, ref layout.FontRef, size int, c color.RGBA) (*image.RGBA, error) {
	key := patchKey{text: text, font: refKey(ref), size: size, c: c}
	if p, ok := s.patches[key]; ok {
		return p, nil
	}

	p, err := s.rasterize(text, ref, size, c)
	if err != nil {
		return nil, err
	}
	s.patches[key] = p
	return p, nil
}

func (s *Service) rasterize(text string, ref layout.FontRef, size int, c color.RGBA) (*image.RGBA, error) {
	if bf, ok, err := builtinFace(ref); err != nil {
		return nil, err
	} else if ok {
		_, lw := tinyfont.LineWidth(bf, text)
		h := int(bf.GetYAdvance())
		patch := image.NewRGBA(image.Rect(0, 0, int(lw), h))
		// Baseline one row above the bottom, as the display side places it.
		tinyfont.WriteLine(newPatchDisplayer(patch), bf, 0, int16(h-1), text, c)
		return patch, nil
	}

	face, err := s.face(ref, size)
	if err != nil {
		return nil, err
	}
	bounds, _ := font.BoundString(face, text)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0)), nil
	}

	patch := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  patch,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y},
	}
	d.DrawString(text)
	return patch, nil
}

func (s *Service) face(ref layout.FontRef, size int) (font.Face, error) {
	key := faceKey{font: refKey(ref), size: size}
	if f, ok := s.faces[key]; ok {
		return f, nil
	}

	parsed, err := s.parse(ref)
	if err != nil {
		return nil, err
	}
	f, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: s.hinting,
	})
	if err != nil {
		return nil, &FontLoadError{Font: key.font, Err: err}
	}
	s.faces[key] = f
	return f, nil
}

func (s *Service) parse(ref layout.FontRef) (*sfnt.Font, error) {
	key := refKey(ref)
	if f, ok := s.parsed[key]; ok {
		return f, nil
	}

	data := ref.TTF
	if len(data) == 0 {
		if s.loader == nil {
			return nil, &FontLoadError{Font: key, Err: fmt.Errorf("no asset loader configured")}
		}
		var err error
		data, err = s.loader(ref.Path)
		if err != nil {
			return nil, &FontLoadError{Font: key, Err: err}
		}
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, &FontLoadError{Font: key, Err: err}
	}
	s.parsed[key] = f
	return f, nil
}

func refKey(ref layout.FontRef) string {
	switch {
	case ref.Builtin != "":
		return "builtin:" + ref.Builtin
	case ref.Path != "":
		return "path:" + ref.Path
	case len(ref.TTF) > 0:
		h := fnv.New64a()
		h.Write(ref.TTF)
		return fmt.Sprintf("ttf:%d:%x", len(ref.TTF), h.Sum64())
	default:
		return "builtin:" + DefaultBuiltin
	}
}
