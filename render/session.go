// Package render rasterizes an envelope plus a sensor snapshot into an
// RGBA canvas. Rendering is synchronous and single-threaded; a Session
// owns the caches that make repeated ticks cheap and must not be shared
// between goroutines. Independent sessions never share state.
package render

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"lcdlink/fonts"
	"lcdlink/layout"
)

// Session holds per-rendering-session state: the font service with its
// glyph patch cache, the decoded image cache and the diagnostics logger.
// Caches live until the session is dropped; the element set is expected to
// stay largely static across ticks while only sensor values change.
type Session struct {
	fonts  *fonts.Service
	loader layout.AssetLoader
	log    *zap.Logger
	images map[string]*image.RGBA
}

// Option configures a Session.
type Option func(*Session)

// WithFonts supplies a pre-configured font service. The session takes
// ownership; sharing one service across sessions is not supported.
func WithFonts(f *fonts.Service) Option {
	return func(s *Session) { s.fonts = f }
}

// WithAssetLoader supplies the resolver for path-referenced images and
// fonts.
func WithAssetLoader(l layout.AssetLoader) Option {
	return func(s *Session) { s.loader = l }
}

// WithLogger attaches a logger for per-element diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) { s.log = log }
}

// NewSession builds a rendering session.
func NewSession(opts ...Option) *Session {
	s := &Session{
		log:    zap.NewNop(),
		images: make(map[string]*image.RGBA),
	}
	for _, o := range opts {
		o(s)
	}
	if s.fonts == nil {
		s.fonts = fonts.New(fonts.WithLoader(s.loader))
	}
	return s
}

// ElementError attributes a per-element render failure to its element.
// These are recoverable: the rest of the frame still renders.
type ElementError struct {
	ID   string
	Kind layout.ElementKind
	Err  error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %q (%s): %v", e.ID, e.Kind, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }
