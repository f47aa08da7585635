// Package layout defines the screen description shared by the host and
// display applications: a canvas, a background and an ordered list of
// elements driven by live sensor values. The list order is the paint order;
// later elements composite on top of earlier ones.
package layout

import "image/color"

// ElementKind identifies the element variant carried in Element.
type ElementKind uint8

const (
	KindStaticImage ElementKind = iota + 1
	KindText
	KindGraph
	KindConditionalImage
)

func (k ElementKind) String() string {
	switch k {
	case KindStaticImage:
		return "static_image"
	case KindText:
		return "text"
	case KindGraph:
		return "graph"
	case KindConditionalImage:
		return "conditional_image"
	default:
		return "unknown"
	}
}

// Rect is an element's target rectangle in canvas pixels.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether r lies fully inside a w*h canvas.
func (r Rect) Contains(w, h int) bool {
	return r.X >= 0 && r.Y >= 0 && r.X+r.W <= w && r.Y+r.H <= h
}

// FontRef names the font used by a text element. At most one field is set:
// Builtin selects a built-in bitmap face by name, Path a TTF/OTF resolved
// through the caller's asset loader, TTF embedded TTF/OTF bytes.
type FontRef struct {
	Builtin string
	Path    string
	TTF     []byte
}

// IsZero reports whether the reference names no font at all.
func (f FontRef) IsZero() bool {
	return f.Builtin == "" && f.Path == "" && len(f.TTF) == 0
}

// Style carries the visual attributes of text-bearing elements.
type Style struct {
	Color    color.RGBA
	Font     FontRef
	FontSize int
	Fill     bool
}

// TextAlign selects horizontal placement of text inside its rectangle.
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

func (a TextAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// StaticImage is an embedded or path-referenced raster image drawn into its
// rectangle. Embedded Data takes precedence over Path.
type StaticImage struct {
	Data []byte
	Path string
}

// Text renders the bound sensor's current value. Format may contain the
// placeholders {value} and {unit}; an empty format means "{value}{unit}".
type Text struct {
	Sensor string
	Format string
	Align  TextAlign
	Style  Style
}

// GraphMode selects the plot style.
type GraphMode uint8

const (
	GraphLine GraphMode = iota
	GraphFilled
)

func (m GraphMode) String() string {
	switch m {
	case GraphLine:
		return "line"
	case GraphFilled:
		return "filled"
	default:
		return "unknown"
	}
}

// Graph plots the bound sensor's history. When HasMin/HasMax are false the
// bounds are derived from the supplied history at render time.
type Graph struct {
	Sensor      string
	Mode        GraphMode
	HasMin      bool
	Min         float64
	HasMax      bool
	Max         float64
	StrokeWidth int
	LineColor   color.RGBA
	FillColor   color.RGBA
	BorderColor color.RGBA
}

// ImageRange binds one candidate image to an inclusive value range.
type ImageRange struct {
	Lo, Hi float64
	Image  []byte
}

// ConditionalImage selects among candidate images based on which range the
// bound sensor's current value falls into. Ranges must not overlap; the
// first range in declared order containing the value wins. Default, when
// non-empty, is used if no range matches.
type ConditionalImage struct {
	Sensor  string
	Ranges  []ImageRange
	Default []byte
}

// Element is one visual unit. Kind selects which of the payload pointers is
// populated; exactly one is non-nil for a valid element.
type Element struct {
	ID   string
	Kind ElementKind
	Rect Rect

	StaticImage      *StaticImage
	Text             *Text
	Graph            *Graph
	ConditionalImage *ConditionalImage
}

// NewStaticImage builds and validates a static image element.
func NewStaticImage(id string, r Rect, img StaticImage) (Element, error) {
	e := Element{ID: id, Kind: KindStaticImage, Rect: r, StaticImage: &img}
	return e, e.Validate()
}

// NewText builds and validates a text element.
func NewText(id string, r Rect, t Text) (Element, error) {
	e := Element{ID: id, Kind: KindText, Rect: r, Text: &t}
	return e, e.Validate()
}

// NewGraph builds and validates a graph element.
func NewGraph(id string, r Rect, g Graph) (Element, error) {
	if g.StrokeWidth == 0 {
		g.StrokeWidth = 1
	}
	e := Element{ID: id, Kind: KindGraph, Rect: r, Graph: &g}
	return e, e.Validate()
}

// NewConditionalImage builds and validates a conditional image element.
func NewConditionalImage(id string, r Rect, c ConditionalImage) (Element, error) {
	e := Element{ID: id, Kind: KindConditionalImage, Rect: r, ConditionalImage: &c}
	return e, e.Validate()
}
