// Package hal bridges rendered frames to display hardware surfaces: an
// RGB565 framebuffer abstraction for constrained panels and a desktop
// window for previewing layouts on the host.
package hal

// PixelFormat identifies a framebuffer's pixel layout.
type PixelFormat uint8

const (
	PixelFormatUnknown PixelFormat = iota
	PixelFormatRGB565
)

// Framebuffer is a presentable pixel surface, typically owned by a display
// driver on the far side of the link.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	Present() error
}
