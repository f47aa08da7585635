package hal

// memFramebuffer is an in-memory RGB565 surface, used by tests and by
// callers that hand finished frames to an external driver themselves.
type memFramebuffer struct {
	width  int
	height int
	stride int
	buf    []byte
}

// NewRGB565 allocates an in-memory RGB565 framebuffer.
func NewRGB565(width, height int) Framebuffer {
	stride := width * 2
	return &memFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *memFramebuffer) Width() int          { return f.width }
func (f *memFramebuffer) Height() int         { return f.height }
func (f *memFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int    { return f.stride }
func (f *memFramebuffer) Buffer() []byte      { return f.buf }
func (f *memFramebuffer) Present() error      { return nil }
