//go:build !tinygo

package hal

import "sync"

// MonoFramebuffer is an in-memory monochrome framebuffer, one byte per pixel.
//
// It is also usable standalone (no window) for offline rendering.
type MonoFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	buf    []byte
}

func NewMonoFramebuffer(width, height int) *MonoFramebuffer {
	return &MonoFramebuffer{
		width:  width,
		height: height,
		buf:    make([]byte, width*height),
	}
}

func (f *MonoFramebuffer) Width() int          { return f.width }
func (f *MonoFramebuffer) Height() int         { return f.height }
func (f *MonoFramebuffer) Format() PixelFormat { return PixelFormatMono8 }
func (f *MonoFramebuffer) StrideBytes() int    { return f.width }
func (f *MonoFramebuffer) Buffer() []byte      { return f.buf }
func (f *MonoFramebuffer) Present() error      { return nil }

func (f *MonoFramebuffer) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.buf {
		f.buf[i] = 0
	}
}

func (f *MonoFramebuffer) snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}
