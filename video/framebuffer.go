// Package video holds the host side of the engine's video output: the ULA
// palette in the panel's native encoding and frame buffers that track the
// rectangle of pixels changed since the last flush.
package video

import (
	"image"

	"zxhost/zx"

	"tinygo.org/x/drivers/pixel"
)

// Placeholder fills a freshly allocated screen. It is red with the lowest
// blue bit set, a value no palette entry produces, so the first frame marks
// every pixel dirty.
var Placeholder = pixel.NewRGB565BE(0xFF, 0x00, 0x08)

// FrameBuffer is one drawable surface in native pixels.
//
// The dirty rectangle is inclusive on both corners and only grows until
// ResetDirty. Writes that leave a pixel unchanged do not grow it.
type FrameBuffer struct {
	pixels  []pixel.RGB565BE
	width   int
	height  int
	surface zx.Surface

	dirty    bool
	min, max image.Point
}

// New allocates a frame buffer for the given surface.
//
// A border surface is a single pixel: every coordinate written to it lands
// on that pixel and its dirty point is (0, 0).
func New(width, height int, surface zx.Surface) *FrameBuffer {
	return newFilled(width, height, surface, Placeholder)
}

func newFilled(width, height int, surface zx.Surface, fill pixel.RGB565BE) *FrameBuffer {
	if surface == zx.SurfaceBorder {
		return &FrameBuffer{
			pixels:  []pixel.RGB565BE{fill},
			width:   1,
			height:  1,
			surface: surface,
		}
	}
	px := make([]pixel.RGB565BE, width*height)
	for i := range px {
		px[i] = fill
	}
	return &FrameBuffer{
		pixels:  px,
		width:   width,
		height:  height,
		surface: surface,
	}
}

func (f *FrameBuffer) Width() int          { return f.width }
func (f *FrameBuffer) Height() int         { return f.height }
func (f *FrameBuffer) Surface() zx.Surface { return f.surface }

// At returns the native pixel at (x, y).
func (f *FrameBuffer) At(x, y int) pixel.RGB565BE {
	if f.surface == zx.SurfaceBorder {
		return f.pixels[0]
	}
	return f.pixels[y*f.width+x]
}

// SetColor writes one pixel, growing the dirty rectangle only on change.
func (f *FrameBuffer) SetColor(x, y int, c zx.Color, b zx.Brightness) {
	if f.surface == zx.SurfaceBorder {
		x, y = 0, 0
	}
	v := Translate(c, b)
	i := y*f.width + x
	if f.pixels[i] == v {
		return
	}
	f.pixels[i] = v
	f.markDirty(x, y)
}

// SetColors writes eight horizontally consecutive pixels starting at x.
func (f *FrameBuffer) SetColors(x, y int, colors [8]zx.Color, b zx.Brightness) {
	for i, c := range colors {
		f.SetColor(x+i, y, c, b)
	}
}

func (f *FrameBuffer) markDirty(x, y int) {
	if !f.dirty {
		f.dirty = true
		f.min = image.Pt(x, y)
		f.max = f.min
		return
	}
	if x < f.min.X {
		f.min.X = x
	}
	if y < f.min.Y {
		f.min.Y = y
	}
	if x > f.max.X {
		f.max.X = x
	}
	if y > f.max.Y {
		f.max.Y = y
	}
}

// Dirty returns the inclusive corners of the changed region.
func (f *FrameBuffer) Dirty() (min, max image.Point, ok bool) {
	if !f.dirty {
		return image.Point{}, image.Point{}, false
	}
	return f.min, f.max, true
}

// ResetDirty forgets the changed region.
func (f *FrameBuffer) ResetDirty() {
	f.dirty = false
	f.min = image.Point{}
	f.max = image.Point{}
}

// Region returns an iterator over the inclusive rectangle min..max.
//
// Bounds are not checked; callers pass corners obtained from Dirty.
func (f *FrameBuffer) Region(min, max image.Point) Region {
	return Region{fb: f, min: min, max: max, x: min.X, y: min.Y}
}

// Region yields native pixels row-major, ascending y then ascending x.
type Region struct {
	fb       *FrameBuffer
	min, max image.Point
	x, y     int
}

// Bounds returns the inclusive corners being iterated.
func (r *Region) Bounds() (min, max image.Point) { return r.min, r.max }

// Len is the number of pixels the full sequence yields.
func (r *Region) Len() int {
	if r.fb == nil {
		return 0
	}
	return (r.max.X - r.min.X + 1) * (r.max.Y - r.min.Y + 1)
}

// Next returns the next pixel, or false once the rectangle is exhausted.
func (r *Region) Next() (pixel.RGB565BE, bool) {
	if r.fb == nil || r.y > r.max.Y {
		return 0, false
	}
	v := r.fb.At(r.x, r.y)
	r.x++
	if r.x > r.max.X {
		r.x = r.min.X
		r.y++
	}
	return v, true
}

// Reset rewinds the iterator to min.
func (r *Region) Reset() {
	r.x = r.min.X
	r.y = r.min.Y
}

// Allocator is the frame buffer factory handed to the engine.
//
// Fill is the frame buffer context: the value new screens start with.
type Allocator struct {
	Fill pixel.RGB565BE
}

// NewAllocator returns an allocator that fills new screens with Placeholder.
func NewAllocator() Allocator { return Allocator{Fill: Placeholder} }

func (a Allocator) NewFrameBuffer(width, height int, surface zx.Surface) *FrameBuffer {
	return newFilled(width, height, surface, a.Fill)
}
