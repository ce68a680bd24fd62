package hal

import (
	"image"
	"image/color"
	"sync"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/pixel"
)

// memPanel is a panel held in RAM. Host builds draw it to a window or a
// snapshot.
type memPanel struct {
	mu     sync.Mutex
	width  int16
	height int16
	pix    []pixel.RGB565BE
	writes int
}

func newMemPanel(width, height int16) *memPanel {
	return &memPanel{
		width:  width,
		height: height,
		pix:    make([]pixel.RGB565BE, int(width)*int(height)),
	}
}

func (p *memPanel) Size() (x, y int16) { return p.width, p.height }

func (p *memPanel) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return
	}
	p.mu.Lock()
	p.pix[int(y)*int(p.width)+int(x)] = toPanel(c)
	p.mu.Unlock()
}

func (p *memPanel) Display() error { return nil }

func (p *memPanel) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clampInt16(x, 0, p.width)
	y0 := clampInt16(y, 0, p.height)
	x1 := clampInt16(x+width, 0, p.width)
	y1 := clampInt16(y+height, 0, p.height)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	v := toPanel(c)
	p.mu.Lock()
	defer p.mu.Unlock()
	for py := y0; py < y1; py++ {
		row := p.pix[int(py)*int(p.width):]
		for px := x0; px < x1; px++ {
			row[px] = v
		}
	}
	return nil
}

func (p *memPanel) SetScroll(int16) {}

func (p *memPanel) SetRotation(drivers.Rotation) error { return nil }

func (p *memPanel) WriteRegion(x0, y0, x1, y1 int16, src PixelSource) error {
	if !regionInside(x0, y0, x1, y1, p.width, p.height) {
		return ErrRegion
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writes++
	for y := y0; y <= y1; y++ {
		row := p.pix[int(y)*int(p.width):]
		for x := x0; x <= x1; x++ {
			v, ok := src.Next()
			if !ok {
				return nil
			}
			row[x] = v
		}
	}
	return nil
}

// at returns one panel pixel.
func (p *memPanel) at(x, y int16) pixel.RGB565BE {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pix[int(y)*int(p.width)+int(x)]
}

// snapshot converts the panel into dst, allocating it when the size differs.
func (p *memPanel) snapshot(dst *image.RGBA) *image.RGBA {
	if dst == nil || dst.Bounds().Dx() != int(p.width) || dst.Bounds().Dy() != int(p.height) {
		dst = image.NewRGBA(image.Rect(0, 0, int(p.width), int(p.height)))
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, v := range p.pix {
		c := fromPanel(v)
		j := i * 4
		dst.Pix[j+0] = c.R
		dst.Pix[j+1] = c.G
		dst.Pix[j+2] = c.B
		dst.Pix[j+3] = 0xFF
	}
	return dst
}

func clampInt16(v, lo, hi int16) int16 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
