//go:build tinygo && baremetal

package hal

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// nullPanel stands in for a panel that is absent or failed to initialize.
// Frames are consumed and discarded so the loop keeps its timing.
type nullPanel struct {
	w int16
	h int16
}

func (p *nullPanel) Size() (x, y int16) { return p.w, p.h }

func (p *nullPanel) SetPixel(int16, int16, color.RGBA) {}

func (p *nullPanel) Display() error { return ErrNotImplemented }

func (p *nullPanel) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	return nil
}

func (p *nullPanel) SetScroll(line int16) { _ = line }

func (p *nullPanel) SetRotation(rotation drivers.Rotation) error { return nil }

func (p *nullPanel) WriteRegion(x0, y0, x1, y1 int16, src PixelSource) error {
	if !regionInside(x0, y0, x1, y1, p.w, p.h) {
		return ErrRegion
	}
	for {
		if _, ok := src.Next(); !ok {
			return nil
		}
	}
}

// chainScancodes reads from the first source that has a byte pending.
type chainScancodes []Scancodes

func (c chainScancodes) ReadByte() (byte, error) {
	for _, s := range c {
		if b, err := s.ReadByte(); err == nil {
			return b, nil
		}
	}
	return 0, ErrNoData
}
