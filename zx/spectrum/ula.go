package spectrum

import "zxhost/zx"

const (
	bitmapBase = 0x4000
	attrBase   = 0x5800
	cellsX     = zx.ScreenWidth / 8
)

// bitmapAddr returns the display file address of the byte holding pixels
// (cx*8 .. cx*8+7, y).
func bitmapAddr(y, cx int) uint16 {
	return uint16(bitmapBase | (y&0xC0)<<5 | (y&0x07)<<8 | (y&0x38)<<2 | cx)
}

func attrAddr(y, cx int) uint16 {
	return uint16(attrBase + (y/8)*cellsX + cx)
}

func parseAttr(a byte) (ink, paper zx.Color, b zx.Brightness, flash bool) {
	ink = zx.Color(a & 0x07)
	paper = zx.Color((a >> 3) & 0x07)
	if a&0x40 != 0 {
		b = zx.Bright
	}
	return ink, paper, b, a&0x80 != 0
}

// render pushes the whole display file through the frame buffers. The
// buffers skip unchanged pixels, so only real changes become dirty.
func (m *Machine[FB]) render() {
	var colors [8]zx.Color
	for y := 0; y < zx.ScreenHeight; y++ {
		for cx := 0; cx < cellsX; cx++ {
			bits := m.mem[bitmapAddr(y, cx)]
			ink, paper, b, flash := parseAttr(m.mem[attrAddr(y, cx)])
			if flash && m.flash {
				ink, paper = paper, ink
			}
			for i := range colors {
				if bits&(0x80>>i) != 0 {
					colors[i] = ink
				} else {
					colors[i] = paper
				}
			}
			m.screen.SetColors(cx*8, y, colors, b)
		}
	}
	m.border.SetColor(0, 0, m.borderColor, zx.Normal)
}
