package video

import (
	"image/color"

	"zxhost/zx"

	"tinygo.org/x/drivers/pixel"
)

// Channel maxima of the 565 encoding.
const (
	maxR = 0x1F
	maxG = 0x3F
	maxB = 0x1F
)

// palette is indexed by brightness*8 + color.
var palette = buildPalette()

func buildPalette() [2 * zx.NumColors]pixel.RGB565BE {
	var p [2 * zx.NumColors]pixel.RGB565BE
	for c := zx.Color(0); c < zx.NumColors; c++ {
		p[c] = encode(c, maxR/2, maxG/2, maxB/2)
		p[zx.NumColors+int(c)] = encode(c, maxR, maxG, maxB)
	}
	return p
}

func encode(c zx.Color, r, g, b uint8) pixel.RGB565BE {
	if c&2 == 0 {
		r = 0
	}
	if c&4 == 0 {
		g = 0
	}
	if c&1 == 0 {
		b = 0
	}
	return pixel.NewRGB565BE(r<<3, g<<2, b<<3)
}

// Translate maps a ULA color to the panel's native pixel.
//
// Normal brightness is each lit channel at half its maximum level, truncated.
// Black is the same for both brightness levels.
func Translate(c zx.Color, b zx.Brightness) pixel.RGB565BE {
	i := int(c & 7)
	if b == zx.Bright {
		i += zx.NumColors
	}
	return palette[i]
}

// RGBA expands a native pixel to 8 bits per channel, for drawing calls that
// take a color.RGBA.
func RGBA(p pixel.RGB565BE) color.RGBA {
	r, g, b := channels(p)
	return color.RGBA{
		R: uint8(r * 255 / maxR),
		G: uint8(g * 255 / maxG),
		B: uint8(b * 255 / maxB),
		A: 0xFF,
	}
}

func channels(p pixel.RGB565BE) (r, g, b uint16) {
	v := uint16(p)
	v = v<<8 | v>>8
	return (v >> 11) & maxR, (v >> 5) & maxG, v & maxB
}
