package hal

import (
	"image/color"

	"zxhost/video"

	"tinygo.org/x/drivers/pixel"
)

// toPanel converts a drawing color to the panel's wire format.
func toPanel(c color.RGBA) pixel.RGB565BE {
	return pixel.NewRGB565BE(c.R, c.G, c.B)
}

// fromPanel expands a panel pixel back to 8 bits per channel.
func fromPanel(p pixel.RGB565BE) color.RGBA {
	return video.RGBA(p)
}
