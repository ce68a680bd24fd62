package hal

import (
	"errors"

	"tinygo.org/x/drivers/pixel"
	"tinygo.org/x/tinyterm"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var (
	ErrNotImplemented = errors.New("not implemented")
	// ErrNoData is returned by Scancodes.ReadByte when nothing is pending.
	ErrNoData = errors.New("no data")
	// ErrRegion is returned for a region outside the panel.
	ErrRegion = errors.New("region out of bounds")
)

// PixelSource yields panel pixels in row-major order.
type PixelSource interface {
	Next() (pixel.RGB565BE, bool)
}

// Display is a panel. It draws text through the tinyterm contract and
// takes emulator frames as rectangular pixel streams.
type Display interface {
	tinyterm.Displayer

	// WriteRegion fills the inclusive rectangle (x0,y0)-(x1,y1) from src.
	// It stops early if src runs dry.
	WriteRegion(x0, y0, x1, y1 int16, src PixelSource) error
}

// Scancodes is the byte stream of a PS/2 keyboard in scan code set 2.
type Scancodes interface {
	// ReadByte returns the next byte or ErrNoData.
	ReadByte() (byte, error)
}

// HAL provides the only contact point between the emulator and the outside
// world.
type HAL interface {
	Logger() Logger
	LED() LED
	Display() Display
	Keyboard() Scancodes
}

// regionInside reports whether the inclusive rectangle lies on a w x h panel.
func regionInside(x0, y0, x1, y1, w, h int16) bool {
	return x0 >= 0 && y0 >= 0 && x0 <= x1 && y0 <= y1 && x1 < w && y1 < h
}
