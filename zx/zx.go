// Package zx describes the boundary between an emulation engine and the
// host it runs on: the machine's color and key vocabulary, and the narrow
// capabilities (frame buffers, stopwatch, tape asset, I/O extender) the
// host hands to the engine at construction.
package zx

import (
	"io"
	"time"
)

// Color is one of the eight ULA hues.
//
// The index bits follow the hardware: bit 0 blue, bit 1 red, bit 2 green.
type Color uint8

const (
	Black Color = iota
	Blue
	Red
	Purple
	Green
	Cyan
	Yellow
	White
)

// NumColors is the size of the hue domain.
const NumColors = 8

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Purple:
		return "purple"
	case Green:
		return "green"
	case Cyan:
		return "cyan"
	case Yellow:
		return "yellow"
	case White:
		return "white"
	default:
		return "invalid"
	}
}

// Brightness is the BRIGHT attribute bit.
type Brightness uint8

const (
	Normal Brightness = iota
	Bright
)

func (b Brightness) String() string {
	if b == Bright {
		return "bright"
	}
	return "normal"
}

// Surface selects which drawable a frame buffer backs.
type Surface uint8

const (
	// SurfaceScreen is the 256x192 paper area.
	SurfaceScreen Surface = iota
	// SurfaceBorder is the strip around the paper area.
	SurfaceBorder
)

// Screen geometry of the 48K machine.
const (
	ScreenWidth  = 256
	ScreenHeight = 192
)

// FrameBuffer receives pixels from the engine's video generator.
type FrameBuffer interface {
	SetColor(x, y int, c Color, b Brightness)
	SetColors(x, y int, colors [8]Color, b Brightness)
	ResetDirty()
}

// FrameBufferFactory builds the frame buffers an engine draws into.
type FrameBufferFactory[FB FrameBuffer] interface {
	NewFrameBuffer(width, height int, surface Surface) FB
}

// Stopwatch reports how long emulation has been running for rate limiting.
type Stopwatch interface {
	Measure() time.Duration
}

// TapeAsset is a tape image the engine reads from.
type TapeAsset interface {
	io.Reader
	io.Seeker
}

// IOExtender serves I/O ports the machine itself does not decode.
type IOExtender interface {
	ReadPort(port uint16) (byte, bool)
	WritePort(port uint16, v byte)
}

// StubIOExtender decodes no ports.
type StubIOExtender struct{}

func (StubIOExtender) ReadPort(uint16) (byte, bool) { return 0xFF, false }

func (StubIOExtender) WritePort(uint16, byte) {}

// Host bundles the capabilities an engine needs from its environment.
type Host[FB FrameBuffer] struct {
	FrameBuffers FrameBufferFactory[FB]
	Stopwatch    Stopwatch
	IO           IOExtender
}

// Settings configures an engine instance.
type Settings struct {
	// FramesPerStep is how many frames one EmulateFrames call advances.
	FramesPerStep int
	// TapeFastload applies a whole tape at load time instead of one block
	// per frame.
	TapeFastload bool
	// FlashFrames is the FLASH attribute half period in frames.
	FlashFrames int
}

// DefaultSettings matches a 48K machine emulated one frame at a time.
func DefaultSettings() Settings {
	return Settings{
		FramesPerStep: 1,
		TapeFastload:  true,
		FlashFrames:   16,
	}
}
