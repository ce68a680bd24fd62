// Package spectrum is the 48K machine model driven by the host loop: memory,
// the ULA's screen and border, the keyboard matrix and the tape loader.
package spectrum

import (
	"errors"
	"fmt"
	"time"

	"zxhost/zx"
)

const (
	memSize  = 0x10000
	romEnd   = 0x4000
	ulaPort  = 0x00FE
	portMask = 0x0001
)

var (
	ErrSettings  = errors.New("spectrum: invalid settings")
	ErrNoFactory = errors.New("spectrum: no frame buffer factory")
	ErrNoClock   = errors.New("spectrum: no stopwatch")
)

// Machine is a 48K Spectrum drawing into frame buffers of type FB.
type Machine[FB zx.FrameBuffer] struct {
	settings zx.Settings
	host     zx.Host[FB]

	mem [memSize]byte

	screen FB
	border FB

	borderColor zx.Color
	matrix      [zx.HalfRows]uint8

	frames     uint64
	flashCount int
	flash      bool

	loader *loader
}

// New validates settings and allocates the machine's frame buffers.
func New[FB zx.FrameBuffer](settings zx.Settings, host zx.Host[FB]) (*Machine[FB], error) {
	if settings.FramesPerStep < 1 {
		return nil, fmt.Errorf("%w: frames per step %d", ErrSettings, settings.FramesPerStep)
	}
	if settings.FlashFrames < 1 {
		return nil, fmt.Errorf("%w: flash period %d", ErrSettings, settings.FlashFrames)
	}
	if host.FrameBuffers == nil {
		return nil, ErrNoFactory
	}
	if host.Stopwatch == nil {
		return nil, ErrNoClock
	}
	if host.IO == nil {
		host.IO = zx.StubIOExtender{}
	}

	m := &Machine[FB]{settings: settings, host: host, borderColor: zx.White}
	m.screen = host.FrameBuffers.NewFrameBuffer(zx.ScreenWidth, zx.ScreenHeight, zx.SurfaceScreen)
	m.border = host.FrameBuffers.NewFrameBuffer(1, 1, zx.SurfaceBorder)
	return m, nil
}

func (m *Machine[FB]) Settings() zx.Settings { return m.settings }

// ScreenBuffer returns the 256x192 display buffer.
func (m *Machine[FB]) ScreenBuffer() FB { return m.screen }

// BorderBuffer returns the single-pixel border buffer.
func (m *Machine[FB]) BorderBuffer() FB { return m.border }

// ResetDirty clears the dirty state of both buffers.
func (m *Machine[FB]) ResetDirty() {
	m.screen.ResetDirty()
	m.border.ResetDirty()
}

// Frames returns the number of frames emulated so far.
func (m *Machine[FB]) Frames() uint64 { return m.frames }

// Peek reads one byte of memory.
func (m *Machine[FB]) Peek(addr uint16) byte { return m.mem[addr] }

// Poke writes one byte of memory. Writes to ROM are ignored.
func (m *Machine[FB]) Poke(addr uint16, v byte) {
	if addr < romEnd {
		return
	}
	m.mem[addr] = v
}

// SendKey presses or releases one matrix key.
func (m *Machine[FB]) SendKey(k zx.Key, pressed bool) {
	if int(k) >= zx.NumKeys {
		return
	}
	row := k.HalfRow()
	if pressed {
		m.matrix[row] |= k.Bit()
	} else {
		m.matrix[row] &^= k.Bit()
	}
}

// ReadPort reads an I/O port. Even ports are answered by the ULA with the
// active-low state of every half-row whose address line is low.
func (m *Machine[FB]) ReadPort(port uint16) byte {
	if port&portMask != 0 {
		if v, ok := m.host.IO.ReadPort(port); ok {
			return v
		}
		return 0xFF
	}
	keys := uint8(0x1F)
	for row := 0; row < zx.HalfRows; row++ {
		if port&(1<<(8+row)) == 0 {
			keys &^= m.matrix[row]
		}
	}
	return 0xE0 | keys
}

// WritePort writes an I/O port. The ULA takes the border color from bits 0-2.
func (m *Machine[FB]) WritePort(port uint16, v byte) {
	if port&portMask != 0 {
		m.host.IO.WritePort(port, v)
		return
	}
	m.borderColor = zx.Color(v & 0x07)
}

// BorderColor returns the last border color written to the ULA.
func (m *Machine[FB]) BorderColor() zx.Color { return m.borderColor }

// EmulateFrames advances up to Settings.FramesPerStep frames. It stops
// early once the stopwatch total reaches max; max of zero means no limit.
func (m *Machine[FB]) EmulateFrames(max time.Duration) (time.Duration, error) {
	var elapsed time.Duration
	for i := 0; i < m.settings.FramesPerStep; i++ {
		if err := m.frame(); err != nil {
			return elapsed, err
		}
		elapsed += m.host.Stopwatch.Measure()
		if max > 0 && elapsed >= max {
			break
		}
	}
	return elapsed, nil
}

func (m *Machine[FB]) frame() error {
	if m.loader != nil {
		done, err := m.loader.step(m)
		if done || err != nil {
			m.loader = nil
		}
		if err != nil {
			return fmt.Errorf("spectrum: frame %d: %w", m.frames, err)
		}
	}

	m.frames++
	m.flashCount++
	if m.flashCount >= m.settings.FlashFrames {
		m.flashCount = 0
		m.flash = !m.flash
	}

	m.render()
	return nil
}

// Loading reports whether a tape is still being fed one block per frame.
func (m *Machine[FB]) Loading() bool { return m.loader != nil }
