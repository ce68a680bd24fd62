//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers"
)

const picoCalcPanelSize = 320

type ili9488 struct {
	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	txBuf []byte
	size  int16
}

func initILI9488() (*ili9488, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("SPI1 unavailable")
	}

	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})

	lcd := &ili9488{
		spi:   *machine.SPI1,
		cs:    machine.GP13,
		dc:    machine.GP14,
		rst:   machine.GP15,
		txBuf: make([]byte, 4096),
		size:  picoCalcPanelSize,
	}

	lcd.cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.dc.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.rst.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.cs.High()
	lcd.dc.High()
	lcd.rst.High()

	lcd.reset()
	lcd.init()

	return lcd, nil
}

func (d *ili9488) reset() {
	d.rst.Low()
	time.Sleep(64 * time.Millisecond)
	d.rst.High()
	time.Sleep(140 * time.Millisecond)
}

func (d *ili9488) init() {
	// Power control.
	d.cmd(0xC0, 0x17, 0x15) // PWCTRL1
	d.cmd(0xC1, 0x41)       // PWCTRL2

	// VCOM control.
	d.cmd(0xC5, 0x00, 0x12, 0x80, 0x40) // VMCTRL

	// Pixel format: 16bpp.
	d.cmd(0x3A, 0x55) // COLMOD

	// Frame rate / display function.
	d.cmd(0xB1, 0xA0, 0x11)       // FRMCTRL1
	d.cmd(0xB6, 0x02, 0x22, 0x27) // DISCTRL (320 lines)

	// Inversion mode. Many panels look correct with inversion enabled.
	d.cmd(0x21) // INVON

	// Memory access control: mirror for PicoCalc wiring + BGR panel order.
	d.cmd(0x36, 0x40|0x04|0x08) // MX|MH|BGR

	d.cmd(0x11) // SLPOUT
	time.Sleep(120 * time.Millisecond)
	d.cmd(0x29) // DISPON
}

func (d *ili9488) cmd(cmd byte, data ...byte) {
	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{cmd}, nil)
	d.dc.High()
	if len(data) > 0 {
		d.spi.Tx(data, nil)
	}
	d.cs.High()
}

func (d *ili9488) setWindow(x0, y0, x1, y1 uint16) {
	d.cmd(
		0x2A,
		byte(x0>>8), byte(x0),
		byte(x1>>8), byte(x1),
	)
	d.cmd(
		0x2B,
		byte(y0>>8), byte(y0),
		byte(y1>>8), byte(y1),
	)
	d.cmd(0x2C)
}

// startPixels selects the window and leaves the bus open for pixel data.
func (d *ili9488) startPixels(x0, y0, x1, y1 int16) {
	d.setWindow(uint16(x0), uint16(y0), uint16(x1), uint16(y1))
	d.cs.Low()
	d.dc.High()
}

func (d *ili9488) Size() (x, y int16) { return d.size, d.size }

func (d *ili9488) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= d.size || y >= d.size {
		return
	}
	v := toPanel(c)
	d.startPixels(x, y, x, y)
	d.spi.Tx([]byte{byte(v), byte(v >> 8)}, nil)
	d.cs.High()
}

func (d *ili9488) Display() error { return nil }

func (d *ili9488) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	x1, y1 := x+width-1, y+height-1
	if !regionInside(x, y, x1, y1, d.size, d.size) {
		return ErrRegion
	}
	v := toPanel(c)
	chunk := d.txBuf[:len(d.txBuf)&^1]
	for i := 0; i < len(chunk); i += 2 {
		chunk[i] = byte(v)
		chunk[i+1] = byte(v >> 8)
	}

	d.startPixels(x, y, x1, y1)
	for remain := int(width) * int(height) * 2; remain > 0; {
		n := len(chunk)
		if n > remain {
			n = remain
		}
		d.spi.Tx(chunk[:n], nil)
		remain -= n
	}
	d.cs.High()
	return nil
}

// SetScroll sets the vertical scroll start address (VSCRSADD).
func (d *ili9488) SetScroll(line int16) {
	d.cmd(0x37, byte(uint16(line)>>8), byte(line))
}

func (d *ili9488) SetRotation(rotation drivers.Rotation) error {
	if rotation != drivers.Rotation0 {
		return ErrNotImplemented
	}
	return nil
}

// WriteRegion streams src into the window in chunks of the transmit buffer.
func (d *ili9488) WriteRegion(x0, y0, x1, y1 int16, src PixelSource) error {
	if !regionInside(x0, y0, x1, y1, d.size, d.size) {
		return ErrRegion
	}
	if len(d.txBuf) < 2 {
		return errors.New("tx buffer too small")
	}
	chunk := d.txBuf[:len(d.txBuf)&^1]

	d.startPixels(x0, y0, x1, y1)
	defer d.cs.High()

	n := 0
	for {
		v, ok := src.Next()
		if !ok {
			break
		}
		// RGB565BE keeps the wire byte order in memory.
		chunk[n] = byte(v)
		chunk[n+1] = byte(v >> 8)
		n += 2
		if n == len(chunk) {
			d.spi.Tx(chunk, nil)
			n = 0
		}
	}
	if n > 0 {
		d.spi.Tx(chunk[:n], nil)
	}
	return nil
}
