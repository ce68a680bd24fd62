//go:build tinygo && baremetal && wioterminal

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ili9341"
)

type wioTerminalHAL struct {
	logger *uartLogger
	led    *pinLED
	disp   Display
	kbd    Scancodes
}

// New returns a Wio Terminal HAL implementation.
//
// Logs go to USB CDC. Scancodes arrive on UART1 (header pins 8/10) at
// 115200 8N1. The ILI9341 is driven over SPI3 in landscape.
func New() HAL {
	uart := machine.UART1
	uart.Configure(machine.UARTConfig{BaudRate: 115200})

	return &wioTerminalHAL{
		logger: &uartLogger{w: machine.Serial},
		led:    newPinLED(machine.LED),
		disp:   newWioPanel(),
		kbd:    &uartScancodes{uart: uart},
	}
}

func (h *wioTerminalHAL) Logger() Logger      { return h.logger }
func (h *wioTerminalHAL) LED() LED            { return h.led }
func (h *wioTerminalHAL) Display() Display    { return h.disp }
func (h *wioTerminalHAL) Keyboard() Scancodes { return h.kbd }

// wioPanel adds region writes to the ILI9341 driver.
type wioPanel struct {
	*ili9341.Device
	row []uint8
}

func newWioPanel() *wioPanel {
	machine.SPI3.Configure(machine.SPIConfig{
		SCK:       machine.LCD_SCK_PIN,
		SDO:       machine.LCD_SDO_PIN,
		SDI:       machine.LCD_SDI_PIN,
		Frequency: 40000000,
	})

	backlight := machine.LCD_BACKLIGHT
	backlight.Configure(machine.PinConfig{Mode: machine.PinOutput})

	dev := ili9341.NewSPI(machine.SPI3, machine.LCD_DC, machine.LCD_SS_PIN, machine.LCD_RESET)
	dev.Configure(ili9341.Config{})
	dev.SetRotation(ili9341.Rotation270)
	dev.FillScreen(color.RGBA{A: 0xFF})
	backlight.High()

	w, _ := dev.Size()
	return &wioPanel{Device: dev, row: make([]uint8, int(w)*2)}
}

// WriteRegion sends the region one row at a time through DrawRGBBitmap8.
func (p *wioPanel) WriteRegion(x0, y0, x1, y1 int16, src PixelSource) error {
	w, h := p.Size()
	if !regionInside(x0, y0, x1, y1, w, h) {
		return ErrRegion
	}
	width := x1 - x0 + 1
	row := p.row[:int(width)*2]
	for y := y0; y <= y1; y++ {
		for i := 0; i < int(width); i++ {
			v, ok := src.Next()
			if !ok {
				return nil
			}
			row[2*i] = byte(v)
			row[2*i+1] = byte(v >> 8)
		}
		if err := p.DrawRGBBitmap8(x0, y, row, width, 1); err != nil {
			return err
		}
	}
	return nil
}
