//go:build tinygo && baremetal && picocalc

package hal

import (
	"machine"
)

type picoCalcHAL struct {
	logger *uartLogger
	led    *pinLED
	disp   Display
	kbd    Scancodes
}

// New returns a PicoCalc HAL implementation (Pico/Pico2 on the PicoCalc carrier).
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1. Scancodes arrive on the
// UART and from the built-in I2C keyboard, which is translated to set 2.
func New() HAL {
	uart := configureUART0()
	logger := &uartLogger{w: uart}

	var disp Display
	if lcd, err := initILI9488(); err == nil {
		disp = lcd
	} else {
		logger.WriteLineString("hal: display: " + err.Error())
		disp = &nullPanel{w: picoCalcPanelSize, h: picoCalcPanelSize}
	}

	kbd := chainScancodes{&uartScancodes{uart: uart}}
	if q, err := newPicoCalcKeyboard(); err == nil {
		kbd = append(chainScancodes{q}, kbd...)
	} else {
		logger.WriteLineString("hal: keyboard: " + err.Error())
	}

	return &picoCalcHAL{
		logger: logger,
		led:    newPinLED(machine.LED),
		disp:   disp,
		kbd:    kbd,
	}
}

func (h *picoCalcHAL) Logger() Logger      { return h.logger }
func (h *picoCalcHAL) LED() LED            { return h.led }
func (h *picoCalcHAL) Display() Display    { return h.disp }
func (h *picoCalcHAL) Keyboard() Scancodes { return h.kbd }
