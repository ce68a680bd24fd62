//go:build tinygo && baremetal && !picocalc && !wioterminal

package hal

import (
	"machine"
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	disp   Display
	kbd    Scancodes
}

// New returns a Pico 2 (RP2350) HAL implementation without a panel.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1. The same UART carries
// log lines out and scancodes in.
func New() HAL {
	uart := configureUART0()
	return &tinyGoHAL{
		logger: &uartLogger{w: uart},
		led:    newPinLED(machine.LED),
		disp:   &nullPanel{w: 320, h: 320},
		kbd:    &uartScancodes{uart: uart},
	}
}

func (h *tinyGoHAL) Logger() Logger      { return h.logger }
func (h *tinyGoHAL) LED() LED            { return h.led }
func (h *tinyGoHAL) Display() Display    { return h.disp }
func (h *tinyGoHAL) Keyboard() Scancodes { return h.kbd }
