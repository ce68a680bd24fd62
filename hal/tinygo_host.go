//go:build tinygo && !baremetal

package hal

import (
	"context"
	"fmt"
	"os"
	"runtime"
)

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	led    *tinyGoHostLED
	panel  *memPanel
	kbd    *scanQueue
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU pin mapping.
// Standard input is taken to carry raw set 2 bytes.
func New() HAL {
	l := &tinyGoHostLogger{}
	kbd := newScanQueue(256)
	go feedRaw(context.Background(), os.Stdin, kbd)
	return &tinyGoHostHAL{
		logger: l,
		led:    &tinyGoHostLED{logger: l},
		panel:  newMemPanel(320, 320),
		kbd:    kbd,
	}
}

func (h *tinyGoHostHAL) Logger() Logger      { return h.logger }
func (h *tinyGoHostHAL) LED() LED            { return h.led }
func (h *tinyGoHostHAL) Display() Display    { return h.panel }
func (h *tinyGoHostHAL) Keyboard() Scancodes { return h.kbd }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type tinyGoHostLED struct {
	on     bool
	logger *tinyGoHostLogger
}

func (l *tinyGoHostLED) High() {
	l.on = true
	l.logger.WriteLineString(fmt.Sprintf("led: HIGH (tinygo/%s)", runtime.GOOS))
}

func (l *tinyGoHostLED) Low() {
	l.on = false
	l.logger.WriteLineString(fmt.Sprintf("led: LOW (tinygo/%s)", runtime.GOOS))
}
