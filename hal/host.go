//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

// Host panel size. It matches the PicoCalc so layouts agree.
const (
	hostPanelWidth  = 320
	hostPanelHeight = 320
)

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	panel  *memPanel
	kbd    *scanQueue
}

// New returns a host HAL implementation.
func New() HAL {
	return newHost()
}

func newHost() *hostHAL {
	logger := &hostLogger{w: os.Stdout}
	return &hostHAL{
		logger: logger,
		led:    &hostLED{logger: logger},
		panel:  newMemPanel(hostPanelWidth, hostPanelHeight),
		kbd:    newScanQueue(256),
	}
}

func (h *hostHAL) Logger() Logger      { return h.logger }
func (h *hostHAL) LED() LED            { return h.led }
func (h *hostHAL) Display() Display    { return h.panel }
func (h *hostHAL) Keyboard() Scancodes { return h.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.on {
		l.logger.WriteLineString("led: HIGH")
	}
	l.on = true
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.on {
		l.logger.WriteLineString("led: LOW")
	}
	l.on = false
}
