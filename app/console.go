package app

import (
	"fmt"
	"image/color"

	"zxhost/hal"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

var consoleFont = &proggy.TinySZ8pt7b

// Metrics of consoleFont.
const (
	consoleFontHeight = 10
	consoleFontOffset = 6
)

// console mirrors boot progress to the log and, when enabled, to the panel.
type console struct {
	log     *logger
	display hal.Display
	term    *tinyterm.Terminal
}

func newConsole(d hal.Display, log *logger, enabled bool) *console {
	c := &console{log: log, display: d}
	if !enabled || d == nil {
		return c
	}
	c.term = tinyterm.NewTerminal(d)
	c.term.Configure(&tinyterm.Config{
		Font:              consoleFont,
		FontHeight:        consoleFontHeight,
		FontOffset:        consoleFontOffset,
		UseSoftwareScroll: true,
	})
	return c
}

func (c *console) printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.log.infof("%s", msg)
	if c.term == nil {
		return
	}
	fmt.Fprintf(c.term, "%s\n", msg)
	c.term.Display()
}

// close blanks the panel so the first frame starts on black.
func (c *console) close() {
	if c.term == nil {
		return
	}
	w, h := c.display.Size()
	_ = c.display.FillRectangle(0, 0, w, h, color.RGBA{A: 0xFF})
	_ = c.display.Display()
	c.term = nil
}
