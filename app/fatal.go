package app

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"zxhost/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// showFatal logs err and draws it on the panel, black on white.
func showFatal(h hal.HAL, err error) {
	if l := h.Logger(); l != nil {
		l.WriteLineString("fatal: " + err.Error())
	}

	d := h.Display()
	if d == nil {
		return
	}
	w, ht := d.Size()
	_ = d.FillRectangle(0, 0, w, ht, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})

	_, outboxWidth := tinyfont.LineWidth(consoleFont, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 {
		_ = d.Display()
		return
	}
	cols := w / fontWidth
	if cols <= 0 {
		cols = 1
	}

	fg := color.RGBA{A: 0xFF}
	y := int16(0)
	for _, line := range append([]string{"zxhost: fatal error"}, strings.Split(err.Error(), ": ")...) {
		for len(line) > 0 {
			if y+consoleFontHeight > ht {
				_ = d.Display()
				return
			}
			chunk, rest := takeRunes(line, cols)
			drawTextLine(d, consoleFont, fontWidth, consoleFontOffset, 0, y, chunk, fg)
			y += consoleFontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = d.Display()
}

func drawTextLine(
	d drivers.Displayer,
	font tinyfont.Fonter,
	fontWidth, fontOffset int16,
	x0, y0 int16,
	s string,
	fg color.RGBA,
) {
	var drawX = x0
	for _, r := range s {
		tinyfont.DrawChar(d, font, drawX, y0+fontOffset, r, fg)
		drawX += fontWidth
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
