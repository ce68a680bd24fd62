package app

import (
	"context"
	"errors"
	"time"

	"zxhost/hal"
	"zxhost/keyboard"
	"zxhost/video"
	"zxhost/zx"

	"tinygo.org/x/drivers/pixel"
)

// Engine is the part of the emulator the loop drives.
type Engine interface {
	SendKey(k zx.Key, pressed bool)
	EmulateFrames(max time.Duration) (time.Duration, error)
	ScreenBuffer() *video.FrameBuffer
	BorderBuffer() *video.FrameBuffer
	ResetDirty()
}

// Stats counts what the loop has done since it started.
type Stats struct {
	Steps       uint64
	Frames      uint64
	FrameErrors uint64
	Flushes     uint64
	KeyEvents   uint64
	KeysDropped uint64
}

// Loop runs one emulated frame per step and mirrors the result on a panel.
type Loop struct {
	engine  Engine
	display hal.Display
	keys    hal.Scancodes
	led     hal.LED
	log     *logger

	decoder  keyboard.Decoder
	maxFrame time.Duration
	offX     int
	offY     int

	heartbeat int
	ledOn     bool

	stats Stats
}

// NewLoop wires an engine to the HAL's panel, keyboard and LED.
func NewLoop(e Engine, h hal.HAL, cfg Config) *Loop {
	return newLoop(e, h, cfg, newLogger(h.Logger(), cfg.Debug))
}

func newLoop(e Engine, h hal.HAL, cfg Config, log *logger) *Loop {
	l := &Loop{
		engine:    e,
		display:   h.Display(),
		keys:      h.Keyboard(),
		led:       h.LED(),
		log:       log,
		maxFrame:  cfg.MaxFrame,
		heartbeat: cfg.HeartbeatFrames,
	}
	w, ht := l.display.Size()
	l.offX, l.offY = screenOffset(cfg.OffsetX, cfg.OffsetY, int(w), int(ht))
	return l
}

// screenOffset resolves the panel position of the 256x192 screen. A
// negative offset centers that axis.
func screenOffset(x, y, panelW, panelH int) (int, int) {
	if x < 0 {
		x = (panelW - zx.ScreenWidth) / 2
	}
	if y < 0 {
		y = (panelH - zx.ScreenHeight) / 2
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// Offset returns the panel position of the screen's top left pixel.
func (l *Loop) Offset() (x, y int) { return l.offX, l.offY }

func (l *Loop) Stats() Stats { return l.stats }

// Run steps until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		l.Step()
	}
	return ctx.Err()
}

// Step polls the keyboard once, emulates a frame and flushes what changed.
// Nothing that happens in a step stops the loop.
func (l *Loop) Step() {
	l.stats.Steps++

	b, err := l.keys.ReadByte()
	switch {
	case err == nil:
		l.feed(b)
	case !errors.Is(err, hal.ErrNoData):
		l.log.debugf("keyboard: %v", err)
	}

	if _, err := l.engine.EmulateFrames(l.maxFrame); err != nil {
		l.stats.FrameErrors++
		l.log.errorf("frame: %v", err)
		return
	}
	l.stats.Frames++

	l.flush()
	l.blink()
}

func (l *Loop) feed(b byte) {
	ev, ok, err := l.decoder.AddByte(b)
	if err != nil {
		l.stats.KeysDropped++
		l.log.infof("keyboard: %v", err)
		return
	}
	if !ok {
		return
	}
	l.dispatch(ev, keyboard.Map(ev.Code, ev.Pressed))
}

// dispatch sends a mapped key to the engine. A pair sends the base key
// first and the modifier second, on release as well as on press.
func (l *Loop) dispatch(ev keyboard.Event, ke zx.KeyEvent) {
	switch ke.Kind {
	case zx.SingleKey:
		l.engine.SendKey(ke.Key, ke.Pressed)
	case zx.KeyWithModifier:
		l.engine.SendKey(ke.Key, ke.Pressed)
		l.engine.SendKey(ke.Modifier, ke.Pressed)
	default:
		l.stats.KeysDropped++
		l.log.infof("keyboard: no mapping for %v", ev.Code)
		return
	}
	l.stats.KeyEvents++
	l.log.debugf("keyboard: %v pressed=%v", ev.Code, ev.Pressed)
}

func (l *Loop) flush() {
	screen := l.engine.ScreenBuffer()
	border := l.engine.BorderBuffer()

	_, _, borderDirty := border.Dirty()
	if borderDirty {
		l.fillBorder(border.At(0, 0))
	}

	min, max, screenDirty := screen.Dirty()
	if screenDirty {
		r := screen.Region(min, max)
		x0, y0 := int16(min.X+l.offX), int16(min.Y+l.offY)
		x1, y1 := int16(max.X+l.offX), int16(max.Y+l.offY)
		if err := l.display.WriteRegion(x0, y0, x1, y1, &r); err != nil {
			// Keep the rectangle so the next step sends it again.
			l.log.errorf("display: %v", err)
			return
		}
		l.stats.Flushes++
	}

	if borderDirty || screenDirty {
		l.engine.ResetDirty()
	}
}

// fillBorder paints the panel area around the screen.
func (l *Loop) fillBorder(p pixel.RGB565BE) {
	c := video.RGBA(p)
	w, h := l.display.Size()
	ox, oy := int16(l.offX), int16(l.offY)
	sw, sh := int16(zx.ScreenWidth), int16(zx.ScreenHeight)

	rects := [4][4]int16{
		{0, 0, w, oy},
		{0, oy + sh, w, h - oy - sh},
		{0, oy, ox, sh},
		{ox + sw, oy, w - ox - sw, sh},
	}
	for _, r := range rects {
		if r[2] <= 0 || r[3] <= 0 {
			continue
		}
		if err := l.display.FillRectangle(r[0], r[1], r[2], r[3], c); err != nil {
			l.log.errorf("display: border: %v", err)
			return
		}
	}
}

func (l *Loop) blink() {
	if l.heartbeat <= 0 || l.led == nil || l.stats.Frames%uint64(l.heartbeat) != 0 {
		return
	}
	l.ledOn = !l.ledOn
	if l.ledOn {
		l.led.High()
	} else {
		l.led.Low()
	}
}
