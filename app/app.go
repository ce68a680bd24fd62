package app

import (
	"context"
	"fmt"
	"time"

	"zxhost/asset"
	"zxhost/hal"
	"zxhost/internal/buildinfo"
	"zxhost/stopwatch"
	"zxhost/video"
	"zxhost/zx"
	"zxhost/zx/spectrum"
)

type Config struct {
	// MaxFrame bounds one step's emulation time; zero means no ceiling.
	MaxFrame time.Duration
	// OffsetX and OffsetY place the screen on the panel. Negative centers.
	OffsetX int
	OffsetY int

	Settings zx.Settings
	// Tape is a TAP image loaded before the first frame.
	Tape []byte

	Debug bool
	// HeartbeatFrames toggles the LED every n frames; zero disables it.
	HeartbeatFrames int
	// Console prints boot progress on the panel.
	Console bool
}

// DefaultConfig centers the screen and loads the bundled demo tape.
func DefaultConfig() Config {
	return Config{
		OffsetX:         -1,
		OffsetY:         -1,
		Settings:        zx.DefaultSettings(),
		Tape:            asset.Demo,
		HeartbeatFrames: 50,
		Console:         true,
	}
}

// New initializes the emulator with default config and returns its step
// function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig returns a step function that runs one loop iteration per
// call. If the emulator cannot start, the error is shown on the panel and
// every call returns it.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	loop, err := Start(h, cfg)
	if err != nil {
		showFatal(h, err)
		return func() error { return err }
	}
	return func() error {
		loop.Step()
		return nil
	}
}

// Run starts the emulator and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

func RunWithConfig(h hal.HAL, cfg Config) {
	defer func() {
		if r := recover(); r != nil {
			showFatal(h, fmt.Errorf("panic: %v", r))
			select {}
		}
	}()

	loop, err := Start(h, cfg)
	if err != nil {
		showFatal(h, err)
		select {}
	}
	_ = loop.Run(context.Background())
}

// Start builds the machine, loads the tape and returns the loop that will
// drive it. Only a machine that cannot be built is an error.
func Start(h hal.HAL, cfg Config) (*Loop, error) {
	log := newLogger(h.Logger(), cfg.Debug)
	con := newConsole(h.Display(), log, cfg.Console)
	con.printf("zxhost %s", buildinfo.String())

	con.printf("Starting display")
	w, ht := h.Display().Size()
	log.debugf("display: %dx%d", w, ht)

	con.printf("Creating emulator")
	engine, err := spectrum.New(cfg.Settings, zx.Host[*video.FrameBuffer]{
		FrameBuffers: video.NewAllocator(),
		Stopwatch:    stopwatch.Fixed{},
		IO:           zx.StubIOExtender{},
	})
	if err != nil {
		return nil, fmt.Errorf("creating emulator: %w", err)
	}

	if len(cfg.Tape) > 0 {
		con.printf("Loading tape (%d bytes)", len(cfg.Tape))
		if err := engine.LoadTape(asset.New(cfg.Tape)); err != nil {
			log.errorf("tape: %v", err)
		}
	}

	con.printf("Setting up keyboard")
	con.close()

	return newLoop(engine, h, cfg, log), nil
}
