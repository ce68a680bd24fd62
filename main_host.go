//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"zxhost/app"
	"zxhost/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	appCfg := app.DefaultConfig()
	var tapePath string
	var frameMS int
	var scale int

	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 50, "Step rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&cfg.Stdin, "stdin", false, "Headless: read keys from stdin (raw mode on a terminal, set 2 bytes otherwise).")
	flag.StringVar(&cfg.Snapshot, "snapshot", "", "Headless: write the panel to this BMP file on exit.")
	flag.StringVar(&tapePath, "tape", "", "TAP image to load instead of the bundled demo.")
	flag.IntVar(&appCfg.OffsetX, "offset-x", -1, "Screen X offset on the panel (-1 = centered).")
	flag.IntVar(&appCfg.OffsetY, "offset-y", -1, "Screen Y offset on the panel (-1 = centered).")
	flag.IntVar(&appCfg.Settings.FramesPerStep, "frames", 1, "Frames emulated per step.")
	flag.IntVar(&frameMS, "max-frame", 0, "Per-step emulation ceiling in ms (0 = none).")
	flag.BoolVar(&appCfg.Settings.TapeFastload, "fastload", true, "Apply the whole tape before the first frame.")
	flag.BoolVar(&appCfg.Debug, "debug", false, "Log debug lines.")
	flag.IntVar(&scale, "scale", 2, "Window scale factor.")
	flag.Parse()

	appCfg.MaxFrame = time.Duration(frameMS) * time.Millisecond
	if tapePath != "" {
		b, err := os.ReadFile(tapePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		appCfg.Tape = b
	}

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, scale); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
