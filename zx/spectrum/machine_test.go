package spectrum

import (
	"bytes"
	"errors"
	"image"
	"testing"
	"time"

	"zxhost/asset"
	"zxhost/stopwatch"
	"zxhost/tape"
	"zxhost/video"
	"zxhost/zx"
)

func newMachine(t *testing.T, s zx.Settings) *Machine[*video.FrameBuffer] {
	t.Helper()
	m, err := New(s, zx.Host[*video.FrameBuffer]{
		FrameBuffers: video.NewAllocator(),
		Stopwatch:    stopwatch.Fixed{},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func codeTape(t *testing.T, start uint16, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := tape.NewWriter(&buf).WriteCode("test", start, data); err != nil {
		t.Fatalf("WriteCode() error = %v", err)
	}
	return buf.Bytes()
}

func TestNewRejectsBadSettings(t *testing.T) {
	host := zx.Host[*video.FrameBuffer]{FrameBuffers: video.NewAllocator(), Stopwatch: stopwatch.Fixed{}}
	bad := zx.DefaultSettings()
	bad.FramesPerStep = 0
	if _, err := New(bad, host); !errors.Is(err, ErrSettings) {
		t.Fatalf("New(FramesPerStep=0) error = %v, want ErrSettings", err)
	}
	bad = zx.DefaultSettings()
	bad.FlashFrames = 0
	if _, err := New(bad, host); !errors.Is(err, ErrSettings) {
		t.Fatalf("New(FlashFrames=0) error = %v, want ErrSettings", err)
	}
	if _, err := New(zx.DefaultSettings(), zx.Host[*video.FrameBuffer]{Stopwatch: stopwatch.Fixed{}}); !errors.Is(err, ErrNoFactory) {
		t.Fatalf("New(no factory) error = %v, want ErrNoFactory", err)
	}
}

func TestBuffers(t *testing.T) {
	m := newMachine(t, zx.DefaultSettings())
	if w, h := m.ScreenBuffer().Width(), m.ScreenBuffer().Height(); w != 256 || h != 192 {
		t.Fatalf("screen = %dx%d, want 256x192", w, h)
	}
	if m.BorderBuffer().Surface() != zx.SurfaceBorder {
		t.Fatalf("border surface = %v", m.BorderBuffer().Surface())
	}
}

func TestRenderFromMemory(t *testing.T) {
	m := newMachine(t, zx.DefaultSettings())
	// Row 9 is the second pixel row of the second character row.
	m.Poke(bitmapAddr(9, 3), 0x80)
	m.Poke(attrAddr(9, 3), 0x42) // bright, red ink on black paper

	if _, err := m.EmulateFrames(0); err != nil {
		t.Fatalf("EmulateFrames() error = %v", err)
	}
	fb := m.ScreenBuffer()
	if got, want := fb.At(24, 9), video.Translate(zx.Red, zx.Bright); got != want {
		t.Fatalf("At(24, 9) = %#04x, want %#04x", got, want)
	}
	if got, want := fb.At(25, 9), video.Translate(zx.Black, zx.Bright); got != want {
		t.Fatalf("At(25, 9) = %#04x, want %#04x", got, want)
	}
	if got, want := fb.At(0, 0), video.Translate(zx.Black, zx.Normal); got != want {
		t.Fatalf("At(0, 0) = %#04x, want %#04x", got, want)
	}

	m.ResetDirty()
	if _, err := m.EmulateFrames(0); err != nil {
		t.Fatalf("EmulateFrames() error = %v", err)
	}
	if _, _, ok := fb.Dirty(); ok {
		t.Fatal("unchanged frame left the screen dirty")
	}

	m.Poke(bitmapAddr(9, 3), 0x00)
	if _, err := m.EmulateFrames(0); err != nil {
		t.Fatalf("EmulateFrames() error = %v", err)
	}
	min, max, ok := fb.Dirty()
	if !ok || min != image.Pt(24, 9) || max != image.Pt(24, 9) {
		t.Fatalf("Dirty() = %v %v %v, want (24,9) (24,9)", min, max, ok)
	}
}

func TestBitmapAddr(t *testing.T) {
	tests := []struct {
		y, cx int
		want  uint16
	}{
		{0, 0, 0x4000},
		{1, 0, 0x4100},
		{8, 0, 0x4020},
		{64, 31, 0x481F},
		{191, 31, 0x57FF},
	}
	for _, tt := range tests {
		if got := bitmapAddr(tt.y, tt.cx); got != tt.want {
			t.Fatalf("bitmapAddr(%d, %d) = %#04x, want %#04x", tt.y, tt.cx, got, tt.want)
		}
	}
}

func TestFlashSwapsInkAndPaper(t *testing.T) {
	s := zx.DefaultSettings()
	s.FlashFrames = 2
	m := newMachine(t, s)
	m.Poke(bitmapAddr(0, 0), 0xFF)
	m.Poke(attrAddr(0, 0), 0x80|byte(zx.Blue))

	want := []zx.Color{zx.Blue, zx.Black, zx.Black, zx.Blue}
	for i, c := range want {
		if _, err := m.EmulateFrames(0); err != nil {
			t.Fatalf("EmulateFrames() error = %v", err)
		}
		if got := m.ScreenBuffer().At(0, 0); got != video.Translate(c, zx.Normal) {
			t.Fatalf("frame %d: At(0, 0) = %#04x, want %v", i+1, got, c)
		}
	}
}

func TestKeyboardMatrix(t *testing.T) {
	m := newMachine(t, zx.DefaultSettings())
	m.SendKey(zx.KeyA, true)
	m.SendKey(zx.KeySymShift, true)

	tests := []struct {
		port uint16
		want byte
	}{
		{0xFDFE, 0xE0 | 0x1E}, // A S D F G
		{0x7FFE, 0xE0 | 0x1D}, // SPACE SYM M N B
		{0xFEFE, 0xFF},        // CAPS Z X C V
		{0x00FE, 0xE0 | 0x1C}, // all rows
	}
	for _, tt := range tests {
		if got := m.ReadPort(tt.port); got != tt.want {
			t.Fatalf("ReadPort(%#04x) = %#02x, want %#02x", tt.port, got, tt.want)
		}
	}

	m.SendKey(zx.KeyA, false)
	if got := m.ReadPort(0xFDFE); got != 0xFF {
		t.Fatalf("ReadPort(0xfdfe) after release = %#02x, want 0xff", got)
	}
}

type recordingIO struct {
	writes []byte
}

func (r *recordingIO) ReadPort(port uint16) (byte, bool) { return byte(port >> 8), port == 0x1F1F }
func (r *recordingIO) WritePort(port uint16, v byte)     { r.writes = append(r.writes, v) }

func TestPorts(t *testing.T) {
	io := &recordingIO{}
	m, err := New(zx.DefaultSettings(), zx.Host[*video.FrameBuffer]{
		FrameBuffers: video.NewAllocator(),
		Stopwatch:    stopwatch.Fixed{},
		IO:           io,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	m.WritePort(0x00FE, 0xF2)
	if m.BorderColor() != zx.Red {
		t.Fatalf("BorderColor() = %v, want red", m.BorderColor())
	}
	if _, err := m.EmulateFrames(0); err != nil {
		t.Fatalf("EmulateFrames() error = %v", err)
	}
	if got := m.BorderBuffer().At(0, 0); got != video.Translate(zx.Red, zx.Normal) {
		t.Fatalf("border pixel = %#04x, want red", got)
	}

	m.WritePort(0x1F1F, 7)
	if len(io.writes) != 1 || io.writes[0] != 7 {
		t.Fatalf("extender writes = %v, want [7]", io.writes)
	}
	if got := m.ReadPort(0x1F1F); got != 0x1F {
		t.Fatalf("ReadPort(0x1f1f) = %#02x, want 0x1f", got)
	}
	if got := m.ReadPort(0x0101); got != 0xFF {
		t.Fatalf("ReadPort(undecoded) = %#02x, want 0xff", got)
	}
}

func TestEmulateFramesCeiling(t *testing.T) {
	s := zx.DefaultSettings()
	s.FramesPerStep = 5
	m := newMachine(t, s)

	elapsed, err := m.EmulateFrames(250 * time.Millisecond)
	if err != nil {
		t.Fatalf("EmulateFrames() error = %v", err)
	}
	if elapsed != 3*stopwatch.Nominal || m.Frames() != 3 {
		t.Fatalf("EmulateFrames(250ms) = %v after %d frames, want 300ms after 3", elapsed, m.Frames())
	}

	elapsed, _ = m.EmulateFrames(0)
	if elapsed != 5*stopwatch.Nominal || m.Frames() != 8 {
		t.Fatalf("EmulateFrames(0) = %v, frames %d, want 500ms, 8", elapsed, m.Frames())
	}
}

func TestLoadTapeFast(t *testing.T) {
	m := newMachine(t, zx.DefaultSettings())
	img := codeTape(t, 0x8000, []byte{1, 2, 3})
	if err := m.LoadTape(asset.New(img)); err != nil {
		t.Fatalf("LoadTape() error = %v", err)
	}
	for i, want := range []byte{1, 2, 3} {
		if got := m.Peek(0x8000 + uint16(i)); got != want {
			t.Fatalf("Peek(%#04x) = %d, want %d", 0x8000+i, got, want)
		}
	}
	if m.Loading() {
		t.Fatal("Loading() = true after fast load")
	}
}

func TestLoadTapeIntoROMIsIgnored(t *testing.T) {
	m := newMachine(t, zx.DefaultSettings())
	if err := m.LoadTape(asset.New(codeTape(t, 0x0000, []byte{0xAA}))); err != nil {
		t.Fatalf("LoadTape() error = %v", err)
	}
	if got := m.Peek(0); got != 0 {
		t.Fatalf("Peek(0) = %#02x, want ROM untouched", got)
	}
}

func TestLoadTapeSlow(t *testing.T) {
	s := zx.DefaultSettings()
	s.TapeFastload = false
	m := newMachine(t, s)
	if err := m.LoadTape(asset.New(codeTape(t, 0x9000, []byte{42}))); err != nil {
		t.Fatalf("LoadTape() error = %v", err)
	}

	// Header, data, then the end of the tape.
	for frame := 1; frame <= 3; frame++ {
		if !m.Loading() {
			t.Fatalf("frame %d: Loading() = false", frame)
		}
		if _, err := m.EmulateFrames(0); err != nil {
			t.Fatalf("EmulateFrames() error = %v", err)
		}
	}
	if m.Loading() {
		t.Fatal("Loading() = true after the last block")
	}
	if got := m.Peek(0x9000); got != 42 {
		t.Fatalf("Peek(0x9000) = %d, want 42", got)
	}
}

func TestLoadTapeTruncated(t *testing.T) {
	img := codeTape(t, 0x8000, []byte{1, 2, 3})
	img = img[:len(img)-2]

	m := newMachine(t, zx.DefaultSettings())
	if err := m.LoadTape(asset.New(img)); !errors.Is(err, ErrTapeAborted) || !errors.Is(err, tape.ErrTruncated) {
		t.Fatalf("LoadTape() error = %v, want ErrTapeAborted wrapping ErrTruncated", err)
	}

	s := zx.DefaultSettings()
	s.TapeFastload = false
	m = newMachine(t, s)
	if err := m.LoadTape(asset.New(img)); err != nil {
		t.Fatalf("LoadTape() error = %v", err)
	}
	if _, err := m.EmulateFrames(0); err != nil {
		t.Fatalf("EmulateFrames() header error = %v", err)
	}
	if _, err := m.EmulateFrames(0); !errors.Is(err, ErrTapeAborted) {
		t.Fatalf("EmulateFrames() error = %v, want ErrTapeAborted", err)
	}
	if m.Loading() {
		t.Fatal("Loading() = true after an aborted load")
	}
	if _, err := m.EmulateFrames(0); err != nil {
		t.Fatalf("EmulateFrames() after abort error = %v", err)
	}
}

func TestLoadDemoTape(t *testing.T) {
	m := newMachine(t, zx.DefaultSettings())
	if err := m.LoadTape(asset.New(asset.Demo)); err != nil {
		t.Fatalf("LoadTape(demo) error = %v", err)
	}
	if _, err := m.EmulateFrames(0); err != nil {
		t.Fatalf("EmulateFrames() error = %v", err)
	}
	if _, _, ok := m.ScreenBuffer().Dirty(); !ok {
		t.Fatal("demo screen left no dirty region")
	}
}
