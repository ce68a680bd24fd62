package video

import (
	"image"
	"testing"

	"zxhost/zx"
)

func wantDirty(t *testing.T, fb *FrameBuffer, min, max image.Point) {
	t.Helper()
	gotMin, gotMax, ok := fb.Dirty()
	if !ok {
		t.Fatalf("Dirty() ok = false, want %v..%v", min, max)
	}
	if gotMin != min || gotMax != max {
		t.Fatalf("Dirty() = %v..%v, want %v..%v", gotMin, gotMax, min, max)
	}
}

func TestSetColorGrowsDirty(t *testing.T) {
	fb := New(zx.ScreenWidth, zx.ScreenHeight, zx.SurfaceScreen)
	if _, _, ok := fb.Dirty(); ok {
		t.Fatal("new buffer is dirty")
	}

	fb.SetColor(10, 20, zx.Red, zx.Bright)
	wantDirty(t, fb, image.Pt(10, 20), image.Pt(10, 20))

	fb.SetColor(10, 20, zx.Red, zx.Bright)
	wantDirty(t, fb, image.Pt(10, 20), image.Pt(10, 20))

	fb.SetColor(50, 5, zx.Blue, zx.Normal)
	wantDirty(t, fb, image.Pt(10, 5), image.Pt(50, 20))
}

func TestPlaceholderOutsidePalette(t *testing.T) {
	for c := zx.Black; c <= zx.White; c++ {
		for _, b := range []zx.Brightness{zx.Normal, zx.Bright} {
			if got := Translate(c, b); got == Placeholder {
				t.Fatalf("Translate(%v, %v) = %#04x, same as Placeholder", c, b, uint16(got))
			}
		}
	}
}

func TestFirstFrameDirtiesEveryPixel(t *testing.T) {
	fb := New(8, 8, zx.SurfaceScreen)
	for y := 0; y < 8; y++ {
		fb.SetColors(0, y, [8]zx.Color{zx.Red, zx.Red, zx.Red, zx.Red, zx.Red, zx.Red, zx.Red, zx.Red}, zx.Bright)
	}
	wantDirty(t, fb, image.Pt(0, 0), image.Pt(7, 7))
}

func TestSetColorSameValueDoesNotDirty(t *testing.T) {
	fb := New(16, 16, zx.SurfaceScreen)
	fb.SetColor(3, 3, zx.Green, zx.Normal)
	fb.ResetDirty()

	fb.SetColor(3, 3, zx.Green, zx.Normal)
	if _, _, ok := fb.Dirty(); ok {
		t.Fatal("redundant write marked the buffer dirty")
	}

	// Black is one value for both brightness levels.
	fb.SetColor(4, 4, zx.Black, zx.Normal)
	fb.ResetDirty()
	fb.SetColor(4, 4, zx.Black, zx.Bright)
	if _, _, ok := fb.Dirty(); ok {
		t.Fatal("black/bright over black/normal marked the buffer dirty")
	}
}

func TestResetDirty(t *testing.T) {
	fb := New(16, 16, zx.SurfaceScreen)
	fb.SetColor(1, 2, zx.White, zx.Bright)
	fb.ResetDirty()
	if _, _, ok := fb.Dirty(); ok {
		t.Fatal("Dirty() ok = true after ResetDirty")
	}
	fb.SetColor(7, 9, zx.Cyan, zx.Bright)
	wantDirty(t, fb, image.Pt(7, 9), image.Pt(7, 9))
}

func TestDirtyIsBoundingBox(t *testing.T) {
	fb := New(64, 64, zx.SurfaceScreen)
	points := []image.Point{{30, 30}, {5, 40}, {60, 2}, {31, 31}, {12, 63}}
	for _, p := range points {
		fb.SetColor(p.X, p.Y, zx.Yellow, zx.Bright)
	}
	wantDirty(t, fb, image.Pt(5, 2), image.Pt(60, 63))
}

func TestSetColorsPartialChange(t *testing.T) {
	fb := New(32, 8, zx.SurfaceScreen)
	var cells [8]zx.Color
	for i := range cells {
		cells[i] = zx.Blue
	}
	fb.SetColors(8, 3, cells, zx.Bright)
	wantDirty(t, fb, image.Pt(8, 3), image.Pt(15, 3))
	fb.ResetDirty()

	cells[2] = zx.Red
	cells[5] = zx.Red
	fb.SetColors(8, 3, cells, zx.Bright)
	wantDirty(t, fb, image.Pt(10, 3), image.Pt(13, 3))

	for i, c := range cells {
		if got, want := fb.At(8+i, 3), Translate(c, zx.Bright); got != want {
			t.Fatalf("At(%d, 3) = %#04x, want %#04x", 8+i, got, want)
		}
	}
}

func TestRegionRowMajor(t *testing.T) {
	fb := New(8, 8, zx.SurfaceScreen)
	colors := []zx.Color{zx.Blue, zx.Red, zx.Purple, zx.Green, zx.Cyan, zx.Yellow}
	i := 0
	for y := 2; y <= 3; y++ {
		for x := 4; x <= 6; x++ {
			fb.SetColor(x, y, colors[i], zx.Bright)
			i++
		}
	}

	min, max, _ := fb.Dirty()
	r := fb.Region(min, max)
	if got := r.Len(); got != 6 {
		t.Fatalf("Len() = %d, want 6", got)
	}
	for pass := 0; pass < 2; pass++ {
		for i, c := range colors {
			v, ok := r.Next()
			if !ok {
				t.Fatalf("pass %d: Next() ended at %d", pass, i)
			}
			if want := Translate(c, zx.Bright); v != want {
				t.Fatalf("pass %d: pixel %d = %#04x, want %#04x", pass, i, v, want)
			}
		}
		if _, ok := r.Next(); ok {
			t.Fatalf("pass %d: Next() ok after last pixel", pass)
		}
		r.Reset()
	}

	if _, _, ok := fb.Dirty(); !ok {
		t.Fatal("iterating cleared the dirty region")
	}
}

func TestRegionSinglePixel(t *testing.T) {
	fb := New(4, 4, zx.SurfaceScreen)
	fb.SetColor(2, 1, zx.White, zx.Normal)
	r := fb.Region(image.Pt(2, 1), image.Pt(2, 1))
	v, ok := r.Next()
	if !ok || v != Translate(zx.White, zx.Normal) {
		t.Fatalf("Next() = %#04x, %v", v, ok)
	}
	if _, ok := r.Next(); ok {
		t.Fatal("Next() ok after single pixel")
	}
}

func TestBorderSurfaceIsOnePixel(t *testing.T) {
	fb := New(320, 256, zx.SurfaceBorder)
	if fb.Width() != 1 || fb.Height() != 1 {
		t.Fatalf("border size = %dx%d, want 1x1", fb.Width(), fb.Height())
	}
	fb.SetColor(200, 100, zx.Green, zx.Normal)
	wantDirty(t, fb, image.Point{}, image.Point{})
	if got, want := fb.At(0, 0), Translate(zx.Green, zx.Normal); got != want {
		t.Fatalf("At(0, 0) = %#04x, want %#04x", got, want)
	}
}

func TestAllocatorFill(t *testing.T) {
	a := Allocator{Fill: Translate(zx.White, zx.Bright)}
	fb := a.NewFrameBuffer(4, 4, zx.SurfaceScreen)
	fb.SetColor(0, 0, zx.White, zx.Bright)
	if _, _, ok := fb.Dirty(); ok {
		t.Fatal("write of the fill color marked the buffer dirty")
	}
}
