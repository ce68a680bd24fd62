package main

import (
	"fmt"
	"image"
	"io"

	"zxhost/tape"

	"golang.org/x/image/bmp"
)

// Attribute for every cell of a converted image: black ink on white paper.
const imageAttr = 0x38

// screenFromBMP converts a 256x192 BMP to a SCREEN$ image. Pixels darker
// than mid grey become ink.
func screenFromBMP(r io.Reader) ([]byte, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, err
	}
	return screenFromImage(img)
}

func screenFromImage(img image.Image) ([]byte, error) {
	b := img.Bounds()
	if b.Dx() != 256 || b.Dy() != 192 {
		return nil, fmt.Errorf("image is %dx%d, want 256x192", b.Dx(), b.Dy())
	}
	scr := make([]byte, tape.ScreenLen)
	for y := 0; y < 192; y++ {
		for x := 0; x < 256; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// Rec. 601 luma on 16-bit channels.
			luma := (299*r + 587*g + 114*bl) / 1000
			if luma < 0x8000 {
				scr[screenOffset(x, y)] |= 0x80 >> (x & 7)
			}
		}
	}
	for i := 6144; i < tape.ScreenLen; i++ {
		scr[i] = imageAttr
	}
	return scr, nil
}

// screenOffset returns the display file offset of the byte holding (x, y).
func screenOffset(x, y int) int {
	return (y&0xC0)<<5 | (y&0x07)<<8 | (y&0x38)<<2 | x>>3
}
