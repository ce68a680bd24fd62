//go:build !tinygo && cgo

package hal

import (
	"image"

	"zxhost/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the panel and forwards
// keyboard input. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, scale int) error {
	if scale <= 0 {
		scale = 2
	}
	h := newHost()
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("zxhost (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(int(h.panel.width)*scale, int(h.panel.height)*scale)
	ebiten.SetTPS(50)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	pollKeyboard(g.h.kbd)
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	p := g.h.panel
	g.img = p.snapshot(g.img)
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(int(p.width), int(p.height))
	}
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.h.panel.width), int(g.h.panel.height)
}
