//go:build !tinygo

package hal

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig shapes the simulator window.
type WindowConfig struct {
	Title string
	Scale int
	TPS   int
}

// RunWindow opens a desktop window displaying the framebuffer and drives
// tick at ebiten's fixed timestep until tick reports done. The close
// button flips the display into its closing state, so shutdown flows
// through the engine's normal present path rather than around it.
func RunWindow(d *HostDisplay, cfg WindowConfig, tick func(dt time.Duration) bool) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 3
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	g := &hostGame{
		d:    d,
		dt:   time.Second / time.Duration(cfg.TPS),
		tick: tick,
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(d.fb.width*cfg.Scale, d.fb.height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowClosingHandled(true)
	return ebiten.RunGame(g)
}

type hostGame struct {
	d       *HostDisplay
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	dt      time.Duration
	tick    func(dt time.Duration) bool
}

func (g *hostGame) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.d.RequestClose()
	}
	if g.tick != nil && g.tick(g.dt) {
		return ebiten.Termination
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.d.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	g.d.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.ReplacePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.d.fb.width, g.d.fb.height
}
