package bouncyball

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay shows the current FPS and TPS. The text is redrawn about every
// half second.
type fpsOverlay struct {
	img   *ebiten.Image
	since float64
	text  string
	dirty bool
}

func newFPSOverlay() *fpsOverlay {
	return &fpsOverlay{text: "FPS: -\nTPS: -", dirty: true}
}

func (o *fpsOverlay) update(dt float64) {
	o.since += dt
	if o.since < 0.5 {
		return
	}
	o.since = 0
	o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	o.dirty = true
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		o.img = ebiten.NewImage(100, 32)
	}
	if o.dirty {
		o.img.Clear()
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, o.text)
		o.dirty = false
	}
	screen.DrawImage(o.img, nil)
}
