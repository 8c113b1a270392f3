package ebitenui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsInterval is how often, in seconds, the FPS overlay text is refreshed.
const fpsInterval = 0.5

// fpsOverlay displays the current FPS and TPS in the top-left corner.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
	label   string
}

// update accumulates dt and refreshes the label every fpsInterval.
func (f *fpsOverlay) update(dt float64) {
	f.elapsed += dt
	if f.label != "" && f.elapsed < fpsInterval {
		return
	}
	f.elapsed = 0
	f.label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	if f.img == nil {
		f.img = ebiten.NewImage(100, 32)
	}
	f.img.Clear()
	// Semi-transparent background for readability
	f.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(f.img, f.label)
	screen.DrawImage(f.img, nil)
}
