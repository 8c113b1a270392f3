package ebitenui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/nodegraph"
)

// keyPressed reports whether a key is held. Swapped in tests.
var keyPressed = ebiten.IsKeyPressed

// readModifiers reads the current keyboard modifier state.
func readModifiers() nodegraph.KeyModifiers {
	var mods nodegraph.KeyModifiers
	if keyPressed(ebiten.KeyShift) || keyPressed(ebiten.KeyShiftLeft) || keyPressed(ebiten.KeyShiftRight) {
		mods |= nodegraph.ModShift
	}
	if keyPressed(ebiten.KeyControl) || keyPressed(ebiten.KeyControlLeft) || keyPressed(ebiten.KeyControlRight) {
		mods |= nodegraph.ModCtrl
	}
	if keyPressed(ebiten.KeyAlt) || keyPressed(ebiten.KeyAltLeft) || keyPressed(ebiten.KeyAltRight) {
		mods |= nodegraph.ModAlt
	}
	if keyPressed(ebiten.KeyMeta) || keyPressed(ebiten.KeyMetaLeft) || keyPressed(ebiten.KeyMetaRight) {
		mods |= nodegraph.ModMeta
	}
	return mods
}

// ReadInput polls Ebitengine for this tick's cursor, buttons, wheel and
// modifiers. Call it from ebiten.Game.Update and pass the result to
// UI.NewFrame. viewport is the screen region the canvas occupies.
func ReadInput(viewport nodegraph.Rect) nodegraph.Input {
	mx, my := ebiten.CursorPosition()
	wx, wy := ebiten.Wheel()
	in := nodegraph.Input{
		CursorX:   float64(mx),
		CursorY:   float64(my),
		WheelX:    wx,
		WheelY:    wy,
		Modifiers: readModifiers(),
		DeltaTime: 1 / float64(ebiten.TPS()),
		Viewport:  viewport,
	}
	in.Buttons[nodegraph.MouseButtonLeft] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.Buttons[nodegraph.MouseButtonRight] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	in.Buttons[nodegraph.MouseButtonMiddle] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	return in
}
