// Package ebitenui renders nodegraph draw lists with [Ebitengine] and feeds
// Ebitengine mouse and keyboard state into a nodegraph.UI.
//
// The simplest way in is [Run], which opens a window and drives the frame
// loop:
//
//	err := ebitenui.Run(ebitenui.AppFunc(func(ui *nodegraph.UI) error {
//		ui.BeginCanvas(canvas)
//		// nodes, slots and connections
//		ui.EndCanvas()
//		return nil
//	}), ebitenui.RunConfig{Title: "graph", Width: 1280, Height: 720})
//
// Hosts that own their ebiten.Game call [ReadInput] in Update and
// [Renderer.Draw] in Draw instead.
//
// [Ebitengine]: https://ebitengine.org
package ebitenui
