package nodegraph

// syntheticEvent is one frame of injected input. Screen coordinates are
// used, identical to real mouse input.
type syntheticEvent struct {
	x, y    float64
	buttons [mouseButtonCount]bool
	mods    KeyModifiers
	wheelX  float64
	wheelY  float64
}

// SetInjectedModifiers sets the modifier keys attached to input queued from
// now on.
func (ui *UI) SetInjectedModifiers(mods KeyModifiers) {
	ui.injectMods = mods
}

func (ui *UI) inject(x, y float64, button MouseButton, pressed bool) {
	evt := syntheticEvent{x: x, y: y, mods: ui.injectMods}
	evt.buttons[button] = pressed
	ui.injectQueue = append(ui.injectQueue, evt)
}

// InjectPress queues a left button press at the given screen coordinates.
// The event is consumed by the next NewFrame.
func (ui *UI) InjectPress(x, y float64) {
	ui.inject(x, y, MouseButtonLeft, true)
}

// InjectMove queues a pointer move with the left button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (ui *UI) InjectMove(x, y float64) {
	ui.inject(x, y, MouseButtonLeft, true)
}

// InjectHover queues a pointer move with no button held.
func (ui *UI) InjectHover(x, y float64) {
	ui.inject(x, y, MouseButtonLeft, false)
}

// InjectRelease queues a left button release at the given screen coordinates.
func (ui *UI) InjectRelease(x, y float64) {
	ui.inject(x, y, MouseButtonLeft, false)
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (ui *UI) InjectClick(x, y float64) {
	ui.InjectPress(x, y)
	ui.InjectRelease(x, y)
}

// InjectDoubleClick queues two clicks at the same point. Consumes four
// frames, well inside the double-click interval.
func (ui *UI) InjectDoubleClick(x, y float64) {
	ui.InjectClick(x, y)
	ui.InjectClick(x, y)
}

// InjectDrag queues a full left-button drag sequence: press at (fromX,
// fromY), linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (ui *UI) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	ui.InjectButtonDrag(MouseButtonLeft, fromX, fromY, toX, toY, frames)
}

// InjectButtonDrag is InjectDrag for an arbitrary button.
func (ui *UI) InjectButtonDrag(button MouseButton, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	ui.inject(fromX, fromY, button, true)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		ui.inject(x, y, button, true)
	}
	ui.inject(toX, toY, button, false)
}

// InjectWheel queues one frame of wheel movement with the pointer at (x, y).
func (ui *UI) InjectWheel(x, y, dx, dy float64) {
	ui.injectQueue = append(ui.injectQueue, syntheticEvent{
		x: x, y: y, mods: ui.injectMods, wheelX: dx, wheelY: dy,
	})
}

// PendingInjected returns the number of queued synthetic frames.
func (ui *UI) PendingInjected() int { return len(ui.injectQueue) }

// applyInjectedInput pops one event from the inject queue and lays it over
// in. Returns in untouched when the queue is empty.
func (ui *UI) applyInjectedInput(in Input) Input {
	if len(ui.injectQueue) == 0 {
		return in
	}
	evt := ui.injectQueue[0]
	copy(ui.injectQueue, ui.injectQueue[1:])
	ui.injectQueue = ui.injectQueue[:len(ui.injectQueue)-1]

	in.CursorX, in.CursorY = evt.x, evt.y
	in.Buttons = evt.buttons
	in.Modifiers = evt.mods
	in.WheelX, in.WheelY = evt.wheelX, evt.wheelY
	return in
}
