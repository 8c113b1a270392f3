package nodegraph

import "math"

// --- Constants ---

const (
	defaultDragDeadZone = 4.0  // pixels
	doubleClickTime     = 0.30 // seconds
	doubleClickMaxDist  = 6.0  // pixels
	defaultDeltaTime    = 1.0 / 60.0
)

// Input is the raw input snapshot a backend hands to UI.NewFrame once per
// frame. Cursor coordinates are in screen space.
type Input struct {
	CursorX, CursorY float64
	// Buttons holds the held state of MouseButtonLeft, MouseButtonRight and
	// MouseButtonMiddle.
	Buttons   [mouseButtonCount]bool
	WheelX    float64 // horizontal wheel delta
	WheelY    float64 // vertical wheel delta
	Modifiers KeyModifiers
	// DeltaTime is the duration of the previous frame in seconds. Zero means
	// 1/60.
	DeltaTime float64
	// Viewport is the screen-space region the canvas occupies.
	Viewport Rect
}

// --- Per-button state ---

type buttonState struct {
	down          bool
	clicked       bool // went down this frame
	released      bool // went up this frame
	doubleClicked bool
	clickPos      Vec2
	clickTime     float64
	lastClickTime float64
	lastClickPos  Vec2
	dragMaxDistSq float64
}

func newMouseState() mouseState {
	var m mouseState
	for i := range m.buttons {
		m.buttons[i].lastClickTime = math.Inf(-1)
	}
	return m
}

type mouseState struct {
	pos     Vec2
	prevPos Vec2
	delta   Vec2
	buttons [mouseButtonCount]buttonState
	wheelX  float64
	wheelY  float64
	mods    KeyModifiers
	time    float64
	dt      float64
	started bool
}

// update runs the button state machine for one frame of input.
func (m *mouseState) update(in Input) {
	dt := in.DeltaTime
	if dt <= 0 {
		dt = defaultDeltaTime
	}
	m.time += dt
	m.dt = dt

	pos := Vec2{in.CursorX, in.CursorY}
	if !m.started {
		m.prevPos = pos
		m.started = true
	} else {
		m.prevPos = m.pos
	}
	m.pos = pos
	m.delta = m.pos.Sub(m.prevPos)
	m.wheelX = in.WheelX
	m.wheelY = in.WheelY
	m.mods = in.Modifiers

	for i := range m.buttons {
		b := &m.buttons[i]
		pressed := in.Buttons[i]
		b.clicked = pressed && !b.down
		b.released = !pressed && b.down
		b.doubleClicked = false

		if b.clicked {
			// Just pressed: remember where, and check for a double click
			// against the previous press.
			if m.time-b.lastClickTime <= doubleClickTime &&
				pos.Sub(b.lastClickPos).LenSq() <= doubleClickMaxDist*doubleClickMaxDist {
				b.doubleClicked = true
				b.lastClickTime = math.Inf(-1)
			} else {
				b.lastClickTime = m.time
			}
			b.lastClickPos = pos
			b.clickPos = pos
			b.clickTime = m.time
			b.dragMaxDistSq = 0
		}
		if pressed {
			// Held down: track the largest distance travelled from the press
			// point so a drag stays a drag even if the pointer returns.
			if d := pos.Sub(b.clickPos).LenSq(); d > b.dragMaxDistSq {
				b.dragMaxDistSq = d
			}
		}
		b.down = pressed
	}
}

// --- Queries ---

// MousePos returns the cursor position in screen space.
func (ui *UI) MousePos() Vec2 { return ui.mouse.pos }

// MouseDelta returns how far the cursor moved since the previous frame.
func (ui *UI) MouseDelta() Vec2 { return ui.mouse.delta }

// MouseWheel returns the horizontal and vertical wheel deltas of this frame.
func (ui *UI) MouseWheel() (x, y float64) { return ui.mouse.wheelX, ui.mouse.wheelY }

// Modifiers returns the modifier keys held this frame.
func (ui *UI) Modifiers() KeyModifiers { return ui.mouse.mods }

// IsMouseDown reports whether button is held.
func (ui *UI) IsMouseDown(button MouseButton) bool { return ui.mouse.buttons[button].down }

// IsMouseClicked reports whether button went down this frame.
func (ui *UI) IsMouseClicked(button MouseButton) bool { return ui.mouse.buttons[button].clicked }

// IsMouseReleased reports whether button went up this frame.
func (ui *UI) IsMouseReleased(button MouseButton) bool { return ui.mouse.buttons[button].released }

// IsMouseDoubleClicked reports whether this frame's press of button completed
// a double click.
func (ui *UI) IsMouseDoubleClicked(button MouseButton) bool {
	return ui.mouse.buttons[button].doubleClicked
}

// IsMouseDragging reports whether button is held and the cursor has moved
// beyond the drag dead zone since the press.
func (ui *UI) IsMouseDragging(button MouseButton) bool {
	b := &ui.mouse.buttons[button]
	return b.down && b.dragMaxDistSq >= ui.dragDeadZone*ui.dragDeadZone
}

// wasMouseDragged reports whether the press that ended (or is in progress)
// travelled beyond the drag dead zone.
func (ui *UI) wasMouseDragged(button MouseButton) bool {
	return ui.mouse.buttons[button].dragMaxDistSq >= ui.dragDeadZone*ui.dragDeadZone
}

// MouseClickPos returns where button was last pressed.
func (ui *UI) MouseClickPos(button MouseButton) Vec2 { return ui.mouse.buttons[button].clickPos }

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (ui *UI) SetDragDeadZone(pixels float64) {
	ui.dragDeadZone = pixels
}
