package nodegraph

import (
	"github.com/charmbracelet/log"
)

// defaultViewport is used until a backend reports a real one.
var defaultViewport = Rect{X: 0, Y: 0, Width: 1280, Height: 720}

// TextMeasurer measures text at scale 1. Backends provide one that matches
// the font they draw with.
type TextMeasurer interface {
	MeasureText(s string) Vec2
}

// MonoMeasurer measures text as a fixed-width font.
type MonoMeasurer struct {
	CharWidth, LineHeight float64
}

// MeasureText implements TextMeasurer.
func (m MonoMeasurer) MeasureText(s string) Vec2 {
	n := 0
	for range s {
		n++
	}
	return Vec2{float64(n) * m.CharWidth, m.LineHeight}
}

// UIStyle holds the layout parameters of the frame layer.
type UIStyle struct {
	// ItemSpacing is the gap between consecutive items, scaled by the font
	// scale.
	ItemSpacing Vec2
	TextColor   Color
}

// DefaultUIStyle returns the default layout style.
func DefaultUIStyle() UIStyle {
	return UIStyle{
		ItemSpacing: Vec2{8, 4},
		TextColor:   Color{0.9, 0.9, 0.9, 1},
	}
}

// UI is the immediate-mode context the node editor is built on. It owns the
// per-frame input state, the identity stack, scratch storage, the layout
// cursor, the drag-and-drop channel and the draw list. The host calls
// NewFrame, issues widget calls, then EndFrame and hands the returned
// DrawList to a backend.
//
// UI is not safe for concurrent use; one goroutine drives one frame to
// completion before the next begins.
type UI struct {
	Style UIStyle

	frame        uint64
	mouse        mouseState
	dragDeadZone float64
	viewport     Rect
	measurer     TextMeasurer
	fontScale    float64

	// Identity
	idStack    []ID
	handles    map[any]uint64
	nextHandle uint64
	storage    *Storage

	// Items
	lastItemID    ID
	lastItemRect  Rect
	activeID      ID
	activeIDAlive bool

	// Layout
	layout layoutState

	// Drag and drop
	dragDrop dragDropState

	drawList DrawList

	// Node editor scope. Exactly one canvas may be current.
	canvas *CanvasState

	// Synthetic input and scripted runs
	injectQueue     []syntheticEvent
	injectMods      KeyModifiers
	runner          *ScriptRunner
	screenshotQueue []string
	// ScreenshotDir is where backends write screenshots requested through
	// Screenshot or a script step.
	ScreenshotDir string

	debug  bool
	logger *log.Logger
}

// NewUI creates a context with default style and a monospace text measurer.
func NewUI() *UI {
	return &UI{
		Style:         DefaultUIStyle(),
		mouse:         newMouseState(),
		dragDeadZone:  defaultDragDeadZone,
		viewport:      defaultViewport,
		measurer:      MonoMeasurer{CharWidth: 7, LineHeight: 13},
		fontScale:     1,
		idStack:       []ID{0},
		handles:       make(map[any]uint64),
		storage:       newStorage(),
		ScreenshotDir: "screenshots",
	}
}

// SetTextMeasurer replaces the text measurer.
func (ui *UI) SetTextMeasurer(m TextMeasurer) {
	ui.measurer = m
}

// SetViewport sets the screen-space region the canvas occupies. A non-empty
// Input.Viewport overrides it every frame.
func (ui *UI) SetViewport(r Rect) {
	ui.viewport = r
}

// Viewport returns the current canvas region.
func (ui *UI) Viewport() Rect { return ui.viewport }

// Storage returns the scratch store.
func (ui *UI) Storage() *Storage { return ui.storage }

// FrameCount returns the number of frames started so far.
func (ui *UI) FrameCount() uint64 { return ui.frame }

// DrawList returns the draw list being recorded.
func (ui *UI) DrawList() *DrawList { return &ui.drawList }

// NewFrame starts a frame with the given input snapshot. Queued synthetic
// input, if any, replaces the pointer part of in.
func (ui *UI) NewFrame(in Input) {
	if ui.runner != nil {
		ui.runner.step(ui)
	}
	in = ui.applyInjectedInput(in)

	ui.frame++
	ui.storage.advance(ui.frame)
	ui.mouse.update(in)
	if in.Viewport.Width > 0 && in.Viewport.Height > 0 {
		ui.viewport = in.Viewport
	}

	// An active item that was not submitted last frame is gone.
	if ui.activeID != 0 && !ui.activeIDAlive {
		ui.activeID = 0
	}
	ui.activeIDAlive = false

	ui.dragDrop.newFrame(ui)

	ui.drawList.Reset()
	ui.idStack = ui.idStack[:1]
	ui.fontScale = 1
	ui.lastItemID = 0
	ui.lastItemRect = Rect{}
	ui.layout.reset(ui.viewport.Min())
}

// EndFrame finishes the frame and returns the recorded draw list. It panics
// when a canvas, ID scope or group is still open.
func (ui *UI) EndFrame() *DrawList {
	if ui.canvas != nil {
		panic("nodegraph: EndFrame with an open canvas (missing EndCanvas?)")
	}
	if len(ui.idStack) != 1 {
		panic("nodegraph: EndFrame with unbalanced PushID/PopID")
	}
	if len(ui.layout.groups) != 0 {
		panic("nodegraph: EndFrame with unbalanced BeginGroup/EndGroup")
	}
	return &ui.drawList
}

// --- Items ---

// ItemAdd registers an interactive region for hit testing. It becomes the
// "last item" that IsItemHovered and friends refer to.
func (ui *UI) ItemAdd(r Rect, id ID) {
	ui.lastItemID = id
	ui.lastItemRect = r
	if id != 0 && id == ui.activeID {
		ui.activeIDAlive = true
	}
}

// ItemRect returns the rectangle of the last item.
func (ui *UI) ItemRect() Rect { return ui.lastItemRect }

// IsWindowHovered reports whether the cursor is over the viewport.
func (ui *UI) IsWindowHovered() bool {
	return ui.viewport.Contains(ui.mouse.pos.X, ui.mouse.pos.Y)
}

// IsItemHovered reports whether the cursor is over the last item and no other
// item holds the pointer.
func (ui *UI) IsItemHovered() bool {
	if ui.activeID != 0 && ui.activeID != ui.lastItemID {
		return false
	}
	return ui.isItemRectHovered()
}

func (ui *UI) isItemRectHovered() bool {
	return ui.IsWindowHovered() && ui.lastItemRect.Contains(ui.mouse.pos.X, ui.mouse.pos.Y)
}

// IsItemActive reports whether the last item holds the pointer.
func (ui *UI) IsItemActive() bool {
	return ui.activeID != 0 && ui.activeID == ui.lastItemID
}

// IsAnyItemActive reports whether any item holds the pointer.
func (ui *UI) IsAnyItemActive() bool { return ui.activeID != 0 }

// ActiveID returns the ID of the item holding the pointer, or 0.
func (ui *UI) ActiveID() ID { return ui.activeID }

// SetActiveID makes id hold the pointer.
func (ui *UI) SetActiveID(id ID) {
	ui.activeID = id
	ui.activeIDAlive = true
}

// ClearActiveID releases the pointer.
func (ui *UI) ClearActiveID() {
	ui.activeID = 0
}

// --- Text scale ---

// SetFontScale scales text and item spacing.
func (ui *UI) SetFontScale(s float64) {
	ui.fontScale = s
}

// FontScale returns the current text scale.
func (ui *UI) FontScale() float64 { return ui.fontScale }

// CalcTextSize measures s at the current font scale.
func (ui *UI) CalcTextSize(s string) Vec2 {
	return ui.measurer.MeasureText(s).Scale(ui.fontScale)
}

// --- Screenshots ---

// Screenshot queues a labeled screenshot. Backends that support it capture
// the rendered frame after drawing and call TakeScreenshots.
func (ui *UI) Screenshot(label string) {
	ui.screenshotQueue = append(ui.screenshotQueue, label)
}

// TakeScreenshots returns and clears the queued screenshot labels.
func (ui *UI) TakeScreenshots() []string {
	if len(ui.screenshotQueue) == 0 {
		return nil
	}
	labels := append([]string(nil), ui.screenshotQueue...)
	ui.screenshotQueue = ui.screenshotQueue[:0]
	return labels
}
