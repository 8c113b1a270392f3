package nodegraph

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Zoom limits. Every zoom change is clamped to [MinZoom, MaxZoom].
const (
	MinZoom = 0.3
	MaxZoom = 3.0
)

// wheelScrollStep is the pan distance in pixels of one wheel notch.
const wheelScrollStep = 16.0

// CanvasInteraction is the state of the canvas interaction state machine.
type CanvasInteraction uint8

const (
	StateIdle      CanvasInteraction = iota // no drag in progress
	StateDragging                           // one or more nodes follow the pointer
	StateSelecting                          // box-select rectangle is being drawn
)

// String returns the state name.
func (s CanvasInteraction) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateSelecting:
		return "selecting"
	}
	return "unknown"
}

// slotData is the per-frame cache entry of one slot.
type slotData struct {
	pos          Vec2   // anchor in screen space
	frame        uint64 // frame pos was recorded in
	hoveredFrame uint64 // last frame a curve ending here was hovered
}

// ignoreSlot is a slot that must not accept the connection being dragged,
// typically because it is already connected to the drag source.
type ignoreSlot struct {
	node  any
	slot  string
	input bool
}

// nodeScope is the node between BeginNode and EndNode.
type nodeScope struct {
	id       any
	pos      *Vec2
	selected *bool
	wasSel   bool
	autoPos  bool
	groups   int // layout group depth at BeginNode
}

// slotScope is the slot between BeginSlot and EndSlot.
type slotScope struct {
	title string
	kind  int
}

// movedNode is a node displaced by the current drag.
type movedNode struct {
	id  any
	pos *Vec2
}

// scrollAnim holds active scroll-to tweens for the canvas offset.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// CanvasState is the persistent state of one node editor canvas. Create it
// once with NewCanvasState and pass it to UI.BeginCanvas every frame.
//
// Zoom, Offset, Colors, Style and PanButton may be changed by the host at any
// time outside BeginCanvas/EndCanvas.
type CanvasState struct {
	// Zoom is the canvas scale factor, kept within [MinZoom, MaxZoom].
	Zoom float64
	// Offset is the pan offset in screen pixels.
	Offset Vec2
	// Colors is the color table.
	Colors [ColMax]Color
	// Style holds curve, slot and node geometry parameters.
	Style CanvasStyle
	// PanButton is the mouse button that pans the canvas when dragged. The
	// default is MouseButtonMiddle. Setting it to MouseButtonLeft makes a
	// drag on empty canvas pan instead of box-selecting.
	PanButton MouseButton

	state          CanvasInteraction
	selectionStart Vec2

	// Drag leader and whether the whole selection follows it.
	dragNode         any
	dragNodeSelected bool
	dragStartFrame   uint64
	moved            []movedNode

	// Deferred exclusive selection, applied on doSelectionsFrame.
	singleSelectedNode any
	doSelectionsFrame  uint64

	justConnected    bool
	newConnection    Connection
	hasNewConnection bool
	delConnection    Connection
	hasDelConnection bool

	// Connections submitted before their nodes, drawn by EndCanvas. A
	// double-click on one is returned by the next Connection call for it.
	late         []Connection
	lateDel      Connection
	hasLateDel   bool
	lateDelFrame uint64

	autoPositionNode any
	autoPlacedNode   any // placed this frame at autoPlacedFrame
	autoPlacedFrame  uint64
	ignore           []ignoreSlot
	slots            map[ID]*slotData

	node   nodeScope
	inNode bool
	slot   slotScope
	inSlot bool

	canvasID ID
	viewport Rect
	scroll   *scrollAnim
	sink     EventSink
}

// NewCanvasState creates a canvas with zoom 1, no pan, the default colors and
// the default style.
func NewCanvasState() *CanvasState {
	return &CanvasState{
		Zoom:      1,
		Colors:    DefaultColors(),
		Style:     DefaultCanvasStyle(),
		PanButton: MouseButtonMiddle,
		slots:     make(map[ID]*slotData),
		viewport:  defaultViewport,
	}
}

// Interaction returns the current state of the interaction state machine.
func (c *CanvasState) Interaction() CanvasInteraction { return c.state }

func (c *CanvasState) setState(ui *UI, s CanvasInteraction) {
	if c.state == s {
		return
	}
	ui.logState(c.state, s)
	c.state = s
}

// --- Coordinate conversion ---

// CanvasToScreen converts a canvas position (the space node positions live
// in) to a screen position, using the viewport of the last BeginCanvas.
func (c *CanvasState) CanvasToScreen(p Vec2) Vec2 {
	return c.viewport.Min().Add(c.Offset).Add(p.Scale(c.Zoom))
}

// ScreenToCanvas converts a screen position to a canvas position.
func (c *CanvasState) ScreenToCanvas(p Vec2) Vec2 {
	return p.Sub(c.viewport.Min()).Sub(c.Offset).Div(c.Zoom)
}

// --- Scrolling ---

// offsetCentering returns the pan offset that puts canvas point p at the
// centre of the viewport.
func (c *CanvasState) offsetCentering(p Vec2) Vec2 {
	return c.viewport.Size().Scale(0.5).Sub(p.Scale(c.Zoom))
}

// ScrollTo animates the pan offset so the canvas point (x, y) ends up at the
// centre of the viewport after duration seconds. Any pan or zoom gesture
// cancels the animation.
func (c *CanvasState) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.OutQuad
	}
	target := c.offsetCentering(Vec2{x, y})
	c.scroll = &scrollAnim{
		tweenX: gween.New(float32(c.Offset.X), float32(target.X), duration, easeFn),
		tweenY: gween.New(float32(c.Offset.Y), float32(target.Y), duration, easeFn),
	}
}

// CenterOn pans immediately so the canvas point (x, y) is at the centre of
// the viewport.
func (c *CanvasState) CenterOn(x, y float64) {
	c.scroll = nil
	c.Offset = c.offsetCentering(Vec2{x, y})
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *CanvasState) Scrolling() bool { return c.scroll != nil }

func (c *CanvasState) updateScroll(dt float64) {
	if c.scroll == nil {
		return
	}
	s := c.scroll
	if !s.doneX {
		val, done := s.tweenX.Update(float32(dt))
		c.Offset.X = float64(val)
		s.doneX = done
	}
	if !s.doneY {
		val, done := s.tweenY.Update(float32(dt))
		c.Offset.Y = float64(val)
		s.doneY = done
	}
	if s.doneX && s.doneY {
		c.scroll = nil
	}
}

// --- Slot cache ---

func (c *CanvasState) setSlotAnchor(ui *UI, node any, title string, input bool, pos Vec2) {
	id := ui.slotID(node, title, input)
	sd, ok := c.slots[id]
	if !ok {
		sd = &slotData{}
		c.slots[id] = sd
	}
	sd.pos = pos
	sd.frame = ui.frame
}

// slotAnchor returns the anchor of a slot rendered this frame.
func (c *CanvasState) slotAnchor(ui *UI, node any, title string, input bool) (Vec2, bool) {
	sd, ok := c.slots[ui.slotID(node, title, input)]
	if !ok || sd.frame != ui.frame {
		return Vec2{}, false
	}
	return sd.pos, true
}

func (c *CanvasState) setSlotHovered(ui *UI, node any, title string, input bool) {
	if sd, ok := c.slots[ui.slotID(node, title, input)]; ok {
		sd.hoveredFrame = ui.frame
	}
}

// slotHovered reports whether a curve ending at the slot was hovered this
// frame or the previous one.
func (c *CanvasState) slotHovered(ui *UI, node any, title string, input bool) bool {
	sd, ok := c.slots[ui.slotID(node, title, input)]
	return ok && sd.hoveredFrame != 0 && sd.hoveredFrame+1 >= ui.frame
}

// pendingPlacement reports whether node has no final position yet this
// frame: it waits for auto-positioning or was placed earlier in the frame.
func (c *CanvasState) pendingPlacement(ui *UI, node any) bool {
	if c.autoPositionNode != nil && c.autoPositionNode == node {
		return true
	}
	return c.autoPlacedFrame == ui.frame && c.autoPlacedNode == node
}

// gcSlots drops cache entries not refreshed this frame.
func (c *CanvasState) gcSlots(frame uint64) {
	for id, sd := range c.slots {
		if sd.frame < frame {
			delete(c.slots, id)
		}
	}
}

// --- Canvas scope ---

// CurrentCanvas returns the canvas between BeginCanvas and EndCanvas, or nil.
func (ui *UI) CurrentCanvas() *CanvasState { return ui.canvas }

func (ui *UI) mustCanvas(op string) *CanvasState {
	if ui.canvas == nil {
		panic("nodegraph: " + op + " outside BeginCanvas/EndCanvas")
	}
	return ui.canvas
}

// BeginCanvas makes c the current canvas for this frame. It handles pan and
// zoom input and draws the background grid. Canvases cannot nest: calling
// BeginCanvas while another canvas is current panics.
func (ui *UI) BeginCanvas(c *CanvasState) {
	if c == nil {
		panic("nodegraph: BeginCanvas with nil canvas")
	}
	if ui.canvas != nil {
		panic("nodegraph: BeginCanvas while another canvas is current (canvases cannot nest)")
	}
	if c.slots == nil {
		c.slots = make(map[ID]*slotData)
	}
	c.Zoom = clampZoom(c.Zoom)
	ui.canvas = c
	c.viewport = ui.viewport

	ui.PushID(c)
	c.canvasID = ui.GetID("canvas")
	ui.ItemAdd(ui.viewport, c.canvasID)

	c.updateScroll(ui.mouse.dt)
	if !ui.IsMouseDown(MouseButtonLeft) && ui.IsWindowHovered() {
		c.handlePanZoom(ui)
	}

	c.drawGrid(ui)
	ui.SetFontScale(c.Zoom)
	ui.SetCursorScreenPos(ui.viewport.Min())
}

// handlePanZoom applies pan-button drags and wheel input.
func (c *CanvasState) handlePanZoom(ui *UI) {
	before := c.Offset
	beforeZoom := c.Zoom

	if c.PanButton != MouseButtonLeft && ui.IsMouseDragging(c.PanButton) {
		c.Offset = c.Offset.Add(ui.MouseDelta())
	}

	wheelX, wheelY := ui.MouseWheel()
	mods := ui.Modifiers()
	shift, ctrl := mods.Has(ModShift), mods.Has(ModCtrl)
	switch {
	case shift && !ctrl:
		c.Offset.X += wheelY * wheelScrollStep
	case !shift && !ctrl:
		c.Offset.Y += wheelY * wheelScrollStep
		c.Offset.X += wheelX * wheelScrollStep
	case ctrl && !shift && wheelY != 0:
		mouseRel := ui.MousePos().Sub(ui.viewport.Min())
		prevZoom := c.Zoom
		c.Zoom = clampZoom(c.Zoom + wheelY*c.Zoom/16)
		factor := (prevZoom - c.Zoom) / prevZoom
		c.Offset = c.Offset.Add(mouseRel.Sub(c.Offset).Scale(factor))
	}

	if c.Offset != before || c.Zoom != beforeZoom {
		c.scroll = nil
	}
}

func clampZoom(z float64) float64 {
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}

func (c *CanvasState) drawGrid(ui *UI) {
	grid := c.Style.GridSpacing * c.Zoom
	if grid <= 0 {
		return
	}
	vp := ui.viewport
	col := c.Colors[ColCanvasLines]
	dl := &ui.drawList
	for x := math.Mod(c.Offset.X, grid); x < vp.Width; x += grid {
		dl.AddLine(Vec2{vp.X + x, vp.Y}, Vec2{vp.X + x, vp.Y + vp.Height}, col, 1)
	}
	for y := math.Mod(c.Offset.Y, grid); y < vp.Height; y += grid {
		dl.AddLine(Vec2{vp.X, vp.Y + y}, Vec2{vp.X + vp.Width, vp.Y + y}, col, 1)
	}
}

// EndCanvas finishes the current canvas. It draws the connection being
// dragged, resolves deferred selection and runs the interaction state
// machine. Panics without a matching BeginCanvas.
func (ui *UI) EndCanvas() {
	c := ui.canvas
	if c == nil {
		panic("nodegraph: EndCanvas without BeginCanvas")
	}
	if c.inNode {
		panic("nodegraph: EndCanvas inside a node (missing EndNode?)")
	}
	dl := &ui.drawList

	c.drawLateConnections(ui)
	c.drawPendingConnection(ui)

	if c.doSelectionsFrame <= ui.frame {
		c.singleSelectedNode = nil
	}

	switch c.state {
	case StateIdle:
		click := ui.MouseClickPos(MouseButtonLeft)
		if ui.IsMouseClicked(MouseButtonLeft) && ui.viewport.Contains(click.X, click.Y) &&
			ui.IsWindowHovered() && !ui.IsAnyItemActive() {
			ui.SetActiveID(c.canvasID)
			mods := ui.Modifiers()
			if !mods.Has(ModCtrl) && !mods.Has(ModShift) {
				// Deselect everything next frame.
				c.singleSelectedNode = nil
				c.doSelectionsFrame = ui.frame + 1
			}
		}
		if ui.ActiveID() == c.canvasID {
			if !ui.IsMouseDown(MouseButtonLeft) {
				ui.ClearActiveID()
			} else if ui.IsMouseDragging(MouseButtonLeft) {
				if c.PanButton == MouseButtonLeft {
					c.Offset = c.Offset.Add(ui.MouseDelta())
					c.scroll = nil
				} else {
					c.selectionStart = click
					c.setState(ui, StateSelecting)
				}
			}
		}
	case StateDragging:
		if !ui.IsMouseDown(MouseButtonLeft) {
			for _, m := range c.moved {
				c.emit(ui, GraphEvent{Type: EventNodeMoved, Node: m.id, Position: *m.pos})
			}
			c.moved = c.moved[:0]
			c.dragNode = nil
			c.setState(ui, StateIdle)
		}
	case StateSelecting:
		if ui.IsMouseDown(MouseButtonLeft) {
			r := RectFromPoints(c.selectionStart, ui.MousePos())
			dl.AddRectFilled(r.Min(), r.Max(), c.Colors[ColSelectBg], 0)
			dl.AddRect(r.Min(), r.Max(), c.Colors[ColSelectBorder], 0, 1)
		} else {
			ui.ClearActiveID()
			c.setState(ui, StateIdle)
		}
	}

	c.gcSlots(ui.frame)
	ui.SetFontScale(1)
	ui.PopID()
	ui.canvas = nil
}

// selectionRect returns the box-select rectangle in screen space.
func (c *CanvasState) selectionRect(ui *UI) Rect {
	return RectFromPoints(c.selectionStart, ui.MousePos())
}

// noteMoved records that a node was displaced by the current drag.
func (c *CanvasState) noteMoved(id any, pos *Vec2) {
	for _, m := range c.moved {
		if m.id == id {
			return
		}
	}
	c.moved = append(c.moved, movedNode{id: id, pos: pos})
}
