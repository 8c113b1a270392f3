package nodegraph

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

// testSlot is a slot rendered as a 10x10 box.
type testSlot struct {
	title string
	kind  int
}

// testNode is a host-owned node. Slots are stacked vertically; a node
// without slots renders a single 10x10 box. With the default padding of 4 a
// node at (x, y) occupies (x, y)-(x+18, y+18) per box row.
type testNode struct {
	name     string
	pos      Vec2
	selected bool
	slots    []testSlot

	hovered    map[string]bool
	compatible map[string]bool
}

func newTestNode(name string, x, y float64, slots ...testSlot) *testNode {
	return &testNode{
		name:       name,
		pos:        Vec2{x, y},
		slots:      slots,
		hovered:    make(map[string]bool),
		compatible: make(map[string]bool),
	}
}

// harness drives a UI and canvas the way a host application would.
type harness struct {
	ui     *UI
	canvas *CanvasState
	nodes  []*testNode
	conns  []Connection

	made    []Connection
	deleted []Connection
	events  []GraphEvent

	// beforeNodes runs inside the canvas before any node.
	beforeNodes func(h *harness)
}

func newHarness(nodes ...*testNode) *harness {
	h := &harness{
		ui:     NewUI(),
		canvas: NewCanvasState(),
		nodes:  nodes,
	}
	h.ui.SetViewport(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	h.canvas.SetEventSink(EventSinkFunc(func(e GraphEvent) {
		h.events = append(h.events, e)
	}))
	return h
}

func (h *harness) drawNode(n *testNode) {
	ui := h.ui
	ui.BeginNode(n, &n.pos, &n.selected)
	if len(n.slots) == 0 {
		ui.Dummy(Vec2{10, 10})
	}
	for _, s := range n.slots {
		ui.BeginSlot(s.title, s.kind)
		ui.Dummy(Vec2{10, 10})
		n.hovered[s.title] = ui.IsSlotCurveHovered()
		n.compatible[s.title] = ui.IsConnectingCompatibleSlot()
		ui.EndSlot()
	}
	ui.EndNode()
}

// frame runs one frame. Without queued input the pointer, buttons and
// modifiers stay as they were.
func (h *harness) frame() *DrawList {
	ui := h.ui
	in := Input{CursorX: ui.mouse.pos.X, CursorY: ui.mouse.pos.Y, Modifiers: ui.mouse.mods}
	for i := range in.Buttons {
		in.Buttons[i] = ui.mouse.buttons[i].down
	}
	ui.NewFrame(in)
	ui.BeginCanvas(h.canvas)
	if h.beforeNodes != nil {
		h.beforeNodes(h)
	}
	for _, n := range h.nodes {
		h.drawNode(n)
	}
	kept := h.conns[:0]
	for _, c := range h.conns {
		if ui.Connection(c) {
			kept = append(kept, c)
		} else {
			h.deleted = append(h.deleted, c)
		}
	}
	h.conns = kept
	if c, ok := ui.GetNewConnection(); ok {
		h.made = append(h.made, c)
		h.conns = append(h.conns, c)
	}
	ui.EndCanvas()
	return ui.EndFrame()
}

// drain runs frames until all queued input is consumed.
func (h *harness) drain() {
	for h.ui.PendingInjected() > 0 {
		h.frame()
	}
}

func (h *harness) countEvents(typ EventType) int {
	n := 0
	for _, e := range h.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func countCommands(dl *DrawList, typ CommandType) int {
	n := 0
	for _, cmd := range dl.Commands {
		if cmd.Type == typ {
			n++
		}
	}
	return n
}
