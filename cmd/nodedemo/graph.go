package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/nodegraph"
	"github.com/phanxgames/nodegraph/ez"
)

// template describes a kind of node the user can add.
type template struct {
	title   string
	inputs  []ez.SlotInfo
	outputs []ez.SlotInfo
}

var templates = []template{
	{
		title:   "Node 0",
		inputs:  []ez.SlotInfo{{Title: "Input 0", Kind: 1}, {Title: "Input longer", Kind: 1}},
		outputs: []ez.SlotInfo{{Title: "Output 0", Kind: 1}, {Title: "Output longer", Kind: 1}},
	},
	{
		title:   "Node 1",
		inputs:  []ez.SlotInfo{{Title: "Input 0", Kind: 1}},
		outputs: []ez.SlotInfo{{Title: "Output longer", Kind: 1}},
	},
	{
		title:   "Mix",
		inputs:  []ez.SlotInfo{{Title: "Color", Kind: 2}, {Title: "Value", Kind: 1}},
		outputs: []ez.SlotInfo{{Title: "Color", Kind: 2}},
	},
}

// graphNode is one node of the demo graph. The pointer is the node handle.
type graphNode struct {
	seq      int
	title    string
	pos      nodegraph.Vec2
	selected bool
	inputs   []ez.SlotInfo
	outputs  []ez.SlotInfo
}

// graph is the host-owned model the editor displays.
type graph struct {
	nodes []*graphNode
	conns []nodegraph.Connection

	canvas   *nodegraph.CanvasState
	logger   *log.Logger
	script   *nodegraph.ScriptRunner
	nextSeq  int
	nextTmpl int

	// keyPressed reports keys pressed this tick.
	keyPressed func(ebiten.Key) bool
}

func newGraph(canvas *nodegraph.CanvasState, logger *log.Logger) *graph {
	g := &graph{
		canvas:     canvas,
		logger:     logger,
		keyPressed: inpututil.IsKeyJustPressed,
	}
	canvas.SetEventSink(nodegraph.EventSinkFunc(g.logEvent))
	return g
}

// seed adds the starting graph: two nodes and a connection between them.
func (g *graph) seed() {
	a := g.addNode(templates[0], nodegraph.Vec2{X: 40, Y: 60})
	b := g.addNode(templates[1], nodegraph.Vec2{X: 360, Y: 120})
	g.conns = append(g.conns, nodegraph.Connection{
		InputNode: b, InputSlot: "Input 0",
		OutputNode: a, OutputSlot: "Output 0",
	})
}

func (g *graph) addNode(t template, pos nodegraph.Vec2) *graphNode {
	g.nextSeq++
	n := &graphNode{
		seq:     g.nextSeq,
		title:   fmt.Sprintf("%s #%d", t.title, g.nextSeq),
		pos:     pos,
		inputs:  t.inputs,
		outputs: t.outputs,
	}
	g.nodes = append(g.nodes, n)
	return n
}

// nextTemplate cycles through the templates.
func (g *graph) nextTemplate() template {
	t := templates[g.nextTmpl%len(templates)]
	g.nextTmpl++
	return t
}

// deleteSelected removes selected nodes and every connection touching them.
func (g *graph) deleteSelected(ui *nodegraph.UI) int {
	gone := make(map[*graphNode]bool)
	kept := g.nodes[:0]
	for _, n := range g.nodes {
		if n.selected {
			gone[n] = true
			ui.ForgetHandle(n)
			continue
		}
		kept = append(kept, n)
	}
	g.nodes = kept
	if len(gone) == 0 {
		return 0
	}
	conns := g.conns[:0]
	for _, c := range g.conns {
		if gone[c.InputNode.(*graphNode)] || gone[c.OutputNode.(*graphNode)] {
			continue
		}
		conns = append(conns, c)
	}
	g.conns = conns
	return len(gone)
}

// centroid returns the average node position.
func (g *graph) centroid() (nodegraph.Vec2, bool) {
	if len(g.nodes) == 0 {
		return nodegraph.Vec2{}, false
	}
	var sum nodegraph.Vec2
	for _, n := range g.nodes {
		sum = sum.Add(n.pos)
	}
	return sum.Div(float64(len(g.nodes))), true
}

func (g *graph) logEvent(e nodegraph.GraphEvent) {
	switch e.Type {
	case nodegraph.EventConnect, nodegraph.EventDisconnect:
		g.logger.Info(e.Type.String(),
			"from", e.Connection.OutputNode.(*graphNode).title+"."+e.Connection.OutputSlot,
			"to", e.Connection.InputNode.(*graphNode).title+"."+e.Connection.InputSlot)
	case nodegraph.EventNodeMoved:
		g.logger.Debug(e.Type.String(), "node", e.Node.(*graphNode).title, "x", e.Position.X, "y", e.Position.Y)
	}
}

// Frame renders the graph and applies keyboard commands:
//
//	N       add a node at the cursor
//	Delete  remove selected nodes
//	Home    scroll to the middle of the graph
//	F12     take a screenshot
//
// A right click on empty canvas also adds a node there.
func (g *graph) Frame(ui *nodegraph.UI) error {
	ui.BeginCanvas(g.canvas)

	for _, n := range g.nodes {
		if ez.BeginNode(ui, n, n.title, &n.pos, &n.selected) {
			ez.InputSlots(ui, n.inputs...)
			ui.Text(fmt.Sprintf("#%d", n.seq))
			ez.OutputSlots(ui, n.outputs...)
			ez.EndNode(ui)
		}
	}

	kept := g.conns[:0]
	for _, c := range g.conns {
		if ui.Connection(c) {
			kept = append(kept, c)
		}
	}
	g.conns = kept
	if c, ok := ui.GetNewConnection(); ok {
		g.conns = append(g.conns, c)
	}

	switch {
	case g.keyPressed(ebiten.KeyN):
		n := g.addNode(g.nextTemplate(), nodegraph.Vec2{})
		ui.AutoPositionNode(n)
	case ui.IsMouseClicked(nodegraph.MouseButtonRight) && ui.IsWindowHovered() && !ui.IsAnyItemActive():
		g.addNode(g.nextTemplate(), g.canvas.ScreenToCanvas(ui.MousePos()))
	case g.keyPressed(ebiten.KeyDelete):
		if n := g.deleteSelected(ui); n > 0 {
			g.logger.Info("deleted nodes", "count", n)
		}
	case g.keyPressed(ebiten.KeyHome):
		if c, ok := g.centroid(); ok {
			g.canvas.ScrollTo(c.X, c.Y, 0.4, ease.OutQuad)
		}
	case g.keyPressed(ebiten.KeyF12):
		ui.Screenshot(fmt.Sprintf("frame-%d", ui.FrameCount()))
	}

	ui.EndCanvas()

	if g.script != nil && g.script.Done() {
		return ebiten.Termination
	}
	return nil
}
