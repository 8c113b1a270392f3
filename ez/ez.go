package ez

import (
	"math"

	"github.com/phanxgames/nodegraph"
)

// innerSpacing is the gap between a slot circle and the node border, in
// canvas units.
const innerSpacing = 4

// SlotInfo describes one slot of an easy node.
type SlotInfo struct {
	// Title is displayed next to the slot circle and names the slot in
	// connections.
	Title string
	// Kind matches connections to slots of the same kind. Its sign is
	// ignored; InputSlots and OutputSlots choose the direction.
	Kind int
}

type phase uint8

const (
	phaseNone    phase = iota
	phaseTitle         // after BeginNode
	phaseContent       // after InputSlots
	phaseOutputs       // after OutputSlots
)

// nodeLayout is remembered per node. Column widths are measured in one
// frame and used to place the columns in the next.
type nodeLayout struct {
	inputWidth   float64
	contentWidth float64
	outputWidth  float64

	// Widest output title seen last frame and so far this frame. Output
	// titles are right-aligned against it.
	outputTitleMax     float64
	outputTitleMaxNext float64

	contentX float64
	outputX  float64
	bodyY    float64

	phase phase
}

func canvas(ui *nodegraph.UI, op string) *nodegraph.CanvasState {
	c := ui.CurrentCanvas()
	if c == nil {
		panic("ez: " + op + " outside BeginCanvas/EndCanvas")
	}
	return c
}

// layoutFor returns the layout record of the node whose ID scope is current.
func layoutFor(ui *nodegraph.UI) *nodeLayout {
	st := ui.Storage()
	id := ui.GetID("ez-layout")
	if v, ok := st.Value(id); ok {
		if l, ok := v.(*nodeLayout); ok {
			return l
		}
	}
	l := &nodeLayout{}
	st.SetValue(id, l)
	return l
}

func currentLayout(ui *nodegraph.UI, op string, want phase) *nodeLayout {
	canvas(ui, op)
	if ui.CurrentNode() == nil {
		panic("ez: " + op + " outside BeginNode/EndNode")
	}
	l := layoutFor(ui)
	if l.phase != want {
		switch want {
		case phaseTitle:
			panic("ez: " + op + " must follow BeginNode")
		case phaseContent:
			panic("ez: " + op + " must follow InputSlots")
		default:
			panic("ez: " + op + " must follow OutputSlots")
		}
	}
	return l
}

// BeginNode starts a node with a title line above an input column, a content
// column and an output column. Column widths come from the previous frame;
// on a node's first frame the columns are packed tightly and settle one
// frame later. The title is centred over the body, or the body is widened
// to fit a longer title.
//
// Call InputSlots, then render content, then OutputSlots, then EndNode.
// BeginNode returns what nodegraph.UI.BeginNode returns.
func BeginNode(ui *nodegraph.UI, id any, title string, pos *nodegraph.Vec2, selected *bool) bool {
	c := canvas(ui, "BeginNode")
	ok := ui.BeginNode(id, pos, selected)
	l := layoutFor(ui)

	spacing := ui.Style.ItemSpacing.Scale(c.Zoom)
	titleSize := ui.CalcTextSize(title)
	titlePos := ui.CursorScreenPos()
	inputPos := titlePos.Add(nodegraph.Vec2{X: 0, Y: titleSize.Y + spacing.Y})

	body := l.inputWidth + l.contentWidth + l.outputWidth
	bodySpacing := 0.0
	if body > 0 {
		l.outputTitleMax = l.outputTitleMaxNext
		l.outputTitleMaxNext = 0

		body += 2 * spacing.X
		if body > titleSize.X {
			titlePos.X += body/2 - titleSize.X/2
		} else {
			bodySpacing = (titleSize.X - body) / 2
		}
	}
	l.contentX = inputPos.X + l.inputWidth + spacing.X + bodySpacing
	l.outputX = l.contentX + l.contentWidth + spacing.X + bodySpacing
	l.bodyY = inputPos.Y

	ui.SetCursorScreenPos(titlePos)
	ui.Text(title)
	ui.SetCursorScreenPos(inputPos)

	ui.BeginGroup()
	l.phase = phaseTitle
	return ok
}

// InputSlots renders the input column and opens the content column. Call it
// right after BeginNode, with no slots when the node has no inputs.
func InputSlots(ui *nodegraph.UI, slots ...SlotInfo) {
	l := currentLayout(ui, "InputSlots", phaseTitle)
	c := ui.CurrentCanvas()

	pos := ui.CursorScreenPos()
	ui.BeginGroup()
	for _, s := range slots {
		slot(ui, c, l, s.Title, nodegraph.InputSlotKind(s.Kind), &pos)
	}
	ui.EndGroup()
	l.inputWidth = ui.ItemRect().Width

	ui.SetCursorScreenPos(nodegraph.Vec2{X: l.contentX, Y: l.bodyY})
	ui.BeginGroup()
	l.phase = phaseContent
}

// OutputSlots closes the content column and renders the output column. Call
// it after the node content, with no slots when the node has no outputs.
func OutputSlots(ui *nodegraph.UI, slots ...SlotInfo) {
	l := currentLayout(ui, "OutputSlots", phaseContent)
	c := ui.CurrentCanvas()

	ui.EndGroup()
	l.contentWidth = ui.ItemRect().Width

	pos := nodegraph.Vec2{X: l.outputX, Y: l.bodyY}
	ui.SetCursorScreenPos(pos)
	ui.BeginGroup()
	for _, s := range slots {
		slot(ui, c, l, s.Title, nodegraph.OutputSlotKind(s.Kind), &pos)
	}
	ui.EndGroup()
	l.outputWidth = ui.ItemRect().Width
	l.phase = phaseOutputs
}

// EndNode finishes a node started with BeginNode.
func EndNode(ui *nodegraph.UI) {
	l := currentLayout(ui, "EndNode", phaseOutputs)
	l.phase = phaseNone
	ui.EndGroup()
	ui.EndNode()
}

// Connection draws a connection between an input slot and an output slot of
// easy nodes. See nodegraph.UI.Connection.
func Connection(ui *nodegraph.UI, inputNode any, inputSlot string, outputNode any, outputSlot string) bool {
	return ui.Connection(nodegraph.Connection{
		InputNode:  inputNode,
		InputSlot:  inputSlot,
		OutputNode: outputNode,
		OutputSlot: outputSlot,
	})
}

// slot renders one slot at *pos and advances pos to the next row. Circles
// are centred on the node border. An input slot starts left of its column
// and its overhang is outside the column anyway; an output slot's overhang
// is trimmed from the column's extent.
func slot(ui *nodegraph.UI, c *nodegraph.CanvasState, l *nodeLayout, title string, kind int, pos *nodegraph.Vec2) {
	radius := c.Style.SlotRadius * c.Zoom
	spacing := ui.Style.ItemSpacing.Scale(c.Zoom)
	titleSize := ui.CalcTextSize(title)
	output := nodegraph.IsOutputSlotKind(kind)

	offsetX := innerSpacing*c.Zoom + radius
	if !output {
		offsetX = -offsetX
	}
	ui.SetCursorScreenPos(pos.Add(nodegraph.Vec2{X: offsetX}))
	pos.Y += math.Max(titleSize.Y, 2*radius) + spacing.Y

	ui.BeginSlot(title, kind)

	color := c.Colors[nodegraph.ColConnection]
	if ui.IsSlotCurveHovered() || ui.IsConnectingCompatibleSlot() {
		color = c.Colors[nodegraph.ColConnectionActive]
	}

	// Large circles push the row down so the title stays centred on them.
	cur := ui.CursorScreenPos()
	cur.Y += math.Max(radius-titleSize.Y/2, 0)
	ui.SetCursorScreenPos(cur)

	if output {
		l.outputTitleMaxNext = math.Max(l.outputTitleMaxNext, titleSize.X)
		width := l.outputTitleMax
		if width == 0 {
			width = titleSize.X
		}
		cur.X += width - titleSize.X
		ui.SetCursorScreenPos(cur)
		ui.TextColored(color, title)
		ui.SameLine()
	}

	at := ui.CursorScreenPos()
	circle := nodegraph.Rect{X: at.X, Y: at.Y + titleSize.Y/2 - radius, Width: 2 * radius, Height: 2 * radius}
	ui.DrawList().AddCircleFilled(circle.Center(), radius, color)
	ui.ItemSize(circle.Size())
	ui.ItemAdd(circle, 0)

	if !output {
		ui.SameLine()
		ui.TextColored(color, title)
	}

	ui.EndSlot()
	if output {
		ui.ShrinkExtent(offsetX)
	}
}
