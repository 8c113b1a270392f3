package nodegraph

// AutoPositionNode marks a node to be centred on the mouse cursor the next
// time it is rendered. Call it right after creating a node. The node renders
// off-screen for one frame while its size is measured.
func (c *CanvasState) AutoPositionNode(id any) {
	c.autoPositionNode = id
}

// AutoPositionNode marks a node of the current canvas for placement at the
// cursor. See CanvasState.AutoPositionNode.
func (ui *UI) AutoPositionNode(id any) {
	ui.mustCanvas("AutoPositionNode").AutoPositionNode(id)
}

// CurrentNode returns the handle of the node between BeginNode and EndNode,
// or nil.
func (ui *UI) CurrentNode() any {
	if ui.canvas == nil || !ui.canvas.inNode {
		return nil
	}
	return ui.canvas.node.id
}

// prevSelectedID keys the selection snapshot taken when a press starts.
func (ui *UI) prevSelectedID(node any) ID {
	return ui.hashID(ui.hashID(0, "prev-selected"), node)
}

// BeginNode starts a node. id is a host-owned handle identifying the node
// across frames; pos and selected point at the host's position and selection
// flag, both updated by the editor. pos is the node's top-left corner in
// canvas units.
//
// Content is laid out from the cursor position BeginNode leaves behind.
// BeginNode always returns true; the result exists so call sites read like
// other Begin/End pairs. EndNode must be called.
func (ui *UI) BeginNode(id any, pos *Vec2, selected *bool) bool {
	c := ui.mustCanvas("BeginNode")
	if id == nil || pos == nil || selected == nil {
		panic("nodegraph: BeginNode with nil id, pos or selected")
	}
	if c.inNode {
		panic("nodegraph: BeginNode inside another node (missing EndNode?)")
	}
	ui.PushID(id)

	c.inNode = true
	c.node = nodeScope{
		id:       id,
		pos:      pos,
		selected: selected,
		wasSel:   *selected,
		autoPos:  c.autoPositionNode != nil && c.autoPositionNode == id,
		groups:   len(ui.layout.groups),
	}

	// Channel 0 holds the node frame and curves, channel 1 the content.
	ui.drawList.ChannelsSplit(2)

	pad := c.Style.NodePadding.Scale(c.Zoom)
	var origin Vec2
	if c.node.autoPos {
		// Out of view so the node does not flicker before it is placed.
		origin = ui.viewport.Max().Add(pad)
	} else {
		origin = c.CanvasToScreen(*pos)
	}
	ui.SetCursorScreenPos(origin.Add(pad))

	ui.BeginGroup()
	ui.drawList.SetChannel(1)
	return true
}

// EndNode finishes the current node: it draws the node frame, registers the
// node for hit testing and applies selection, drag and box-select input.
func (ui *UI) EndNode() {
	c := ui.mustCanvas("EndNode")
	if !c.inNode {
		panic("nodegraph: EndNode without BeginNode")
	}
	if c.inSlot {
		panic("nodegraph: EndNode inside a slot (missing EndSlot?)")
	}
	n := c.node
	if len(ui.layout.groups) != n.groups+1 {
		panic("nodegraph: EndNode with unbalanced BeginGroup/EndGroup")
	}

	ui.EndGroup()
	rect := ui.ItemRect().Expand(c.Style.NodePadding.Scale(c.Zoom))

	dl := &ui.drawList
	dl.SetChannel(0)
	bg := c.Colors[ColNodeBg]
	if *n.selected {
		bg = c.Colors[ColNodeActiveBg]
	}
	rounding := c.Style.NodeRounding * c.Zoom
	dl.AddRectFilled(rect.Min(), rect.Max(), bg, rounding)
	dl.AddRect(rect.Min(), rect.Max(), c.Colors[ColNodeBorder], rounding, 1)

	itemID := ui.GetID(n.id)
	ui.ItemAdd(rect, itemID)

	// The node holds the pointer while pressed, so it can be dragged.
	down := ui.IsMouseDown(MouseButtonLeft)
	wasActive := ui.IsItemActive()
	if down && !ui.IsAnyItemActive() && ui.IsItemHovered() {
		ui.SetActiveID(itemID)
	}
	active := ui.IsItemActive()
	if !down && active {
		ui.ClearActiveID()
		active = false
	}

	prevID := ui.prevSelectedID(n.id)
	if ui.IsMouseClicked(MouseButtonLeft) {
		ui.storage.SetBool(prevID, *n.selected)
	}

	sel := n.selected
	switch c.state {
	case StateIdle:
		switch {
		case c.justConnected || ui.dragDrop.active:
			// The click that completes a connection never changes selection.
			c.justConnected = false
		case c.doSelectionsFrame == ui.frame:
			*sel = c.singleSelectedNode == n.id
		case ui.IsMouseReleased(MouseButtonLeft) && wasActive &&
			!ui.wasMouseDragged(MouseButtonLeft) && ui.isItemRectHovered():
			*sel = !*sel
			if *sel && !ui.Modifiers().Has(ModCtrl) {
				c.singleSelectedNode = n.id
				c.doSelectionsFrame = ui.frame + 1
			}
		case active && ui.IsMouseDragging(MouseButtonLeft):
			c.setState(ui, StateDragging)
			if c.dragNode == nil {
				c.dragNode = n.id
				c.dragNodeSelected = *sel
				c.dragStartFrame = ui.frame
			} else {
				c.singleSelectedNode = nil
			}
		case n.autoPos:
			*n.pos = c.ScreenToCanvas(ui.MousePos().Sub(rect.Size().Scale(0.5)))
			c.autoPositionNode = nil
			c.autoPlacedNode = n.id
			c.autoPlacedFrame = ui.frame
		}
	case StateDragging:
		// Nodes before the leader already ran this frame, so the frame the
		// drag starts moves nothing.
		if down && ui.frame != c.dragStartFrame {
			if active || (c.dragNode != nil && c.dragNodeSelected && *sel) {
				if d := ui.MouseDelta().Div(c.Zoom); d != (Vec2{}) {
					*n.pos = n.pos.Add(d)
					c.noteMoved(n.id, n.pos)
				}
			}
		}
	case StateSelecting:
		inside := c.selectionRect(ui).ContainsRect(rect)
		mods := ui.Modifiers()
		switch {
		case mods.Has(ModShift):
			*sel = inside || ui.storage.Bool(prevID)
		case mods.Has(ModCtrl):
			*sel = !inside && ui.storage.Bool(prevID)
		default:
			*sel = inside
		}
	}

	if *sel != n.wasSel {
		c.emit(ui, GraphEvent{Type: EventSelectionChanged, Node: n.id, Selected: *sel})
	}

	dl.ChannelsMerge()
	ui.PopID()
	c.inNode = false
	c.node = nodeScope{}
}
