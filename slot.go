package nodegraph

func (ui *UI) mustSlot(op string) *CanvasState {
	c := ui.mustCanvas(op)
	if !c.inSlot {
		panic("nodegraph: " + op + " outside BeginSlot/EndSlot")
	}
	return c
}

// BeginSlot starts a slot of the current node. kind is a non-zero integer:
// negative for inputs, positive for outputs, and only slots with equal
// magnitude and opposite sign can be connected. The slot's visuals are laid
// out between BeginSlot and EndSlot; their bounding box becomes the slot's
// hit region. BeginSlot always returns true.
func (ui *UI) BeginSlot(title string, kind int) bool {
	c := ui.mustCanvas("BeginSlot")
	if !c.inNode {
		panic("nodegraph: BeginSlot outside BeginNode/EndNode")
	}
	if c.inSlot {
		panic("nodegraph: BeginSlot inside another slot (missing EndSlot?)")
	}
	if kind == 0 {
		panic("nodegraph: BeginSlot with kind 0 (kind sign selects the direction)")
	}
	c.slot = slotScope{title: title, kind: kind}
	c.inSlot = true
	ui.BeginGroup()
	return true
}

// BeginInputSlot starts an input slot. The sign of kind is ignored.
func (ui *UI) BeginInputSlot(title string, kind int) bool {
	return ui.BeginSlot(title, InputSlotKind(kind))
}

// BeginOutputSlot starts an output slot. The sign of kind is ignored.
func (ui *UI) BeginOutputSlot(title string, kind int) bool {
	return ui.BeginSlot(title, OutputSlotKind(kind))
}

// EndSlot finishes the current slot. It records where curves attach to the
// slot and handles dragging a new connection out of it or dropping one onto
// it.
func (ui *UI) EndSlot() {
	c := ui.mustSlot("EndSlot")
	ui.EndGroup()

	s := c.slot
	node := c.node.id
	input := IsInputSlotKind(s.kind)
	rect := ui.ItemRect()

	// Curves attach to the outer edge, vertically centred.
	anchor := Vec2{rect.Max().X, rect.Center().Y}
	if input {
		anchor.X = rect.X
	}
	// An off-screen node awaiting placement has no meaningful anchors.
	if !c.node.autoPos {
		c.setSlotAnchor(ui, node, s.title, input, anchor)
	}

	ui.PushID(s.title)
	ui.PushID(s.kind)
	id := ui.GetID(s.title)
	ui.ItemAdd(rect, id)

	if ui.IsMouseClicked(MouseButtonLeft) && ui.IsItemHovered() {
		ui.SetActiveID(id)
	}
	if ui.IsItemActive() && !ui.IsMouseDown(MouseButtonLeft) {
		ui.ClearActiveID()
	}

	if ui.BeginDragDropSource() {
		t := slotPayloadType(s.kind)
		if p, ok := ui.DragDropPayload(); !ok || p.Type != t {
			ui.SetDragDropPayload(Payload{Type: t, Node: node, Slot: s.title, Kind: s.kind})
			c.newConnection = Connection{}
			c.hasNewConnection = false
			c.ignore = c.ignore[:0]
			ui.logDebug("connection drag", "slot", s.title, "kind", s.kind)
		}
		ui.drawList.AddText(ui.MousePos().Add(Vec2{12, 12}), c.Colors[ColConnectionActive], ui.fontScale, s.title)
	}

	if ui.IsConnectingCompatibleSlot() && ui.BeginDragDropTarget() {
		if p, ok := ui.AcceptDragDropPayload(slotPayloadType(s.kind).Opposite()); ok {
			var conn Connection
			if input {
				conn = Connection{InputNode: node, InputSlot: s.title, OutputNode: p.Node, OutputSlot: p.Slot}
			} else {
				conn = Connection{InputNode: p.Node, InputSlot: p.Slot, OutputNode: node, OutputSlot: s.title}
			}
			c.newConnection = conn
			c.hasNewConnection = true
			c.justConnected = true
			c.ignore = c.ignore[:0]
			c.emit(ui, GraphEvent{Type: EventConnect, Connection: conn})
		}
	}

	ui.PopID() // kind
	ui.PopID() // title
	c.inSlot = false
	c.slot = slotScope{}
}

// IsSlotCurveHovered reports whether a curve attached to the current slot is
// hovered. While a connection is being dragged, only the slot it was dragged
// from counts as hovered. Hover state of finished curves lags one frame
// because curves are drawn after the slots they attach to.
func (ui *UI) IsSlotCurveHovered() bool {
	c := ui.mustSlot("IsSlotCurveHovered")
	if p, ok := ui.DragDropPayload(); ok {
		return p.Node == c.node.id && p.Slot == c.slot.title && p.Kind == c.slot.kind
	}
	return c.slotHovered(ui, c.node.id, c.slot.title, IsInputSlotKind(c.slot.kind))
}

// IsConnectingCompatibleSlot reports whether a connection is being dragged
// that the current slot would accept: the opposite direction, the same kind
// magnitude, from another node, and not already connected to this slot.
func (ui *UI) IsConnectingCompatibleSlot() bool {
	c := ui.mustSlot("IsConnectingCompatibleSlot")
	p, ok := ui.DragDropPayload()
	if !ok {
		return false
	}
	if p.Node == c.node.id {
		return false
	}
	if p.Type != slotPayloadType(c.slot.kind).Opposite() {
		return false
	}
	input := IsInputSlotKind(c.slot.kind)
	for _, ig := range c.ignore {
		if ig.node == c.node.id && ig.slot == c.slot.title && ig.input == input {
			return false
		}
	}
	return true
}
