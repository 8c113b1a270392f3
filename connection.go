package nodegraph

// Connection links an output slot to an input slot. Node fields hold the
// host's node handles. Connections are comparable with ==.
type Connection struct {
	InputNode  any
	InputSlot  string
	OutputNode any
	OutputSlot string
}

// PendingConnection describes a connection being dragged that has only one
// end attached.
type PendingConnection struct {
	Node any
	Slot string
	Kind int
}

// Connection draws a connection between two slots. It returns false when the
// user double-clicked the curve, meaning the host should delete the
// connection; the same connection is also available once from
// GetDeleteConnection.
//
// Slot positions are only known for the frame they were rendered in. A
// connection submitted before one of its nodes is drawn by EndCanvas once
// both nodes were rendered; a double-click on such a curve is reported by
// the next call to Connection for it. Connections touching a node that waits
// for auto-positioning, or a node not rendered this frame, are not drawn and
// report true.
func (ui *UI) Connection(conn Connection) bool {
	c := ui.mustCanvas("Connection")
	if conn.InputNode == nil || conn.OutputNode == nil {
		panic("nodegraph: Connection with nil node")
	}
	if c.pendingPlacement(ui, conn.InputNode) || c.pendingPlacement(ui, conn.OutputNode) {
		return true
	}
	if c.hasLateDel && c.lateDel == conn {
		c.hasLateDel = false
		return false
	}

	in, okIn := c.slotAnchor(ui, conn.InputNode, conn.InputSlot, true)
	out, okOut := c.slotAnchor(ui, conn.OutputNode, conn.OutputSlot, false)
	if !okIn || !okOut {
		c.late = append(c.late, conn)
		return true
	}
	return c.drawConnection(ui, conn, in, out)
}

// drawConnection renders conn between the given anchors and handles hover
// and deletion. It reports false when the curve was double-clicked.
func (c *CanvasState) drawConnection(ui *UI, conn Connection, in, out Vec2) bool {
	indent := c.Style.ConnectionIndent * c.Zoom
	in.X += indent
	out.X -= indent

	hovered := c.renderConnection(ui, in, out)
	connected := true
	if hovered && ui.IsWindowHovered() && ui.IsMouseDoubleClicked(MouseButtonLeft) {
		connected = false
		c.delConnection = conn
		c.hasDelConnection = true
		c.emit(ui, GraphEvent{Type: EventDisconnect, Connection: conn})
	}
	if hovered && connected {
		c.setSlotHovered(ui, conn.InputNode, conn.InputSlot, true)
		c.setSlotHovered(ui, conn.OutputNode, conn.OutputSlot, false)
	}

	// A slot already connected to the end being dragged must not accept the
	// drag a second time.
	if p, ok := ui.DragDropPayload(); ok {
		var ig ignoreSlot
		found := false
		if IsInputSlotKind(p.Kind) {
			if p.Node == conn.InputNode && p.Slot == conn.InputSlot {
				ig, found = ignoreSlot{node: conn.OutputNode, slot: conn.OutputSlot, input: false}, true
			}
		} else if p.Node == conn.OutputNode && p.Slot == conn.OutputSlot {
			ig, found = ignoreSlot{node: conn.InputNode, slot: conn.InputSlot, input: true}, true
		}
		if found && !c.ignored(ig) {
			c.ignore = append(c.ignore, ig)
		}
	}

	return connected
}

// drawLateConnections draws the connections submitted before their nodes.
// Those whose slots were still not rendered are dropped for this frame.
func (c *CanvasState) drawLateConnections(ui *UI) {
	if c.hasLateDel && c.lateDelFrame < ui.frame {
		c.hasLateDel = false
	}
	for _, conn := range c.late {
		in, okIn := c.slotAnchor(ui, conn.InputNode, conn.InputSlot, true)
		out, okOut := c.slotAnchor(ui, conn.OutputNode, conn.OutputSlot, false)
		if !okIn || !okOut {
			continue
		}
		if !c.drawConnection(ui, conn, in, out) {
			c.lateDel = conn
			c.hasLateDel = true
			c.lateDelFrame = ui.frame
		}
	}
	clear(c.late)
	c.late = c.late[:0]
}

func (c *CanvasState) ignored(ig ignoreSlot) bool {
	for _, x := range c.ignore {
		if x == ig {
			return true
		}
	}
	return false
}

// renderConnection draws the curve between two anchors and reports whether
// the cursor is on it.
func (c *CanvasState) renderConnection(ui *UI, input, output Vec2) bool {
	curve := connectionCurve(input, output, c.Style.CurveStrength, c.Zoom)
	hovered := curveHovered(curve, ui.MousePos(), c.Style.CurveThickness, c.Zoom)
	col := c.Colors[ColConnection]
	if hovered {
		col = c.Colors[ColConnectionActive]
	}
	// Inside a node, curves go under the node body with its frame.
	dl := &ui.drawList
	if ch := dl.Channel(); ch > 0 {
		dl.SetChannel(0)
		defer dl.SetChannel(ch)
	}
	dl.AddBezier(curve, col, c.Style.CurveThickness*c.Zoom)
	return hovered
}

// drawPendingConnection draws the curve from the slot a connection is being
// dragged out of to the cursor.
func (c *CanvasState) drawPendingConnection(ui *UI) {
	p, ok := ui.DragDropPayload()
	if !ok {
		return
	}
	input := IsInputSlotKind(p.Kind)
	anchor, ok := c.slotAnchor(ui, p.Node, p.Slot, input)
	if !ok {
		return
	}
	indent := c.Style.ConnectionIndent * c.Zoom
	mouse := ui.MousePos()
	if input {
		anchor.X += indent
		c.renderConnection(ui, anchor, mouse)
	} else {
		anchor.X -= indent
		c.renderConnection(ui, mouse, anchor)
	}
}

// GetNewConnection returns the connection completed by a drag, once. The
// host should add it to its graph. Completing a drag onto a slot that is
// already connected to the dragged end reports nothing.
func (ui *UI) GetNewConnection() (Connection, bool) {
	c := ui.mustCanvas("GetNewConnection")
	if !c.hasNewConnection {
		return Connection{}, false
	}
	conn := c.newConnection
	c.newConnection = Connection{}
	c.hasNewConnection = false
	return conn, true
}

// GetDeleteConnection returns the connection most recently double-clicked
// for deletion, once.
func (ui *UI) GetDeleteConnection() (Connection, bool) {
	c := ui.mustCanvas("GetDeleteConnection")
	if !c.hasDelConnection {
		return Connection{}, false
	}
	conn := c.delConnection
	c.delConnection = Connection{}
	c.hasDelConnection = false
	return conn, true
}

// GetPendingConnection returns the end of the connection being dragged, if
// any.
func (ui *UI) GetPendingConnection() (PendingConnection, bool) {
	ui.mustCanvas("GetPendingConnection")
	p, ok := ui.DragDropPayload()
	if !ok {
		return PendingConnection{}, false
	}
	return PendingConnection{Node: p.Node, Slot: p.Slot, Kind: p.Kind}, true
}
