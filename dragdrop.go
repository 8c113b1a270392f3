package nodegraph

// PayloadType tags a drag payload so drop targets can filter by
// compatibility. Slot payloads carry the dragged slot's direction and kind
// magnitude.
type PayloadType struct {
	Input bool
	Class int
}

// slotPayloadType returns the payload type published by a slot of kind.
func slotPayloadType(kind int) PayloadType {
	return PayloadType{Input: IsInputSlotKind(kind), Class: OutputSlotKind(kind)}
}

// Opposite returns the type a compatible slot on the other side publishes.
func (t PayloadType) Opposite() PayloadType {
	return PayloadType{Input: !t.Input, Class: t.Class}
}

// Payload is the data carried by a drag in progress.
type Payload struct {
	Type PayloadType
	Node any
	Slot string
	Kind int
}

type dragDropState struct {
	payload   Payload
	active    bool
	ending    bool // button is up; dropped at the next frame
	sourceID  ID
	delivered bool
}

// newFrame drops a payload once the frame in which the button was released
// has passed.
func (d *dragDropState) newFrame(ui *UI) {
	if !d.active {
		return
	}
	if d.ending {
		*d = dragDropState{}
		return
	}
	if !ui.mouse.buttons[MouseButtonLeft].down {
		d.ending = true
	}
}

// BeginDragDropSource reports whether the last item is being dragged and may
// publish a payload with SetDragDropPayload.
func (ui *UI) BeginDragDropSource() bool {
	return ui.lastItemID != 0 && ui.IsItemActive() && ui.IsMouseDragging(MouseButtonLeft)
}

// SetDragDropPayload publishes p as the payload of the drag started by the
// last item.
func (ui *UI) SetDragDropPayload(p Payload) {
	ui.dragDrop.payload = p
	ui.dragDrop.active = true
	ui.dragDrop.sourceID = ui.lastItemID
	ui.dragDrop.delivered = false
	ui.dragDrop.ending = false
}

// DragDropPayload returns the payload of the drag in progress. It stays
// available through the frame in which the button is released.
func (ui *UI) DragDropPayload() (Payload, bool) {
	if !ui.dragDrop.active {
		return Payload{}, false
	}
	return ui.dragDrop.payload, true
}

// BeginDragDropTarget reports whether a payload is being dragged over the
// last item. The item that started the drag is never its own target.
func (ui *UI) BeginDragDropTarget() bool {
	if !ui.dragDrop.active || ui.lastItemID == 0 || ui.lastItemID == ui.dragDrop.sourceID {
		return false
	}
	return ui.isItemRectHovered()
}

// AcceptDragDropPayload returns the payload when it has type t and the
// button was released over the target this frame. A payload is delivered at
// most once.
func (ui *UI) AcceptDragDropPayload(t PayloadType) (Payload, bool) {
	d := &ui.dragDrop
	if !d.active || d.delivered || d.payload.Type != t {
		return Payload{}, false
	}
	if !ui.IsMouseReleased(MouseButtonLeft) {
		return Payload{}, false
	}
	d.delivered = true
	return d.payload, true
}
