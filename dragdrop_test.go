package nodegraph

import "testing"

func TestPayloadTypeOpposite(t *testing.T) {
	out := slotPayloadType(2)
	in := slotPayloadType(-2)
	if out.Input || !in.Input {
		t.Errorf("directions = %+v, %+v", out, in)
	}
	if out.Opposite() != in || in.Opposite() != out {
		t.Error("opposite of an output kind is the input of the same magnitude")
	}
	if slotPayloadType(1).Opposite() == slotPayloadType(-2) {
		t.Error("different magnitudes must not match")
	}
}

// dragFrame submits a source item at (0,0)-(10,10) and a target item at
// (100,0)-(110,10) and returns what the target received.
func dragFrame(ui *UI, in Input) (Payload, bool) {
	ui.NewFrame(in)
	src := ui.GetID("src")
	ui.ItemAdd(Rect{X: 0, Y: 0, Width: 10, Height: 10}, src)
	if ui.IsMouseClicked(MouseButtonLeft) && ui.IsItemHovered() {
		ui.SetActiveID(src)
	}
	if ui.BeginDragDropSource() {
		if _, ok := ui.DragDropPayload(); !ok {
			ui.SetDragDropPayload(Payload{Type: PayloadType{Class: 1}, Slot: "src"})
		}
	}
	if ui.IsItemActive() && !ui.IsMouseDown(MouseButtonLeft) {
		ui.ClearActiveID()
	}

	ui.ItemAdd(Rect{X: 100, Y: 0, Width: 10, Height: 10}, ui.GetID("dst"))
	var p Payload
	var ok bool
	if ui.BeginDragDropTarget() {
		p, ok = ui.AcceptDragDropPayload(PayloadType{Class: 1})
	}
	ui.EndFrame()
	return p, ok
}

func TestDragDropDelivery(t *testing.T) {
	ui := NewUI()
	dragFrame(ui, press(5, 5))
	dragFrame(ui, press(50, 5))
	if _, ok := ui.DragDropPayload(); !ok {
		t.Fatal("payload should be published once the drag starts")
	}
	if _, ok := dragFrame(ui, press(105, 5)); ok {
		t.Error("payload delivered before release")
	}
	p, ok := dragFrame(ui, hover(105, 5))
	if !ok || p.Slot != "src" {
		t.Fatalf("Accept = %+v, %v; want the src payload", p, ok)
	}
	dragFrame(ui, hover(105, 5))
	if _, ok := ui.DragDropPayload(); ok {
		t.Error("payload should be dropped the frame after release")
	}
}

func TestDragDropWrongType(t *testing.T) {
	ui := NewUI()
	dragFrame(ui, press(5, 5))
	dragFrame(ui, press(50, 5))
	ui.dragDrop.payload.Type = PayloadType{Class: 2}
	if _, ok := dragFrame(ui, hover(105, 5)); ok {
		t.Error("a payload of another type must not be accepted")
	}
}

func TestDragDropReleaseElsewhere(t *testing.T) {
	ui := NewUI()
	dragFrame(ui, press(5, 5))
	dragFrame(ui, press(50, 5))
	if _, ok := dragFrame(ui, hover(50, 50)); ok {
		t.Error("release outside the target delivered the payload")
	}
	if _, ok := dragFrame(ui, press(105, 5)); ok {
		t.Error("an abandoned payload must not be delivered later")
	}
}
