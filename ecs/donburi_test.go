package ecs

import (
	"testing"

	"github.com/phanxgames/nodegraph"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []nodegraph.GraphEvent
	GraphEventType.Subscribe(world, func(w donburi.World, e nodegraph.GraphEvent) {
		received = append(received, e)
	})

	conn := nodegraph.Connection{InputNode: "b", InputSlot: "In", OutputNode: "a", OutputSlot: "Out"}
	sink.EmitEvent(nodegraph.GraphEvent{Type: nodegraph.EventConnect, Connection: conn})
	sink.EmitEvent(nodegraph.GraphEvent{
		Type:     nodegraph.EventNodeMoved,
		Node:     "a",
		Position: nodegraph.Vec2{X: 10, Y: 20},
	})

	// Events are queued; process them.
	GraphEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != nodegraph.EventConnect || e.Connection != conn {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != nodegraph.EventNodeMoved || e.Position != (nodegraph.Vec2{X: 10, Y: 20}) {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiSink_NoSubscriber(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	// Should not panic with no subscribers.
	sink.EmitEvent(nodegraph.GraphEvent{Type: nodegraph.EventDisconnect})
	GraphEventType.ProcessEvents(world)
}

// TestDonburiSink_Canvas drives a real connection drag through a canvas
// wired to the sink.
func TestDonburiSink_Canvas(t *testing.T) {
	world := donburi.NewWorld()
	var received []nodegraph.GraphEvent
	GraphEventType.Subscribe(world, func(w donburi.World, e nodegraph.GraphEvent) {
		received = append(received, e)
	})

	ui := nodegraph.NewUI()
	ui.SetViewport(nodegraph.Rect{Width: 800, Height: 600})
	canvas := nodegraph.NewCanvasState()
	canvas.SetEventSink(NewDonburiSink(world))

	type node struct {
		pos      nodegraph.Vec2
		selected bool
		slot     string
		kind     int
	}
	nodes := []*node{
		{pos: nodegraph.Vec2{X: 100, Y: 100}, slot: "Out", kind: 1},
		{pos: nodegraph.Vec2{X: 300, Y: 100}, slot: "In", kind: -1},
	}
	frame := func() {
		ui.NewFrame(nodegraph.Input{})
		ui.BeginCanvas(canvas)
		for _, n := range nodes {
			ui.BeginNode(n, &n.pos, &n.selected)
			ui.BeginSlot(n.slot, n.kind)
			ui.Dummy(nodegraph.Vec2{X: 10, Y: 10})
			ui.EndSlot()
			ui.EndNode()
		}
		ui.EndCanvas()
		ui.EndFrame()
	}

	frame()
	ui.InjectDrag(109, 109, 309, 109, 10)
	for ui.PendingInjected() > 0 {
		frame()
	}
	GraphEventType.ProcessEvents(world)

	if len(received) != 1 || received[0].Type != nodegraph.EventConnect {
		t.Fatalf("received = %+v, want one connect event", received)
	}
	if c := received[0].Connection; c.InputNode != nodes[1] || c.OutputNode != nodes[0] {
		t.Errorf("connection = %+v", c)
	}
}
