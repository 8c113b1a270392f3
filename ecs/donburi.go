// Package ecs provides ECS adapters for nodegraph.
package ecs

import (
	"github.com/phanxgames/nodegraph"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GraphEventType is the Donburi event type for nodegraph graph events.
// Subscribe to this in your ECS systems to receive connection, move and
// selection changes.
var GraphEventType = events.NewEventType[nodegraph.GraphEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Graph
// events are published to GraphEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) nodegraph.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event nodegraph.GraphEvent) {
	GraphEventType.Publish(s.world, event)
}
