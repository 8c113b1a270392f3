package nodegraph

// EventType identifies the kind of graph event.
type EventType uint8

const (
	EventConnect          EventType = iota // a drag between two slots completed
	EventDisconnect                        // a connection was double-clicked for deletion
	EventNodeMoved                         // a node drag ended
	EventSelectionChanged                  // a node's selection flag changed
)

var eventTypeNames = [...]string{
	EventConnect:          "connect",
	EventDisconnect:       "disconnect",
	EventNodeMoved:        "node-moved",
	EventSelectionChanged: "selection-changed",
}

// String returns a short name for the event type.
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// EventSink receives graph events. When set on a CanvasState, every change
// the editor makes to host-owned data is also reported here. The polling
// API (GetNewConnection, the Connection return value, the node position and
// selection pointers) keeps working regardless.
type EventSink interface {
	EmitEvent(event GraphEvent)
}

// GraphEvent carries one graph change for an EventSink.
type GraphEvent struct {
	Type EventType
	// Connection is valid for EventConnect and EventDisconnect.
	Connection Connection
	// Node is the node handle for EventNodeMoved and EventSelectionChanged.
	Node any
	// Position is the node position after a move.
	Position Vec2
	// Selected is the new selection flag for EventSelectionChanged.
	Selected bool
}

// EventSinkFunc adapts a function to the EventSink interface.
type EventSinkFunc func(GraphEvent)

// EmitEvent calls f(event).
func (f EventSinkFunc) EmitEvent(event GraphEvent) { f(event) }

// SetEventSink sets the optional event sink. Pass nil to disable.
func (c *CanvasState) SetEventSink(sink EventSink) {
	c.sink = sink
}

func (c *CanvasState) emit(ui *UI, event GraphEvent) {
	ui.logEvent(event)
	if c.sink != nil {
		c.sink.EmitEvent(event)
	}
}
