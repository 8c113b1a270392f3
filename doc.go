// Package nodegraph is an immediate-mode node-graph editor widget.
//
// Every frame the host describes its nodes, their slots and the connections
// between them; nodegraph draws a pannable, zoomable canvas, lets the user
// drag nodes, box-select, and drag new connections between slots, and
// reports connections made or deleted back to the host. The host owns all
// graph data: node handles, positions, selection flags and the list of
// connections.
//
// # Quick start
//
// A [UI] carries input, layout and drawing state. A [CanvasState] carries
// pan, zoom and the interaction state machine and lives as long as the
// editor:
//
//	ui := nodegraph.NewUI()
//	canvas := nodegraph.NewCanvasState()
//
//	// every frame
//	ui.NewFrame(input)
//	ui.BeginCanvas(canvas)
//	for _, n := range nodes {
//		if ui.BeginNode(n, &n.Pos, &n.Selected) {
//			ui.Text(n.Title)
//			ui.BeginOutputSlot("Out", 1)
//			ui.Text("Out")
//			ui.EndSlot()
//			for _, c := range n.Connections {
//				if !ui.Connection(c) {
//					n.Remove(c)
//				}
//			}
//			if c, ok := ui.GetNewConnection(); ok {
//				n.Add(c)
//			}
//			ui.EndNode()
//		}
//	}
//	ui.EndCanvas()
//	drawList := ui.EndFrame()
//
// The recorded [DrawList] is backend-neutral. The ebitenui package renders
// it with [Ebitengine] and polls Ebitengine input into an [Input]; the ez
// package provides titled nodes with input and output slot columns.
//
// # Slots and kinds
//
// A slot kind is a non-zero integer. Negative kinds are inputs, positive
// kinds outputs, and slots connect only when their kinds have equal
// magnitude and opposite sign. [UI.BeginInputSlot] and [UI.BeginOutputSlot] fix
// the sign for you. A reported [Connection] always names the input end as
// Input, whichever end the user dragged from.
//
// # Interaction
//
//   - Click a node to select it exclusively; ctrl+click toggles it.
//   - Drag a node to move it, or every selected node when it is selected.
//   - Drag on empty canvas to box-select. Shift adds to the selection and
//     ctrl removes from it. Only nodes wholly inside the box are affected.
//   - Drag with [CanvasState.PanButton] (middle by default) or use the wheel
//     to pan; shift+wheel pans horizontally and ctrl+wheel zooms around the
//     cursor within [MinZoom, MaxZoom].
//   - Double-click a curve to delete its connection.
//
// # Events
//
// Besides the polling API, a [CanvasState] can forward changes to an
// [EventSink]. The nodegraph/ecs module publishes them into a [Donburi]
// world.
//
// # Testing
//
// Input can be injected without a window with [UI.InjectClick],
// [UI.InjectDrag] and friends, or scripted with [LoadInputScript]. Both
// drive exactly the same code path as real input.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package nodegraph
