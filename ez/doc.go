// Package ez renders ready-made nodes on a nodegraph canvas: a centred
// title above three columns holding input slots, custom content and output
// slots. Slots are drawn as circles on the node border, highlighted while a
// curve attached to them is hovered or a compatible connection is dragged.
//
//	if ez.BeginNode(ui, n, n.Title, &n.Pos, &n.Selected) {
//		ez.InputSlots(ui, ez.SlotInfo{Title: "A", Kind: 1}, ez.SlotInfo{Title: "B", Kind: 1})
//		ui.Text("content")
//		ez.OutputSlots(ui, ez.SlotInfo{Title: "Sum", Kind: 1})
//		ez.EndNode(ui)
//	}
//
// The calls must come in exactly that order; misuse panics. For custom node
// visuals use nodegraph.UI.BeginNode and BeginSlot directly.
package ez
