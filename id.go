package nodegraph

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ID identifies an interactive item or a cached value. IDs are derived by
// hashing a value together with the ID of the enclosing scope, so the same
// label used inside two different nodes yields two different IDs.
type ID uint64

// hashID mixes seed and a value into a new ID.
//
// Strings and integers hash by value. Any other handle (typically a pointer
// to a host-owned node) must be comparable; it is mapped to a stable sequence
// number on first sight and that number is hashed instead.
func (ui *UI) hashID(seed ID, v any) ID {
	d := xxhash.New()
	var buf [9]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(seed))
	switch x := v.(type) {
	case string:
		buf[8] = 's'
		_, _ = d.Write(buf[:])
		_, _ = d.WriteString(x)
	case int:
		buf[8] = 'i'
		_, _ = d.Write(buf[:])
		_, _ = d.Write(binary.LittleEndian.AppendUint64(nil, uint64(x)))
	case ID:
		buf[8] = 'd'
		_, _ = d.Write(buf[:])
		_, _ = d.Write(binary.LittleEndian.AppendUint64(nil, uint64(x)))
	default:
		buf[8] = 'h'
		_, _ = d.Write(buf[:])
		_, _ = d.Write(binary.LittleEndian.AppendUint64(nil, ui.handleSeq(v)))
	}
	return ID(d.Sum64())
}

// handleSeq returns the sequence number assigned to a handle.
func (ui *UI) handleSeq(v any) uint64 {
	defer func() {
		if r := recover(); r != nil {
			panic(fmt.Sprintf("nodegraph: handle of type %T is not comparable", v))
		}
	}()
	if seq, ok := ui.handles[v]; ok {
		return seq
	}
	ui.nextHandle++
	ui.handles[v] = ui.nextHandle
	return ui.nextHandle
}

// ForgetHandle drops the sequence number assigned to a node handle. Call it
// when a host-owned node is destroyed so the handle table does not grow
// without bound. Forgetting a live handle only changes its future IDs.
func (ui *UI) ForgetHandle(v any) {
	delete(ui.handles, v)
}

// --- ID stack ---

// PushID opens a new identity scope derived from v.
func (ui *UI) PushID(v any) {
	ui.idStack = append(ui.idStack, ui.GetID(v))
}

// PopID closes the innermost identity scope.
func (ui *UI) PopID() {
	if len(ui.idStack) <= 1 {
		panic("nodegraph: PopID without matching PushID")
	}
	ui.idStack = ui.idStack[:len(ui.idStack)-1]
}

// GetID returns the ID of v within the current scope without pushing it.
func (ui *UI) GetID(v any) ID {
	return ui.hashID(ui.idStack[len(ui.idStack)-1], v)
}

// slotID is the structural key of a slot: the owning node handle, the slot
// title and its direction. Input and output slots sharing a title get
// distinct keys. The key does not depend on the ID stack so connections can
// look up slots of any node.
func (ui *UI) slotID(node any, title string, input bool) ID {
	dir := "out"
	if input {
		dir = "in"
	}
	return ui.hashID(ui.hashID(ui.hashID(0, node), title), dir)
}
