package nodegraph

// groupState is saved by BeginGroup and restored by EndGroup.
type groupState struct {
	start      Vec2
	cursorMax  Vec2
	indentX    float64
	lineHeight float64
}

// layoutState is the layout cursor. Items are placed top to bottom starting
// at the cursor; SameLine places the next item to the right of the previous
// one instead.
type layoutState struct {
	cursor         Vec2
	cursorMax      Vec2 // bottom-right of everything laid out in the current group
	indentX        float64
	lineHeight     float64 // height of the current line so far, set by SameLine
	prevLineEnd    Vec2    // right edge and top of the last item
	prevLineHeight float64
	groups         []groupState
}

func (l *layoutState) reset(origin Vec2) {
	l.cursor = origin
	l.cursorMax = origin
	l.indentX = origin.X
	l.lineHeight = 0
	l.prevLineEnd = origin
	l.prevLineHeight = 0
	l.groups = l.groups[:0]
}

func (ui *UI) itemSpacing() Vec2 {
	return ui.Style.ItemSpacing.Scale(ui.fontScale)
}

// CursorScreenPos returns where the next item will be placed.
func (ui *UI) CursorScreenPos() Vec2 { return ui.layout.cursor }

// SetCursorScreenPos moves the layout cursor. Used for manual multi-column
// layout.
func (ui *UI) SetCursorScreenPos(p Vec2) {
	ui.layout.cursor = p
	ui.layout.cursorMax = ui.layout.cursorMax.Max(p)
	ui.layout.lineHeight = 0
}

// ItemSize advances the cursor past an item of the given size.
func (ui *UI) ItemSize(size Vec2) {
	l := &ui.layout
	h := l.lineHeight
	if size.Y > h {
		h = size.Y
	}
	l.cursorMax = l.cursorMax.Max(l.cursor.Add(size))
	l.prevLineEnd = Vec2{l.cursor.X + size.X, l.cursor.Y}
	l.prevLineHeight = h
	l.cursor = Vec2{l.indentX, l.cursor.Y + h + ui.itemSpacing().Y}
	l.lineHeight = 0
}

// ShrinkExtent pulls the right edge of the current group's extent in by dx
// (negative dx pushes it out). Widgets that overhang a container edge on
// purpose call it after laying out so the overhang does not widen the
// container.
func (ui *UI) ShrinkExtent(dx float64) {
	ui.layout.cursorMax.X -= dx
}

// SameLine places the next item to the right of the previous one.
func (ui *UI) SameLine() {
	l := &ui.layout
	l.cursor = Vec2{l.prevLineEnd.X + ui.itemSpacing().X, l.prevLineEnd.Y}
	l.lineHeight = l.prevLineHeight
}

// BeginGroup starts measuring everything laid out until the matching
// EndGroup.
func (ui *UI) BeginGroup() {
	l := &ui.layout
	l.groups = append(l.groups, groupState{
		start:      l.cursor,
		cursorMax:  l.cursorMax,
		indentX:    l.indentX,
		lineHeight: l.lineHeight,
	})
	l.indentX = l.cursor.X
	l.cursorMax = l.cursor
	l.lineHeight = 0
}

// EndGroup closes a group. The group's bounding box becomes the last item
// and the cursor moves past it like any other item.
func (ui *UI) EndGroup() {
	l := &ui.layout
	if len(l.groups) == 0 {
		panic("nodegraph: EndGroup without matching BeginGroup")
	}
	g := l.groups[len(l.groups)-1]
	l.groups = l.groups[:len(l.groups)-1]

	max := l.cursorMax.Max(g.start)
	r := RectFromPoints(g.start, max)

	l.indentX = g.indentX
	l.cursorMax = g.cursorMax
	l.cursor = g.start
	l.lineHeight = g.lineHeight
	ui.ItemSize(r.Size())
	ui.ItemAdd(r, 0)
}

// --- Basic widgets ---

// Text lays out a line of text in the UI text color.
func (ui *UI) Text(s string) {
	ui.TextColored(ui.Style.TextColor, s)
}

// TextColored lays out a line of text in the given color.
func (ui *UI) TextColored(c Color, s string) {
	pos := ui.layout.cursor
	size := ui.CalcTextSize(s)
	ui.drawList.AddText(pos, c, ui.fontScale, s)
	ui.ItemSize(size)
	ui.ItemAdd(Rect{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y}, 0)
}

// Dummy reserves an empty area of the given size.
func (ui *UI) Dummy(size Vec2) {
	pos := ui.layout.cursor
	ui.ItemSize(size)
	ui.ItemAdd(Rect{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y}, 0)
}
