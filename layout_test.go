package nodegraph

import "testing"

func TestLayoutVertical(t *testing.T) {
	ui := NewUI()
	ui.NewFrame(Input{Viewport: Rect{X: 0, Y: 0, Width: 400, Height: 300}})
	ui.SetCursorScreenPos(Vec2{10, 10})

	ui.Dummy(Vec2{20, 10})
	if r := ui.ItemRect(); r != (Rect{X: 10, Y: 10, Width: 20, Height: 10}) {
		t.Errorf("first item = %+v", r)
	}
	ui.Dummy(Vec2{5, 5})
	// Default item spacing is (8, 4). New lines start at the indent, which
	// moving the cursor does not change.
	if r := ui.ItemRect(); r.X != 0 || r.Y != 24 {
		t.Errorf("second item at (%v,%v), want (0,24)", r.X, r.Y)
	}
}

func TestLayoutSameLine(t *testing.T) {
	ui := NewUI()
	ui.NewFrame(Input{})
	ui.SetCursorScreenPos(Vec2{0, 0})

	ui.Dummy(Vec2{20, 10})
	ui.SameLine()
	ui.Dummy(Vec2{5, 30})
	if r := ui.ItemRect(); r.X != 28 || r.Y != 0 {
		t.Errorf("same-line item at (%v,%v), want (28,0)", r.X, r.Y)
	}
	ui.Dummy(Vec2{5, 5})
	// The next line starts below the tallest item of the previous line.
	if r := ui.ItemRect(); r.X != 0 || r.Y != 34 {
		t.Errorf("next line at (%v,%v), want (0,34)", r.X, r.Y)
	}
}

func TestLayoutGroupBounds(t *testing.T) {
	ui := NewUI()
	ui.NewFrame(Input{})
	ui.SetCursorScreenPos(Vec2{100, 100})

	ui.BeginGroup()
	ui.Dummy(Vec2{30, 10})
	ui.Dummy(Vec2{10, 10})
	ui.EndGroup()

	want := Rect{X: 100, Y: 100, Width: 30, Height: 24}
	if r := ui.ItemRect(); r != want {
		t.Errorf("group rect = %+v, want %+v", r, want)
	}

	// Groups side by side form columns.
	ui.SetCursorScreenPos(Vec2{0, 0})
	ui.BeginGroup()
	ui.Dummy(Vec2{10, 50})
	ui.EndGroup()
	ui.SameLine()
	ui.BeginGroup()
	ui.Dummy(Vec2{10, 10})
	ui.EndGroup()
	if r := ui.ItemRect(); r.X != 18 || r.Y != 0 {
		t.Errorf("second column at (%v,%v), want (18,0)", r.X, r.Y)
	}
	ui.EndFrame()
}

func TestShrinkExtent(t *testing.T) {
	ui := NewUI()
	ui.NewFrame(Input{})
	ui.SetCursorScreenPos(Vec2{100, 100})

	ui.BeginGroup()
	ui.SetCursorScreenPos(Vec2{110, 100})
	ui.Dummy(Vec2{30, 10}) // overhangs the group by 10
	ui.ShrinkExtent(10)
	ui.EndGroup()

	want := Rect{X: 100, Y: 100, Width: 30, Height: 10}
	if r := ui.ItemRect(); r != want {
		t.Errorf("group rect = %+v, want %+v", r, want)
	}
	ui.EndFrame()
}

func TestLayoutFontScaleSpacing(t *testing.T) {
	ui := NewUI()
	ui.NewFrame(Input{})
	ui.SetFontScale(2)
	ui.SetCursorScreenPos(Vec2{0, 0})
	ui.Dummy(Vec2{10, 10})
	ui.Dummy(Vec2{10, 10})
	if r := ui.ItemRect(); r.Y != 18 {
		t.Errorf("second item y = %v, want 18 (spacing scales with the font)", r.Y)
	}
	if s := ui.CalcTextSize("abc"); s != (Vec2{42, 26}) {
		t.Errorf("CalcTextSize = %v, want (42,26)", s)
	}
}

func TestEndGroupUnderflowPanics(t *testing.T) {
	ui := NewUI()
	ui.NewFrame(Input{})
	expectPanic(t, "EndGroup", func() { ui.EndGroup() })
}

func TestEndFrameUnbalancedPanics(t *testing.T) {
	ui := NewUI()
	ui.NewFrame(Input{})
	ui.BeginGroup()
	expectPanic(t, "open group", func() { ui.EndFrame() })

	ui = NewUI()
	ui.NewFrame(Input{})
	ui.PushID("x")
	expectPanic(t, "open id scope", func() { ui.EndFrame() })
}

func TestItemHoverAndActive(t *testing.T) {
	ui := NewUI()
	ui.NewFrame(hover(15, 15))
	ui.ItemAdd(Rect{X: 10, Y: 10, Width: 10, Height: 10}, ui.GetID("a"))
	if !ui.IsItemHovered() {
		t.Error("item under the cursor should be hovered")
	}
	ui.SetActiveID(ui.GetID("other"))
	if ui.IsItemHovered() {
		t.Error("another active item blocks hover")
	}
	ui.EndFrame()

	// The active item is dropped when it is not submitted for a frame.
	ui.NewFrame(hover(15, 15))
	ui.EndFrame()
	ui.NewFrame(hover(15, 15))
	if ui.IsAnyItemActive() {
		t.Error("active item should be released once it disappears")
	}
}
