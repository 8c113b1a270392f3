package nodegraph

import (
	"testing"

	"github.com/tanema/gween/ease"
)

// canvasFrame runs one frame with an empty canvas.
func canvasFrame(ui *UI, c *CanvasState, in Input) *DrawList {
	ui.NewFrame(in)
	ui.BeginCanvas(c)
	ui.EndCanvas()
	return ui.EndFrame()
}

func newCanvasUI(vp Rect) (*UI, *CanvasState) {
	ui := NewUI()
	ui.SetViewport(vp)
	return ui, NewCanvasState()
}

func TestCanvasCoordinateRoundTrip(t *testing.T) {
	ui, c := newCanvasUI(Rect{X: 50, Y: 20, Width: 800, Height: 600})
	c.Zoom = 2
	c.Offset = Vec2{10, -30}
	canvasFrame(ui, c, Input{})

	p := Vec2{100, 40}
	s := c.CanvasToScreen(p)
	if s != (Vec2{50 + 10 + 200, 20 - 30 + 80}) {
		t.Errorf("CanvasToScreen = %v", s)
	}
	if back := c.ScreenToCanvas(s); !approxEqual(back.X, p.X, epsilon) || !approxEqual(back.Y, p.Y, epsilon) {
		t.Errorf("ScreenToCanvas = %v, want %v", back, p)
	}
}

func TestCanvasZoomBounds(t *testing.T) {
	tests := []struct {
		name  string
		wheel float64
		want  float64
	}{
		{"zoom in", 1, MaxZoom},
		{"zoom out", -1, MinZoom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, c := newCanvasUI(Rect{Width: 800, Height: 600})
			for i := 0; i < 100; i++ {
				canvasFrame(ui, c, Input{CursorX: 400, CursorY: 300, WheelY: tt.wheel, Modifiers: ModCtrl})
				if c.Zoom < MinZoom || c.Zoom > MaxZoom {
					t.Fatalf("step %d: zoom %v out of range", i, c.Zoom)
				}
			}
			if !approxEqual(c.Zoom, tt.want, epsilon) {
				t.Errorf("zoom = %v, want %v", c.Zoom, tt.want)
			}
		})
	}
}

func TestCanvasClampsHostZoom(t *testing.T) {
	tests := []struct {
		zoom, want float64
	}{
		{10, MaxZoom},
		{0.01, MinZoom},
		{0, MinZoom},
		{1.5, 1.5},
	}
	for _, tt := range tests {
		ui, c := newCanvasUI(Rect{Width: 800, Height: 600})
		c.Zoom = tt.zoom
		canvasFrame(ui, c, Input{})
		if c.Zoom != tt.want {
			t.Errorf("zoom %v: got %v after a frame, want %v", tt.zoom, c.Zoom, tt.want)
		}
	}
}

func TestCanvasZoomKeepsCursorAnchored(t *testing.T) {
	ui, c := newCanvasUI(Rect{X: 100, Y: 50, Width: 800, Height: 600})
	c.Offset = Vec2{30, -20}
	canvasFrame(ui, c, Input{CursorX: 500, CursorY: 400})

	cursor := Vec2{500, 400}
	before := c.ScreenToCanvas(cursor)
	for _, wheel := range []float64{1, 1, 1, -1, 2} {
		canvasFrame(ui, c, Input{CursorX: cursor.X, CursorY: cursor.Y, WheelY: wheel, Modifiers: ModCtrl})
		after := c.ScreenToCanvas(cursor)
		if !approxEqual(after.X, before.X, 1e-6) || !approxEqual(after.Y, before.Y, 1e-6) {
			t.Fatalf("zoom %v: canvas point under cursor moved from %v to %v", c.Zoom, before, after)
		}
	}
	if c.Zoom <= 1 {
		t.Errorf("zoom = %v, want > 1", c.Zoom)
	}
}

func TestCanvasWheelPan(t *testing.T) {
	tests := []struct {
		name   string
		in     Input
		offset Vec2
	}{
		{"vertical", Input{WheelY: -2}, Vec2{0, -2 * wheelScrollStep}},
		{"horizontal", Input{WheelX: 1}, Vec2{wheelScrollStep, 0}},
		{"shift turns vertical into horizontal", Input{WheelY: 1, Modifiers: ModShift}, Vec2{wheelScrollStep, 0}},
		{"ctrl+shift does nothing", Input{WheelY: 1, Modifiers: ModShift | ModCtrl}, Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, c := newCanvasUI(Rect{Width: 800, Height: 600})
			tt.in.CursorX, tt.in.CursorY = 400, 300
			canvasFrame(ui, c, tt.in)
			if c.Offset != tt.offset {
				t.Errorf("offset = %v, want %v", c.Offset, tt.offset)
			}
			if c.Zoom != 1 {
				t.Errorf("zoom = %v, want 1", c.Zoom)
			}
		})
	}
}

func TestCanvasWheelOutsideViewport(t *testing.T) {
	ui, c := newCanvasUI(Rect{X: 100, Y: 100, Width: 200, Height: 200})
	canvasFrame(ui, c, Input{CursorX: 10, CursorY: 10, WheelY: 1})
	if c.Offset != (Vec2{}) {
		t.Errorf("offset = %v, wheel outside the canvas must be ignored", c.Offset)
	}
}

func TestCanvasMiddleDragPan(t *testing.T) {
	ui, c := newCanvasUI(Rect{Width: 800, Height: 600})
	canvasFrame(ui, c, Input{CursorX: 400, CursorY: 300})

	ui.InjectButtonDrag(MouseButtonMiddle, 400, 300, 450, 320, 5)
	for ui.PendingInjected() > 0 {
		canvasFrame(ui, c, Input{})
	}
	// The move made on the release frame is not applied.
	if !approxEqual(c.Offset.X, 37.5, epsilon) || !approxEqual(c.Offset.Y, 15, epsilon) {
		t.Errorf("offset = %v, want (37.5,15)", c.Offset)
	}
	if c.Interaction() != StateIdle {
		t.Errorf("state = %v, panning never leaves idle", c.Interaction())
	}
}

func TestCanvasLeftPanButton(t *testing.T) {
	ui, c := newCanvasUI(Rect{Width: 800, Height: 600})
	c.PanButton = MouseButtonLeft
	canvasFrame(ui, c, Input{CursorX: 400, CursorY: 300})

	ui.InjectDrag(400, 300, 500, 300, 6)
	for ui.PendingInjected() > 0 {
		canvasFrame(ui, c, Input{})
		if c.Interaction() == StateSelecting {
			t.Fatal("a left pan button must not box-select")
		}
	}
	if c.Offset.X <= 0 || c.Offset.Y != 0 {
		t.Errorf("offset = %v, want a horizontal pan", c.Offset)
	}
}

func TestCanvasCenterOn(t *testing.T) {
	ui, c := newCanvasUI(Rect{Width: 800, Height: 600})
	c.Zoom = 2
	canvasFrame(ui, c, Input{})

	c.CenterOn(100, 50)
	if got := c.CanvasToScreen(Vec2{100, 50}); got != (Vec2{400, 300}) {
		t.Errorf("centred point at %v, want (400,300)", got)
	}
}

func TestCanvasScrollTo(t *testing.T) {
	ui, c := newCanvasUI(Rect{Width: 800, Height: 600})
	canvasFrame(ui, c, Input{})

	c.ScrollTo(1000, 1000, 0.5, ease.Linear)
	if !c.Scrolling() {
		t.Fatal("Scrolling = false after ScrollTo")
	}
	// 0.25s at 1/60 per frame is about halfway.
	for i := 0; i < 15; i++ {
		canvasFrame(ui, c, Input{DeltaTime: 1.0 / 60})
	}
	if !approxEqual(c.Offset.X, -300, 1) || !approxEqual(c.Offset.Y, -350, 1) {
		t.Errorf("halfway offset = %v, want about (-300,-350)", c.Offset)
	}
	for i := 0; i < 30 && c.Scrolling(); i++ {
		canvasFrame(ui, c, Input{DeltaTime: 1.0 / 60})
	}
	if c.Scrolling() {
		t.Fatal("scroll did not finish")
	}
	if got := c.CanvasToScreen(Vec2{1000, 1000}); !approxEqual(got.X, 400, 1e-3) || !approxEqual(got.Y, 300, 1e-3) {
		t.Errorf("target at %v, want the viewport centre", got)
	}
}

func TestCanvasScrollCancelledByPan(t *testing.T) {
	ui, c := newCanvasUI(Rect{Width: 800, Height: 600})
	canvasFrame(ui, c, Input{})
	c.ScrollTo(1000, 0, 1, nil)
	canvasFrame(ui, c, Input{CursorX: 10, CursorY: 10, WheelY: 1})
	if c.Scrolling() {
		t.Error("wheel pan should cancel the scroll animation")
	}
}

func TestCanvasGrid(t *testing.T) {
	ui, c := newCanvasUI(Rect{Width: 256, Height: 128})
	dl := canvasFrame(ui, c, Input{})
	// Spacing 64: four vertical and two horizontal lines.
	if n := countCommands(dl, CommandLine); n != 6 {
		t.Errorf("grid lines = %d, want 6", n)
	}

	c.Style.GridSpacing = 0
	dl = canvasFrame(ui, c, Input{})
	if n := countCommands(dl, CommandLine); n != 0 {
		t.Errorf("grid lines = %d with spacing 0, want none", n)
	}
}

func TestCanvasFontScaleFollowsZoom(t *testing.T) {
	ui, c := newCanvasUI(Rect{Width: 800, Height: 600})
	c.Zoom = 1.5
	ui.NewFrame(Input{})
	ui.BeginCanvas(c)
	if ui.FontScale() != 1.5 {
		t.Errorf("font scale inside canvas = %v, want 1.5", ui.FontScale())
	}
	if ui.CurrentCanvas() != c {
		t.Error("CurrentCanvas should return the open canvas")
	}
	ui.EndCanvas()
	if ui.FontScale() != 1 {
		t.Errorf("font scale after EndCanvas = %v, want 1", ui.FontScale())
	}
	if ui.CurrentCanvas() != nil {
		t.Error("CurrentCanvas should be nil after EndCanvas")
	}
	ui.EndFrame()
}

func TestCanvasSelectionRectDrawn(t *testing.T) {
	ui, c := newCanvasUI(Rect{Width: 800, Height: 600})
	canvasFrame(ui, c, Input{})
	ui.InjectPress(100, 100)
	ui.InjectMove(150, 150)
	ui.InjectMove(200, 200)
	canvasFrame(ui, c, Input{})
	canvasFrame(ui, c, Input{})
	dl := canvasFrame(ui, c, Input{})

	if c.Interaction() != StateSelecting {
		t.Fatalf("state = %v, want selecting", c.Interaction())
	}
	var found bool
	for _, cmd := range dl.Commands {
		if cmd.Type == CommandRectFilled && cmd.P0 == (Vec2{100, 100}) && cmd.P1 == (Vec2{200, 200}) {
			found = true
		}
	}
	if !found {
		t.Error("selection rectangle from the press point to the cursor not drawn")
	}
}
