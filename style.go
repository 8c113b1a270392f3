package nodegraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// StyleColor indexes the color table of a canvas.
type StyleColor int

const (
	ColCanvasLines      StyleColor = iota // background grid
	ColNodeBg                             // unselected node body
	ColNodeActiveBg                       // selected node body
	ColNodeBorder                         // node outline
	ColConnection                         // connection curve and idle slot
	ColConnectionActive                   // hovered curve and highlighted slot
	ColSelectBg                           // box-select fill
	ColSelectBorder                       // box-select outline
	ColMax
)

var styleColorNames = [ColMax]string{
	ColCanvasLines:      "canvas_lines",
	ColNodeBg:           "node_bg",
	ColNodeActiveBg:     "node_active_bg",
	ColNodeBorder:       "node_border",
	ColConnection:       "connection",
	ColConnectionActive: "connection_active",
	ColSelectBg:         "select_bg",
	ColSelectBorder:     "select_border",
}

// String returns the name used for the color in theme files.
func (c StyleColor) String() string {
	if c < 0 || c >= ColMax {
		return "StyleColor(" + strconv.Itoa(int(c)) + ")"
	}
	return styleColorNames[c]
}

// DefaultColors returns the default dark color table.
func DefaultColors() [ColMax]Color {
	border := Color{0.43, 0.43, 0.50, 0.50}
	activeBg := Color{0.26, 0.59, 0.98, 0.67}
	return [ColMax]Color{
		ColCanvasLines:      Color{0.43, 0.43, 0.50, 0.50},
		ColNodeBg:           Color{0.06, 0.06, 0.06, 0.94},
		ColNodeActiveBg:     activeBg,
		ColNodeBorder:       border,
		ColConnection:       Color{0.61, 0.61, 0.61, 1},
		ColConnectionActive: Color{1, 0.43, 0.35, 1},
		ColSelectBg:         activeBg.WithAlpha(0.25),
		ColSelectBorder:     border,
	}
}

// CanvasStyle holds the geometric style parameters of a canvas. Values are
// in canvas units and scaled by the zoom factor when drawn.
type CanvasStyle struct {
	// CurveThickness is the thickness of connection curves.
	CurveThickness float64
	// ConnectionIndent pushes curve ends into the slot widget so no seam is
	// visible between a slot icon and its curve.
	ConnectionIndent float64
	// CurveStrength is the horizontal distance of the curve control points
	// from the end points.
	CurveStrength float64
	// SlotRadius is the radius of slot circles drawn by helpers.
	SlotRadius float64
	// NodeRounding is the corner rounding of node rectangles.
	NodeRounding float64
	// NodePadding is the space between a node's border and its content.
	NodePadding Vec2
	// GridSpacing is the distance between background grid lines.
	GridSpacing float64
}

// DefaultCanvasStyle returns the default style parameters.
func DefaultCanvasStyle() CanvasStyle {
	return CanvasStyle{
		CurveThickness:   5,
		ConnectionIndent: 1,
		CurveStrength:    100,
		SlotRadius:       5,
		NodeRounding:     5,
		NodePadding:      Vec2{4, 4},
		GridSpacing:      64,
	}
}

// --- Scoped overrides ---

// PushStyleColor overrides one color and returns a func that restores the
// previous value. Intended for use with defer:
//
//	defer canvas.PushStyleColor(nodegraph.ColNodeBg, red)()
func (c *CanvasState) PushStyleColor(col StyleColor, v Color) func() {
	if col < 0 || col >= ColMax {
		panic(fmt.Sprintf("nodegraph: PushStyleColor: invalid color %d", col))
	}
	prev := c.Colors[col]
	c.Colors[col] = v
	restored := false
	return func() {
		if restored {
			return
		}
		restored = true
		c.Colors[col] = prev
	}
}

// PushStyleVar applies fn to the canvas style and returns a func that
// restores the style as it was before the call.
//
//	defer canvas.PushStyleVar(func(s *nodegraph.CanvasStyle) { s.CurveThickness = 2 })()
func (c *CanvasState) PushStyleVar(fn func(*CanvasStyle)) func() {
	prev := c.Style
	fn(&c.Style)
	restored := false
	return func() {
		if restored {
			return
		}
		restored = true
		c.Style = prev
	}
}

// --- Themes ---

// Theme is a canvas appearance loaded from a TOML file. Zero-valued fields
// leave the canvas untouched.
//
//	[colors]
//	node_bg = "#1e1e1ef0"
//	connection_active = "#ff6e59"
//
//	[style]
//	curve_thickness = 3
//	node_padding = [6, 4]
type Theme struct {
	Colors map[string]string `toml:"colors"`
	Style  ThemeStyle        `toml:"style"`

	colors [ColMax]*Color
}

// ThemeStyle is the [style] table of a theme file.
type ThemeStyle struct {
	CurveThickness   float64   `toml:"curve_thickness"`
	ConnectionIndent float64   `toml:"connection_indent"`
	CurveStrength    float64   `toml:"curve_strength"`
	SlotRadius       float64   `toml:"slot_radius"`
	NodeRounding     float64   `toml:"node_rounding"`
	NodePadding      []float64 `toml:"node_padding"`
	GridSpacing      float64   `toml:"grid_spacing"`
}

// LoadTheme parses a TOML theme. Unknown color names and malformed colors
// are errors.
func LoadTheme(data []byte) (*Theme, error) {
	var t Theme
	md, err := toml.Decode(string(data), &t)
	if err != nil {
		return nil, fmt.Errorf("nodegraph: parse theme: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("nodegraph: parse theme: unknown key %q", undecoded[0].String())
	}
	for name, hex := range t.Colors {
		col, ok := lookupStyleColor(name)
		if !ok {
			return nil, fmt.Errorf("nodegraph: parse theme: unknown color %q", name)
		}
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("nodegraph: parse theme: color %q: %w", name, err)
		}
		t.colors[col] = &c
	}
	if n := len(t.Style.NodePadding); n != 0 && n != 2 {
		return nil, fmt.Errorf("nodegraph: parse theme: node_padding needs 2 values, got %d", n)
	}
	return &t, nil
}

func lookupStyleColor(name string) (StyleColor, bool) {
	for i, n := range styleColorNames {
		if n == name {
			return StyleColor(i), true
		}
	}
	return 0, false
}

// Apply copies the theme onto c.
func (t *Theme) Apply(c *CanvasState) {
	for i, col := range t.colors {
		if col != nil {
			c.Colors[i] = *col
		}
	}
	s := &t.Style
	setIf := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	setIf(&c.Style.CurveThickness, s.CurveThickness)
	setIf(&c.Style.ConnectionIndent, s.ConnectionIndent)
	setIf(&c.Style.CurveStrength, s.CurveStrength)
	setIf(&c.Style.SlotRadius, s.SlotRadius)
	setIf(&c.Style.NodeRounding, s.NodeRounding)
	setIf(&c.Style.GridSpacing, s.GridSpacing)
	if len(s.NodePadding) == 2 {
		c.Style.NodePadding = Vec2{s.NodePadding[0], s.NodePadding[1]}
	}
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("want #rrggbb or #rrggbbaa, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
