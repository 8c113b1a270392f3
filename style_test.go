package nodegraph

import (
	"strings"
	"testing"
)

func TestPushStyleColorRestore(t *testing.T) {
	c := NewCanvasState()
	orig := c.Colors[ColNodeBg]
	red := Color{1, 0, 0, 1}

	restore := c.PushStyleColor(ColNodeBg, red)
	if c.Colors[ColNodeBg] != red {
		t.Fatal("color not overridden")
	}
	restore()
	if c.Colors[ColNodeBg] != orig {
		t.Error("color not restored")
	}

	// Restoring twice must not clobber a later override.
	c.Colors[ColNodeBg] = Color{0, 1, 0, 1}
	restore()
	if c.Colors[ColNodeBg] != (Color{0, 1, 0, 1}) {
		t.Error("second restore changed the color")
	}

	expectPanic(t, "invalid color", func() { c.PushStyleColor(ColMax, red) })
}

func TestPushStyleVarRestore(t *testing.T) {
	c := NewCanvasState()
	restore := c.PushStyleVar(func(s *CanvasStyle) {
		s.CurveThickness = 1
		s.NodePadding = Vec2{9, 9}
	})
	if c.Style.CurveThickness != 1 || c.Style.NodePadding != (Vec2{9, 9}) {
		t.Fatal("style not overridden")
	}
	restore()
	if c.Style != DefaultCanvasStyle() {
		t.Errorf("style = %+v, want defaults", c.Style)
	}
}

func TestStyleColorString(t *testing.T) {
	if ColConnectionActive.String() != "connection_active" {
		t.Errorf("String = %q", ColConnectionActive.String())
	}
	if !strings.HasPrefix(StyleColor(99).String(), "StyleColor(") {
		t.Errorf("out of range String = %q", StyleColor(99).String())
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff0000", Color{1, 0, 0, 1}, false},
		{"00ff0080", Color{0, 1, 0, 128.0 / 255}, false},
		{" #0000FF ", Color{0, 0, 1, 1}, false},
		{"#fff", Color{}, true},
		{"#gg0000", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if !approxEqual(got.R, tt.want.R, 1e-9) || !approxEqual(got.G, tt.want.G, 1e-9) ||
				!approxEqual(got.B, tt.want.B, 1e-9) || !approxEqual(got.A, tt.want.A, 1e-9) {
				t.Errorf("ParseHexColor = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadThemeApply(t *testing.T) {
	th, err := LoadTheme([]byte(`
[colors]
node_bg = "#102030"
connection_active = "#ff000080"

[style]
curve_thickness = 3
node_padding = [6, 2]
`))
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	c := NewCanvasState()
	th.Apply(c)

	if got := c.Colors[ColNodeBg]; !approxEqual(got.R, 16.0/255, 1e-9) || got.A != 1 {
		t.Errorf("node_bg = %+v", got)
	}
	if got := c.Colors[ColConnectionActive]; got.R != 1 || !approxEqual(got.A, 128.0/255, 1e-9) {
		t.Errorf("connection_active = %+v", got)
	}
	if c.Colors[ColConnection] != DefaultColors()[ColConnection] {
		t.Error("colors absent from the theme must stay untouched")
	}
	if c.Style.CurveThickness != 3 || c.Style.NodePadding != (Vec2{6, 2}) {
		t.Errorf("style = %+v", c.Style)
	}
	if c.Style.CurveStrength != DefaultCanvasStyle().CurveStrength {
		t.Error("unset style fields must stay untouched")
	}
}

func TestLoadThemeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", `[colors`, "parse theme"},
		{"unknown color", "[colors]\nsky = \"#ffffff\"", "unknown color"},
		{"bad color", "[colors]\nnode_bg = \"red\"", "node_bg"},
		{"unknown key", "[style]\nwobble = 2", "unknown key"},
		{"padding arity", "[style]\nnode_padding = [1, 2, 3]", "node_padding"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTheme([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}
