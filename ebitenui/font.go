package ebitenui

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/nodegraph"
)

// DefaultFontSize is the size of the font returned by DefaultFont.
const DefaultFontSize = 13

// Font wraps Ebitengine's text/v2 for TrueType font rendering. It implements
// nodegraph.TextMeasurer so layout matches what is drawn.
type Font struct {
	face *text.GoTextFace
	size float64
	lh   float64 // cached line height
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("ebitenui: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	// Compute line height from metrics
	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &Font{face: face, size: size, lh: lh}, nil
}

// DefaultFont returns the Go Regular font at DefaultFontSize.
func DefaultFont() (*Font, error) {
	return LoadFont(goregular.TTF, DefaultFontSize)
}

// MeasureText implements nodegraph.TextMeasurer.
func (f *Font) MeasureText(s string) nodegraph.Vec2 {
	w, h := text.Measure(s, f.face, f.lh)
	return nodegraph.Vec2{X: w, Y: h}
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *Font) Face() *text.GoTextFace {
	return f.face
}
