package ebitenui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/nodegraph"
)

// curveSegments is how many line segments a Bézier command is flattened
// into for drawing.
const curveSegments = 32

// maxBatchVertices keeps a triangle batch within uint16 indices, leaving
// room for one more shape.
const maxBatchVertices = math.MaxUint16 - 4096

// --- White pixel singleton ---

var whiteImage *ebiten.Image

// whiteSubImage returns the centre texel of a 3x3 white image. Untextured
// triangles sample it at (1, 1) so edge filtering never reaches transparent
// pixels.
func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Renderer replays nodegraph draw lists onto an Ebitengine image. Lines,
// curves and outlines are batched into triangle meshes; filled shapes and
// text are drawn as they come so command order is preserved.
type Renderer struct {
	// Font draws CommandText. Nil skips text.
	Font *Font

	vs   []ebiten.Vertex
	is   []uint16
	pts  []nodegraph.Vec2
	path vector.Path
}

// NewRenderer creates a renderer that draws text with font.
func NewRenderer(font *Font) *Renderer {
	return &Renderer{Font: font}
}

// Draw replays every command of dl onto dst.
func (r *Renderer) Draw(dst *ebiten.Image, dl *nodegraph.DrawList) {
	for i := range dl.Commands {
		cmd := &dl.Commands[i]
		switch cmd.Type {
		case nodegraph.CommandLine:
			r.pts = append(r.pts[:0], cmd.P0, cmd.P1)
			r.batchPolyline(dst, cmd.Thickness, cmd.Color)
		case nodegraph.CommandBezier:
			r.pts = cmd.Curve().Flatten(r.pts[:0], curveSegments)
			r.batchPolyline(dst, cmd.Thickness, cmd.Color)
		case nodegraph.CommandRect:
			r.strokeRect(dst, cmd)
		case nodegraph.CommandRectFilled:
			r.flush(dst)
			r.fillRect(dst, cmd)
		case nodegraph.CommandCircle:
			r.flush(dst)
			vector.StrokeCircle(dst, float32(cmd.P0.X), float32(cmd.P0.Y), float32(cmd.Radius),
				float32(cmd.Thickness), cmd.Color.RGBA(), true)
		case nodegraph.CommandCircleFilled:
			r.flush(dst)
			vector.DrawFilledCircle(dst, float32(cmd.P0.X), float32(cmd.P0.Y), float32(cmd.Radius),
				cmd.Color.RGBA(), true)
		case nodegraph.CommandText:
			r.flush(dst)
			r.drawText(dst, cmd)
		}
	}
	r.flush(dst)
}

func (r *Renderer) batchPolyline(dst *ebiten.Image, thickness float64, c nodegraph.Color) {
	if len(r.vs) > maxBatchVertices {
		r.flush(dst)
	}
	r.vs, r.is = appendRibbon(r.vs, r.is, r.pts, thickness, c)
}

// flush draws the pending triangle batch.
func (r *Renderer) flush(dst *ebiten.Image) {
	if len(r.is) == 0 {
		return
	}
	dst.DrawTriangles(r.vs, r.is, whiteSubImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
	r.vs = r.vs[:0]
	r.is = r.is[:0]
}

// roundedRectPath rebuilds r.path as the outline of a rectangle with
// rounded corners.
func (r *Renderer) roundedRectPath(cmd *nodegraph.DrawCommand) {
	x0, y0 := float32(cmd.P0.X), float32(cmd.P0.Y)
	x1, y1 := float32(cmd.P1.X), float32(cmd.P1.Y)
	rad := float32(math.Min(cmd.Radius, math.Min(cmd.P1.X-cmd.P0.X, cmd.P1.Y-cmd.P0.Y)/2))

	r.path = vector.Path{}
	r.path.MoveTo(x0+rad, y0)
	r.path.LineTo(x1-rad, y0)
	r.path.ArcTo(x1, y0, x1, y0+rad, rad)
	r.path.LineTo(x1, y1-rad)
	r.path.ArcTo(x1, y1, x1-rad, y1, rad)
	r.path.LineTo(x0+rad, y1)
	r.path.ArcTo(x0, y1, x0, y1-rad, rad)
	r.path.LineTo(x0, y0+rad)
	r.path.ArcTo(x0, y0, x0+rad, y0, rad)
	r.path.Close()
}

func (r *Renderer) fillRect(dst *ebiten.Image, cmd *nodegraph.DrawCommand) {
	if cmd.Radius <= 0 {
		vector.DrawFilledRect(dst, float32(cmd.P0.X), float32(cmd.P0.Y),
			float32(cmd.P1.X-cmd.P0.X), float32(cmd.P1.Y-cmd.P0.Y), cmd.Color.RGBA(), true)
		return
	}
	r.roundedRectPath(cmd)
	vs, is := r.path.AppendVerticesAndIndicesForFilling(nil, nil)
	colorVertices(vs, cmd.Color)
	dst.DrawTriangles(vs, is, whiteSubImage(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	})
}

func (r *Renderer) strokeRect(dst *ebiten.Image, cmd *nodegraph.DrawCommand) {
	if cmd.Radius <= 0 {
		r.pts = append(r.pts[:0],
			cmd.P0, nodegraph.Vec2{X: cmd.P1.X, Y: cmd.P0.Y},
			cmd.P1, nodegraph.Vec2{X: cmd.P0.X, Y: cmd.P1.Y}, cmd.P0)
		r.batchPolyline(dst, cmd.Thickness, cmd.Color)
		return
	}
	if len(r.vs) > maxBatchVertices {
		r.flush(dst)
	}
	r.roundedRectPath(cmd)
	start := len(r.vs)
	r.vs, r.is = r.path.AppendVerticesAndIndicesForStroke(r.vs, r.is, &vector.StrokeOptions{
		Width:    float32(cmd.Thickness),
		LineJoin: vector.LineJoinRound,
	})
	colorVertices(r.vs[start:], cmd.Color)
}

// colorVertices paints path vertices a solid straight-alpha color sampled
// from the white texel.
func colorVertices(vs []ebiten.Vertex, c nodegraph.Color) {
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(c.R)
		vs[i].ColorG = float32(c.G)
		vs[i].ColorB = float32(c.B)
		vs[i].ColorA = float32(c.A)
	}
}

func (r *Renderer) drawText(dst *ebiten.Image, cmd *nodegraph.DrawCommand) {
	if r.Font == nil || cmd.Text == "" {
		return
	}
	scale := cmd.Scale
	if scale <= 0 {
		scale = 1
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cmd.P0.X, cmd.P0.Y)
	op.ColorScale.Scale(
		float32(cmd.Color.R*cmd.Color.A),
		float32(cmd.Color.G*cmd.Color.A),
		float32(cmd.Color.B*cmd.Color.A),
		float32(cmd.Color.A),
	)
	op.LineSpacing = r.Font.lh
	text.Draw(dst, cmd.Text, r.Font.face, op)
}
