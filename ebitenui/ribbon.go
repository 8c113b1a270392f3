package ebitenui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/nodegraph"
)

// maxMiter caps how far a miter joint may extend, relative to the half
// width, so sharp corners do not spike.
const maxMiter = 2.0

// appendRibbon appends a solid ribbon of the given width following points.
// For N points it adds 2N vertices and 6(N-1) indices. Vertex colors are
// straight alpha.
func appendRibbon(vs []ebiten.Vertex, is []uint16, points []nodegraph.Vec2, width float64, c nodegraph.Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 2 {
		return vs, is
	}
	base := uint16(len(vs))
	halfW := width / 2

	for i := 0; i < n; i++ {
		// Compute perpendicular normal.
		var nx, ny float64
		if i == 0 {
			nx, ny = perpendicular(points[0], points[1])
		} else if i == n-1 {
			nx, ny = perpendicular(points[n-2], points[n-1])
		} else {
			// Average of adjacent segment normals (miter).
			nx0, ny0 := perpendicular(points[i-1], points[i])
			nx1, ny1 := perpendicular(points[i], points[i+1])
			nx, ny = nx0+nx1, ny0+ny1
			ln := math.Sqrt(nx*nx + ny*ny)
			if ln > 1e-10 {
				nx /= ln
				ny /= ln
			}
			// Scale to maintain width at the miter.
			dot := nx0*nx + ny0*ny
			if dot > 0.1 {
				scale := math.Min(1/dot, maxMiter)
				nx *= scale
				ny *= scale
			}
		}

		p := points[i]
		vs = append(vs,
			solidVertex(p.X+nx*halfW, p.Y+ny*halfW, c),
			solidVertex(p.X-nx*halfW, p.Y-ny*halfW, c),
		)
	}

	// Two triangles per segment.
	for i := 0; i < n-1; i++ {
		v := base + uint16(i*2)
		is = append(is, v, v+1, v+2, v+1, v+3, v+2)
	}
	return vs, is
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b nodegraph.Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}

func solidVertex(x, y float64, c nodegraph.Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R),
		ColorG: float32(c.G),
		ColorB: float32(c.B),
		ColorA: float32(c.A),
	}
}
