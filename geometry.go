package nodegraph

import "math"

// curveSegments is the number of line segments a connection curve is
// flattened into, both for drawing and for hover testing.
const curveSegments = 24

// DistanceToSegmentSquared returns the squared distance from p to the closest
// point of segment ab. A degenerate segment (a == b) measures distance to a.
// Based on http://paulbourke.net/geometry/pointlineplane/
func DistanceToSegmentSquared(p, a, b Vec2) float64 {
	d := b.Sub(a)
	l := d.LenSq()
	if l == 0 {
		return p.Sub(a).LenSq()
	}
	u := (p.X-a.X)*d.X + (p.Y-a.Y)*d.Y
	u /= l
	if u > 1 {
		u = 1
	} else if u < 0 {
		u = 0
	}
	return a.Add(d.Scale(u)).Sub(p).LenSq()
}

// CubicBezier is a cubic Bézier curve with end points P0, P3 and control
// points P1, P2.
type CubicBezier struct {
	P0, P1, P2, P3 Vec2
}

// Point evaluates the curve at t ∈ [0, 1].
func (c CubicBezier) Point(t float64) Vec2 {
	u := 1 - t
	w0 := u * u * u
	w1 := 3 * u * u * t
	w2 := 3 * u * t * t
	w3 := t * t * t
	return Vec2{
		X: w0*c.P0.X + w1*c.P1.X + w2*c.P2.X + w3*c.P3.X,
		Y: w0*c.P0.Y + w1*c.P1.Y + w2*c.P2.Y + w3*c.P3.Y,
	}
}

// Flatten appends segments+1 evenly spaced (in t) points of the curve to buf.
func (c CubicBezier) Flatten(buf []Vec2, segments int) []Vec2 {
	if segments < 1 {
		segments = 1
	}
	for i := 0; i <= segments; i++ {
		buf = append(buf, c.Point(float64(i)/float64(segments)))
	}
	return buf
}

// ClosestPoint returns the point of the flattened curve closest to p.
func (c CubicBezier) ClosestPoint(p Vec2, segments int) Vec2 {
	if segments < 1 {
		segments = 1
	}
	best := c.P0
	bestDist := math.Inf(1)
	prev := c.P0
	for i := 1; i <= segments; i++ {
		cur := c.Point(float64(i) / float64(segments))
		d := cur.Sub(prev)
		l := d.LenSq()
		u := 0.0
		if l > 0 {
			u = ((p.X-prev.X)*d.X + (p.Y-prev.Y)*d.Y) / l
			u = math.Max(0, math.Min(1, u))
		}
		q := prev.Add(d.Scale(u))
		if dist := q.Sub(p).LenSq(); dist < bestDist {
			bestDist = dist
			best = q
		}
		prev = cur
	}
	return best
}

// DistanceSquared returns the minimum squared distance from p to the
// flattened curve.
func (c CubicBezier) DistanceSquared(p Vec2, segments int) float64 {
	if segments < 1 {
		segments = 1
	}
	minDist := math.Inf(1)
	prev := c.P0
	for i := 1; i <= segments; i++ {
		cur := c.Point(float64(i) / float64(segments))
		minDist = math.Min(minDist, DistanceToSegmentSquared(p, prev, cur))
		prev = cur
	}
	return minDist
}

// connectionCurve builds the curve between an input anchor and an output
// anchor. Control points are pushed horizontally away from each end so the
// curve always leaves an output to the right and enters an input from the
// left, whatever the relative node positions.
func connectionCurve(input, output Vec2, strength, zoom float64) CubicBezier {
	return CubicBezier{
		P0: input,
		P1: input.Sub(Vec2{strength * zoom, 0}),
		P2: output.Add(Vec2{strength * zoom, 0}),
		P3: output,
	}
}

// curveHovered reports whether p is within half the curve's (zoomed)
// thickness of the curve.
func curveHovered(c CubicBezier, p Vec2, thickness, zoom float64) bool {
	half := thickness * 0.5 * zoom
	return c.DistanceSquared(p, curveSegments) <= half*half
}
