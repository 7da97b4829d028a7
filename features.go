package sketch

import (
	"math"
)

// Geometry computes and maintains the derived features of curves drawn on
// one canvas.
type Geometry struct {
	Config
	// Origin is the pixel position of the Cartesian origin.
	Origin Point
}

// Geometry returns the feature engine for curves on canvas cp.
func (cfg Config) Geometry(cp CanvasProperties) Geometry {
	return Geometry{Config: cfg, Origin: cp.Center}
}

// Recalculate refreshes all derived features of c from c.Pts. It must be
// called after every change to c.Pts.
func (g Geometry) Recalculate(c *Curve) {
	c.Box = BoundingBox(c.Pts)
	c.InterX = g.InterceptsX(c.Pts, c.IsClosed)
	c.InterY = g.InterceptsY(c.Pts, c.IsClosed)
	c.Maxima = g.TurningPoints(c.Pts, KnotMaximum, c.IsClosed)
	c.Minima = g.TurningPoints(c.Pts, KnotMinimum, c.IsClosed)
	c.EndPts = g.EndPoints(c.Pts, c.IsClosed)
}

// InterceptsX returns the points where pts meets or crosses the horizontal
// axis, in traversal order. The closing sample of a closed curve is not
// reported again.
func (g Geometry) InterceptsX(pts []Point, closed bool) []Point {
	return g.intercepts(pts, AxisX, closed)
}

// InterceptsY is like [Geometry.InterceptsX] for the vertical axis.
func (g Geometry) InterceptsY(pts []Point, closed bool) []Point {
	return g.intercepts(pts, AxisY, closed)
}

func (g Geometry) intercepts(pts []Point, axis Axis, closed bool) []Point {
	// across is the coordinate that changes sign at the axis, along the one
	// measured on it.
	across, along := AxisY, AxisX
	line := Line{Pt(0, g.Origin.Y), Pt(1, g.Origin.Y)}
	if axis == AxisY {
		across, along = AxisX, AxisY
		line = Line{Pt(g.Origin.X, 0), Pt(g.Origin.X, 1)}
	}
	c := g.Origin.Coord(across)
	ring := ringOf(pts, closed)

	var out []Point
	for i, p := range pts {
		if p.Coord(across) == c {
			if i < len(ring) {
				out = append(out, p)
			}
			continue
		}
		if i == 0 {
			continue
		}
		q := pts[i-1]
		if (q.Coord(across)-c)*(p.Coord(across)-c) >= 0 {
			continue
		}
		// Samples this far apart belong to different branches.
		if math.Abs(p.Coord(along)-q.Coord(along)) > g.BranchGap {
			continue
		}
		if x, ok := (Line{q, p}).CrossingPoint(line); ok {
			out = append(out, x)
		}
	}
	return out
}

// EndPoints returns the first and last sample of an open curve, with the
// ends of every branch in between. A branch ends wherever consecutive
// samples are more than BranchGap apart horizontally. Closed curves have no
// endpoints.
func (g Geometry) EndPoints(pts []Point, closed bool) []Point {
	if closed || len(pts) == 0 {
		return nil
	}
	out := []Point{pts[0]}
	for i := 1; i < len(pts); i++ {
		if math.Abs(pts[i].X-pts[i-1].X) > g.BranchGap {
			out = append(out, pts[i-1], pts[i])
		}
	}
	if len(pts) > 1 {
		out = append(out, pts[len(pts)-1])
	}
	return out
}

// TurningPoints returns the maxima or minima of pts, depending on kind, in
// traversal order.
//
// A sample is a candidate if it lies strictly above or below both immediate
// neighbours, or at the same height as its predecessor. Candidates are
// classified against the samples ClassifyWindow steps away. Open curves
// ignore the first and last EdgeCutoff samples; closed curves wrap around.
func (g Geometry) TurningPoints(pts []Point, kind KnotKind, closed bool) []Point {
	idx := g.turningIndices(pts, kind, closed)
	if len(idx) == 0 {
		return nil
	}
	out := make([]Point, len(idx))
	for i, j := range idx {
		out[i] = pts[j]
	}
	return out
}

func (g Geometry) turningIndices(pts []Point, kind KnotKind, closed bool) []int {
	ring := ringOf(pts, closed)
	n := len(ring)
	if n < 3 {
		return nil
	}
	at := func(i int) Point {
		return ring[((i%n)+n)%n]
	}
	start, end := g.EdgeCutoff, n-g.EdgeCutoff
	if closed {
		start, end = 0, n
	}

	var out []int
	for i := start; i < end; i++ {
		p, prev, next := ring[i], at(i-1), at(i+1)
		candidate := (p.Y < prev.Y && p.Y < next.Y) ||
			(p.Y > prev.Y && p.Y > next.Y) ||
			p.Y == prev.Y
		if !candidate {
			continue
		}
		l, r := at(i-g.ClassifyWindow), at(i+g.ClassifyWindow)
		switch kind {
		case KnotMaximum:
			if p.Y < l.Y && p.Y < r.Y {
				out = append(out, i)
			}
		case KnotMinimum:
			if p.Y > l.Y && p.Y > r.Y {
				out = append(out, i)
			}
		}
	}
	return out
}

// ringOf returns the samples of a closed curve without the duplicated
// closing sample.
func ringOf(pts []Point, closed bool) []Point {
	if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		return pts[:len(pts)-1]
	}
	return pts
}
