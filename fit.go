package sketch

import (
	"slices"
)

// Sample thins a dense stroke. Starting with the first point, a point is
// kept once the path length travelled since the last kept point exceeds
// spacing. The first and last points are always kept.
func Sample(pts []Point, spacing float64) []Point {
	if len(pts) < 3 {
		return slices.Clone(pts)
	}
	out := []Point{pts[0]}
	var d float64
	for i := 1; i < len(pts)-1; i++ {
		d += pts[i].Distance(pts[i-1])
		if d > spacing {
			out = append(out, pts[i])
			d = 0
		}
	}
	return append(out, pts[len(pts)-1])
}

// LinearLineStyle returns n samples on the straight line between the first
// and last of pts, ordered by increasing x.
func LinearLineStyle(pts []Point, n int) []Point {
	if len(pts) == 0 || n < 1 {
		return nil
	}
	a, b := pts[0], pts[len(pts)-1]
	if b.X < a.X {
		a, b = b, a
	}
	if n == 1 {
		return []Point{a}
	}
	l := Line{a, b}
	out := make([]Point, n)
	for i := range n {
		out[i] = l.Eval(float64(i) / float64(n-1))
	}
	return out
}

// BezierLineStyle treats pts as the control points of a single Bézier curve
// and samples it at n equally spaced parameters in [0, 1), followed by the
// last control point, for n+1 samples in total.
func BezierLineStyle(pts []Point, n int) []Point {
	if len(pts) == 0 {
		return nil
	}
	comb := binomials(len(pts) - 1)
	out := make([]Point, 0, n+1)
	for i := range n {
		out = append(out, evalBezier(pts, comb, float64(i)/float64(n)))
	}
	return append(out, pts[len(pts)-1])
}

// FitStroke turns the raw pointer samples of a draw gesture into a curve.
//
// A stroke whose first and last points are closer than CloseDistance is
// closed by repeating its first point. The endpoints of open strokes snap
// onto the axes when within SnapDistance of them. Bézier strokes need at
// least three points; FitStroke reports false for strokes it rejects.
func (g Geometry) FitStroke(raw []Point, lt LineType) (*Curve, bool) {
	if len(raw) == 0 || (lt == Bezier && len(raw) < 3) {
		return nil, false
	}
	pts := slices.Clone(raw)
	first, last := pts[0], pts[len(pts)-1]

	closed := lt == Bezier && first.Distance(last) < g.CloseDistance
	if closed {
		pts = append(pts, first)
	} else {
		pts[0] = g.snap(first)
		pts[len(pts)-1] = g.snap(last)
	}

	c := &Curve{IsClosed: closed, LineType: lt}
	switch lt {
	case Linear:
		c.Pts = LinearLineStyle(pts, g.Samples)
	default:
		c.Pts = BezierLineStyle(Sample(pts, g.SampleSpacing), g.Samples)
	}
	g.Recalculate(c)
	return c, true
}

// snap moves each coordinate of pt that is within SnapDistance of the
// origin onto the origin.
func (g Geometry) snap(pt Point) Point {
	if d := pt.X - g.Origin.X; d > -g.SnapDistance && d < g.SnapDistance {
		pt.X = g.Origin.X
	}
	if d := pt.Y - g.Origin.Y; d > -g.SnapDistance && d < g.SnapDistance {
		pt.Y = g.Origin.Y
	}
	return pt
}
