package sketch

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. The returned point lies exactly on o.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// Eval returns the point at t ∈ [0, 1] along the line.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}
