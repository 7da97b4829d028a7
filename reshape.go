package sketch

import (
	"cmp"
	"slices"
)

// KnotKind classifies a movable point.
type KnotKind int

const (
	KnotEndpoint KnotKind = iota
	KnotMaximum
	KnotMinimum
)

func (k KnotKind) String() string {
	switch k {
	case KnotEndpoint:
		return "endpoint"
	case KnotMaximum:
		return "maximum"
	case KnotMinimum:
		return "minimum"
	default:
		return "KnotKind(?)"
	}
}

// Knot is a movable point of a curve: a turning point or an endpoint.
type Knot struct {
	// Index is the position of the knot in the curve's samples.
	Index int
	Kind  KnotKind
	Point Point
}

// Knots returns the movable points of c, ordered by their position along
// the curve.
func (c *Curve) Knots() []Knot {
	var out []Knot
	add := func(pts []Point, kind KnotKind) {
		from := 0
		for _, pt := range pts {
			i := slices.Index(c.Pts[from:], pt)
			if i < 0 {
				continue
			}
			out = append(out, Knot{Index: from + i, Kind: kind, Point: pt})
			from += i + 1
		}
	}
	add(c.Minima, KnotMinimum)
	add(c.Maxima, KnotMaximum)
	add(c.EndPts, KnotEndpoint)
	slices.SortStableFunc(out, func(a, b Knot) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return slices.CompactFunc(out, func(a, b Knot) bool {
		return a.Index == b.Index
	})
}

// neighbours returns the knots immediately before and after sample index t,
// wrapping around on closed curves. On open curves the first and last knot
// have only one neighbour.
func neighbours(knots []Knot, t, ringLen int, closed bool) (prev, next *Knot) {
	var others []Knot
	for _, k := range knots {
		if k.Index%ringLen != t {
			others = append(others, k)
		}
	}
	if len(others) == 0 {
		return nil, nil
	}
	for i := range others {
		k := &others[i]
		if k.Index%ringLen < t {
			prev = k
		} else if k.Index%ringLen > t && next == nil {
			next = k
		}
	}
	if closed {
		if prev == nil {
			prev = &others[len(others)-1]
		}
		if next == nil {
			next = &others[0]
		}
	}
	return prev, next
}

// Reshape drags the knot target of c to the position to, stretching the
// curve between the knot and its neighbouring knots while leaving the rest
// of the curve untouched.
//
// The knot may only move horizontally while it stays more than KnotBufferX
// away from its neighbours, on its original side of each, and vertically
// while it keeps more than KnotBufferY of clearance from them: maxima stay
// above and minima stay below their neighbours. If only one axis is free, the
// movement is clamped to it. Reshape reports whether c changed.
func (g Geometry) Reshape(c *Curve, target Knot, to Point) bool {
	ring := ringOf(c.Pts, c.IsClosed)
	m := len(ring)
	if m < 2 || target.Index < 0 || target.Index >= len(c.Pts) {
		return false
	}
	t := target.Index % m
	prev, next := neighbours(c.Knots(), t, m, c.IsClosed)
	if c.IsClosed && prev == nil {
		return false
	}

	from := ring[t]
	xFree := g.xFree(from, to, prev) && g.xFree(from, to, next)
	yFree := g.yFree(target.Kind, to, prev) && g.yFree(target.Kind, to, next)
	switch {
	case !xFree && !yFree:
		return false
	case !xFree:
		to.X = from.X
	case !yFree:
		to.Y = from.Y
	}
	if to == from {
		return false
	}

	// Work on a copy of the ring rotated so that the previous knot comes
	// first; open curves are never rotated.
	rot := 0
	if c.IsClosed {
		rot = prev.Index % m
	}
	seq := append(slices.Clone(ring[rot:]), ring[:rot]...)
	pos := func(i int) int { return ((i%m)-rot+m)%m }

	aPos, bPos := -1, m
	if prev != nil {
		aPos = pos(prev.Index)
	}
	if next != nil {
		bPos = pos(next.Index)
		if bPos <= pos(t) {
			// With two knots on a closed curve, the next knot is the
			// previous one.
			bPos = m
		}
	}
	tPos := pos(t)

	leftStatic := seq[:aPos+1]
	leftStretch := seq[aPos+1 : tPos+1]
	rightStretch := seq[tPos+1 : bPos]
	rightStatic := seq[bPos:]

	if prev != nil {
		a := ring[prev.Index%m]
		StretchPoints(leftStretch, from.X-a.X, from.Y-a.Y, to.X-a.X, to.Y-a.Y, a)
	} else {
		Translate(to.Sub(from)).TransformPoints(leftStretch)
	}
	if next != nil {
		b := ring[next.Index%m]
		StretchPoints(rightStretch, from.X-b.X, from.Y-b.Y, to.X-b.X, to.Y-b.Y, b)
	} else {
		Translate(to.Sub(from)).TransformPoints(rightStretch)
	}
	leftStretch[len(leftStretch)-1] = to

	joined := slices.Concat(leftStatic, leftStretch, rightStretch, rightStatic)
	out := make([]Point, 0, len(c.Pts))
	out = append(out, joined[m-rot:]...)
	out = append(out, joined[:m-rot]...)
	if len(ring) < len(c.Pts) {
		out = append(out, out[0])
	}
	c.Pts = out
	g.Recalculate(c)
	return true
}

// xFree reports whether moving a knot from from to to keeps it on the same
// side of nb and more than KnotBufferX away from it.
func (g Geometry) xFree(from, to Point, nb *Knot) bool {
	if nb == nil {
		return true
	}
	before, after := from.X-nb.Point.X, to.X-nb.Point.X
	if (before >= 0) != (after >= 0) {
		return false
	}
	return after > g.KnotBufferX || after < -g.KnotBufferX
}

// yFree reports whether a knot of the given kind at to keeps its vertical
// relation to nb with KnotBufferY to spare.
func (g Geometry) yFree(kind KnotKind, to Point, nb *Knot) bool {
	if nb == nil {
		return true
	}
	above := (kind == KnotMaximum && nb.Kind != KnotMaximum) ||
		(kind == KnotEndpoint && nb.Kind == KnotMinimum)
	below := (kind == KnotMinimum && nb.Kind != KnotMinimum) ||
		(kind == KnotEndpoint && nb.Kind == KnotMaximum)
	switch {
	case above:
		return to.Y < nb.Point.Y-g.KnotBufferY
	case below:
		return to.Y > nb.Point.Y+g.KnotBufferY
	default:
		return true
	}
}
