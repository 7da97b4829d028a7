package sketch

import (
	"testing"
)

func reshapeCurve(g Geometry) *Curve {
	c := &Curve{Pts: parabola(100, 300, 300, 100, 100)}
	g.Recalculate(c)
	return c
}

func TestReshapeMaximum(t *testing.T) {
	g := testGeometry()
	c := reshapeCurve(g)
	apex := Knot{Index: 50, Kind: KnotMaximum, Point: Pt(200, 100)}

	if !g.Reshape(c, apex, Pt(200, 80)) {
		t.Fatal("curve didn't change")
	}
	diff(t, Pt(200, 80), c.Pts[50])
	diff(t, Pt(100, 300), c.Pts[0])
	diff(t, Pt(300, 300), c.Pts[100])
	diff(t, []Point{Pt(200, 80)}, c.Maxima)
	if len(c.Pts) != 101 {
		t.Errorf("got %d samples, want 101", len(c.Pts))
	}
	// Samples between the knots are stretched vertically away from the
	// anchoring endpoint.
	assertNear(t, c.Pts[25], Pt(150, 300-150*1.1), 1e-9)
}

func TestReshapeClamp(t *testing.T) {
	g := testGeometry()
	apex := Knot{Index: 50, Kind: KnotMaximum, Point: Pt(200, 100)}

	// A maximum can't drop to its neighbours' height, so only the
	// horizontal component of the move remains.
	c := reshapeCurve(g)
	if !g.Reshape(c, apex, Pt(210, 290)) {
		t.Fatal("curve didn't change")
	}
	diff(t, Pt(210, 100), c.Pts[50])

	// Nothing remains of a purely vertical move.
	c = reshapeCurve(g)
	if g.Reshape(c, apex, Pt(200, 290)) {
		t.Error("curve shouldn't have changed")
	}
	diff(t, reshapeCurve(g), c)

	// Crossing the neighbouring endpoint horizontally isn't allowed either.
	c = reshapeCurve(g)
	g.Reshape(c, apex, Pt(80, 50))
	diff(t, Pt(200, 50), c.Pts[50])
}

func TestReshapeEndpoint(t *testing.T) {
	g := testGeometry()
	c := reshapeCurve(g)
	end := Knot{Index: 0, Kind: KnotEndpoint, Point: Pt(100, 300)}

	if !g.Reshape(c, end, Pt(90, 310)) {
		t.Fatal("curve didn't change")
	}
	diff(t, Pt(90, 310), c.Pts[0])
	diff(t, Pt(200, 100), c.Pts[50])
	diff(t, Pt(300, 300), c.Pts[100])
	diff(t, []Point{Pt(90, 310), Pt(300, 300)}, c.EndPts)
}

func TestReshapeClosed(t *testing.T) {
	g := testGeometry()
	c := &Curve{Pts: circle(Pt(300, 200), 100, 40), IsClosed: true}
	g.Recalculate(c)
	knots := c.Knots()
	if len(knots) != 2 {
		t.Fatalf("got knots %v, want two", knots)
	}
	top := knots[1]
	if top.Kind != KnotMaximum || top.Index != 30 {
		t.Fatalf("got %+v, want the maximum at sample 30", top)
	}

	to := top.Point.Translate(Vec(0, -40))
	if !g.Reshape(c, top, to) {
		t.Fatal("curve didn't change")
	}
	diff(t, to, c.Pts[30])
	diff(t, c.Pts[0], c.Pts[len(c.Pts)-1])
	if len(c.Pts) != 41 {
		t.Errorf("got %d samples, want 41", len(c.Pts))
	}
	// The bottom of the circle is the anchor and doesn't move.
	diff(t, knots[0].Point, c.Pts[10])
	if got := c.Box.MinY(); got != to.Y {
		t.Errorf("got top %v, want %v", got, to.Y)
	}
}
