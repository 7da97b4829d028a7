package sketch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// testGeometry returns the geometry of a 600×400 canvas, whose origin is at
// (300, 200) and whose plot spans x ∈ [100, 500], y ∈ [0, 400].
func testGeometry() Geometry {
	cfg := DefaultConfig()
	return cfg.Geometry(cfg.Canvas(600, 400))
}

// parabola returns n+1 samples of a downward-opening parabola (on screen)
// from (x0, base) to (x1, base) with its apex at height top.
func parabola(x0, x1, base, top float64, n int) []Point {
	pts := make([]Point, n+1)
	mid := (x0 + x1) / 2
	half := (x1 - x0) / 2
	for i := range pts {
		x := x0 + (x1-x0)*float64(i)/float64(n)
		u := (x - mid) / half
		pts[i] = Pt(x, top+(base-top)*u*u)
	}
	return pts
}
