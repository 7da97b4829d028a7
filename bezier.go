package sketch

import (
	"math"
)

// bernstein evaluates the i-th Bernstein basis polynomial of degree n at u,
// given the binomial coefficient c = n choose i.
func bernstein(n, i int, c, u float64) float64 {
	return c * math.Pow(1.0-u, float64(n-i)) * math.Pow(u, float64(i))
}

// binomials returns the binomial coefficients n choose 0 through n choose n.
//
// The coefficients are computed in floating point so that curves with many
// control points don't overflow, at the cost of exactness beyond 2⁵³.
func binomials(n int) []float64 {
	out := make([]float64, n+1)
	out[0] = 1
	for k := 1; k <= n; k++ {
		out[k] = out[k-1] * float64(n-k+1) / float64(k)
	}
	return out
}

// EvalBezier evaluates the Bézier curve with the given control points at
// t ∈ [0, 1]. The curve's degree is len(ctrl)-1.
func EvalBezier(ctrl []Point, t float64) Point {
	n := len(ctrl) - 1
	return evalBezier(ctrl, binomials(n), t)
}

func evalBezier(ctrl []Point, comb []float64, t float64) Point {
	n := len(ctrl) - 1
	var x, y float64
	for i, p := range ctrl {
		b := bernstein(n, i, comb[i], t)
		x += b * p.X
		y += b * p.Y
	}
	return Pt(x, y)
}
