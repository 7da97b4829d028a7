package sketch

import (
	"fmt"
	"math"
)

// Point is a position on the plot. Unless stated otherwise, points are in
// device pixels, with y growing downwards.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Coord returns the point's coordinate along axis.
func (pt Point) Coord(axis Axis) float64 {
	if axis == AxisY {
		return pt.Y
	}
	return pt.X
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// Trunc returns a new point with x and y truncated to the given number of
// decimal places.
func (pt Point) Trunc(places int) Point {
	return Point{
		X: truncate(pt.X, places),
		Y: truncate(pt.Y, places),
	}
}

func truncate(v float64, places int) float64 {
	f := math.Pow(10, float64(places))
	return math.Trunc(v*f) / f
}
