package sketch

import (
	"math"
	"slices"
)

// LineType selects how a stroke is turned into a curve.
type LineType int

const (
	// Bezier fits one Bézier curve through the thinned stroke.
	Bezier LineType = iota
	// Linear draws a straight line between the stroke's endpoints.
	Linear
)

func (lt LineType) String() string {
	switch lt {
	case Bezier:
		return "bezier"
	case Linear:
		return "linear"
	default:
		return "LineType(?)"
	}
}

// ParseLineType parses the names produced by [LineType.String].
func ParseLineType(s string) (LineType, bool) {
	switch s {
	case "bezier", "BEZIER":
		return Bezier, true
	case "linear", "LINEAR":
		return Linear, true
	default:
		return 0, false
	}
}

// CurveID identifies a curve for as long as it exists, independently of its
// position in the curve set. The zero value means "no curve".
type CurveID uint64

// Curve is a sampled, mostly function-like curve on the plot, in pixel
// space, together with its derived features.
//
// Pts must not be modified without recalculating the features, see
// [Geometry.Recalculate].
type Curve struct {
	ID  CurveID
	Pts []Point
	// Box is the bounding box of Pts.
	Box Rect
	// InterX are the crossings of the horizontal axis, InterY those of the
	// vertical axis.
	InterX []Point
	InterY []Point
	// Maxima and Minima are the turning points in traversal order. A
	// maximum is higher on screen, i.e. has a smaller pixel y, than its
	// surroundings.
	Maxima []Point
	Minima []Point
	// EndPts holds the first and last sample and the ends of disconnected
	// branches. Closed curves have none.
	EndPts   []Point
	IsClosed bool
	ColorIdx int
	LineType LineType
}

// Clone returns a deep copy of c.
func (c *Curve) Clone() *Curve {
	out := *c
	out.Pts = slices.Clone(c.Pts)
	out.InterX = slices.Clone(c.InterX)
	out.InterY = slices.Clone(c.InterY)
	out.Maxima = slices.Clone(c.Maxima)
	out.Minima = slices.Clone(c.Minima)
	out.EndPts = slices.Clone(c.EndPts)
	return &out
}

// InsideFraction returns the fraction of samples that lie within area.
func (c *Curve) InsideFraction(area Rect) float64 {
	if len(c.Pts) == 0 {
		return 0
	}
	var n int
	for _, pt := range c.Pts {
		if area.Contains(pt) {
			n++
		}
	}
	return float64(n) / float64(len(c.Pts))
}

// NearestSample returns the distance from pt to the closest sample of c, or
// +Inf if c has no samples.
func (c *Curve) NearestSample(pt Point) float64 {
	best := math.Inf(1)
	for _, s := range c.Pts {
		best = min(best, s.DistanceSquared(pt))
	}
	return math.Sqrt(best)
}

func cloneCurves(cs []*Curve) []*Curve {
	out := make([]*Curve, len(cs))
	for i, c := range cs {
		out[i] = c.Clone()
	}
	return out
}
