package sketch

// ActionKind names the gesture being performed.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionStretchCurve
	ActionStretchPoint
	ActionMoveCurve
	ActionDrawCurve
	ActionRotateCurve
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "NO_ACTION"
	case ActionStretchCurve:
		return "STRETCH_CURVE"
	case ActionStretchPoint:
		return "STRETCH_POINT"
	case ActionMoveCurve:
		return "MOVE_CURVE"
	case ActionDrawCurve:
		return "DRAW_CURVE"
	case ActionRotateCurve:
		return "ROTATE_CURVE"
	default:
		return "ActionKind(?)"
	}
}

// Action is the gesture started by a press. It is one of *NoAction,
// *StretchCurve, *StretchPoint, *MoveCurve, *DrawCurve and *RotateCurve.
type Action interface {
	Kind() ActionKind
}

// NoAction is a press that hit nothing editable.
type NoAction struct{}

// StretchCurve resizes a curve by one of its bounding box handles.
type StretchCurve struct {
	Curve  CurveID
	Handle Handle
}

// StretchPoint reshapes a curve by dragging one of its knots.
type StretchPoint struct {
	Curve CurveID
	Knot  Knot
}

// MoveCurve translates a curve.
type MoveCurve struct {
	Curve CurveID
}

// DrawCurve collects a new stroke.
type DrawCurve struct {
	Raw []Point
}

// RotateCurve rotates a curve about the centre its bounding box had when the
// gesture started.
type RotateCurve struct {
	Curve  CurveID
	Center Point
}

func (*NoAction) Kind() ActionKind     { return ActionNone }
func (*StretchCurve) Kind() ActionKind { return ActionStretchCurve }
func (*StretchPoint) Kind() ActionKind { return ActionStretchPoint }
func (*MoveCurve) Kind() ActionKind    { return ActionMoveCurve }
func (*DrawCurve) Kind() ActionKind    { return ActionDrawCurve }
func (*RotateCurve) Kind() ActionKind  { return ActionRotateCurve }

// Mutating reports whether a starts an edit of the curve set.
func Mutating(a Action) bool {
	return a != nil && a.Kind() != ActionNone
}

// Classify returns the action that a press at pt starts, given the current
// curves, the selected curve (0 for none) and the plot area. It does not
// modify its arguments.
//
// The tests are, in order: a resize handle of the selected curve, a rotate
// handle of the selected curve, a knot of any curve, a sample of any curve,
// and finally empty space inside the plot, which starts a new curve if the
// curve limit allows it.
func (cfg Config) Classify(curves []*Curve, selected CurveID, plot Rect, pt Point) Action {
	if c := findCurve(curves, selected); c != nil {
		for _, h := range Handles {
			if h.Position(c.Box, cfg.HandleOffset).Distance(pt) < cfg.DetectionRadius {
				return &StretchCurve{Curve: c.ID, Handle: h}
			}
		}
		for _, rh := range RotateHandles(c.Box, cfg.RotateHandleOffset) {
			if rh.Distance(pt) < cfg.DetectionRadius {
				return &RotateCurve{Curve: c.ID, Center: c.Box.Center()}
			}
		}
	}

	var (
		knotCurve *Curve
		knot      Knot
		best      = cfg.KnotRadius()
	)
	for _, c := range curves {
		for _, k := range c.Knots() {
			if d := k.Point.Distance(pt); d < best {
				knotCurve, knot, best = c, k, d
			}
		}
	}
	if knotCurve != nil {
		return &StretchPoint{Curve: knotCurve.ID, Knot: knot}
	}

	var moveCurve *Curve
	best = cfg.SampleRadius()
	for _, c := range curves {
		if d := c.NearestSample(pt); d < best {
			moveCurve, best = c, d
		}
	}
	if moveCurve != nil {
		return &MoveCurve{Curve: moveCurve.ID}
	}

	if plot.Contains(pt) && len(curves) < cfg.CurveLimit {
		return &DrawCurve{Raw: []Point{pt}}
	}
	return &NoAction{}
}

func findCurve(curves []*Curve, id CurveID) *Curve {
	if id == 0 {
		return nil
	}
	for _, c := range curves {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func curveIndex(curves []*Curve, id CurveID) int {
	if id == 0 {
		return -1
	}
	for i, c := range curves {
		if c.ID == id {
			return i
		}
	}
	return -1
}
