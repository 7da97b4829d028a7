package sketch

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"
)

// State is the curve set in pixel space, as edited live.
type State struct {
	CanvasWidth  float64
	CanvasHeight float64
	Curves       []*Curve
}

// ExchangePoint is a point in Cartesian space, encoded as [x, y].
type ExchangePoint [2]float64

// ExchangeCurve is the resolution independent form of a [Curve]. Unlike
// pixel space, y grows upwards, so MinY is the lowest point on screen.
type ExchangeCurve struct {
	Pts      []ExchangePoint `json:"pts"`
	MinX     float64         `json:"minX"`
	MaxX     float64         `json:"maxX"`
	MinY     float64         `json:"minY"`
	MaxY     float64         `json:"maxY"`
	InterX   []ExchangePoint `json:"interX"`
	InterY   []ExchangePoint `json:"interY"`
	Maxima   []ExchangePoint `json:"maxima"`
	Minima   []ExchangePoint `json:"minima"`
	ColorIdx int             `json:"colorIdx"`
	IsClosed bool            `json:"isClosed"`
}

// Exchange is the resolution independent form of a [State], used for
// storage and transmission. Coordinates are normalized so that one unit is
// one axis length, centred on the plot's origin.
type Exchange struct {
	CanvasWidth  float64         `json:"canvasWidth"`
	CanvasHeight float64         `json:"canvasHeight"`
	Curves       []ExchangeCurve `json:"curves"`
}

// Codec converts between pixel space and exchange space for one canvas.
type Codec struct {
	Canvas CanvasProperties
	Geometry
}

// Codec returns the codec for canvas cp.
func (cfg Config) Codec(cp CanvasProperties) Codec {
	return Codec{Canvas: cp, Geometry: cfg.Geometry(cp)}
}

// Encode converts s to exchange space, truncating coordinates to
// ExportPrecision decimal places. Curves are ordered by colour index; curves
// of the same colour keep their order.
//
// Encode returns an [*InvalidCanvasError] and no value if the canvas is
// invalid.
func (cd Codec) Encode(s *State) (*Exchange, error) {
	if err := cd.Canvas.Validate(); err != nil {
		return nil, errors.Wrap(err, "encoding curve set")
	}
	if s == nil {
		return nil, errors.Wrap(ErrNoState, "encoding curve set")
	}
	curves := slices.Clone(s.Curves)
	slices.SortStableFunc(curves, func(a, b *Curve) int {
		return cmp.Compare(a.ColorIdx, b.ColorIdx)
	})

	ex := &Exchange{
		CanvasWidth:  cd.Canvas.Size.Width,
		CanvasHeight: cd.Canvas.Size.Height,
		Curves:       make([]ExchangeCurve, 0, len(curves)),
	}
	for _, c := range curves {
		ex.Curves = append(ex.Curves, ExchangeCurve{
			Pts:      cd.encodePoints(c.Pts),
			MinX:     cd.encodeCoord(c.Box.X0, AxisX),
			MaxX:     cd.encodeCoord(c.Box.X1, AxisX),
			MinY:     cd.encodeCoord(c.Box.Y1, AxisY),
			MaxY:     cd.encodeCoord(c.Box.Y0, AxisY),
			InterX:   cd.encodePoints(c.InterX),
			InterY:   cd.encodePoints(c.InterY),
			Maxima:   cd.encodePoints(c.Maxima),
			Minima:   cd.encodePoints(c.Minima),
			ColorIdx: c.ColorIdx,
			IsClosed: c.IsClosed,
		})
	}
	return ex, nil
}

func (cd Codec) encodeCoord(v float64, axis Axis) float64 {
	return truncate(cd.Canvas.normalize(v, axis), cd.ExportPrecision)
}

func (cd Codec) encodePoints(pts []Point) []ExchangePoint {
	out := make([]ExchangePoint, len(pts))
	for i, pt := range pts {
		p := cd.Canvas.normalizePoint(pt).Trunc(cd.ExportPrecision)
		out[i] = ExchangePoint{p.X, p.Y}
	}
	return out
}

// Decode converts ex to pixel space on the codec's canvas. Endpoints, which
// are not part of the exchange format, are recomputed; all other features
// are taken from ex.
func (cd Codec) Decode(ex *Exchange) (*State, error) {
	if err := cd.Canvas.Validate(); err != nil {
		return nil, errors.Wrap(err, "decoding curve set")
	}
	if ex == nil {
		return nil, errors.Wrap(ErrNoState, "decoding curve set")
	}
	if len(ex.Curves) > cd.CurveLimit {
		return nil, errors.Errorf("decoding curve set: %d curves exceed the limit of %d", len(ex.Curves), cd.CurveLimit)
	}
	s := &State{
		CanvasWidth:  cd.Canvas.Size.Width,
		CanvasHeight: cd.Canvas.Size.Height,
	}
	for _, ec := range ex.Curves {
		c := &Curve{
			Pts: cd.decodePoints(ec.Pts),
			Box: Rect{
				X0: cd.Canvas.denormalize(ec.MinX, AxisX),
				Y0: cd.Canvas.denormalize(ec.MaxY, AxisY),
				X1: cd.Canvas.denormalize(ec.MaxX, AxisX),
				Y1: cd.Canvas.denormalize(ec.MinY, AxisY),
			},
			InterX:   cd.decodePoints(ec.InterX),
			InterY:   cd.decodePoints(ec.InterY),
			Maxima:   cd.decodePoints(ec.Maxima),
			Minima:   cd.decodePoints(ec.Minima),
			IsClosed: ec.IsClosed,
			ColorIdx: ec.ColorIdx,
		}
		c.EndPts = cd.EndPoints(c.Pts, c.IsClosed)
		s.Curves = append(s.Curves, c)
	}
	return s, nil
}

func (cd Codec) decodePoints(pts []ExchangePoint) []Point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = cd.Canvas.denormalizePoint(Pt(p[0], p[1]))
	}
	return out
}
