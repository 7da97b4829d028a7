package sketch

// Axis selects one of the two coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// DefaultMaxCanvas is the largest canvas side accepted by [NewCanvas].
const DefaultMaxCanvas = 5000

// CanvasProperties describes the pixel geometry of the plot. The plot is the
// largest square centred on the canvas; its side is the axis length, and one
// axis length corresponds to one unit in Cartesian space.
type CanvasProperties struct {
	Size       Size
	AxisLength float64
	// Center is the pixel position of the Cartesian origin.
	Center Point
	// PlotStart and PlotEnd are the top-left and bottom-right corners of the
	// drawable square.
	PlotStart Point
	PlotEnd   Point
	// MaxSide is the largest valid width or height.
	MaxSide float64
}

// NewCanvas returns the properties of a width×height canvas. It does not
// validate the dimensions; see [CanvasProperties.Validate].
func NewCanvas(width, height float64) CanvasProperties {
	return newCanvas(width, height, DefaultMaxCanvas)
}

func newCanvas(width, height, maxSide float64) CanvasProperties {
	sz := Sz(width, height)
	l := sz.MinSide()
	c := Pt(width/2, height/2)
	return CanvasProperties{
		Size:       sz,
		AxisLength: l,
		Center:     c,
		PlotStart:  Pt(c.X-l/2, c.Y-l/2),
		PlotEnd:    Pt(c.X+l/2, c.Y+l/2),
		MaxSide:    maxSide,
	}
}

// Canvas returns the properties of a width×height canvas, limited by
// cfg.MaxCanvas.
func (cfg Config) Canvas(width, height float64) CanvasProperties {
	return newCanvas(width, height, cfg.MaxCanvas)
}

// Validate returns an [*InvalidCanvasError] if either side is not positive
// or exceeds the maximum side.
func (cp CanvasProperties) Validate() error {
	w, h := cp.Size.Width, cp.Size.Height
	if w <= 0 || h <= 0 || w > cp.MaxSide || h > cp.MaxSide {
		return &InvalidCanvasError{Width: w, Height: h, Max: cp.MaxSide}
	}
	return nil
}

// PlotArea returns the drawable square.
func (cp CanvasProperties) PlotArea() Rect {
	return NewRectFromPoints(cp.PlotStart, cp.PlotEnd)
}

// Normalize converts the pixel coordinate v on the given axis to Cartesian
// space, where y grows upwards and one unit is one axis length.
func (cp CanvasProperties) Normalize(v float64, axis Axis) (float64, error) {
	if err := cp.Validate(); err != nil {
		return 0, err
	}
	return cp.normalize(v, axis), nil
}

// Denormalize is the inverse of [CanvasProperties.Normalize].
func (cp CanvasProperties) Denormalize(v float64, axis Axis) (float64, error) {
	if err := cp.Validate(); err != nil {
		return 0, err
	}
	return cp.denormalize(v, axis), nil
}

func (cp CanvasProperties) normalize(v float64, axis Axis) float64 {
	if axis == AxisY {
		return (cp.Center.Y - v) / cp.AxisLength
	}
	return (v - cp.Center.X) / cp.AxisLength
}

func (cp CanvasProperties) denormalize(v float64, axis Axis) float64 {
	if axis == AxisY {
		return cp.Center.Y - v*cp.AxisLength
	}
	return v*cp.AxisLength + cp.Center.X
}

func (cp CanvasProperties) normalizePoint(pt Point) Point {
	return Pt(cp.normalize(pt.X, AxisX), cp.normalize(pt.Y, AxisY))
}

func (cp CanvasProperties) denormalizePoint(pt Point) Point {
	return Pt(cp.denormalize(pt.X, AxisX), cp.denormalize(pt.Y, AxisY))
}

// ToCartesian returns the transform from pixel to Cartesian space.
func (cp CanvasProperties) ToCartesian() Affine {
	s := 1 / cp.AxisLength
	return FlipY.Mul(Translate(Vec2(cp.Center).Negate()).ThenScale(s, s))
}

// Reproject returns the pixel-to-pixel transform that keeps Cartesian
// positions fixed when moving from canvas cp to canvas to.
func (cp CanvasProperties) Reproject(to CanvasProperties) Affine {
	return to.ToCartesian().Invert().Mul(cp.ToCartesian())
}
