package sketch

// Handle identifies one of the eight resize hotspots on the bounding box of
// the selected curve. Names refer to the screen, so "top" is the box's
// minimum y.
type Handle int

const (
	HandleNone Handle = iota
	HandleTopLeft
	HandleTop
	HandleTopRight
	HandleRight
	HandleBottomRight
	HandleBottom
	HandleBottomLeft
	HandleLeft
)

var handleNames = [...]string{
	HandleNone:        "none",
	HandleTopLeft:     "top-left",
	HandleTop:         "top",
	HandleTopRight:    "top-right",
	HandleRight:       "right",
	HandleBottomRight: "bottom-right",
	HandleBottom:      "bottom",
	HandleBottomLeft:  "bottom-left",
	HandleLeft:        "left",
}

func (h Handle) String() string {
	if h < 0 || int(h) >= len(handleNames) {
		return "Handle(?)"
	}
	return handleNames[h]
}

// xSide returns -1 for handles on the left edge, 1 for the right edge and 0
// otherwise.
func (h Handle) xSide() int {
	switch h {
	case HandleTopLeft, HandleLeft, HandleBottomLeft:
		return -1
	case HandleTopRight, HandleRight, HandleBottomRight:
		return 1
	default:
		return 0
	}
}

// ySide returns -1 for handles on the top edge, 1 for the bottom edge and 0
// otherwise.
func (h Handle) ySide() int {
	switch h {
	case HandleTopLeft, HandleTop, HandleTopRight:
		return -1
	case HandleBottomLeft, HandleBottom, HandleBottomRight:
		return 1
	default:
		return 0
	}
}

// Handles lists the resize handles in hit-testing order.
var Handles = [8]Handle{
	HandleTopLeft, HandleTop, HandleTopRight, HandleRight,
	HandleBottomRight, HandleBottom, HandleBottomLeft, HandleLeft,
}

// Position returns the hotspot of h on box. Corner handles sit exactly on
// the corners; edge handles sit off the edge midpoints by offset.
func (h Handle) Position(box Rect, offset float64) Point {
	c := box.Center()
	x := [3]float64{box.X0, c.X, box.X1}[h.xSide()+1]
	y := [3]float64{box.Y0, c.Y, box.Y1}[h.ySide()+1]
	if h.xSide() == 0 {
		y += float64(h.ySide()) * offset
	}
	if h.ySide() == 0 {
		x += float64(h.xSide()) * offset
	}
	return Pt(x, y)
}

// RotateHandles returns the four rotate hotspots of box, each offset
// diagonally outwards from a corner.
func RotateHandles(box Rect, offset float64) [4]Point {
	return [4]Point{
		Pt(box.X0-offset, box.Y0-offset),
		Pt(box.X1+offset, box.Y0-offset),
		Pt(box.X1+offset, box.Y1+offset),
		Pt(box.X0-offset, box.Y1+offset),
	}
}
