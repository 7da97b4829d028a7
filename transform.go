package sketch

// Translate moves c by d. Samples, turning points and the bounding box are
// shifted; intercepts and endpoints are recomputed, as crossings depend on
// absolute position.
func (g Geometry) Translate(c *Curve, d Vec2) {
	aff := Translate(d)
	aff.TransformPoints(c.Pts)
	aff.TransformPoints(c.Maxima)
	aff.TransformPoints(c.Minima)
	c.Box = c.Box.Translate(d)
	c.InterX = g.InterceptsX(c.Pts, c.IsClosed)
	c.InterY = g.InterceptsY(c.Pts, c.IsClosed)
	c.EndPts = g.EndPoints(c.Pts, c.IsClosed)
}

// Rotate rotates c by th radians about center. On the y-down plot a
// positive angle turns clockwise.
func (g Geometry) Rotate(c *Curve, th float64, center Point) {
	RotateAbout(th, center).TransformPoints(c.Pts)
	g.Recalculate(c)
}

// Stretch scales every sample's offset from base by newRangeX/oldRangeX
// horizontally and newRangeY/oldRangeY vertically.
func (g Geometry) Stretch(c *Curve, oldRangeX, oldRangeY, newRangeX, newRangeY float64, base Point) {
	StretchPoints(c.Pts, oldRangeX, oldRangeY, newRangeX, newRangeY, base)
	g.Recalculate(c)
}

// StretchPoints is like [Geometry.Stretch] but operates on a bare slice of
// points, in place. An axis with a zero old range is left alone.
func StretchPoints(pts []Point, oldRangeX, oldRangeY, newRangeX, newRangeY float64, base Point) {
	sx, sy := 1.0, 1.0
	if oldRangeX != 0 {
		sx = newRangeX / oldRangeX
	}
	if oldRangeY != 0 {
		sy = newRangeY / oldRangeY
	}
	ScaleAbout(sx, sy, base).TransformPoints(pts)
}

// StretchHandle stretches c as if handle h of its bounding box had been
// dragged by d, keeping the opposite side fixed. An axis whose new range
// would fall below MinStretchRange is left unchanged. It reports whether c
// changed.
func (g Geometry) StretchHandle(c *Curve, h Handle, d Vec2) bool {
	box := c.Box
	w, hgt := box.Width(), box.Height()
	newW, newH := w, hgt
	base := box.Center()

	switch h.xSide() {
	case -1:
		newW, base.X = w-d.X, box.X1
	case 1:
		newW, base.X = w+d.X, box.X0
	}
	switch h.ySide() {
	case -1:
		newH, base.Y = hgt-d.Y, box.Y1
	case 1:
		newH, base.Y = hgt+d.Y, box.Y0
	}
	if newW < g.MinStretchRange {
		newW = w
	}
	if newH < g.MinStretchRange {
		newH = hgt
	}
	if newW == w && newH == hgt {
		return false
	}
	g.Stretch(c, w, hgt, newW, newH, base)
	return true
}
