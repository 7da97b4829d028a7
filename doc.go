// Package sketch implements the interaction engine of a function sketching
// tool: users draw a handful of curves on a square Cartesian plot with a
// pointer, then move, stretch, rotate and reshape them. Each curve carries a
// set of derived features (axis intercepts, turning points and endpoints)
// that are kept consistent with its samples after every edit.
//
// # Coordinate spaces
//
// Curves are edited in pixel space, where y grows downwards and the origin
// is the top-left corner of the canvas. The plot is the largest square
// centred on the canvas; its side is the axis length. Curve sets are
// exchanged in Cartesian space, where y grows upwards, the origin is the
// centre of the plot and one unit is one axis length. See
// [CanvasProperties] and [Codec].
//
// # Gestures
//
// An [Engine] receives pointer events through [Engine.Press],
// [Engine.Drag] and [Engine.Release]. A press is classified, see
// [Config.Classify], into one of the [Action] variants: stretching the
// selected curve by a handle of its bounding box, rotating it, dragging a
// single knot, moving a curve or drawing a new one. Every gesture that
// changes the curve set becomes one undoable step.
//
// # Geometry
//
// The geometric building blocks, [Point], [Vec2], [Rect], [Affine] and
// [Line], are small value types. [Geometry] computes curve features;
// [Geometry.FitStroke] turns a raw stroke into a sampled Bézier curve or
// line, and [Geometry.Reshape] drags a knot while stretching the adjacent
// parts of the curve.
package sketch
