// Package svgdraw renders the curves of a sketch engine as SVG.
//
// A [Renderer] is plugged into an engine as its draw callback and keeps the
// most recent frame, which can then be written out at any time.
package svgdraw

import (
	"fmt"
	"io"
	"math"
	"slices"

	svg "github.com/ajstarks/svgo"
	"honnef.co/go/sketch"
)

// DefaultPalette maps the default colour names to SVG colours.
var DefaultPalette = map[string]string{
	"Blue":   "#1f77b4",
	"Orange": "#ff7f0e",
	"Green":  "#2ca02c",
}

// Renderer draws frames onto an SVG document.
type Renderer struct {
	cfg    sketch.Config
	canvas sketch.CanvasProperties

	// Palette maps colour names from the configuration to SVG colours.
	// Names without an entry are drawn in black.
	Palette map[string]string

	curves   []*sketch.Curve
	selected int
	hidden   []int
}

// New returns a renderer for canvas cp.
func New(cfg sketch.Config, cp sketch.CanvasProperties) *Renderer {
	return &Renderer{cfg: cfg, canvas: cp, Palette: DefaultPalette, selected: -1}
}

// SetCanvas changes the canvas frames are drawn on.
func (r *Renderer) SetCanvas(cp sketch.CanvasProperties) { r.canvas = cp }

// Draw records a frame. It has the signature of [sketch.DrawFunc].
func (r *Renderer) Draw(curves []*sketch.Curve, selected int, hidden []int) {
	r.curves = r.curves[:0]
	for _, c := range curves {
		r.curves = append(r.curves, c.Clone())
	}
	r.selected = selected
	r.hidden = append(r.hidden[:0], hidden...)
}

func (r *Renderer) color(idx int) string {
	if idx < 0 || idx >= len(r.cfg.Colors) {
		return "black"
	}
	if c, ok := r.Palette[r.cfg.Colors[idx]]; ok {
		return c
	}
	return "black"
}

func px(v float64) int { return int(math.Round(v)) }

// WriteTo writes the last recorded frame as a complete SVG document.
func (r *Renderer) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	s := svg.New(cw)
	s.Start(px(r.canvas.Size.Width), px(r.canvas.Size.Height))
	s.Rect(0, 0, px(r.canvas.Size.Width), px(r.canvas.Size.Height), "fill:#ffffff")
	r.axes(s)
	for i, c := range r.curves {
		r.curve(s, c)
		if i == r.selected {
			r.selection(s, c)
		}
	}
	s.End()
	return cw.n, cw.err
}

func (r *Renderer) axes(s *svg.SVG) {
	ps, pe, o := r.canvas.PlotStart, r.canvas.PlotEnd, r.canvas.Center
	s.Gstyle("stroke:#999999;stroke-width:1")
	s.Line(px(ps.X), px(o.Y), px(pe.X), px(o.Y))
	s.Line(px(o.X), px(ps.Y), px(o.X), px(pe.Y))
	s.Gend()
}

func (r *Renderer) curve(s *svg.SVG, c *sketch.Curve) {
	xs := make([]int, len(c.Pts))
	ys := make([]int, len(c.Pts))
	for i, pt := range c.Pts {
		xs[i], ys[i] = px(pt.X), px(pt.Y)
	}
	s.Polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:3", r.color(c.ColorIdx)))
}

func (r *Renderer) selection(s *svg.SVG, c *sketch.Curve) {
	b := c.Box
	s.Rect(px(b.X0), px(b.Y0), px(b.Width()), px(b.Height()),
		"fill:none;stroke:#666666;stroke-dasharray:4,4")

	s.Gstyle("fill:#ffffff;stroke:#666666")
	for _, h := range sketch.Handles {
		p := h.Position(b, r.cfg.HandleOffset)
		s.Rect(px(p.X)-3, px(p.Y)-3, 6, 6)
	}
	for _, p := range sketch.RotateHandles(b, r.cfg.RotateHandleOffset) {
		s.Circle(px(p.X), px(p.Y), 4)
	}
	s.Gend()

	s.Gstyle(fmt.Sprintf("fill:%s", r.color(c.ColorIdx)))
	for _, k := range c.Knots() {
		if slices.Contains(r.hidden, k.Index) {
			continue
		}
		s.Circle(px(k.Point.X), px(k.Point.Y), 5)
	}
	s.Gend()
}

type countWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countWriter) Write(b []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(b)
	cw.n += int64(n)
	cw.err = err
	return n, err
}
