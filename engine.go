package sketch

import (
	"slices"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// DrawFunc renders the curve set. selected is the index of the selected
// curve or -1; hidden lists sample indices of knots of the selected curve
// that should not be drawn, such as the one being dragged.
type DrawFunc func(curves []*Curve, selected int, hidden []int)

// Key is a keyboard command understood by the engine.
type Key int

const (
	KeyDelete Key = iota + 1
	KeyBackspace
	KeyEscape
	KeyUndo
	KeyRedo
)

// Options configures an [Engine]. All fields are optional.
type Options struct {
	// Config defaults to DefaultConfig() if its CurveLimit is zero.
	Config Config
	// Logger defaults to a logger that discards everything.
	Logger hclog.Logger
	// Draw is called after every change that affects what is on screen.
	Draw DrawFunc
	// OnChange receives an exchange snapshot after every committed edit
	// that changed the curve set.
	OnChange func(*Exchange)
	// InTrash reports whether a point lies on the host's trash area.
	// Curves released there while being moved are deleted.
	InTrash func(Point) bool
}

// Engine interprets pointer gestures on a plot and edits a small set of
// curves accordingly. Engines are not safe for concurrent use; all events
// must be delivered from one goroutine, in order.
type Engine struct {
	cfg      Config
	log      hclog.Logger
	draw     DrawFunc
	onChange func(*Exchange)
	inTrash  func(Point) bool

	canvas CanvasProperties
	geom   Geometry

	curves   []*Curve
	selected CurveID
	nextID   CurveID

	action  Action
	last    Point
	pending *Checkpoint
	// doomed is set while the curve being edited has too few samples
	// inside the plot to survive the gesture.
	doomed bool

	history  History
	lineType LineType
	colorIdx int
	emitted  *Exchange
}

// New returns an engine for a width×height canvas.
func New(width, height float64, opts Options) (*Engine, error) {
	cfg := opts.Config
	if cfg.CurveLimit == 0 {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	cfg.Colors = slices.Clone(cfg.Colors)

	cp := cfg.Canvas(width, height)
	if err := cp.Validate(); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Engine{
		cfg:      cfg,
		log:      log,
		draw:     opts.Draw,
		onChange: opts.OnChange,
		inTrash:  opts.InTrash,
		canvas:   cp,
		geom:     cfg.Geometry(cp),
		action:   &NoAction{},
	}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Canvas returns the current canvas properties.
func (e *Engine) Canvas() CanvasProperties { return e.canvas }

// Action returns the gesture in progress.
func (e *Engine) Action() Action { return e.action }

// Curves returns the live curves. Callers must not modify them.
func (e *Engine) Curves() []*Curve { return e.curves }

// Selected returns the index of the selected curve.
func (e *Engine) Selected() (int, bool) {
	i := curveIndex(e.curves, e.selected)
	return i, i >= 0
}

func (e *Engine) IsUndoable() bool   { return e.history.CanUndo() }
func (e *Engine) IsRedoable() bool   { return e.history.CanRedo() }
func (e *Engine) HasSelection() bool { return findCurve(e.curves, e.selected) != nil }
func (e *Engine) HasCurves() bool    { return len(e.curves) > 0 }

// selectedCurve returns the selected curve, or ErrNoSelection.
func (e *Engine) selectedCurve() (*Curve, error) {
	c := findCurve(e.curves, e.selected)
	if c == nil {
		return nil, ErrNoSelection
	}
	return c, nil
}

// Hover returns the action a press at pt would start, without starting it.
func (e *Engine) Hover(pt Point) Action {
	if Mutating(e.action) {
		return e.action
	}
	return e.cfg.Classify(e.curves, e.selected, e.canvas.PlotArea(), pt)
}

// finish releases the gesture in progress, if any, at the last pointer
// position. Presses and commands arriving mid-gesture call it first, so the
// gesture is committed on its own.
func (e *Engine) finish() {
	if Mutating(e.action) {
		e.Release(e.last)
	}
}

// Press starts a gesture at pt.
func (e *Engine) Press(pt Point) {
	e.finish()
	act := e.cfg.Classify(e.curves, e.selected, e.canvas.PlotArea(), pt)
	e.log.Debug("press", "action", act.Kind(), "x", pt.X, "y", pt.Y)

	e.last = pt
	e.doomed = false
	if Mutating(act) {
		cp := e.checkpoint()
		e.pending = &cp
	}
	switch a := act.(type) {
	case *NoAction, *DrawCurve:
		e.selected = 0
	case *StretchPoint:
		e.selected = a.Curve
	case *MoveCurve:
		e.selected = a.Curve
	}
	e.action = act
	e.redraw()
}

// Drag continues the gesture in progress with the pointer at pt.
func (e *Engine) Drag(pt Point) {
	d := pt.Sub(e.last)
	prev := e.last
	e.last = pt

	var edited *Curve
	switch a := e.action.(type) {
	case *DrawCurve:
		if e.cfg.AllowMultiValued || pt.X > a.Raw[len(a.Raw)-1].X {
			a.Raw = append(a.Raw, pt)
		}
	case *MoveCurve:
		if c := findCurve(e.curves, a.Curve); c != nil {
			e.geom.Translate(c, d)
			edited = c
		}
	case *StretchCurve:
		if c := findCurve(e.curves, a.Curve); c != nil {
			e.geom.StretchHandle(c, a.Handle, d)
			edited = c
		}
	case *StretchPoint:
		if c := findCurve(e.curves, a.Curve); c != nil {
			e.geom.Reshape(c, a.Knot, pt)
			edited = c
		}
	case *RotateCurve:
		if c := findCurve(e.curves, a.Curve); c != nil {
			th := pt.Sub(a.Center).Angle() - prev.Sub(a.Center).Angle()
			e.geom.Rotate(c, th, a.Center)
			edited = c
		}
	default:
		return
	}
	if edited != nil {
		e.doomed = edited.InsideFraction(e.canvas.PlotArea()) < e.cfg.MinInside
	}
	e.redraw()
}

// Release finishes the gesture in progress with the pointer at pt.
func (e *Engine) Release(pt Point) {
	if pt != e.last {
		e.Drag(pt)
	}
	switch a := e.action.(type) {
	case *DrawCurve:
		e.finishDraw(a)
	case *MoveCurve:
		if e.inTrash != nil && e.inTrash(pt) {
			e.log.Debug("curve dropped on trash", "curve", a.Curve)
			e.doomed = true
		}
	}
	if e.doomed {
		if i := curveIndex(e.curves, e.selected); i >= 0 {
			e.log.Info("deleting curve", "curve", e.selected, "reason", "outside plot or trashed")
			e.curves = slices.Delete(e.curves, i, i+1)
			e.selected = 0
		}
	}
	e.commit()
	e.action = &NoAction{}
	e.doomed = false
	e.redraw()
}

func (e *Engine) finishDraw(a *DrawCurve) {
	if len(e.curves) >= e.cfg.CurveLimit {
		return
	}
	c, ok := e.geom.FitStroke(a.Raw, e.lineType)
	if !ok {
		e.log.Debug("rejected stroke", "points", len(a.Raw), "line_type", e.lineType)
		return
	}
	if c.InsideFraction(e.canvas.PlotArea()) < e.cfg.MinInside {
		e.log.Debug("rejected stroke outside plot", "points", len(a.Raw))
		return
	}
	e.nextID++
	c.ID = e.nextID
	c.ColorIdx = e.colorIdx
	e.curves = append(e.curves, c)
}

// commit records the pending checkpoint if the gesture changed the curve
// set, and discards it otherwise.
func (e *Engine) commit() {
	if e.pending == nil {
		return
	}
	cp := *e.pending
	e.pending = nil
	if curvesEqual(cp.Curves, e.curves) {
		return
	}
	e.history.Commit(cp)
	e.log.Info("committed edit", "curves", len(e.curves), "undo_depth", len(e.history.undo))
	e.emit()
}

func (e *Engine) checkpoint() Checkpoint {
	return newCheckpoint(e.curves, e.selected)
}

func (e *Engine) restore(cp Checkpoint) {
	e.curves = cloneCurves(cp.Curves)
	e.selected = 0
	e.action = &NoAction{}
	e.pending = nil
	e.doomed = false
}

// Undo reverts the most recent committed edit.
func (e *Engine) Undo() {
	e.finish()
	cp, err := e.history.Undo(e.checkpoint())
	if err != nil {
		e.log.Debug("undo ignored", "error", err)
		return
	}
	e.restore(cp)
	e.emit()
	e.redraw()
}

// Redo reapplies the most recently undone edit.
func (e *Engine) Redo() {
	e.finish()
	cp, err := e.history.Redo(e.checkpoint())
	if err != nil {
		e.log.Debug("redo ignored", "error", err)
		return
	}
	e.restore(cp)
	e.emit()
	e.redraw()
}

// edit runs fn as a complete edit: it takes a checkpoint, runs fn and
// commits.
func (e *Engine) edit(fn func()) {
	cp := e.checkpoint()
	e.pending = &cp
	fn()
	e.commit()
	e.redraw()
}

// DeleteSelected removes the selected curve.
func (e *Engine) DeleteSelected() {
	e.finish()
	if _, err := e.selectedCurve(); err != nil {
		e.log.Debug("delete ignored", "error", err)
		return
	}
	e.edit(func() {
		i := curveIndex(e.curves, e.selected)
		e.curves = slices.Delete(e.curves, i, i+1)
		e.selected = 0
	})
}

// DeleteAll removes every curve.
func (e *Engine) DeleteAll() {
	e.finish()
	if len(e.curves) == 0 {
		return
	}
	e.edit(func() {
		e.curves = nil
		e.selected = 0
	})
}

// Key handles a keyboard command.
func (e *Engine) Key(k Key) {
	switch k {
	case KeyDelete, KeyBackspace:
		e.DeleteSelected()
	case KeyEscape:
		e.finish()
		e.selected = 0
		e.redraw()
	case KeyUndo:
		e.Undo()
	case KeyRedo:
		e.Redo()
	}
}

// SetLineType selects how future strokes are fitted.
func (e *Engine) SetLineType(lt LineType) {
	e.lineType = lt
}

// LineType returns the line type used for future strokes.
func (e *Engine) LineType() LineType { return e.lineType }

// SetColor selects the palette colour for future curves and recolours the
// selected curve, if any.
func (e *Engine) SetColor(name string) error {
	idx, ok := e.cfg.ColorIndex(name)
	if !ok {
		return errors.Errorf("unknown colour %q", name)
	}
	e.colorIdx = idx
	e.finish()
	if c, err := e.selectedCurve(); err == nil {
		e.edit(func() { c.ColorIdx = idx })
	}
	return nil
}

// Resize moves the engine to a new canvas size. Curves, including those in
// the history, keep their Cartesian positions.
func (e *Engine) Resize(width, height float64) error {
	cp := e.cfg.Canvas(width, height)
	if err := cp.Validate(); err != nil {
		e.log.Warn("resize rejected", "error", err)
		return err
	}
	e.finish()
	aff := e.canvas.Reproject(cp)
	geom := e.cfg.Geometry(cp)
	reproject := func(c *Curve) {
		aff.TransformPoints(c.Pts)
		geom.Recalculate(c)
	}
	for _, c := range e.curves {
		reproject(c)
	}
	e.history.each(reproject)
	e.canvas, e.geom = cp, geom
	e.log.Info("resized canvas", "width", width, "height", height)
	e.redraw()
	return nil
}

// State returns a copy of the curve set in pixel space.
func (e *Engine) State() *State {
	return &State{
		CanvasWidth:  e.canvas.Size.Width,
		CanvasHeight: e.canvas.Size.Height,
		Curves:       cloneCurves(e.curves),
	}
}

// SetState replaces the curve set with ex, converted to pixel space for the
// current canvas. On error the engine is left unchanged.
func (e *Engine) SetState(ex *Exchange) error {
	s, err := e.cfg.Codec(e.canvas).Decode(ex)
	if err != nil {
		e.log.Warn("rejected state", "error", err)
		return err
	}
	e.finish()
	for _, c := range s.Curves {
		e.nextID++
		c.ID = e.nextID
	}
	e.curves = s.Curves
	e.selected = 0
	e.action = &NoAction{}
	e.pending = nil
	e.emitted, _ = e.Export()
	e.redraw()
	return nil
}

// Export returns the curve set in exchange format. It returns no value if
// the canvas is invalid.
func (e *Engine) Export() (*Exchange, error) {
	return e.cfg.Codec(e.canvas).Encode(&State{Curves: e.curves})
}

func (e *Engine) emit() {
	if e.onChange == nil {
		return
	}
	ex, err := e.Export()
	if err != nil {
		e.log.Warn("not emitting state", "error", err)
		return
	}
	if e.emitted != nil && cmp.Equal(e.emitted, ex, cmpopts.EquateEmpty()) {
		return
	}
	e.emitted = ex
	e.onChange(ex)
}

func (e *Engine) redraw() {
	if e.draw == nil {
		return
	}
	var hidden []int
	if a, ok := e.action.(*StretchPoint); ok {
		hidden = []int{a.Knot.Index}
	}
	i, _ := e.Selected()
	e.draw(e.curves, i, hidden)
}

func curvesEqual(a, b []*Curve) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}
