package sketch

// Checkpoint is a full copy of the curve set and selection taken before an
// edit.
type Checkpoint struct {
	Curves   []*Curve
	Selected CurveID
}

func newCheckpoint(curves []*Curve, selected CurveID) Checkpoint {
	return Checkpoint{Curves: cloneCurves(curves), Selected: selected}
}

// History holds the undo and redo stacks. Entries are full copies; the
// stacks are unbounded.
type History struct {
	undo []Checkpoint
	redo []Checkpoint
}

// Commit records cp as the state before a new edit and clears the redo
// stack.
func (h *History) Commit(cp Checkpoint) {
	h.undo = append(h.undo, cp)
	clear(h.redo)
	h.redo = h.redo[:0]
}

// Undo pops the most recent checkpoint, pushing current onto the redo stack.
// It returns [ErrEmptyHistory] if there is nothing to undo.
func (h *History) Undo(current Checkpoint) (Checkpoint, error) {
	return transfer(&h.undo, &h.redo, current)
}

// Redo is the mirror of [History.Undo].
func (h *History) Redo(current Checkpoint) (Checkpoint, error) {
	return transfer(&h.redo, &h.undo, current)
}

func transfer(from, to *[]Checkpoint, current Checkpoint) (Checkpoint, error) {
	n := len(*from)
	if n == 0 {
		return Checkpoint{}, ErrEmptyHistory
	}
	cp := (*from)[n-1]
	(*from)[n-1] = Checkpoint{}
	*from = (*from)[:n-1]
	*to = append(*to, current)
	return cp, nil
}

// CanUndo reports whether there is a checkpoint to undo to.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether there is a checkpoint to redo to.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// each calls fn for every curve held by the history.
func (h *History) each(fn func(*Curve)) {
	for _, stack := range [][]Checkpoint{h.undo, h.redo} {
		for _, cp := range stack {
			for _, c := range cp.Curves {
				fn(c)
			}
		}
	}
}
