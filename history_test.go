package sketch

import (
	"testing"

	"github.com/pkg/errors"
)

func TestHistory(t *testing.T) {
	var h History
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("new history isn't empty")
	}
	if _, err := h.Undo(Checkpoint{}); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("got error %v, want ErrEmptyHistory", err)
	}

	s0 := []*Curve{}
	s1 := []*Curve{{ID: 1, Pts: []Point{Pt(1, 1)}}}
	s2 := []*Curve{{ID: 1, Pts: []Point{Pt(2, 2)}}}

	h.Commit(newCheckpoint(s0, 0))
	h.Commit(newCheckpoint(s1, 1))

	cp, err := h.Undo(newCheckpoint(s2, 1))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, s1, cp.Curves)
	if cp.Selected != 1 {
		t.Errorf("got selection %d, want 1", cp.Selected)
	}
	cp, err = h.Undo(cp)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, s0, cp.Curves)
	if h.CanUndo() || !h.CanRedo() {
		t.Fatal("expected only redo to be possible")
	}

	cp, err = h.Redo(cp)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, s1, cp.Curves)

	// A new edit discards what could be redone.
	h.Commit(cp)
	if h.CanRedo() {
		t.Error("commit didn't clear the redo stack")
	}
	if _, err := h.Redo(Checkpoint{}); !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("got error %v, want ErrEmptyHistory", err)
	}
}

func TestCheckpointIsCopy(t *testing.T) {
	curves := []*Curve{{ID: 1, Pts: []Point{Pt(1, 1)}}}
	cp := newCheckpoint(curves, 1)
	curves[0].Pts[0] = Pt(5, 5)
	diff(t, Pt(1, 1), cp.Curves[0].Pts[0])
}
