package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"honnef.co/go/sketch"
)

func TestParseScript(t *testing.T) {
	const script = `
# draw a line
linetype linear
stroke 150 50 200 100 250 150
key undo

color Orange
resize 800 600
`
	steps, err := ParseScript(strings.NewReader(script))
	require.NoError(t, err)
	require.Len(t, steps, 5)
	require.Equal(t, Step{Line: 3, Op: "linetype", Arg: "linear"}, steps[0])
	require.Equal(t, "stroke", steps[1].Op)
	require.Equal(t, []float64{150, 50, 200, 100, 250, 150}, steps[1].Nums)
	require.Equal(t, 5, steps[2].Line)
	require.Equal(t, []float64{800, 600}, steps[4].Nums)
}

func TestParseScriptErrors(t *testing.T) {
	for _, tc := range []struct {
		script string
		msg    string
	}{
		{"press 1", "line 1: press takes 2 arguments"},
		{"\nfly 1 2", "line 2: unknown command"},
		{"drag a b", "line 1: argument 1"},
		{"key space", `unknown key "space"`},
		{"linetype spline", `unknown line type "spline"`},
		{"stroke 1 2 3", "stroke takes at least two coordinate pairs"},
		{"undo now", "undo takes no arguments"},
	} {
		_, err := ParseScript(strings.NewReader(tc.script))
		require.ErrorContains(t, err, tc.msg, tc.script)
	}
}

func newTestEngine(t *testing.T) *sketch.Engine {
	t.Helper()
	e, err := sketch.New(600, 400, sketch.Options{})
	require.NoError(t, err)
	return e
}

func TestPlay(t *testing.T) {
	e := newTestEngine(t)
	steps, err := ParseScript(strings.NewReader(`
linetype linear
color Green
stroke 150 50 200 100 250 150
stroke 150 350 250 250
undo
redo
`))
	require.NoError(t, err)
	require.NoError(t, (&Player{Engine: e}).Play(steps))

	ex, err := e.Export()
	require.NoError(t, err)
	require.Len(t, ex.Curves, 2)
	for _, c := range ex.Curves {
		require.Equal(t, 2, c.ColorIdx)
		require.Len(t, c.Pts, 100)
	}
	require.True(t, e.IsUndoable())
	require.False(t, e.IsRedoable())
}

func TestPlayRejects(t *testing.T) {
	e := newTestEngine(t)
	steps, err := ParseScript(strings.NewReader("color Purple"))
	require.NoError(t, err)
	require.ErrorContains(t, (&Player{Engine: e}).Play(steps), "line 1")

	steps, err = ParseScript(strings.NewReader("resize 6000 400"))
	require.NoError(t, err)
	err = (&Player{Engine: e}).Play(steps)
	require.True(t, sketch.IsInvalidCanvas(err))
	require.Equal(t, 600.0, e.Canvas().Size.Width)
}
