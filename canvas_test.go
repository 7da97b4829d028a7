package sketch

import (
	"testing"
)

func TestNewCanvas(t *testing.T) {
	cp := NewCanvas(600, 400)
	if cp.AxisLength != 400 {
		t.Errorf("got axis length %v, want 400", cp.AxisLength)
	}
	diff(t, Pt(300, 200), cp.Center)
	diff(t, Rect{100, 0, 500, 400}, cp.PlotArea())

	cp = NewCanvas(300, 900)
	diff(t, Rect{0, 300, 300, 600}, cp.PlotArea())
}

func TestNormalize(t *testing.T) {
	cp := NewCanvas(600, 400)
	tests := []struct {
		v    float64
		axis Axis
		want float64
	}{
		{300, AxisX, 0},
		{500, AxisX, 0.5},
		{100, AxisX, -0.5},
		{200, AxisY, 0},
		{0, AxisY, 0.5},
		{300, AxisY, -0.25},
	}
	for _, tt := range tests {
		got, err := cp.Normalize(tt.v, tt.axis)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Normalize(%v, %s) = %v, want %v", tt.v, tt.axis, got, tt.want)
		}
		back, err := cp.Denormalize(got, tt.axis)
		if err != nil {
			t.Fatal(err)
		}
		if back != tt.v {
			t.Errorf("Denormalize(%v, %s) = %v, want %v", got, tt.axis, back, tt.v)
		}
	}
}

func TestInvalidCanvas(t *testing.T) {
	for _, sz := range []Size{{6000, 400}, {600, 5001}, {0, 400}, {600, -1}} {
		cp := NewCanvas(sz.Width, sz.Height)
		err := cp.Validate()
		if !IsInvalidCanvas(err) {
			t.Errorf("%s: got error %v, want InvalidCanvasError", sz, err)
		}
		if _, err := cp.Normalize(1, AxisX); !IsInvalidCanvas(err) {
			t.Errorf("%s: Normalize returned %v, want InvalidCanvasError", sz, err)
		}
	}
	if err := NewCanvas(5000, 5000).Validate(); err != nil {
		t.Errorf("5000×5000 should be valid, got %v", err)
	}
}

func TestReproject(t *testing.T) {
	const epsilon = 1e-9
	from := NewCanvas(600, 400)
	to := NewCanvas(800, 800)
	aff := from.Reproject(to)

	assertNear(t, from.Center.Transform(aff), to.Center, epsilon)
	assertNear(t, Pt(500, 0).Transform(aff), Pt(800, 0), epsilon)
	assertNear(t, Pt(100, 400).Transform(aff), Pt(0, 800), epsilon)
}
