package wave

import (
	"math"
	"testing"
)

func TestAbsorberDisabledFillsBaseLoss(t *testing.T) {
	e := newTestEngine(t, 16)
	e.SetLossRatio(0.2)
	for i, l := range e.loss {
		if l != 0.2 {
			t.Fatalf("cell %d loss = %g, want 0.2", i, l)
		}
	}
}

func TestAbsorberBelowBaseLossFallsBack(t *testing.T) {
	e := newTestEngine(t, 16)
	e.SetAbsorberEnabled(true)
	e.SetLossRatio(0.5)
	e.SetAbsorberLossRatio(0.1)
	for i, l := range e.loss {
		if l != 0.5 {
			t.Fatalf("cell %d loss = %g, want base 0.5", i, l)
		}
	}
}

func TestAbsorberRamp(t *testing.T) {
	e := newTestEngine(t, 10)
	e.SetLossRatio(0.1)
	e.SetAbsorberThickness(2)
	e.SetAbsorberLossRatio(0.5)
	e.SetAbsorberEnabled(true)

	at := func(x, y int) float64 { return e.loss[x+y*10] }
	cases := []struct {
		x, y int
		want float64
	}{
		{5, 0, 0.5},
		{5, 1, 0.3},
		{5, 2, 0.1},
		{5, 5, 0.1},
		{5, 9, 0.5},
		{5, 8, 0.3},
		{0, 5, 0.5},
		{1, 5, 0.3},
		{9, 5, 0.5},
		{8, 5, 0.3},
		{0, 0, 0.5},
		{9, 9, 0.5},
	}
	for _, c := range cases {
		if got := at(c.x, c.y); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("loss(%d,%d) = %g, want %g", c.x, c.y, got, c.want)
		}
	}
}

func TestAbsorberThicknessClampsToHalfSize(t *testing.T) {
	e := newTestEngine(t, 10)
	e.SetAbsorberEnabled(true)
	e.SetAbsorberThickness(500)
	if got := e.AbsorberThickness(); got != 5 {
		t.Fatalf("thickness = %d, want clamp to 5", got)
	}
	// The builder must still stay inside the grid with the clamped value.
	e.SetAbsorberLossRatio(0.4)
	if e.loss[0] != 0.4 {
		t.Fatalf("corner loss = %g, want 0.4", e.loss[0])
	}
}
