package wave

import (
	"math"
	"testing"
)

func newTestEngine(t *testing.T, size int) *Engine {
	t.Helper()
	e := New()
	t.Cleanup(e.Dispose)
	e.SetLogPerformance(false)
	e.SetSize(size)
	e.SetAbsorberEnabled(false)
	e.SetShiftParticlesEnabled(false)
	return e
}

// stepOnce runs one full iteration the way the conductor does, without the
// rate limiter.
func stepOnce(e *Engine) {
	e.calculateForces(0, e.sizesq)
	e.moveParticles(0, e.sizesq)
	e.calcCounter++
}

func TestFlatPoolStaysFlat(t *testing.T) {
	e := newTestEngine(t, 16)
	for i := 0; i < 100; i++ {
		stepOnce(e)
	}
	for i, h := range e.height {
		if h != 0 {
			t.Fatalf("cell %d moved to %g on a flat pool", i, h)
		}
	}
	for i, v := range e.velocity {
		if v != 0 {
			t.Fatalf("cell %d gained velocity %g on a flat pool", i, v)
		}
	}
}

func TestImpulseSpreadsSymmetrically(t *testing.T) {
	e := newTestEngine(t, 32)
	center := 16 + 32*16
	e.height[center] = 1

	if !e.calculateForces(0, e.sizesq) {
		t.Fatal("force pass rejected a full range")
	}

	if e.velocity[center] != -1 {
		t.Fatalf("center velocity = %g, want -1 (-delta/mass, inside the overshoot clamp)", e.velocity[center])
	}
	ortho := []int{center - 32, center + 32, center - 1, center + 1}
	diag := []int{center - 33, center - 31, center + 31, center + 33}
	for _, idx := range ortho {
		if e.velocity[idx] <= 0 {
			t.Fatalf("orthogonal neighbour %d velocity = %g, want > 0", idx, e.velocity[idx])
		}
	}
	for i, idx := range diag {
		if e.velocity[idx] <= 0 {
			t.Fatalf("diagonal neighbour %d velocity = %g, want > 0", idx, e.velocity[idx])
		}
		if e.velocity[idx] > e.velocity[ortho[i]] {
			t.Fatalf("diagonal neighbour %d velocity %g exceeds orthogonal %g", idx, e.velocity[idx], e.velocity[ortho[i]])
		}
	}

	total := 0.0
	for _, v := range e.velocity {
		total += v
	}
	if math.Abs(total) > 1e-9 {
		t.Fatalf("velocity sum = %g, want 0", total)
	}
}

func TestStaticCellsStayPinned(t *testing.T) {
	e := newTestEngine(t, 16)
	for y := 0; y < 16; y++ {
		e.static[8+y*16] = 1
	}
	e.SetOscillatorSource(0, PointSource)
	e.SetOscillatorLocation(0, 0, Point{X: 2, Y: 8})
	e.SetOscillatorPeriod(0, 20)
	e.SetOscillatorEnabled(0, true)

	for i := 0; i < 200; i++ {
		stepOnce(e)
		for y := 0; y < 16; y++ {
			if h := e.height[8+y*16]; h != 0 {
				t.Fatalf("static cell (8,%d) moved to %g at step %d", y, h, i)
			}
		}
	}
}

func TestWavesDoNotLeakThroughWallCorners(t *testing.T) {
	e := newTestEngine(t, 8)
	// L-shaped wall around (4,4): its diagonal neighbour (3,3) must not
	// feel an impulse at (4,4)'s far side via the blocked diagonal.
	e.static[4+3*8] = 1
	e.static[3+4*8] = 1
	e.height[4+4*8] = 1
	e.calculateForces(0, e.sizesq)
	if v := e.velocity[3+3*8]; v != 0 {
		t.Fatalf("cell behind wall corner gained velocity %g", v)
	}
}

func TestFullLossStopsMotion(t *testing.T) {
	e := newTestEngine(t, 16)
	e.SetLossRatio(1)
	for i := range e.velocity {
		e.velocity[i] = 0.5
	}
	e.calculateForces(0, e.sizesq)
	for i, v := range e.velocity {
		if v != 0 {
			t.Fatalf("cell %d kept velocity %g under full loss", i, v)
		}
	}
}

func TestInvalidRangesAreRejected(t *testing.T) {
	e := newTestEngine(t, 8)
	cases := []struct {
		first, count int
	}{
		{-1, 10},
		{0, 0},
		{0, e.sizesq + 1},
		{e.sizesq, 1},
	}
	for _, c := range cases {
		if e.calculateForces(c.first, c.count) {
			t.Fatalf("calculateForces(%d, %d) accepted an invalid range", c.first, c.count)
		}
		if e.moveParticles(c.first, c.count) {
			t.Fatalf("moveParticles(%d, %d) accepted an invalid range", c.first, c.count)
		}
	}
}

func TestShiftToOriginRemovesMean(t *testing.T) {
	e := newTestEngine(t, 8)
	for i := range e.height {
		e.height[i] = 2
	}
	e.height[0] = 10
	e.shiftToOrigin()
	total := 0.0
	for _, h := range e.height {
		total += h
	}
	if math.Abs(total) > 1e-9 {
		t.Fatalf("height sum after shift = %g, want 0", total)
	}
}

func TestAbsorberDampsBoundaryReflections(t *testing.T) {
	e := newTestEngine(t, 64)
	e.SetAbsorberEnabled(true)
	e.SetAbsorberThickness(16)
	e.SetAbsorberLossRatio(0.9)
	e.height[32+64*32] = 1

	maxCentral := 0.0
	for i := 0; i < 1000; i++ {
		stepOnce(e)
	}
	for y := 20; y < 44; y++ {
		for x := 20; x < 44; x++ {
			if h := math.Abs(e.height[x+y*64]); h > maxCentral {
				maxCentral = h
			}
		}
	}
	for i := 0; i < 64; i++ {
		edges := []int{i, i + 64*63, i * 64, i*64 + 63}
		for _, idx := range edges {
			if h := math.Abs(e.height[idx]); h > 1e-3 && h > maxCentral {
				t.Fatalf("boundary cell %d amplitude %g exceeds interior max %g", idx, h, maxCentral)
			}
		}
	}
}
