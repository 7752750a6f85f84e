package wave

import "math"

// OscillatorSource selects how an oscillator maps onto pool cells.
type OscillatorSource int

const (
	// PointSource drives the single cell under the first anchor.
	PointSource OscillatorSource = iota
	// LineSource drives every cell along the segment between the anchors.
	LineSource
	// MovingPointSource drives one cell gliding between the anchors,
	// completing a traversal every movePeriod iterations.
	MovingPointSource
)

// Point is a pool coordinate in cell units. Fractional values are valid
// anchors; they are floored when mapped to cells.
type Point struct {
	X float64
	Y float64
}

type oscillator struct {
	active     bool
	source     OscillatorSource
	period     float64
	phase      float64
	amplitude  float64
	movePeriod float64
	p1         Point
	p2         Point
	indices    []int
}

// updateOscIndices recomputes the precomputed cell indices for oscillator
// id. Point sources yield at most one index, line sources sample the
// segment every half cell, moving sources resolve their index per
// iteration and keep none. Out-of-bounds anchors yield no indices.
func (e *Engine) updateOscIndices(id int) {
	o := &e.osc[id]
	o.indices = nil
	switch o.source {
	case PointSource:
		x, y := int(o.p1.X), int(o.p1.Y)
		if o.p1.X >= 0 && x < e.size && o.p1.Y >= 0 && y < e.size {
			o.indices = []int{x + y*e.size}
		}
	case LineSource:
		dx := o.p2.X - o.p1.X
		dy := o.p2.Y - o.p1.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			return
		}
		for i := 0.0; i <= length; i += 0.5 {
			x := int(math.Floor(o.p1.X + dx*i/length))
			y := int(math.Floor(o.p1.Y + dy*i/length))
			if x < 0 || x >= e.size || y < 0 || y >= e.size {
				continue
			}
			o.indices = append(o.indices, x+y*e.size)
		}
	case MovingPointSource:
	}
}

// applyOscillators pins every active oscillator's cells to the sinusoid
// value for the current iteration and zeroes their velocity. Every worker
// calls this after its stencil partition; the writes are identical so the
// overlap is harmless.
func (e *Engine) applyOscillators() {
	tick := float64(e.calcCounter)
	for i := range e.osc {
		o := &e.osc[i]
		if !o.active {
			continue
		}
		h := o.amplitude * math.Sin(o.phase*math.Pi/180+2*math.Pi*math.Mod(tick, o.period)/o.period)
		switch o.source {
		case PointSource, LineSource:
			for _, idx := range o.indices {
				e.height[idx] = h
				e.velocity[idx] = 0
			}
		case MovingPointSource:
			r := math.Mod(tick, o.movePeriod) / o.movePeriod
			x := int(math.Floor((1-r)*o.p1.X + r*o.p2.X))
			y := int(math.Floor((1-r)*o.p1.Y + r*o.p2.Y))
			idx := x + y*e.size
			if x >= 0 && x < e.size && y >= 0 && y < e.size {
				e.height[idx] = h
				e.velocity[idx] = 0
			}
		}
	}
}
