package wave

import "math"

const (
	maxWorkers     = 32
	maxOscillators = 9

	defaultSize                = 300
	defaultIPS                 = 100
	defaultFPS                 = 25
	defaultThreadDelayMs       = 5
	defaultLogIntervalMs       = 1000
	defaultAbsorberThickness   = 25
	defaultAbsorberLoss        = 0.3
	defaultAmplitudeMultiplier = 20
	defaultMassMapRangeLow     = 1.0
	defaultMassMapRangeHigh    = 5.0
	defaultOscPeriod           = 30
	defaultOscAmplitude        = 1
	defaultOscMovePeriod       = 800
)

// Size returns the pool edge length in cells.
func (e *Engine) Size() int { return e.size }

// SetSize resizes the pool to size×size cells. Fixity and mass carry over
// by nearest-neighbour sampling, heights and velocities reset to zero, and
// oscillator anchors scale with the pool.
func (e *Engine) SetSize(size int) {
	if size < 1 {
		size = 1
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if size == e.size {
		return
	}
	old := e.size
	e.size = size
	e.sizesq = size * size
	e.resizePool(old)
	e.resetWorkers(e.workerCount)
}

// NumberOfThreads returns the worker count.
func (e *Engine) NumberOfThreads() int { return e.workerCount }

// SetNumberOfThreads repartitions the pool across n workers, clamped to
// [1, 32]. The previous workers are destroyed and fresh ones spawned.
func (e *Engine) SetNumberOfThreads(n int) {
	n = clampInt(n, 1, maxWorkers)
	e.mu.Lock()
	defer e.mu.Unlock()
	old := e.workerCount
	e.workerCount = n
	e.resetWorkers(old)
}

// IterationsPerSecond returns the iteration rate limit; 0 means unlimited.
func (e *Engine) IterationsPerSecond() float64 { return e.ips }

// SetIterationsPerSecond sets the iteration rate limit and restarts the
// iteration schedule. Negative values clamp to 0 (unlimited).
func (e *Engine) SetIterationsPerSecond(ips float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ips < 0 {
		ips = 0
	}
	e.ips = ips
	e.calcDone = 0
}

// FramesPerSecond returns the paint rate limit; 0 means unlimited.
func (e *Engine) FramesPerSecond() float64 { return e.fps }

// SetFramesPerSecond sets the paint rate limit and restarts the paint
// schedule. Negative values clamp to 0 (unlimited).
func (e *Engine) SetFramesPerSecond(fps float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if fps < 0 {
		fps = 0
	}
	e.fps = fps
	e.paintDone = 0
}

// ThreadDelay returns the idle sleep in milliseconds.
func (e *Engine) ThreadDelay() int { return e.threadDelayMs }

// SetThreadDelay sets the idle sleep, clamped to [0, 1000] ms.
func (e *Engine) SetThreadDelay(ms int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.threadDelayMs = clampInt(ms, 0, 1000)
}

// LossRatio returns the base loss applied to every cell.
func (e *Engine) LossRatio() float64 { return e.baseLoss }

// SetLossRatio sets the base loss, clamped to [0, 1], and rebuilds the
// loss table.
func (e *Engine) SetLossRatio(loss float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.baseLoss = clampFloat(loss, 0, 1)
	e.rebuildLoss()
}

// AbsorberEnabled reports whether the absorbing frame is active.
func (e *Engine) AbsorberEnabled() bool { return e.absorberEnabled }

// SetAbsorberEnabled toggles the absorbing frame and rebuilds the loss table.
func (e *Engine) SetAbsorberEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.absorberEnabled = enabled
	e.rebuildLoss()
}

// AbsorberThickness returns the absorber frame thickness in cells.
func (e *Engine) AbsorberThickness() int { return e.absorbOffset }

// SetAbsorberThickness sets the frame thickness, clamped to [0, size/2],
// and rebuilds the loss table.
func (e *Engine) SetAbsorberThickness(cells int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.absorbOffset = clampInt(cells, 0, e.size/2)
	e.rebuildLoss()
}

// AbsorberLossRatio returns the loss at the outermost absorber cells.
func (e *Engine) AbsorberLossRatio() float64 { return e.maxLoss }

// SetAbsorberLossRatio sets the edge loss, clamped to [0, 1], and rebuilds
// the loss table.
func (e *Engine) SetAbsorberLossRatio(loss float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.maxLoss = clampFloat(loss, 0, 1)
	e.rebuildLoss()
}

// ShiftParticlesEnabled reports whether mean-height removal runs after each
// iteration.
func (e *Engine) ShiftParticlesEnabled() bool { return e.shifting }

// SetShiftParticlesEnabled toggles mean-height removal.
func (e *Engine) SetShiftParticlesEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.shifting = enabled
}

// PowerSaveMode reports whether the conductor sleeps instead of yielding
// when idle.
func (e *Engine) PowerSaveMode() bool { return e.powerSaveMode }

// SetPowerSaveMode toggles idle sleeping.
func (e *Engine) SetPowerSaveMode(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.powerSaveMode = enabled
}

// RenderEnabled reports whether paint cycles run.
func (e *Engine) RenderEnabled() bool { return e.renderEnabled }

// SetRenderEnabled toggles paint cycles.
func (e *Engine) SetRenderEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderEnabled = enabled
}

// CalculationEnabled reports whether iteration cycles run.
func (e *Engine) CalculationEnabled() bool { return e.calculationEnabled }

// SetCalculationEnabled toggles iteration cycles.
func (e *Engine) SetCalculationEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calculationEnabled = enabled
}

// LogPerformance reports whether throughput lines are emitted.
func (e *Engine) LogPerformance() bool { return e.logPerformance }

// SetLogPerformance toggles throughput logging.
func (e *Engine) SetLogPerformance(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.logPerformance = enabled
}

// PerformanceLogInterval returns the throughput log period in milliseconds.
func (e *Engine) PerformanceLogInterval() int { return e.performanceLogInterval }

// SetPerformanceLogInterval sets the throughput log period; values below 0
// clamp to 0, which disables the counter reset cycle.
func (e *Engine) SetPerformanceLogInterval(ms int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ms < 0 {
		ms = 0
	}
	e.performanceLogInterval = ms
}

// Iterations returns the total number of completed iterations.
func (e *Engine) Iterations() int { return e.calcCounter }

// ShowMassMap reports whether the colorizer renders mass instead of height.
func (e *Engine) ShowMassMap() bool { return e.massMap }

// SetShowMassMap toggles mass-map rendering.
func (e *Engine) SetShowMassMap(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.massMap = enabled
}

// MassMapRangeHigh returns the mass mapped to the hottest palette color.
func (e *Engine) MassMapRangeHigh() float64 { return e.massMapRangeHigh }

// SetMassMapRangeHigh sets the top of the mass-map range; negatives clamp
// to 0.
func (e *Engine) SetMassMapRangeHigh(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if v < 0 {
		v = 0
	}
	e.massMapRangeHigh = v
}

// MassMapRangeLow returns the mass mapped to the coldest palette color.
func (e *Engine) MassMapRangeLow() float64 { return e.massMapRangeLow }

// SetMassMapRangeLow sets the bottom of the mass-map range; negatives clamp
// to 0.
func (e *Engine) SetMassMapRangeLow(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if v < 0 {
		v = 0
	}
	e.massMapRangeLow = v
}

// ExtremeContrastEnabled reports whether wave rendering is ternary.
func (e *Engine) ExtremeContrastEnabled() bool { return e.extremeContrastEnabled }

// SetExtremeContrastEnabled toggles ternary wave rendering.
func (e *Engine) SetExtremeContrastEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.extremeContrastEnabled = enabled
}

// AmplitudeMultiplier returns the brightness gain applied to heights.
func (e *Engine) AmplitudeMultiplier() int { return e.amplitudeMultiplier }

// SetAmplitudeMultiplier sets the brightness gain; negatives clamp to 0.
func (e *Engine) SetAmplitudeMultiplier(v int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if v < 0 {
		v = 0
	}
	e.amplitudeMultiplier = v
}

// CrestColor returns the color of maximum height.
func (e *Engine) CrestColor() Color { return e.crestColor }

// SetCrestColor sets the color of maximum height.
func (e *Engine) SetCrestColor(c Color) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.crestColor = c
}

// TroughColor returns the color of minimum height.
func (e *Engine) TroughColor() Color { return e.troughColor }

// SetTroughColor sets the color of minimum height.
func (e *Engine) SetTroughColor(c Color) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.troughColor = c
}

// StaticColor returns the color of fixed cells.
func (e *Engine) StaticColor() Color { return e.staticColor }

// SetStaticColor sets the color of fixed cells.
func (e *Engine) SetStaticColor(c Color) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.staticColor = c
}

// SetRenderListener installs the callback fired after each paint cycle.
// A nil listener detaches.
func (e *Engine) SetRenderListener(l RenderListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderListener = l
}

// OscillatorEnabled reports whether oscillator id drives the pool. Invalid
// ids report false.
func (e *Engine) OscillatorEnabled(id int) bool {
	if id < 0 || id >= maxOscillators {
		return false
	}
	return e.osc[id].active
}

// SetOscillatorEnabled activates or deactivates oscillator id. Invalid ids
// are ignored.
func (e *Engine) SetOscillatorEnabled(id int, enabled bool) {
	if id < 0 || id >= maxOscillators {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.osc[id].active = enabled
}

// OscillatorSourceKind returns the source kind of oscillator id. Invalid
// ids report PointSource.
func (e *Engine) OscillatorSourceKind(id int) OscillatorSource {
	if id < 0 || id >= maxOscillators {
		return PointSource
	}
	return e.osc[id].source
}

// SetOscillatorSource sets the source kind of oscillator id and recomputes
// its cell indices. Invalid ids are ignored.
func (e *Engine) SetOscillatorSource(id int, source OscillatorSource) {
	if id < 0 || id >= maxOscillators {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.osc[id].source = source
	e.updateOscIndices(id)
}

// OscillatorPeriod returns the period of oscillator id in iterations.
// Invalid ids report -1.
func (e *Engine) OscillatorPeriod(id int) float64 {
	if id < 0 || id >= maxOscillators {
		return -1
	}
	return e.osc[id].period
}

// SetOscillatorPeriod sets the period of oscillator id. Periods below 1
// and invalid ids are ignored.
func (e *Engine) SetOscillatorPeriod(id int, period float64) {
	if id < 0 || id >= maxOscillators || period < 1 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.osc[id].period = period
}

// OscillatorPhase returns the phase of oscillator id in degrees. Invalid
// ids report -1.
func (e *Engine) OscillatorPhase(id int) float64 {
	if id < 0 || id >= maxOscillators {
		return -1
	}
	return e.osc[id].phase
}

// SetOscillatorPhase sets the phase of oscillator id in degrees. Invalid
// ids are ignored.
func (e *Engine) SetOscillatorPhase(id int, phase float64) {
	if id < 0 || id >= maxOscillators {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.osc[id].phase = phase
}

// OscillatorAmplitude returns the amplitude of oscillator id. Invalid ids
// report -1.
func (e *Engine) OscillatorAmplitude(id int) float64 {
	if id < 0 || id >= maxOscillators {
		return -1
	}
	return e.osc[id].amplitude
}

// SetOscillatorAmplitude sets the amplitude of oscillator id. Invalid ids
// are ignored.
func (e *Engine) SetOscillatorAmplitude(id int, amplitude float64) {
	if id < 0 || id >= maxOscillators {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.osc[id].amplitude = amplitude
}

// OscillatorMovePeriod returns the traversal period of a moving source in
// iterations. Invalid ids report -1.
func (e *Engine) OscillatorMovePeriod(id int) float64 {
	if id < 0 || id >= maxOscillators {
		return -1
	}
	return e.osc[id].movePeriod
}

// SetOscillatorMovePeriod sets the traversal period of oscillator id.
// Periods below 1 and invalid ids are ignored.
func (e *Engine) SetOscillatorMovePeriod(id int, movePeriod float64) {
	if id < 0 || id >= maxOscillators || movePeriod < 1 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.osc[id].movePeriod = movePeriod
}

// OscillatorLocation returns anchor locID (0 or 1) of oscillator id.
// Invalid ids or anchors report Point{-1, -1}.
func (e *Engine) OscillatorLocation(id, locID int) Point {
	if id < 0 || id >= maxOscillators || locID < 0 || locID > 1 {
		return Point{-1, -1}
	}
	if locID == 0 {
		return e.osc[id].p1
	}
	return e.osc[id].p2
}

// SetOscillatorLocation moves anchor locID (0 or 1) of oscillator id and
// recomputes its cell indices. Invalid ids or anchors are ignored.
func (e *Engine) SetOscillatorLocation(id, locID int, p Point) {
	if id < 0 || id >= maxOscillators || locID < 0 || locID > 1 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if locID == 0 {
		e.osc[id].p1 = p
	} else {
		e.osc[id].p2 = p
	}
	e.updateOscIndices(id)
}

// OscillatorRealLocation returns the effective driven location of
// oscillator id right now: the anchor for point sources, the segment
// midpoint for line sources, the interpolated live position for moving
// sources. Invalid ids report Point{-1, -1}.
func (e *Engine) OscillatorRealLocation(id int) Point {
	if id < 0 || id >= maxOscillators {
		return Point{-1, -1}
	}
	o := &e.osc[id]
	switch o.source {
	case LineSource:
		return Point{(o.p1.X + o.p2.X) / 2, (o.p1.Y + o.p2.Y) / 2}
	case MovingPointSource:
		r := math.Mod(float64(e.calcCounter), o.movePeriod) / o.movePeriod
		return Point{(1-r)*o.p1.X + r*o.p2.X, (1-r)*o.p1.Y + r*o.p2.Y}
	}
	return o.p1
}
