package wave

import (
	"log"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// RenderListener receives the finished RGB frame after every paint cycle.
// The buffer is size*size*3 bytes in row-major R,G,B order and belongs to
// the engine; callbacks must copy it out and return promptly.
type RenderListener func(rgb []byte)

// Engine is a square pool of particles whose vertical displacements evolve
// under a discrete wave equation. A conductor goroutine rate-limits
// iteration and paint cycles independently and fans each cycle out to a
// fixed set of worker goroutines over disjoint index ranges.
type Engine struct {
	// mu guards configuration and the issuing of worker phases. Holding it
	// via Lock/Unlock keeps the workers quiescent for external data access.
	mu sync.Mutex

	size   int
	sizesq int

	height   []float64
	velocity []float64
	loss     []float64
	mass     []float64
	static   []byte
	bitmap   []byte

	baseLoss float64

	osc [maxOscillators]oscillator

	absorberEnabled bool
	absorbOffset    int
	maxLoss         float64

	ips, fps    float64
	calcCounter int
	calcDone    int
	paintDone   int

	threadDelayMs int

	shifting           bool
	powerSaveMode      bool
	renderEnabled      bool
	calculationEnabled bool

	logPerformance         bool
	performanceLogInterval int

	extremeContrastEnabled bool
	amplitudeMultiplier    int
	crestColor             Color
	troughColor            Color
	staticColor            Color

	massMap          bool
	massMapRangeHigh float64
	massMapRangeLow  float64

	renderListener RenderListener

	working   atomic.Bool
	disposing atomic.Bool
	locked    atomic.Bool

	workerMu      sync.Mutex
	workerCond    *sync.Cond
	workerStep    int
	workerPending int
	mission       mission
	ranges        []workerRange
	workerCount   int
	workerWG      sync.WaitGroup
	mainWG        sync.WaitGroup
}

// New constructs an engine with the default pool and starts its conductor
// and worker goroutines. The engine stays idle until Start is called.
func New() *Engine {
	e := &Engine{
		size:                   defaultSize,
		sizesq:                 defaultSize * defaultSize,
		absorberEnabled:        true,
		absorbOffset:           defaultAbsorberThickness,
		maxLoss:                defaultAbsorberLoss,
		ips:                    defaultIPS,
		fps:                    defaultFPS,
		threadDelayMs:          defaultThreadDelayMs,
		shifting:               true,
		renderEnabled:          true,
		calculationEnabled:     true,
		logPerformance:         true,
		performanceLogInterval: defaultLogIntervalMs,
		amplitudeMultiplier:    defaultAmplitudeMultiplier,
		crestColor:             Color{0xFF, 0xFF, 0xFF},
		troughColor:            Color{0x00, 0x00, 0x00},
		staticColor:            Color{0xFF, 0xFF, 0x00},
		massMapRangeHigh:       defaultMassMapRangeHigh,
		massMapRangeLow:        defaultMassMapRangeLow,
		workerCount:            1,
	}
	e.workerCond = sync.NewCond(&e.workerMu)
	e.allocPool()
	for i := range e.osc {
		o := &e.osc[i]
		o.source = PointSource
		o.period = defaultOscPeriod
		o.amplitude = defaultOscAmplitude
		o.movePeriod = defaultOscMovePeriod
		e.updateOscIndices(i)
	}
	e.rebuildLoss()
	e.resetWorkers(0)
	e.mainWG.Add(1)
	go e.run()
	return e
}

// Start lets the conductor issue calculation and paint cycles.
func (e *Engine) Start() {
	e.working.Store(true)
}

// Stop pauses the conductor; workers fall back to waiting for a mission.
func (e *Engine) Stop() {
	e.working.Store(false)
}

// Working reports whether the engine is currently scheduling cycles.
func (e *Engine) Working() bool {
	return e.working.Load()
}

// Dispose stops all work, terminates the workers and the conductor, and
// joins them. The engine must not be used afterwards.
func (e *Engine) Dispose() {
	e.working.Store(false)
	e.mu.Lock()
	// Set disposing only while no phase can be in flight: a worker that sees
	// it exits after its current mission, so setting it earlier would leave
	// the conductor's next barrier (or the Destroy below) short of workers.
	e.disposing.Store(true)
	e.orderPhase(missionDestroy)
	e.workerWG.Wait()
	e.mu.Unlock()
	e.mainWG.Wait()
}

// run is the conductor loop. It rate-limits iterations and paints against a
// fixed start time, issues the three-phase calculation cycle and the paint
// cycle, fires the render callback, and logs throughput counters.
func (e *Engine) run() {
	defer e.mainWG.Done()
	timeStart := time.Now()
	timeLogPrev := timeStart
	var numCalcs, numPaints float64
	calcNeeded, paintNeeded := 0, 0
	for !e.disposing.Load() {
		for e.working.Load() {
			e.mu.Lock()
			if e.calculationEnabled && e.working.Load() {
				runCalc := false
				if e.ips == 0 {
					runCalc = true
				} else {
					calcNeeded = int(e.ips * time.Since(timeStart).Seconds())
					runCalc = calcNeeded > e.calcDone
				}
				if runCalc {
					e.orderPhase(missionCalculateForces)
					e.orderPhase(missionMoveParticles)
					if e.shifting {
						e.shiftToOrigin()
					}
					numCalcs++
					e.calcDone++
					e.calcCounter++
					if calcNeeded > e.calcDone+1 {
						// Behind schedule; advance by one per tick from here.
						e.calcDone = calcNeeded - 1
					}
				}
			}
			e.mu.Unlock()

			var frame []byte
			var listener RenderListener
			e.mu.Lock()
			if e.renderEnabled && e.working.Load() {
				runPaint := false
				if e.fps == 0 {
					runPaint = true
				} else {
					paintNeeded = int(e.fps * time.Since(timeStart).Seconds())
					runPaint = paintNeeded > e.paintDone
				}
				if runPaint {
					e.orderPhase(missionCalculateColors)
					numPaints++
					e.paintDone++
					if paintNeeded > e.paintDone+1 {
						e.paintDone = paintNeeded - 1
					}
					frame = e.bitmap
					listener = e.renderListener
				}
			}
			e.mu.Unlock()
			if listener != nil {
				listener(frame)
			}

			e.mu.Lock()
			logOn := e.logPerformance
			interval := e.performanceLogInterval
			e.mu.Unlock()
			if interval > 0 && time.Since(timeLogPrev) >= time.Duration(interval)*time.Millisecond {
				timeLogPrev = time.Now()
				if logOn {
					log.Printf("iterations & paints per second: %.1f %.1f",
						numCalcs*1000.0/float64(interval), numPaints*1000.0/float64(interval))
				}
				numCalcs, numPaints = 0, 0
			}

			e.mu.Lock()
			hurry := (!e.powerSaveMode && (e.fps == 0 || e.ips == 0)) ||
				(e.calculationEnabled && e.calcDone < calcNeeded) ||
				(e.renderEnabled && e.paintDone < paintNeeded)
			powerSave := e.powerSaveMode
			delay := e.threadDelayMs
			if !hurry && e.working.Load() {
				e.orderPhase(missionPause)
			}
			e.mu.Unlock()
			if hurry {
				runtime.Gosched()
			} else if powerSave {
				time.Sleep(time.Duration(delay) * time.Millisecond)
			} else {
				runtime.Gosched()
			}
		}
		e.mu.Lock()
		delay := e.threadDelayMs
		e.mu.Unlock()
		time.Sleep(time.Duration(delay) * time.Millisecond)
	}
}

// shiftToOrigin removes the DC component by subtracting the mean height
// from every cell. Runs on the conductor between barriers.
func (e *Engine) shiftToOrigin() {
	total := 0.0
	for _, h := range e.height {
		total += h
	}
	shift := -total / float64(e.sizesq)
	for i := range e.height {
		e.height[i] += shift
	}
}
