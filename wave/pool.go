package wave

// Attribute names one of the per-cell pool arrays for external access.
type Attribute int

const (
	AttrHeight Attribute = iota
	AttrVelocity
	AttrLoss
	AttrMass
	AttrFixity
)

// allocPool allocates fresh pool arrays for the current size. Mass starts
// at 1 everywhere, everything else at zero.
func (e *Engine) allocPool() {
	e.height = make([]float64, e.sizesq)
	e.velocity = make([]float64, e.sizesq)
	e.loss = make([]float64, e.sizesq)
	e.mass = make([]float64, e.sizesq)
	e.static = make([]byte, e.sizesq)
	e.bitmap = make([]byte, e.sizesq*3)
	for i := range e.mass {
		e.mass[i] = 1
	}
}

// resizePool reallocates the pool for the new size, carrying fixity and
// mass over by nearest-neighbour sampling of the old grid. Heights and
// velocities restart at zero, oscillator anchors are rescaled and their
// indices recomputed, and the loss table is rebuilt.
func (e *Engine) resizePool(oldSize int) {
	oldStatic := e.static
	oldMass := e.mass
	e.allocPool()

	stepsize := float64(oldSize) / float64(e.size)
	half := stepsize / 2
	for y := 0; y < e.size; y++ {
		sy := int(float64(y)*stepsize + half)
		if sy >= oldSize {
			sy = oldSize - 1
		}
		for x := 0; x < e.size; x++ {
			sx := int(float64(x)*stepsize + half)
			if sx >= oldSize {
				sx = oldSize - 1
			}
			e.static[x+y*e.size] = oldStatic[sx+sy*oldSize]
			e.mass[x+y*e.size] = oldMass[sx+sy*oldSize]
		}
	}

	ratio := float64(e.size) / float64(oldSize)
	for i := range e.osc {
		o := &e.osc[i]
		o.p1.X *= ratio
		o.p1.Y *= ratio
		o.p2.X *= ratio
		o.p2.Y *= ratio
		e.updateOscIndices(i)
	}
	e.rebuildLoss()
}

// Lock suspends the worker phases so callers may read and write the pool
// arrays directly. Returns false if the engine is already locked.
func (e *Engine) Lock() bool {
	if e.locked.Load() {
		return false
	}
	e.locked.Store(true)
	e.mu.Lock()
	return true
}

// Unlock resumes phase scheduling after a Lock.
func (e *Engine) Unlock() bool {
	e.mu.Unlock()
	e.locked.Store(false)
	return true
}

// Data returns the backing array for a float-valued attribute. It returns
// nil unless the engine is locked; AttrFixity is byte-valued, use
// StaticData for it.
func (e *Engine) Data(attr Attribute) []float64 {
	if !e.locked.Load() {
		return nil
	}
	switch attr {
	case AttrHeight:
		return e.height
	case AttrVelocity:
		return e.velocity
	case AttrLoss:
		return e.loss
	case AttrMass:
		return e.mass
	}
	return nil
}

// StaticData returns the fixity array, nonzero for pinned cells. It
// returns nil unless the engine is locked.
func (e *Engine) StaticData() []byte {
	if !e.locked.Load() {
		return nil
	}
	return e.static
}
