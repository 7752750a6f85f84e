package wave

// rebuildLoss recomputes the per-cell loss table from the base loss and the
// absorber configuration. The absorber is a frame of linearly increasing
// loss along each edge; the four edge passes overlap in the corners and the
// later passes win there.
func (e *Engine) rebuildLoss() {
	if !e.absorberEnabled || e.maxLoss < e.baseLoss {
		for i := range e.loss {
			e.loss[i] = e.baseLoss
		}
		return
	}
	off := e.absorbOffset
	if off >= e.size/2 {
		off = e.size/2 - 1
	}
	step := (e.maxLoss - e.baseLoss) / float64(off)
	for i := range e.loss {
		e.loss[i] = e.baseLoss
	}

	// Top edge, from the border inward.
	cur := e.maxLoss
	for o := 0; o <= off; o++ {
		for x := o; x < e.size-o; x++ {
			e.loss[x+o*e.size] = cur
		}
		cur -= step
	}

	// Bottom edge, from the interior outward.
	cur = e.baseLoss
	for o := 0; o <= off; o++ {
		for x := off - o; x < e.size-(off-o); x++ {
			e.loss[x+o*e.size+e.size*(e.size-off-1)] = cur
		}
		cur += step
	}

	// Left edge.
	cur = e.baseLoss
	for o := 0; o <= off; o++ {
		for x := off - o; x < e.size-(off-o); x++ {
			e.loss[x*e.size+(off-o)] = cur
		}
		cur += step
	}

	// Right edge.
	cur = e.baseLoss
	for o := 0; o <= off; o++ {
		for x := off - o; x < e.size-(off-o); x++ {
			e.loss[x*e.size+o+e.size-off-1] = cur
		}
		cur += step
	}
}
