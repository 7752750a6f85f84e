package wave

import "math"

// calculateForces runs the wave stencil over [first, first+count): each
// non-static cell accelerates toward the average height of its neighbours,
// then sheds kinetic and potential energy according to its loss factor.
// Static cells are pinned to zero height. Diagonal neighbours contribute
// only when both adjacent orthogonal cells are non-static, so waves cannot
// leak through wall corners. Returns false for an invalid range.
func (e *Engine) calculateForces(first, count int) bool {
	if first < 0 || count < 1 || first+count > e.sizesq {
		return false
	}
	size := e.size
	for index := first; index < first+count; index++ {
		if e.static[index] != 0 {
			e.height[index] = 0
			continue
		}

		total := 0.0
		num := 0
		upExists, leftExists, rightExists := false, false, false

		if index >= size && e.static[index-size] == 0 {
			upExists = true
			total += e.height[index-size]
			num++
		}
		if (index+1)%size != 0 && e.static[index+1] == 0 {
			rightExists = true
			total += e.height[index+1]
			num++
			if upExists && e.static[index-size+1] == 0 {
				total += e.height[index-size+1]
				num++
			}
		}
		if index%size != 0 && e.static[index-1] == 0 {
			leftExists = true
			total += e.height[index-1]
			num++
			if upExists && e.static[index-size-1] == 0 {
				total += e.height[index-size-1]
				num++
			}
		}
		if index < e.sizesq-size && e.static[index+size] == 0 {
			total += e.height[index+size]
			num++
			if leftExists && e.static[index+size-1] == 0 {
				total += e.height[index+size-1]
				num++
			}
			if rightExists && e.static[index+size+1] == 0 {
				total += e.height[index+size+1]
				num++
			}
		}

		accel := 0.0
		delta := 0.0
		if num != 0 {
			delta = e.height[index] - total/float64(num)
			accel = -delta / e.mass[index]
		}
		if accel >= 0 {
			accel = clampFloat(accel, accel, -2*delta)
		} else {
			accel = clampFloat(accel, -2*delta, accel)
		}
		e.velocity[index] += accel

		loss := e.loss[index]
		if loss > 0 {
			m := e.mass[index]
			kinetic := m * e.velocity[index] * e.velocity[index] / 2
			e.velocity[index] = signum(e.velocity[index]) * math.Sqrt(2*kinetic*(1-loss)/m)

			potential := delta * delta / 2
			e.height[index] += signum(delta)*math.Sqrt(2*potential*(1-loss)) - delta
		}
	}
	e.applyOscillators()
	return true
}

// moveParticles advances height by velocity over [first, first+count).
// Returns false for an invalid range.
func (e *Engine) moveParticles(first, count int) bool {
	if first < 0 || count < 1 || first+count > e.sizesq {
		return false
	}
	for index := first; index < first+count; index++ {
		e.height[index] += e.velocity[index]
	}
	return true
}

func clampFloat(x, low, high float64) float64 {
	if x > high {
		return high
	}
	if x < low {
		return low
	}
	return x
}

func clampInt(x, low, high int) int {
	if x > high {
		return high
	}
	if x < low {
		return low
	}
	return x
}

func signum(x float64) float64 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
