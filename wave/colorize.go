package wave

import "math"

// Color is an RGB triple for the rendered bitmap.
type Color struct {
	R uint8
	G uint8
	B uint8
}

const massMapColors = 636.0

// paintBitmap renders [first, first+count) cells into rgb, three bytes per
// cell. In wave mode static cells take the static color and heights
// interpolate between trough and crest, saturating at 1/amplitudeMultiplier.
// In mass-map mode the mass range is mapped onto a five-band thermal
// palette. Returns false for an invalid range.
func (e *Engine) paintBitmap(first, count int, rgb []byte) bool {
	if first < 0 || count < 1 || first+count > e.sizesq {
		return false
	}
	if e.massMap {
		e.paintMassMap(first, count, rgb)
		return true
	}
	for index := first; index < first+count; index++ {
		base := index * 3
		if e.static[index] != 0 {
			rgb[base] = e.staticColor.R
			rgb[base+1] = e.staticColor.G
			rgb[base+2] = e.staticColor.B
			continue
		}
		if e.extremeContrastEnabled {
			var c Color
			switch {
			case e.height[index] > 0:
				c = e.crestColor
			case e.height[index] < 0:
				c = e.troughColor
			default:
				c = Color{
					R: uint8((int(e.crestColor.R) + int(e.troughColor.R)) / 2),
					G: uint8((int(e.crestColor.G) + int(e.troughColor.G)) / 2),
					B: uint8((int(e.crestColor.B) + int(e.troughColor.B)) / 2),
				}
			}
			rgb[base] = c.R
			rgb[base+1] = c.G
			rgb[base+2] = c.B
			continue
		}
		v := e.height[index] * float64(e.amplitudeMultiplier)
		t := (clampFloat(v, -1, 1) + 1) / 2
		rgb[base] = lerpByte(e.troughColor.R, e.crestColor.R, t)
		rgb[base+1] = lerpByte(e.troughColor.G, e.crestColor.G, t)
		rgb[base+2] = lerpByte(e.troughColor.B, e.crestColor.B, t)
	}
	return true
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// paintMassMap renders cell mass on a black-blue-violet-red-yellow-white
// thermal scale across the configured mass range.
func (e *Engine) paintMassMap(first, count int, rgb []byte) {
	massrange := e.massMapRangeHigh - e.massMapRangeLow
	if massrange <= 0 {
		for index := first; index < first+count; index++ {
			base := index * 3
			rgb[base] = 0
			rgb[base+1] = 0
			rgb[base+2] = 0
		}
		return
	}
	for index := first; index < first+count; index++ {
		m := clampFloat(e.mass[index], e.massMapRangeLow, e.massMapRangeHigh)
		c := int(math.Round((m - e.massMapRangeLow) * massMapColors / massrange))
		base := index * 3
		sub := uint8(c & 127)
		switch {
		case c < 128:
			rgb[base] = 0
			rgb[base+1] = 0
			rgb[base+2] = uint8(c)
		case c < 256:
			rgb[base] = sub
			rgb[base+1] = 0
			rgb[base+2] = 127
		case c < 384:
			rgb[base] = 128 + sub
			rgb[base+1] = sub
			rgb[base+2] = 127 - sub
		case c < 512:
			rgb[base] = 255
			rgb[base+1] = 128 + sub
			rgb[base+2] = sub
		default:
			rgb[base] = 255
			rgb[base+1] = 255
			rgb[base+2] = 128 + sub
		}
	}
}
