package wave

import "testing"

func cellColor(rgb []byte, idx int) Color {
	return Color{R: rgb[idx*3], G: rgb[idx*3+1], B: rgb[idx*3+2]}
}

func TestPaintWaveMode(t *testing.T) {
	e := newTestEngine(t, 8)
	e.SetCrestColor(Color{R: 0xFF, G: 0xFF, B: 0xFF})
	e.SetTroughColor(Color{R: 0, G: 0, B: 0})
	e.SetStaticColor(Color{R: 0xFF, G: 0xFF, B: 0})
	e.SetAmplitudeMultiplier(20)

	e.static[1] = 1
	e.height[2] = 1   // saturates positive
	e.height[3] = -1  // saturates negative
	e.height[4] = 0   // midpoint

	if !e.paintBitmap(0, e.sizesq, e.bitmap) {
		t.Fatal("paint rejected a full range")
	}
	if got := cellColor(e.bitmap, 1); got != (Color{R: 0xFF, G: 0xFF, B: 0}) {
		t.Fatalf("static cell color = %+v", got)
	}
	if got := cellColor(e.bitmap, 2); got != (Color{R: 0xFF, G: 0xFF, B: 0xFF}) {
		t.Fatalf("crest cell color = %+v", got)
	}
	if got := cellColor(e.bitmap, 3); got != (Color{R: 0, G: 0, B: 0}) {
		t.Fatalf("trough cell color = %+v", got)
	}
	if got := cellColor(e.bitmap, 4); got != (Color{R: 127, G: 127, B: 127}) {
		t.Fatalf("flat cell color = %+v, want mid gray", got)
	}
}

func TestPaintExtremeContrast(t *testing.T) {
	e := newTestEngine(t, 8)
	e.SetExtremeContrastEnabled(true)
	e.SetCrestColor(Color{R: 200, G: 100, B: 50})
	e.SetTroughColor(Color{R: 100, G: 50, B: 0})

	e.height[0] = 0.001
	e.height[1] = -0.001

	e.paintBitmap(0, e.sizesq, e.bitmap)
	if got := cellColor(e.bitmap, 0); got != (Color{R: 200, G: 100, B: 50}) {
		t.Fatalf("positive cell = %+v, want crest", got)
	}
	if got := cellColor(e.bitmap, 1); got != (Color{R: 100, G: 50, B: 0}) {
		t.Fatalf("negative cell = %+v, want trough", got)
	}
	if got := cellColor(e.bitmap, 2); got != (Color{R: 150, G: 75, B: 25}) {
		t.Fatalf("zero cell = %+v, want byte average", got)
	}

	// The ternary tests raw height, so a zero amplitude multiplier must not
	// flatten the pool to the midpoint color.
	e.SetAmplitudeMultiplier(0)
	e.paintBitmap(0, e.sizesq, e.bitmap)
	if got := cellColor(e.bitmap, 0); got != (Color{R: 200, G: 100, B: 50}) {
		t.Fatalf("positive cell with zero multiplier = %+v, want crest", got)
	}
	if got := cellColor(e.bitmap, 1); got != (Color{R: 100, G: 50, B: 0}) {
		t.Fatalf("negative cell with zero multiplier = %+v, want trough", got)
	}
}

func TestPaintMassMapBands(t *testing.T) {
	e := newTestEngine(t, 8)
	e.SetShowMassMap(true)
	e.SetMassMapRangeLow(1)
	e.SetMassMapRangeHigh(5)

	e.mass[0] = 1 // c=0
	e.mass[1] = 2 // c=159
	e.mass[2] = 5 // c=636
	e.mass[3] = 9 // clamps to high

	e.paintBitmap(0, e.sizesq, e.bitmap)
	if got := cellColor(e.bitmap, 0); got != (Color{R: 0, G: 0, B: 0}) {
		t.Fatalf("low mass color = %+v, want black", got)
	}
	if got := cellColor(e.bitmap, 1); got != (Color{R: 31, G: 0, B: 127}) {
		t.Fatalf("mid mass color = %+v", got)
	}
	want := Color{R: 255, G: 255, B: 252}
	if got := cellColor(e.bitmap, 2); got != want {
		t.Fatalf("high mass color = %+v, want %+v", got, want)
	}
	if got := cellColor(e.bitmap, 3); got != want {
		t.Fatalf("clamped mass color = %+v, want %+v", got, want)
	}
}

func TestPaintMassMapEmptyRangeIsBlack(t *testing.T) {
	e := newTestEngine(t, 8)
	e.SetShowMassMap(true)
	e.SetMassMapRangeLow(3)
	e.SetMassMapRangeHigh(3)
	for i := range e.bitmap {
		e.bitmap[i] = 0xAA
	}
	e.paintBitmap(0, e.sizesq, e.bitmap)
	for i := range e.bitmap {
		if e.bitmap[i] != 0 {
			t.Fatalf("byte %d = %d, want 0 for an empty mass range", i, e.bitmap[i])
		}
	}
}

func TestPaintRejectsInvalidRange(t *testing.T) {
	e := newTestEngine(t, 8)
	if e.paintBitmap(-1, 4, e.bitmap) {
		t.Fatal("negative first accepted")
	}
	if e.paintBitmap(0, 0, e.bitmap) {
		t.Fatal("zero count accepted")
	}
	if e.paintBitmap(0, e.sizesq+1, e.bitmap) {
		t.Fatal("oversized range accepted")
	}
}
