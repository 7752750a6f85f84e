package main

import (
	"flag"
	"fmt"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lucasb-eyer/go-colorful"

	"wavepool/wave"
)

// Game hosts the engine window. The engine paints on its own conductor
// goroutine; the render callback copies each frame into pixels under
// frameMu and Draw uploads the latest copy.
type Game struct {
	engine  *wave.Engine
	size    int
	frameMu sync.Mutex
	pixels  []byte
}

func (g *Game) onFrame(rgb []byte) {
	g.frameMu.Lock()
	for i := 0; i < g.size*g.size; i++ {
		g.pixels[i*4] = rgb[i*3]
		g.pixels[i*4+1] = rgb[i*3+1]
		g.pixels[i*4+2] = rgb[i*3+2]
		g.pixels[i*4+3] = 0xFF
	}
	g.frameMu.Unlock()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.engine.Working() {
			g.engine.Stop()
		} else {
			g.engine.Start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.engine.SetShowMassMap(!g.engine.ShowMassMap())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.engine.SetExtremeContrastEnabled(!g.engine.ExtremeContrastEnabled())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.frameMu.Lock()
	screen.WritePixels(g.pixels)
	g.frameMu.Unlock()
	if *debugFlag {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("host fps %.1f\niterations %d", ebiten.ActualFPS(), g.engine.Iterations()))
	}
}

func (g *Game) Layout(_, _ int) (int, int) { return g.size, g.size }

func parseColor(hex string) (wave.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return wave.Color{}, err
	}
	r, gr, b := c.RGB255()
	return wave.Color{R: r, G: gr, B: b}, nil
}

// buildScene drops a line-source beam, a static mirror column, and a strip
// of heavy cells into the pool. Coordinates scale with the pool size so the
// scene survives the -size flag.
func buildScene(e *wave.Engine) {
	size := float64(e.Size())
	scale := size / 300

	e.SetOscillatorSource(0, wave.LineSource)
	e.SetOscillatorLocation(0, 0, wave.Point{X: 260 * scale, Y: 280 * scale})
	e.SetOscillatorLocation(0, 1, wave.Point{X: 280 * scale, Y: 240 * scale})
	e.SetOscillatorAmplitude(0, 0.1)
	e.SetOscillatorPeriod(0, 8)
	e.SetOscillatorEnabled(0, true)

	n := e.Size()
	e.Lock()
	static := e.StaticData()
	mass := e.Data(wave.AttrMass)
	mirrorX := n * 2 / 5
	for y := n / 5; y < n*3/5; y++ {
		static[mirrorX+y*n] = 1
	}
	for y := n * 7 / 10; y < n*4/5; y++ {
		for x := n / 10; x < n*9/10; x++ {
			mass[x+y*n] = 4
		}
	}
	e.Unlock()
}

func main() {
	flag.Parse()

	crest, err := parseColor(*crestFlag)
	if err != nil {
		log.Fatalf("bad -crest value %q: %v", *crestFlag, err)
	}
	trough, err := parseColor(*troughFlag)
	if err != nil {
		log.Fatalf("bad -trough value %q: %v", *troughFlag, err)
	}
	walls, err := parseColor(*staticFlag)
	if err != nil {
		log.Fatalf("bad -static value %q: %v", *staticFlag, err)
	}

	e := wave.New()
	defer e.Dispose()
	e.SetSize(*sizeFlag)
	e.SetNumberOfThreads(*threadsFlag)
	e.SetIterationsPerSecond(*ipsFlag)
	e.SetFramesPerSecond(*fpsFlag)
	e.SetAmplitudeMultiplier(*ampFlag)
	e.SetCrestColor(crest)
	e.SetTroughColor(trough)
	e.SetStaticColor(walls)
	e.SetExtremeContrastEnabled(*contrastFlag)
	e.SetShowMassMap(*massMapFlag)
	e.SetPowerSaveMode(*powerSaveFlag)
	e.SetLogPerformance(!*quietFlag)
	buildScene(e)

	g := &Game{
		engine: e,
		size:   e.Size(),
		pixels: make([]byte, e.Size()*e.Size()*4),
	}
	e.SetRenderListener(g.onFrame)
	e.Start()

	ebiten.SetWindowSize(e.Size()*2, e.Size()*2)
	ebiten.SetWindowTitle("wavepool (space: pause, m: mass map, c: contrast)")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
