package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/guptarohit/asciigraph"

	"wavepool/wave"
)

// Command-line flags for the probe run.
var (
	// sizeFlag sets the pool edge length in cells.
	sizeFlag = flag.Int("size", 100, "pool edge length in cells")

	// stepsFlag is how many iterations to run before plotting.
	stepsFlag = flag.Int("steps", 600, "iterations to simulate")

	// probeXFlag and probeYFlag locate the sampled cell. Negative values
	// sample the pool center.
	probeXFlag = flag.Int("x", -1, "probe cell x (default: center)")
	probeYFlag = flag.Int("y", -1, "probe cell y (default: center)")

	// ipsFlag bounds the iteration rate so the sampling loop keeps up.
	ipsFlag = flag.Float64("ips", 500, "iterations per second")

	// periodFlag and ampFlag configure the driving point source.
	periodFlag = flag.Float64("period", 20, "oscillator period in iterations")
	ampFlag    = flag.Float64("amp", 1, "oscillator amplitude")

	// graphHeightFlag and graphWidthFlag shape the ASCII chart.
	graphHeightFlag = flag.Int("graph-height", 12, "chart height in rows")
	graphWidthFlag  = flag.Int("graph-width", 78, "chart width in columns")
)

func main() {
	flag.Parse()

	e := wave.New()
	defer e.Dispose()
	e.SetSize(*sizeFlag)
	e.SetLogPerformance(false)
	e.SetRenderEnabled(false)
	e.SetIterationsPerSecond(*ipsFlag)
	e.SetShiftParticlesEnabled(false)

	n := e.Size()
	px, py := *probeXFlag, *probeYFlag
	if px < 0 || px >= n {
		px = n / 2
	}
	if py < 0 || py >= n {
		py = n / 2
	}

	e.SetOscillatorSource(0, wave.PointSource)
	e.SetOscillatorLocation(0, 0, wave.Point{X: float64(n) / 4, Y: float64(n) / 4})
	e.SetOscillatorAmplitude(0, *ampFlag)
	e.SetOscillatorPeriod(0, *periodFlag)
	e.SetOscillatorEnabled(0, true)

	samples := make([]float64, 0, *stepsFlag)
	probe := px + py*n
	e.Start()
	for len(samples) < *stepsFlag {
		if !e.Lock() {
			log.Fatal("pool is already locked")
		}
		done := e.Iterations()
		if done > len(samples) {
			samples = append(samples, e.Data(wave.AttrHeight)[probe])
		}
		e.Unlock()
	}
	e.Stop()

	chart := asciigraph.Plot(samples,
		asciigraph.Height(*graphHeightFlag),
		asciigraph.Width(*graphWidthFlag),
		asciigraph.Caption(fmt.Sprintf("height at (%d,%d) over %d iterations", px, py, *stepsFlag)))
	fmt.Println(chart)
}
