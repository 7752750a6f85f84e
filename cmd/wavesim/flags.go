package main

import "flag"

// Command-line flags that control the pool geometry, the rate limiters, and
// the initial render configuration. Pause, the mass map and extreme contrast
// also toggle through the keyboard bindings listed in the window title bar.
var (
	// sizeFlag sets the pool edge length in cells.
	sizeFlag = flag.Int("size", 300, "pool edge length in cells")

	// threadsFlag sets how many workers share the stencil and paint passes.
	threadsFlag = flag.Int("threads", 2, "worker thread count (1-32)")

	// ipsFlag limits the simulation iteration rate; 0 runs unlimited.
	ipsFlag = flag.Float64("ips", 70, "iterations per second (0 = unlimited)")

	// fpsFlag limits the paint rate; 0 runs unlimited.
	fpsFlag = flag.Float64("fps", 25, "paints per second (0 = unlimited)")

	// ampFlag scales wave height into display brightness.
	ampFlag = flag.Int("amp", 10, "amplitude multiplier for brightness")

	// crestFlag, troughFlag and staticFlag are hex colors for the three
	// display roles.
	crestFlag  = flag.String("crest", "#ffffff", "crest color (hex)")
	troughFlag = flag.String("trough", "#000000", "trough color (hex)")
	staticFlag = flag.String("static", "#ffff00", "static wall color (hex)")

	// contrastFlag starts the viewer in extreme-contrast mode.
	contrastFlag = flag.Bool("contrast", false, "start with extreme contrast enabled")

	// massMapFlag starts the viewer on the mass map instead of the wave view.
	massMapFlag = flag.Bool("mass-map", false, "start with the mass map shown")

	// powerSaveFlag makes the conductor sleep instead of spin when idle.
	powerSaveFlag = flag.Bool("power-save", false, "sleep between cycles instead of yielding")

	// quietFlag suppresses the periodic throughput log line.
	quietFlag = flag.Bool("quiet", false, "disable the throughput log")

	// debugFlag enables the host FPS overlay.
	debugFlag = flag.Bool("debug", false, "show host FPS overlay")
)
