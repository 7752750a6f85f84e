package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"wavepool/wave"
)

// Command-line flags for the headless streamer.
var (
	// addrFlag is the HTTP listen address.
	addrFlag = flag.String("addr", ":8080", "HTTP listen address")

	// sizeFlag sets the pool edge length in cells.
	sizeFlag = flag.Int("size", 300, "pool edge length in cells")

	// threadsFlag sets how many workers share the stencil and paint passes.
	threadsFlag = flag.Int("threads", 2, "worker thread count (1-32)")

	// ipsFlag limits the simulation iteration rate; 0 runs unlimited.
	ipsFlag = flag.Float64("ips", 100, "iterations per second (0 = unlimited)")

	// fpsFlag limits the frame broadcast rate; 0 runs unlimited.
	fpsFlag = flag.Float64("fps", 25, "frames per second (0 = unlimited)")
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	clients      = make(map[*websocket.Conn]*sync.Mutex)
	clientsMutex sync.RWMutex
)

// broadcastFrame pushes one raw RGB frame to every connected socket.
// Writers that fail are dropped by their own reader goroutine on the next
// read error, so failures here are only logged.
func broadcastFrame(rgb []byte) {
	clientsMutex.RLock()
	defer clientsMutex.RUnlock()
	for conn, mu := range clients {
		mu.Lock()
		err := conn.WriteMessage(websocket.BinaryMessage, rgb)
		mu.Unlock()
		if err != nil {
			log.Println("frame write error:", err)
		}
	}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("websocket upgrade error:", err)
		return
	}
	defer conn.Close()

	connMutex := &sync.Mutex{}
	clientsMutex.Lock()
	clients[conn] = connMutex
	clientsMutex.Unlock()
	defer func() {
		clientsMutex.Lock()
		delete(clients, conn)
		clientsMutex.Unlock()
	}()

	log.Println("client connected:", conn.RemoteAddr())
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			log.Println("client gone:", conn.RemoteAddr())
			return
		}
	}
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>wavepool</title></head>
<body style="margin:0;background:#111">
<canvas id="pool" width="%d" height="%d" style="image-rendering:pixelated;width:100vmin;height:100vmin"></canvas>
<script>
const size = %d;
const canvas = document.getElementById("pool");
const ctx = canvas.getContext("2d");
const img = ctx.createImageData(size, size);
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.binaryType = "arraybuffer";
ws.onmessage = (ev) => {
	const rgb = new Uint8Array(ev.data);
	for (let i = 0; i < size * size; i++) {
		img.data[i * 4] = rgb[i * 3];
		img.data[i * 4 + 1] = rgb[i * 3 + 1];
		img.data[i * 4 + 2] = rgb[i * 3 + 2];
		img.data[i * 4 + 3] = 255;
	}
	ctx.putImageData(img, 0, 0);
};
</script>
</body>
</html>
`

func serveHome(size int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, indexPage, size, size, size)
	}
}

// buildScene sets up a point-source ripple so a fresh server has something
// to show.
func buildScene(e *wave.Engine) {
	n := float64(e.Size())
	e.SetOscillatorSource(0, wave.PointSource)
	e.SetOscillatorLocation(0, 0, wave.Point{X: n / 2, Y: n / 2})
	e.SetOscillatorAmplitude(0, 0.2)
	e.SetOscillatorPeriod(0, 20)
	e.SetOscillatorEnabled(0, true)
}

func main() {
	flag.Parse()

	e := wave.New()
	defer e.Dispose()
	e.SetSize(*sizeFlag)
	e.SetNumberOfThreads(*threadsFlag)
	e.SetIterationsPerSecond(*ipsFlag)
	e.SetFramesPerSecond(*fpsFlag)
	e.SetLogPerformance(false)
	buildScene(e)

	frame := make([]byte, e.Size()*e.Size()*3)
	e.SetRenderListener(func(rgb []byte) {
		copy(frame, rgb)
		broadcastFrame(frame)
	})
	e.Start()

	http.HandleFunc("/", serveHome(e.Size()))
	http.HandleFunc("/ws", handleWebSocket)
	log.Printf("serving on %s", *addrFlag)
	log.Fatal(http.ListenAndServe(*addrFlag, nil))
}
