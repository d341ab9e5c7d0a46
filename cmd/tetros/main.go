// tetros is a headless driver for the tick-driven tetris gameplay engine: it
// runs the engine at its configured tick rate, reads line-oriented controller
// commands from stdin, and optionally serves a read-only WebSocket snapshot
// feed for an external renderer.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/seekerror/logw"

	"github.com/ndyer/tetros/pkg/broadcast"
	"github.com/ndyer/tetros/pkg/controller"
	"github.com/ndyer/tetros/pkg/engine"
)

var (
	width     = flag.Int("width", 10, "Field width")
	height    = flag.Int("height", 25, "Field height, including hidden rows")
	hidden    = flag.Int("hidden", 3, "Hidden rows at the top of the field")
	rs        = flag.String("rs", "srs", "Rotation system: srs, ars, dtet, tengen")
	wk        = flag.String("wallkick", "srs", "Wallkick test: empty, simple, dtet, srs, tgm, tgm3")
	randomize = flag.String("randomizer", "bag", "Randomizer: bag, memoryless, gameboy, tgm1, tgm2")
	lookahead = flag.Int("lookahead", 7, "Randomizer lookahead depth")
	seed      = flag.Int64("seed", 0, "Randomizer RNG seed")
	mspt      = flag.Uint64("mspt", 16, "Tick duration in milliseconds")
	listen    = flag.String("listen", "", "Address to serve the snapshot feed on, e.g. :8080 (empty disables it)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: tetros [options]

TETROS runs a deterministic, tick-driven tetris gameplay engine headlessly.
Controller commands are read one per line from stdin: left, right, down,
drop, rotate_left, rotate_right, hold, quit. With -listen set, a read-only
JSON snapshot of the engine's state is pushed to every connected WebSocket
client once per tick.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	logw.Infof(ctx, "%v starting: field=%vx%v (hidden=%v), rs=%v, wallkick=%v, randomizer=%v/%v, mspt=%v",
		engine.Version(), *width, *height, *hidden, *rs, *wk, *randomize, *lookahead, *mspt)

	opts := engine.DefaultOptions()
	opts.Field.Width = *width
	opts.Field.Height = *height
	opts.Field.Hidden = *hidden
	opts.Field.SpawnX = *width/2 - 1
	opts.RotationSystemName = *rs
	opts.WallkickName = *wk
	opts.RandomizerName = *randomize
	opts.RandomizerLookahead = *lookahead
	opts.Seed = *seed
	opts.Mspt = *mspt

	e := engine.New(ctx, opts)

	var srv *broadcast.Server
	if *listen != "" {
		srv = broadcast.New()
		http.HandleFunc("/ws", srv.Handler(ctx))
		go func() {
			if err := http.ListenAndServe(*listen, nil); err != nil {
				logw.Exitf(ctx, "broadcast server failed: %v", err)
			}
		}()
		logw.Infof(ctx, "serving snapshot feed on %v/ws", *listen)
	}

	in := readStdinLines(ctx)
	ticker := time.NewTicker(time.Duration(*mspt) * time.Millisecond)
	defer ticker.Stop()

	for e.Running() {
		select {
		case line, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			applyCommand(e.Controller(), line)

		case <-ticker.C:
			e.Update()
			if srv != nil {
				srv.Broadcast(ctx, broadcast.Snap(e))
			}
		}
	}

	logw.Infof(ctx, "game over at tick %v: %+v", e.TickCount(), *e.Statistics())
}

// applyCommand maps one line of stdin input onto the controller's held-action
// state. Each line replaces the whole held set: the actions it names stay
// active on every tick until the next line arrives, and every other action
// is released.
func applyCommand(c *controller.Controller, line string) {
	c.DeactivateAll()
	for _, tok := range strings.Fields(line) {
		switch tok {
		case "left":
			c.Activate(controller.MoveLeft)
		case "right":
			c.Activate(controller.MoveRight)
		case "down":
			c.Activate(controller.MoveDown)
		case "drop":
			c.Activate(controller.HardDrop)
		case "rotate_left":
			c.Activate(controller.RotateLeft)
		case "rotate_right":
			c.Activate(controller.RotateRight)
		case "hold":
			c.Activate(controller.Hold)
		case "quit":
			c.Activate(controller.Quit)
		}
	}
}

func readStdinLines(ctx context.Context) <-chan string {
	ret := make(chan string, 1)
	go func() {
		defer close(ret)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			logw.Debugf(ctx, "<< %v", scanner.Text())
			ret <- scanner.Text()
		}
	}()
	return ret
}
