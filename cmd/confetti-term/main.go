// Command confetti-term runs both confetti effects in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/confetti/internal/ambient"
	"github.com/iburimskiy/confetti/internal/asset"
	"github.com/iburimskiy/confetti/internal/burst"
	"github.com/iburimskiy/confetti/internal/config"
	"github.com/iburimskiy/confetti/internal/frame"
	"github.com/iburimskiy/confetti/internal/render/term"
)

type app struct {
	screen   tcell.Screen
	loop     *frame.Loop
	board    *ambient.Board
	canvas   *term.Canvas
	renderer *term.Renderer
	bursts   *burst.System
	shower   *ambient.System
	burstCfg burst.Config
}

// newApp wires both effects to screen. A nil clock uses the system clock.
func newApp(screen tcell.Screen, cfg *config.Config, clock frame.Clock) *app {
	a := &app{
		screen:   screen,
		loop:     frame.NewLoop(clock),
		board:    ambient.NewBoard(0, 0),
		canvas:   term.NewCanvas(1),
		burstCfg: cfg.Burst,
	}
	a.renderer = term.NewRenderer(screen, a.board, a.canvas)

	w, h := a.renderer.Viewport()
	a.board.SetViewport(w, h)
	a.bursts = burst.NewSystem(a.loop, a.canvas,
		burst.WithViewport(burst.Viewport{Width: w, Height: h, PixelRatio: 1}),
		burst.WithIconLoader(asset.NewLoader()),
	)
	a.shower = ambient.NewSystem(a.loop, a.board,
		ambient.WithTuning(cfg.Ambient.Tuning),
		ambient.WithTheme(cfg.Theme()),
	)
	return a
}

// handleInput reports whether the app should quit.
func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		a.screen.Sync()
		w, h := a.renderer.Viewport()
		a.board.SetViewport(w, h)
		a.bursts.ResizeDebounced(burst.Viewport{Width: w, Height: h, PixelRatio: 1})
	}
	return false
}

func (a *app) handleKey(k tcell.Key, r rune) bool {
	if k == tcell.KeyEscape || k == tcell.KeyCtrlC {
		return true
	}
	if k != tcell.KeyRune {
		return false
	}
	switch r {
	case ' ':
		a.bursts.Spawn(a.burstCfg)
	case 'r':
		a.bursts.Reset(a.burstCfg)
	case 'a':
		a.shower.Start()
	case 's':
		a.shower.Stop()
	case 'q':
		return true
	}
	return false
}

func (a *app) frame() {
	a.loop.Tick()
	a.renderer.Flush()
}

func (a *app) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	a.bursts.Spawn(a.burstCfg)
	for {
		select {
		case ev := <-events:
			if a.handleInput(ev) {
				return
			}
		case <-ticker.C:
			a.frame()
		}
	}
}

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	log.SetOutput(io.Discard) // the screen owns the terminal

	a := newApp(screen, cfg, nil)
	a.run()
	screen.Fini()
}
