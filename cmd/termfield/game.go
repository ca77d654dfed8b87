package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/particlefield/host"
	"github.com/milk9111/particlefield/render/term"
)

var hudColor = color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}

type Game struct {
	screen  tcell.Screen
	app     *host.App
	view    *term.Screen
	watcher host.ChangeSource

	cols, rows int
	frames     int
	debug      bool
}

func NewGame(screen tcell.Screen, app *host.App, debug bool) *Game {
	cfg := app.Config()
	g := &Game{
		screen: screen,
		app:    app,
		view:   term.NewScreen(screen, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight, cfg.Terminal.Gain, cfg.Background.NRGBA()),
		debug:  debug || cfg.Debug,
	}
	g.handleResize()
	return g
}

func (g *Game) handleResize() {
	g.cols, g.rows = g.screen.Size()
	g.view.Resize(g.cols, g.rows)
	w, h := g.view.PixelSize()
	g.app.Resize(w, h)
}

func (g *Game) viewport() float64 {
	_, h := g.view.PixelSize()
	return h
}

// handleInput applies one event and reports whether the program should keep running.
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev)

	case *tcell.EventMouse:
		x, y := ev.Position()
		px, py := g.view.CellCenter(x, y)
		g.app.Field.SetPointer(px, py)

		step := g.app.Config().Document.WheelStep
		buttons := ev.Buttons()
		if buttons&tcell.WheelDown != 0 {
			g.app.Doc.ScrollBy(step)
		}
		if buttons&tcell.WheelUp != 0 {
			g.app.Doc.ScrollBy(-step)
		}

	case *tcell.EventFocus:
		if !ev.Focused {
			g.app.Field.ClearPointer()
		}

	case *tcell.EventResize:
		g.handleResize()
		g.screen.Sync()
	}

	return true
}

func (g *Game) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyPgDn:
		g.app.Doc.ScrollBy(g.viewport())
	case tcell.KeyPgUp:
		g.app.Doc.ScrollBy(-g.viewport())
	case tcell.KeyDown:
		g.app.Doc.ScrollBy(g.app.Config().Document.WheelStep)
	case tcell.KeyUp:
		g.app.Doc.ScrollBy(-g.app.Config().Document.WheelStep)
	case tcell.KeyHome:
		g.app.Doc.ScrollTo(0)
	case tcell.KeyEnd:
		g.app.Doc.ScrollTo(g.app.Doc.Height())
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'r':
			g.app.Reseed(0)
			log.Printf("reseeded with %d", g.app.Seed())
		case 'd':
			g.debug = !g.debug
		case ' ':
			g.app.Doc.ScrollBy(g.viewport())
		}
	}
	return true
}

// pollConfig applies pending file changes from the watcher.
func (g *Game) pollConfig() {
	if g.watcher == nil || !g.app.Poll(g.watcher) {
		return
	}
	cfg := g.app.Config()
	g.view.SetBackground(cfg.Background.NRGBA())
	g.view.SetGain(cfg.Terminal.Gain)
}

func (g *Game) update() {
	g.frames++
	g.pollConfig()
	g.app.Tick()
}

func (g *Game) draw() {
	g.view.Clear()
	g.app.Draw(g.view)
	if g.debug {
		g.view.Label(0, 0, g.hud(), hudColor)
	}
	g.view.Present()
}

func (g *Game) hud() string {
	st := g.app.Field.Stats()
	return fmt.Sprintf(" frame %d  seed %d  links %d  layers %v  scroll %.3f  vel %+.4f ",
		g.frames, g.app.Seed(), st.Connections, st.PerLayer, st.ScrollProgress, st.ScrollVelocity)
}

func (g *Game) run(tps int) {
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			g.update()
			g.draw()
		}
	}
}
