package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/particlefield/host"
	"github.com/milk9111/particlefield/render"
)

type Game struct {
	frames int

	app     *host.App
	input   *Input
	screen  *render.Screen
	watcher host.ChangeSource

	menu     *ebitenui.UI
	menuOpen bool
	status   string
	quit     bool

	debug         bool
	width, height float64
}

func NewGame(app *host.App, debug bool) *Game {
	cfg := app.Config()
	g := &Game{
		app:    app,
		input:  NewInput(cfg.Document.WheelStep),
		screen: render.NewScreen(cfg.Background.NRGBA()),
		debug:  debug || cfg.Debug,
	}
	g.menu = NewMenuUI(g)
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++

	g.pollConfig()
	g.input.Update(g.width, g.height)
	in := g.input

	if in.MenuPressed {
		g.menuOpen = !g.menuOpen
	}
	if in.DebugPressed {
		g.debug = !g.debug
	}
	if in.ReseedPressed {
		g.reseed()
	}

	if in.PointerInside {
		g.app.Field.SetPointer(in.PointerX, in.PointerY)
	} else {
		g.app.Field.ClearPointer()
	}
	if in.Scroll != 0 {
		g.app.Doc.ScrollBy(in.Scroll)
	}
	if in.Top {
		g.app.Doc.ScrollTo(0)
	}
	if in.Bottom {
		g.app.Doc.ScrollTo(g.app.Doc.Height())
	}

	g.app.Tick()

	if g.menuOpen {
		g.menu.Update()
	}
	return nil
}

func (g *Game) reseed() {
	g.app.Reseed(0)
	g.status = fmt.Sprintf("seed %d", g.app.Seed())
	log.Printf("reseeded with %d", g.app.Seed())
}

func (g *Game) pollConfig() {
	if g.watcher == nil || !g.app.Poll(g.watcher) {
		return
	}
	cfg := g.app.Config()
	g.screen.SetBackground(cfg.Background.NRGBA())
	g.input.SetWheelStep(cfg.Document.WheelStep)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Target(screen)
	g.app.Draw(g.screen)

	if g.debug {
		st := g.app.Field.Stats()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"Frames: %d    FPS: %.2f    TPS: %.2f\nSeed: %d    Particles: %d %v\nLinks: %d    Scroll: %.3f    Velocity: %+.4f",
			g.frames, ebiten.ActualFPS(), ebiten.ActualTPS(),
			g.app.Seed(), st.Particles, st.PerLayer,
			st.Connections, st.ScrollProgress, st.ScrollVelocity,
		))
	}

	if g.menuOpen {
		g.menu.Draw(screen)
	}
}

// LayoutF renders at the window's size so particles are spread across the whole
// viewport; the field is sized on the first call.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.app.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
