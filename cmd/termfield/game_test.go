package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/particlefield/config"
	"github.com/milk9111/particlefield/field"
	"github.com/milk9111/particlefield/host"
)

func newTestGame(t *testing.T) (*Game, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 20)

	cfg := config.Default()
	cfg.Seed = 3
	app, err := host.NewApp(cfg)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return NewGame(screen, app, false), screen
}

func TestGameSizesFieldFromCells(t *testing.T) {
	g, screen := newTestGame(t)
	if w, h := g.app.Field.Size(); w != 320 || h != 320 {
		t.Fatalf("expected a 320x320 virtual surface, got %vx%v", w, h)
	}
	if n := len(g.app.Field.Particles()); n != field.ParticleCount {
		t.Fatalf("expected %d particles, got %d", field.ParticleCount, n)
	}

	screen.SetSize(50, 10)
	g.handleInput(tcell.NewEventResize(50, 10))
	if w, h := g.app.Field.Size(); w != 400 || h != 160 {
		t.Fatalf("expected 400x160 after resize, got %vx%v", w, h)
	}
}

func TestGameQuitKeys(t *testing.T) {
	g, _ := newTestGame(t)
	cases := []struct {
		name string
		ev   *tcell.EventKey
		keep bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{"ctrl_c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false},
		{"page_down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), true},
		{"other_rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), true},
	}
	for _, c := range cases {
		if got := g.handleInput(c.ev); got != c.keep {
			t.Fatalf("%s: expected keep=%v, got %v", c.name, c.keep, got)
		}
	}
}

func TestGameScrollKeys(t *testing.T) {
	g, _ := newTestGame(t)
	doc := g.app.Doc

	g.handleInput(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone))
	if doc.Offset() != 320 {
		t.Fatalf("page down should scroll one viewport, got %v", doc.Offset())
	}
	g.handleInput(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if doc.Offset() != 272 {
		t.Fatalf("up should scroll one wheel step back, got %v", doc.Offset())
	}
	g.handleInput(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	if doc.Progress() != 1 {
		t.Fatalf("end should reach the bottom, got %v", doc.Progress())
	}
	g.handleInput(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	if doc.Offset() != 0 {
		t.Fatalf("home should return to the top, got %v", doc.Offset())
	}

	g.handleInput(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	if doc.Offset() != 48 {
		t.Fatalf("wheel down should scroll one step, got %v", doc.Offset())
	}
}

func TestGamePointer(t *testing.T) {
	g, _ := newTestGame(t)
	g.handleInput(tcell.NewEventMouse(2, 1, tcell.ButtonNone, tcell.ModNone))
	if p := g.app.Field.Pointer(); p.X != 20 || p.Y != 24 {
		t.Fatalf("expected pointer at the cell centre (20, 24), got %v", p)
	}

	g.handleInput(tcell.NewEventFocus(false))
	if p := g.app.Field.Pointer(); p.X != field.PointerSentinel || p.Y != field.PointerSentinel {
		t.Fatalf("losing focus should park the pointer, got %v", p)
	}
}

func TestGameFrame(t *testing.T) {
	g, screen := newTestGame(t)
	g.debug = true
	g.update()
	g.draw()

	cells, w, h := screen.GetContents()
	if w != 40 || h != 20 || len(cells) != 800 {
		t.Fatalf("expected a 40x20 frame, got %dx%d", w, h)
	}
	if g.frames != 1 {
		t.Fatalf("expected one frame, got %d", g.frames)
	}
	if r := cells[1].Runes; len(r) == 0 || r[0] != 'f' {
		t.Fatalf("debug line should start the top row, got %q", r)
	}
}

type fakeSource struct {
	paths []string
}

func (s *fakeSource) Poll() (string, bool) {
	if len(s.paths) == 0 {
		return "", false
	}
	p := s.paths[0]
	s.paths = s.paths[1:]
	return p, true
}

func (s *fakeSource) PollError() (error, bool) {
	return nil, false
}

func TestGamePollConfig(t *testing.T) {
	old := config.Dir
	config.Dir = t.TempDir()
	t.Cleanup(func() { config.Dir = old })

	g, _ := newTestGame(t)
	path := filepath.Join(config.Dir, config.DefaultName)
	if err := os.WriteFile(path, []byte("background: \"#102030\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g.watcher = &fakeSource{paths: []string{path}}
	g.update()

	g.view.Clear()
	want := color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}
	if got := g.view.Color(0, 0); got != want {
		t.Fatalf("a reload should repaint the background, expected %v, got %v", want, got)
	}
}
