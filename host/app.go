package host

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/milk9111/particlefield/config"
	"github.com/milk9111/particlefield/field"
)

// App wires a field to its scroll source and runs it one frame at a time. Both the
// window and terminal programs drive one.
type App struct {
	Field *field.Field
	Doc   *Document

	cfg         config.Config
	configName  string
	seedFlag    int64
	seed        int64
	auto        *AutoScroll
	sched       *Scheduler
	initialized bool
}

type AppOption func(*App)

// WithConfigName sets the file HandleChange reloads. The default is config.DefaultName.
func WithConfigName(name string) AppOption {
	return func(a *App) {
		if name != "" {
			a.configName = name
		}
	}
}

// WithSeed pins the seed over whatever the config files say. Zero leaves it to the file.
func WithSeed(seed int64) AppOption {
	return func(a *App) {
		a.seedFlag = seed
	}
}

func NewApp(cfg config.Config, opts ...AppOption) (*App, error) {
	a := &App{configName: config.DefaultName}
	for _, opt := range opts {
		opt(a)
	}
	a.cfg = a.override(cfg)
	a.Doc = NewDocument(a.cfg.Document.Pages)
	a.seed = pickSeed(a.cfg.Seed)

	var fieldOpts []field.Option
	if a.cfg.ConnectionScan == config.ScanGrid {
		fieldOpts = append(fieldOpts, field.WithGridScan())
	}
	a.Field = field.New(rand.New(rand.NewSource(a.seed)), fieldOpts...)

	if err := a.loadAutoScroll(); err != nil {
		return nil, err
	}
	a.rebuild()
	return a, nil
}

// override applies the command-line settings on top of a loaded config.
func (a *App) override(cfg config.Config) config.Config {
	if a.seedFlag != 0 {
		cfg.Seed = a.seedFlag
	}
	return cfg
}

func pickSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func (a *App) loadAutoScroll() error {
	a.auto = nil
	if !a.cfg.AutoScroll.Enabled {
		return nil
	}
	src, err := config.LoadScript(a.cfg.AutoScroll.Script)
	if err != nil {
		return fmt.Errorf("host: load script %s: %w", a.cfg.AutoScroll.Script, err)
	}
	auto, err := NewAutoScroll(a.cfg.AutoScroll.Script, src)
	if err != nil {
		return err
	}
	a.auto = auto
	return nil
}

// rebuild picks the frame steps: a script replaces the document as scroll source.
func (a *App) rebuild() {
	if a.auto != nil {
		a.sched = NewScheduler(a.auto, Update)
		return
	}
	a.sched = NewScheduler(StepFunc(a.Doc.Apply), Update)
}

func (a *App) Config() config.Config {
	return a.cfg
}

func (a *App) Seed() int64 {
	return a.seed
}

// Scripted reports whether scrolling is driven by a script.
func (a *App) Scripted() bool {
	return a.auto != nil
}

// Resize creates the particles on the first call and rescales the viewport afterwards.
func (a *App) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	a.Doc.SetViewport(height)
	if !a.initialized {
		a.Field.Init(width, height)
		a.initialized = true
		return
	}
	a.Field.Resize(width, height)
}

// Reseed recreates the particles from seed; zero picks a time-based seed.
func (a *App) Reseed(seed int64) {
	a.seed = pickSeed(seed)
	a.Field.Reseed(rand.New(rand.NewSource(a.seed)))
}

// Tick advances one frame. It does nothing until the first Resize.
func (a *App) Tick() {
	if !a.initialized {
		return
	}
	a.sched.Run(a.Field)
	if a.auto.Failed() {
		log.Printf("autoscroll %s stopped; scrolling follows the document", a.cfg.AutoScroll.Script)
		a.auto = nil
		a.rebuild()
	}
}

func (a *App) Draw(s field.Surface) {
	if !a.initialized {
		return
	}
	a.Field.Draw(s)
}

// HandleChange reacts to a changed file reported by a config.Watcher. It returns true
// when the settings were replaced so the caller can pick up rendering options.
func (a *App) HandleChange(path string) (bool, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if filepath.Base(path) != filepath.Base(a.configName) {
			return false, nil
		}
		cfg, err := config.LoadConfig(a.configName)
		if err != nil {
			return false, err
		}
		cfg = a.override(cfg)
		if cfg.ConnectionScan != a.cfg.ConnectionScan {
			log.Printf("connection_scan change to %q applies on restart", cfg.ConnectionScan)
			cfg.ConnectionScan = a.cfg.ConnectionScan
		}
		seedChanged := cfg.Seed != 0 && cfg.Seed != a.cfg.Seed
		a.cfg = cfg
		a.Doc.SetPages(cfg.Document.Pages)
		if seedChanged && a.initialized {
			a.Reseed(cfg.Seed)
		}
		if err := a.loadAutoScroll(); err != nil {
			a.rebuild()
			return true, err
		}
		a.rebuild()
		return true, nil
	case ".tengo":
		if !a.cfg.AutoScroll.Enabled {
			return false, nil
		}
		if filepath.Base(path) != filepath.Base(a.cfg.AutoScroll.Script) {
			return false, nil
		}
		err := a.loadAutoScroll()
		a.rebuild()
		return false, err
	}
	return false, nil
}

// ChangeSource reports changed files between frames. *config.Watcher is one.
type ChangeSource interface {
	Poll() (string, bool)
	PollError() (error, bool)
}

// Poll applies every pending change from src and logs watcher and reload errors. It
// returns true when the settings were replaced.
func (a *App) Poll(src ChangeSource) bool {
	for {
		err, ok := src.PollError()
		if !ok {
			break
		}
		log.Printf("config watcher: %v", err)
	}

	reloaded := false
	for {
		path, ok := src.Poll()
		if !ok {
			return reloaded
		}
		changed, err := a.HandleChange(path)
		if err != nil {
			log.Printf("reload %s: %v", path, err)
		}
		if changed {
			log.Printf("reloaded %s", path)
			reloaded = true
		}
	}
}

// WatchDirs lists the on-disk directories a config.Watcher should follow.
func WatchDirs() []string {
	var dirs []string
	for _, dir := range []string{config.Dir, filepath.Join(config.Dir, "scripts")} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
