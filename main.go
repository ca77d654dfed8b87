package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/particlefield/config"
	"github.com/milk9111/particlefield/host"
)

func main() {
	configName := flag.String("config", config.DefaultName, "config file name, read from config/ before the embedded copy")
	seed := flag.Int64("seed", 0, "particle seed; overrides the config when non-zero")
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	watch := flag.Bool("watch", true, "reload config/ and its scripts when they change on disk")
	flag.Parse()

	cfg, err := config.LoadConfig(*configName)
	if err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetTPS(cfg.TPS)

	app, err := host.NewApp(cfg, host.WithConfigName(*configName), host.WithSeed(*seed))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("seed %d", app.Seed())

	game := NewGame(app, *debug)

	if dirs := host.WatchDirs(); *watch && len(dirs) > 0 {
		w, err := config.NewWatcher(dirs...)
		if err != nil {
			log.Printf("config watcher: %v", err)
		} else {
			defer w.Close()
			game.watcher = w
		}
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
