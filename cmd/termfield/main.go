// Command termfield runs the particle field in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/particlefield/config"
	"github.com/milk9111/particlefield/host"
)

func main() {
	configName := flag.String("config", config.DefaultName, "config file name, read from config/ before the embedded copy")
	seed := flag.Int64("seed", 0, "particle seed; overrides the config when non-zero")
	debug := flag.Bool("debug", false, "show the stats line")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	// The terminal owns stdout and stderr while running.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.LoadConfig(*configName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	app, err := host.NewApp(cfg, host.WithConfigName(*configName), host.WithSeed(*seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	game := NewGame(screen, app, *debug)
	if dirs := host.WatchDirs(); len(dirs) > 0 {
		w, err := config.NewWatcher(dirs...)
		if err != nil {
			log.Printf("config watcher: %v", err)
		} else {
			defer w.Close()
			game.watcher = w
		}
	}

	log.Printf("termfield seed %d", app.Seed())
	game.run(cfg.TPS)
}
