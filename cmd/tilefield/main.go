package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/tilefield/internal/config"
	"chosenoffset.com/tilefield/internal/game"
	"chosenoffset.com/tilefield/internal/palette"
	"chosenoffset.com/tilefield/internal/render"
	ebitenrender "chosenoffset.com/tilefield/internal/render/ebiten"
	"chosenoffset.com/tilefield/internal/render/terminal"
)

func main() {
	configPath := flag.String("config", "tilefield.json", "path to a JSON config file")
	backend := flag.String("backend", "ebiten", "render backend: ebiten or terminal")
	sound := flag.Bool("sound", false, "play a tone when a tile is recolored")
	seed := flag.Int64("seed", 0, "random seed for tile layout and colors (0 = time based)")
	verbose := flag.Bool("verbose", false, "log input handling")
	logFile := flag.String("logfile", "", "write logs to this file instead of stderr")
	flag.Parse()

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applySoundFlag(flag.CommandLine, cfg, *sound)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	log.Printf("Starting %dx%d field with %d tiles (%s backend)...",
		cfg.Surface.Width, cfg.Surface.Height, cfg.Field.TileCount, *backend)

	engine, err := newEngine(*backend, cfg)
	if err != nil {
		log.Fatalf("Failed to create %s backend: %v", *backend, err)
	}

	var gen *palette.Generator
	if *seed != 0 {
		gen = palette.NewSeededGenerator(*seed)
	} else {
		gen = palette.NewGenerator(nil)
	}

	manager, err := game.NewManager(cfg, engine, gen)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	if *verbose {
		manager.Game.SetLogger(log.New(log.Writer(), "tilefield: ", log.Ltime|log.Lmicroseconds))
	}

	if err := manager.Run(); err != nil {
		log.Fatal(err)
	}
}

func newEngine(backend string, cfg *config.Config) (render.Engine, error) {
	switch backend {
	case "ebiten":
		return ebitenrender.NewEngine(cfg.Surface.Width, cfg.Surface.Height), nil
	case "terminal":
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, err
		}
		engine, err := terminal.NewEngine(screen, cfg.Surface.Width, cfg.Surface.Height, terminalOptions(cfg))
		if err != nil {
			return nil, err
		}
		return engine, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

// applySoundFlag overrides the config's audio setting only when -sound was
// given on the command line.
func applySoundFlag(fs *flag.FlagSet, cfg *config.Config, sound bool) {
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "sound" {
			cfg.Audio.Enabled = sound
		}
	})
}

func terminalOptions(cfg *config.Config) terminal.Options {
	opts := terminal.DefaultOptions()
	opts.CellWidth = cfg.Terminal.CellWidth
	opts.CellHeight = cfg.Terminal.CellHeight
	opts.KeyReleaseFrames = cfg.Terminal.KeyReleaseFrames
	return opts
}
