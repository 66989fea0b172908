// cmd/projector/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"hexmancer/internal/config"
	"hexmancer/internal/event"
	"hexmancer/internal/history"
	"hexmancer/internal/projector"
	"hexmancer/pkg/hexmap"
	"hexmancer/pkg/render"
)

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("config file not found, using defaults", "path", path)
		return config.Default(), nil
	}
	return cfg, err
}

func main() {
	var configPath, stillPath string
	var verbose bool
	flag.StringVar(&configPath, "config", "settings.yaml", "settings file")
	flag.StringVar(&stillPath, "still", "", "image shown when Tab is pressed")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With("session", uuid.NewString())
	slog.SetDefault(logger)

	if err := run(configPath, stillPath, logger); err != nil {
		slog.Error("projector failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, stillPath string, logger *slog.Logger) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	store, err := history.Open(cfg.History.Backend, cfg.History.Path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("closing history", "error", err)
		}
	}()

	hm, err := hexmap.Open(cfg.HexMap(), cfg.Map.Image, store)
	if err != nil {
		return fmt.Errorf("build hex map: %w", err)
	}
	slog.Info("hex map ready", "status", hm.Status().String())

	width, height := cfg.Map.Resolution[0], cfg.Map.Resolution[1]
	var still projector.State
	if stillPath != "" {
		img, err := render.LoadImage(stillPath)
		if err != nil {
			return fmt.Errorf("load still image: %w", err)
		}
		still = projector.NewStillState(img, width, height)
	}

	bus := event.NewDispatcher()
	if cfg.Projector.DumpPath != "" {
		dumper := &event.Dumper{Map: hm, Path: cfg.Projector.DumpPath, Logger: logger}
		dumper.OnEvent(event.Event{Type: event.Moved, Status: hm.Status()})
		bus.Subscribe(dumper)
	}

	app := projector.NewApp(projector.NewMapState(hm, bus, logger), still, width, height)

	if !projector.SelectMonitor(*cfg.Projector.Monitor) {
		slog.Warn("monitor not found, using primary", "monitor", *cfg.Projector.Monitor)
	}
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(cfg.Projector.Title)
	ebiten.SetFullscreen(cfg.Projector.Fullscreen)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
