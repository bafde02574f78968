package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/physim/internal/config"
	"github.com/pkg/profile"
)

func main() {
	configPath := flag.String("config", "", "path to a yaml config file")
	watch := flag.Bool("watch", false, "reload the config file when it changes")
	profileMode := flag.String("profile", "", "enable profiling, one of: cpu, mem")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*configPath, *watch, *profileMode); err != nil {
		slog.Error("Simulation failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(configPath string, watch bool, profileMode string) error {
	switch profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", profileMode)
	}

	if watch && configPath == "" {
		return errors.New("-watch requires -config")
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)
	ebiten.SetTPS(cfg.Simulation.TPS)

	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	game := newGame(cfg)

	if watch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go func() {
			err := config.Watch(ctx, configPath, game.Reload, func(err error) {
				slog.Warn("Ignoring config change", slog.Any("err", err))
			})

			if err != nil {
				slog.Error("Config watcher stopped", slog.Any("err", err))
			}
		}()
	}

	slog.Info("Starting simulation",
		slog.String("title", cfg.Window.Title),
		slog.Int("width", cfg.Window.Width),
		slog.Int("height", cfg.Window.Height),
		slog.Int("balls", cfg.Simulation.Balls))

	err := ebiten.RunGame(game)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}

	return err
}
