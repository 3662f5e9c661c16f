package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/star-systems/internal/canvas"
	"github.com/iburimskiy/star-systems/internal/config"
	"github.com/iburimskiy/star-systems/internal/game"
	"github.com/iburimskiy/star-systems/internal/orbit"
	"github.com/iburimskiy/star-systems/internal/snapshot"
)

const windowTitle = "Star Systems"

func main() {
	var (
		variantName = flag.String("variant", "a", "layout preset: a (solar_M) or b (solar_alles)")
		snapshotOut = flag.String("snapshot", "", "write one frame to this PNG file instead of opening a window")
		ticks       = flag.Int("ticks", 0, "ticks to advance before writing the snapshot")
		debug       = flag.Bool("debug", false, "log every tick")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	game.SetLogger(logger)

	v, err := config.Lookup(*variantName)
	if err != nil {
		logger.Error("bad flags", "err", err)
		os.Exit(2)
	}

	if *snapshotOut != "" {
		if err := writeSnapshot(v, *snapshotOut, *ticks); err != nil {
			logger.Error("snapshot failed", "err", err)
			os.Exit(1)
		}
		logger.Info("snapshot saved", "path", *snapshotOut, "variant", v.Name, "ticks", *ticks)
		return
	}

	if err := run(v); err != nil {
		logger.Error("window failed", "err", err)
		_ = zenity.Error(err.Error(), zenity.Title(windowTitle), zenity.ErrorIcon)
		os.Exit(1)
	}
}

func run(v config.Variant) error {
	ebiten.SetWindowSize(v.WindowWidth, v.WindowHeight+config.ControlBarHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("%s - %s", windowTitle, v.Name))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TPS())

	g := game.New(v)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func writeSnapshot(v config.Variant, path string, ticks int) error {
	if ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", ticks)
	}
	c := canvas.New(v.WindowWidth, v.WindowHeight, config.Background)
	scene := orbit.NewScene(c, v)
	for i := 0; i < ticks; i++ {
		scene.Tick()
	}
	return snapshot.SavePNG(c, path)
}
