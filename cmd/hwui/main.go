//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"hwui/internal/app"
	_ "hwui/internal/presets/mame"
	_ "hwui/internal/presets/vstbridge"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	log := app.NewLogger(cfg.Debug)

	if cfg.Snapshot != "" {
		if err := snapshot(cfg); err != nil {
			log.Error("snapshot failed", "err", err)
			os.Exit(1)
		}
		log.Info("wrote snapshot", "path", cfg.Snapshot)
		return
	}

	game, err := app.New(cfg, log)
	if err != nil {
		log.Error("startup failed", "err", err)
		os.Exit(1)
	}
	p := game.Panel()
	w, h := p.Size()

	ebiten.SetWindowTitle("hwui — " + p.Header().Name)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w*cfg.Scale, h*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("run failed", "err", err)
		os.Exit(1)
	}
}

func snapshot(cfg *app.Config) error {
	p, err := app.Open(cfg, app.NewLogger(cfg.Debug))
	if err != nil {
		return err
	}
	return app.SnapshotFile(p, cfg.Snapshot)
}
