//go:build !ebiten

package main

import (
	"flag"
	"fmt"
	"os"

	"hwui/internal/app"
	_ "hwui/internal/presets/mame"
	_ "hwui/internal/presets/vstbridge"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	log := app.NewLogger(cfg.Debug)

	if cfg.Snapshot == "" {
		fmt.Fprintln(os.Stderr, "The GUI build of hwui requires the ebiten build tag.")
		fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/hwui`, or pass -snapshot out.png to render headless.")
		os.Exit(2)
	}

	p, err := app.Open(cfg, log)
	if err != nil {
		log.Error("startup failed", "err", err)
		os.Exit(1)
	}
	if err := app.SnapshotFile(p, cfg.Snapshot); err != nil {
		log.Error("snapshot failed", "err", err)
		os.Exit(1)
	}
	log.Info("wrote snapshot", "path", cfg.Snapshot)
}
