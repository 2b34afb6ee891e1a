//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"torus-life/internal/app"
	"torus-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	u := life.New(cfg.Width, cfg.Height, cfg.CellSize, cfg.Seed)
	if u.Width() <= 0 || u.Height() <= 0 {
		log.Fatalf("surface %dx%d with cell size %d leaves no cells", cfg.Width, cfg.Height, cfg.CellSize)
	}
	log.Printf("surface %dx%d, cell size %d: %dx%d cells", cfg.Width, cfg.Height, cfg.CellSize, u.Width(), u.Height())

	game := app.New(u, cfg)
	ebiten.SetWindowTitle("torus-life")
	ebiten.SetWindowSize(u.Width()*cfg.DisplayScale(), u.Height()*cfg.DisplayScale())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
