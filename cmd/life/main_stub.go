//go:build !ebiten

// Without the ebiten build tag the binary falls back to the text view: it
// advances the universe at the configured rate and prints the glyph grid to
// stdout for a fixed number of generations.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"torus-life/internal/app"
	"torus-life/pkg/life"
)

func main() {
	cfg := app.NewConfig()
	gens := flag.Int("gens", 60, "generations to print before exiting")
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

	if cfg.TPS <= 0 {
		cfg.TPS = 10
	}
	tick := time.NewTicker(time.Second / time.Duration(cfg.TPS))
	defer tick.Stop()

	for gen := 0; gen < *gens; gen++ {
		fmt.Printf("generation %d, population %d\n%s\n", gen, u.Population(), u)
		<-tick.C
		u.Tick()
	}
}
