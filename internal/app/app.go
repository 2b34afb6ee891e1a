//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Game adapts a life.Universe to the ebiten.Game interface. It owns the
// tick pacing and input handling; the universe itself does no scheduling.
type Game struct {
	universe *life.Universe
	painter  *render.GridPainter
	pacer    *core.FixedStep
	stats    *Stats

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs the host loop around an already-seeded universe.
func New(u *life.Universe, cfg Config) *Game {
	return &Game{
		universe: u,
		painter:  render.NewGridPainter(u.Width(), u.Height()),
		pacer:    core.NewFixedStep(cfg.TPS),
		stats:    NewStats(),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.DisplayScale(),
	}
}

// Update handles per-frame input and advances the universe at the
// configured tick rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.universe.ResetRandom()
		g.stats = NewStats()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.universe.ResetDead()
		g.stats = NewStats()
	}

	row, col, onGrid := g.cursorCell()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && onGrid {
		g.universe.ToggleCell(row, col)
	}
	// Stamps wrap toroidally, so an off-grid cursor is still a valid anchor.
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.universe.MakeGlider(row, col)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.universe.MakePulsar(row, col)
	}

	steps := g.pacer.Steps()
	switch {
	case g.tickOnce:
		g.universe.Tick()
		g.stats.Tick()
		g.tickOnce = false
	case !g.paused:
		for i := 0; i < steps; i++ {
			g.universe.Tick()
			g.stats.Tick()
		}
	}
	return nil
}

// Draw renders the current universe state and the HUD status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.universe.Cells(), g.onColor, g.offColor, g.scale)
	g.drawHUD(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.universe.Width() * g.scale, g.universe.Height() * g.scale
}

func (g *Game) cursorCell() (row, col int, ok bool) {
	x, y := ebiten.CursorPosition()
	col, row = x/g.scale, y/g.scale
	ok = row >= 0 && row < g.universe.Height() && col >= 0 && col < g.universe.Width()
	return row, col, ok
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	status := fmt.Sprintf("gen %d  pop %d  %.1f gen/s  %.0fs",
		g.stats.Generation, g.universe.Population(), g.stats.Rate, g.stats.Runtime().Seconds())
	if g.paused {
		status += "  [paused]"
	}
	text.Draw(screen, status, basicfont.Face7x13, 4, 14, color.RGBA{R: 90, G: 220, B: 120, A: 255})
}
