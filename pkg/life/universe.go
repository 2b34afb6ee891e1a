// Package life implements Conway's Game of Life on a toroidal grid. The
// engine owns the cell buffers and the generation update; rendering, input
// and tick scheduling belong to the host.
package life

import (
	"strings"

	"torus-life/pkg/core"
)

// Cell is the state of a single grid cell. The numeric values matter: a
// Cell contributes its own value to a neighbor count.
type Cell uint8

const (
	// Dead marks an empty cell.
	Dead Cell = iota
	// Alive marks a live cell.
	Alive
)

// Toggle flips the cell between Dead and Alive.
func (c *Cell) Toggle() {
	if *c == Dead {
		*c = Alive
	} else {
		*c = Dead
	}
}

// Coord addresses a single cell by row and column.
type Coord struct {
	Row int
	Col int
}

// Universe is a width×height toroidal Game of Life grid stored row-major.
// It keeps two same-sized buffers: Tick writes the next generation into the
// back buffer and swaps, so no tick allocates.
//
// A Universe is not safe for concurrent use; callers must serialize access.
type Universe struct {
	width  int
	height int
	active []Cell
	back   []Cell
	rng    *core.RNG
}

// New derives a grid from a host surface of width×height pixels, scaling
// each axis down by cellSize+1 (one pixel of gutter per cell). The live
// buffer is randomly seeded from the given seed.
func New(width, height, cellSize int, seed int64) *Universe {
	u := &Universe{
		width:  width / (cellSize + 1),
		height: height / (cellSize + 1),
		rng:    core.NewRNG(seed),
	}
	u.active = make([]Cell, u.width*u.height)
	u.back = make([]Cell, u.width*u.height)
	u.ResetRandom()
	return u
}

// Width returns the number of columns.
func (u *Universe) Width() int { return u.width }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.height }

// Cells exposes the live buffer as a read-only view for zero-copy
// rendering. The slice is valid until the next mutating call; SetWidth and
// SetHeight invalidate both its length and contents.
func (u *Universe) Cells() []Cell { return u.active }

// Population returns the number of Alive cells.
func (u *Universe) Population() int {
	count := 0
	for _, c := range u.active {
		count += int(c)
	}
	return count
}

func (u *Universe) index(row, col int) int { return row*u.width + col }

// wrap maps v into [0, n) with a bias so negative values land correctly.
func wrap(v, n int) int { return (v%n + n) % n }

// ResetRandom refills the live buffer from the universe's seeded stream:
// each cell draws a uniform integer in [1, 100) and comes up Alive iff the
// draw exceeds 50 (P(alive) = 49/99).
func (u *Universe) ResetRandom() {
	for i := range u.active {
		if u.rng.Roll(1, 100) > 50 {
			u.active[i] = Alive
		} else {
			u.active[i] = Dead
		}
	}
}

// ResetDead refills the live buffer with Dead cells.
func (u *Universe) ResetDead() {
	for i := range u.active {
		u.active[i] = Dead
	}
}

// SetWidth resizes the grid to w columns. Both buffers are reallocated all
// Dead; prior cell state is discarded.
func (u *Universe) SetWidth(w int) {
	u.width = w
	u.realloc()
}

// SetHeight resizes the grid to h rows. Both buffers are reallocated all
// Dead; prior cell state is discarded.
func (u *Universe) SetHeight(h int) {
	u.height = h
	u.realloc()
}

func (u *Universe) realloc() {
	u.active = make([]Cell, u.width*u.height)
	u.back = make([]Cell, u.width*u.height)
}

// ToggleCell flips the cell at (row, col). Indices must already be in
// bounds; the caller validates against Width and Height.
func (u *Universe) ToggleCell(row, col int) {
	u.active[u.index(row, col)].Toggle()
}

// SetCells marks every listed cell Alive, leaving the rest untouched.
// Indices must be in bounds.
func (u *Universe) SetCells(cells []Coord) {
	for _, c := range cells {
		u.active[u.index(c.Row, c.Col)] = Alive
	}
}

// LiveNeighborCount returns how many of the 8 Moore neighbors of
// (row, col) are Alive, wrapping toroidally at the edges. Only the live
// buffer is consulted, never a partially-written back buffer.
func (u *Universe) LiveNeighborCount(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r := wrap(row+dr, u.height)
			c := wrap(col+dc, u.width)
			count += int(u.active[u.index(r, c)])
		}
	}
	return count
}

// Tick advances the universe one generation. Every cell is judged against
// the same pre-tick snapshot; results land in the back buffer, which is
// swapped in after the full pass.
func (u *Universe) Tick() {
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			idx := u.index(row, col)
			alive := u.active[idx] == Alive
			n := u.LiveNeighborCount(row, col)
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				u.back[idx] = Alive
			} else {
				u.back[idx] = Dead
			}
		}
	}
	u.active, u.back = u.back, u.active
}

const (
	glyphDead  = '◻'
	glyphAlive = '◼'
)

// String renders the grid as text, one glyph per cell and one row per
// line. This is a debug view; the host renders from Cells directly.
func (u *Universe) String() string {
	var b strings.Builder
	b.Grow((u.width*3 + 1) * u.height) // the glyphs are 3 bytes each in UTF-8
	for row := 0; row < u.height; row++ {
		for col := 0; col < u.width; col++ {
			if u.active[u.index(row, col)] == Alive {
				b.WriteRune(glyphAlive)
			} else {
				b.WriteRune(glyphDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
