package life

import (
	"slices"
	"testing"
)

// newDeadUniverse builds an all-Dead w×h grid through the resize path.
func newDeadUniverse(w, h int) *Universe {
	u := New(0, 0, 0, 1)
	u.SetHeight(h)
	u.SetWidth(w)
	return u
}

func TestScaledConstruction(t *testing.T) {
	u := New(960, 640, 4, 1)
	if u.Width() != 192 || u.Height() != 128 {
		t.Fatalf("got %dx%d, expected 192x128", u.Width(), u.Height())
	}
	if len(u.Cells()) != u.Width()*u.Height() {
		t.Fatalf("buffer length %d, expected %d", len(u.Cells()), u.Width()*u.Height())
	}

	u = New(9, 9, 8, 1)
	if u.Width() != 1 || u.Height() != 1 {
		t.Fatalf("got %dx%d, expected 1x1", u.Width(), u.Height())
	}
}

func TestSeededDeterminism(t *testing.T) {
	a := New(100, 100, 4, 42)
	b := New(100, 100, 4, 42)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed must produce the same initial fill")
	}

	c := New(100, 100, 4, 43)
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds produced identical fills")
	}
}

func TestToroidalNeighborWrap(t *testing.T) {
	u := newDeadUniverse(4, 4)

	// The last row is the north neighbor of row 0.
	u.SetCells([]Coord{{Row: 3, Col: 0}})
	if n := u.LiveNeighborCount(0, 0); n != 1 {
		t.Fatalf("row wrap: got %d neighbors, expected 1", n)
	}

	// The last column is the west neighbor of column 0.
	u.SetCells([]Coord{{Row: 0, Col: 3}})
	if n := u.LiveNeighborCount(0, 0); n != 2 {
		t.Fatalf("row+column wrap: got %d neighbors, expected 2", n)
	}
}

func TestNeighborCountUsesLiveBufferOnly(t *testing.T) {
	u := newDeadUniverse(5, 5)
	u.SetCells([]Coord{{1, 1}, {1, 2}, {2, 1}})

	if n := u.LiveNeighborCount(2, 2); n != 3 {
		t.Fatalf("got %d neighbors, expected 3", n)
	}
	// The cell's own state never contributes.
	if n := u.LiveNeighborCount(1, 1); n != 2 {
		t.Fatalf("got %d neighbors, expected 2", n)
	}
}

func TestTickBirthAndSurvival(t *testing.T) {
	u := newDeadUniverse(5, 5)
	u.SetCells([]Coord{{1, 1}, {1, 2}, {2, 1}})
	u.Tick()

	cells := u.Cells()
	w := u.Width()
	if cells[2*w+2] != Alive {
		t.Fatal("dead cell with 3 live neighbors must be born")
	}
	if cells[1*w+1] != Alive {
		t.Fatal("live cell with 2 live neighbors must survive")
	}
}

func TestIsolatedCellDies(t *testing.T) {
	u := newDeadUniverse(3, 3)
	u.SetCells([]Coord{{1, 1}})
	u.Tick()

	for i, c := range u.Cells() {
		if c != Dead {
			t.Fatalf("cell %d alive after tick, expected an empty grid", i)
		}
	}
}

func TestOverpopulatedCellDies(t *testing.T) {
	u := newDeadUniverse(5, 5)
	u.SetCells([]Coord{{2, 2}, {1, 2}, {3, 2}, {2, 1}, {2, 3}})
	u.Tick()

	if u.Cells()[2*u.Width()+2] != Dead {
		t.Fatal("live cell with 4 live neighbors must die")
	}
}

func TestBlockStillLife(t *testing.T) {
	u := newDeadUniverse(6, 6)
	u.SetCells([]Coord{{2, 2}, {2, 3}, {3, 2}, {3, 3}})
	want := append([]Cell(nil), u.Cells()...)

	for i := 0; i < 5; i++ {
		u.Tick()
		if !slices.Equal(u.Cells(), want) {
			t.Fatalf("block changed after %d ticks", i+1)
		}
	}
}

func TestResetDeadIdempotent(t *testing.T) {
	u := New(120, 120, 3, 7)
	u.ResetDead()
	first := append([]Cell(nil), u.Cells()...)
	u.ResetDead()

	if !slices.Equal(u.Cells(), first) {
		t.Fatal("second ResetDead changed the buffer")
	}
	for i, c := range u.Cells() {
		if c != Dead {
			t.Fatalf("cell %d alive after ResetDead", i)
		}
	}
}

func TestToggleCellRoundTrip(t *testing.T) {
	u := newDeadUniverse(4, 4)

	u.ToggleCell(2, 3)
	if u.Cells()[2*u.Width()+3] != Alive {
		t.Fatal("toggle must flip a dead cell alive")
	}
	u.ToggleCell(2, 3)
	if u.Cells()[2*u.Width()+3] != Dead {
		t.Fatal("toggling twice must restore the original state")
	}
}

func TestResizeDiscardsState(t *testing.T) {
	u := New(90, 90, 8, 7)
	u.SetWidth(5)
	if len(u.Cells()) != 5*u.Height() {
		t.Fatalf("buffer length %d after SetWidth, expected %d", len(u.Cells()), 5*u.Height())
	}
	for i, c := range u.Cells() {
		if c != Dead {
			t.Fatalf("cell %d alive after SetWidth", i)
		}
	}

	u.ResetRandom()
	u.SetHeight(3)
	if len(u.Cells()) != u.Width()*3 {
		t.Fatalf("buffer length %d after SetHeight, expected %d", len(u.Cells()), u.Width()*3)
	}
	for i, c := range u.Cells() {
		if c != Dead {
			t.Fatalf("cell %d alive after SetHeight", i)
		}
	}
}

func TestCellsIsLiveView(t *testing.T) {
	u := newDeadUniverse(3, 3)
	u.Cells()[4] = Alive
	if u.Population() != 1 {
		t.Fatal("Cells must expose the live buffer, not a copy")
	}
}

func TestStringGlyphs(t *testing.T) {
	u := newDeadUniverse(2, 2)
	u.SetCells([]Coord{{0, 0}})

	if got := u.String(); got != "◼◻\n◻◻\n" {
		t.Fatalf("unexpected render output %q", got)
	}
}
