package life

// Offset is a cell position relative to a pattern anchor.
type Offset struct {
	Row int
	Col int
}

// Pattern is a fixed shape stamped onto the grid around an anchor. The
// center offset is subtracted from the anchor so the shape lands centered
// on it.
type Pattern struct {
	center int
	cells  []Offset
}

// glider translates one cell down-right every four generations.
var glider = Pattern{
	center: 1,
	cells: []Offset{
		{0, 1},
		{1, 2},
		{2, 0}, {2, 1}, {2, 2},
	},
}

// pulsar is the 48-cell period-3 oscillator on a 13×13 footprint.
var pulsar = Pattern{
	center: 6,
	cells: []Offset{
		{0, 2}, {0, 3}, {0, 4}, {0, 8}, {0, 9}, {0, 10},
		{2, 0}, {2, 5}, {2, 7}, {2, 12},
		{3, 0}, {3, 5}, {3, 7}, {3, 12},
		{4, 0}, {4, 5}, {4, 7}, {4, 12},
		{5, 2}, {5, 3}, {5, 4}, {5, 8}, {5, 9}, {5, 10},
		{7, 2}, {7, 3}, {7, 4}, {7, 8}, {7, 9}, {7, 10},
		{8, 0}, {8, 5}, {8, 7}, {8, 12},
		{9, 0}, {9, 5}, {9, 7}, {9, 12},
		{10, 0}, {10, 5}, {10, 7}, {10, 12},
		{12, 2}, {12, 3}, {12, 4}, {12, 8}, {12, 9}, {12, 10},
	},
}

// MakeGlider stamps a glider centered on (row, col). The anchor may be any
// integer; every cell wraps toroidally into the grid.
func (u *Universe) MakeGlider(row, col int) {
	u.stamp(glider, row, col)
}

// MakePulsar stamps a pulsar centered on (row, col). The anchor may be any
// integer; every cell wraps toroidally into the grid.
func (u *Universe) MakePulsar(row, col int) {
	u.stamp(pulsar, row, col)
}

func (u *Universe) stamp(p Pattern, row, col int) {
	cells := make([]Coord, len(p.cells))
	for i, o := range p.cells {
		cells[i] = Coord{
			Row: wrap(o.Row+row-p.center, u.height),
			Col: wrap(o.Col+col-p.center, u.width),
		}
	}
	u.SetCells(cells)
}
