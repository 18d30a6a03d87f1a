package core

import "fmt"

// MaxDimension is the largest width or height Build accepts.
const MaxDimension = 100

// Cell is a single square of the board.
// Kind never changes after Build; Color, Highlight and Enabled do.
type Cell struct {
	ID        CellID
	X         int
	Y         int
	Kind      Kind
	Color     RGB
	Highlight RGB  // border color, cosmetic
	Enabled   bool // whether the cell can be dragged or dropped on
}

// Grid is the board: Width×Height tiles framed by a ring of sources.
// Cells are indexed [row][col], i.e. Cells[y][x].
type Grid struct {
	Width  int
	Height int
	Cells  [][]Cell
}

// Build lays out the board for a w×h puzzle with every color zeroed.
// Dimensions outside [1, MaxDimension] yield the empty grid and
// ErrInvalidDimensions.
func Build(w, h int) (Grid, error) {
	if w <= 0 || h <= 0 || w > MaxDimension || h > MaxDimension {
		return Grid{}, fmt.Errorf("core: build %dx%d: %w", w, h, ErrInvalidDimensions)
	}

	g := Grid{
		Width:  w,
		Height: h,
		Cells:  make([][]Cell, h+2),
	}
	for y := range g.Cells {
		g.Cells[y] = make([]Cell, w+2)
		for x := range g.Cells[y] {
			g.Cells[y][x] = Cell{
				ID:        ID(x, y),
				X:         x,
				Y:         y,
				Kind:      Classify(x, y, w, h),
				Highlight: DefaultHighlight,
			}
		}
	}
	return g, nil
}

// Rows returns the number of rows including the source ring.
func (g Grid) Rows() int {
	return len(g.Cells)
}

// Cols returns the number of columns including the source ring.
func (g Grid) Cols() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// Empty reports whether the grid has no cells (not yet loaded).
func (g Grid) Empty() bool {
	return len(g.Cells) == 0
}

// InBounds returns true if (x, y) addresses a cell of the grid.
func (g Grid) InBounds(x, y int) bool {
	return y >= 0 && y < g.Rows() && x >= 0 && x < g.Cols()
}

// At returns the cell at (x, y). The coordinates must be in bounds.
func (g Grid) At(x, y int) Cell {
	return g.Cells[y][x]
}

// Lookup resolves a cell id.
func (g Grid) Lookup(id CellID) (Cell, error) {
	x, y, err := Decode(id)
	if err != nil {
		return Cell{}, err
	}
	if !g.InBounds(x, y) {
		return Cell{}, fmt.Errorf("core: %s: %w", id, ErrOutOfBounds)
	}
	return g.Cells[y][x], nil
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	cells := make([][]Cell, len(g.Cells))
	for y, row := range g.Cells {
		cells[y] = make([]Cell, len(row))
		copy(cells[y], row)
	}
	return Grid{
		Width:  g.Width,
		Height: g.Height,
		Cells:  cells,
	}
}

// CountByKind returns how many cells of each kind the grid holds.
func (g Grid) CountByKind() map[Kind]int {
	counts := make(map[Kind]int, 3)
	for _, row := range g.Cells {
		for _, c := range row {
			counts[c.Kind]++
		}
	}
	return counts
}

// Tiles returns the interior cells in row-major order starting at (1,1).
func (g Grid) Tiles() []Cell {
	tiles := make([]Cell, 0, g.Width*g.Height)
	for y := 1; y <= g.Height; y++ {
		for x := 1; x <= g.Width; x++ {
			tiles = append(tiles, g.Cells[y][x])
		}
	}
	return tiles
}

// SetEnabled switches interaction on or off for every cell except the corners.
// The receiver is modified in place; callers own the grid.
func (g Grid) SetEnabled(enabled bool) {
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.Cells[y][x].Kind != KindUnused {
				g.Cells[y][x].Enabled = enabled
			}
		}
	}
}

// Equal returns true if both grids have the same dimensions and cells.
func (g Grid) Equal(other Grid) bool {
	if g.Width != other.Width || g.Height != other.Height || g.Rows() != other.Rows() {
		return false
	}
	for y, row := range g.Cells {
		if len(row) != len(other.Cells[y]) {
			return false
		}
		for x, c := range row {
			if c != other.Cells[y][x] {
				return false
			}
		}
	}
	return true
}
