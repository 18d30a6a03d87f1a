package core

const (
	// DefaultDelta is the deviation reported before any tile is lit.
	DefaultDelta = 100.0

	// DefaultClosestID is the tile highlighted before any tile is lit.
	DefaultClosestID CellID = "1,1"
)

// Match is the tile whose color is closest to the target.
type Match struct {
	ID    CellID
	Color RGB
	Delta float64 // 0..100, 0 is an exact match
	Found bool    // false when no tile is lit yet
}

// NoMatch is the result for a board where every tile is still black.
func NoMatch() Match {
	return Match{
		ID:    DefaultClosestID,
		Color: Black,
		Delta: DefaultDelta,
	}
}

// ClosestMatch scans the tiles row by row and returns the one closest to
// target. Black tiles are treated as unlit and never match. On ties the
// first tile scanned wins.
func ClosestMatch(g Grid, target RGB) Match {
	best := NoMatch()
	for y := 1; y <= g.Height; y++ {
		for x := 1; x <= g.Width; x++ {
			c := g.Cells[y][x]
			if c.Color.IsBlack() {
				continue
			}
			if d := Delta(target, c.Color); d < best.Delta {
				best = Match{ID: c.ID, Color: c.Color, Delta: d, Found: true}
			}
		}
	}
	return best
}

// MarkClosest resets every tile border to the default and highlights the
// tile with the given id. The receiver is modified in place; an id outside
// the interior only clears the highlights.
func (g Grid) MarkClosest(id CellID) {
	for y := 1; y <= g.Height; y++ {
		for x := 1; x <= g.Width; x++ {
			g.Cells[y][x].Highlight = DefaultHighlight
		}
	}
	x, y, err := Decode(id)
	if err != nil || Classify(x, y, g.Width, g.Height) != KindTile || !g.InBounds(x, y) {
		return
	}
	g.Cells[y][x].Highlight = ClosestHighlight
}
