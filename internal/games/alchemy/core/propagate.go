package core

import "fmt"

// Sources holds the colors of the four sources governing one tile.
type Sources struct {
	Top    RGB
	Right  RGB
	Bottom RGB
	Left   RGB
}

// Sources returns the governing source colors for the tile at (x, y):
// the ends of its column and the ends of its row.
func (g Grid) Sources(x, y int) Sources {
	return Sources{
		Top:    g.Cells[0][x].Color,
		Right:  g.Cells[y][g.Width+1].Color,
		Bottom: g.Cells[g.Height+1][x].Color,
		Left:   g.Cells[y][0].Color,
	}
}

// TileColor derives the color of the tile at (x, y) on a w×h board from its
// four governing sources. It is a pure function of its arguments.
func TileColor(s Sources, x, y, w, h int) RGB {
	return Mix(
		Attenuate(s.Top, y, h),
		Attenuate(s.Right, w+1-x, w),
		Attenuate(s.Bottom, h+1-y, h),
		Attenuate(s.Left, x, w),
	)
}

// Illuminate sets the color of a source and recomputes every tile on the
// row or column it governs. The input grid is left untouched; the result is
// a new grid.
func Illuminate(g Grid, id CellID, color RGB) (Grid, error) {
	src, err := g.Lookup(id)
	if err != nil {
		return g, err
	}
	if src.Kind != KindSource {
		return g, fmt.Errorf("core: illuminate %s: %w", id, ErrNotSource)
	}

	out := g.Clone()
	out.Cells[src.Y][src.X].Color = color

	if SideOf(src.X, src.Y, g.Width, g.Height).Horizontal() {
		for x := 1; x <= g.Width; x++ {
			out.recomputeTile(x, src.Y)
		}
	} else {
		for y := 1; y <= g.Height; y++ {
			out.recomputeTile(src.X, y)
		}
	}
	return out, nil
}

// Recompute derives every tile from its sources. The receiver is modified in
// place; callers own the grid.
func (g Grid) Recompute() {
	for y := 1; y <= g.Height; y++ {
		for x := 1; x <= g.Width; x++ {
			g.recomputeTile(x, y)
		}
	}
}

func (g Grid) recomputeTile(x, y int) {
	g.Cells[y][x].Color = TileColor(g.Sources(x, y), x, y, g.Width, g.Height)
}
