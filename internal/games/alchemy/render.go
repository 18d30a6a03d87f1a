package alchemy

import (
	"fmt"

	platformcore "github.com/vovakirdan/rgb-alchemy/internal/core"
	"github.com/vovakirdan/rgb-alchemy/internal/games/alchemy/core"
)

const (
	cellWidth = 3 // marker column plus a two-column body
	hudHeight = 4
)

// Screen colors.
const (
	colorTitle  = "#ff87d7"
	colorDim    = "#6c6c6c"
	colorCursor = "#ffffff"
	colorCarry  = "#ffd75f"
	colorWin    = "#5fff87"
	colorLose   = "#ff5f5f"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if !g.loaded {
		dst.DrawTextCentered(dst.Height()/2, g.status, "")
		return
	}

	grid := g.state.Grid
	boardW := grid.Cols()*cellWidth + 1
	boardH := grid.Rows()
	needW := max(boardW, 40)
	needH := hudHeight + boardH + 2

	if dst.Width() < needW || dst.Height() < needH {
		g.renderTooSmall(dst, needW, needH)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst)
	g.renderBoard(dst, boardX, boardY)
	dst.DrawTextCentered(boardY+boardH+1, g.status, "")

	if g.state.Finished() {
		g.renderOverlay(dst, boardY+boardH/2)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen, w, h int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", "")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h), colorDim)
}

// renderHUD draws the title, budget and target line.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	s := g.state

	dst.DrawTextCentered(0, "RGB ALCHEMY", colorTitle)

	info := fmt.Sprintf("User: %s   Moves left: %d/%d   Phase: %s",
		s.Puzzle.UserID, s.MovesLeft(), s.Puzzle.MaxMoves, s.Phase)
	dst.DrawTextCentered(1, info, "")

	line := fmt.Sprintf("Target ██ %s   Closest ██ %s   Δ %.2f%%",
		s.Puzzle.Target, s.Closest.Color, s.Closest.Delta)
	x := (dst.Width() - len([]rune(line))) / 2
	dst.DrawText(x, 2, line, "")

	// Paint the two swatches in their colors.
	targetAt := x + len([]rune("Target "))
	closestAt := x + len([]rune(fmt.Sprintf("Target ██ %s   Closest ", s.Puzzle.Target)))
	swatch(dst, targetAt, 2, s.Puzzle.Target)
	swatch(dst, closestAt, 2, s.Closest.Color)
}

func swatch(dst *platformcore.Screen, x, y int, c core.RGB) {
	hex := c.Hex()
	dst.SetColor(x, y, '█', hex)
	dst.SetColor(x+1, y, '█', hex)
}

// renderBoard draws every cell, then the markers around the closest tile,
// the carried cell and the cursor.
func (g *Game) renderBoard(dst *platformcore.Screen, boardX, boardY int) {
	grid := g.state.Grid

	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			c := grid.At(x, y)
			px := boardX + x*cellWidth + 1
			py := boardY + y
			drawBody(dst, px, py, c)
		}
	}

	if cx, cy, err := core.Decode(g.state.Closest.ID); err == nil && grid.InBounds(cx, cy) &&
		grid.At(cx, cy).Highlight == core.ClosestHighlight {
		drawMarkers(dst, boardX, boardY, cx, cy, '│', '│', core.ClosestHighlight.Hex())
	}
	if id, ok := g.Carried(); ok {
		if cx, cy, err := core.Decode(id); err == nil {
			drawMarkers(dst, boardX, boardY, cx, cy, '*', '*', colorCarry)
		}
	}
	drawMarkers(dst, boardX, boardY, g.cursorX, g.cursorY, '[', ']', colorCursor)
}

func drawBody(dst *platformcore.Screen, px, py int, c core.Cell) {
	var left, right rune
	fg := c.Color.Hex()

	switch {
	case c.Kind == core.KindUnused:
		return
	case c.Kind == core.KindSource && c.Color.IsBlack():
		left, right, fg = '◖', '◗', colorDim
	case c.Kind == core.KindSource:
		left, right = '◖', '◗'
	case c.Color.IsBlack():
		left, right, fg = '░', '░', colorDim
	default:
		left, right = '█', '█'
	}
	dst.SetColor(px, py, left, fg)
	dst.SetColor(px+1, py, right, fg)
}

func drawMarkers(dst *platformcore.Screen, boardX, boardY, x, y int, left, right rune, fg string) {
	px := boardX + x*cellWidth
	dst.SetColor(px, boardY+y, left, fg)
	dst.SetColor(px+cellWidth, boardY+y, right, fg)
}

// renderOverlay draws the end-of-game box.
func (g *Game) renderOverlay(dst *platformcore.Screen, centerY int) {
	title, fg := "GAME OVER", colorLose
	if g.state.Outcome == core.OutcomeWon {
		title, fg = "SUCCESS!", colorWin
	}
	lines := []string{
		title,
		fmt.Sprintf("Closest Δ %.2f%% after %d moves", g.state.Closest.Delta, g.state.Moves),
		"Press R to play again",
	}

	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	box := platformcore.NewRect((dst.Width()-maxLen-4)/2, centerY-len(lines)/2-1, maxLen+4, len(lines)+2)
	dst.FillRect(box)
	dst.DrawBox(box, fg)
	for i, line := range lines {
		lineFg := ""
		if i == 0 {
			lineFg = fg
		}
		x := box.X + (box.W-len([]rune(line)))/2
		dst.DrawText(x, box.Y+1+i, line, lineFg)
	}
}
