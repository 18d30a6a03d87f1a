// Package alchemy provides the RGB Alchemy puzzle as a playable game: a
// cursor over the board, a carried tile and status messages on top of the
// engine in the core subpackage. It draws into a platform screen and has no
// terminal dependency.
package alchemy

import (
	"errors"
	"fmt"

	platformcore "github.com/vovakirdan/rgb-alchemy/internal/core"
	"github.com/vovakirdan/rgb-alchemy/internal/games/alchemy/core"
)

// Game wraps an engine State with cursor and drag handling.
type Game struct {
	state  core.State
	loaded bool

	cursorX int
	cursorY int
	carried core.CellID // empty when nothing is carried

	status string
}

// New creates a game waiting for its first puzzle.
func New() *Game {
	return &Game{status: "Fetching puzzle..."}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "RGB Alchemy"
}

// Load starts a game for the puzzle, discarding any game in progress.
func (g *Game) Load(p core.Puzzle) error {
	s, err := core.NewState(p)
	if err != nil {
		return fmt.Errorf("alchemy: cannot start puzzle: %w", err)
	}
	g.state = s
	g.loaded = true
	g.cursorX, g.cursorY = 1, 0
	g.carried = ""
	g.status = g.phaseHint()
	return nil
}

// Loaded reports whether a puzzle is in play.
func (g *Game) Loaded() bool {
	return g.loaded
}

// State returns the current engine state.
func (g *Game) State() core.State {
	return g.state
}

// Cursor returns the cell under the cursor.
func (g *Game) Cursor() (x, y int) {
	return g.cursorX, g.cursorY
}

// Carried returns the id of the cell being dragged.
func (g *Game) Carried() (core.CellID, bool) {
	return g.carried, g.carried != ""
}

// Status returns the current status line.
func (g *Game) Status() string {
	return g.status
}

// SetStatus replaces the status line.
func (g *Game) SetStatus(msg string) {
	g.status = msg
}

// Handle applies one player action. Actions that do not fit the current
// phase only update the status line.
func (g *Game) Handle(a platformcore.Action) {
	if !g.loaded {
		return
	}

	switch a {
	case platformcore.ActionUp:
		g.moveCursor(0, -1)
	case platformcore.ActionDown:
		g.moveCursor(0, 1)
	case platformcore.ActionLeft:
		g.moveCursor(-1, 0)
	case platformcore.ActionRight:
		g.moveCursor(1, 0)
	case platformcore.ActionSelect:
		g.selectCell()
	case platformcore.ActionCancel:
		if g.carried != "" {
			g.carried = ""
			g.status = "Put it back. " + g.phaseHint()
		}
	}
}

func (g *Game) moveCursor(dx, dy int) {
	g.cursorX = platformcore.Clamp(g.cursorX+dx, 0, g.state.Grid.Width+1)
	g.cursorY = platformcore.Clamp(g.cursorY+dy, 0, g.state.Grid.Height+1)
}

func (g *Game) cursorID() core.CellID {
	return core.ID(g.cursorX, g.cursorY)
}

func (g *Game) selectCell() {
	switch g.state.Phase {
	case core.PhaseSetup:
		g.activate()
	case core.PhaseActive:
		if g.carried == "" {
			g.pickUp()
		} else {
			g.drop()
		}
	}
}

func (g *Game) activate() {
	next, err := g.state.ActivateSource(g.cursorID())
	if err != nil {
		if errors.Is(err, core.ErrNotSource) {
			g.status = "That is not a source. " + g.phaseHint()
		}
		return
	}
	g.state = next
	g.status = g.phaseHint()
}

func (g *Game) pickUp() {
	c := g.state.Grid.At(g.cursorX, g.cursorY)
	if c.Kind == core.KindUnused || !c.Enabled || c.Color.IsBlack() {
		g.status = "Nothing to pick up here. " + g.phaseHint()
		return
	}
	g.carried = c.ID
	g.status = fmt.Sprintf("Carrying %s %s: drop it on a source", c.ID, c.Color)
}

func (g *Game) drop() {
	target := g.cursorID()
	if target == g.carried {
		g.carried = ""
		g.status = "Put it back. " + g.phaseHint()
		return
	}

	next, err := g.state.DropTile(g.carried, target)
	if err != nil {
		g.status = "Drop it on a source on the edge, or Esc to put it back"
		return
	}
	g.state = next
	g.carried = ""
	g.status = g.phaseHint()
}

// phaseHint tells the player what to do next.
func (g *Game) phaseHint() string {
	s := g.state
	switch s.Phase {
	case core.PhaseSetup:
		return fmt.Sprintf("Light a source with %s", colorName(s.NextColor))
	case core.PhaseActive:
		return "Pick up a lit cell and drop it on a source"
	default:
		if s.Outcome == core.OutcomeWon {
			return "Success! Press R to play again"
		}
		return "Out of moves. Press R to play again"
	}
}

func colorName(c core.RGB) string {
	switch c {
	case core.Red:
		return "red"
	case core.Green:
		return "green"
	case core.Blue:
		return "blue"
	default:
		return c.String()
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Enter/Space: Light, pick up, drop | Esc: Put back | R: New puzzle | Q: Quit"
}
