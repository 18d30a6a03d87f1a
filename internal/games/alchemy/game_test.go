package alchemy

import (
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/rgb-alchemy/internal/core"
	"github.com/vovakirdan/rgb-alchemy/internal/games/alchemy/core"
)

func loadGame(t *testing.T, p core.Puzzle) *Game {
	t.Helper()
	g := New()
	if err := g.Load(p); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return g
}

// moveTo walks the cursor to (x, y) using movement actions only.
func moveTo(g *Game, x, y int) {
	for i := 0; i < g.state.Grid.Cols()+g.state.Grid.Rows(); i++ {
		g.Handle(platformcore.ActionLeft)
		g.Handle(platformcore.ActionUp)
	}
	for i := 0; i < x; i++ {
		g.Handle(platformcore.ActionRight)
	}
	for i := 0; i < y; i++ {
		g.Handle(platformcore.ActionDown)
	}
}

func press(g *Game, x, y int) {
	moveTo(g, x, y)
	g.Handle(platformcore.ActionSelect)
}

// setup lights the left source of row 1, the top source of column 1 and the
// bottom source of column 1.
func setup(g *Game) {
	h := g.state.Puzzle.Height
	press(g, 0, 1)
	press(g, 1, 0)
	press(g, 1, h+1)
}

var grey = core.RGB{127.5, 127.5, 127.5}

func TestNewGameWaitsForPuzzle(t *testing.T) {
	g := New()
	if g.Loaded() {
		t.Error("New game should not be loaded")
	}

	g.Handle(platformcore.ActionSelect)
	g.Handle(platformcore.ActionRight)
	if x, y := g.Cursor(); x != 0 || y != 0 {
		t.Errorf("Cursor() = (%d, %d), expected actions to be ignored", x, y)
	}

	dst := platformcore.NewScreen(40, 10)
	g.Render(dst)
	if !strings.Contains(dst.String(), "Fetching puzzle...") {
		t.Errorf("unloaded render should show the status, got:\n%s", dst.String())
	}
}

func TestLoadRejectsBadPuzzle(t *testing.T) {
	g := New()
	if err := g.Load(core.Puzzle{UserID: "abc", Width: 0, Height: 3, MaxMoves: 5}); err == nil {
		t.Error("Load() with zero width should fail")
	}
	if g.Loaded() {
		t.Error("failed Load should leave the game unloaded")
	}
}

func TestLoadStartsSetup(t *testing.T) {
	g := loadGame(t, core.Puzzle{UserID: "abc", Width: 3, Height: 2, MaxMoves: 8})

	if g.State().Phase != core.PhaseSetup {
		t.Errorf("Phase = %v, expected setup", g.State().Phase)
	}
	if x, y := g.Cursor(); x != 1 || y != 0 {
		t.Errorf("Cursor() = (%d, %d), expected (1, 0)", x, y)
	}
	if !strings.Contains(g.Status(), "red") {
		t.Errorf("Status() = %q, expected a hint for red", g.Status())
	}
}

func TestCursorClamped(t *testing.T) {
	g := loadGame(t, core.Puzzle{UserID: "abc", Width: 3, Height: 2, MaxMoves: 8})

	g.Handle(platformcore.ActionUp)
	if _, y := g.Cursor(); y != 0 {
		t.Errorf("cursor y = %d, expected 0", y)
	}
	for i := 0; i < 10; i++ {
		g.Handle(platformcore.ActionRight)
		g.Handle(platformcore.ActionDown)
	}
	if x, y := g.Cursor(); x != 4 || y != 3 {
		t.Errorf("Cursor() = (%d, %d), expected (4, 3)", x, y)
	}
}

func TestSetupRejectsNonSource(t *testing.T) {
	g := loadGame(t, core.Puzzle{UserID: "abc", Width: 3, Height: 2, MaxMoves: 8})

	press(g, 1, 1)
	if g.State().Moves != 0 {
		t.Errorf("Moves = %d, expected 0", g.State().Moves)
	}
	if !strings.Contains(g.Status(), "not a source") {
		t.Errorf("Status() = %q, expected a not-a-source hint", g.Status())
	}
}

func TestSetupToWin(t *testing.T) {
	g := loadGame(t, core.Puzzle{UserID: "abc", Width: 1, Height: 1, MaxMoves: 5, Target: grey})

	press(g, 0, 1)
	if !strings.Contains(g.Status(), "green") {
		t.Errorf("Status() = %q, expected a hint for green", g.Status())
	}
	press(g, 1, 0)
	if !strings.Contains(g.Status(), "blue") {
		t.Errorf("Status() = %q, expected a hint for blue", g.Status())
	}
	press(g, 1, 2)

	s := g.State()
	if s.Phase != core.PhaseFinished || s.Outcome != core.OutcomeWon {
		t.Fatalf("Phase = %v, Outcome = %v; expected finished/won", s.Phase, s.Outcome)
	}
	if !strings.Contains(g.Status(), "Success") {
		t.Errorf("Status() = %q, expected success", g.Status())
	}

	// Finished games ignore selection.
	press(g, 2, 1)
	if g.State().Moves != 3 {
		t.Errorf("Moves = %d after finish, expected 3", g.State().Moves)
	}

	dst := platformcore.NewScreen(80, 24)
	g.Render(dst)
	if !strings.Contains(dst.String(), "SUCCESS!") {
		t.Errorf("render should show the win overlay, got:\n%s", dst.String())
	}
}

func TestPickUpAndDrop(t *testing.T) {
	g := loadGame(t, core.Puzzle{UserID: "abc", Width: 2, Height: 1, MaxMoves: 10})
	setup(g)

	if g.State().Phase != core.PhaseActive {
		t.Fatalf("Phase = %v, expected active", g.State().Phase)
	}

	press(g, 0, 1)
	if id, ok := g.Carried(); !ok || id != "0,1" {
		t.Fatalf("Carried() = %q, %v; expected 0,1", id, ok)
	}

	press(g, 2, 0)
	if _, ok := g.Carried(); ok {
		t.Error("drop should release the carried cell")
	}
	s := g.State()
	if s.Moves != 4 {
		t.Errorf("Moves = %d, expected 4", s.Moves)
	}
	if s.Grid.At(2, 0).Color != core.Red {
		t.Errorf("source 2,0 = %v, expected red", s.Grid.At(2, 0).Color)
	}
}

func TestPickUpRejected(t *testing.T) {
	g := loadGame(t, core.Puzzle{UserID: "abc", Width: 2, Height: 1, MaxMoves: 10})
	setup(g)

	press(g, 2, 0) // unlit source
	if _, ok := g.Carried(); ok {
		t.Error("an unlit source should not be picked up")
	}
	press(g, 0, 0) // corner
	if _, ok := g.Carried(); ok {
		t.Error("a corner should not be picked up")
	}
	if !strings.Contains(g.Status(), "Nothing to pick up") {
		t.Errorf("Status() = %q, expected a pick-up hint", g.Status())
	}
}

func TestInvalidDropKeepsCarrying(t *testing.T) {
	g := loadGame(t, core.Puzzle{UserID: "abc", Width: 2, Height: 1, MaxMoves: 10})
	setup(g)

	press(g, 0, 1)
	press(g, 2, 1) // a tile, not a source
	if id, ok := g.Carried(); !ok || id != "0,1" {
		t.Errorf("Carried() = %q, %v; expected to keep 0,1", id, ok)
	}
	if g.State().Moves != 3 {
		t.Errorf("Moves = %d, expected 3", g.State().Moves)
	}
	if !strings.Contains(g.Status(), "Drop it on a source") {
		t.Errorf("Status() = %q, expected a drop hint", g.Status())
	}
}

func TestCancelAndPutBack(t *testing.T) {
	g := loadGame(t, core.Puzzle{UserID: "abc", Width: 2, Height: 1, MaxMoves: 10})
	setup(g)

	press(g, 0, 1)
	g.Handle(platformcore.ActionCancel)
	if _, ok := g.Carried(); ok {
		t.Error("Cancel should release the carried cell")
	}

	press(g, 0, 1)
	g.Handle(platformcore.ActionSelect) // drop on itself
	if _, ok := g.Carried(); ok {
		t.Error("dropping on the origin should put the cell back")
	}
	if g.State().Moves != 3 {
		t.Errorf("Moves = %d, expected 3", g.State().Moves)
	}
}

func TestLoadRestarts(t *testing.T) {
	g := loadGame(t, core.Puzzle{UserID: "abc", Width: 2, Height: 1, MaxMoves: 10})
	setup(g)
	press(g, 0, 1)

	if err := g.Load(core.Puzzle{UserID: "abc", Width: 4, Height: 4, MaxMoves: 12}); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	s := g.State()
	if s.Moves != 0 || s.Phase != core.PhaseSetup || s.Grid.Width != 4 {
		t.Errorf("state after reload = moves %d, phase %v, width %d", s.Moves, s.Phase, s.Grid.Width)
	}
	if _, ok := g.Carried(); ok {
		t.Error("reload should drop the carried cell")
	}
}

func TestRenderHUD(t *testing.T) {
	target := core.RGB{10, 20, 30}
	g := loadGame(t, core.Puzzle{UserID: "abc123", Width: 4, Height: 3, MaxMoves: 9, Target: target})

	dst := platformcore.NewScreen(80, 24)
	g.Render(dst)

	if !strings.Contains(dst.Row(0), "RGB ALCHEMY") {
		t.Errorf("Row(0) = %q, expected title", dst.Row(0))
	}
	if !strings.Contains(dst.Row(1), "Moves left: 9/9") || !strings.Contains(dst.Row(1), "abc123") {
		t.Errorf("Row(1) = %q, expected user and budget", dst.Row(1))
	}
	if !strings.Contains(dst.Row(2), "Δ 100.00%") {
		t.Errorf("Row(2) = %q, expected the default delta", dst.Row(2))
	}

	swatches := 0
	for x := 0; x < dst.Width(); x++ {
		if c := dst.Get(x, 2); c.Rune == '█' && c.Fg == target.Hex() {
			swatches++
		}
	}
	if swatches != 2 {
		t.Errorf("found %d target swatch cells, expected 2", swatches)
	}

	if !strings.Contains(dst.String(), "[") || !strings.Contains(dst.String(), "]") {
		t.Error("render should show the cursor brackets")
	}
	if !strings.Contains(dst.String(), "Light a source with red") {
		t.Error("render should show the status line")
	}
}

func TestRenderLitTileColor(t *testing.T) {
	g := loadGame(t, core.Puzzle{UserID: "abc", Width: 1, Height: 1, MaxMoves: 9, Target: core.Blue})
	press(g, 0, 1)

	dst := platformcore.NewScreen(80, 24)
	g.Render(dst)

	tile := g.State().Grid.At(1, 1).Color.Hex()
	found := false
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if c := dst.Get(x, y); c.Rune == '█' && c.Fg == tile && y > 2 {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("lit tile %s not drawn on the board", tile)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := loadGame(t, core.Puzzle{UserID: "abc", Width: 20, Height: 10, MaxMoves: 9})

	dst := platformcore.NewScreen(30, 8)
	g.Render(dst)
	if !strings.Contains(dst.String(), "Window too small") {
		t.Errorf("expected too-small message, got:\n%s", dst.String())
	}
}
