// Package tui provides the Bubble Tea front end for RGB Alchemy and the
// Wish SSH server that serves it to remote players.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rgb-alchemy/internal/games/alchemy/core"
	"github.com/vovakirdan/rgb-alchemy/internal/provider"
)

// PuzzleMsg carries the result of a puzzle fetch. Seq identifies the
// request so that superseded responses can be dropped.
type PuzzleMsg struct {
	Seq    int
	Puzzle core.Puzzle
	Err    error
}

// fetchCmd returns a command that asks the source for a puzzle.
func fetchCmd(src provider.Source, userID string, seq int, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		p, err := src.NewPuzzle(ctx, userID)
		return PuzzleMsg{Seq: seq, Puzzle: p, Err: err}
	}
}
