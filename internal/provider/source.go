// Package provider hands out puzzle configurations. It contains the random
// generator, the HTTP service that exposes it and the client the front end
// uses to reach that service.
package provider

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/rgb-alchemy/internal/config"
	"github.com/vovakirdan/rgb-alchemy/internal/games/alchemy/core"
)

// ErrProviderUnavailable is returned when no usable puzzle could be obtained.
var ErrProviderUnavailable = errors.New("puzzle provider unavailable")

// Source produces a puzzle for a user. An empty userID asks the source to
// assign one; the assigned id comes back in Puzzle.UserID.
type Source interface {
	NewPuzzle(ctx context.Context, userID string) (core.Puzzle, error)
}

// UserRecorder is notified each time a puzzle is issued.
type UserRecorder interface {
	RecordIssue(userID string) error
}

// ValidatePuzzle checks that a puzzle can be handed to core.NewState and
// played: both dimensions in [1, core.MaxDimension], a move budget in
// [1, config.MaxMoveBudget] and target channels in [0, 255].
func ValidatePuzzle(p core.Puzzle) error {
	if p.UserID == "" {
		return errors.New("provider: puzzle has no user id")
	}
	if p.Width < 1 || p.Height < 1 || p.Width > core.MaxDimension || p.Height > core.MaxDimension {
		return fmt.Errorf("provider: bad dimensions %dx%d", p.Width, p.Height)
	}
	if p.MaxMoves < 1 || p.MaxMoves > config.MaxMoveBudget {
		return fmt.Errorf("provider: bad move budget %d", p.MaxMoves)
	}
	for i, v := range p.Target {
		if math.IsNaN(v) || v < 0 || v > core.MaxChannel {
			return fmt.Errorf("provider: target channel %d out of range: %v", i, v)
		}
	}
	return nil
}
