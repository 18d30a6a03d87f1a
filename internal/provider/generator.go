package provider

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/vovakirdan/rgb-alchemy/internal/config"
	"github.com/vovakirdan/rgb-alchemy/internal/games/alchemy/core"
)

// UserIDLength is the number of hex characters in a generated user id.
const UserIDLength = 6

// Generator draws random puzzles from a policy.
// It is safe for concurrent use.
type Generator struct {
	mu     sync.Mutex
	rng    *rand.Rand
	policy config.PolicyConfig
}

var _ Source = (*Generator)(nil)

// NewGenerator creates a generator. The same seed and policy produce the
// same sequence of dimensions, budgets and targets.
func NewGenerator(policy config.PolicyConfig, seed int64) (*Generator, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		rng:    rand.New(rand.NewSource(seed)),
		policy: policy,
	}, nil
}

// Policy returns the ranges the generator draws from.
func (g *Generator) Policy() config.PolicyConfig {
	return g.policy
}

// NewPuzzle draws a puzzle. An empty userID gets a fresh id.
func (g *Generator) NewPuzzle(ctx context.Context, userID string) (core.Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return core.Puzzle{}, err
	}
	if userID == "" {
		userID = NewUserID()
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return core.Puzzle{
		UserID:   userID,
		Width:    g.draw(g.policy.Width),
		Height:   g.draw(g.policy.Height),
		MaxMoves: g.draw(g.policy.MaxMoves),
		Target: core.RGB{
			float64(g.rng.Intn(256)),
			float64(g.rng.Intn(256)),
			float64(g.rng.Intn(256)),
		},
	}, nil
}

// draw returns a uniform integer in the inclusive range. Caller holds mu.
func (g *Generator) draw(r config.Range) int {
	return r.Min + g.rng.Intn(r.Span())
}

// NewUserID returns UserIDLength lowercase hex characters taken from a
// random UUID.
func NewUserID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Sprintf("%06x", rand.Intn(1<<24))
	}
	return strings.ReplaceAll(id.String(), "-", "")[:UserIDLength]
}
