package core

import "fmt"

const (
	// SetupSteps is the number of sources lit with primaries before play.
	SetupSteps = 3

	// WinThreshold is the deviation a tile must get strictly below to win.
	WinThreshold = 10.0
)

// setupColors are painted on the first, second and third activated source.
var setupColors = [SetupSteps]RGB{Red, Green, Blue}

// Puzzle is the configuration of one game as handed out by a provider.
type Puzzle struct {
	UserID   string `json:"userId"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	MaxMoves int    `json:"maxMoves"`
	Target   RGB    `json:"target"`
}

// Phase is the top-level state of a game.
type Phase uint8

const (
	PhaseSetup    Phase = iota // lighting the three primary sources
	PhaseActive                // dragging tiles onto sources
	PhaseFinished              // terminal until restart
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseActive:
		return "active"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Outcome tells how a finished game ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// State is a complete snapshot of one game. Transitions return a new State
// and never modify the grid of the receiver.
type State struct {
	Puzzle      Puzzle
	Grid        Grid
	Phase       Phase
	Outcome     Outcome
	Moves       int   // moves consumed, setup activations included
	NextColor   RGB   // color for the next source activated during setup
	Closest     Match // tile closest to the target
	DragEnabled bool
}

// NewState starts a game for the puzzle: setup phase, no moves, red armed.
// A puzzle without any move budget starts finished and lost.
func NewState(p Puzzle) (State, error) {
	g, err := Build(p.Width, p.Height)
	if err != nil {
		return State{}, err
	}
	g.MarkClosest(DefaultClosestID)

	s := State{
		Puzzle:    p,
		Grid:      g,
		Phase:     PhaseSetup,
		NextColor: setupColors[0],
		Closest:   NoMatch(),
	}
	if p.MaxMoves <= 0 {
		s.Phase = PhaseFinished
		s.Outcome = OutcomeLost
	}
	return s, nil
}

// IsWin reports whether a deviation is close enough to win.
func IsWin(delta float64) bool {
	return delta < WinThreshold
}

// MovesLeft returns the remaining move budget, never negative.
func (s State) MovesLeft() int {
	if left := s.Puzzle.MaxMoves - s.Moves; left > 0 {
		return left
	}
	return 0
}

// Finished reports whether the game has ended.
func (s State) Finished() bool {
	return s.Phase == PhaseFinished
}

// ActivateSource lights a source with the armed primary color. Only valid
// during setup; the third activation starts the active phase, or ends the
// game as lost when setup used up the whole budget.
func (s State) ActivateSource(id CellID) (State, error) {
	if s.Phase != PhaseSetup {
		return s, fmt.Errorf("core: activate %s in %s phase: %w", id, s.Phase, ErrInvalidTransition)
	}

	g, err := Illuminate(s.Grid, id, s.NextColor)
	if err != nil {
		return s, err
	}

	next := s
	next.Grid = g
	next.Moves++
	if next.Moves < SetupSteps {
		next.NextColor = setupColors[next.Moves]
	} else {
		next.Phase = PhaseActive
		next.DragEnabled = true
		next.Grid.SetEnabled(true)
	}
	next.evaluate(next.Phase == PhaseActive)
	return next, nil
}

// DropTile paints the source sourceID with the color of the cell tileID.
// Only valid while active. The dragged cell must be enabled and lit, and the
// target must be a source.
func (s State) DropTile(tileID, sourceID CellID) (State, error) {
	if s.Phase != PhaseActive {
		return s, fmt.Errorf("core: drop %s on %s in %s phase: %w", tileID, sourceID, s.Phase, ErrInvalidTransition)
	}

	from, err := s.Grid.Lookup(tileID)
	if err != nil {
		return s, err
	}
	to, err := s.Grid.Lookup(sourceID)
	if err != nil {
		return s, err
	}
	switch {
	case to.Kind != KindSource:
		return s, fmt.Errorf("core: drop on %s %s: %w", to.Kind, sourceID, ErrInvalidDrop)
	case from.Kind == KindUnused || !from.Enabled:
		return s, fmt.Errorf("core: drag from %s %s: %w", from.Kind, tileID, ErrInvalidDrop)
	case from.Color.IsBlack():
		return s, fmt.Errorf("core: drag unlit %s: %w", tileID, ErrInvalidDrop)
	}

	g, err := Illuminate(s.Grid, sourceID, from.Color)
	if err != nil {
		return s, err
	}

	next := s
	next.Grid = g
	next.Moves++
	next.evaluate(true)
	return next, nil
}

// evaluate refreshes the closest match and applies the end conditions.
// A win takes precedence over running out of moves on the same move.
func (s *State) evaluate(countMoves bool) {
	s.Closest = ClosestMatch(s.Grid, s.Puzzle.Target)
	s.Grid.MarkClosest(s.Closest.ID)

	switch {
	case IsWin(s.Closest.Delta):
		s.finish(OutcomeWon)
	case countMoves && s.Moves >= s.Puzzle.MaxMoves:
		s.finish(OutcomeLost)
	}
}

func (s *State) finish(o Outcome) {
	s.Phase = PhaseFinished
	s.Outcome = o
	s.DragEnabled = false
	s.Grid.SetEnabled(false)
}
