package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rgb-alchemy/internal/core"
	"github.com/vovakirdan/rgb-alchemy/internal/games/alchemy"
	"github.com/vovakirdan/rgb-alchemy/internal/provider"
)

// Model is the Bubble Tea model for one player's game.
type Model struct {
	game     *alchemy.Game
	source   provider.Source
	screen   *core.Screen
	renderer *lipgloss.Renderer
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	userID   string
	seq      int // id of the latest puzzle request
	fetching bool
	quitting bool
}

// NewModel creates a model that plays puzzles from source.
// The first puzzle is requested by Init.
func NewModel(source provider.Source, cfg core.RuntimeConfig) Model {
	return Model{
		game:     alchemy.New(),
		source:   source,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		renderer: lipgloss.DefaultRenderer(),
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		userID:   cfg.UserID,
		seq:      1,
		fetching: true,
	}
}

// WithRenderer returns a copy of the model that styles output with r.
// SSH sessions pass a renderer bound to the remote terminal.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	m.renderer = r
	return m
}

// Init requests the first puzzle.
func (m Model) Init() tea.Cmd {
	return fetchCmd(m.source, m.userID, m.seq, m.config.FetchTimeout)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case PuzzleMsg:
		return m.handlePuzzle(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		return m.restart()
	case core.ActionNone:
		return m, nil
	default:
		// The board on screen is about to be replaced.
		if m.fetching {
			return m, nil
		}
		m.game.Handle(action)
		return m, nil
	}
}

// restart requests a fresh puzzle for the same user. Any response still in
// flight is superseded.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.seq++
	m.fetching = true
	m.game.SetStatus("Fetching puzzle...")
	return m, fetchCmd(m.source, m.userID, m.seq, m.config.FetchTimeout)
}

// handlePuzzle installs a fetched puzzle unless a newer request exists.
func (m Model) handlePuzzle(msg PuzzleMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.seq {
		return m, nil
	}
	m.fetching = false

	if msg.Err != nil {
		m.game.SetStatus(fmt.Sprintf("Could not fetch a puzzle: %v. Press R to retry", msg.Err))
		return m, nil
	}
	if err := m.game.Load(msg.Puzzle); err != nil {
		m.game.SetStatus(fmt.Sprintf("%v. Press R to retry", err))
		return m, nil
	}
	m.userID = msg.Puzzle.UserID
	return m, nil
}

// Fetching reports whether a puzzle request is outstanding.
func (m Model) Fetching() bool {
	return m.fetching
}

// UserID returns the id sent to the provider on restart.
func (m Model) UserID() string {
	return m.userID
}

// Game returns the game being played.
func (m Model) Game() *alchemy.Game {
	return m.game
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".alchemy", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("alchemy_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	helpView := helpStyle.Render(m.help.View(m.keys))
	helpHeight := strings.Count(helpView, "\n") + 1

	m.screen.Resize(m.config.ScreenW, m.config.ScreenH-helpHeight)
	m.game.Render(m.screen)

	return RenderScreen(m.renderer, m.screen) + "\n" + helpView
}

// Run starts the Bubble Tea program for a local player.
func Run(source provider.Source, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(source, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
