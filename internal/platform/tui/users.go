package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rgb-alchemy/internal/storage"
)

// maxUsers bounds how many registry rows the browser loads.
const maxUsers = 500

// UserLister reads the provider's user registry.
type UserLister interface {
	Users(limit int) ([]storage.UserEntry, error)
	Totals() (storage.Totals, error)
}

// UsersKeyMap defines the key bindings for the user browser.
type UsersKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k UsersKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k UsersKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Refresh, k.Quit}}
}

// DefaultUsersKeyMap returns the default key bindings.
func DefaultUsersKeyMap() UsersKeyMap {
	return UsersKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// UsersModel is the Bubble Tea model for browsing the user registry.
type UsersModel struct {
	store    UserLister
	users    []storage.UserEntry
	totals   storage.Totals
	err      error
	table    table.Model
	help     help.Model
	keys     UsersKeyMap
	width    int
	height   int
	quitting bool
}

// NewUsersModel creates a browser and loads the registry.
func NewUsersModel(store UserLister, width, height int) UsersModel {
	m := UsersModel{
		store:  store,
		help:   help.New(),
		keys:   DefaultUsersKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *UsersModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "User", Width: 10},
		{Title: "Puzzles", Width: 8},
		{Title: "First seen", Width: 14},
		{Title: "Last seen", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the registry into the table.
func (m *UsersModel) load() {
	m.err = nil
	users, err := m.store.Users(maxUsers)
	if err != nil {
		m.err = err
		users = nil
	}
	m.users = users
	if totals, err := m.store.Totals(); err == nil {
		m.totals = totals
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded users.
func (m *UsersModel) updateTableRows() {
	rows := make([]table.Row, len(m.users))
	for i, u := range m.users {
		rows[i] = table.Row{
			u.UserID,
			fmt.Sprintf("%d", u.PuzzlesIssued),
			u.FirstSeen.Format("Jan 02 15:04"),
			u.LastSeen.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the model.
func (m UsersModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m UsersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Selected returns the user under the table cursor.
func (m UsersModel) Selected() (storage.UserEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.users) {
		return storage.UserEntry{}, false
	}
	return m.users[i], true
}

// View renders the browser.
func (m UsersModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := fmt.Sprintf("USERS - %d registered, %d puzzles issued", m.totals.Users, m.totals.Puzzles)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty/error message.
func (m UsersModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.err != nil {
		return emptyStyle.Render(fmt.Sprintf("Cannot read registry:\n%v", m.err))
	}
	if len(m.users) == 0 {
		return emptyStyle.Render("No users recorded yet.\nStart the provider and play a game!")
	}
	return m.table.View()
}

// RunUsers runs the user browser.
func RunUsers(store UserLister, width, height int) error {
	p := tea.NewProgram(
		NewUsersModel(store, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
