package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilestack/internal/registry"
	"github.com/vovakirdan/tilestack/internal/storage"
)

const maxHistory = 100 // Max results to load per variant

// HistorySource is the part of the store the history view reads.
type HistorySource interface {
	RecentResults(gameID string, limit int) ([]storage.Result, error)
	Summary(gameID string) (*storage.Summary, error)
}

// HistoryKeyMap defines the key bindings for the history view.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextGame, k.PrevGame, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the result history screen.
type HistoryModel struct {
	games      []registry.GameInfo
	gameCursor int
	source     HistorySource
	results    []storage.Result
	summary    *storage.Summary
	loadErr    error
	table      table.Model
	help       help.Model
	keys       HistoryKeyMap
	width      int
	height     int
	quitting   bool
}

// NewHistoryModel creates a history view starting at gameID
// (or the first registered variant when gameID is unknown).
func NewHistoryModel(source HistorySource, gameID string, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		games:  registry.List(),
		source: source,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	for i, g := range m.games {
		if g.ID == gameID {
			m.gameCursor = i
		}
	}

	m.table = m.createTable()
	if len(m.games) > 0 {
		m.load(m.games[m.gameCursor].ID)
	}
	return m
}

// createTable creates a table sized to the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Result", Width: 10},
		{Title: "Layers", Width: 6},
		{Title: "Time", Width: 6},
		{Title: "Left", Width: 5},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Title, summary, help, borders
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

// load reads results and the summary for a variant.
func (m *HistoryModel) load(gameID string) {
	m.results, m.summary, m.loadErr = nil, nil, nil
	if m.source != nil {
		m.results, m.loadErr = m.source.RecentResults(gameID, maxHistory)
		if m.loadErr == nil {
			m.summary, m.loadErr = m.source.Summary(gameID)
		}
	}
	m.table.SetRows(resultRows(m.results))
	m.table.GotoTop()
}

// resultRows formats results as table rows, newest first.
func resultRows(results []storage.Result) []table.Row {
	rows := make([]table.Row, len(results))
	for i, r := range results {
		outcome := "Won"
		if r.Outcome == storage.OutcomeTimedOut {
			outcome = "Time's up"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			outcome,
			fmt.Sprintf("%d", r.Layers),
			fmt.Sprintf("%ds", r.ElapsedSecs),
			fmt.Sprintf("%d", r.TilesLeft),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// SummaryLine describes a variant's record in one line.
func SummaryLine(s *storage.Summary) string {
	if s == nil || s.Played == 0 {
		return "No rounds played yet."
	}
	return fmt.Sprintf("Played %d  Won %d  Timed out %d", s.Played, s.Won, s.TimedOut)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.load(m.games[m.gameCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.load(m.games[m.gameCursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(resultRows(m.results))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history view.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "RESULTS"
	if len(m.games) > 0 {
		title = fmt.Sprintf("RESULTS - %s", m.games[m.gameCursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	summary := SummaryLine(m.summary)
	if m.loadErr != nil {
		summary = "Could not read history: " + m.loadErr.Error()
	}
	b.WriteString(dimStyle.Render(centerText(summary, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := m.table.View()
	if len(m.results) == 0 {
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4).
			Render("Nothing here yet.\nClear a board to make history!")
	}
	b.WriteString(tableStyle.Render(content))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunHistory runs the history screen until the user quits.
func RunHistory(source HistorySource, gameID string, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(source, gameID, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
