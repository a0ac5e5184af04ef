package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilestack/internal/core"
	"github.com/vovakirdan/tilestack/internal/platform/hooks"
	"github.com/vovakirdan/tilestack/internal/registry"
)

// Options configure a Model beyond the game itself.
type Options struct {
	Hooks         hooks.Hooks
	Logger        *log.Logger
	ScreenshotDir string // Defaults to ~/.tilestack/screenshots
	Clipboard     bool   // Enable ctrl+y copy; off for remote sessions
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string // One-line notice shown under the game
	statusTTL  int    // Ticks left for the notice
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if l, ok := game.(registry.Loggable); ok {
		l.SetLogger(logger)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "ctrl+y":
		m.copyToClipboard()
		return m, nil
	}

	// Quit goes through the game so it can tear down the round
	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.opts.Hooks.Handle(m.game.ID(), result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.statusTTL > 0 {
		m.statusTTL--
		if m.statusTTL == 0 {
			m.status = ""
		}
	}

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// notify shows a short notice for about two seconds.
func (m *Model) notify(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusTTL = max(m.config.TickRate, 1) * 2
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("cannot resolve screenshot directory", "err", err)
			return
		}
		dir = filepath.Join(home, ".tilestack", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(PlainText(m.screen)), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.notify("Saved %s", filepath.Base(path))
}

// copyToClipboard copies the rendered board as plain text.
func (m *Model) copyToClipboard() {
	if !m.opts.Clipboard {
		return
	}
	m.game.Render(m.screen)
	if err := clipboard.WriteAll(PlainText(m.screen)); err != nil {
		m.logger.Warn("clipboard copy failed", "err", err)
		m.notify("Clipboard unavailable")
		return
	}
	m.notify("Board copied")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" {
		m.screen.DrawTextColored(0, m.screen.Height()-1, m.status, core.ColorGray)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Tiles and menu items are clickable
	)

	_, err := p.Run()
	return err
}
