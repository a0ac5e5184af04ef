package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilestack/internal/core"
	"github.com/vovakirdan/tilestack/internal/platform/hooks"
	"github.com/vovakirdan/tilestack/internal/storage"
)

// recordingGame remembers what the model fed it.
type recordingGame struct {
	resets  int
	resized [2]int
	frames  []core.InputFrame
	logger  *log.Logger
	events  []core.Event
}

func (g *recordingGame) ID() string    { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }

func (g *recordingGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	// Copy; the model clears its frame after each tick
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	frame.Clicks = append(frame.Clicks, in.Clicks...)
	g.frames = append(g.frames, frame)

	res := core.StepResult{Events: g.events, Quit: in.Has(core.ActionQuit)}
	g.events = nil
	return res
}

func (g *recordingGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "board") }
func (g *recordingGame) State() core.GameState   { return core.GameState{} }
func (g *recordingGame) Resize(w, h int)         { g.resized = [2]int{w, h} }
func (g *recordingGame) SetLogger(l *log.Logger) { g.logger = l }

type savedResults struct {
	results []storage.Result
}

func (s *savedResults) SaveResult(r storage.Result) (int64, error) {
	s.results = append(s.results, r)
	return int64(len(s.results)), nil
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func TestNewModelSetsLogger(t *testing.T) {
	game := &recordingGame{}
	logger := log.New(io.Discard)
	NewModel(game, testConfig(), Options{Logger: logger})

	if game.logger != logger {
		t.Error("NewModel should hand its logger to a Loggable game")
	}
}

func TestModelInitResets(t *testing.T) {
	game := &recordingGame{}
	m := NewModel(game, testConfig(), Options{})

	if cmd := m.Init(); cmd == nil {
		t.Error("Init() should schedule the first tick")
	}
	if game.resets != 1 {
		t.Errorf("resets = %d, expected 1", game.resets)
	}
}

func TestModelClickReachesGame(t *testing.T) {
	game := &recordingGame{}
	m := NewModel(game, testConfig(), Options{})

	m, _ = update(t, m, tea.MouseMsg{X: 7, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}

	if len(game.frames) != 1 {
		t.Fatalf("frames = %d, expected 1", len(game.frames))
	}
	clicks := game.frames[0].Clicks
	if len(clicks) != 1 || clicks[0] != (core.Point{X: 7, Y: 3}) {
		t.Errorf("Clicks = %v, expected [{7 3}]", clicks)
	}

	// The frame is cleared after the tick
	update(t, m, TickMsg{})
	if len(game.frames[1].Clicks) != 0 {
		t.Errorf("second tick Clicks = %v, expected none", game.frames[1].Clicks)
	}
}

func TestModelQuitGoesThroughGame(t *testing.T) {
	game := &recordingGame{}
	m := NewModel(game, testConfig(), Options{})

	m, cmd := update(t, m, runeKey('q'))
	if cmd != nil {
		t.Error("quit key should not stop the program before the game sees it")
	}

	m, cmd = update(t, m, TickMsg{})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("cmd() = %T, expected tea.QuitMsg", cmd())
	}
	if m.View() != "" {
		t.Error("View() should be empty once quitting")
	}
}

func TestModelResize(t *testing.T) {
	game := &recordingGame{}
	m := NewModel(game, testConfig(), Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if game.resized != [2]int{100, 40} {
		t.Errorf("resized = %v, expected [100 40]", game.resized)
	}
	if game.resets != 0 {
		t.Errorf("a Resizable game should not be reset, resets = %d", game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 100x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelTickRunsHooks(t *testing.T) {
	game := &recordingGame{
		events: []core.Event{{Kind: core.EventWon, Layers: 3, TilesLeft: 0}},
	}
	saved := &savedResults{}
	m := NewModel(game, testConfig(), Options{Hooks: hooks.Hooks{Results: saved}})

	update(t, m, TickMsg{})
	if len(saved.results) != 1 {
		t.Fatalf("saved %d results, expected 1", len(saved.results))
	}
	if saved.results[0].GameID != "recording" || saved.results[0].Outcome != storage.OutcomeWon {
		t.Errorf("saved %+v, expected a won round for recording", saved.results[0])
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	game := &recordingGame{}
	m := NewModel(game, testConfig(), Options{ScreenshotDir: dir})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.status == "" {
		t.Error("screenshot should set a status notice")
	}
	if len(game.frames) != 0 {
		t.Error("ctrl+s should not reach the game")
	}
}

func TestModelClipboardDisabled(t *testing.T) {
	game := &recordingGame{}
	m := NewModel(game, testConfig(), Options{Clipboard: false})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if m.status != "" {
		t.Errorf("status = %q, expected none with the clipboard off", m.status)
	}
}
