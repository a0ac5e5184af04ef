package tilestack

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilestack/internal/config"
	"github.com/vovakirdan/tilestack/internal/core"
)

// State is the phase of a session.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateWon
	StateTimedOut
)

// String returns a lowercase name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateTimedOut:
		return "timed_out"
	default:
		return "menu"
	}
}

// Variant selects how a session begins and ends.
type Variant int

const (
	// VariantMenu shows the difficulty menu and returns to it after a round.
	VariantMenu Variant = iota
	// VariantClassic starts right away with the configured layer count and
	// quits after the first round.
	VariantClassic
)

// CommandKind enumerates what resolved input asks the session to do.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdQuit
	CmdStart       // Start a round with Command.Layers
	CmdMenuUp      // Move the menu cursor up
	CmdMenuDown    // Move the menu cursor down
	CmdMenuConfirm // Activate the item under the menu cursor
	CmdPick        // Pick the tile at screen point (X, Y)
	CmdCursorMove  // Move the board cursor by (DRow, DCol)
	CmdCursorPick  // Pick the top tile under the board cursor
)

// Command is one unit of resolved input.
type Command struct {
	Kind       CommandKind
	Layers     int
	X, Y       int
	DRow, DCol int
}

// Options configure a new Session.
type Options struct {
	Config  config.TileStackConfig
	Variant Variant
	Layout  Layout
	Seed    int64
	Clock   func() time.Time // Defaults to time.Now
	Logger  *log.Logger      // Defaults to a discarding logger
}

// Session owns one player's game: board, selection, countdown and phase.
// It is driven by a single loop and is not safe for concurrent use.
type Session struct {
	cfg     config.TileStackConfig
	variant Variant
	layout  Layout
	rng     *rand.Rand
	clock   func() time.Time
	logger  *log.Logger
	ids     []TileID
	menu    []MenuItem

	state     State
	board     *Board
	selection Selection
	layers    int
	startedAt time.Time
	countdown int
	resultAt  time.Time
	elapsed   time.Duration

	menuCursor int
	cursorRow  int
	cursorCol  int
	presetUsed bool
	quit       bool
}

// NewSession creates a session in the menu state. Call Reset to enter the
// variant's starting state.
func NewSession(opts Options) *Session {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Session{
		cfg:       opts.Config,
		variant:   opts.Variant,
		layout:    opts.Layout,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		clock:     clock,
		logger:    logger,
		ids:       PatternIDs(len(opts.Config.Patterns)),
		menu:      MenuItems(opts.Config.Difficulty),
		countdown: opts.Config.Timing.TimeLimit,
	}
}

// Reset puts the session in its starting state: a round of the configured
// layer count for the classic variant or when a start preset is set, the
// menu otherwise.
func (s *Session) Reset() []core.Event {
	s.state = StateMenu
	s.board = nil
	s.selection.Reset()
	s.menuCursor = 0
	s.quit = false
	s.countdown = s.cfg.Timing.TimeLimit

	switch {
	case s.variant == VariantClassic:
		ev := s.start(s.cfg.Board.Layers)
		// Classic has no menu to fall back to
		s.quit = ev.Kind == core.EventStartFailed
		return []core.Event{ev}
	case !s.presetUsed && s.cfg.Difficulty.Start != "":
		s.presetUsed = true
		preset, err := config.ParsePreset(s.cfg.Difficulty.Start)
		if err != nil {
			s.logger.Warn("ignoring start preset", "err", err)
			return nil
		}
		return []core.Event{s.start(s.cfg.Difficulty.LayersForPreset(preset))}
	}
	return nil
}

// Step resolves one frame of input and advances the session.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	return s.Tick(s.Resolve(in))
}

// Resolve turns raw input into commands for the current state.
func (s *Session) Resolve(in core.InputFrame) []Command {
	if in.Has(core.ActionQuit) {
		return []Command{{Kind: CmdQuit}}
	}

	var cmds []Command
	switch s.state {
	case StateMenu:
		if in.Has(core.ActionUp) {
			cmds = append(cmds, Command{Kind: CmdMenuUp})
		}
		if in.Has(core.ActionDown) {
			cmds = append(cmds, Command{Kind: CmdMenuDown})
		}
		if in.Has(core.ActionConfirm) {
			cmds = append(cmds, Command{Kind: CmdMenuConfirm})
		}
		for _, p := range in.Clicks {
			i, ok := s.layout.menuHit(p.X, p.Y, len(s.menu))
			if !ok {
				continue
			}
			if s.menu[i].Quit {
				cmds = append(cmds, Command{Kind: CmdQuit})
			} else {
				cmds = append(cmds, Command{Kind: CmdStart, Layers: s.menu[i].Layers})
			}
		}

	case StatePlaying:
		var dRow, dCol int
		if in.Has(core.ActionUp) {
			dRow--
		}
		if in.Has(core.ActionDown) {
			dRow++
		}
		if in.Has(core.ActionLeft) {
			dCol--
		}
		if in.Has(core.ActionRight) {
			dCol++
		}
		if dRow != 0 || dCol != 0 {
			cmds = append(cmds, Command{Kind: CmdCursorMove, DRow: dRow, DCol: dCol})
		}
		for _, p := range in.Clicks {
			cmds = append(cmds, Command{Kind: CmdPick, X: p.X, Y: p.Y})
		}
		if in.Has(core.ActionConfirm) {
			cmds = append(cmds, Command{Kind: CmdCursorPick})
		}
	}
	return cmds
}

// Tick applies commands and evaluates timers for one frame.
func (s *Session) Tick(cmds []Command) core.StepResult {
	var events []core.Event
	now := s.clock()

	switch s.state {
	case StateMenu:
		events = s.tickMenu(cmds)
	case StatePlaying:
		events = s.tickPlaying(now, cmds)
	case StateWon, StateTimedOut:
		s.tickResult(now, cmds)
	}

	return core.StepResult{State: s.GameState(), Events: events, Quit: s.quit}
}

func (s *Session) tickMenu(cmds []Command) []core.Event {
	var events []core.Event
	for _, c := range cmds {
		switch c.Kind {
		case CmdQuit:
			s.quit = true
			return events
		case CmdMenuUp:
			s.menuCursor = (s.menuCursor - 1 + len(s.menu)) % len(s.menu)
		case CmdMenuDown:
			s.menuCursor = (s.menuCursor + 1) % len(s.menu)
		case CmdMenuConfirm:
			item := s.menu[s.menuCursor]
			if item.Quit {
				s.quit = true
				return events
			}
			events = append(events, s.start(item.Layers))
		case CmdStart:
			events = append(events, s.start(c.Layers))
		}
		if s.state != StateMenu {
			break
		}
	}
	return events
}

func (s *Session) tickPlaying(now time.Time, cmds []Command) []core.Event {
	var events []core.Event
	s.countdown = s.cfg.Timing.TimeLimit - int(now.Sub(s.startedAt)/time.Second)

	for _, c := range cmds {
		switch c.Kind {
		case CmdQuit:
			s.quit = true
			return events
		case CmdPick:
			if s.countdown <= 0 {
				continue
			}
			cell, ok := HitTest(s.board, c.X-s.layout.BoardX, c.Y-s.layout.BoardY, s.layout.TileW, s.layout.TileH)
			if !ok {
				continue
			}
			s.cursorRow, s.cursorCol = cell.Row, cell.Col
			events = s.pick(cell, events)
		case CmdCursorMove:
			s.cursorRow = core.Clamp(s.cursorRow+c.DRow, 0, s.board.Rows-1)
			s.cursorCol = core.Clamp(s.cursorCol+c.DCol, 0, s.board.Cols-1)
		case CmdCursorPick:
			if s.countdown <= 0 {
				continue
			}
			if cell, ok := s.board.Top(s.cursorRow, s.cursorCol); ok {
				events = s.pick(cell, events)
			}
		}

		if s.board.Empty() {
			return append(events, s.finish(now, StateWon))
		}
	}

	switch {
	case s.board.Empty():
		events = append(events, s.finish(now, StateWon))
	case s.countdown <= 0:
		events = append(events, s.finish(now, StateTimedOut))
	}
	return events
}

func (s *Session) tickResult(now time.Time, cmds []Command) {
	for _, c := range cmds {
		if c.Kind == CmdQuit {
			s.quit = true
			return
		}
	}

	delay := time.Duration(s.cfg.Timing.ResultDelayMS) * time.Millisecond
	if now.Sub(s.resultAt) < delay {
		return
	}

	if s.variant == VariantClassic {
		s.quit = true
		return
	}
	s.state = StateMenu
	s.board = nil
	s.countdown = s.cfg.Timing.TimeLimit
}

// start builds a fresh board and enters Playing. On failure the session
// stays where it was.
func (s *Session) start(layers int) core.Event {
	var (
		board *Board
		err   error
	)
	if layers > config.MaxLayers {
		err = fmt.Errorf("%w: %d (max %d)", ErrInvalidLayers, layers, config.MaxLayers)
	} else {
		board, err = BuildBoard(layers, s.cfg.Board.Rows, s.cfg.Board.Cols, s.ids, s.rng)
	}
	if err != nil {
		s.logger.Error("failed to start round", "layers", layers, "err", err)
		return core.Event{Kind: core.EventStartFailed, Layers: layers, Err: err}
	}

	s.board = board
	s.layers = layers
	s.selection.Reset()
	s.startedAt = s.clock()
	s.countdown = s.cfg.Timing.TimeLimit
	s.elapsed = 0
	s.cursorRow, s.cursorCol = 0, 0
	s.state = StatePlaying

	s.logger.Info("round started", "layers", layers, "tiles", board.Remaining())
	return core.Event{Kind: core.EventStarted, Layers: layers, TilesLeft: board.Remaining()}
}

func (s *Session) pick(cell Cell, events []core.Event) []core.Event {
	switch s.selection.Select(s.board, cell) {
	case ResolveMatched:
		s.logger.Debug("pair matched", "row", cell.Row, "col", cell.Col, "left", s.board.Remaining())
		return append(events, core.Event{Kind: core.EventMatched, Layers: s.layers, TilesLeft: s.board.Remaining()})
	case ResolveMismatched:
		s.logger.Debug("pair mismatched", "row", cell.Row, "col", cell.Col)
		return append(events, core.Event{Kind: core.EventMismatched, Layers: s.layers, TilesLeft: s.board.Remaining()})
	}
	return events
}

func (s *Session) finish(now time.Time, state State) core.Event {
	s.state = state
	s.resultAt = now
	s.elapsed = now.Sub(s.startedAt)
	s.selection.Reset()

	kind := core.EventWon
	if state == StateTimedOut {
		kind = core.EventTimedOut
	}
	left := s.board.Remaining()
	s.logger.Info("round finished", "outcome", state, "layers", s.layers, "elapsed", s.elapsed.Round(time.Second), "tiles_left", left)
	return core.Event{Kind: kind, Layers: s.layers, Elapsed: s.elapsed, TilesLeft: left}
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Variant returns the session variant.
func (s *Session) Variant() Variant { return s.variant }

// Board returns the live board, or nil outside a round. Callers must not
// modify it.
func (s *Session) Board() *Board { return s.board }

// Layers returns the layer count of the current or last round.
func (s *Session) Layers() int { return s.layers }

// Countdown returns the whole seconds left, never below zero.
func (s *Session) Countdown() int { return max(s.countdown, 0) }

// Selected reports whether c is in the pending selection.
func (s *Session) Selected(c Cell) bool { return s.selection.Contains(c) }

// Selection returns the pending selection.
func (s *Session) Selection() []Cell { return s.selection.Cells() }

// Cursor returns the board cursor position.
func (s *Session) Cursor() (row, col int) { return s.cursorRow, s.cursorCol }

// MenuItems returns the menu entries.
func (s *Session) MenuItems() []MenuItem { return s.menu }

// MenuCursor returns the highlighted menu entry.
func (s *Session) MenuCursor() int { return s.menuCursor }

// Layout returns the current layout.
func (s *Session) Layout() Layout { return s.layout }

// SetLayout moves the board and menu without touching game state.
func (s *Session) SetLayout(l Layout) { s.layout = l }

// Config returns the configuration the session was created with.
func (s *Session) Config() config.TileStackConfig { return s.cfg }

// GameState reports the coarse status for the platform.
func (s *Session) GameState() core.GameState {
	return core.GameState{
		GameOver: s.state == StateWon || s.state == StateTimedOut,
		Won:      s.state == StateWon,
		Paused:   s.state == StateMenu,
	}
}
