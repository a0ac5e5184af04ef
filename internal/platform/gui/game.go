// Package gui runs tilestack in a desktop window with ebiten. It feeds
// mouse and keyboard input to a tilestack.Session laid out in pixels and
// draws pattern images with layer-coloured borders.
package gui

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tilestack/internal/config"
	"github.com/vovakirdan/tilestack/internal/core"
	"github.com/vovakirdan/tilestack/internal/games/tilestack"
	"github.com/vovakirdan/tilestack/internal/platform/hooks"
)

// Options configure a window game.
type Options struct {
	Seed      int64
	Patterns  []image.Image // Pre-scaled pattern art; generated when nil
	Hooks     hooks.Hooks
	Logger    *log.Logger
	Clock     func() time.Time
	Clipboard bool // Y copies the board as text
}

// keyActions binds window keys to platform actions.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyK:          core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyJ:          core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyH:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeyL:          core.ActionRight,
	ebiten.KeySpace:      core.ActionConfirm,
	ebiten.KeyEnter:      core.ActionConfirm,
	ebiten.KeyQ:          core.ActionQuit,
	ebiten.KeyEscape:     core.ActionQuit,
}

// Game implements ebiten.Game around a tilestack session.
type Game struct {
	id       string
	cfg      config.TileStackConfig
	opts     Options
	logger   *log.Logger
	session  *tilestack.Session
	pending  []core.Event
	patterns []*ebiten.Image

	frame         core.InputFrame
	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool // for edge-triggered click detection
}

// New creates a window game for a registered tilestack variant.
func New(gameID string, cfg config.TileStackConfig, opts Options) (*Game, error) {
	variant, ok := tilestack.VariantForID(gameID)
	if !ok {
		return nil, fmt.Errorf("gui: unknown game %q", gameID)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	art := opts.Patterns
	if art == nil {
		var err error
		art, err = GeneratePatterns(cfg.Patterns, cfg.Window.TileSize)
		if err != nil {
			return nil, err
		}
	}
	if len(art) < len(cfg.Patterns) {
		return nil, fmt.Errorf("gui: %d pattern images for %d patterns", len(art), len(cfg.Patterns))
	}

	g := &Game{
		id:       gameID,
		cfg:      cfg,
		opts:     opts,
		logger:   logger,
		frame:    core.NewInputFrame(),
		prevKeys: make(map[ebiten.Key]bool),
	}
	for _, img := range art {
		g.patterns = append(g.patterns, ebiten.NewImageFromImage(img))
	}

	g.session = tilestack.NewSession(tilestack.Options{
		Config:  cfg,
		Variant: variant,
		Layout:  tilestack.WindowLayout(cfg),
		Seed:    opts.Seed,
		Clock:   opts.Clock,
		Logger:  logger,
	})
	g.pending = g.session.Reset()
	return g, nil
}

// Session exposes the underlying session.
func (g *Game) Session() *tilestack.Session {
	return g.session
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.readInput()
	return g.step()
}

// step runs one session tick on the collected frame.
func (g *Game) step() error {
	res := g.session.Step(g.frame)
	g.frame.Clear()

	events := res.Events
	if len(g.pending) > 0 {
		events = append(g.pending, events...)
		g.pending = nil
	}
	g.opts.Hooks.Handle(g.id, events)

	if res.Quit {
		return ebiten.Termination
	}
	return nil
}

// readInput records edge-triggered keys, the left mouse button and the
// window close button into the frame.
func (g *Game) readInput() {
	current := make(map[ebiten.Key]bool, len(keyActions)+1)
	for k, action := range keyActions {
		if !ebiten.IsKeyPressed(k) {
			continue
		}
		current[k] = true
		if !g.prevKeys[k] {
			g.frame.Set(action)
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyY) {
		current[ebiten.KeyY] = true
		if !g.prevKeys[ebiten.KeyY] {
			g.copyBoard()
		}
	}
	g.prevKeys = current

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if pressed && !g.prevMouseLeft {
		x, y := ebiten.CursorPosition()
		g.frame.Click(x, y)
	}
	g.prevMouseLeft = pressed

	if ebiten.IsWindowBeingClosed() {
		g.frame.Set(core.ActionQuit)
	}
}

func (g *Game) copyBoard() {
	if !g.opts.Clipboard {
		return
	}
	text := g.session.Text()
	if text == "" {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		g.logger.Warn("clipboard copy failed", "err", err)
		return
	}
	g.logger.Info("board copied to clipboard")
}

// Layout implements ebiten.Game with a fixed logical size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Run opens the window and blocks until the player quits.
func Run(g *Game, title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetTPS(max(g.cfg.Timing.FPS, 1))
	ebiten.SetWindowClosingHandled(true)

	// RunGame returns nil when Update ends with ebiten.Termination
	return ebiten.RunGame(g)
}
