package tilestack

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilestack/internal/config"
	"github.com/vovakirdan/tilestack/internal/core"
	"github.com/vovakirdan/tilestack/internal/registry"
)

const (
	hudHeight  = 2 // Status line and a spacer above the board
	hintHeight = 1 // Controls line below the board

	menuItemW    = 24
	menuItemH    = 3
	menuItemStep = 4
	menuTitleH   = 2
)

// Game adapts a Session to the terminal platform: it lays the board out in
// character cells and draws into a core.Screen.
type Game struct {
	variant Variant
	cfg     config.TileStackConfig
	logger  *log.Logger
	clock   func() time.Time

	session *Session
	pending []core.Event

	glyphs []rune
	colors []core.Color

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates the menu variant.
func New() *Game {
	return &Game{variant: VariantMenu, cfg: config.DefaultTileStackConfig()}
}

// NewClassic creates the fixed-layer variant without a menu.
func NewClassic() *Game {
	return &Game{variant: VariantClassic, cfg: config.DefaultTileStackConfig()}
}

func init() {
	registry.Register("tilestack", func() registry.Game {
		return New()
	})
	registry.Register("tilestack_classic", func() registry.Game {
		return NewClassic()
	})
}

// VariantForID maps a registered game ID to its variant.
func VariantForID(id string) (Variant, bool) {
	switch id {
	case "tilestack":
		return VariantMenu, true
	case "tilestack_classic":
		return VariantClassic, true
	}
	return VariantMenu, false
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return "tilestack_classic"
	}
	return "tilestack"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Tile Stack (Classic)"
	}
	return "Tile Stack"
}

// Configure replaces the configuration used by the next Reset.
func (g *Game) Configure(cfg config.TileStackConfig) {
	g.cfg = cfg
}

// SetLogger sets the logger handed to new sessions.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
}

// SetClock overrides the wall clock for new sessions.
func (g *Game) SetClock(clock func() time.Time) {
	g.clock = clock
}

// Reset starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.loadPatterns()

	g.session = NewSession(Options{
		Config:  g.cfg,
		Variant: g.variant,
		Layout:  g.layout(),
		Seed:    cfg.Seed,
		Clock:   g.clock,
		Logger:  g.logger,
	})
	g.pending = g.session.Reset()
	g.checkScreenSize()
}

// Resize re-centres the layout for a new terminal size, keeping the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.session != nil {
		g.session.SetLayout(g.layout())
	}
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		// The board is hidden; only quit gets through
		quitOnly := core.NewInputFrame()
		if in.Has(core.ActionQuit) {
			quitOnly.Set(core.ActionQuit)
		}
		in = quitOnly
	}

	res := g.session.Step(in)
	if len(g.pending) > 0 {
		res.Events = append(g.pending, res.Events...)
		g.pending = nil
	}
	if g.tooSmall {
		res.State.Paused = true
	}
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.GameState()
	if g.tooSmall {
		st.Paused = true
	}
	return st
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot returns the session snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Click/Space: Pick | Arrows/HJKL: Move | Q: Quit"
}

// layout centres the board and the menu on the screen.
func (g *Game) layout() Layout {
	tw, th := g.cfg.Terminal.TileWidth, g.cfg.Terminal.TileHeight
	boardW := g.cfg.Board.Cols * tw
	boardH := g.cfg.Board.Rows * th

	top := max(0, (g.screenH-(hudHeight+boardH+hintHeight))/2)
	menuH := menuTitleH + len(config.Presets())*menuItemStep + menuItemH
	menuTop := max(0, (g.screenH-menuH)/2)

	return Layout{
		BoardX:   max(0, (g.screenW-boardW)/2),
		BoardY:   top + hudHeight,
		TileW:    tw,
		TileH:    th,
		MenuX:    max(0, (g.screenW-menuItemW)/2),
		MenuY:    menuTop + menuTitleH,
		MenuW:    menuItemW,
		MenuH:    menuItemH,
		MenuStep: menuItemStep,
	}
}

// checkScreenSize checks if the board fits on screen.
func (g *Game) checkScreenSize() {
	minW := g.cfg.Board.Cols * g.cfg.Terminal.TileWidth
	minH := g.cfg.Board.Rows*g.cfg.Terminal.TileHeight + hudHeight + hintHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// loadPatterns resolves configured glyphs and colours.
func (g *Game) loadPatterns() {
	g.glyphs = make([]rune, len(g.cfg.Patterns))
	g.colors = make([]core.Color, len(g.cfg.Patterns))
	for i, p := range g.cfg.Patterns {
		g.glyphs[i] = '?'
		for _, r := range p.Glyph {
			g.glyphs[i] = r
			break
		}
		c, ok := core.ParseColor(p.Color)
		if !ok {
			c = core.ColorWhite
		}
		g.colors[i] = c
	}
}
