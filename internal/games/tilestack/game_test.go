package tilestack

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tilestack/internal/config"
	"github.com/vovakirdan/tilestack/internal/core"
	"github.com/vovakirdan/tilestack/internal/registry"
)

func newTestGame(t *testing.T, g *Game, clock *fakeClock, start string) (*Game, *core.Screen) {
	t.Helper()
	cfg := config.DefaultTileStackConfig()
	cfg.Difficulty.Start = start
	g.Configure(cfg)
	g.SetClock(clock.Now)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 30, Seed: 7})
	return g, core.NewScreen(80, 30)
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{"tilestack", "tilestack_classic"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
		if _, ok := g.(registry.Configurable); !ok {
			t.Errorf("%s should be Configurable", id)
		}
		if _, ok := g.(registry.Resizable); !ok {
			t.Errorf("%s should be Resizable", id)
		}
	}
}

func TestGameMenuRender(t *testing.T) {
	g, screen := newTestGame(t, New(), newFakeClock(), "")
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Tile Stack", "Easy (2 layers)", "Medium (3 layers)", "Hard (4 layers)", "Exit"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu render missing %q", want)
		}
	}
	if !g.State().Paused {
		t.Error("menu should report paused")
	}
}

func TestGameMenuClick(t *testing.T) {
	g, _ := newTestGame(t, New(), newFakeClock(), "")

	// Menu items are 24x3 boxes centred at x=28, first at y=8
	in := core.NewInputFrame()
	in.Click(40, 9)
	res := g.Step(in)

	if g.Session().State() != StatePlaying || g.Session().Layers() != 2 {
		t.Fatalf("state = %v layers = %d, expected playing with 2", g.Session().State(), g.Session().Layers())
	}
	if !hasEvent(res.Events, core.EventStarted) {
		t.Errorf("events = %v, expected started", res.Events)
	}
}

func TestGameClassicReportsStart(t *testing.T) {
	g, _ := newTestGame(t, NewClassic(), newFakeClock(), "")

	res := g.Step(core.NewInputFrame())
	if !hasEvent(res.Events, core.EventStarted) {
		t.Errorf("first Step events = %v, expected started", res.Events)
	}
	if res = g.Step(core.NewInputFrame()); len(res.Events) != 0 {
		t.Errorf("second Step events = %v, expected none", res.Events)
	}
	if g.Snapshot().Layers != 3 {
		t.Errorf("classic layers = %d, expected 3", g.Snapshot().Layers)
	}
}

func TestGamePlayingRender(t *testing.T) {
	g, screen := newTestGame(t, New(), newFakeClock(), "hard")
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Time Left: 360", "Layers: 4  Tiles: 144"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	// Board origin is (22, 6); the cursor sits on the first tile
	corner := screen.GetCell(22, 6)
	if corner.Rune != '┏' || corner.Color != core.ColorOrange {
		t.Errorf("cursor tile corner = %q %v, expected heavy orange", corner.Rune, corner.Color)
	}
	if r := screen.Get(26, 7); r != '4' {
		t.Errorf("depth digit = %q, expected '4'", r)
	}
	if plain := screen.GetCell(28, 6); plain.Rune != '┌' || plain.Color != core.ColorOrange {
		t.Errorf("tile corner = %q %v, expected single orange", plain.Rune, plain.Color)
	}
}

func TestGameClickSelectsTile(t *testing.T) {
	g, screen := newTestGame(t, New(), newFakeClock(), "easy")

	in := core.NewInputFrame()
	in.Click(30, 10) // Tile row 1, col 1
	g.Step(in)

	sel := g.Snapshot().Selection
	expected := Cell{Layer: 1, Row: 1, Col: 1}
	if len(sel) != 1 || sel[0] != expected {
		t.Fatalf("selection = %v, expected [%v]", sel, expected)
	}

	g.Render(screen)
	if c := screen.GetCell(28, 9); c.Rune != '╔' || c.Color != core.ColorBrightYellow {
		t.Errorf("selected corner = %q %v, expected yellow double box", c.Rune, c.Color)
	}
}

func TestGameResizeKeepsRound(t *testing.T) {
	g, _ := newTestGame(t, New(), newFakeClock(), "medium")
	before := g.Snapshot()

	g.Resize(100, 40)

	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("Resize changed the round")
	}
	if x := g.Session().Layout().BoardX; x != 32 {
		t.Errorf("BoardX = %d after resize, expected 32", x)
	}
}

func TestGameTooSmall(t *testing.T) {
	g := New()
	g.SetClock(newFakeClock().Now)
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, Seed: 1})

	if !g.State().Paused {
		t.Error("too-small screen should report paused")
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}

	g.Resize(80, 30)
	screen.Resize(80, 30)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Easy (2 layers)") {
		t.Error("menu should render once the screen is large enough")
	}
}

func TestGameTooSmallIgnoresInput(t *testing.T) {
	g := New()
	cfg := config.DefaultTileStackConfig()
	cfg.Difficulty.Start = "easy"
	g.Configure(cfg)
	g.SetClock(newFakeClock().Now)
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, Seed: 1})

	if g.Session().State() != StatePlaying {
		t.Fatalf("state = %v, expected playing", g.Session().State())
	}

	layout := g.Session().Layout()
	in := core.NewInputFrame()
	in.Click(layout.BoardX+1, layout.BoardY+1)
	in.Set(core.ActionConfirm)
	res := g.Step(in)

	if sel := g.Snapshot().Selection; len(sel) != 0 {
		t.Errorf("selection = %v, expected none while the window is too small", sel)
	}
	if res.Quit {
		t.Error("Step() quit = true, expected false")
	}

	in = core.NewInputFrame()
	in.Set(core.ActionQuit)
	if res := g.Step(in); !res.Quit {
		t.Errorf("Step(quit) quit = %v, expected true", res.Quit)
	}
}

func TestGameResultOverlay(t *testing.T) {
	clock := newFakeClock()
	g, screen := newTestGame(t, New(), clock, "easy")

	clock.Advance(361 * time.Second)
	res := g.Step(core.NewInputFrame())
	if !hasEvent(res.Events, core.EventTimedOut) {
		t.Fatalf("events = %v, expected timed_out", res.Events)
	}

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Time's Up!") || !strings.Contains(out, "Time Left: 0") {
		t.Errorf("result render missing overlay:\n%s", out)
	}
}

func TestVariantForID(t *testing.T) {
	tests := []struct {
		id       string
		expected Variant
		ok       bool
	}{
		{"tilestack", VariantMenu, true},
		{"tilestack_classic", VariantClassic, true},
		{"snake", VariantMenu, false},
	}

	for _, tt := range tests {
		v, ok := VariantForID(tt.id)
		if v != tt.expected || ok != tt.ok {
			t.Errorf("VariantForID(%q) = %v, %v, expected %v, %v", tt.id, v, ok, tt.expected, tt.ok)
		}
	}
}
