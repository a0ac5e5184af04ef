package tilestack

import (
	"github.com/vovakirdan/tilestack/internal/config"
	"github.com/vovakirdan/tilestack/internal/core"
)

// MenuItem is one entry of the difficulty menu.
type MenuItem struct {
	Label  string
	Layers int  // Layer count to start with; 0 for Exit
	Quit   bool // Exit entry
}

// MenuItems returns the difficulty presets followed by Exit.
func MenuItems(d config.DifficultyConfig) []MenuItem {
	items := make([]MenuItem, 0, len(config.Presets())+1)
	for _, p := range config.Presets() {
		items = append(items, MenuItem{Label: d.Label(p), Layers: d.LayersForPreset(p)})
	}
	return append(items, MenuItem{Label: "Exit", Quit: true})
}

// Layout places the board and the menu in screen units (pixels for the
// window, cells for the terminal).
type Layout struct {
	BoardX, BoardY int
	TileW, TileH   int

	MenuX, MenuY int
	MenuW, MenuH int
	MenuStep     int // Vertical distance between menu items
}

// TileRect returns the screen rectangle of the tile stack at (row, col).
func (l Layout) TileRect(row, col int) core.Rect {
	return core.NewRect(l.BoardX+col*l.TileW, l.BoardY+row*l.TileH, l.TileW, l.TileH)
}

// MenuItemRect returns the screen rectangle of menu item i.
func (l Layout) MenuItemRect(i int) core.Rect {
	return core.NewRect(l.MenuX, l.MenuY+i*l.MenuStep, l.MenuW, l.MenuH)
}

// menuHit returns the index of the menu item containing (x, y).
func (l Layout) menuHit(x, y, count int) (int, bool) {
	for i := range count {
		if l.MenuItemRect(i).Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// WindowLayout places the board and the menu in a pixel window: the grid
// centred, buttons twice a tile wide, one tile apart, starting two tiles
// down.
func WindowLayout(cfg config.TileStackConfig) Layout {
	tile := cfg.Window.TileSize
	menuW := 2 * tile
	return Layout{
		BoardX:   max((cfg.Window.Width-cfg.Board.Cols*tile)/2, 0),
		BoardY:   max((cfg.Window.Height-cfg.Board.Rows*tile)/2, 0),
		TileW:    tile,
		TileH:    tile,
		MenuX:    max((cfg.Window.Width-menuW)/2, 0),
		MenuY:    2 * tile,
		MenuW:    menuW,
		MenuH:    tile / 2,
		MenuStep: tile,
	}
}
