package tilestack

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tilestack/internal/core"
)

// LayerColors are the border colours of layers 0..3, bottom first.
var LayerColors = [...]core.Color{core.ColorRed, core.ColorGreen, core.ColorBlue, core.ColorOrange}

// LayerColor returns the border colour of a layer.
func LayerColor(layer int) core.Color {
	if layer < 0 {
		return core.ColorWhite
	}
	return LayerColors[layer%len(LayerColors)]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	switch g.session.State() {
	case StateMenu:
		g.renderMenu(dst)
	case StatePlaying:
		g.renderHUD(dst)
		g.renderBoard(dst)
	case StateWon:
		g.renderHUD(dst)
		g.renderBoard(dst)
		g.renderResult(dst, "You Win!")
	case StateTimedOut:
		g.renderHUD(dst)
		g.renderBoard(dst)
		g.renderResult(dst, "Time's Up!")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderMenu(dst *core.Screen) {
	l := g.session.Layout()
	dst.DrawTextCentered(l.MenuY-menuTitleH, g.Title())

	for i, item := range g.session.MenuItems() {
		r := l.MenuItemRect(i)
		style, color := core.BoxSingle, core.ColorWhite
		if i == g.session.MenuCursor() {
			style, color = core.BoxDouble, core.ColorBrightYellow
		}
		dst.DrawBoxStyled(r, style, color)

		x := r.X + (r.W-utf8.RuneCountInString(item.Label))/2
		dst.DrawTextColored(x, r.Y+r.H/2, item.Label, color)
	}
}

// renderHUD draws the countdown and board stats above the board.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	l := s.Layout()
	y := l.BoardY - hudHeight
	boardW := g.cfg.Board.Cols * l.TileW

	timeColor := core.ColorWhite
	if s.Countdown() <= 30 {
		timeColor = core.ColorBrightRed
	}
	dst.DrawTextColored(l.BoardX, y, fmt.Sprintf("Time Left: %d", s.Countdown()), timeColor)

	tiles := 0
	if s.Board() != nil {
		tiles = s.Board().Remaining()
	}
	info := fmt.Sprintf("Layers: %d  Tiles: %d", s.Layers(), tiles)
	dst.DrawText(l.BoardX+max(0, boardW-len(info)), y, info)

	hint := g.Controls()
	dst.DrawText(l.BoardX+max(0, (boardW-len(hint))/2), l.BoardY+g.cfg.Board.Rows*l.TileH, hint)
}

// renderBoard draws the top tile of every stack. The border colour shows
// its layer and the digit how many tiles are stacked there.
func (g *Game) renderBoard(dst *core.Screen) {
	s := g.session
	b := s.Board()
	if b == nil {
		return
	}
	l := s.Layout()
	curRow, curCol := s.Cursor()
	showCursor := s.State() == StatePlaying

	for row := range b.Rows {
		for col := range b.Cols {
			r := l.TileRect(row, col)
			midY := r.Y + r.H/2
			glyphX := r.X + (r.W-1)/2

			cell, ok := b.Top(row, col)
			if !ok {
				dst.SetColored(glyphX, midY, '·', core.ColorGray)
				continue
			}

			style, color := core.BoxSingle, LayerColor(cell.Layer)
			switch {
			case s.Selected(cell):
				style, color = core.BoxDouble, core.ColorBrightYellow
			case showCursor && row == curRow && col == curCol:
				style = core.BoxHeavy
			}
			dst.DrawBoxStyled(r, style, color)

			id := b.At(cell)
			dst.SetColored(glyphX, midY, g.glyph(id), g.color(id))

			if depth := b.Depth(row, col); depth > 1 && r.W >= 5 {
				dst.DrawTextColored(r.X+r.W-2, midY, strconv.Itoa(depth), core.ColorGray)
			}
		}
	}
}

// renderResult draws the end-of-round overlay centred on the board.
func (g *Game) renderResult(dst *core.Screen, title string) {
	l := g.session.Layout()
	boardW := g.cfg.Board.Cols * l.TileW
	boardH := g.cfg.Board.Rows * l.TileH
	centerX := l.BoardX + boardW/2
	centerY := l.BoardY + boardH/2

	next := "Back to menu..."
	if g.variant == VariantClassic {
		next = "Exiting..."
	}
	g.drawOverlay(dst, centerX, centerY, title, next)
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxStyled(box, core.BoxDouble, core.ColorBrightYellow)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}

func (g *Game) glyph(id TileID) rune {
	if id < 0 || int(id) >= len(g.glyphs) {
		return '?'
	}
	return g.glyphs[id]
}

func (g *Game) color(id TileID) core.Color {
	if id < 0 || int(id) >= len(g.colors) {
		return core.ColorWhite
	}
	return g.colors[id]
}
