package gui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tilestack/internal/core"
	"github.com/vovakirdan/tilestack/internal/games/tilestack"
)

const (
	layerBorder  = 4 // px
	selectBorder = 8 // px
	debugGlyphW  = 6 // ebitenutil debug font cell
	debugGlyphH  = 16
)

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)

	switch g.session.State() {
	case tilestack.StateMenu:
		g.drawMenu(screen)
	case tilestack.StatePlaying:
		g.drawBoard(screen)
		g.drawHUD(screen)
	case tilestack.StateWon:
		g.drawBoard(screen)
		g.drawResult(screen, "You Win!")
	case tilestack.StateTimedOut:
		g.drawBoard(screen)
		g.drawResult(screen, "Time's Up!")
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	l := g.session.Layout()
	title := "TILE STACK"
	ebitenutil.DebugPrintAt(screen, title, (g.cfg.Window.Width-len(title)*debugGlyphW)/2, l.MenuY-l.MenuStep/2)

	for i, item := range g.session.MenuItems() {
		r := l.MenuItemRect(i)
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colButton, false)

		edge, width := colButtonEdge, float32(1)
		if i == g.session.MenuCursor() {
			edge, width = colHighlight, 3
		}
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, edge, false)

		printCentered(screen, item.Label, r)
	}
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	b := g.session.Board()
	if b == nil {
		return
	}
	l := g.session.Layout()
	curRow, curCol := g.session.Cursor()

	for row := range b.Rows {
		for col := range b.Cols {
			r := l.TileRect(row, col)
			x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)

			top, ok := b.Top(row, col)
			if !ok {
				vector.StrokeRect(screen, x+1, y+1, w-2, h-2, 1, RGBA(core.ColorGray), false)
				continue
			}

			if id := int(b.At(top)); id < len(g.patterns) {
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(float64(r.X), float64(r.Y))
				screen.DrawImage(g.patterns[id], op)
			}

			// Strokes are centred on the rect edge; inset so they stay in the tile
			inset := float32(layerBorder) / 2
			vector.StrokeRect(screen, x+inset, y+inset, w-layerBorder, h-layerBorder, layerBorder,
				RGBA(tilestack.LayerColor(top.Layer)), false)

			if g.session.Selected(top) {
				inset = float32(selectBorder) / 2
				vector.StrokeRect(screen, x+inset, y+inset, w-selectBorder, h-selectBorder, selectBorder, colHighlight, false)
			}

			if depth := b.Depth(row, col); depth > 1 {
				ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", depth), r.Right()-layerBorder-debugGlyphW-2, r.Y+layerBorder+1)
			}
		}
	}

	if g.session.State() == tilestack.StatePlaying {
		r := l.TileRect(curRow, curCol)
		vector.StrokeRect(screen, float32(r.X)+1, float32(r.Y)+1, float32(r.W)-2, float32(r.H)-2, 2,
			RGBA(core.ColorBrightWhite), false)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	b := g.session.Board()
	msg := fmt.Sprintf("Time Left: %d", g.session.Countdown())
	if b != nil {
		msg += fmt.Sprintf("  Layers: %d  Tiles: %d", g.session.Layers(), b.Remaining())
	}
	ebitenutil.DebugPrintAt(screen, msg, 10, 10)
}

func (g *Game) drawResult(screen *ebiten.Image, text string) {
	w, h := g.cfg.Window.Width, g.cfg.Window.Height
	vector.FillRect(screen, 0, 0, float32(w), float32(h), colOverlay, false)

	next := "Back to menu..."
	if g.session.Variant() == tilestack.VariantClassic {
		next = "Exiting..."
	}
	box := core.NewRect(0, h/2-debugGlyphH, w, debugGlyphH)
	printCentered(screen, text, box)
	printCentered(screen, next, core.NewRect(0, h/2+debugGlyphH/2, w, debugGlyphH))
}

// printCentered prints text in the middle of r with the debug font.
func printCentered(screen *ebiten.Image, text string, r core.Rect) {
	x := r.X + (r.W-len(text)*debugGlyphW)/2
	y := r.Y + (r.H-debugGlyphH)/2
	ebitenutil.DebugPrintAt(screen, text, x, y)
}
