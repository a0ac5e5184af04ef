package tilestack

import (
	"fmt"
	"strings"
)

// Snapshot captures session state for determinism tests and clipboard export.
type Snapshot struct {
	State     State
	Variant   Variant
	Layers    int
	Countdown int
	TilesLeft int
	Board     [][]TileID // Per layer, row-major; nil outside a round
	Selection []Cell
	CursorRow int
	CursorCol int
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:     s.state,
		Variant:   s.variant,
		Layers:    s.layers,
		Countdown: s.Countdown(),
		Selection: s.selection.Cells(),
		CursorRow: s.cursorRow,
		CursorCol: s.cursorCol,
	}
	if s.board != nil {
		snap.Board = s.board.Clone().Layers
		snap.TilesLeft = s.board.Remaining()
	}
	return snap
}

// Text renders the visible board as plain text: the top tile's glyph and
// the stack depth per cell, '·' for empty stacks.
func (s *Session) Text() string {
	if s.board == nil {
		return ""
	}

	glyphs := make([]string, len(s.cfg.Patterns))
	for i, p := range s.cfg.Patterns {
		glyphs[i] = p.Glyph
		if glyphs[i] == "" {
			glyphs[i] = "?"
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Time Left: %d  Layers: %d  Tiles: %d\n", s.Countdown(), s.layers, s.board.Remaining())
	for row := range s.board.Rows {
		for col := range s.board.Cols {
			if col > 0 {
				b.WriteByte(' ')
			}
			top, ok := s.board.Top(row, col)
			if !ok {
				b.WriteString("· ")
				continue
			}
			id := s.board.At(top)
			glyph := "?"
			if int(id) < len(glyphs) {
				glyph = glyphs[id]
			}
			fmt.Fprintf(&b, "%s%d", glyph, s.board.Depth(row, col))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
