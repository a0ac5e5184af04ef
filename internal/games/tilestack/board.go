package tilestack

import (
	"fmt"
	"math/rand"
)

// Cell addresses one slot of the board. Layer 0 is the bottom of the stack.
type Cell struct {
	Layer int
	Row   int
	Col   int
}

// Board holds every layer of tiles, row-major within a layer.
type Board struct {
	Rows   int
	Cols   int
	Layers [][]TileID
}

// NewBoard returns a board of the given shape with every slot empty.
func NewBoard(layers, rows, cols int) *Board {
	b := &Board{Rows: rows, Cols: cols, Layers: make([][]TileID, layers)}
	for l := range b.Layers {
		b.Layers[l] = make([]TileID, rows*cols)
		for i := range b.Layers[l] {
			b.Layers[l][i] = NoTile
		}
	}
	return b
}

// BuildBoard fills each layer from its own shuffled pool, so every layer
// pairs up on its own.
func BuildBoard(layers, rows, cols int, ids []TileID, rng *rand.Rand) (*Board, error) {
	if layers <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLayers, layers)
	}

	b := &Board{Rows: rows, Cols: cols, Layers: make([][]TileID, layers)}
	for l := range layers {
		pool, err := GeneratePool(rows*cols, ids, rng)
		if err != nil {
			return nil, fmt.Errorf("build layer %d: %w", l, err)
		}
		b.Layers[l] = pool
	}
	return b, nil
}

// LayerCount returns the number of layers.
func (b *Board) LayerCount() int {
	return len(b.Layers)
}

// InBounds reports whether c addresses a slot of the board.
func (b *Board) InBounds(c Cell) bool {
	return c.Layer >= 0 && c.Layer < len(b.Layers) &&
		c.Row >= 0 && c.Row < b.Rows &&
		c.Col >= 0 && c.Col < b.Cols
}

// At returns the tile at c, or NoTile when c is empty or out of bounds.
func (b *Board) At(c Cell) TileID {
	if !b.InBounds(c) {
		return NoTile
	}
	return b.Layers[c.Layer][c.Row*b.Cols+c.Col]
}

// Put places id at c. Out-of-bounds cells are ignored.
func (b *Board) Put(c Cell, id TileID) {
	if !b.InBounds(c) {
		return
	}
	b.Layers[c.Layer][c.Row*b.Cols+c.Col] = id
}

// Clear empties c and reports whether a tile was removed.
// Clearing an empty slot is a no-op.
func (b *Board) Clear(c Cell) bool {
	if b.At(c) == NoTile {
		return false
	}
	b.Layers[c.Layer][c.Row*b.Cols+c.Col] = NoTile
	return true
}

// Top returns the highest occupied cell of the stack at (row, col).
func (b *Board) Top(row, col int) (Cell, bool) {
	if row < 0 || row >= b.Rows || col < 0 || col >= b.Cols {
		return Cell{}, false
	}
	for l := len(b.Layers) - 1; l >= 0; l-- {
		if b.Layers[l][row*b.Cols+col] != NoTile {
			return Cell{Layer: l, Row: row, Col: col}, true
		}
	}
	return Cell{}, false
}

// Depth returns how many tiles are stacked at (row, col).
func (b *Board) Depth(row, col int) int {
	if row < 0 || row >= b.Rows || col < 0 || col >= b.Cols {
		return 0
	}
	n := 0
	for _, layer := range b.Layers {
		if layer[row*b.Cols+col] != NoTile {
			n++
		}
	}
	return n
}

// Remaining counts the tiles still on the board.
func (b *Board) Remaining() int {
	n := 0
	for _, layer := range b.Layers {
		for _, id := range layer {
			if id != NoTile {
				n++
			}
		}
	}
	return n
}

// Empty reports whether every slot of every layer is cleared.
func (b *Board) Empty() bool {
	for _, layer := range b.Layers {
		for _, id := range layer {
			if id != NoTile {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{Rows: b.Rows, Cols: b.Cols, Layers: make([][]TileID, len(b.Layers))}
	for l, layer := range b.Layers {
		c.Layers[l] = append([]TileID(nil), layer...)
	}
	return c
}
