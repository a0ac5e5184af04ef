package tilestack

// HitTest maps a point relative to the board origin to the topmost tile
// under it. Points off the grid, and stacks with nothing left, hit nothing.
func HitTest(b *Board, x, y, tileW, tileH int) (Cell, bool) {
	if b == nil || tileW <= 0 || tileH <= 0 {
		return Cell{}, false
	}
	// Integer division truncates toward zero, so -1/100 would land on row 0
	if x < 0 || y < 0 {
		return Cell{}, false
	}
	return b.Top(y/tileH, x/tileW)
}
