package tilestack

// Resolution is the outcome of a Select call.
type Resolution int

const (
	ResolveIgnored    Resolution = iota // Empty or out-of-range cell; nothing changed
	ResolvePending                      // First tile of a pair selected
	ResolveMatched                      // Pair matched and both tiles cleared
	ResolveMismatched                   // Pair did not match; selection dropped
)

// String returns a lowercase name for the resolution.
func (r Resolution) String() string {
	switch r {
	case ResolvePending:
		return "pending"
	case ResolveMatched:
		return "matched"
	case ResolveMismatched:
		return "mismatched"
	default:
		return "ignored"
	}
}

// Selection holds up to two picked cells. It is resolved and emptied as
// soon as the second cell is added.
type Selection struct {
	cells [2]Cell
	n     int
}

// Len returns the number of selected cells (0 or 1 between calls).
func (s *Selection) Len() int {
	return s.n
}

// Cells returns a copy of the selected cells in pick order.
func (s *Selection) Cells() []Cell {
	return append([]Cell(nil), s.cells[:s.n]...)
}

// Contains reports whether c is currently selected.
func (s *Selection) Contains(c Cell) bool {
	for i := range s.n {
		if s.cells[i] == c {
			return true
		}
	}
	return false
}

// Reset drops the selection.
func (s *Selection) Reset() {
	s.n = 0
}

// Select adds c to the selection. Empty cells are ignored. On the second
// cell the pair is resolved against b: distinct cells holding the same
// tile are cleared from b. The selection is empty afterwards either way.
func (s *Selection) Select(b *Board, c Cell) Resolution {
	if b == nil || b.At(c) == NoTile || s.n >= len(s.cells) {
		return ResolveIgnored
	}

	s.cells[s.n] = c
	s.n++
	if s.n < len(s.cells) {
		return ResolvePending
	}
	return s.resolve(b)
}

func (s *Selection) resolve(b *Board) Resolution {
	first, second := s.cells[0], s.cells[1]
	s.Reset()

	id := b.At(first)
	if first == second || id == NoTile || id != b.At(second) {
		return ResolveMismatched
	}

	b.Clear(first)
	b.Clear(second)
	return ResolveMatched
}
