package tilestack

import "testing"

func TestHitTestLayerPriority(t *testing.T) {
	b := NewBoard(3, 6, 6)
	b.Put(Cell{Layer: 0, Row: 2, Col: 3}, 1)
	b.Put(Cell{Layer: 2, Row: 2, Col: 3}, 5)

	x, y := 3*100+50, 2*100+50

	cell, ok := HitTest(b, x, y, 100, 100)
	if !ok {
		t.Fatal("HitTest found no tile over a stack")
	}
	expected := Cell{Layer: 2, Row: 2, Col: 3}
	if cell != expected {
		t.Errorf("HitTest() = %v, expected %v", cell, expected)
	}

	b.Clear(expected)
	cell, ok = HitTest(b, x, y, 100, 100)
	if !ok || cell.Layer != 0 {
		t.Errorf("after clearing top: HitTest() = %v, %v, expected layer 0", cell, ok)
	}

	b.Clear(cell)
	if _, ok := HitTest(b, x, y, 100, 100); ok {
		t.Error("HitTest on an empty stack should find nothing")
	}
}

func TestHitTestCellEdges(t *testing.T) {
	b := NewBoard(1, 6, 6)
	for row := range 6 {
		for col := range 6 {
			b.Put(Cell{Row: row, Col: col}, 0)
		}
	}

	tests := []struct {
		x, y     int
		row, col int
	}{
		{0, 0, 0, 0},
		{99, 99, 0, 0},
		{100, 0, 0, 1},
		{0, 100, 1, 0},
		{599, 599, 5, 5},
	}

	for _, tc := range tests {
		cell, ok := HitTest(b, tc.x, tc.y, 100, 100)
		if !ok || cell.Row != tc.row || cell.Col != tc.col {
			t.Errorf("HitTest(%d,%d) = %v, %v, expected row %d col %d", tc.x, tc.y, cell, ok, tc.row, tc.col)
		}
	}
}

func TestHitTestOutOfRange(t *testing.T) {
	b := NewBoard(2, 6, 6)
	for row := range 6 {
		for col := range 6 {
			b.Put(Cell{Layer: 1, Row: row, Col: col}, 0)
		}
	}

	points := []struct{ x, y int }{
		{600, 0},
		{0, 600},
		{-1, 50},
		{50, -1},
		{-99, -99},
		{10000, 10000},
	}
	for _, p := range points {
		if cell, ok := HitTest(b, p.x, p.y, 100, 100); ok {
			t.Errorf("HitTest(%d,%d) = %v, expected no tile", p.x, p.y, cell)
		}
	}

	if _, ok := HitTest(b, 50, 50, 0, 100); ok {
		t.Error("HitTest with zero tile width should find nothing")
	}
	if _, ok := HitTest(nil, 50, 50, 100, 100); ok {
		t.Error("HitTest on nil board should find nothing")
	}
}
