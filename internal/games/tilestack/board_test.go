package tilestack

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func countIDs(ids []TileID) map[TileID]int {
	counts := make(map[TileID]int)
	for _, id := range ids {
		counts[id]++
	}
	return counts
}

func TestGeneratePoolPairs(t *testing.T) {
	sizes := []int{2, 4, 14, 36, 100}
	for _, n := range sizes {
		for seed := int64(0); seed < 20; seed++ {
			rng := rand.New(rand.NewSource(seed))
			pool, err := GeneratePool(n, PatternIDs(7), rng)
			if err != nil {
				t.Fatalf("GeneratePool(%d) failed: %v", n, err)
			}
			if len(pool) != n {
				t.Fatalf("GeneratePool(%d) returned %d tiles", n, len(pool))
			}
			for id, c := range countIDs(pool) {
				if c%2 != 0 {
					t.Errorf("n=%d seed=%d: tile %d occurs %d times, expected even", n, seed, id, c)
				}
			}
		}
	}
}

func TestGeneratePoolCyclesPatterns(t *testing.T) {
	pool, err := GeneratePool(36, PatternIDs(7), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}

	// 18 pairs over 7 patterns: 0-3 get three pairs, 4-6 get two
	expected := map[TileID]int{0: 6, 1: 6, 2: 6, 3: 6, 4: 4, 5: 4, 6: 4}
	if got := countIDs(pool); !reflect.DeepEqual(got, expected) {
		t.Errorf("counts = %v, expected %v", got, expected)
	}
}

func TestGeneratePoolErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name string
		n    int
		ids  []TileID
		want error
	}{
		{"odd", 35, PatternIDs(7), ErrOddTileCount},
		{"one", 1, PatternIDs(7), ErrOddTileCount},
		{"zero", 0, PatternIDs(7), ErrInvalidTileCount},
		{"negative", -2, PatternIDs(7), ErrInvalidTileCount},
		{"no patterns", 36, nil, ErrNoPatterns},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pool, err := GeneratePool(tc.n, tc.ids, rng)
			if !errors.Is(err, tc.want) {
				t.Errorf("GeneratePool(%d) error = %v, expected %v", tc.n, err, tc.want)
			}
			if pool != nil {
				t.Errorf("GeneratePool(%d) returned partial pool %v", tc.n, pool)
			}
		})
	}
}

func TestBuildBoard(t *testing.T) {
	for layers := 1; layers <= 4; layers++ {
		b, err := BuildBoard(layers, 6, 6, PatternIDs(7), rand.New(rand.NewSource(int64(layers))))
		if err != nil {
			t.Fatalf("BuildBoard(%d) failed: %v", layers, err)
		}
		if b.LayerCount() != layers {
			t.Errorf("LayerCount() = %d, expected %d", b.LayerCount(), layers)
		}
		if b.Remaining() != layers*36 {
			t.Errorf("Remaining() = %d, expected %d", b.Remaining(), layers*36)
		}
		for l, layer := range b.Layers {
			for id, c := range countIDs(layer) {
				if c%2 != 0 {
					t.Errorf("layer %d: tile %d occurs %d times", l, id, c)
				}
			}
		}
	}
}

func TestBuildBoardErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, err := BuildBoard(0, 6, 6, PatternIDs(7), rng); !errors.Is(err, ErrInvalidLayers) {
		t.Errorf("BuildBoard(0 layers) error = %v, expected ErrInvalidLayers", err)
	}

	b, err := BuildBoard(2, 5, 5, PatternIDs(7), rng)
	if !errors.Is(err, ErrOddTileCount) {
		t.Errorf("BuildBoard(5x5) error = %v, expected ErrOddTileCount", err)
	}
	if b != nil {
		t.Error("BuildBoard should not return a partial board")
	}
}

func TestBuildBoardDeterministic(t *testing.T) {
	b1, _ := BuildBoard(3, 6, 6, PatternIDs(7), rand.New(rand.NewSource(42)))
	b2, _ := BuildBoard(3, 6, 6, PatternIDs(7), rand.New(rand.NewSource(42)))

	if !reflect.DeepEqual(b1, b2) {
		t.Error("same seed produced different boards")
	}
}

func TestBoardClearIsTerminal(t *testing.T) {
	b := NewBoard(2, 2, 2)
	c := Cell{Layer: 1, Row: 0, Col: 1}
	b.Put(c, 3)

	if !b.Clear(c) {
		t.Error("first Clear should remove the tile")
	}
	if b.Clear(c) {
		t.Error("second Clear should be a no-op")
	}
	if b.At(c) != NoTile {
		t.Errorf("At() = %d after Clear, expected NoTile", b.At(c))
	}
}

func TestBoardOutOfBounds(t *testing.T) {
	b := NewBoard(2, 6, 6)

	cells := []Cell{
		{Layer: -1, Row: 0, Col: 0},
		{Layer: 2, Row: 0, Col: 0},
		{Layer: 0, Row: 6, Col: 0},
		{Layer: 0, Row: 0, Col: -1},
	}
	for _, c := range cells {
		b.Put(c, 1)
		if b.At(c) != NoTile {
			t.Errorf("At(%v) = %d, expected NoTile", c, b.At(c))
		}
		if b.Clear(c) {
			t.Errorf("Clear(%v) reported a removal", c)
		}
	}
	if b.Remaining() != 0 {
		t.Errorf("out-of-bounds Put changed the board: %d tiles", b.Remaining())
	}
}

func TestBoardEmpty(t *testing.T) {
	b := NewBoard(3, 6, 6)
	if !b.Empty() {
		t.Error("new board should be empty")
	}

	b.Put(Cell{Layer: 2, Row: 5, Col: 5}, 0)
	if b.Empty() {
		t.Error("board with one tile should not be empty")
	}
	if b.Remaining() != 1 {
		t.Errorf("Remaining() = %d, expected 1", b.Remaining())
	}
}

func TestBoardDepth(t *testing.T) {
	b := NewBoard(3, 2, 2)
	b.Put(Cell{Layer: 0, Row: 1, Col: 1}, 0)
	b.Put(Cell{Layer: 2, Row: 1, Col: 1}, 0)

	if d := b.Depth(1, 1); d != 2 {
		t.Errorf("Depth(1,1) = %d, expected 2", d)
	}
	if d := b.Depth(0, 0); d != 0 {
		t.Errorf("Depth(0,0) = %d, expected 0", d)
	}
	if d := b.Depth(9, 9); d != 0 {
		t.Errorf("Depth(9,9) = %d, expected 0", d)
	}
}

func TestBoardClone(t *testing.T) {
	b := NewBoard(1, 2, 2)
	b.Put(Cell{Row: 0, Col: 0}, 4)

	c := b.Clone()
	b.Clear(Cell{Row: 0, Col: 0})

	if c.At(Cell{Row: 0, Col: 0}) != 4 {
		t.Error("Clone shares storage with the original")
	}
}
