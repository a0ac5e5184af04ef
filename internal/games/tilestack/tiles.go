// Package tilestack implements a stacked tile-matching puzzle: a grid of
// pattern tiles spread over several layers, cleared two at a time by
// picking equal pairs before a countdown runs out.
package tilestack

import (
	"errors"
	"fmt"
	"math/rand"
)

// TileID identifies a tile pattern. Values are indices into the pattern list.
type TileID int

// NoTile marks a cleared or never-filled slot.
const NoTile TileID = -1

// Board construction errors. Match with errors.Is.
var (
	ErrOddTileCount     = errors.New("tilestack: tile count must be even")
	ErrInvalidTileCount = errors.New("tilestack: tile count must be positive")
	ErrNoPatterns       = errors.New("tilestack: no tile patterns")
	ErrInvalidLayers    = errors.New("tilestack: invalid layer count")
)

// PatternIDs returns the ids 0..n-1.
func PatternIDs(n int) []TileID {
	ids := make([]TileID, n)
	for i := range n {
		ids[i] = TileID(i)
	}
	return ids
}

// GeneratePool returns n tile ids in random order where every id occurs an
// even number of times. Ids are handed out in pairs, cycling through ids
// until the pool is full.
func GeneratePool(n int, ids []TileID, rng *rand.Rand) ([]TileID, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTileCount, n)
	}
	if n%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrOddTileCount, n)
	}
	if len(ids) == 0 {
		return nil, ErrNoPatterns
	}

	pool := make([]TileID, 0, n)
	for i := range n / 2 {
		id := ids[i%len(ids)]
		pool = append(pool, id, id)
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool, nil
}
