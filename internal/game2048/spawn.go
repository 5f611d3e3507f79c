package game2048

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/pad2048/internal/core"
)

// ErrBoardFull is returned when a tile is requested for a board with no empty cell.
var ErrBoardFull = errors.New("game2048: no empty cell to spawn into")

// fourOdds is the modulus of the spawn draw; only a zero draw yields a 4.
const fourOdds = 4

// NewRand returns a seeded random source. A zero seed is replaced by the
// current time so that unseeded sessions still differ between runs.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// SpawnTile places a new tile in a uniformly chosen empty cell: a 4 with
// probability 1/4, otherwise a 2. It returns the cell and the value placed.
// A full board is left untouched and ErrBoardFull is returned.
func SpawnTile(b *Board, rng *rand.Rand) (Cell, int, error) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return Cell{}, 0, ErrBoardFull
	}

	cell := empty[rng.Intn(len(empty))]

	value := 2
	if rng.Intn(fourOdds) == 0 {
		value = 4
	}

	b[cell.Row][cell.Col] = value
	return cell, value, nil
}

// MustSpawnTile is like SpawnTile but panics on a full board.
// Use it where an empty cell is an invariant, such as seeding a new board.
func MustSpawnTile(b *Board, rng *rand.Rand) Cell {
	cell, _, err := SpawnTile(b, rng)
	if err != nil {
		panic(err)
	}
	return cell
}

// NewBoard returns an empty board seeded with n spawned tiles.
// n is clamped to the number of cells.
func NewBoard(rng *rand.Rand, n int) Board {
	var b Board
	n = core.Clamp(n, 0, BoardSize*BoardSize)
	for range n {
		MustSpawnTile(&b, rng)
	}
	return b
}
