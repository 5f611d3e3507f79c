// Package session runs one game: it polls the gesture decoder once per tick,
// applies the swipe to the board, spawns a tile and reports to its ports.
package session

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pad2048/internal/game2048"
	"github.com/vovakirdan/pad2048/internal/gesture"
)

// State is the lifecycle state of a session.
type State string

const (
	StatePlaying  State = "playing"
	StateGameOver State = "game_over"
)

// DefaultInitialTiles is the number of tiles a fresh board starts with.
const DefaultInitialTiles = 5

// DefaultTickInterval is the polling period used by Run.
const DefaultTickInterval = 500 * time.Millisecond

// Options configures a session.
type Options struct {
	InitialTiles int           // Tiles on a fresh board; <= 0 means 5, above 16 fills the board
	TickInterval time.Duration // Period of Run's ticker
	SpawnDelay   time.Duration // Pause between the swipe frame and the spawn frame
	Rand         *rand.Rand    // Tile source; nil means a time-seeded source
	Logger       *log.Logger   // Debug sink; nil discards
}

// TickResult describes what one tick did.
type TickResult struct {
	Tick         uint64
	Direction    game2048.Direction
	Swipe        game2048.SwipeResult
	Spawned      bool
	SpawnCell    game2048.Cell
	SpawnValue   int
	SpawnSkipped bool // Board was full after a swipe that changed nothing
	GameOver     bool
	Board        game2048.Board
}

// Snapshot captures the session for the HUD, replays and tests.
type Snapshot struct {
	Tick    uint64
	Score   int
	Moves   int
	Board   game2048.Board
	MaxTile int
	State   State
	Gesture gesture.State
}

// Session owns the board. It is driven from a single goroutine; only the
// decoder it polls is safe for concurrent input.
type Session struct {
	opts  Options
	dec   *gesture.Decoder
	ports Ports
	rng   *rand.Rand
	log   *log.Logger

	board game2048.Board
	state State
	tick  uint64
	score int
	moves int
}

// New creates a session with a freshly seeded board.
func New(opts Options, dec *gesture.Decoder, ports Ports) *Session {
	if opts.InitialTiles <= 0 {
		opts.InitialTiles = DefaultInitialTiles
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.Rand == nil {
		opts.Rand = game2048.NewRand(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		opts:  opts,
		dec:   dec,
		ports: ports.withDefaults(),
		rng:   opts.Rand,
		log:   logger,
	}
	s.Reset()
	return s
}

// Reset starts a new game on the same random source and clears the decoder.
func (s *Session) Reset() {
	s.board = game2048.NewBoard(s.rng, s.opts.InitialTiles)
	s.state = StatePlaying
	s.tick = 0
	s.score = 0
	s.moves = 0
	s.dec.Reset()
}

// Render draws the current board, or the banner once the game is over.
func (s *Session) Render() {
	if s.state == StateGameOver {
		s.ports.Renderer.DrawGameOver(s.board)
		return
	}
	s.ports.Renderer.DrawBoard(s.board)
}

// Tick runs one polling step.
func (s *Session) Tick() TickResult {
	if s.state == StateGameOver {
		return s.result(TickResult{GameOver: true})
	}

	s.tick++

	if !s.board.HasAnyMove() {
		s.state = StateGameOver
		s.ports.Renderer.DrawGameOver(s.board)
		s.log.Info("game over", "tick", s.tick, "score", s.score, "max", s.board.MaxTile())
		return s.result(TickResult{GameOver: true})
	}

	res := TickResult{Direction: s.dec.Poll()}

	if res.Direction != game2048.DirNone {
		res.Swipe = s.board.ApplySwipe(res.Direction)
		s.score += res.Swipe.Points
		s.moves++
		if res.Swipe.Combo() {
			s.ports.Tones.PlayTone(res.Direction)
		}
		s.ports.Renderer.DrawBoard(s.board)

		if s.opts.SpawnDelay > 0 {
			time.Sleep(s.opts.SpawnDelay)
		}

		cell, value, err := game2048.SpawnTile(&s.board, s.rng)
		if err != nil {
			// Reachable when a swipe leaves a full board unchanged
			res.SpawnSkipped = true
			s.log.Warn("spawn skipped", "tick", s.tick, "direction", res.Direction, "error", err)
		} else {
			res.Spawned = true
			res.SpawnCell = cell
			res.SpawnValue = value
			s.ports.Renderer.DrawBoard(s.board)
		}
	}

	st := s.dec.State()
	s.dec.ClearPressed()
	s.log.Debug("tick",
		"n", s.tick,
		"current", st.Current,
		"last1", st.Last1,
		"last2", st.Last2,
		"last3", st.Last3,
		"mode", st.Mode,
		"direction", res.Direction,
		"pressed", st.Pressed,
	)

	return s.result(res)
}

func (s *Session) result(r TickResult) TickResult {
	r.Tick = s.tick
	r.Board = s.board
	return r
}

// Run renders the initial board and ticks every TickInterval until the game
// ends or ctx is cancelled. It returns ctx.Err() on cancellation.
func (s *Session) Run(ctx context.Context) error {
	s.Render()

	ticker := time.NewTicker(s.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if s.Tick().GameOver {
				return nil
			}
		}
	}
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:    s.tick,
		Score:   s.score,
		Moves:   s.moves,
		Board:   s.board,
		MaxTile: s.board.MaxTile(),
		State:   s.state,
		Gesture: s.dec.State(),
	}
}

// Board returns a copy of the current board.
func (s *Session) Board() game2048.Board {
	return s.board
}

// SetBoard replaces the board and resumes play. Replays and tests use it to
// start from a known position.
func (s *Session) SetBoard(b game2048.Board) {
	s.board = b
	s.state = StatePlaying
}

// Decoder returns the decoder the session polls.
func (s *Session) Decoder() *gesture.Decoder {
	return s.dec
}

// Options returns the effective options after defaults were applied.
func (s *Session) Options() Options {
	return s.opts
}
