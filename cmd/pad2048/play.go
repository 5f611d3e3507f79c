package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pad2048/internal/audio"
	"github.com/vovakirdan/pad2048/internal/core"
	"github.com/vovakirdan/pad2048/internal/game2048"
	"github.com/vovakirdan/pad2048/internal/gesture"
	"github.com/vovakirdan/pad2048/internal/platform/tui"
	"github.com/vovakirdan/pad2048/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

The keys below stand in for the touch pads, in the same layout:

  1 2 3      pads  1  5  9
  q w e      pads  2  6 10
  a s d      pads  3  7 11
  z x c      pads  4  8 12

Controls:
  swipe mode   - Slide along 2 w s x (down), x s w 2 (up), a s d (right),
                 d s a (left)
  direct mode  - 2 up, x down, a left, d right
  Arrows       - Play the whole swipe for you
  Tab          - Toggle swipe/direct mode
  R            - Restart (after game over)
  Esc/Ctrl+C   - Quit

Examples:
  pad2048 play
  pad2048 play --mode direct
  pad2048 play --seed 7 --tick 250ms
  pad2048 play --debug --log-file pad2048.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickInterval = cfg.Session.TickInterval
	rc.SpawnDelay = cfg.Session.SpawnDelay
	rc.Seed = cfg.Session.Seed

	seed := rc.ResolveSeed()
	logger.Info("starting", "seed", seed, "mode", cfg.Mode(), "tick", rc.TickInterval)

	tones := audio.Open(cfg.Audio.Settings(), logger)
	defer tones.Close()

	opts := session.Options{
		InitialTiles: cfg.Session.InitialTiles,
		Rand:         game2048.NewRand(seed),
		Logger:       logger,
	}
	return tui.Run(opts, gesture.NewDecoder(cfg.Mode()), tones, rc)
}
