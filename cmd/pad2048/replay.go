package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pad2048/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Replay a scripted game",
	Long: `Run a scripted sequence of pad events against a seeded game and print
every frame. No terminal UI or audio is used.

Script format:
  seed: 42            # optional, 0 = time-based
  mode: swipe         # swipe | direct
  initial_tiles: 5    # optional
  board:              # optional starting position, 4 rows of 4
    - [2, 2, 0, 0]
    - [0, 0, 0, 0]
    - [0, 0, 0, 0]
    - [0, 0, 0, 0]
  steps:
    - swipe: right    # the pad path for a direction
    - pads: [8, 7, 6, 5]
    - toggle: true
      pads: [3]
      idle: 1         # one more tick after this step's own
    - idle: 3         # 3 ticks without input

--seed and --mode override the script.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	script, err := replay.Load(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		script.Seed = flagSeed
	}
	if cmd.Flags().Changed("mode") {
		script.Mode = flagMode
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	_, err = replay.Run(cmd.Context(), script, replay.Options{
		Out:    cmd.OutOrStdout(),
		Logger: logger,
	})
	return err
}
