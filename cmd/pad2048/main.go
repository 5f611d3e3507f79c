// pad2048 is a 2048 puzzle played by swiping across a 12-pad touch grid,
// emulated in the terminal by a block of keys.
//
// Usage:
//
//	pad2048 play                 - Play in the terminal
//	pad2048 replay <script.yaml> - Replay a scripted game headlessly
//	pad2048 palette              - Show the tile colours
//
// Global flags:
//
//	--config <path>   - Config file (default: search ~/.pad2048, ./configs, built-in)
//	--seed <value>    - RNG seed for reproducible games
//	--tick <duration> - Polling period of the game loop
//	--mode <name>     - Input mode: swipe or direct
//	--mute            - Disable direction tones
//	--debug           - Log one debug line per tick
//	--log-file <path> - Where logs go while the terminal UI runs
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pad2048/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagTick    time.Duration
	flagMode    string
	flagMute    bool
	flagDebug   bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pad2048",
	Short: "pad2048 - 2048 driven by touch-pad swipes",
	Long: `pad2048 is the 2048 tile-merging puzzle driven by swipe gestures across
a 4x3 grid of touch pads. In the terminal the pads are the key block
1-3 / q-e / a-d / z-c; swipe by running a finger (or keys) along the
middle column or the third row.

Available commands:
  play     - Play in the terminal
  replay   - Replay a scripted game and print every frame
  palette  - Show the tile colour table

Examples:
  pad2048 play
  pad2048 play --mode direct --seed 42
  pad2048 replay game.yaml
  pad2048 palette`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Tick interval, e.g. 500ms (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Input mode: swipe or direct (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable direction tones")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log a debug line every tick")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(paletteCmd)
}

// loadConfig loads the config file and applies flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	applyFlags(cmd, &cfg)
	return cfg, cfg.Validate()
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Session.Seed = flagSeed
	}
	if flags.Changed("tick") {
		cfg.Session.TickInterval = flagTick
	}
	if flags.Changed("mode") {
		cfg.Input.Mode = flagMode
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
}

// newLogger builds the process logger. Without --log-file, logs go to
// fallback; the terminal UI passes io.Discard so logs never tear the screen.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pad2048",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
