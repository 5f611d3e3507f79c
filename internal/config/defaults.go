package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pad2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Session: SessionConfig{
			TickInterval: 500 * time.Millisecond,
			SpawnDelay:   200 * time.Millisecond,
			InitialTiles: 5,
		},
		Input: InputConfig{
			Mode: "swipe",
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.3,
			Tones: ToneTable{
				Up:    ToneConfig{Freq: 1200, Duration: 500 * time.Millisecond},
				Right: ToneConfig{Freq: 1300, Duration: 500 * time.Millisecond},
				Down:  ToneConfig{Freq: 1400, Duration: 500 * time.Millisecond},
				Left:  ToneConfig{Freq: 1500, Duration: 500 * time.Millisecond},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
