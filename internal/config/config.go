// Package config provides YAML-based configuration loading for pad2048.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/pad2048/internal/audio"
	"github.com/vovakirdan/pad2048/internal/game2048"
	"github.com/vovakirdan/pad2048/internal/gesture"
)

// Config contains all pad2048 settings.
type Config struct {
	Session SessionConfig `yaml:"session"`
	Input   InputConfig   `yaml:"input"`
	Audio   AudioConfig   `yaml:"audio"`
}

// SessionConfig defines the game loop timing and the starting board.
type SessionConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	SpawnDelay   time.Duration `yaml:"spawn_delay"`
	InitialTiles int           `yaml:"initial_tiles"`
	Seed         int64         `yaml:"seed"` // 0 = time-based
}

// InputConfig defines how pad events are interpreted.
type InputConfig struct {
	Mode string `yaml:"mode"` // "swipe" or "direct"
}

// AudioConfig defines the direction tones.
type AudioConfig struct {
	Enabled    bool      `yaml:"enabled"`
	SampleRate int       `yaml:"sample_rate"`
	Volume     float64   `yaml:"volume"`
	Tones      ToneTable `yaml:"tones"`
}

// ToneTable holds one tone per swipe direction.
type ToneTable struct {
	Up    ToneConfig `yaml:"up"`
	Right ToneConfig `yaml:"right"`
	Down  ToneConfig `yaml:"down"`
	Left  ToneConfig `yaml:"left"`
}

// ToneConfig is a single tone.
type ToneConfig struct {
	Freq     float64       `yaml:"freq"`
	Duration time.Duration `yaml:"duration"`
}

// Mode returns the configured input mode. Validate rejects unknown names.
func (c Config) Mode() gesture.Mode {
	m, _ := gesture.ParseMode(c.Input.Mode)
	return m
}

// ToneBank converts the tone table for the audio package.
func (t ToneTable) ToneBank() audio.ToneBank {
	tone := func(c ToneConfig) audio.Tone {
		return audio.Tone{Freq: c.Freq, Duration: c.Duration}
	}
	return audio.ToneBank{
		game2048.DirUp:    tone(t.Up),
		game2048.DirRight: tone(t.Right),
		game2048.DirDown:  tone(t.Down),
		game2048.DirLeft:  tone(t.Left),
	}
}

// Settings converts the audio section for the audio package.
func (a AudioConfig) Settings() audio.Settings {
	return audio.Settings{
		Enabled:    a.Enabled,
		SampleRate: a.SampleRate,
		Volume:     a.Volume,
		Tones:      a.Tones.ToneBank(),
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if c.Session.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("session.tick_interval must be positive, got %v", c.Session.TickInterval))
	}
	if c.Session.SpawnDelay < 0 {
		errs = append(errs, fmt.Errorf("session.spawn_delay must not be negative, got %v", c.Session.SpawnDelay))
	}
	if n := c.Session.InitialTiles; n < 1 || n > game2048.BoardSize*game2048.BoardSize {
		errs = append(errs, fmt.Errorf("session.initial_tiles must be in 1..%d, got %d",
			game2048.BoardSize*game2048.BoardSize, n))
	}
	if _, ok := gesture.ParseMode(c.Input.Mode); !ok {
		errs = append(errs, fmt.Errorf("input.mode must be swipe or direct, got %q", c.Input.Mode))
	}
	if c.Audio.SampleRate < 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must not be negative, got %d", c.Audio.SampleRate))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in 0..1, got %v", c.Audio.Volume))
	}
	for _, dir := range game2048.Directions {
		tone := c.Audio.Tones.ToneBank()[dir]
		if tone.Freq <= 0 || tone.Duration <= 0 {
			errs = append(errs, fmt.Errorf("audio.tones.%s needs a positive freq and duration", dirKey(dir)))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

func dirKey(d game2048.Direction) string {
	switch d {
	case game2048.DirUp:
		return "up"
	case game2048.DirRight:
		return "right"
	case game2048.DirDown:
		return "down"
	case game2048.DirLeft:
		return "left"
	default:
		return "none"
	}
}
