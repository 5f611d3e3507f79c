// Package replay drives a session from a scripted list of pad events, so a
// game can be reproduced without a touch grid or a terminal.
package replay

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pad2048/internal/game2048"
	"github.com/vovakirdan/pad2048/internal/gesture"
)

// ErrEmptyScript is returned for a script without steps.
var ErrEmptyScript = errors.New("replay: script has no steps")

// Script is a seeded sequence of input steps.
type Script struct {
	Seed         int64           `yaml:"seed"`
	Mode         string          `yaml:"mode"`
	InitialTiles int             `yaml:"initial_tiles"`
	Board        *game2048.Board `yaml:"board"` // Optional starting position
	Steps        []Step          `yaml:"steps"`
}

// Step is the input delivered before one tick. Pads are pressed in order,
// Swipe expands to the pad path of a direction, Toggle flips the mode first.
// Idle adds that many ticks without input after the step's own tick. A step
// with Idle and no input is just those ticks; an empty step is one tick.
type Step struct {
	Pads   []int  `yaml:"pads"`
	Swipe  string `yaml:"swipe"`
	Toggle bool   `yaml:"toggle"`
	Idle   int    `yaml:"idle"`
}

// Parse decodes and validates a YAML script.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("replay: cannot parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Load reads and parses a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("replay: cannot read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks every step.
func (s Script) Validate() error {
	if len(s.Steps) == 0 {
		return ErrEmptyScript
	}
	if _, ok := gesture.ParseMode(s.Mode); !ok {
		return fmt.Errorf("replay: unknown mode %q", s.Mode)
	}
	if s.Board != nil && !s.Board.Valid() {
		return errors.New("replay: starting board holds a value that is not a power of two")
	}
	for i, st := range s.Steps {
		for _, p := range st.Pads {
			if p < 1 || p > gesture.PadCount {
				return fmt.Errorf("replay: step %d: pad %d out of range 1..%d", i+1, p, gesture.PadCount)
			}
		}
		if st.Swipe != "" {
			if _, ok := game2048.ParseDirection(st.Swipe); !ok {
				return fmt.Errorf("replay: step %d: unknown swipe %q", i+1, st.Swipe)
			}
		}
		if st.Idle < 0 {
			return fmt.Errorf("replay: step %d: negative idle", i+1)
		}
	}
	return nil
}

// events expands a step into decoder events, toggle first.
func (st Step) events(mode gesture.Mode) []gesture.Event {
	var out []gesture.Event
	if st.Toggle {
		out = append(out, gesture.Event{Toggle: true})
		if mode == gesture.ModeSwipe {
			mode = gesture.ModeDirect
		} else {
			mode = gesture.ModeSwipe
		}
	}
	if dir, ok := game2048.ParseDirection(st.Swipe); ok {
		for _, p := range gesture.PathFor(mode, dir) {
			out = append(out, gesture.Event{Mask: gesture.MaskForPad(p)})
		}
	}
	for _, p := range st.Pads {
		out = append(out, gesture.Event{Mask: gesture.MaskForPad(p)})
	}
	return out
}
