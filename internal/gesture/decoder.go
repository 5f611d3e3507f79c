// Package gesture turns the raw stream of touch-pad activations into swipe
// directions. Pad events may arrive asynchronously (an interrupt pump, a UI
// event loop); the tick loop polls the decoder once per tick.
package gesture

import (
	"context"
	"math/bits"
	"sync"

	"github.com/vovakirdan/pad2048/internal/game2048"
)

// PadCount is the number of electrodes on the touch grid.
const PadCount = 12

// padMask keeps the electrode bits of a status word.
const padMask = 1<<PadCount - 1

// Mode selects how pad activations are interpreted.
type Mode int

const (
	// ModeSwipe matches the recent pad history against swipe paths.
	ModeSwipe Mode = iota
	// ModeDirect maps single pads straight to directions.
	ModeDirect
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeSwipe:
		return "swipe"
	case ModeDirect:
		return "direct"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name back into a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "swipe", "":
		return ModeSwipe, true
	case "direct":
		return ModeDirect, true
	default:
		return ModeSwipe, false
	}
}

// State is a consistent snapshot of the decoder.
// Pad indices run 1..12; 0 means no pad.
type State struct {
	Current int
	Last1   int
	Last2   int
	Last3   int
	Pressed bool // A pad event arrived since the last ClearPressed
	Mode    Mode
}

// Event is one input delivered through the event channel.
type Event struct {
	Mask   uint16 // Electrode status bits, bit 0 = pad 1
	Toggle bool   // Mode-toggle edge; Mask is ignored when set
}

// Decoder is the gesture state machine. All methods are safe for concurrent use;
// a history shift and its pressed edge are applied as one unit.
type Decoder struct {
	mu    sync.Mutex
	state State

	events chan Event
}

// EventBuffer bounds how many undelivered events Events() can hold.
const EventBuffer = 64

// NewDecoder creates a decoder in the given mode with empty history.
func NewDecoder(mode Mode) *Decoder {
	return &Decoder{
		state:  State{Mode: mode},
		events: make(chan Event, EventBuffer),
	}
}

// PadFromMask returns the pad selected by a status word: the highest set
// electrode bit wins. Returns 0 when no electrode is active.
func PadFromMask(mask uint16) int {
	mask &= padMask
	if mask == 0 {
		return 0
	}
	return bits.Len16(mask)
}

// MaskForPad returns the status word with only the given pad set.
func MaskForPad(pad int) uint16 {
	if pad < 1 || pad > PadCount {
		return 0
	}
	return 1 << (pad - 1)
}

// HandlePads applies one electrode status event. The pressed edge is raised
// for every event, including a release with no active pad.
func (d *Decoder) HandlePads(mask uint16) {
	pad := PadFromMask(mask)

	d.mu.Lock()
	defer d.mu.Unlock()

	if pad != 0 {
		switch d.state.Mode {
		case ModeSwipe:
			if pad != d.state.Current {
				d.state.Last3 = d.state.Last2
				d.state.Last2 = d.state.Last1
				d.state.Last1 = d.state.Current
				d.state.Current = pad
			}
		case ModeDirect:
			d.state.Last3 = 0
			d.state.Last2 = 0
			d.state.Last1 = 0
			d.state.Current = pad
		}
	}
	d.state.Pressed = true
}

// Press is shorthand for HandlePads with a single pad.
func (d *Decoder) Press(pad int) {
	d.HandlePads(MaskForPad(pad))
}

// Toggle flips between swipe and direct mode.
func (d *Decoder) Toggle() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state.Mode == ModeSwipe {
		d.state.Mode = ModeDirect
	} else {
		d.state.Mode = ModeSwipe
	}
}

// Poll returns the direction encoded by the current state. It reports
// DirNone unless a pad event arrived since the last ClearPressed.
func (d *Decoder) Poll() game2048.Direction {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.state.Pressed {
		return game2048.DirNone
	}
	return decode(d.state)
}

// ClearPressed drops the pressed edge. The tick loop calls it once per tick.
func (d *Decoder) ClearPressed() {
	d.mu.Lock()
	d.state.Pressed = false
	d.mu.Unlock()
}

// State returns a snapshot of the decoder.
func (d *Decoder) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Reset clears history and the pressed edge, keeping the mode.
func (d *Decoder) Reset() {
	d.mu.Lock()
	d.state = State{Mode: d.state.Mode}
	d.mu.Unlock()
}

// Events returns the channel asynchronous sources send into. Events are
// applied by Pump.
func (d *Decoder) Events() chan<- Event {
	return d.events
}

// Pump applies queued events until ctx is done.
func (d *Decoder) Pump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-d.events:
			d.apply(ev)
		}
	}
}

// Drain applies every event already queued and returns how many it applied.
func (d *Decoder) Drain() int {
	n := 0
	for {
		select {
		case ev := <-d.events:
			d.apply(ev)
			n++
		default:
			return n
		}
	}
}

func (d *Decoder) apply(ev Event) {
	if ev.Toggle {
		d.Toggle()
		return
	}
	d.HandlePads(ev.Mask)
}
