// Package audio plays the short direction tones that acknowledge a merge.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/pad2048/internal/game2048"
)

// Tone is one fixed-pitch beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// ToneBank maps swipe directions to tones.
type ToneBank map[game2048.Direction]Tone

// DefaultToneDuration is how long each direction tone lasts.
const DefaultToneDuration = 500 * time.Millisecond

// DefaultTones returns the stock direction tones.
func DefaultTones() ToneBank {
	return ToneBank{
		game2048.DirUp:    {Freq: 1200, Duration: DefaultToneDuration},
		game2048.DirRight: {Freq: 1300, Duration: DefaultToneDuration},
		game2048.DirDown:  {Freq: 1400, Duration: DefaultToneDuration},
		game2048.DirLeft:  {Freq: 1500, Duration: DefaultToneDuration},
	}
}

const (
	toneAttack  = 5 * time.Millisecond
	toneRelease = 60 * time.Millisecond
)

// squareWave is a plain square oscillator, the shape a PWM buzzer produces.
type squareWave struct {
	freq     float64
	phase    float64
	position int
	samples  int
	rate     beep.SampleRate
}

func newSquareWave(freq float64, d time.Duration, rate beep.SampleRate) *squareWave {
	return &squareWave{freq: freq, samples: rate.N(d), rate: rate}
}

func (o *squareWave) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.samples {
			return i, i > 0
		}

		val := -1.0
		if o.phase < 0.5 {
			val = 1.0
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *squareWave) Err() error { return nil }

// envelope fades a stream in and out to avoid clicks.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d time.Duration, rate beep.SampleRate) *envelope {
	total := rate.N(d)
	att := min(rate.N(toneAttack), total/2)
	rel := min(rate.N(toneRelease), total-att)
	return &envelope{streamer: s, attack: att, release: rel, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		switch {
		case e.position < e.attack:
			vol = float64(e.position) / float64(e.attack)
		case e.position >= e.total-e.release && e.release > 0:
			vol = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales a stream linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// NewToneStreamer returns a finite streamer sounding t at the given volume.
func NewToneStreamer(t Tone, rate beep.SampleRate, volume float64) beep.Streamer {
	osc := newSquareWave(t.Freq, t.Duration, rate)
	return withVolume(newEnvelope(osc, t.Duration, rate), volume)
}
