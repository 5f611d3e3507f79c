package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/pad2048/internal/game2048"
)

// Player sounds direction tones until closed.
type Player interface {
	PlayTone(dir game2048.Direction)
	Close()
}

// Settings configures tone playback.
type Settings struct {
	Enabled    bool
	SampleRate int
	Volume     float64
	Tones      ToneBank
}

// DefaultSampleRate is used when Settings.SampleRate is zero.
const DefaultSampleRate = 44100

// speakerBuffer is the device buffer length.
const speakerBuffer = 100 * time.Millisecond

// SpeakerPlayer mixes tones onto the system speaker.
type SpeakerPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	tones       ToneBank
	initialized bool
}

// NewSpeakerPlayer creates a player; call Init before playing.
func NewSpeakerPlayer(s Settings) *SpeakerPlayer {
	rate := s.SampleRate
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	tones := s.Tones
	if tones == nil {
		tones = DefaultTones()
	}
	return &SpeakerPlayer{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(rate),
		volume: s.Volume,
		tones:  tones,
	}
}

// Init opens the speaker and starts the mixer.
func (p *SpeakerPlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// PlayTone queues the tone for dir. Directions without a tone are ignored.
func (p *SpeakerPlayer) PlayTone(dir game2048.Direction) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	tone, ok := p.tones[dir]
	if !ok {
		return
	}

	speaker.Lock()
	p.mixer.Add(NewToneStreamer(tone, p.rate, p.volume))
	speaker.Unlock()
}

// Close silences the mixer and releases the speaker.
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Silent discards every tone.
type Silent struct{}

func (Silent) PlayTone(game2048.Direction) {}
func (Silent) Close()                      {}

// Open returns a speaker player, or Silent when audio is disabled or the
// device cannot be opened. Audio is best effort; failures are only logged.
func Open(s Settings, logger *log.Logger) Player {
	if !s.Enabled {
		return Silent{}
	}
	p := NewSpeakerPlayer(s)
	if err := p.Init(); err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "error", err)
		}
		return Silent{}
	}
	return p
}
