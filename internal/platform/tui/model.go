package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pad2048/internal/core"
	"github.com/vovakirdan/pad2048/internal/game2048"
	"github.com/vovakirdan/pad2048/internal/gesture"
	"github.com/vovakirdan/pad2048/internal/session"
)

// frame is one board state the session drew.
type frame struct {
	board    game2048.Board
	gameOver bool
}

// frameRecorder is the session's renderer. It keeps every draw so the model
// can present the swipe frame and the spawn frame one after the other.
type frameRecorder struct {
	frames []frame
}

func (r *frameRecorder) DrawBoard(b game2048.Board) {
	r.frames = append(r.frames, frame{board: b})
}

func (r *frameRecorder) DrawGameOver(b game2048.Board) {
	r.frames = append(r.frames, frame{board: b, gameOver: true})
}

func (r *frameRecorder) take() []frame {
	f := r.frames
	r.frames = nil
	return f
}

// Model is the Bubble Tea model for a pad2048 game.
type Model struct {
	sess   *session.Session
	dec    *gesture.Decoder
	rec    *frameRecorder
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	screen *core.Screen

	shown      frame
	pending    []frame
	generation uint64 // Bumped whenever pending is replaced
	lastDir    game2048.Direction
	quitting   bool
}

// NewModel creates the model and its session. The session itself never
// sleeps; the spawn delay is presented by holding back the spawn frame.
func NewModel(opts session.Options, dec *gesture.Decoder, tones session.TonePlayer, cfg core.RuntimeConfig) Model {
	rec := &frameRecorder{}
	opts.SpawnDelay = 0
	if cfg.TickInterval > 0 {
		opts.TickInterval = cfg.TickInterval
	}
	sess := session.New(opts, dec, session.Ports{Renderer: rec, Tones: tones})

	m := Model{
		sess:   sess,
		dec:    dec,
		rec:    rec,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		screen: core.NewScreen(game2048.BoardWidth, game2048.BoardHeight),
	}
	m.config.TickInterval = sess.Options().TickInterval

	sess.Render()
	m.present(rec.take())
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case spawnMsg:
		if msg.generation != m.generation || len(m.pending) == 0 {
			return m, nil
		}
		m.shown = m.pending[0]
		m.pending = m.pending[1:]
		if len(m.pending) > 0 {
			return m, spawnCmd(m.config.SpawnDelay, m.generation)
		}
		return m, nil
	}

	return m, nil
}

// handleKey turns keys into pad events queued on the decoder the way the
// touch controller interrupt would. The board changes on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		// Pads queued before the toggle belong to the old mode
		m.dec.Drain()
		m.dec.Toggle()
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		if m.sess.Snapshot().State == session.StateGameOver {
			m.sess.Reset()
			m.sess.Render()
			m.lastDir = game2048.DirNone
			return m, m.present(m.rec.take())
		}
		return m, nil
	}

	if dir, ok := m.keys.Swipe(msg); ok {
		// Arrows replay the full pad path of the swipe in the current mode
		for _, p := range gesture.PathFor(m.dec.State().Mode, dir) {
			m.send(p)
		}
		return m, nil
	}
	if pad, ok := m.keys.Pad(msg); ok {
		m.send(pad)
	}
	return m, nil
}

// send queues a pad event. A full queue is applied inline first so Update
// never blocks.
func (m Model) send(pad int) {
	ev := gesture.Event{Mask: gesture.MaskForPad(pad)}
	select {
	case m.dec.Events() <- ev:
	default:
		m.dec.Drain()
		m.dec.Events() <- ev
	}
}

// handleTick runs one session tick and presents what it drew.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.dec.Drain()
	res := m.sess.Tick()
	if res.Direction != game2048.DirNone {
		m.lastDir = res.Direction
	}
	cmd := m.present(m.rec.take())
	return m, tea.Batch(tickCmd(m.config.TickInterval), cmd)
}

// present shows the first frame now and schedules the rest after the spawn
// delay. Without a delay only the last frame is shown.
func (m *Model) present(frames []frame) tea.Cmd {
	if len(frames) == 0 {
		return nil
	}
	m.generation++
	if m.config.SpawnDelay <= 0 {
		m.shown = frames[len(frames)-1]
		m.pending = nil
		return nil
	}
	m.shown = frames[0]
	m.pending = frames[1:]
	if len(m.pending) == 0 {
		return nil
	}
	return spawnCmd(m.config.SpawnDelay, m.generation)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	if m.shown.gameOver {
		game2048.RenderGameOver(m.screen, m.shown.board, 0)
	} else {
		game2048.RenderBoard(m.screen, m.shown.board, 0, 0)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderScreen(m.screen),
		"  ",
		renderHUD(m.sess.Snapshot(), m.lastDir),
	)
	content := lipgloss.JoinVertical(lipgloss.Left, body, "", m.help.View(m.keys))

	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return content
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, content)
}

// Snapshot returns the session state behind the model.
func (m Model) Snapshot() session.Snapshot {
	return m.sess.Snapshot()
}

// Run starts the Bubble Tea program for one game. Queued pad events are
// applied by the decoder's pump while the program runs.
func Run(opts session.Options, dec *gesture.Decoder, tones session.TonePlayer, cfg core.RuntimeConfig) error {
	model := NewModel(opts, dec, tones, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go dec.Pump(ctx)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
