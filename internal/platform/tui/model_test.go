package tui

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pad2048/internal/core"
	"github.com/vovakirdan/pad2048/internal/game2048"
	"github.com/vovakirdan/pad2048/internal/gesture"
	"github.com/vovakirdan/pad2048/internal/session"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T, delay time.Duration) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.SpawnDelay = delay
	opts := session.Options{Rand: rand.New(rand.NewSource(1))}
	return NewModel(opts, gesture.NewDecoder(gesture.ModeSwipe), nil, cfg)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestPadKeysFollowLayout(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key rune
		pad int
	}{
		{'1', 1}, {'q', 2}, {'a', 3}, {'z', 4},
		{'2', 5}, {'w', 6}, {'s', 7}, {'x', 8},
		{'3', 9}, {'e', 10}, {'d', 11}, {'c', 12},
	}

	for _, tt := range tests {
		pad, ok := km.Pad(runeKey(tt.key))
		if !ok || pad != tt.pad {
			t.Errorf("key %q -> pad %d (%v), want %d", tt.key, pad, ok, tt.pad)
		}
		if PadKey(tt.pad) != string(tt.key) {
			t.Errorf("PadKey(%d) = %q, want %q", tt.pad, PadKey(tt.pad), string(tt.key))
		}
	}

	if _, ok := km.Pad(runeKey('r')); ok {
		t.Error("r must not touch a pad")
	}
}

func TestArrowKeysMapToSwipes(t *testing.T) {
	km := DefaultKeyMap()

	tests := map[tea.KeyType]game2048.Direction{
		tea.KeyUp:    game2048.DirUp,
		tea.KeyDown:  game2048.DirDown,
		tea.KeyLeft:  game2048.DirLeft,
		tea.KeyRight: game2048.DirRight,
	}
	for kt, want := range tests {
		got, ok := km.Swipe(tea.KeyMsg{Type: kt})
		if !ok || got != want {
			t.Errorf("%v -> %v (%v), want %v", kt, got, ok, want)
		}
	}
}

func TestKeyPadPathThenTick(t *testing.T) {
	m := newTestModel(t, 0)
	m.sess.SetBoard(game2048.Board{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {2, 2, 0, 0}})

	// Third row right to left: pads 11, 7, 3
	for _, r := range "dsa" {
		m, _ = update(t, m, runeKey(r))
	}
	m, _ = update(t, m, TickMsg(time.Now()))

	if m.lastDir != game2048.DirLeft {
		t.Fatalf("last direction = %v, want Left", m.lastDir)
	}
	if got := m.Snapshot().Score; got != 4 {
		t.Errorf("score = %d, want 4", got)
	}
	if m.shown.board[3][0] != 4 {
		t.Errorf("shown board row 3 = %v, want merged 4 at the left edge", m.shown.board[3])
	}
}

func TestArrowReplaysPathInCurrentMode(t *testing.T) {
	for _, mode := range []gesture.Mode{gesture.ModeSwipe, gesture.ModeDirect} {
		m := newTestModel(t, 0)
		if mode == gesture.ModeDirect {
			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
		}
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
		if got := m.dec.State().Pressed; got {
			t.Errorf("%v mode: pads applied before the queue was drained", mode)
		}

		m.dec.Drain()
		if got := m.dec.Poll(); got != game2048.DirDown {
			t.Errorf("%v mode: arrow down decoded as %v", mode, got)
		}
	}
}

func TestPadKeysGoThroughPump(t *testing.T) {
	m := newTestModel(t, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.dec.Pump(ctx)

	// Middle column top to bottom: pads 5, 6, 7, 8
	for _, r := range "2wsx" {
		m, _ = update(t, m, runeKey(r))
	}

	deadline := time.Now().Add(time.Second)
	for m.dec.State().Current != 8 {
		if time.Now().After(deadline) {
			t.Fatalf("pump did not apply the pads, state = %+v", m.dec.State())
		}
		time.Sleep(time.Millisecond)
	}
	if got := m.dec.Poll(); got != game2048.DirDown {
		t.Errorf("decoded %v, want Down", got)
	}
}

func TestKeysNeverBlockOnFullQueue(t *testing.T) {
	m := newTestModel(t, 0)

	for range gesture.EventBuffer * 3 {
		m, _ = update(t, m, runeKey('s'))
	}
	m.dec.Drain()

	if got := m.dec.State().Current; got != 7 {
		t.Errorf("current pad = %d, want 7", got)
	}
}

func TestSpawnDelayHoldsBackSpawnFrame(t *testing.T) {
	m := newTestModel(t, 50*time.Millisecond)
	m.sess.SetBoard(game2048.Board{{2, 2, 0, 0}})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick and the spawn frame")
	}

	if got := m.shown.board.TileCount(); got != 1 {
		t.Fatalf("first frame has %d tiles, want only the merged tile", got)
	}
	if len(m.pending) != 1 {
		t.Fatalf("pending frames = %d, want 1", len(m.pending))
	}

	// A stale reveal is ignored
	m, _ = update(t, m, spawnMsg{generation: m.generation - 1})
	if m.shown.board.TileCount() != 1 {
		t.Fatal("stale spawn message revealed a frame")
	}

	m, _ = update(t, m, spawnMsg{generation: m.generation})
	if got := m.shown.board.TileCount(); got != 2 {
		t.Errorf("spawn frame has %d tiles, want 2", got)
	}
	if len(m.pending) != 0 {
		t.Errorf("pending frames = %d after reveal", len(m.pending))
	}
}

func TestGameOverAndRestart(t *testing.T) {
	m := newTestModel(t, 0)
	m.sess.SetBoard(game2048.Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4096},
		{8192, 16384, 32768, 65536},
	})

	m, _ = update(t, m, TickMsg(time.Now()))
	if !m.shown.gameOver {
		t.Fatal("terminal board should show the game over frame")
	}
	if !strings.Contains(m.View(), game2048.GameOverBanner) {
		t.Error("view should contain the game over banner")
	}

	m, _ = update(t, m, runeKey('r'))
	if m.Snapshot().State != session.StatePlaying {
		t.Fatal("r should restart after game over")
	}
	if m.shown.gameOver {
		t.Error("restart should show the new board")
	}
}

func TestToggleAndQuit(t *testing.T) {
	m := newTestModel(t, 0)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.dec.State().Mode != gesture.ModeDirect {
		t.Error("tab should switch to direct mode")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.quitting || cmd == nil {
		t.Fatal("esc should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestViewShowsHUD(t *testing.T) {
	m := newTestModel(t, 0)
	m.dec.Press(7)

	view := m.View()
	for _, want := range []string{"pad2048", "Score", "swipe", "Trail"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q", want)
		}
	}
}

func TestFormatHistory(t *testing.T) {
	if got := formatHistory(gesture.State{}); got != "-" {
		t.Errorf("empty history = %q", got)
	}
	st := gesture.State{Current: 8, Last1: 7, Last2: 6, Last3: 5}
	if got := formatHistory(st); got != "5 > 6 > 7 > 8" {
		t.Errorf("history = %q, want oldest first", got)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorBlack, core.RGB(0xFF, 0, 0))

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
}
