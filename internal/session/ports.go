package session

import "github.com/vovakirdan/pad2048/internal/game2048"

// Renderer draws the board after every change the session makes.
type Renderer interface {
	DrawBoard(b game2048.Board)
	DrawGameOver(b game2048.Board)
}

// TonePlayer sounds the tone associated with a swipe direction.
type TonePlayer interface {
	PlayTone(dir game2048.Direction)
}

// Ports groups the collaborators a session reports to.
// Nil ports are replaced with no-op implementations.
type Ports struct {
	Renderer Renderer
	Tones    TonePlayer
}

type nopRenderer struct{}

func (nopRenderer) DrawBoard(game2048.Board)    {}
func (nopRenderer) DrawGameOver(game2048.Board) {}

type nopTones struct{}

func (nopTones) PlayTone(game2048.Direction) {}

func (p Ports) withDefaults() Ports {
	if p.Renderer == nil {
		p.Renderer = nopRenderer{}
	}
	if p.Tones == nil {
		p.Tones = nopTones{}
	}
	return p
}
