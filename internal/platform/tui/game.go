package tui

import (
	"time"

	"github.com/vovakirdan/tui-popper/internal/core"
)

// Game is the contract between the terminal loop and a game.
// Games are driven from the Bubble Tea update goroutine only.
type Game interface {
	// ID returns a stable identifier used for screenshots and logs.
	ID() string
	// Title returns the display name.
	Title() string
	// Difficulty returns the preset name recorded with saved scores.
	Difficulty() string

	// Reset starts a fresh round with the given runtime settings.
	Reset(cfg core.RuntimeConfig)
	// Resize adapts the layout without restarting the round.
	Resize(w, h int)
	// Step advances the simulation by one fixed tick.
	Step(input core.InputFrame) core.StepResult
	// Render draws the current state into dst.
	Render(dst *core.Screen)
	// State returns the current status.
	State() core.GameState

	// Removed returns how many spheres were popped this round.
	Removed() int
	// Elapsed returns the simulated play time of this round.
	Elapsed() time.Duration
}

// SoundPlayer plays cues raised by the game.
type SoundPlayer interface {
	Play(cue core.Cue)
	ToggleMute() bool
}

// silentPlayer is used when no audio backend is available.
type silentPlayer struct {
	muted bool
}

func (p *silentPlayer) Play(core.Cue) {}

func (p *silentPlayer) ToggleMute() bool {
	p.muted = !p.muted
	return p.muted
}
