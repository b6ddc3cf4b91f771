package popper

import "github.com/vovakirdan/tui-popper/internal/games/popper/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWin         GameStateType = "win"
	StateLose        GameStateType = "lose"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Score       int
	ChainLen    int
	Leader      float64 // Leader distance, 0 when the chain is empty
	Projectiles int
	Loaded      core.Color
	Next        core.Color // Same as Loaded when the queue holds one colour
	Aim         float64
	Removed     int
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.session.Result() == core.ResultWin:
		state = StateWin
	case g.session.Result() == core.ResultLose:
		state = StateLose
	case g.paused:
		state = StatePaused
	}

	leader, _ := g.session.Chain().Leader()
	queue := g.session.Shooter().Queue()

	return Snapshot{
		Tick:        g.tick,
		Score:       g.score,
		ChainLen:    g.session.Chain().Len(),
		Leader:      leader.Distance,
		Projectiles: len(g.session.Shooter().Projectiles()),
		Loaded:      queue[0],
		Next:        queue[len(queue)-1],
		Aim:         g.aim,
		Removed:     g.session.Removed(),
		State:       state,
	}
}
