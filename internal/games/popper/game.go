// Package popper adapts the marble-popper engine to the terminal platform:
// it maps input frames to aim and fire, keeps score, raises sound cues and
// draws the spiral, chain and shooter onto a screen buffer.
package popper

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-popper/internal/config"
	platformcore "github.com/vovakirdan/tui-popper/internal/core"
	"github.com/vovakirdan/tui-popper/internal/games/popper/core"
)

// Game implements popper for the terminal platform.
type Game struct {
	cfg        config.PopperConfig
	difficulty string

	rng     *rand.Rand
	session *core.Session
	dt      float64

	// Screen dimensions
	screenW int
	screenH int
	view    viewport

	// Status
	tick     uint64
	score    int
	aim      float64
	paused   bool
	tooSmall bool
}

// New creates a game from a loaded configuration. difficulty is the preset
// name recorded with the score.
func New(cfg config.PopperConfig, difficulty string) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: difficulty,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "popper"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Popper"
}

// Difficulty returns the preset name the game was built with.
func (g *Game) Difficulty() string {
	return g.difficulty
}

// Reset starts a new round with a fresh random source.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.session = core.NewSession(SessionConfig(g.cfg), g.rng)
	g.dt = cfg.TickDuration()
	g.tick = 0
	g.score = 0
	g.aim = -math.Pi / 2 // Straight up
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new screen size without touching the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < MinScreenW || h < MinScreenH
	if g.session != nil {
		g.view = newViewport(w, h, g.session.Path())
	}
}

// restart begins a new round on the same path and random source.
func (g *Game) restart() {
	g.session.Reset()
	g.tick = 0
	g.score = 0
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if input.Has(platformcore.ActionRestart) && g.session.Over() {
		g.restart()
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) && !g.session.Over() {
		g.paused = !g.paused
	}

	if g.session.Over() || g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	g.processAim(input)

	var events []core.Event
	if input.Has(platformcore.ActionFire) {
		events = append(events, g.session.Fire(g.aim)...)
	}
	events = append(events, g.session.Tick(g.dt)...)

	// Score this tick's events before reporting state.
	cues := g.apply(events)
	return platformcore.StepResult{
		State: g.State(),
		Cues:  cues,
	}
}

// processAim applies key rotation and pointer aiming.
// A pointer that moved this frame overrides the keys.
func (g *Game) processAim(input platformcore.InputFrame) {
	step := g.cfg.Shooter.AimStep
	if input.Has(platformcore.ActionAimLeft) {
		g.aim -= step
	}
	if input.Has(platformcore.ActionAimRight) {
		g.aim += step
	}
	if p := input.Pointer; p.Valid && p.Moved && g.view.field.Contains(p.X, p.Y) {
		g.aim = g.view.angleTo(p.X, p.Y)
	}
	g.aim = math.Atan2(math.Sin(g.aim), math.Cos(g.aim))
}

// apply scores engine events and converts them to sound cues.
func (g *Game) apply(events []core.Event) []platformcore.Cue {
	var cues []platformcore.Cue
	for _, e := range events {
		switch e.Kind {
		case core.EventShoot:
			cues = append(cues, platformcore.CueShoot)
		case core.EventHit:
			cues = append(cues, platformcore.CueHit)
		case core.EventPop:
			g.score += e.Count * g.cfg.Scoring.PointsPerSphere
			cues = append(cues, platformcore.CuePop)
		case core.EventWin:
			g.score += g.cfg.Scoring.ClearBonus
			cues = append(cues, platformcore.CueWin)
		case core.EventLose:
			cues = append(cues, platformcore.CueLose)
		}
	}
	return cues
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.session.Over(),
		Won:      g.session.Result() == core.ResultWin,
		Paused:   g.paused,
	}
}

// Removed returns how many spheres collapses have removed this round.
func (g *Game) Removed() int {
	return g.session.Removed()
}

// Elapsed returns the simulated play time of this round.
func (g *Game) Elapsed() time.Duration {
	return time.Duration(g.session.Elapsed() * float64(time.Second))
}
