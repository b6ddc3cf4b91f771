package core

import "fmt"

// SessionConfig bundles everything needed to build a playable round.
type SessionConfig struct {
	Spiral       SpiralConfig
	Chain        ChainConfig
	Shooter      ShooterConfig
	StartCount   int     // Spheres in the initial chain
	HeadDistance float64 // Initial leader distance
	// StrictInvariants makes every Tick verify the chain and panic on a
	// violation. Intended for tests and debug runs.
	StrictInvariants bool
}

// DefaultSessionConfig returns the stock round.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Spiral:       DefaultSpiralConfig(),
		Chain:        DefaultChainConfig(),
		Shooter:      DefaultShooterConfig(),
		StartCount:   30,
		HeadDistance: 800,
	}
}

// Result is the terminal state of a session.
type Result uint8

const (
	ResultNone Result = iota // Still playing
	ResultWin                // Chain emptied
	ResultLose               // Leader reached the pit
)

// String returns the string representation of a result.
func (r Result) String() string {
	switch r {
	case ResultNone:
		return "playing"
	case ResultWin:
		return "win"
	case ResultLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Session is one round of play: a path, the chain on it and the shooter.
// The caller owns it; construction and Reset are its whole lifecycle.
// A session is driven from a single goroutine.
type Session struct {
	cfg     SessionConfig
	rng     RandSource
	path    *Path
	chain   *Chain
	shooter *Shooter
	result  Result
	elapsed float64
	removed int // Spheres removed by collapses this round
}

// NewSession builds the path once and starts a fresh round.
func NewSession(cfg SessionConfig, rng RandSource) *Session {
	s := &Session{
		cfg:  cfg,
		rng:  rng,
		path: NewSpiral(cfg.Spiral),
	}
	s.Reset()
	return s
}

// NewSessionOnPath starts a round on a caller-supplied path.
func NewSessionOnPath(cfg SessionConfig, rng RandSource, path *Path) *Session {
	s := &Session{
		cfg:  cfg,
		rng:  rng,
		path: path,
	}
	s.Reset()
	return s
}

// Reset discards the current chain and shooter and starts a new round on
// the same path with the same random source.
func (s *Session) Reset() {
	s.chain = NewChain(s.cfg.Chain, s.path.TotalLength())
	s.chain.Fill(s.rng, s.cfg.StartCount, s.cfg.HeadDistance)
	s.shooter = NewShooter(s.cfg.Shooter, s.rng)
	s.result = ResultNone
	s.elapsed = 0
	s.removed = 0
}

// Path returns the shared, read-only path.
func (s *Session) Path() *Path {
	return s.path
}

// Chain returns the session's chain.
func (s *Session) Chain() *Chain {
	return s.chain
}

// Shooter returns the session's shooter.
func (s *Session) Shooter() *Shooter {
	return s.shooter
}

// Result returns the terminal state, or ResultNone while playing.
func (s *Session) Result() Result {
	return s.result
}

// Over reports whether the round has ended.
func (s *Session) Over() bool {
	return s.result != ResultNone
}

// Elapsed returns the simulated seconds of play.
func (s *Session) Elapsed() float64 {
	return s.elapsed
}

// Removed returns how many spheres collapses have removed this round.
func (s *Session) Removed() int {
	return s.removed
}

// Fire launches the loaded colour at angle radians.
// It is ignored once the round is over.
func (s *Session) Fire(angle float64) []Event {
	if s.Over() {
		return nil
	}
	s.shooter.SetAim(angle)
	p := s.shooter.Fire(angle)
	return []Event{{Kind: EventShoot, Color: p.Color}}
}

// Tick runs one simulation step: advance the chain and collapse matches,
// fly the projectiles and insert hits, then check loss before win.
// Once the round is over Tick does nothing until Reset.
func (s *Session) Tick(dt float64) []Event {
	if s.Over() {
		return nil
	}
	s.elapsed += dt

	var events []Event
	for _, run := range s.chain.Advance(dt) {
		s.removed += run.Len
		events = append(events, Event{
			Kind:  EventPop,
			Color: run.Color,
			Index: run.Start,
			Count: run.Len,
		})
	}
	s.check(true)

	events = append(events, s.shooter.Update(dt, s.chain, s.path)...)
	s.check(false)

	switch {
	case s.chain.ReachedEnd():
		s.result = ResultLose
		events = append(events, Event{Kind: EventLose})
	case s.chain.IsEmpty():
		s.result = ResultWin
		events = append(events, Event{Kind: EventWin})
	}
	return events
}

// check panics on an invariant violation when strict mode is on.
func (s *Session) check(settled bool) {
	if !s.cfg.StrictInvariants {
		return
	}
	if err := s.chain.Verify(settled); err != nil {
		panic(fmt.Sprintf("popper: %v", err))
	}
}
