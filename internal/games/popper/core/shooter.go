package core

import "math"

// Projectile is a coloured ball in free flight from the shooter.
type Projectile struct {
	Pos   Vec2
	Vel   Vec2
	Color Color
	Life  float64 // Seconds of flight left
}

// ShooterConfig holds the constants of the shooter and its collision policy.
type ShooterConfig struct {
	ProjectileSpeed float64 // Units per second
	ProjectileLife  float64 // Seconds before an unresolved projectile is dropped
	QueueSize       int     // Loaded colour plus previews
	MinRadius       float64 // No collision checks within this distance of the shooter
	FarRadius       float64 // Beyond this distance checks run every tick
	HitTolerance    float64 // Reconstructed-point distance below which a check hits
}

// DefaultShooterConfig returns the stock shooter constants.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		ProjectileSpeed: 500,
		ProjectileLife:  2,
		QueueSize:       2,
		MinRadius:       30,
		FarRadius:       250,
		HitTolerance:    30,
	}
}

// Shooter is the stationary launcher at the origin. It owns its upcoming
// colour queue and the projectiles in flight.
type Shooter struct {
	cfg         ShooterConfig
	rng         RandSource
	queue       []Color
	projectiles []Projectile
	aim         float64
}

// NewShooter creates a shooter with a freshly drawn colour queue.
func NewShooter(cfg ShooterConfig, rng RandSource) *Shooter {
	size := cfg.QueueSize
	if size < 1 {
		size = 1
	}
	s := &Shooter{
		cfg:   cfg,
		rng:   rng,
		queue: make([]Color, 0, size),
	}
	for i := 0; i < size; i++ {
		s.queue = append(s.queue, RandomColor(rng))
	}
	return s
}

// Config returns the shooter constants.
func (s *Shooter) Config() ShooterConfig {
	return s.cfg
}

// Queue returns a copy of the colour queue. Index 0 is the loaded colour,
// index 1 the next preview.
func (s *Shooter) Queue() []Color {
	return append([]Color(nil), s.queue...)
}

// Loaded returns the colour that the next Fire will launch.
func (s *Shooter) Loaded() Color {
	return s.queue[0]
}

// Projectiles returns a copy of the projectiles in flight, oldest first.
func (s *Shooter) Projectiles() []Projectile {
	return append([]Projectile(nil), s.projectiles...)
}

// Aim returns the last angle passed to SetAim.
func (s *Shooter) Aim() float64 {
	return s.aim
}

// SetAim stores the aim angle in radians, normalized to (-π, π].
func (s *Shooter) SetAim(angle float64) {
	s.aim = math.Atan2(math.Sin(angle), math.Cos(angle))
}

// Fire consumes the head of the colour queue, enqueues a new random colour
// and launches a projectile from the origin at angle radians.
func (s *Shooter) Fire(angle float64) Projectile {
	color := s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue[len(s.queue)-1] = RandomColor(s.rng)

	p := Projectile{
		Vel:   FromAngle(angle, s.cfg.ProjectileSpeed),
		Color: color,
		Life:  s.cfg.ProjectileLife,
	}
	s.projectiles = append(s.projectiles, p)
	return p
}

// Update advances every projectile by dt and applies the collision policy
// against chain over path. Confirmed hits are inserted into chain. Projectiles
// are handled oldest first.
func (s *Shooter) Update(dt float64, chain *Chain, path *Path) []Event {
	var events []Event

	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Life -= dt

		switch res := Resolve(p, path, s.cfg); res.Outcome {
		case OutcomeHit:
			idx := chain.Insert(p.Color, res.HitDistance)
			events = append(events, Event{
				Kind:     EventHit,
				Color:    p.Color,
				Distance: res.HitDistance,
				Index:    idx,
			})
		case OutcomeMiss:
			events = append(events, Event{Kind: EventMiss, Color: p.Color})
		default:
			kept = append(kept, p)
		}
	}

	// Clear the tail so dropped projectiles are not retained.
	for i := len(kept); i < len(s.projectiles); i++ {
		s.projectiles[i] = Projectile{}
	}
	s.projectiles = kept

	return events
}
