package core

// Outcome is the verdict of the collision policy for one projectile.
type Outcome uint8

const (
	OutcomeFlying Outcome = iota // Keep flying
	OutcomeHit                   // Insert into the chain and consume
	OutcomeMiss                  // Drop without touching the chain
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeFlying:
		return "flying"
	case OutcomeHit:
		return "hit"
	case OutcomeMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Collision is the result of Resolve.
type Collision struct {
	Outcome     Outcome
	Checked     bool    // Whether a path query ran at all
	HitDistance float64 // Absolute arc length of the candidate point
	Gap         float64 // Distance from the projectile to the reconstructed point
}

// ShouldCheck reports whether the policy queries the path for p this tick.
// Nothing is checked within MinRadius of the shooter. Past it, a check runs
// once the projectile is beyond FarRadius or its life has run out.
//
// The gate looks only at the current position. A projectile that somehow
// curved back inside MinRadius would simply stop being checked again;
// projectiles fly in straight lines so this does not happen in play.
func ShouldCheck(p Projectile, cfg ShooterConfig) bool {
	r := p.Pos.Len()
	return r > cfg.MinRadius && (r > cfg.FarRadius || p.Life <= 0)
}

// Resolve applies the collision policy to a projectile that has already
// been integrated for this tick.
//
// The nearest-sample search only yields a position along the spiral, and the
// spiral overlaps itself on screen, so the candidate is verified: the point
// at the candidate distance is rebuilt and the projectile must be strictly
// closer to it than HitTolerance. A failed check drops the projectile only
// once its life is spent.
func Resolve(p Projectile, path *Path, cfg ShooterConfig) Collision {
	if !ShouldCheck(p, cfg) {
		return Collision{Outcome: OutcomeFlying}
	}

	t := path.NearestDistanceTo(p.Pos)
	hitDistance := t * path.TotalLength()
	gap := p.Pos.Dist(path.PointAtDistance(hitDistance))

	c := Collision{
		Checked:     true,
		HitDistance: hitDistance,
		Gap:         gap,
	}
	switch {
	case gap < cfg.HitTolerance:
		c.Outcome = OutcomeHit
	case p.Life <= 0:
		c.Outcome = OutcomeMiss
	default:
		c.Outcome = OutcomeFlying
	}
	return c
}
