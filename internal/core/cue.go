package core

// Cue is a sound the platform should play in response to a game event.
// Games raise cues; whether and how they are heard is up to the platform.
type Cue uint8

const (
	CueShoot Cue = iota // A projectile left the shooter
	CueHit              // A projectile joined the chain
	CuePop              // A run of spheres collapsed
	CueWin              // Chain cleared
	CueLose             // Chain reached the pit
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueHit:
		return "hit"
	case CuePop:
		return "pop"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	default:
		return "unknown"
	}
}
