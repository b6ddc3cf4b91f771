package core

// EventKind identifies what happened during a tick or a fire.
type EventKind uint8

const (
	EventShoot EventKind = iota // A projectile left the shooter
	EventHit                    // A projectile was inserted into the chain
	EventMiss                   // A projectile expired without hitting
	EventPop                    // A run collapsed out of the chain
	EventWin                    // The chain was emptied
	EventLose                   // The leader reached the pit
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventShoot:
		return "shoot"
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventPop:
		return "pop"
	case EventWin:
		return "win"
	case EventLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Event records something observable for sound, scoring and tests.
type Event struct {
	Kind     EventKind
	Color    Color   // Projectile or run colour where applicable
	Distance float64 // Hit distance for EventHit
	Index    int     // Insertion index for EventHit, run start for EventPop
	Count    int     // Spheres removed for EventPop
}
