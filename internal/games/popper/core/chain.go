package core

import "fmt"

// DefaultSpacing is the exact gap between adjacent spheres once the chain
// has settled.
const DefaultSpacing = 40.0

// Sphere is one coloured ball on the path. Distance is its arc-length
// position; larger means further along, closer to the pit.
type Sphere struct {
	Color    Color
	Distance float64
}

// ChainConfig holds the constants of a chain.
type ChainConfig struct {
	Speed   float64 // Leader advance in distance units per second
	Spacing float64 // Gap between adjacent spheres
}

// DefaultChainConfig returns the stock chain constants.
func DefaultChainConfig() ChainConfig {
	return ChainConfig{
		Speed:   10,
		Spacing: DefaultSpacing,
	}
}

// Chain is the ordered sequence of spheres advancing toward the pit.
// Index 0 is the leader (greatest distance). The order is never re-sorted:
// insertion decides the position explicitly. The sequence grows only
// through Insert and shrinks only through match collapse.
type Chain struct {
	spheres []Sphere
	speed   float64
	spacing float64
	length  float64 // Path total length; the leader reaching it is the loss
}

// NewChain creates an empty chain on a path of the given total length.
func NewChain(cfg ChainConfig, pathLength float64) *Chain {
	spacing := cfg.Spacing
	if spacing <= 0 {
		spacing = DefaultSpacing
	}
	return &Chain{
		speed:   cfg.Speed,
		spacing: spacing,
		length:  pathLength,
	}
}

// NewChainFrom creates a chain holding a copy of spheres in the given order.
// It is meant for tests and scripted set-ups; spacing is not enforced until
// the next Advance.
func NewChainFrom(cfg ChainConfig, pathLength float64, spheres []Sphere) *Chain {
	c := NewChain(cfg, pathLength)
	c.spheres = append([]Sphere(nil), spheres...)
	return c
}

// Fill replaces the contents with count random spheres. The leader sits at
// headDistance and each follower exactly one spacing behind its predecessor.
func (c *Chain) Fill(rng RandSource, count int, headDistance float64) {
	c.spheres = make([]Sphere, 0, count)
	for i := 0; i < count; i++ {
		c.spheres = append(c.spheres, Sphere{
			Color:    RandomColor(rng),
			Distance: headDistance - float64(i)*c.spacing,
		})
	}
}

// Speed returns the leader's forward speed.
func (c *Chain) Speed() float64 {
	return c.speed
}

// Spacing returns the gap enforced between neighbours.
func (c *Chain) Spacing() float64 {
	return c.spacing
}

// Len returns the number of spheres.
func (c *Chain) Len() int {
	return len(c.spheres)
}

// At returns the sphere at index i. Panics if i is out of range.
func (c *Chain) At(i int) Sphere {
	return c.spheres[i]
}

// Spheres returns a copy of the sequence in index order, leader first.
func (c *Chain) Spheres() []Sphere {
	return append([]Sphere(nil), c.spheres...)
}

// Each calls fn for every sphere in index order without copying.
func (c *Chain) Each(fn func(i int, s Sphere)) {
	for i, s := range c.spheres {
		fn(i, s)
	}
}

// Leader returns the leading sphere and whether the chain is non-empty.
func (c *Chain) Leader() (Sphere, bool) {
	if len(c.spheres) == 0 {
		return Sphere{}, false
	}
	return c.spheres[0], true
}

// Advance moves the leader forward by speed*dt, snaps every follower to
// exactly one spacing behind its predecessor, then collapses matches until
// none remain. The snap is a hard clamp, not a spring: the column behind a
// collapsed run is snapped shut in the same call instead of closing the gap
// over time, so every gap equals spacing when Advance returns.
// It returns the runs removed during this call in removal order.
func (c *Chain) Advance(dt float64) []Run {
	if len(c.spheres) == 0 {
		return nil
	}

	c.spheres[0].Distance += c.speed * dt
	c.snapFollowers()

	var runs []Run
	c.spheres, runs = CollapseAll(c.spheres)
	if len(runs) > 0 {
		c.snapFollowers()
	}
	return runs
}

// snapFollowers locks every follower to its predecessor.
func (c *Chain) snapFollowers() {
	for i := 1; i < len(c.spheres); i++ {
		c.spheres[i].Distance = c.spheres[i-1].Distance - c.spacing
	}
}

// Insert splices a sphere of the given colour into the chain at hitDistance
// and returns the index it landed at.
//
// The new sphere goes immediately before the first sphere whose distance is
// less than hitDistance, or becomes the tail if there is none. It is then
// pulled back to one spacing behind its predecessor if it overlaps, and every
// sphere after it is pushed back as needed so that no two neighbours end up
// closer than spacing. Spheres are never moved forward here.
func (c *Chain) Insert(color Color, hitDistance float64) int {
	idx := len(c.spheres)
	for i, s := range c.spheres {
		if s.Distance < hitDistance {
			idx = i
			break
		}
	}

	c.spheres = append(c.spheres, Sphere{})
	copy(c.spheres[idx+1:], c.spheres[idx:])
	c.spheres[idx] = Sphere{Color: color, Distance: hitDistance}

	if idx > 0 {
		limit := c.spheres[idx-1].Distance - c.spacing
		if c.spheres[idx].Distance > limit {
			c.spheres[idx].Distance = limit
		}
	}

	for i := idx + 1; i < len(c.spheres); i++ {
		limit := c.spheres[i-1].Distance - c.spacing
		if c.spheres[i].Distance > limit {
			c.spheres[i].Distance = limit
		}
	}

	return idx
}

// ReachedEnd reports whether the leader has reached the pit.
// This is the loss condition.
func (c *Chain) ReachedEnd() bool {
	return len(c.spheres) > 0 && c.spheres[0].Distance >= c.length
}

// IsEmpty reports whether every sphere has been cleared.
// This is the win condition.
func (c *Chain) IsEmpty() bool {
	return len(c.spheres) == 0
}

// spacingEpsilon absorbs float rounding when checking gaps.
const spacingEpsilon = 1e-9

// Verify checks the ordering and spacing invariants: distances strictly
// decrease with index and no two neighbours are closer than spacing.
// When settled is true every gap must equal spacing, which is what Advance
// guarantees. A non-nil error means a defect, not a recoverable condition.
func (c *Chain) Verify(settled bool) error {
	for i := 1; i < len(c.spheres); i++ {
		gap := c.spheres[i-1].Distance - c.spheres[i].Distance
		if gap <= 0 {
			return fmt.Errorf("chain: order violated at %d: %.6f then %.6f",
				i, c.spheres[i-1].Distance, c.spheres[i].Distance)
		}
		if gap < c.spacing-spacingEpsilon {
			return fmt.Errorf("chain: gap %.6f below spacing %.6f at %d", gap, c.spacing, i)
		}
		if settled && gap > c.spacing+spacingEpsilon {
			return fmt.Errorf("chain: gap %.6f above spacing %.6f at %d", gap, c.spacing, i)
		}
	}
	return nil
}
