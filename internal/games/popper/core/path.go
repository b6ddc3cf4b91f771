package core

import (
	"math"
	"sort"
)

// PathSample is one precomputed point of the path together with its
// cumulative arc length from the first sample.
type PathSample struct {
	Pos  Vec2
	Dist float64
}

// Path is an immutable polyline with monotonic cumulative arc length.
// It maps a 1-D distance to a 2-D point and a 2-D point back to the nearest
// normalized distance. A Path is never mutated after construction, so the
// chain and the shooter may share it freely.
type Path struct {
	samples     []PathSample
	totalLength float64
}

// NewPath builds a path from an ordered list of points.
// Consecutive duplicate points are kept; they simply add zero length.
// An empty point list yields a single sample at the origin.
func NewPath(points []Vec2) *Path {
	if len(points) == 0 {
		points = []Vec2{{}}
	}

	samples := make([]PathSample, len(points))
	total := 0.0
	for i, p := range points {
		if i > 0 {
			total += p.Dist(points[i-1])
		}
		samples[i] = PathSample{Pos: p, Dist: total}
	}

	return &Path{
		samples:     samples,
		totalLength: total,
	}
}

// SpiralConfig describes an oval spiral that winds inward toward the pit.
type SpiralConfig struct {
	Loops       float64 // Number of full turns
	StartRadius float64 // Radius of the first (outermost) sample
	EndRadius   float64 // Radius of the last sample; the pit
	Steps       int     // Number of segments; the path has Steps+1 samples
	StretchX    float64 // Horizontal scale applied to the circle
	StretchY    float64 // Vertical scale applied to the circle
	StartAngle  float64 // Angle of the first sample in radians
}

// DefaultSpiralConfig returns the stock 2.5-loop oval spiral.
func DefaultSpiralConfig() SpiralConfig {
	return SpiralConfig{
		Loops:       2.5,
		StartRadius: 500,
		EndRadius:   100,
		Steps:       1500,
		StretchX:    1.1,
		StretchY:    0.8,
		StartAngle:  math.Pi,
	}
}

// NewSpiral samples an oval spiral centered on the origin.
// The radius shrinks linearly from StartRadius to EndRadius while the angle
// advances by 2π per loop.
func NewSpiral(cfg SpiralConfig) *Path {
	steps := cfg.Steps
	if steps < 1 {
		steps = 1
	}

	points := make([]Vec2, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		angle := cfg.StartAngle + t*math.Pi*2*cfg.Loops
		radius := cfg.StartRadius - t*(cfg.StartRadius-cfg.EndRadius)
		points = append(points, Vec2{
			X: math.Cos(angle) * radius * cfg.StretchX,
			Y: math.Sin(angle) * radius * cfg.StretchY,
		})
	}
	return NewPath(points)
}

// TotalLength returns the arc length of the whole path.
func (p *Path) TotalLength() float64 {
	return p.totalLength
}

// Len returns the number of samples.
func (p *Path) Len() int {
	return len(p.samples)
}

// Sample returns the i-th sample. i is clamped to the valid range.
func (p *Path) Sample(i int) PathSample {
	if i < 0 {
		i = 0
	}
	if i >= len(p.samples) {
		i = len(p.samples) - 1
	}
	return p.samples[i]
}

// Start returns the first point of the path.
func (p *Path) Start() Vec2 {
	return p.samples[0].Pos
}

// End returns the last point of the path (the pit).
func (p *Path) End() Vec2 {
	return p.samples[len(p.samples)-1].Pos
}

// PointAtDistance returns the sample at or before the given arc length.
// Distances below zero clamp to the start point and distances at or beyond
// the total length clamp to the end point. There is no interpolation between
// samples, which gives blocky but stable motion.
func (p *Path) PointAtDistance(distance float64) Vec2 {
	if distance < 0 {
		return p.Start()
	}
	if distance >= p.totalLength {
		return p.End()
	}

	// First sample strictly beyond distance; the one before it is the answer.
	i := sort.Search(len(p.samples), func(i int) bool {
		return p.samples[i].Dist > distance
	})
	if i == 0 {
		return p.Start()
	}
	return p.samples[i-1].Pos
}

// NearestDistanceTo returns the normalized arc length in [0, 1] of the sample
// closest to pt. Ties go to the first sample found, i.e. the earliest and
// outermost point of the spiral.
//
// This is a linear scan over every sample, so it costs O(samples) per query.
// At the stock 1500 samples and a handful of projectiles that is fine; a
// context with many simultaneous projectiles would want the samples binned
// by position first.
func (p *Path) NearestDistanceTo(pt Vec2) float64 {
	if p.totalLength == 0 {
		return 0
	}

	bestDist := math.Inf(1)
	bestT := 0.0
	for _, s := range p.samples {
		d := s.Pos.Dist(pt)
		if d < bestDist {
			bestDist = d
			bestT = s.Dist / p.totalLength
		}
	}
	return bestT
}
