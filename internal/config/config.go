// Package config provides YAML-based game configuration loading and
// difficulty presets for popper.
package config

import (
	"errors"
	"fmt"
)

// PopperConfig contains all configuration for a popper round.
type PopperConfig struct {
	Path    PathConfig    `yaml:"path"`
	Chain   ChainConfig   `yaml:"chain"`
	Shooter ShooterConfig `yaml:"shooter"`
	Scoring ScoringConfig `yaml:"scoring"`
	Audio   AudioConfig   `yaml:"audio"`
	Debug   DebugConfig   `yaml:"debug"`
}

// PathConfig describes the spiral the chain travels along.
type PathConfig struct {
	Loops       float64 `yaml:"loops"`
	StartRadius float64 `yaml:"start_radius"`
	EndRadius   float64 `yaml:"end_radius"`
	Steps       int     `yaml:"steps"`
	StretchX    float64 `yaml:"stretch_x"`
	StretchY    float64 `yaml:"stretch_y"`
	StartAngle  float64 `yaml:"start_angle"` // Radians
}

// ChainConfig defines the chain's motion and initial layout. The gap between
// neighbours is fixed by the engine and not configurable.
type ChainConfig struct {
	Speed        float64 `yaml:"speed"`
	StartCount   int     `yaml:"start_count"`
	HeadDistance float64 `yaml:"head_distance"`
}

// ShooterConfig defines projectile flight and the collision policy.
type ShooterConfig struct {
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	ProjectileLife  float64 `yaml:"projectile_life"` // Seconds
	QueueSize       int     `yaml:"queue_size"`
	MinRadius       float64 `yaml:"min_radius"`
	FarRadius       float64 `yaml:"far_radius"`
	HitTolerance    float64 `yaml:"hit_tolerance"`
	AimStep         float64 `yaml:"aim_step"` // Radians per key press
}

// ScoringConfig defines how removed spheres turn into points.
type ScoringConfig struct {
	PointsPerSphere int `yaml:"points_per_sphere"`
	ClearBonus      int `yaml:"clear_bonus"`
}

// AudioConfig controls sound effects.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// DebugConfig holds development switches.
type DebugConfig struct {
	StrictInvariants bool `yaml:"strict_invariants"`
}

// Validate reports every setting that would make the round unplayable.
func (c PopperConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Path.Steps > 0, "path.steps must be positive, got %d", c.Path.Steps)
	check(c.Path.Loops > 0, "path.loops must be positive, got %g", c.Path.Loops)
	check(c.Path.EndRadius < c.Path.StartRadius,
		"path.end_radius (%g) must be below path.start_radius (%g)", c.Path.EndRadius, c.Path.StartRadius)
	check(c.Path.StretchX > 0 && c.Path.StretchY > 0, "path stretch must be positive")

	check(c.Chain.Speed > 0, "chain.speed must be positive, got %g", c.Chain.Speed)
	check(c.Chain.StartCount >= 0, "chain.start_count must not be negative, got %d", c.Chain.StartCount)

	check(c.Shooter.ProjectileSpeed > 0, "shooter.projectile_speed must be positive, got %g", c.Shooter.ProjectileSpeed)
	check(c.Shooter.ProjectileLife > 0, "shooter.projectile_life must be positive, got %g", c.Shooter.ProjectileLife)
	check(c.Shooter.QueueSize >= 1, "shooter.queue_size must be at least 1, got %d", c.Shooter.QueueSize)
	check(c.Shooter.MinRadius < c.Shooter.FarRadius,
		"shooter.min_radius (%g) must be below shooter.far_radius (%g)", c.Shooter.MinRadius, c.Shooter.FarRadius)
	check(c.Shooter.HitTolerance > 0, "shooter.hit_tolerance must be positive, got %g", c.Shooter.HitTolerance)

	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be within [0, 1], got %g", c.Audio.Volume)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w", errors.Join(errs...))
}
