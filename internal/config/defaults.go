package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/popper.yaml
var defaultPopperYAML []byte

// DefaultPopperConfig returns the default popper configuration.
func DefaultPopperConfig() PopperConfig {
	return PopperConfig{
		Path: PathConfig{
			Loops:       2.5,
			StartRadius: 500,
			EndRadius:   100,
			Steps:       1500,
			StretchX:    1.1,
			StretchY:    0.8,
			StartAngle:  math.Pi,
		},
		Chain: ChainConfig{
			Speed:        10,
			StartCount:   30,
			HeadDistance: 800,
		},
		Shooter: ShooterConfig{
			ProjectileSpeed: 500,
			ProjectileLife:  2,
			QueueSize:       2,
			MinRadius:       30,
			FarRadius:       250,
			HitTolerance:    30,
			AimStep:         0.1,
		},
		Scoring: ScoringConfig{
			PointsPerSphere: 10,
			ClearBonus:      500,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPopperYAML
}
