package popper

import (
	"github.com/vovakirdan/tui-popper/internal/config"
	"github.com/vovakirdan/tui-popper/internal/games/popper/core"
)

// SessionConfig converts the YAML configuration into engine settings.
func SessionConfig(cfg config.PopperConfig) core.SessionConfig {
	return core.SessionConfig{
		Spiral: core.SpiralConfig{
			Loops:       cfg.Path.Loops,
			StartRadius: cfg.Path.StartRadius,
			EndRadius:   cfg.Path.EndRadius,
			Steps:       cfg.Path.Steps,
			StretchX:    cfg.Path.StretchX,
			StretchY:    cfg.Path.StretchY,
			StartAngle:  cfg.Path.StartAngle,
		},
		Chain: core.ChainConfig{
			Speed:   cfg.Chain.Speed,
			Spacing: core.DefaultSpacing,
		},
		Shooter: core.ShooterConfig{
			ProjectileSpeed: cfg.Shooter.ProjectileSpeed,
			ProjectileLife:  cfg.Shooter.ProjectileLife,
			QueueSize:       cfg.Shooter.QueueSize,
			MinRadius:       cfg.Shooter.MinRadius,
			FarRadius:       cfg.Shooter.FarRadius,
			HitTolerance:    cfg.Shooter.HitTolerance,
		},
		StartCount:       cfg.Chain.StartCount,
		HeadDistance:     cfg.Chain.HeadDistance,
		StrictInvariants: cfg.Debug.StrictInvariants,
	}
}
