package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets pick fixed values before the round starts; nothing changes during play.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // Keep the loaded values untouched
)

// presetValues are the chain constants each preset sets.
var presetValues = map[DifficultyPreset]struct {
	speed      float64
	startCount int
}{
	DifficultyEasy:   {speed: 7, startCount: 24},
	DifficultyNormal: {speed: 10, startCount: 30},
	DifficultyHard:   {speed: 14, startCount: 40},
}

// ParsePreset validates a preset name.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard or fixed)", name)
	}
}

// ApplyPopperPreset overwrites the chain speed and start count for a preset.
// DifficultyFixed leaves the configuration as loaded.
func ApplyPopperPreset(cfg *PopperConfig, preset DifficultyPreset) {
	v, ok := presetValues[preset]
	if !ok {
		return
	}
	cfg.Chain.Speed = v.speed
	cfg.Chain.StartCount = v.startCount
}
