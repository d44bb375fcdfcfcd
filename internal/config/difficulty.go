package config

import "fmt"

// ParsePreset converts a CLI string into a preset.
// An empty string means "use the config as loaded".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialSpeedForPreset returns the starting scroll speed for a preset.
func InitialSpeedForPreset(preset DifficultyPreset, base float64) float64 {
	switch preset {
	case DifficultyEasy:
		return 8
	case DifficultyNormal:
		return 10
	case DifficultyHard:
		return 14
	default:
		return base
	}
}

// IsFixedPreset returns true if the preset disables acceleration.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Physics.SpeedIncrement = 0
		return
	}

	cfg.Physics.InitialSpeed = InitialSpeedForPreset(preset, cfg.Physics.InitialSpeed)

	// Buff levels scale the 82-step shield/booster duration
	switch preset {
	case DifficultyEasy:
		cfg.Buffs.ShieldLevel = 2
		cfg.Buffs.BoosterLevel = 2
	case DifficultyHard:
		cfg.Buffs.ShieldLevel = 1
		cfg.Buffs.BoosterLevel = 1
		cfg.Pickups.CoinChance = 40
	}
}
