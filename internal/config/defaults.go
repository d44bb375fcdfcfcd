package config

import (
	_ "embed"
)

//go:embed defaults/skyrun.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hard-coded runner configuration.
// It mirrors defaults/skyrun.yaml and backs every field the YAML leaves out.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Canvas: CanvasConfig{
			Width:        1200,
			Height:       600,
			GroundOffset: 60,
		},
		Physics: PhysicsConfig{
			InitialSpeed:   10,
			SpeedIncrement: 0.001,
			JumpSpeed:      14,
			FallSpeed:      10,
			MaxJumpHeight:  240,
			MaxJumps:       2,
			MoveSpeed:      8,
			SlideTicks:     36,
		},
		Player: PlayerConfig{
			X:      150,
			Width:  80,
			Height: 120,
		},
		Obstacles: ObstacleConfig{
			BarrierWidth:      100,
			BarrierHeight:     100,
			SpawnGap:          100,
			LevitateStep:      0.05,
			LevitateAmplitude: 12,
			KickAccel:         1.5,
			FloorDeathFactor:  1.5,
			CeilDeathFactor:   5,
			KickDeathY:        -500,
		},
		Pickups: PickupConfig{
			CoinChance:    50,
			CoinScale:     0.3,
			PickupScale:   0.5,
			ShieldChance:  30,
			BoosterChance: 30,
			PowerUpChance: 15,
			MagnetRadius:  150,
			MagnetPull:    0.3,
			RainSpeed:     6,
			RainInterval:  20,
		},
		Buffs: BuffConfig{
			ShieldLevel:     1,
			BoosterLevel:    1,
			TicksPerLevel:   82,
			BoostMultiplier: 5,
			FadeTicks:       48,
			BlinkEvery:      6,
		},
		PowerUps: PowerUpConfig{
			Magnet:           600, // 10 seconds
			DoubleScore:      600,
			Invincibility:    480, // 8 seconds
			SlowMotion:       360,
			CoinRain:         300,
			SlowMotionFactor: 0.5,
		},
		Scoring: ScoringConfig{
			PerStep: 0.2,
		},
		Death: []DeathFrame{
			{Sprite: "hit", Millis: 120},
			{Sprite: "spin", Millis: 120},
			{Sprite: "fall", Millis: 160},
			{Sprite: "ghost", Millis: 240},
		},
		Parallax: ParallaxConfig{
			Background: []float64{0.1, 0.4, 1.2},
			Foreground: []float64{0.3, 1.0},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
