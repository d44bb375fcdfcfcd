// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

// RunnerConfig contains all tunables for the SkyRun game loop.
// Distances are in virtual canvas pixels and durations in simulation steps.
type RunnerConfig struct {
	Canvas    CanvasConfig   `yaml:"canvas"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Pickups   PickupConfig   `yaml:"pickups"`
	Buffs     BuffConfig     `yaml:"buffs"`
	PowerUps  PowerUpConfig  `yaml:"powerups"`
	Scoring   ScoringConfig  `yaml:"scoring"`
	Death     []DeathFrame   `yaml:"death"`
	Parallax  ParallaxConfig `yaml:"parallax"`
}

// CanvasConfig defines the virtual play field.
type CanvasConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Distance from canvas bottom to ground line
}

// GroundY returns the y of the ground line.
func (c CanvasConfig) GroundY() float64 {
	return c.Height - c.GroundOffset
}

// PhysicsConfig defines scroll speed and player motion.
type PhysicsConfig struct {
	InitialSpeed   float64 `yaml:"initial_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"` // Added to speed every step
	JumpSpeed      float64 `yaml:"jump_speed"`      // Ascent per step
	FallSpeed      float64 `yaml:"fall_speed"`      // Descent per step
	MaxJumpHeight  float64 `yaml:"max_jump_height"`
	MaxJumps       int     `yaml:"max_jumps"`
	MoveSpeed      float64 `yaml:"move_speed"`  // Horizontal input movement per step
	SlideTicks     int     `yaml:"slide_ticks"` // Auto slide-end; 0 waits for slide-end input
}

// PlayerConfig defines the player's sprite box.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines barrier geometry and spawning.
type ObstacleConfig struct {
	BarrierWidth      float64 `yaml:"barrier_width"`
	BarrierHeight     float64 `yaml:"barrier_height"`
	SpawnGap          float64 `yaml:"spawn_gap"`          // Last spawn must be left of width - gap
	LevitateStep      float64 `yaml:"levitate_step"`      // Radians per step
	LevitateAmplitude float64 `yaml:"levitate_amplitude"` // Pixels
	KickAccel         float64 `yaml:"kick_accel"`         // Added to kicked velocity each step
	FloorDeathFactor  float64 `yaml:"floor_death_factor"`
	CeilDeathFactor   float64 `yaml:"ceil_death_factor"`
	KickDeathY        float64 `yaml:"kick_death_y"`
}

// PickupConfig defines coin and pickup spawning.
type PickupConfig struct {
	CoinChance    int     `yaml:"coin_chance"` // Percent
	CoinScale     float64 `yaml:"coin_scale"`
	PickupScale   float64 `yaml:"pickup_scale"`
	ShieldChance  int     `yaml:"shield_chance"`
	BoosterChance int     `yaml:"booster_chance"`
	PowerUpChance int     `yaml:"powerup_chance"`
	MagnetRadius  float64 `yaml:"magnet_radius"`
	MagnetPull    float64 `yaml:"magnet_pull"`
	RainSpeed     float64 `yaml:"rain_speed"`
	RainInterval  int     `yaml:"rain_interval"`
}

// BuffConfig defines shield and booster timing.
type BuffConfig struct {
	ShieldLevel     int     `yaml:"shield_level"`
	BoosterLevel    int     `yaml:"booster_level"`
	TicksPerLevel   int     `yaml:"ticks_per_level"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
	FadeTicks       int     `yaml:"fade_ticks"`
	BlinkEvery      int     `yaml:"blink_every"`
}

// PowerUpConfig defines durations of the timed power-ups.
type PowerUpConfig struct {
	Magnet           int     `yaml:"magnet"`
	DoubleScore      int     `yaml:"double_score"`
	Invincibility    int     `yaml:"invincibility"`
	SlowMotion       int     `yaml:"slow_motion"`
	CoinRain         int     `yaml:"coin_rain"`
	SlowMotionFactor float64 `yaml:"slow_motion_factor"`
}

// ScoringConfig defines score accrual.
type ScoringConfig struct {
	PerStep float64 `yaml:"per_step"`
}

// DeathFrame is one sprite of the death animation.
type DeathFrame struct {
	Sprite string `yaml:"sprite"`
	Millis int    `yaml:"ms"`
}

// ParallaxConfig defines per-layer scroll rates relative to speed.
type ParallaxConfig struct {
	Background []float64 `yaml:"background"`
	Foreground []float64 `yaml:"foreground"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
