package skyrun

import "github.com/vovakirdan/skyrun/internal/core"

// Optional capabilities the loop calls into. Any of them may be nil; the
// loop then simply skips the corresponding effect.

// ParticleKind selects a particle burst.
type ParticleKind int

const (
	ParticleCoin ParticleKind = iota
	ParticleKick
	ParticlePowerUp
	ParticleDeath
)

// ParticleSink receives particle bursts and is advanced once per step.
type ParticleSink interface {
	Emit(kind ParticleKind, at core.Vec)
	Update()
}

// ScreenShaker receives shake requests and is advanced once per step.
type ScreenShaker interface {
	Shake(intensity float64, ticks int)
	Update()
}

// PowerUps tracks the timed power-up effects.
type PowerUps interface {
	Activate(kind Kind)
	Update()
	Reset()
	IsInvincible() bool
	IsMagnetActive() bool
	ScoreMultiplier() float64
	SpeedFactor() float64
	CoinRainActive() bool
}

// BackgroundUpdater reacts to score changes (palette, scenery).
type BackgroundUpdater interface {
	UpdateBackground(score float64)
}

// Recorder persists run results across sessions.
type Recorder interface {
	RecordDeath() error
	SaveRun(run core.RunResult) (newHigh bool, err error)
	HighScore() (int, error)
}
