package skyrun

import (
	"sort"

	"github.com/vovakirdan/skyrun/internal/config"
)

// ActiveEffect is a running power-up and its remaining steps.
type ActiveEffect struct {
	Kind      Kind
	Remaining int
}

// PowerUpManager is the built-in PowerUps implementation.
// Each kind has an independent countdown; picking up a kind that is already
// running restarts its countdown.
type PowerUpManager struct {
	cfg       config.PowerUpConfig
	remaining map[Kind]int
}

// NewPowerUpManager creates a manager with the configured durations.
func NewPowerUpManager(cfg config.PowerUpConfig) *PowerUpManager {
	return &PowerUpManager{
		cfg:       cfg,
		remaining: make(map[Kind]int),
	}
}

// Duration returns the configured duration for a kind.
func (m *PowerUpManager) Duration(kind Kind) int {
	switch kind {
	case KindMagnet:
		return m.cfg.Magnet
	case KindDoubleScore:
		return m.cfg.DoubleScore
	case KindInvincibility:
		return m.cfg.Invincibility
	case KindSlowMotion:
		return m.cfg.SlowMotion
	case KindCoinRain:
		return m.cfg.CoinRain
	default:
		return 0
	}
}

// Activate starts the effect for kind.
func (m *PowerUpManager) Activate(kind Kind) {
	if !kind.IsPowerUp() {
		return
	}
	if d := m.Duration(kind); d > 0 {
		m.remaining[kind] = d
	}
}

// Update counts every running effect down by one step.
func (m *PowerUpManager) Update() {
	for kind, left := range m.remaining {
		if left <= 1 {
			delete(m.remaining, kind)
			continue
		}
		m.remaining[kind] = left - 1
	}
}

// Reset stops every effect.
func (m *PowerUpManager) Reset() {
	clear(m.remaining)
}

func (m *PowerUpManager) active(kind Kind) bool {
	return m.remaining[kind] > 0
}

// IsInvincible implements PowerUps.
func (m *PowerUpManager) IsInvincible() bool {
	return m.active(KindInvincibility)
}

// IsMagnetActive implements PowerUps.
func (m *PowerUpManager) IsMagnetActive() bool {
	return m.active(KindMagnet)
}

// ScoreMultiplier implements PowerUps.
func (m *PowerUpManager) ScoreMultiplier() float64 {
	if m.active(KindDoubleScore) {
		return 2
	}
	return 1
}

// SpeedFactor implements PowerUps.
func (m *PowerUpManager) SpeedFactor() float64 {
	if m.active(KindSlowMotion) && m.cfg.SlowMotionFactor > 0 {
		return m.cfg.SlowMotionFactor
	}
	return 1
}

// CoinRainActive implements PowerUps.
func (m *PowerUpManager) CoinRainActive() bool {
	return m.active(KindCoinRain)
}

// Active lists running effects ordered by kind, for the HUD.
func (m *PowerUpManager) Active() []ActiveEffect {
	out := make([]ActiveEffect, 0, len(m.remaining))
	for kind, left := range m.remaining {
		out = append(out, ActiveEffect{Kind: kind, Remaining: left})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

var _ PowerUps = (*PowerUpManager)(nil)
