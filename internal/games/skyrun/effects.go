package skyrun

import (
	"math"

	"github.com/vovakirdan/skyrun/internal/core"
)

// Particle is one glyph flying out of a burst, in canvas pixels.
type Particle struct {
	Pos   core.Vec
	Vel   core.Vec
	Glyph rune
	Color core.Color
	Life  int // Steps left
}

// burst describes how a ParticleKind looks.
type burst struct {
	count int
	speed float64
	life  int
	glyph rune
	color core.Color
}

var bursts = map[ParticleKind]burst{
	ParticleCoin:    {count: 6, speed: 6, life: 12, glyph: '*', color: core.ColorGold},
	ParticleKick:    {count: 8, speed: 9, life: 14, glyph: '+', color: core.ColorCyan},
	ParticlePowerUp: {count: 10, speed: 7, life: 18, glyph: 'o', color: core.ColorMagenta},
	ParticleDeath:   {count: 16, speed: 10, life: 30, glyph: 'x', color: core.ColorRed},
}

// particleGravity pulls particles down a little every step.
const particleGravity = 0.4

// ParticleSystem is the built-in ParticleSink.
// Bursts fan out evenly around the emit point, so output is deterministic.
type ParticleSystem struct {
	particles []Particle
	limit     int
}

// NewParticleSystem creates a system holding at most limit particles.
func NewParticleSystem(limit int) *ParticleSystem {
	if limit <= 0 {
		limit = 256
	}
	return &ParticleSystem{limit: limit}
}

// Emit implements ParticleSink.
func (ps *ParticleSystem) Emit(kind ParticleKind, at core.Vec) {
	b, ok := bursts[kind]
	if !ok {
		return
	}
	for i := 0; i < b.count; i++ {
		if len(ps.particles) >= ps.limit {
			return
		}
		angle := 2 * math.Pi * float64(i) / float64(b.count)
		ps.particles = append(ps.particles, Particle{
			Pos:   at,
			Vel:   core.Vec{X: math.Cos(angle) * b.speed, Y: math.Sin(angle)*b.speed - b.speed/2},
			Glyph: b.glyph,
			Color: b.color,
			Life:  b.life,
		})
	}
}

// Update implements ParticleSink.
func (ps *ParticleSystem) Update() {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.Life--
		if p.Life <= 0 {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel.Y += particleGravity
		alive = append(alive, p)
	}
	ps.particles = alive
}

// Particles returns the live particles for drawing.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Reset drops every particle.
func (ps *ParticleSystem) Reset() {
	ps.particles = ps.particles[:0]
}

// Shaker is the built-in ScreenShaker. It produces a render offset in
// screen cells that alternates sides and decays linearly.
type Shaker struct {
	intensity float64
	total     int
	left      int
}

// Shake implements ScreenShaker. A weaker shake never replaces a stronger one
// that is still running.
func (s *Shaker) Shake(intensity float64, ticks int) {
	if ticks <= 0 {
		return
	}
	if s.left > 0 && s.intensity*float64(s.left)/float64(s.total) > intensity {
		return
	}
	s.intensity = intensity
	s.total = ticks
	s.left = ticks
}

// Update implements ScreenShaker.
func (s *Shaker) Update() {
	if s.left > 0 {
		s.left--
	}
}

// Active reports whether a shake is running.
func (s *Shaker) Active() bool {
	return s.left > 0
}

// Offset returns the current render offset in cells.
func (s *Shaker) Offset() (dx, dy int) {
	if s.left <= 0 {
		return 0, 0
	}
	mag := int(math.Round(s.intensity * float64(s.left) / float64(s.total)))
	if s.left%2 == 0 {
		mag = -mag
	}
	return mag, 0
}

// Reset stops any shake.
func (s *Shaker) Reset() {
	*s = Shaker{}
}

var (
	_ ParticleSink = (*ParticleSystem)(nil)
	_ ScreenShaker = (*Shaker)(nil)
)
