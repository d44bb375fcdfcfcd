// Package skyrun implements the SkyRun endless runner: a side-scrolling
// canvas game where the player jumps and slides past floor and ceiling
// obstacles while collecting coins, shields, boosters and power-ups.
package skyrun

import (
	"math"

	"github.com/vovakirdan/skyrun/internal/config"
)

// Kind identifies what a GameObject is for gameplay purposes.
type Kind int

const (
	KindBarrier       Kind = iota // Damages the player on unshielded contact
	KindCoin                      // Increments the coin counter
	KindShield                    // Grants the shield buff
	KindBooster                   // Grants the booster buff (speed x5 plus shield)
	KindMagnet                    // Power-up: pulls nearby coins
	KindDoubleScore               // Power-up: score multiplier x2
	KindInvincibility             // Power-up: obstacles stop killing
	KindSlowMotion                // Power-up: halves scroll rate
	KindCoinRain                  // Power-up: coins fall from the sky
)

// powerUpKinds lists the power-ups in the order of the 1..5 spawn roll.
var powerUpKinds = [...]Kind{KindMagnet, KindDoubleScore, KindInvincibility, KindSlowMotion, KindCoinRain}

// IsPowerUp reports whether the kind is one of the five timed power-ups.
func (k Kind) IsPowerUp() bool {
	return k >= KindMagnet && k <= KindCoinRain
}

// IsPickup reports whether touching the object benefits the player.
func (k Kind) IsPickup() bool {
	return k != KindBarrier
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBarrier:
		return "barrier"
	case KindCoin:
		return "coin"
	case KindShield:
		return "shield"
	case KindBooster:
		return "booster"
	case KindMagnet:
		return "magnet"
	case KindDoubleScore:
		return "double_score"
	case KindInvincibility:
		return "invincibility"
	case KindSlowMotion:
		return "slow_motion"
	case KindCoinRain:
		return "coin_rain"
	default:
		return "unknown"
	}
}

// GameObject is any non-player entity in the play field.
type GameObject struct {
	ID        int // Spawn sequence number
	Kind      Kind
	Archetype int // 1..8 for spawned obstacles, 0 for rain coins
	Sprite    string

	X, Y          float64 // Top-left corner in canvas pixels
	Width, Height float64 // Unscaled barrier size
	SizeCoef      float64

	TopBarrier bool // Anchored to the ceiling instead of the floor

	Levitate      bool    // Bobs vertically around BaseY
	BaseY         float64 // Rest position for levitation
	LevitateAngle float64

	RainFall bool // Falls diagonally at the rain speed

	Kicked   bool    // Sent flying by a shielded hit; no further interaction
	kickVel  float64 // Current fly-away velocity
	Consumed bool    // Pickup taken; hidden and inert but still scrolling
	Dead     bool
	diedAt   int // Tick on which Dead was set
}

// W returns the scaled width.
func (o *GameObject) W() float64 {
	return o.Width * o.SizeCoef
}

// H returns the scaled height.
func (o *GameObject) H() float64 {
	return o.Height * o.SizeCoef
}

// Interactive reports whether the object can still collide with the player.
func (o *GameObject) Interactive() bool {
	return !o.Dead && !o.Kicked && !o.Consumed
}

// Visible reports whether the object should be drawn.
func (o *GameObject) Visible() bool {
	return !o.Dead && !o.Consumed
}

// Kick sends the object flying off-screen with the given initial velocity.
func (o *GameObject) Kick(speed float64) {
	if o.Kicked {
		return
	}
	o.Kicked = true
	o.kickVel = speed
}

// die marks the object dead. Only the first call has any effect.
func (o *GameObject) die(tick int) {
	if o.Dead {
		return
	}
	o.Dead = true
	o.diedAt = tick
}

// motion holds the per-step movement parameters shared by all objects.
type motion struct {
	speed     float64 // Scroll speed for this step (after slow motion)
	rainSpeed float64
	canvasW   float64
	canvasH   float64
	obstacles config.ObstacleConfig
}

// advance moves the object one step and marks it dead once it leaves play.
func (o *GameObject) advance(m motion, tick int) {
	if o.Dead {
		return
	}

	switch {
	case o.Kicked:
		o.X += o.kickVel
		o.Y -= o.kickVel * 0.5
		o.kickVel += m.obstacles.KickAccel
		if o.X > m.canvasW+m.obstacles.CeilDeathFactor*o.Width {
			o.die(tick)
		}

	case o.RainFall:
		o.X -= m.rainSpeed
		o.Y += m.rainSpeed
		if o.Y > m.canvasH {
			o.die(tick)
		}

	default:
		o.X -= m.speed
		if o.Levitate {
			o.LevitateAngle += m.obstacles.LevitateStep
			o.Y = o.BaseY + m.obstacles.LevitateAmplitude*math.Sin(o.LevitateAngle)
		}
	}

	factor := m.obstacles.FloorDeathFactor
	if o.TopBarrier {
		factor = m.obstacles.CeilDeathFactor
	}
	if o.X < -factor*o.Width || o.Y < m.obstacles.KickDeathY {
		o.die(tick)
	}
}
