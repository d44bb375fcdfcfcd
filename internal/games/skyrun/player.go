package skyrun

import (
	"github.com/vovakirdan/skyrun/internal/config"
	"github.com/vovakirdan/skyrun/internal/core"
)

// Player is the runner controlled by input. One Player exists per loop;
// it is reset between runs, never replaced.
type Player struct {
	X, Y          float64 // Standing top-left corner; Y ignores the jump
	Width, Height float64
	Sprite        string

	JumpHeight float64 // Current height above the standing position
	Jumping    bool
	ascending  bool
	JumpCount  int

	Sliding    bool
	slideTicks int // Steps until automatic slide-end, 0 = wait for input

	Shield         bool
	Boost          bool
	ShieldTimer    int
	ShieldDuration int
	Fade           BlinkState

	SpeedBeforeBoost float64

	Dead bool
}

// newPlayer creates the player for a config.
func newPlayer(cfg *config.RunnerConfig) *Player {
	p := &Player{}
	p.reset(cfg)
	return p
}

// reset puts the player back at the start position with no buffs.
func (p *Player) reset(cfg *config.RunnerConfig) {
	*p = Player{
		X:      cfg.Player.X,
		Y:      cfg.Canvas.GroundY() - cfg.Player.Height,
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
		Sprite: "run",
		Fade:   BlinkState{Visible: true},
	}
}

// Top returns the jump-adjusted top edge.
func (p *Player) Top() float64 {
	return p.Y - p.JumpHeight
}

// Bottom returns the jump-adjusted bottom edge.
func (p *Player) Bottom() float64 {
	return p.Top() + p.Height
}

// Center returns the jump-adjusted centre point.
func (p *Player) Center() core.Vec {
	return core.Vec{X: p.X + p.Width/2, Y: p.Top() + p.Height/2}
}

// BeginJump starts (or chains) a jump. Suppressed while sliding or once
// maxJumps jumps are in progress.
func (p *Player) BeginJump(maxJumps int) bool {
	if p.Sliding || p.JumpCount >= maxJumps {
		return false
	}
	p.Jumping = true
	p.ascending = true
	p.JumpCount++
	p.Sprite = "jump"
	return true
}

// EndJump stops the ascent; the player starts falling.
func (p *Player) EndJump() {
	p.ascending = false
}

// BeginSlide ducks the player. Suppressed while jumping.
func (p *Player) BeginSlide(ticks int) bool {
	if p.Jumping || p.Sliding {
		return false
	}
	p.Sliding = true
	p.slideTicks = ticks
	p.Sprite = "slide"
	return true
}

// EndSlide stands the player back up.
func (p *Player) EndSlide() {
	if !p.Sliding {
		return
	}
	p.Sliding = false
	p.slideTicks = 0
	p.Sprite = "run"
}

// advanceJump applies one step of jump motion.
func (p *Player) advanceJump(ph config.PhysicsConfig) {
	if !p.Jumping {
		return
	}

	if p.ascending {
		p.JumpHeight += ph.JumpSpeed
		if p.JumpHeight >= ph.MaxJumpHeight {
			p.JumpHeight = ph.MaxJumpHeight
			p.ascending = false
		}
		return
	}

	p.JumpHeight -= ph.FallSpeed
	if p.JumpHeight <= 0 {
		p.JumpHeight = 0
		p.Jumping = false
		p.JumpCount = 0
		p.Sprite = "run"
	}
}

// advanceSlide counts down an automatic slide.
func (p *Player) advanceSlide() {
	if !p.Sliding || p.slideTicks <= 0 {
		return
	}
	p.slideTicks--
	if p.slideTicks == 0 {
		p.EndSlide()
	}
}

// move applies latched horizontal input, keeping the player in the left
// half of the canvas.
func (p *Player) move(left, right bool, step, canvasW float64) {
	if left {
		p.X -= step
	}
	if right {
		p.X += step
	}
	p.X = core.ClampF(p.X, 0, canvasW/2-p.Width)
}

// GrantShield starts (or restarts) the shield buff.
func (p *Player) GrantShield(duration int) {
	p.Shield = true
	p.ShieldTimer = 0
	p.ShieldDuration = duration
	p.Fade.Cancel()
}

// GrantBoost starts the booster buff and returns the boosted speed.
// The booster carries a shield for its duration.
func (p *Player) GrantBoost(duration int, speed, multiplier float64) float64 {
	if !p.Boost {
		p.SpeedBeforeBoost = speed
		speed *= multiplier
	}
	p.Boost = true
	p.GrantShield(duration)
	return speed
}

// tickShield advances the shield timer and its fade. It returns true on
// the step the shield switches off.
func (p *Player) tickShield(b config.BuffConfig) bool {
	if !p.Shield {
		return false
	}

	if p.Fade.Active() {
		if p.Fade.Advance() {
			return false
		}
		p.Shield = false
		return true
	}

	p.ShieldTimer++
	if p.ShieldTimer >= p.ShieldDuration {
		if b.FadeTicks <= 0 {
			p.Shield = false
			return true
		}
		p.Fade = NewBlink(b.FadeTicks, b.BlinkEvery)
	}
	return false
}

// ShieldVisible reports whether the shield aura should be drawn this step.
func (p *Player) ShieldVisible() bool {
	return p.Shield && p.Fade.Visible
}
