package skyrun

import "github.com/vovakirdan/skyrun/internal/core"

// Autopilot chooses input for headless runs: jump floor obstacles, slide
// under ceiling ones, start the run when idle.
// It only looks at the nearest obstacle ahead and makes no attempt at
// routing for coins.
type Autopilot struct {
	JumpLead  float64 // Steps ahead of a floor obstacle to jump
	SlideLead float64 // Steps ahead of a ceiling obstacle to slide
}

// NewAutopilot returns an autopilot with leads tuned for the default config.
func NewAutopilot() *Autopilot {
	return &Autopilot{JumpLead: 8, SlideLead: 3}
}

// Next returns the input for the coming step.
func (a *Autopilot) Next(s *GameSession) core.InputFrame {
	switch s.Phase {
	case core.PhaseIdle:
		return core.InputOf(core.ActionJump)
	case core.PhaseGameOver, core.PhasePaused:
		return core.NewInputFrame()
	}

	p := s.Player
	front := p.X + p.Width

	var next *GameObject
	for _, o := range s.Objects.All() {
		if !o.Interactive() || o.Kind != KindBarrier || o.X+o.W() < p.X {
			continue
		}
		if next == nil || o.X < next.X {
			next = o
		}
	}
	if next == nil || p.Shield {
		return core.NewInputFrame()
	}

	gap := next.X - front
	if next.TopBarrier {
		if gap <= s.Speed*a.SlideLead && !p.Sliding && !p.Jumping {
			return core.InputOf(core.ActionDuck)
		}
		return core.NewInputFrame()
	}
	if gap <= s.Speed*a.JumpLead && !p.Jumping && !p.Sliding {
		return core.InputOf(core.ActionJump)
	}
	return core.NewInputFrame()
}
