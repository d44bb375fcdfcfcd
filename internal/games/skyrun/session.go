package skyrun

import (
	"github.com/vovakirdan/skyrun/internal/config"
	"github.com/vovakirdan/skyrun/internal/core"
)

// GameSession holds all mutable state of one run. The loop owns it and
// hands out read access for rendering.
type GameSession struct {
	Phase core.Phase
	Tick  int // Simulation steps since the run started

	Score    float64
	Coins    int
	Speed    float64
	TopSpeed float64

	Objects *ObjectQueue
	Player  *Player

	Background []Layer
	Foreground []Layer

	Death DeathSequence

	HighScore int  // Best persisted score, seeded on load
	NewHigh   bool // This run beat HighScore
	Saved     bool // Run result written to the recorder
	Ready     bool // Death sequence done; replay accepted

	leftPressed  bool
	rightPressed bool
	rainCounter  int
}

// newSession creates a fresh Idle session for cfg.
func newSession(cfg *config.RunnerConfig, highScore int) *GameSession {
	return &GameSession{
		Phase:      core.PhaseIdle,
		Speed:      cfg.Physics.InitialSpeed,
		TopSpeed:   cfg.Physics.InitialSpeed,
		Objects:    NewObjectQueue(),
		Player:     newPlayer(cfg),
		Background: newLayers(cfg.Parallax.Background, cfg.Canvas.Width),
		Foreground: newLayers(cfg.Parallax.Foreground, cfg.Canvas.Width),
		HighScore:  highScore,
	}
}

// WholeScore returns the score truncated to whole points.
func (s *GameSession) WholeScore() int {
	return int(s.Score)
}

// Result summarises the run for persistence.
func (s *GameSession) Result() core.RunResult {
	return core.RunResult{
		Score:    s.WholeScore(),
		Coins:    s.Coins,
		Steps:    s.Tick,
		TopSpeed: s.TopSpeed,
	}
}
