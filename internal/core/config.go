package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the coarse state of a run.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting for the player to start
	PhaseRunning               // Simulation advancing
	PhasePaused                // Frozen until pause is toggled again
	PhaseGameOver              // Player died; death sequence and persistence
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a run.
// Returned by Step so the platform can react without reaching into the game.
type GameState struct {
	Phase    Phase
	Score    int  // Current score (whole points)
	Coins    int  // Coins collected this run
	GameOver bool // Whether the player has died
	Paused   bool // Whether the game is paused
	Ready    bool // Game over sequence finished; replay is accepted
}

// RunResult summarises a finished run for persistence.
type RunResult struct {
	Score    int
	Coins    int
	Steps    int     // Simulation steps survived
	TopSpeed float64 // Scroll speed at death
}
