package core

// Game is what the platform layer drives.
// Implementations contain pure logic with no Bubble Tea dependency; the
// platform handles input mapping, timing and rendering.
type Game interface {
	// ID returns a short identifier used for file names.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts over with the given screen size and seed.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) GameState

	// Render draws the current state into dst.
	Render(dst *Screen)

	// State returns the current state without advancing.
	State() GameState
}
