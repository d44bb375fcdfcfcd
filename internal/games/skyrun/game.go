package skyrun

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyrun/internal/config"
	"github.com/vovakirdan/skyrun/internal/core"
)

// Game wires a Loop to the built-in collaborators and exposes it to the
// platform layer.
type Game struct {
	cfg      config.RunnerConfig
	recorder Recorder
	logger   *log.Logger
	runtime  core.RuntimeConfig

	loop      *Loop
	particles *ParticleSystem
	shaker    *Shaker
	powerUps  *PowerUpManager
	backdrop  *Backdrop
}

// New creates a game. recorder and logger may be nil.
func New(cfg config.RunnerConfig, recorder Recorder, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:       cfg,
		recorder:  recorder,
		logger:    logger,
		runtime:   core.DefaultConfig(),
		particles: NewParticleSystem(256),
		shaker:    &Shaker{},
		powerUps:  NewPowerUpManager(cfg.PowerUps),
		backdrop:  NewBackdrop(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skyrun"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "SkyRun"
}

// Reset builds a fresh loop seeded from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	opts := []Option{
		WithParticles(g.particles),
		WithShaker(g.shaker),
		WithPowerUps(g.powerUps),
		WithBackground(g.backdrop),
		WithLogger(g.logger),
		WithTickRate(runtime.TickRate),
	}
	if g.recorder != nil {
		opts = append(opts, WithRecorder(g.recorder))
	}

	g.loop = NewLoop(&g.cfg, NewDice(runtime.Seed), opts...)
	g.loop.Reset()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.GameState {
	if g.loop == nil {
		g.Reset(g.runtime)
	}
	return g.loop.Step(in)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.loop == nil {
		return core.GameState{}
	}
	return g.loop.State()
}

// Loop exposes the underlying loop.
func (g *Game) Loop() *Loop {
	return g.loop
}

// PowerUps exposes the power-up manager for the HUD.
func (g *Game) PowerUps() *PowerUpManager {
	return g.powerUps
}

var _ core.Game = (*Game)(nil)
