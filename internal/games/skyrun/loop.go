package skyrun

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyrun/internal/config"
	"github.com/vovakirdan/skyrun/internal/core"
)

// Loop drives a GameSession one fixed step at a time.
// It never fails: collaborator errors are logged and the run continues.
type Loop struct {
	cfg      *config.RunnerConfig
	spawner  *Spawner
	session  *GameSession
	tickRate int

	particles  ParticleSink
	shaker     ScreenShaker
	powerUps   PowerUps
	background BackgroundUpdater
	recorder   Recorder

	logger *log.Logger
}

// Option configures optional collaborators of a Loop.
type Option func(*Loop)

// WithParticles attaches a particle sink.
func WithParticles(p ParticleSink) Option {
	return func(l *Loop) { l.particles = p }
}

// WithShaker attaches a screen shaker.
func WithShaker(s ScreenShaker) Option {
	return func(l *Loop) { l.shaker = s }
}

// WithPowerUps attaches the power-up tracker.
func WithPowerUps(p PowerUps) Option {
	return func(l *Loop) { l.powerUps = p }
}

// WithBackground attaches a background updater.
func WithBackground(b BackgroundUpdater) Option {
	return func(l *Loop) { l.background = b }
}

// WithRecorder attaches persistent storage for run results.
func WithRecorder(r Recorder) Option {
	return func(l *Loop) { l.recorder = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithTickRate sets the steps per second used to time the death sequence.
func WithTickRate(rate int) Option {
	return func(l *Loop) {
		if rate > 0 {
			l.tickRate = rate
		}
	}
}

// NewLoop creates a loop in the Idle phase.
func NewLoop(cfg *config.RunnerConfig, dice Dice, opts ...Option) *Loop {
	l := &Loop{
		cfg:      cfg,
		spawner:  NewSpawner(cfg, dice),
		tickRate: 60,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}

	highScore := 0
	if l.recorder != nil {
		hs, err := l.recorder.HighScore()
		if err != nil {
			l.logger.Warn("load high score", "err", err)
		} else {
			highScore = hs
		}
	}
	l.session = newSession(cfg, highScore)
	return l
}

// Session returns the current session.
func (l *Loop) Session() *GameSession {
	return l.session
}

// Config returns the runner configuration.
func (l *Loop) Config() *config.RunnerConfig {
	return l.cfg
}

// Spawner returns the spawner, for scripted setups.
func (l *Loop) Spawner() *Spawner {
	return l.spawner
}

// resetter is implemented by collaborators that hold per-run state.
type resetter interface {
	Reset()
}

// Reset starts a fresh Idle session. Buffs, blinks and the death
// sequence of the previous run are cancelled.
func (l *Loop) Reset() {
	high := l.session.HighScore
	if l.session.WholeScore() > high {
		high = l.session.WholeScore()
	}

	l.session.Player.Fade.Cancel()
	l.session.Death.Cancel()
	l.session.Objects.Clear()

	l.session = newSession(l.cfg, high)
	l.spawner.reset()

	if l.powerUps != nil {
		l.powerUps.Reset()
	}
	for _, c := range []any{l.particles, l.shaker, l.background} {
		if r, ok := c.(resetter); ok {
			r.Reset()
		}
	}
}

// State reports the coarse state of the run.
func (l *Loop) State() core.GameState {
	s := l.session
	return core.GameState{
		Phase:    s.Phase,
		Score:    s.WholeScore(),
		Coins:    s.Coins,
		GameOver: s.Phase == core.PhaseGameOver,
		Paused:   s.Phase == core.PhasePaused,
		Ready:    s.Ready,
	}
}

// Step advances the session by one fixed step.
func (l *Loop) Step(in core.InputFrame) core.GameState {
	s := l.session

	switch s.Phase {
	case core.PhaseIdle:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			s.Phase = core.PhaseRunning
			l.logger.Info("run started", "speed", s.Speed)
		}
		return l.State()

	case core.PhasePaused:
		if in.Has(core.ActionPause) {
			s.Phase = core.PhaseRunning
		}
		return l.State()

	case core.PhaseGameOver:
		l.stepGameOver(in)
		return l.State()
	}

	if in.Has(core.ActionPause) {
		s.Phase = core.PhasePaused
		return l.State()
	}

	l.applyInput(in)
	l.simulate()
	return l.State()
}

// applyInput turns this step's actions into player state.
func (l *Loop) applyInput(in core.InputFrame) {
	s, p := l.session, l.session.Player

	if in.Has(core.ActionJump) {
		p.BeginJump(l.cfg.Physics.MaxJumps)
	}
	if in.Has(core.ActionJumpEnd) {
		p.EndJump()
	}
	if in.Has(core.ActionDuck) {
		p.BeginSlide(l.cfg.Physics.SlideTicks)
	}
	if in.Has(core.ActionDuckEnd) {
		p.EndSlide()
	}

	s.leftPressed = in.Has(core.ActionLeft)
	s.rightPressed = in.Has(core.ActionRight)
}

// simulate runs one Running step. The order of the numbered stages is
// fixed: later stages read what earlier ones wrote.
func (l *Loop) simulate() {
	s, p, cfg := l.session, l.session.Player, l.cfg
	s.Tick++

	speed := s.Speed
	if l.powerUps != nil {
		speed *= l.powerUps.SpeedFactor()
	}

	// 1. Background parallax
	for i := range s.Background {
		s.Background[i].Scroll(speed)
	}

	// 2. Spawning
	if o := l.spawner.Spawn(s); o != nil {
		l.logger.Debug("spawned", "id", o.ID, "kind", o.Kind, "archetype", o.Archetype)
	}
	l.rainCoins()

	// 3. Foreground parallax
	for i := range s.Foreground {
		s.Foreground[i].Scroll(speed)
	}

	// 4. Object motion
	m := motion{
		speed:     speed,
		rainSpeed: cfg.Pickups.RainSpeed,
		canvasW:   cfg.Canvas.Width,
		canvasH:   cfg.Canvas.Height,
		obstacles: cfg.Obstacles,
	}
	for _, o := range s.Objects.All() {
		o.advance(m, s.Tick)
	}

	// 5. Eviction
	s.Objects.Evict(s.Tick)

	// 6. Magnet and collisions
	l.collide()

	// 7. Collaborators and buff timers
	l.updateCollaborators()

	// 8. Jump and slide
	p.advanceJump(cfg.Physics)
	p.advanceSlide()

	// 9. Death
	if p.Dead {
		l.die()
		return
	}

	// 10. Acceleration
	s.Speed += cfg.Physics.SpeedIncrement
	if s.Speed > s.TopSpeed {
		s.TopSpeed = s.Speed
	}

	// 11. Horizontal movement and score
	p.move(s.leftPressed, s.rightPressed, cfg.Physics.MoveSpeed, cfg.Canvas.Width)
	mult := 1.0
	if l.powerUps != nil {
		mult = l.powerUps.ScoreMultiplier()
	}
	s.Score += cfg.Scoring.PerStep * mult
}

// rainCoins drops a coin every RainInterval steps while coin rain runs.
func (l *Loop) rainCoins() {
	s := l.session
	if l.powerUps == nil || !l.powerUps.CoinRainActive() {
		s.rainCounter = 0
		return
	}
	s.rainCounter++
	if s.rainCounter >= l.cfg.Pickups.RainInterval {
		s.rainCounter = 0
		l.spawner.SpawnRainCoin(s)
	}
}

// collide applies the magnet and resolves every collision for this step.
func (l *Loop) collide() {
	s, p := l.session, l.session.Player
	magnet := l.powerUps != nil && l.powerUps.IsMagnetActive()
	pk := l.cfg.Pickups

	for _, o := range s.Objects.All() {
		if !o.Interactive() {
			continue
		}
		if magnet && o.Kind == KindCoin {
			Attract(o, p.X, p.Top(), pk.MagnetRadius, pk.MagnetPull)
		}
		if Collide(p, o) {
			l.hit(o)
		}
	}
}

// hit applies the outcome of the player touching o.
func (l *Loop) hit(o *GameObject) {
	s, p, b := l.session, l.session.Player, l.cfg.Buffs
	at := core.Vec{X: o.X + o.W()/2, Y: o.Y + o.H()/2}

	if p.Shield {
		if o.Kind == KindCoin && !o.Kicked {
			s.Coins++
			l.emit(ParticleCoin, at)
		}
		o.Kick(s.Speed)
		l.emit(ParticleKick, at)
		if l.shaker != nil && o.Kind == KindBarrier {
			l.shaker.Shake(1, 6)
		}
		return
	}

	switch {
	case o.Kind == KindShield:
		p.GrantShield(b.ShieldLevel * b.TicksPerLevel)
		o.Consumed = true
		l.logger.Debug("shield picked up", "ticks", p.ShieldDuration)

	case o.Kind == KindBooster:
		s.Speed = p.GrantBoost(b.BoosterLevel*b.TicksPerLevel, s.Speed, b.BoostMultiplier)
		o.Consumed = true
		l.logger.Debug("booster picked up", "speed", s.Speed)

	case o.Kind.IsPowerUp():
		if l.powerUps != nil {
			l.powerUps.Activate(o.Kind)
		}
		o.Consumed = true
		l.emit(ParticlePowerUp, at)
		l.logger.Debug("power-up picked up", "kind", o.Kind)

	case o.Kind == KindCoin:
		if !o.Kicked {
			s.Coins++
		}
		o.Kick(s.Speed)
		l.emit(ParticleCoin, at)

	default:
		if l.powerUps != nil && l.powerUps.IsInvincible() {
			return
		}
		p.Dead = true
	}
}

func (l *Loop) emit(kind ParticleKind, at core.Vec) {
	if l.particles != nil {
		l.particles.Emit(kind, at)
	}
}

// updateCollaborators advances optional subsystems and the shield timer.
func (l *Loop) updateCollaborators() {
	s, p := l.session, l.session.Player

	if l.particles != nil {
		l.particles.Update()
	}
	if l.shaker != nil {
		l.shaker.Update()
	}
	if l.powerUps != nil {
		l.powerUps.Update()
	}
	if l.background != nil {
		l.background.UpdateBackground(s.Score)
	}

	if p.tickShield(l.cfg.Buffs) {
		if p.Boost {
			s.Speed = p.SpeedBeforeBoost
			p.Boost = false
		}
		l.logger.Debug("shield expired", "speed", s.Speed)
	}
}

// die moves the run into GameOver and starts the death sequence.
func (l *Loop) die() {
	s, p := l.session, l.session.Player

	if l.recorder != nil {
		if err := l.recorder.RecordDeath(); err != nil {
			l.logger.Warn("record death", "err", err)
		}
	}
	if l.shaker != nil {
		l.shaker.Shake(3, 20)
	}
	l.emit(ParticleDeath, p.Center())

	p.Sprite = "dead"
	s.Phase = core.PhaseGameOver
	s.Death.Start(l.cfg.Death, l.tickRate)
	l.logger.Info("run over", "score", s.WholeScore(), "coins", s.Coins, "steps", s.Tick)

	if !s.Death.Running() {
		l.finish()
	}
}

// stepGameOver plays the death sequence, then waits for a replay.
func (l *Loop) stepGameOver(in core.InputFrame) {
	s := l.session

	if l.particles != nil {
		l.particles.Update()
	}
	if l.shaker != nil {
		l.shaker.Update()
	}

	if s.Death.Running() {
		if !s.Death.Advance() {
			l.finish()
		}
		return
	}

	if s.Ready && in.Has(core.ActionRestart) {
		l.Reset()
	}
}

// finish persists the run and marks the session ready for replay.
func (l *Loop) finish() {
	s := l.session
	result := s.Result()

	if l.recorder != nil {
		newHigh, err := l.recorder.SaveRun(result)
		if err != nil {
			l.logger.Warn("save run", "err", err)
			newHigh = result.Score > s.HighScore
		} else {
			s.Saved = true
		}
		s.NewHigh = newHigh
	} else {
		s.NewHigh = result.Score > s.HighScore
	}

	if s.NewHigh {
		s.HighScore = result.Score
		l.logger.Info("new high score", "score", result.Score)
	}
	s.Ready = true
}
