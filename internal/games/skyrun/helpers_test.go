package skyrun

import (
	"testing"

	"github.com/vovakirdan/skyrun/internal/config"
	"github.com/vovakirdan/skyrun/internal/core"
)

// scriptedDice returns queued values in order, then the lower bound.
type scriptedDice struct {
	values []int
	calls  int
}

func dice(values ...int) *scriptedDice {
	return &scriptedDice{values: values}
}

func (d *scriptedDice) RandomInteger(min, _ float64) int {
	d.calls++
	if len(d.values) == 0 {
		return int(min)
	}
	v := d.values[0]
	d.values = d.values[1:]
	return v
}

type fakePowerUps struct {
	invincible bool
	magnet     bool
	rain       bool
	mult       float64
	factor     float64
	activated  []Kind
	updates    int
	resets     int
}

func (f *fakePowerUps) Activate(k Kind) { f.activated = append(f.activated, k) }
func (f *fakePowerUps) Update() { f.updates++ }
func (f *fakePowerUps) Reset() { f.resets++ }
func (f *fakePowerUps) IsInvincible() bool { return f.invincible }
func (f *fakePowerUps) IsMagnetActive() bool { return f.magnet }
func (f *fakePowerUps) CoinRainActive() bool { return f.rain }

func (f *fakePowerUps) ScoreMultiplier() float64 {
	if f.mult == 0 {
		return 1
	}
	return f.mult
}

func (f *fakePowerUps) SpeedFactor() float64 {
	if f.factor == 0 {
		return 1
	}
	return f.factor
}

type fakeRecorder struct {
	deaths int
	runs   []core.RunResult
	high   int
}

func (r *fakeRecorder) RecordDeath() error {
	r.deaths++
	return nil
}

func (r *fakeRecorder) SaveRun(run core.RunResult) (bool, error) {
	r.runs = append(r.runs, run)
	if run.Score > r.high {
		r.high = run.Score
		return true, nil
	}
	return false, nil
}

func (r *fakeRecorder) HighScore() (int, error) {
	return r.high, nil
}

// fixedConfig is the default config without acceleration.
func fixedConfig() *config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	config.ApplyPreset(&cfg, config.DifficultyFixed)
	return &cfg
}

// runningLoop returns a loop that has left the Idle phase. With no dice
// values queued the spawn roll always fails, so the field stays empty.
func runningLoop(t *testing.T, cfg *config.RunnerConfig, opts ...Option) *Loop {
	t.Helper()
	l := NewLoop(cfg, dice(), opts...)
	l.Step(core.InputOf(core.ActionConfirm))
	if l.Session().Phase != core.PhaseRunning {
		t.Fatalf("expected running phase, got %s", l.Session().Phase)
	}
	return l
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

// place puts an object straight into the session.
func place(l *Loop, kind Kind, x, y, sizeCoef float64) *GameObject {
	o := &GameObject{
		Kind:     kind,
		X:        x,
		Y:        y,
		Width:    l.cfg.Obstacles.BarrierWidth,
		Height:   l.cfg.Obstacles.BarrierHeight,
		SizeCoef: sizeCoef,
		Sprite:   "crate",
	}
	l.Session().Objects.Push(o)
	return o
}
