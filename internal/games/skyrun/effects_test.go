package skyrun

import (
	"testing"

	"github.com/vovakirdan/skyrun/internal/config"
	"github.com/vovakirdan/skyrun/internal/core"
)

func TestParticlesExpire(t *testing.T) {
	ps := NewParticleSystem(0)
	ps.Emit(ParticleCoin, core.Vec{X: 100, Y: 100})
	if n := len(ps.Particles()); n != 6 {
		t.Fatalf("particles = %d, want 6", n)
	}
	for i := 0; i < 12; i++ {
		ps.Update()
	}
	if n := len(ps.Particles()); n != 0 {
		t.Fatalf("particles = %d after their life, want 0", n)
	}
}

func TestParticlesLimit(t *testing.T) {
	ps := NewParticleSystem(10)
	ps.Emit(ParticleDeath, core.Vec{})
	if n := len(ps.Particles()); n != 10 {
		t.Fatalf("particles = %d, want limit 10", n)
	}
}

func TestShakerDecays(t *testing.T) {
	var s Shaker
	s.Shake(3, 4)
	dx, _ := s.Offset()
	if dx == 0 {
		t.Fatal("shake should offset")
	}
	for i := 0; i < 4; i++ {
		s.Update()
	}
	if s.Active() {
		t.Fatal("shake should be over")
	}
	if dx, dy := s.Offset(); dx != 0 || dy != 0 {
		t.Fatal("idle shaker must not offset")
	}
}

func TestShakerKeepsStrongerShake(t *testing.T) {
	var s Shaker
	s.Shake(3, 20)
	s.Shake(1, 6)
	if s.total != 20 {
		t.Fatal("weaker shake replaced a stronger one")
	}
}

func TestLayerWraps(t *testing.T) {
	l := Layer{Rate: 1, TileWidth: 100}
	for i := 0; i < 25; i++ {
		l.Scroll(9)
		if l.X <= -100 || l.X > 0 {
			t.Fatalf("layer x = %v out of [-100, 0)", l.X)
		}
	}
}

func TestSessionLayersFollowParallaxRates(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := newSession(&cfg, 0)
	if len(s.Background) != 3 || len(s.Foreground) != 2 {
		t.Fatalf("layers = %d/%d, want 3/2", len(s.Background), len(s.Foreground))
	}
	if s.Background[2].Rate != 1.2 || s.Foreground[0].Rate != 0.3 {
		t.Fatal("unexpected parallax rates")
	}
}

func TestBackdropPalettes(t *testing.T) {
	b := NewBackdrop()
	b.UpdateBackground(10)
	if b.Palette().Name != "dawn" {
		t.Fatalf("palette = %s, want dawn", b.Palette().Name)
	}
	b.UpdateBackground(3200)
	if b.Palette().Name != "night" || b.Changes() != 1 {
		t.Fatalf("palette = %s changes = %d", b.Palette().Name, b.Changes())
	}
}

func TestDeathSequenceFrames(t *testing.T) {
	var d DeathSequence
	d.Start([]config.DeathFrame{{Sprite: "hit", Millis: 50}, {Sprite: "ghost", Millis: 1}}, 60)

	if d.Sprite() != "hit" || !d.Running() {
		t.Fatal("sequence should start on its first frame")
	}
	// 50ms at 60/s rounds up to 3 steps, 1ms to 1 step
	if d.TotalTicks() != 4 {
		t.Fatalf("total = %d, want 4", d.TotalTicks())
	}
	d.Advance()
	d.Advance()
	d.Advance()
	if d.Sprite() != "ghost" {
		t.Fatalf("sprite = %s, want ghost", d.Sprite())
	}
	if d.Advance() {
		t.Fatal("sequence should be over")
	}
}

func TestHUDPadding(t *testing.T) {
	s := &GameSession{Score: 42.8, Coins: 7, HighScore: 10}
	if s.ScoreText() != "0042" || s.CoinText() != "007" {
		t.Fatalf("hud = %s %s", s.ScoreText(), s.CoinText())
	}
	if s.HighScoreText() != "0042" {
		t.Fatalf("high = %s, want the live score when it is higher", s.HighScoreText())
	}
}
