package skyrun

import "testing"

func TestPlayerJumpArc(t *testing.T) {
	cfg := fixedConfig()
	p := newPlayer(cfg)

	if !p.BeginJump(cfg.Physics.MaxJumps) {
		t.Fatal("jump should start")
	}

	peak := 0.0
	steps := 0
	for p.Jumping {
		p.advanceJump(cfg.Physics)
		if p.JumpHeight > peak {
			peak = p.JumpHeight
		}
		steps++
		if steps > 500 {
			t.Fatal("jump never landed")
		}
	}
	if peak != cfg.Physics.MaxJumpHeight {
		t.Errorf("peak = %v, want %v", peak, cfg.Physics.MaxJumpHeight)
	}
	if p.JumpHeight != 0 || p.JumpCount != 0 {
		t.Errorf("landing should reset height and count: %v %d", p.JumpHeight, p.JumpCount)
	}
}

func TestPlayerEndJumpStartsFall(t *testing.T) {
	cfg := fixedConfig()
	p := newPlayer(cfg)
	p.BeginJump(2)
	p.advanceJump(cfg.Physics)
	p.advanceJump(cfg.Physics)
	p.EndJump()

	h := p.JumpHeight
	p.advanceJump(cfg.Physics)
	if p.JumpHeight >= h {
		t.Fatalf("height %v should fall below %v", p.JumpHeight, h)
	}
}

func TestPlayerDoubleJumpLimit(t *testing.T) {
	p := newPlayer(fixedConfig())
	if !p.BeginJump(2) || !p.BeginJump(2) {
		t.Fatal("two jumps should be allowed")
	}
	if p.BeginJump(2) {
		t.Fatal("third jump should be refused")
	}
}

func TestPlayerSlideSuppressesJump(t *testing.T) {
	p := newPlayer(fixedConfig())
	if !p.BeginSlide(36) {
		t.Fatal("slide should start")
	}
	if p.BeginJump(2) {
		t.Fatal("jump must be suppressed while sliding")
	}

	p.EndSlide()
	if !p.BeginJump(2) {
		t.Fatal("jump should work after the slide ends")
	}
	if p.BeginSlide(36) {
		t.Fatal("slide must be suppressed while jumping")
	}
}

func TestPlayerSlideTimesOut(t *testing.T) {
	p := newPlayer(fixedConfig())
	p.BeginSlide(3)
	p.advanceSlide()
	p.advanceSlide()
	if !p.Sliding {
		t.Fatal("slide ended early")
	}
	p.advanceSlide()
	if p.Sliding {
		t.Fatal("slide should end after its duration")
	}
}

func TestPlayerMoveClamped(t *testing.T) {
	p := newPlayer(fixedConfig())
	for i := 0; i < 200; i++ {
		p.move(false, true, 8, 1200)
	}
	if p.X != 600-p.Width {
		t.Errorf("x = %v, want %v", p.X, 600-p.Width)
	}
	for i := 0; i < 200; i++ {
		p.move(true, false, 8, 1200)
	}
	if p.X != 0 {
		t.Errorf("x = %v, want 0", p.X)
	}
}

func TestBlinkTogglesAndEndsVisible(t *testing.T) {
	b := NewBlink(12, 3)
	toggles := 0
	last := b.Visible
	for b.Advance() {
		if b.Visible != last {
			toggles++
			last = b.Visible
		}
	}
	if toggles < 3 {
		t.Errorf("toggles = %d, want at least 3", toggles)
	}
	if !b.Visible || b.Active() {
		t.Error("finished blink should be visible and inactive")
	}
}

func TestBlinkCancel(t *testing.T) {
	b := NewBlink(10, 1)
	b.Advance()
	b.Cancel()
	if b.Active() || !b.Visible {
		t.Fatal("cancelled blink should be inactive and visible")
	}
}
