package skyrun

import (
	"math"
	"testing"
)

func testMotion() motion {
	cfg := fixedConfig()
	return motion{
		speed:     cfg.Physics.InitialSpeed,
		rainSpeed: cfg.Pickups.RainSpeed,
		canvasW:   cfg.Canvas.Width,
		canvasH:   cfg.Canvas.Height,
		obstacles: cfg.Obstacles,
	}
}

func testObject(x, y float64) *GameObject {
	return &GameObject{X: x, Y: y, Width: 100, Height: 100, SizeCoef: 1}
}

// stepsUntilDead advances o with step numbers as ticks and returns the
// step on which it died, or 0 if it survived limit steps.
func stepsUntilDead(o *GameObject, m motion, limit int) int {
	for step := 1; step <= limit; step++ {
		o.advance(m, step)
		if o.Dead {
			return step
		}
	}
	return 0
}

func TestKickedObjectAccelerates(t *testing.T) {
	m := testMotion()
	o := testObject(200, 440)
	o.Kick(10)

	o.advance(m, 1)
	if o.X != 210 || o.Y != 435 {
		t.Fatalf("after step 1 at (%v, %v), want (210, 435)", o.X, o.Y)
	}
	o.advance(m, 2)
	if o.X != 221.5 || o.Y != 429.25 {
		t.Fatalf("after step 2 at (%v, %v), want (221.5, 429.25)", o.X, o.Y)
	}
}

func TestKickedObjectDiesPastRightEdge(t *testing.T) {
	m := testMotion()
	o := testObject(200, 440)
	o.Kick(10)

	// x passes W + 5*barrierWidth = 1700 once 10n + 0.75n(n-1) > 1500
	if step := stepsUntilDead(o, m, 200); step != 39 {
		t.Fatalf("died at step %d, want 39", step)
	}
	if o.X != 1701.5 {
		t.Errorf("x = %v, want 1701.5", o.X)
	}
}

func TestKickedObjectDiesAboveCanvas(t *testing.T) {
	m := testMotion()
	o := testObject(0, -400)
	o.Kick(10)

	// y drops below -500 once half the travelled distance exceeds 100
	if step := stepsUntilDead(o, m, 200); step != 12 {
		t.Fatalf("died at step %d, want 12", step)
	}
	if o.Y >= -500 || o.X > 1700 {
		t.Errorf("expected the height limit to trigger, at (%v, %v)", o.X, o.Y)
	}
}

func TestCeilingObstacleLeavesLaterThanFloor(t *testing.T) {
	m := testMotion()

	floor := testObject(0, 440)
	if step := stepsUntilDead(floor, m, 200); step != 16 {
		t.Fatalf("floor obstacle died at step %d, want 16", step)
	}

	lamp := testObject(0, 350)
	lamp.TopBarrier = true
	if step := stepsUntilDead(lamp, m, 200); step != 51 {
		t.Fatalf("ceiling obstacle died at step %d, want 51", step)
	}
	if lamp.X != -510 {
		t.Errorf("x = %v, want -510", lamp.X)
	}
}

func TestLevitatingObjectBobsAroundBase(t *testing.T) {
	m := testMotion()
	o := testObject(1000, 300)
	o.Levitate = true
	o.BaseY = 300

	for step := 1; step <= 60; step++ {
		o.advance(m, step)
		want := 300 + 12*math.Sin(0.05*float64(step))
		if math.Abs(o.Y-want) > 1e-9 {
			t.Fatalf("step %d: y = %v, want %v", step, o.Y, want)
		}
		if o.Y < 288 || o.Y > 312 {
			t.Fatalf("step %d: y = %v left the bob range", step, o.Y)
		}
	}
	if o.X != 400 {
		t.Errorf("levitating object should still scroll, x = %v", o.X)
	}
}

func TestRainCoinDiesBelowCanvas(t *testing.T) {
	m := testMotion()
	o := testObject(900, -30)
	o.SizeCoef = 0.3
	o.Kind = KindCoin
	o.RainFall = true

	// y passes the canvas height of 600 once -30 + 6n > 600
	if step := stepsUntilDead(o, m, 500); step != 106 {
		t.Fatalf("died at step %d, want 106", step)
	}
	if o.X != 264 || o.Y != 606 {
		t.Errorf("rain coin at (%v, %v), want (264, 606)", o.X, o.Y)
	}
}
