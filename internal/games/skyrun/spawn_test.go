package skyrun

import (
	"math"
	"testing"
)

func newSpawnSession(t *testing.T, values ...int) (*Spawner, *GameSession, *scriptedDice) {
	t.Helper()
	cfg := fixedConfig()
	d := dice(values...)
	return NewSpawner(cfg, d), newSession(cfg, 0), d
}

func TestSpawnArchetypeEightShield(t *testing.T) {
	// roll 11 > speed 10, archetype 8, shield roll 71, first y candidate
	sp, s, d := newSpawnSession(t, 11, 8, 71, 1)

	o := sp.Spawn(s)
	if o == nil {
		t.Fatal("expected a spawn")
	}
	if o.Kind != KindShield {
		t.Fatalf("kind = %s, want shield", o.Kind)
	}
	if o.SizeCoef != 0.5 {
		t.Errorf("sizeCoef = %v, want 0.5", o.SizeCoef)
	}
	if o.Y != 340 && o.Y != 480 {
		t.Errorf("y = %v, want one of the two candidates", o.Y)
	}
	if o.Y != 340 {
		t.Errorf("y pick 1 should choose groundY-200, got %v", o.Y)
	}
	if want := 4 * 1200 / 3.1; math.Abs(o.X-want) > 1e-9 {
		t.Errorf("x = %v, want %v", o.X, want)
	}
	if s.Objects.Len() != 1 {
		t.Errorf("queue length = %d, want 1", s.Objects.Len())
	}
	if d.calls != 4 {
		t.Errorf("dice calls = %d, want 4", d.calls)
	}
}

func TestSpawnArchetypeEightSecondCandidate(t *testing.T) {
	sp, s, _ := newSpawnSession(t, 11, 8, 71, 2)
	o := sp.Spawn(s)
	if o == nil || o.Y != 480 {
		t.Fatalf("expected shield at groundY-60, got %+v", o)
	}
}

func TestSpawnArchetypeEightBooster(t *testing.T) {
	sp, s, _ := newSpawnSession(t, 11, 8, 70, 71, 1)
	o := sp.Spawn(s)
	if o == nil || o.Kind != KindBooster {
		t.Fatalf("expected booster, got %+v", o)
	}
}

func TestSpawnArchetypeEightPowerUp(t *testing.T) {
	// shield and booster fail, power-up passes, kind 3 = invincibility
	sp, s, _ := newSpawnSession(t, 11, 8, 1, 1, 86, 3, 2)
	o := sp.Spawn(s)
	if o == nil || o.Kind != KindInvincibility {
		t.Fatalf("expected invincibility, got %+v", o)
	}
	if o.Y != 480 {
		t.Errorf("y = %v, want 480", o.Y)
	}
	if o.Sprite != "star" {
		t.Errorf("sprite = %q, want star", o.Sprite)
	}
}

func TestSpawnArchetypeEightFallsBackToCrate(t *testing.T) {
	// all pickup rolls fail, coin roll fails
	sp, s, _ := newSpawnSession(t, 11, 8, 1, 1, 1, 1)
	o := sp.Spawn(s)
	if o == nil || o.Kind != KindBarrier {
		t.Fatalf("expected barrier, got %+v", o)
	}
	if o.Y != 440 {
		t.Errorf("crate y = %v, want 440", o.Y)
	}
	if s.Objects.Len() != 1 {
		t.Errorf("queue length = %d, want 1", s.Objects.Len())
	}
}

func TestSpawnRollMustExceedSpeed(t *testing.T) {
	sp, s, _ := newSpawnSession(t, 10)
	if o := sp.Spawn(s); o != nil {
		t.Fatalf("roll equal to speed must not spawn, got %+v", o)
	}
	if s.Objects.Len() != 0 {
		t.Error("queue should be empty")
	}
}

func TestSpawnWaitsForGap(t *testing.T) {
	sp, s, _ := newSpawnSession(t, 11, 11, 1)
	s.Objects.Push(&GameObject{X: 1150, Width: 100, Height: 100, SizeCoef: 1})

	if o := sp.Spawn(s); o != nil {
		t.Fatal("spawn must wait until the last object leaves a gap")
	}

	s.Objects.Last().X = 1099
	if o := sp.Spawn(s); o == nil {
		t.Fatal("spawn expected once the gap opened")
	}
}

func TestSpawnCeilingArchetype(t *testing.T) {
	sp, s, _ := newSpawnSession(t, 1)
	o := sp.SpawnArchetype(s, 5)

	if !o.TopBarrier {
		t.Fatal("lamp must be a ceiling obstacle")
	}
	// underside at groundY - 0.75 * player height
	if got := o.Y + o.H(); got != 450 {
		t.Errorf("underside = %v, want 450", got)
	}
}

func TestSpawnLevitatingArchetype(t *testing.T) {
	sp, s, _ := newSpawnSession(t, 1)
	o := sp.SpawnArchetype(s, 6)
	if !o.Levitate || o.BaseY != o.Y {
		t.Fatalf("drone should levitate around its spawn y: %+v", o)
	}
}

func TestSpawnAttachesCoin(t *testing.T) {
	// coin roll 51 passes, position 2 = on the ground ahead
	sp, s, _ := newSpawnSession(t, 51, 2)
	o := sp.SpawnArchetype(s, 1)

	if s.Objects.Len() != 2 {
		t.Fatalf("queue length = %d, want 2", s.Objects.Len())
	}
	coin := s.Objects.Last()
	if coin.Kind != KindCoin {
		t.Fatalf("last kind = %s, want coin", coin.Kind)
	}
	if coin.X != o.X+300 {
		t.Errorf("coin x = %v, want %v", coin.X, o.X+300)
	}
	if coin.Y != 470 {
		t.Errorf("coin y = %v, want 470", coin.Y)
	}
	if coin.ID <= o.ID {
		t.Error("coin must be spawned after its obstacle")
	}
}

func TestSpawnRainCoin(t *testing.T) {
	sp, s, _ := newSpawnSession(t, 900)
	o := sp.SpawnRainCoin(s)
	if !o.RainFall || o.Kind != KindCoin {
		t.Fatalf("expected falling coin, got %+v", o)
	}
	if o.X != 900 || o.Y >= 0 {
		t.Errorf("rain coin should start above the canvas at x=900, got (%v, %v)", o.X, o.Y)
	}
}

func TestSpawnGapIgnoresRainCoins(t *testing.T) {
	// crate without coin, rain x=500, blocked roll, then a lamp without coin
	sp, s, _ := newSpawnSession(t, 11, 1, 1, 500, 11, 11, 5, 1)

	crate := sp.Spawn(s)
	if crate == nil {
		t.Fatal("expected the first obstacle")
	}
	crate.X = 1348

	rain := sp.SpawnRainCoin(s)
	if s.Objects.Last() != rain || rain.X != 500 {
		t.Fatalf("rain coin should be the newest object at x=500, got %+v", s.Objects.Last())
	}

	if o := sp.Spawn(s); o != nil {
		t.Fatalf("obstacle spawned %vpx behind the crate", o.X-crate.X)
	}

	crate.X = 1099
	if o := sp.Spawn(s); o == nil {
		t.Fatal("spawn expected once the crate left a gap")
	}
}
