package skyrun

import (
	"github.com/vovakirdan/skyrun/internal/config"
)

// Spawner creates obstacles and pickups at the right edge of the canvas.
type Spawner struct {
	cfg    *config.RunnerConfig
	dice   Dice
	nextID int
}

// NewSpawner creates a spawner drawing from dice.
func NewSpawner(cfg *config.RunnerConfig, dice Dice) *Spawner {
	return &Spawner{cfg: cfg, dice: dice}
}

// SpawnX returns the x at which new obstacles appear.
func (sp *Spawner) SpawnX() float64 {
	return 4 * sp.cfg.Canvas.Width / 3.1
}

// Spawn possibly adds one obstacle (plus an optional coin) to the session.
// It returns the primary object spawned, or nil when the roll failed or the
// previous spawn has not scrolled in far enough.
func (sp *Spawner) Spawn(s *GameSession) *GameObject {
	draw := sp.dice.RandomInteger(0, s.Speed*1.1)
	if float64(draw) <= s.Speed {
		return nil
	}

	if x, ok := rightmostSpawned(s.Objects); ok && x >= sp.cfg.Canvas.Width-sp.cfg.Obstacles.SpawnGap {
		return nil
	}

	return sp.SpawnArchetype(s, sp.dice.RandomInteger(1, ArchetypeCount))
}

// rightmostSpawned returns the largest x among objects that entered from the
// right edge. Rain coins fall from above at random x and are skipped.
func rightmostSpawned(q *ObjectQueue) (float64, bool) {
	var (
		right float64
		found bool
	)
	for _, o := range q.All() {
		if o.RainFall || o.Dead {
			continue
		}
		if !found || o.X > right {
			right, found = o.X, true
		}
	}
	return right, found
}

// SpawnArchetype spawns the given archetype unconditionally.
func (sp *Spawner) SpawnArchetype(s *GameSession, n int) *GameObject {
	if n < 1 || n > ArchetypeCount {
		n = 1
	}

	x := sp.SpawnX()
	if n == ArchetypeCount {
		if o := sp.spawnSpecial(s, x); o != nil {
			return o
		}
	}

	o := sp.barrier(n, x)
	s.Objects.Push(o)
	sp.attachCoin(s, o)
	return o
}

// spawnSpecial rolls the archetype-8 pickups. The first roll that succeeds
// wins; nil means every roll failed and a plain crate should spawn.
func (sp *Spawner) spawnSpecial(s *GameSession, x float64) *GameObject {
	pk := sp.cfg.Pickups

	var kind Kind
	switch {
	case sp.dice.RandomInteger(1, 100) > 100-pk.ShieldChance:
		kind = KindShield
	case sp.dice.RandomInteger(1, 100) > 100-pk.BoosterChance:
		kind = KindBooster
	case sp.dice.RandomInteger(1, 100) > 100-pk.PowerUpChance:
		idx := sp.dice.RandomInteger(1, float64(len(powerUpKinds)))
		kind = powerUpKinds[clampIndex(idx-1, len(powerUpKinds))]
	default:
		return nil
	}

	groundY := sp.cfg.Canvas.GroundY()
	candidates := [2]float64{groundY - 200, groundY - 60}
	pick := sp.dice.RandomInteger(1, 2)

	o := sp.newObject(kind, ArchetypeCount, x, candidates[clampIndex(pick-1, 2)], pk.PickupScale)
	s.Objects.Push(o)
	return o
}

// barrier builds an obstacle for archetype n at x.
func (sp *Spawner) barrier(n int, x float64) *GameObject {
	a := archetypes[n]
	o := sp.newObject(KindBarrier, n, x, 0, a.sizeCoef)
	o.Sprite = a.sprite
	o.TopBarrier = a.ceiling

	if a.ceiling {
		// Underside sits between a standing and a sliding player's head
		underside := sp.cfg.Canvas.GroundY() - 0.75*sp.cfg.Player.Height
		o.Y = underside - o.H()
	} else {
		o.Y = sp.cfg.Canvas.GroundY() - o.H()
	}

	if a.levitate {
		o.Levitate = true
		o.BaseY = o.Y
	}
	return o
}

// attachCoin places a coin next to obstacle o with CoinChance percent.
func (sp *Spawner) attachCoin(s *GameSession, o *GameObject) {
	pk := sp.cfg.Pickups
	if sp.dice.RandomInteger(1, 100) <= 100-pk.CoinChance {
		return
	}

	coinSize := sp.cfg.Obstacles.BarrierWidth * pk.CoinScale
	groundCoinY := sp.cfg.Canvas.GroundY() - coinSize - 40

	var x, y float64
	if sp.dice.RandomInteger(1, 2) == 1 {
		// Over a floor obstacle, under a ceiling one
		x = o.X + o.W()/2 - coinSize/2
		y = o.Y - 90
		if o.TopBarrier {
			y = groundCoinY
		}
	} else {
		// On the ground a few barrier widths ahead
		x = o.X + 3*sp.cfg.Obstacles.BarrierWidth
		y = groundCoinY
	}

	s.Objects.Push(sp.newObject(KindCoin, o.Archetype, x, y, pk.CoinScale))
}

// SpawnRainCoin drops a coin from above the canvas at a random x.
func (sp *Spawner) SpawnRainCoin(s *GameSession) *GameObject {
	w := sp.cfg.Canvas.Width
	x := float64(sp.dice.RandomInteger(w/3, w))
	o := sp.newObject(KindCoin, 0, x, -sp.cfg.Obstacles.BarrierWidth*sp.cfg.Pickups.CoinScale, sp.cfg.Pickups.CoinScale)
	o.RainFall = true
	s.Objects.Push(o)
	return o
}

// newObject allocates an object with the next spawn id.
func (sp *Spawner) newObject(kind Kind, arch int, x, y, sizeCoef float64) *GameObject {
	sp.nextID++
	o := &GameObject{
		ID:        sp.nextID,
		Kind:      kind,
		Archetype: arch,
		X:         x,
		Y:         y,
		Width:     sp.cfg.Obstacles.BarrierWidth,
		Height:    sp.cfg.Obstacles.BarrierHeight,
		SizeCoef:  sizeCoef,
	}
	if sprite, ok := pickupSprites[kind]; ok {
		o.Sprite = sprite
	}
	return o
}

// reset restarts id numbering for a new run.
func (sp *Spawner) reset() {
	sp.nextID = 0
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
