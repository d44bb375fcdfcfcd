package skyrun

// archetype fixes sprite, anchoring and motion for one spawn roll.
type archetype struct {
	sprite   string
	ceiling  bool
	sizeCoef float64
	levitate bool
}

// archetypes is indexed by the 1..8 spawn roll. Entry 8 is the special
// roll; its geometry is used for the crate it falls back to.
var archetypes = [9]archetype{
	1: {sprite: "crate", sizeCoef: 1.0},
	2: {sprite: "rock", sizeCoef: 0.8},
	3: {sprite: "tower", sizeCoef: 1.4},
	4: {sprite: "cone", sizeCoef: 0.6},
	5: {sprite: "lamp", ceiling: true, sizeCoef: 1.0},
	6: {sprite: "drone", ceiling: true, sizeCoef: 0.8, levitate: true},
	7: {sprite: "chain", ceiling: true, sizeCoef: 1.2, levitate: true},
	8: {sprite: "crate", sizeCoef: 1.0},
}

// ArchetypeCount is the upper bound of the archetype roll.
const ArchetypeCount = 8

// pickupSprites names the sprite drawn for each pickup kind.
var pickupSprites = map[Kind]string{
	KindCoin:          "coin",
	KindShield:        "shield",
	KindBooster:       "booster",
	KindMagnet:        "magnet",
	KindDoubleScore:   "double",
	KindInvincibility: "star",
	KindSlowMotion:    "hourglass",
	KindCoinRain:      "cloud",
}
