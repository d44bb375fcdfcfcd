package skyrun

import (
	"math"
	"math/rand"
)

// Dice is the source of every random decision the spawner makes.
type Dice interface {
	// RandomInteger returns a uniform integer in [min, max]. A fractional
	// max widens the top bucket the way floor(rand*(max-min+1))+min does.
	RandomInteger(min, max float64) int
}

// RandDice is a seeded Dice backed by math/rand.
type RandDice struct {
	rng *rand.Rand
}

// NewDice creates a Dice with a deterministic seed.
func NewDice(seed int64) *RandDice {
	return &RandDice{rng: rand.New(rand.NewSource(seed))}
}

// RandomInteger implements Dice.
func (d *RandDice) RandomInteger(min, max float64) int {
	return int(math.Floor(d.rng.Float64()*(max-min+1) + min))
}
