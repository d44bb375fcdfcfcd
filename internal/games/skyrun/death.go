package skyrun

import (
	"math"

	"github.com/vovakirdan/skyrun/internal/config"
)

// deathFrame is one sprite of the death animation held for a number of steps.
type deathFrame struct {
	sprite string
	ticks  int
}

// DeathSequence plays the death animation on the simulation clock.
type DeathSequence struct {
	frames  []deathFrame
	index   int
	elapsed int
	running bool
}

// Start begins the sequence. Frame durations given in milliseconds are
// converted to steps at tickRate, rounding up so no frame is skipped.
func (d *DeathSequence) Start(frames []config.DeathFrame, tickRate int) {
	if tickRate <= 0 {
		tickRate = 60
	}
	d.frames = d.frames[:0]
	for _, f := range frames {
		ticks := int(math.Ceil(float64(f.Millis) * float64(tickRate) / 1000))
		if ticks < 1 {
			ticks = 1
		}
		d.frames = append(d.frames, deathFrame{sprite: f.Sprite, ticks: ticks})
	}
	d.index = 0
	d.elapsed = 0
	d.running = len(d.frames) > 0
}

// Advance moves the animation one step and reports whether it is still playing.
func (d *DeathSequence) Advance() bool {
	if !d.running {
		return false
	}
	d.elapsed++
	if d.elapsed >= d.frames[d.index].ticks {
		d.elapsed = 0
		d.index++
		if d.index >= len(d.frames) {
			d.index = len(d.frames) - 1
			d.running = false
		}
	}
	return d.running
}

// Running reports whether the sequence is playing.
func (d *DeathSequence) Running() bool {
	return d.running
}

// Sprite returns the current frame's sprite, or "" when nothing was played.
func (d *DeathSequence) Sprite() string {
	if len(d.frames) == 0 {
		return ""
	}
	return d.frames[d.index].sprite
}

// TotalTicks returns the length of the whole sequence in steps.
func (d *DeathSequence) TotalTicks() int {
	n := 0
	for _, f := range d.frames {
		n += f.ticks
	}
	return n
}

// Cancel stops the sequence.
func (d *DeathSequence) Cancel() {
	d.frames = d.frames[:0]
	d.index = 0
	d.elapsed = 0
	d.running = false
}
