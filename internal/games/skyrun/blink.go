package skyrun

// BlinkState drives a fade-out blink from the simulation clock.
// It replaces chains of timers: advancing it once per step toggles
// visibility every `every` steps until the remaining count runs out.
type BlinkState struct {
	Remaining int
	Visible   bool
	every     int
	elapsed   int
}

// NewBlink creates a blink lasting ticks steps.
func NewBlink(ticks, every int) BlinkState {
	return BlinkState{Remaining: ticks, Visible: true, every: every}
}

// Active reports whether the blink is still running.
func (b *BlinkState) Active() bool {
	return b.Remaining > 0
}

// Advance moves the blink one step and reports whether it is still running.
func (b *BlinkState) Advance() bool {
	if b.Remaining <= 0 {
		b.Visible = true
		return false
	}

	b.Remaining--
	b.elapsed++
	if b.every > 0 && b.elapsed%b.every == 0 {
		b.Visible = !b.Visible
	}

	if b.Remaining == 0 {
		b.Visible = true
		return false
	}
	return true
}

// Cancel stops the blink immediately.
func (b *BlinkState) Cancel() {
	*b = BlinkState{Visible: true}
}
