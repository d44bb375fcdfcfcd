package skyrun

import "github.com/vovakirdan/skyrun/internal/core"

// Collide tests the player against one object.
//
// Floor objects: the player's bottom must pass 1.1x the object's top y,
// which makes the top edge slightly forgiving, and the player's top must be
// above the object's bottom.
//
// Ceiling objects: the vertical test is inverted, and a sliding player's
// effective top drops to y + height/2.2 so sliding ducks under them.
func Collide(p *Player, o *GameObject) bool {
	ow, oh := o.W(), o.H()

	if p.X+p.Width <= o.X || p.X >= o.X+ow {
		return false
	}

	top := p.Top()
	bottom := top + p.Height

	if !o.TopBarrier {
		return bottom > o.Y*1.1 && top < o.Y+oh
	}

	if p.Sliding {
		top += p.Height / 2.2
	}
	return top < o.Y+oh && bottom > o.Y
}

// Attract pulls a coin towards the point (px, py) by pull of the remaining
// distance when it is within radius. It reports whether the coin moved.
func Attract(o *GameObject, px, py, radius, pull float64) bool {
	pos := core.Vec{X: o.X, Y: o.Y}
	target := core.Vec{X: px, Y: py}
	if pos.Dist(target) > radius {
		return false
	}

	pos = pos.Lerp(target, pull)
	o.X, o.Y = pos.X, pos.Y
	return true
}
