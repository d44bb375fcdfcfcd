package skyrun

import "github.com/vovakirdan/skyrun/internal/core"

// Layer is one pair of parallax tiles. The pair is drawn at X and
// X+TileWidth, so the strip always covers the canvas.
type Layer struct {
	Rate      float64
	X         float64
	TileWidth float64
}

// Scroll moves the layer left by speed*Rate, wrapping back by one tile
// once the first tile has left the canvas.
func (l *Layer) Scroll(speed float64) {
	l.X -= speed * l.Rate
	for l.TileWidth > 0 && l.X <= -l.TileWidth {
		l.X += l.TileWidth
	}
}

func newLayers(rates []float64, tileWidth float64) []Layer {
	layers := make([]Layer, len(rates))
	for i, r := range rates {
		layers[i] = Layer{Rate: r, TileWidth: tileWidth}
	}
	return layers
}

// Palette is the set of colours used to draw the scenery.
type Palette struct {
	Name     string
	Sky      core.Color
	Far      core.Color
	Near     core.Color
	Ground   core.Color
	Stars    bool
	MinScore float64
}

// palettes are ordered by the score at which they take over.
var palettes = []Palette{
	{Name: "dawn", Sky: core.ColorBrightYellow, Far: core.ColorOrange, Near: core.ColorGreen, Ground: core.ColorYellow},
	{Name: "day", Sky: core.ColorBrightCyan, Far: core.ColorBlue, Near: core.ColorBrightGreen, Ground: core.ColorGreen, MinScore: 500},
	{Name: "dusk", Sky: core.ColorMagenta, Far: core.ColorOrange, Near: core.ColorGray, Ground: core.ColorOrange, MinScore: 1500},
	{Name: "night", Sky: core.ColorNavy, Far: core.ColorBlue, Near: core.ColorGray, Ground: core.ColorGray, Stars: true, MinScore: 3000},
}

// Backdrop is the built-in BackgroundUpdater. It switches the palette as
// the score crosses thresholds.
type Backdrop struct {
	current int
	changes int
}

// NewBackdrop starts at the first palette.
func NewBackdrop() *Backdrop {
	return &Backdrop{}
}

// UpdateBackground implements BackgroundUpdater.
func (b *Backdrop) UpdateBackground(score float64) {
	idx := 0
	for i, p := range palettes {
		if score >= p.MinScore {
			idx = i
		}
	}
	if idx != b.current {
		b.current = idx
		b.changes++
	}
}

// Palette returns the active palette.
func (b *Backdrop) Palette() Palette {
	return palettes[b.current]
}

// Changes returns how many times the palette switched this run.
func (b *Backdrop) Changes() int {
	return b.changes
}

// Reset goes back to the first palette.
func (b *Backdrop) Reset() {
	*b = Backdrop{}
}

var _ BackgroundUpdater = (*Backdrop)(nil)
