package skyrun

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/skyrun/internal/config"
	"github.com/vovakirdan/skyrun/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	SlideChar  = '▄'
	GroundChar = '═'
	DeadChar   = 'x'
)

type look struct {
	glyph rune
	color core.Color
}

// sprites maps sprite names to their terminal look.
var sprites = map[string]look{
	"crate":     {'▓', core.ColorOrange},
	"rock":      {'▒', core.ColorGray},
	"tower":     {'█', core.ColorRed},
	"cone":      {'▲', core.ColorOrange},
	"lamp":      {'▼', core.ColorYellow},
	"drone":     {'◊', core.ColorCyan},
	"chain":     {'║', core.ColorGray},
	"coin":      {'●', core.ColorGold},
	"shield":    {'◎', core.ColorBrightCyan},
	"booster":   {'»', core.ColorBrightRed},
	"magnet":    {'U', core.ColorMagenta},
	"double":    {'2', core.ColorBrightGreen},
	"star":      {'*', core.ColorBrightYellow},
	"hourglass": {'%', core.ColorBrightBlue},
	"cloud":     {'$', core.ColorGold},
}

// Parallax strips, one tile wide. Background strips are listed far to near.
var (
	backgroundStrips = []string{
		"    ~~~          ~~        ~~~~         ~      ",
		"   /\\      /\\/\\        /\\         /\\/\\/\\     ",
		" .-.   ,--.    .-.  ,-.     .--.   ,-.   .-. ",
	}
	foregroundStrips = []string{
		"_ . ,_  '  .  _ ,  . ' _  , . _  '  ,  _ . ",
		"=  -  ==  -   =  --  =   -  ==  - =  -  =  ",
	}
)

// viewport maps canvas pixels to screen cells below the HUD row.
type viewport struct {
	top    int
	sx, sy float64
}

func newViewport(dst *core.Screen, canvas config.CanvasConfig) viewport {
	rows := dst.Height() - 1
	if rows < 1 {
		rows = 1
	}
	return viewport{
		top: 1,
		sx:  float64(dst.Width()) / canvas.Width,
		sy:  float64(rows) / canvas.Height,
	}
}

func (v viewport) point(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), v.top + int(math.Floor(y*v.sy))
}

// rect converts a canvas box to cells; anything on screen is at least 1x1.
func (v viewport) rect(x, y, w, h float64) core.Rect {
	x0, y0 := v.point(x, y)
	x1, y1 := v.point(x+w, y+h)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.loop == nil {
		return
	}

	s := g.loop.Session()
	cfg := g.loop.Config()
	v := newViewport(dst, cfg.Canvas)
	pal := g.backdrop.Palette()

	dx, dy := g.shaker.Offset()
	dst.SetOffset(dx, dy)

	g.drawScenery(dst, v, s, cfg, pal)
	for _, o := range s.Objects.All() {
		g.drawObject(dst, v, o)
	}
	g.drawPlayer(dst, v, s)
	for _, p := range g.particles.Particles() {
		x, y := v.point(p.Pos.X, p.Pos.Y)
		dst.SetColored(x, y, p.Glyph, p.Color)
	}

	dst.SetOffset(0, 0)
	g.drawHUD(dst, s)

	switch s.Phase {
	case core.PhaseIdle:
		drawCenteredMessage(dst, "SKYRUN", "SPACE to run  |  DOWN to slide  |  Q to quit")
	case core.PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case core.PhaseGameOver:
		if !s.Ready {
			return
		}
		title := "GAME OVER"
		if s.NewHigh {
			title = "NEW HIGH SCORE"
		}
		drawCenteredMessage(dst, title, fmt.Sprintf("Score: %s  Coins: %s  |  Press R to replay", s.ScoreText(), s.CoinText()))
	}
}

func (g *Game) drawScenery(dst *core.Screen, v viewport, s *GameSession, cfg *config.RunnerConfig, pal Palette) {
	groundY := cfg.Canvas.GroundY()

	if pal.Stars {
		for x := 0; x < dst.Width(); x += 7 {
			dst.SetColored(x, v.top+(x*3)%4, '.', core.ColorBrightWhite)
		}
	}

	bgRows := []float64{60, groundY - 110, groundY - 30}
	bgColors := []core.Color{pal.Sky, pal.Far, pal.Near}
	for i, layer := range s.Background {
		if i >= len(backgroundStrips) {
			break
		}
		_, y := v.point(0, bgRows[i])
		drawStrip(dst, v, layer, y, backgroundStrips[i], bgColors[i])
	}

	_, gy := v.point(0, groundY)
	dst.DrawHLine(0, gy, dst.Width(), GroundChar, pal.Ground)

	for i, layer := range s.Foreground {
		if i >= len(foregroundStrips) {
			break
		}
		drawStrip(dst, v, layer, gy+1+i, foregroundStrips[i], pal.Ground)
	}
}

// drawStrip tiles a pattern across one row, shifted by the layer scroll.
func drawStrip(dst *core.Screen, v viewport, layer Layer, y int, strip string, c core.Color) {
	runes := []rune(strip)
	if len(runes) == 0 || layer.TileWidth <= 0 {
		return
	}
	for x := 0; x < dst.Width(); x++ {
		cx := float64(x)/v.sx - layer.X
		cx = math.Mod(cx, layer.TileWidth)
		if cx < 0 {
			cx += layer.TileWidth
		}
		r := runes[int(cx/layer.TileWidth*float64(len(runes)))%len(runes)]
		if r != ' ' {
			dst.SetColored(x, y, r, c)
		}
	}
}

func (g *Game) drawObject(dst *core.Screen, v viewport, o *GameObject) {
	if !o.Visible() {
		return
	}
	lk, ok := sprites[o.Sprite]
	if !ok {
		lk = look{'?', core.ColorWhite}
	}
	if o.Kicked {
		lk.color = core.ColorGray
	}
	dst.DrawRect(v.rect(o.X, o.Y, o.W(), o.H()), lk.glyph, lk.color)
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport, s *GameSession) {
	p := s.Player
	top, height := p.Top(), p.Height
	glyph, color := PlayerChar, core.ColorBrightWhite
	if p.Sliding {
		top += p.Height / 2.2
		height -= p.Height / 2.2
		glyph = SlideChar
	}
	if s.Phase == core.PhaseGameOver {
		color = core.ColorRed
		if s.Death.Sprite() == "ghost" {
			color = core.ColorGray
		}
		glyph = DeadChar
	}
	if p.Boost {
		color = core.ColorBrightRed
	}

	r := v.rect(p.X, top, p.Width, height)
	dst.DrawRect(r, glyph, color)

	if p.ShieldVisible() {
		aura := core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2)
		for x := aura.X; x < aura.Right(); x++ {
			dst.SetColored(x, aura.Y, '·', core.ColorBrightCyan)
			dst.SetColored(x, aura.Bottom()-1, '·', core.ColorBrightCyan)
		}
		for y := aura.Y; y < aura.Bottom(); y++ {
			dst.SetColored(aura.X, y, '·', core.ColorBrightCyan)
			dst.SetColored(aura.Right()-1, y, '·', core.ColorBrightCyan)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen, s *GameSession) {
	left := fmt.Sprintf(" SCORE %s  COINS %s  HI %s ", s.ScoreText(), s.CoinText(), s.HighScoreText())
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	var tags []string
	if s.Player.Shield {
		tags = append(tags, "SHD")
	}
	if s.Player.Boost {
		tags = append(tags, "BST")
	}
	for _, e := range g.powerUps.Active() {
		tags = append(tags, fmt.Sprintf("%s %d", effectTag(e.Kind), e.Remaining/max(1, g.runtime.TickRate)))
	}
	right := fmt.Sprintf(" %s SPD %.1f ", strings.Join(tags, " "), s.Speed)
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorYellow)
}

func effectTag(k Kind) string {
	switch k {
	case KindMagnet:
		return "MAG"
	case KindDoubleScore:
		return "x2"
	case KindInvincibility:
		return "INV"
	case KindSlowMotion:
		return "SLO"
	case KindCoinRain:
		return "RAIN"
	default:
		return "?"
	}
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	centerY := dst.Height() / 2

	boxWidth := max(len([]rune(title)), len([]rune(subtitle))) + 6
	boxX := (dst.Width() - boxWidth) / 2
	box := core.NewRect(boxX, centerY-2, boxWidth, 5)

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextCentered(centerY-1, title)
	dst.DrawTextCentered(centerY+1, subtitle)
}
