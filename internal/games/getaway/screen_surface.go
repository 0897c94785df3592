package getaway

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/loadscreen/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '█'
	CarChar       = '▓'
	PoliceChar    = '▓'
	SirenChar     = '▀'
	TruckChar     = '▒'
	CoinChar      = '●'
	ExplosionChar = '✸'
	RoadLineChar  = '┃'
)

type sprite struct {
	kind SpriteKind
	box  core.RectF
	text string
}

// ScreenSurface is an in-memory Surface that renders into a core.Screen.
// The viewport is scaled into a bordered track below a one-line HUD; terminal
// cells are roughly twice as tall as wide, which the scaling accounts for.
type ScreenSurface struct {
	viewportW float64
	viewportH float64

	sprites map[SpriteID]*sprite
	order   []SpriteID // Creation order, later sprites draw on top
	nextID  SpriteID

	texts   map[Element]string
	visible map[Element]bool
	effects map[Effect]bool
}

// NewScreenSurface creates a surface for a viewport of the given size.
func NewScreenSurface(viewportW, viewportH float64) *ScreenSurface {
	return &ScreenSurface{
		viewportW: viewportW,
		viewportH: viewportH,
		sprites:   make(map[SpriteID]*sprite),
		texts:     make(map[Element]string),
		visible:   map[Element]bool{ElementTrack: true, ElementScore: true, ElementBest: true, ElementLives: true},
		effects:   make(map[Effect]bool),
	}
}

// Has reports true for every element; the terminal layout always has them.
func (s *ScreenSurface) Has(Element) bool { return true }

func (s *ScreenSurface) CreateSprite(kind SpriteKind, box core.RectF) SpriteID {
	return s.add(&sprite{kind: kind, box: box})
}

func (s *ScreenSurface) CreateLabel(text string, x, y float64) SpriteID {
	return s.add(&sprite{kind: SpriteLabel, box: core.NewRectF(x, y, 0, 0), text: text})
}

func (s *ScreenSurface) add(sp *sprite) SpriteID {
	s.nextID++
	s.sprites[s.nextID] = sp
	s.order = append(s.order, s.nextID)
	return s.nextID
}

func (s *ScreenSurface) MoveSprite(id SpriteID, box core.RectF) {
	if sp, ok := s.sprites[id]; ok {
		sp.box = box
	}
}

func (s *ScreenSurface) RemoveSprite(id SpriteID) {
	if _, ok := s.sprites[id]; !ok {
		return
	}
	delete(s.sprites, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *ScreenSurface) SetText(el Element, text string)     { s.texts[el] = text }
func (s *ScreenSurface) SetVisible(el Element, visible bool) { s.visible[el] = visible }
func (s *ScreenSurface) SetEffect(fx Effect, on bool)        { s.effects[fx] = on }

// Text returns the current text of an element.
func (s *ScreenSurface) Text(el Element) string { return s.texts[el] }

// Visible reports whether an element is shown.
func (s *ScreenSurface) Visible(el Element) bool { return s.visible[el] }

// Effect reports whether an effect is on.
func (s *ScreenSurface) Effect(fx Effect) bool { return s.effects[fx] }

// Count returns the number of live sprites of a kind.
func (s *ScreenSurface) Count(kind SpriteKind) int {
	n := 0
	for _, sp := range s.sprites {
		if sp.kind == kind {
			n++
		}
	}
	return n
}

// trackLayout maps viewport units to screen cells.
type trackLayout struct {
	outer  core.Rect // Border
	inner  core.Rect // Drawable interior
	scaleX float64   // Cells per viewport unit
	scaleY float64
}

func (s *ScreenSurface) layout(dst *core.Screen) trackLayout {
	innerH := dst.Height() - 3 // HUD + top and bottom border
	if innerH < 1 {
		innerH = 1
	}
	aspect := 1.0
	if s.viewportH > 0 {
		aspect = s.viewportW / s.viewportH
	}
	innerW := int(math.Round(float64(innerH) * aspect * 2))
	innerW = core.Clamp(innerW, 1, core.Max(dst.Width()-2, 1))

	x := (dst.Width() - innerW - 2) / 2
	outer := core.NewRect(x, 1, innerW+2, innerH+2)
	return trackLayout{
		outer:  outer,
		inner:  core.NewRect(x+1, 2, innerW, innerH),
		scaleX: float64(innerW) / math.Max(s.viewportW, 1),
		scaleY: float64(innerH) / math.Max(s.viewportH, 1),
	}
}

// cells converts a viewport box to a cell rectangle at least one cell in size.
func (l trackLayout) cells(box core.RectF) core.Rect {
	x0 := int(math.Floor(box.X * l.scaleX))
	y0 := int(math.Floor(box.Y * l.scaleY))
	x1 := int(math.Ceil(box.Right() * l.scaleX))
	y1 := int(math.Ceil(box.Bottom() * l.scaleY))
	w, h := core.Max(x1-x0, 1), core.Max(y1-y0, 1)
	return core.NewRect(l.inner.X+x0, l.inner.Y+y0, w, h)
}

// fill paints r clipped to the track interior.
func (l trackLayout) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	if !r.Intersects(l.inner) {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if l.inner.Contains(x, y) {
				dst.SetColored(x, y, ch, c)
			}
		}
	}
}

// Render draws the HUD, track, sprites and message overlay.
func (s *ScreenSurface) Render(dst *core.Screen) {
	if dst.Width() < 4 || dst.Height() < 4 {
		return
	}
	l := s.layout(dst)

	s.renderHUD(dst)

	border := core.ColorBorder
	if s.effects[EffectBusted] {
		border = core.ColorDanger
	}
	dst.DrawBoxColored(l.outer, border)

	for _, id := range s.order {
		s.renderSprite(dst, l, s.sprites[id])
	}

	if s.visible[ElementMessage] && s.texts[ElementMessage] != "" {
		s.renderMessage(dst, l)
	}
}

func (s *ScreenSurface) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf(" SCORE %s  BEST %s", s.texts[ElementScore], s.texts[ElementBest])
	dst.DrawTextColored(0, 0, left, core.ColorText)

	wanted := s.texts[ElementLives]
	x := dst.Width() - len([]rune(wanted)) - 1
	dst.DrawTextColored(x, 0, wanted, core.ColorGold)
}

func (s *ScreenSurface) renderSprite(dst *core.Screen, l trackLayout, sp *sprite) {
	r := l.cells(sp.box)
	switch sp.kind {
	case SpritePlayer:
		l.fill(dst, r, PlayerChar, core.ColorAccent)
	case SpriteCar:
		l.fill(dst, r, CarChar, core.ColorCyan)
	case SpritePolice:
		l.fill(dst, r, PoliceChar, core.ColorBrightBlue)
		l.fill(dst, core.NewRect(r.X, r.Y, r.W/2, 1), SirenChar, core.ColorRed)
		l.fill(dst, core.NewRect(r.X+r.W/2, r.Y, r.W-r.W/2, 1), SirenChar, core.ColorBlue)
	case SpriteTruck:
		l.fill(dst, r, TruckChar, core.ColorOrange)
	case SpriteCoin:
		l.fill(dst, r, CoinChar, core.ColorGold)
	case SpriteExplosion:
		l.fill(dst, r, ExplosionChar, core.ColorBrightYellow)
	case SpriteRoadLine:
		l.fill(dst, r, RoadLineChar, core.ColorGray)
	case SpriteLabel:
		i := 0
		for _, ch := range sp.text {
			l.fill(dst, core.NewRect(r.X+i, r.Y, 1, 1), ch, core.ColorGold)
			i++
		}
	}
}

func (s *ScreenSurface) renderMessage(dst *core.Screen, l trackLayout) {
	lines := strings.Split(s.texts[ElementMessage], "\n")
	width := 0
	for _, line := range lines {
		width = core.Max(width, len([]rune(line)))
	}

	cx, cy := l.inner.Center()
	box := core.NewRect(0, 0, width+4, len(lines)+2)
	box.X = cx - box.W/2
	box.Y = cy - box.H/2

	dst.DrawRectColored(box, ' ', core.ColorDefault)
	dst.DrawBoxColored(box, core.ColorAccent)
	for i, line := range lines {
		c := core.ColorText
		if i == 0 {
			c = core.ColorDanger
			if s.texts[ElementMessage] == startMessage {
				c = core.ColorAccent
			}
		}
		x := box.X + (box.W-len([]rune(line)))/2
		dst.DrawTextColored(x, box.Y+1+i, line, c)
	}
}
