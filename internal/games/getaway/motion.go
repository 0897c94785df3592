package getaway

import (
	"math"

	"github.com/vovakirdan/loadscreen/internal/core"
)

func (g *Game) spawnObstacle() {
	if g.phase != PhaseRunning {
		return
	}
	e := g.spawner.obstacle()
	e.sprite = g.surface.CreateSprite(e.Kind.sprite(), g.entityBox(e))
	g.obstacles = append(g.obstacles, e)
}

func (g *Game) spawnCoin() {
	if g.phase != PhaseRunning {
		return
	}
	c := g.spawner.coin()
	c.sprite = g.surface.CreateSprite(SpriteCoin, g.entityBox(c))
	g.coins = append(g.coins, c)
}

// motionTick scrolls the road and moves every entity down by its speed.
// Obstacles leaving the track score the survive bonus; coins just vanish.
func (g *Game) motionTick() {
	if g.phase != PhaseRunning {
		return
	}
	g.ticks++

	g.roadOffset = math.Mod(g.roadOffset+g.cfg.Road.Speed, 100)
	g.moveRoadLines()

	g.obstacles = g.fall(g.obstacles, g.cfg.Scoring.SurviveBonus)
	g.coins = g.fall(g.coins, 0)
}

// fall advances list in place and returns the survivors.
func (g *Game) fall(list []*Entity, exitBonus int) []*Entity {
	floor := g.cfg.Viewport.Height
	kept := list[:0]
	for _, e := range list {
		e.Y += g.speed(e.Kind)
		if e.Y > floor {
			g.surface.RemoveSprite(e.sprite)
			if exitBonus > 0 {
				g.addScore(exitBonus)
			}
			continue
		}
		g.surface.MoveSprite(e.sprite, g.entityBox(e))
		kept = append(kept, e)
	}
	clear(list[len(kept):])
	return kept
}

// speed returns the per-tick fall distance of a kind at the current difficulty.
func (g *Game) speed(k Kind) float64 {
	base := specFor(&g.cfg.Entities, k).Speed
	return g.difficulty.Speed(base, g.score, g.ticks)
}

func (g *Game) moveRoadLines() {
	for i, id := range g.roadLines {
		g.surface.MoveSprite(id, g.roadLineBox(i))
	}
}

// roadLinePosition returns marker i's vertical position in percent.
func (g *Game) roadLinePosition(i int) float64 {
	n := g.cfg.Road.LineCount
	if n <= 0 {
		return 0
	}
	return math.Mod(float64(i)*100/float64(n)+g.roadOffset, 100)
}

func (g *Game) roadLineBox(i int) core.RectF {
	vp := g.cfg.Viewport
	return core.CenteredRectF(vp.Width/2, g.roadLinePosition(i)/100*vp.Height, roadLineWidth, roadLineHeight)
}

func (g *Game) entityBox(e *Entity) core.RectF {
	return e.box(&g.cfg.Entities, g.cfg.Viewport.Width)
}
