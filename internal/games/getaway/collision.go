package getaway

import "strconv"

// collisionTick tests the player against every live entity. Once a crash
// ends the round the remaining entities are left untouched.
func (g *Game) collisionTick() {
	if g.phase != PhaseRunning {
		return
	}
	player := g.playerBox()
	margin := g.cfg.Collision.Margin

	kept := g.obstacles[:0]
	for i, e := range g.obstacles {
		if g.phase != PhaseRunning {
			kept = append(kept, g.obstacles[i:]...)
			break
		}
		if player.OverlapsWithMargin(g.entityBox(e), margin) {
			g.crash(e)
			continue
		}
		kept = append(kept, e)
	}
	clear(g.obstacles[len(kept):])
	g.obstacles = kept

	if g.phase != PhaseRunning {
		return
	}

	keptCoins := g.coins[:0]
	for _, c := range g.coins {
		if player.OverlapsWithMargin(g.entityBox(c), margin) {
			g.collect(c)
			continue
		}
		keptCoins = append(keptCoins, c)
	}
	clear(g.coins[len(keptCoins):])
	g.coins = keptCoins
}

// crash removes an obstacle the player hit, plays the explosion and takes
// away wanted stars. Running out of stars ends the round.
func (g *Game) crash(e *Entity) {
	g.surface.RemoveSprite(e.sprite)

	box := g.playerBox()
	boom := box
	boom.X = box.X + box.W/2 - explosionSize/2
	boom.W, boom.H = explosionSize, explosionSize
	g.transient(g.surface.CreateSprite(SpriteExplosion, boom), g.cfg.Timing.Explosion)

	penalty := g.cfg.Scoring.CrashPenalty
	if e.Kind == KindPolice {
		penalty = g.cfg.Scoring.PolicePenalty
	}
	g.lives = max(0, g.lives-penalty)
	g.updateLives()
	g.log.Debug("crash", "kind", e.Kind, "lives", g.lives)

	if g.lives <= 0 {
		g.End()
	}
}

// collect removes a coin the player reached and shows the bonus popup where
// the coin was.
func (g *Game) collect(c *Entity) {
	g.surface.RemoveSprite(c.sprite)
	g.addScore(g.cfg.Scoring.CoinBonus)

	box := g.entityBox(c)
	label := "+" + strconv.Itoa(g.cfg.Scoring.CoinBonus)
	g.transient(g.surface.CreateLabel(label, box.X, box.Y), g.cfg.Timing.ScorePopup)
}
