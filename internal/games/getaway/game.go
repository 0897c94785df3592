// Package getaway implements the getaway-driver minigame shown while the
// game server loads: the player steers a car left and right, dodging
// falling traffic and collecting coins, until the wanted stars run out.
package getaway

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/loadscreen/internal/config"
	"github.com/vovakirdan/loadscreen/internal/core"
	"github.com/vovakirdan/loadscreen/internal/registry"
)

const (
	GameID = "getaway"
	Title  = "Getaway Driver"

	// BestScoreKey is the preference holding the best score as a decimal string.
	BestScoreKey = "getaway.best_score"

	startMessage  = "GETAWAY DRIVER\nPRESS SPACE TO START"
	bustedMessage = "BUSTED\nPRESS SPACE TO RESTART"

	roadLineWidth  = 4
	roadLineHeight = 40
	explosionSize  = 50
)

// Phase is the lifecycle state of a round.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Game is the minigame state machine. It is driven from a single goroutine:
// input through HandleAction and time through Advance (or Step, which does
// both). All timers live on the game's own virtual-clock scheduler.
type Game struct {
	cfg        config.GetawayConfig
	surface    Surface
	prefs      core.Preferences
	log        *log.Logger
	sched      *core.Scheduler
	spawner    *spawner
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig

	phase      Phase
	score      int
	best       int
	lives      int
	roadOffset float64 // Percent of track height, [0, 100)
	lateral    float64 // Player center, percent of track width
	ticks      int     // Motion ticks this round

	obstacles []*Entity
	coins     []*Entity

	player    SpriteID
	roadLines []SpriteID

	motionTask    *core.Task
	obstacleTask  *core.Task
	coinTask      *core.Task
	collisionTask *core.Task
	bustedTask    *core.Task
	transients    map[SpriteID]struct{}
}

func init() {
	registry.Register(GameID, Title, func(env registry.Env) (registry.Game, error) {
		cfg, err := config.LoadGetaway(env.ConfigPath)
		if err != nil {
			return nil, err
		}
		config.ApplyGetawayPreset(&cfg, config.ParseDifficultyPreset(env.Difficulty))

		surface := NewScreenSurface(cfg.Viewport.Width, cfg.Viewport.Height)
		return New(surface, env.Prefs, cfg, env.Logger)
	})
}

// New builds an idle game on surface. It fails with ErrMissingElement if
// the surface lacks any display element, and loads the best score from
// prefs (absent or malformed values count as 0).
func New(surface Surface, prefs core.Preferences, cfg config.GetawayConfig, logger *log.Logger) (*Game, error) {
	for _, el := range requiredElements {
		if !surface.Has(el) {
			return nil, fmt.Errorf("%w: %s", ErrMissingElement, el)
		}
	}
	if prefs == nil {
		prefs = core.NewMemoryPreferences()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:        cfg,
		surface:    surface,
		prefs:      prefs,
		log:        logger,
		sched:      core.NewScheduler(),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		runtime:    core.DefaultConfig(),
		transients: make(map[SpriteID]struct{}),
	}
	g.spawner = newSpawner(time.Now().UnixNano(), &g.cfg.Entities)
	g.best = g.loadBest()

	g.lives = cfg.Scoring.Lives
	g.lateral = cfg.Player.StartLateral
	g.player = surface.CreateSprite(SpritePlayer, g.playerBox())
	for i := 0; i < cfg.Road.LineCount; i++ {
		g.roadLines = append(g.roadLines, surface.CreateSprite(SpriteRoadLine, g.roadLineBox(i)))
	}

	g.updateScore()
	g.updateLives()
	surface.SetText(ElementBest, strconv.Itoa(g.best))
	surface.SetText(ElementMessage, startMessage)
	surface.SetVisible(ElementMessage, true)

	g.log.Info("getaway initialized", "best", g.best, "progression", g.difficulty.IsEnabled())
	return g, nil
}

// loadBest reads the persisted best score.
func (g *Game) loadBest() int {
	raw, ok, err := g.prefs.Get(BestScoreKey)
	if err != nil {
		g.log.Warn("cannot read best score", "err", err)
		return 0
	}
	if !ok {
		return 0
	}
	best, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || best < 0 {
		g.log.Warn("ignoring malformed best score", "value", raw)
		return 0
	}
	return best
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Reset returns the game to Idle with the start overlay shown. A non-zero
// seed makes obstacle and coin placement reproducible.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if runtime.Seed != 0 {
		g.spawner.reseed(runtime.Seed)
	}

	g.reset()
	g.clearTransients()
	g.setBusted(false)
	g.sched.CancelAll()
	g.phase = PhaseIdle
	g.surface.SetText(ElementMessage, startMessage)
	g.surface.SetVisible(ElementMessage, true)
}

// reset zeroes the round: counters, positions, entities and periodic tasks.
func (g *Game) reset() {
	g.cancelPeriodic()

	g.score = 0
	g.lives = g.cfg.Scoring.Lives
	g.roadOffset = 0
	g.ticks = 0
	g.lateral = g.cfg.Player.StartLateral

	for _, e := range g.obstacles {
		g.surface.RemoveSprite(e.sprite)
	}
	for _, c := range g.coins {
		g.surface.RemoveSprite(c.sprite)
	}
	g.obstacles = g.obstacles[:0]
	g.coins = g.coins[:0]

	g.surface.MoveSprite(g.player, g.playerBox())
	g.moveRoadLines()
	g.updateScore()
	g.updateLives()
}

// Start begins a new round. It does nothing while a round is running.
func (g *Game) Start() {
	if g.phase == PhaseRunning {
		return
	}

	g.reset()
	g.setBusted(false)
	g.phase = PhaseRunning
	g.surface.SetVisible(ElementMessage, false)

	t := g.cfg.Timing
	g.motionTask = g.sched.Every(t.MotionPeriod, g.motionTick)
	g.obstacleTask = g.sched.Every(t.ObstaclePeriod, g.spawnObstacle)
	g.coinTask = g.sched.Every(t.CoinPeriod, g.spawnCoin)
	g.collisionTask = g.sched.Every(t.CollisionPeriod, g.collisionTick)

	g.log.Debug("round started", "best", g.best, "tasks", g.sched.Pending())
}

// End finishes the running round: timers stop, the busted effect plays and
// the best score is persisted if beaten.
func (g *Game) End() {
	if g.phase != PhaseRunning {
		return
	}
	g.phase = PhaseEnded
	g.cancelPeriodic()

	g.setBusted(true)
	g.bustedTask = g.sched.After(g.cfg.Timing.Busted, func() {
		g.setBusted(false)
	})

	if g.score > g.best {
		g.best = g.score
		if err := g.prefs.Set(BestScoreKey, strconv.Itoa(g.best)); err != nil {
			g.log.Warn("cannot persist best score", "err", err)
		}
		g.surface.SetText(ElementBest, strconv.Itoa(g.best))
	}

	g.surface.SetText(ElementMessage, bustedMessage)
	g.surface.SetVisible(ElementMessage, true)

	g.log.Debug("round ended", "score", g.score, "best", g.best, "tasks", g.sched.Pending())
}

func (g *Game) cancelPeriodic() {
	g.motionTask.Cancel()
	g.obstacleTask.Cancel()
	g.coinTask.Cancel()
	g.collisionTask.Cancel()
	g.motionTask, g.obstacleTask, g.coinTask, g.collisionTask = nil, nil, nil, nil
}

func (g *Game) setBusted(on bool) {
	if !on {
		g.bustedTask.Cancel()
		g.bustedTask = nil
	}
	g.surface.SetEffect(EffectBusted, on)
}

// HandleAction applies one input action and reports whether it was consumed.
func (g *Game) HandleAction(a core.Action) bool {
	switch a {
	case core.ActionStart:
		if g.phase != PhaseRunning {
			g.Start()
		}
		return true
	case core.ActionLeft:
		return g.steer(-g.cfg.Player.Step)
	case core.ActionRight:
		return g.steer(g.cfg.Player.Step)
	default:
		return false
	}
}

func (g *Game) steer(delta float64) bool {
	if g.phase != PhaseRunning {
		return false
	}
	g.lateral = core.ClampF(g.lateral+delta, g.cfg.Player.MinLateral, g.cfg.Player.MaxLateral)
	g.surface.MoveSprite(g.player, g.playerBox())
	return true
}

// Advance moves the game clock forward, running due timers. It returns the
// number of timer callbacks executed.
func (g *Game) Advance(dt time.Duration) int {
	return g.sched.Advance(dt)
}

// Step applies the frame's actions in order, then advances the clock by one
// platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions {
		g.HandleAction(a)
	}
	fired := g.Advance(g.runtime.TickInterval())
	return core.StepResult{State: g.State(), Fired: fired}
}

// Render draws the surface into dst when the surface is a terminal one.
func (g *Game) Render(dst *core.Screen) {
	if r, ok := g.surface.(interface{ Render(*core.Screen) }); ok {
		r.Render(dst)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		BestScore: g.best,
		Lives:     g.lives,
		Active:    g.phase == PhaseRunning,
		GameOver:  g.phase == PhaseEnded,
	}
}

// Phase returns the lifecycle state.
func (g *Game) Phase() Phase { return g.phase }

// Lateral returns the player's position in percent of the track width.
func (g *Game) Lateral() float64 { return g.lateral }

// RoadOffset returns the road scroll offset in percent.
func (g *Game) RoadOffset() float64 { return g.roadOffset }

// Obstacles returns a snapshot of the live obstacles.
func (g *Game) Obstacles() []Entity { return snapshot(g.obstacles) }

// Coins returns a snapshot of the live coins.
func (g *Game) Coins() []Entity { return snapshot(g.coins) }

func snapshot(list []*Entity) []Entity {
	out := make([]Entity, len(list))
	for i, e := range list {
		out[i] = *e
	}
	return out
}

func (g *Game) updateScore() {
	g.surface.SetText(ElementScore, strconv.Itoa(g.score))
}

func (g *Game) updateLives() {
	g.surface.SetText(ElementLives, wantedStars(g.lives, g.cfg.Scoring.Lives))
}

// wantedStars renders lives as filled stars padded with hollow ones.
func wantedStars(lives, total int) string {
	lives = core.Clamp(lives, 0, total)
	return strings.Repeat("★", lives) + strings.Repeat("☆", total-lives)
}

func (g *Game) addScore(points int) {
	g.score += points
	g.updateScore()
}

func (g *Game) playerBox() core.RectF {
	p := g.cfg.Player
	vp := g.cfg.Viewport
	return core.CenteredRectF(g.lateral/100*vp.Width, vp.Height-p.BottomOffset-p.Height, p.Width, p.Height)
}

// transient removes sprite id after d unless the game is reset first.
func (g *Game) transient(id SpriteID, d time.Duration) {
	g.transients[id] = struct{}{}
	g.sched.After(d, func() {
		delete(g.transients, id)
		g.surface.RemoveSprite(id)
	})
}

// clearTransients removes the transient sprites. Their tasks are left to
// the caller's CancelAll.
func (g *Game) clearTransients() {
	for id := range g.transients {
		g.surface.RemoveSprite(id)
	}
	clear(g.transients)
}
