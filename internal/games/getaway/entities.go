package getaway

import (
	"math/rand"

	"github.com/vovakirdan/loadscreen/internal/config"
	"github.com/vovakirdan/loadscreen/internal/core"
)

// Kind is the type of a falling entity.
type Kind int

const (
	KindCar Kind = iota
	KindPolice
	KindTruck
	KindCoin
)

// obstacleKinds are drawn uniformly by the obstacle generator.
var obstacleKinds = [...]Kind{KindCar, KindPolice, KindTruck}

func (k Kind) String() string {
	return k.sprite().String()
}

func (k Kind) sprite() SpriteKind {
	switch k {
	case KindPolice:
		return SpritePolice
	case KindTruck:
		return SpriteTruck
	case KindCoin:
		return SpriteCoin
	default:
		return SpriteCar
	}
}

// Entity is an obstacle or coin falling down the track.
type Entity struct {
	Kind    Kind
	Lateral float64 // Horizontal center, percent of track width
	Y       float64 // Top edge, viewport units from the track top
	sprite  SpriteID
}

// spawner creates entities at random lateral positions.
type spawner struct {
	rng *rand.Rand
	cfg *config.GetawayEntities
}

func newSpawner(seed int64, cfg *config.GetawayEntities) *spawner {
	return &spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// reseed restarts the random sequence.
func (s *spawner) reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// lateral returns a position uniform in [MinLateral, MaxLateral].
func (s *spawner) lateral() float64 {
	return s.cfg.MinLateral + s.rng.Float64()*(s.cfg.MaxLateral-s.cfg.MinLateral)
}

func (s *spawner) obstacle() *Entity {
	kind := obstacleKinds[s.rng.Intn(len(obstacleKinds))]
	return &Entity{Kind: kind, Lateral: s.lateral(), Y: s.cfg.ObstacleY}
}

func (s *spawner) coin() *Entity {
	return &Entity{Kind: KindCoin, Lateral: s.lateral(), Y: s.cfg.CoinY}
}

// specFor returns the size and speed of an entity kind.
func specFor(cfg *config.GetawayEntities, k Kind) config.EntitySpec {
	switch k {
	case KindPolice:
		return cfg.Police
	case KindTruck:
		return cfg.Truck
	case KindCoin:
		return cfg.Coin
	default:
		return cfg.Car
	}
}

// box returns the entity's bounding box in viewport units.
func (e *Entity) box(cfg *config.GetawayEntities, viewportW float64) core.RectF {
	spec := specFor(cfg, e.Kind)
	return core.CenteredRectF(e.Lateral/100*viewportW, e.Y, spec.Width, spec.Height)
}
