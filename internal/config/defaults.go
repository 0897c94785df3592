package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/getaway.yaml
var defaultGetawayYAML []byte

//go:embed defaults/updates.yaml
var defaultUpdatesYAML []byte

// DefaultGetawayConfig returns the default getaway minigame configuration.
func DefaultGetawayConfig() GetawayConfig {
	return GetawayConfig{
		Viewport: GetawayViewport{
			Width:  300,
			Height: 400,
		},
		Road: GetawayRoad{
			Speed:     5,
			LineCount: 3,
		},
		Player: GetawayPlayer{
			Width:        40,
			Height:       70,
			BottomOffset: 20,
			Step:         10,
			MinLateral:   5,
			MaxLateral:   95,
			StartLateral: 50,
		},
		Entities: GetawayEntities{
			Car:        EntitySpec{Width: 40, Height: 70, Speed: 4},
			Police:     EntitySpec{Width: 40, Height: 70, Speed: 4},
			Truck:      EntitySpec{Width: 46, Height: 90, Speed: 4},
			Coin:       EntitySpec{Width: 24, Height: 24, Speed: 4},
			MinLateral: 10,
			MaxLateral: 90,
			ObstacleY:  -80,
			CoinY:      -30,
		},
		Timing: GetawayTiming{
			MotionPeriod:    50 * time.Millisecond,
			CollisionPeriod: 50 * time.Millisecond,
			ObstaclePeriod:  1500 * time.Millisecond,
			CoinPeriod:      3000 * time.Millisecond,
			Explosion:       500 * time.Millisecond,
			ScorePopup:      1000 * time.Millisecond,
			Busted:          1500 * time.Millisecond,
		},
		Scoring: GetawayScoring{
			SurviveBonus:  10,
			CoinBonus:     50,
			Lives:         3,
			CrashPenalty:  1,
			PolicePenalty: 2,
		},
		Collision: GetawayCollision{
			Margin: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}

// DefaultUpdatesConfig returns the default server updates configuration.
func DefaultUpdatesConfig() UpdatesConfig {
	return UpdatesConfig{
		MaxUpdates:      3,
		FallbackURL:     "updates.json",
		RefreshInterval: 5 * time.Minute,
		AutoRefresh:     false,
		FallbackDelay:   1500 * time.Millisecond,
		RequestTimeout:  10 * time.Second,
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "getaway":
		return defaultGetawayYAML
	case "updates":
		return defaultUpdatesYAML
	default:
		return nil
	}
}
