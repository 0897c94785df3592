// Package config provides YAML-based configuration loading and difficulty
// management for the loading-screen widgets.
package config

import "time"

// GetawayConfig contains all configuration for the getaway driver minigame.
// Distances are in viewport units (pixels), lateral
// positions are percentages of the track width.
type GetawayConfig struct {
	Viewport   GetawayViewport  `yaml:"viewport"`
	Road       GetawayRoad      `yaml:"road"`
	Player     GetawayPlayer    `yaml:"player"`
	Entities   GetawayEntities  `yaml:"entities"`
	Timing     GetawayTiming    `yaml:"timing"`
	Scoring    GetawayScoring   `yaml:"scoring"`
	Collision  GetawayCollision `yaml:"collision"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GetawayViewport defines the size of the render surface.
type GetawayViewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GetawayRoad defines the scrolling road markers.
type GetawayRoad struct {
	Speed     float64 `yaml:"speed"`      // Percent of viewport height per motion tick
	LineCount int     `yaml:"line_count"` // Number of repeating road-line markers
}

// GetawayPlayer defines the player's car.
type GetawayPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Gap between car and viewport bottom
	Step         float64 `yaml:"step"`          // Lateral move per key press
	MinLateral   float64 `yaml:"min_lateral"`
	MaxLateral   float64 `yaml:"max_lateral"`
	StartLateral float64 `yaml:"start_lateral"`
}

// EntitySpec defines the sprite size and fall speed of one entity kind.
type EntitySpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Units per motion tick
}

// GetawayEntities defines obstacles and coins.
type GetawayEntities struct {
	Car        EntitySpec `yaml:"car"`
	Police     EntitySpec `yaml:"police"`
	Truck      EntitySpec `yaml:"truck"`
	Coin       EntitySpec `yaml:"coin"`
	MinLateral float64    `yaml:"min_lateral"`
	MaxLateral float64    `yaml:"max_lateral"`
	ObstacleY  float64    `yaml:"obstacle_spawn_y"` // Initial vertical offset (above viewport)
	CoinY      float64    `yaml:"coin_spawn_y"`
}

// GetawayTiming defines the periods of the four game tasks and the
// lifetime of transient effects.
type GetawayTiming struct {
	MotionPeriod    time.Duration `yaml:"motion_period"`
	CollisionPeriod time.Duration `yaml:"collision_period"`
	ObstaclePeriod  time.Duration `yaml:"obstacle_period"`
	CoinPeriod      time.Duration `yaml:"coin_period"`
	Explosion       time.Duration `yaml:"explosion"`
	ScorePopup      time.Duration `yaml:"score_popup"`
	Busted          time.Duration `yaml:"busted"`
}

// GetawayScoring defines points and lives.
type GetawayScoring struct {
	SurviveBonus  int `yaml:"survive_bonus"`
	CoinBonus     int `yaml:"coin_bonus"`
	Lives         int `yaml:"lives"`
	CrashPenalty  int `yaml:"crash_penalty"`
	PolicePenalty int `yaml:"police_penalty"`
}

// GetawayCollision defines the collision leniency.
type GetawayCollision struct {
	Margin float64 `yaml:"margin"` // Required overlap depth on every side
}

// UpdatesConfig contains configuration for the server updates panel.
type UpdatesConfig struct {
	MaxUpdates        int           `yaml:"max_updates"`
	DiscordWebhookURL string        `yaml:"discord_webhook_url"`
	FallbackURL       string        `yaml:"fallback_url"`
	RefreshInterval   time.Duration `yaml:"refresh_interval"`
	AutoRefresh       bool          `yaml:"auto_refresh"`
	FallbackDelay     time.Duration `yaml:"fallback_delay"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to fall speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI value to a preset. Unknown values map
// to the empty preset, which keeps the config file's settings.
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
