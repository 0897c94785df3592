package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGetaway loads the minigame configuration.
// Search order: customPath -> ~/.loadscreen/configs/getaway.yaml -> ./configs/getaway.yaml -> embedded default
func LoadGetaway(customPath string) (GetawayConfig, error) {
	return load("getaway", customPath, defaultGetawayYAML, DefaultGetawayConfig, GetawayConfig.Validate)
}

// LoadUpdates loads the server updates configuration.
// Search order: customPath -> ~/.loadscreen/configs/updates.yaml -> ./configs/updates.yaml -> embedded default
func LoadUpdates(customPath string) (UpdatesConfig, error) {
	return load("updates", customPath, defaultUpdatesYAML, DefaultUpdatesConfig, UpdatesConfig.Validate)
}

// load walks the search order for one config file. Files found in the user
// or local directories are skipped when they fail to parse or validate; a
// broken custom path is reported to the caller.
func load[T any](name, customPath string, embedded []byte, fallback func() T, validate func(T) error) (T, error) {
	filename := name + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := validate(cfg); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil && validate(cfg) == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	var cfg T
	if err := yaml.Unmarshal(embedded, &cfg); err != nil || validate(cfg) != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".loadscreen", "configs", filename)
}

// Validate reports settings the minigame cannot run with.
func (c GetawayConfig) Validate() error {
	var errs []error
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, errors.New("viewport must have a positive size"))
	}
	if c.Road.LineCount < 0 {
		errs = append(errs, errors.New("road.line_count must not be negative"))
	}
	if c.Player.MinLateral > c.Player.MaxLateral {
		errs = append(errs, errors.New("player.min_lateral exceeds player.max_lateral"))
	}
	if c.Entities.MinLateral > c.Entities.MaxLateral {
		errs = append(errs, errors.New("entities.min_lateral exceeds entities.max_lateral"))
	}
	t := c.Timing
	if t.MotionPeriod <= 0 || t.CollisionPeriod <= 0 || t.ObstaclePeriod <= 0 || t.CoinPeriod <= 0 {
		errs = append(errs, errors.New("timing periods must be positive"))
	}
	if c.Scoring.Lives <= 0 {
		errs = append(errs, errors.New("scoring.lives must be positive"))
	}
	if c.Collision.Margin < 0 {
		errs = append(errs, errors.New("collision.margin must not be negative"))
	}
	return errors.Join(errs...)
}

// Validate reports settings the updates panel cannot run with.
func (c UpdatesConfig) Validate() error {
	var errs []error
	if c.MaxUpdates <= 0 {
		errs = append(errs, errors.New("max_updates must be positive"))
	}
	if c.DiscordWebhookURL == "" && c.FallbackURL == "" {
		errs = append(errs, errors.New("at least one of discord_webhook_url and fallback_url is required"))
	}
	if c.AutoRefresh && c.RefreshInterval <= 0 {
		errs = append(errs, errors.New("refresh_interval must be positive when auto_refresh is on"))
	}
	if c.FallbackDelay < 0 || c.RequestTimeout < 0 {
		errs = append(errs, errors.New("delays must not be negative"))
	}
	return errors.Join(errs...)
}

// ApplyGetawayPreset modifies the config based on a difficulty preset.
// The empty preset keeps the loaded settings.
func ApplyGetawayPreset(cfg *GetawayConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
