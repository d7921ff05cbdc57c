package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in config directories.
const FileName = "starcatcher.yaml"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Load loads the configuration.
// Search order: customPath -> ~/.starcatcher/configs/starcatcher.yaml -> ./configs/starcatcher.yaml -> embedded default
//
// Files only need to set the keys they change; everything else keeps its
// default value.
func Load(customPath string) (Config, error) {
	cfg := embedded()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if c, ok := tryFile(userCfgPath, cfg); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryFile(filepath.Join("configs", FileName), cfg); ok {
		return c, nil
	}

	return cfg, nil
}

// tryFile overlays a YAML file onto base. Unreadable, unparsable or invalid
// files are skipped.
func tryFile(path string, base Config) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	cfg.Background.Waves = append([]WaveConfig(nil), base.Background.Waves...)
	cfg.Shop.Items = append([]ShopItem(nil), base.Shop.Items...)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	if cfg.Validate() != nil {
		return base, false
	}
	return cfg, true
}

// embedded parses the embedded default YAML.
func embedded() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig() // Fallback to hardcoded if embed fails
	}
	if cfg.Validate() != nil {
		return DefaultConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starcatcher", "configs", filename)
}

// ApplyPreset selects the spawn cadence tier.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if _, ok := ParsePreset(string(preset)); !ok {
		return
	}
	cfg.Difficulty.Tier = preset
}

// Validate reports the first invalid value found.
func (c Config) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("config: playfield must be positive: %w", ErrInvalid)
	case c.Actor.Width <= 0 || c.Actor.Height <= 0:
		return fmt.Errorf("config: actor size must be positive: %w", ErrInvalid)
	case c.Actor.MaxSpeed < c.Actor.BaseSpeed:
		return fmt.Errorf("config: actor max_speed below base_speed: %w", ErrInvalid)
	case c.Collectible.MinDepth <= 0 || c.Collectible.MaxDepth < c.Collectible.MinDepth:
		return fmt.Errorf("config: collectible depth range: %w", ErrInvalid)
	case c.Collectible.MaxSpeed < c.Collectible.MinSpeed:
		return fmt.Errorf("config: collectible speed range: %w", ErrInvalid)
	case c.Collectible.SpawnMaxY < c.Collectible.SpawnMinY:
		return fmt.Errorf("config: collectible spawn_y range: %w", ErrInvalid)
	case 2*c.Collectible.SpawnMargin > c.Playfield.Width:
		return fmt.Errorf("config: collectible spawn_margin wider than playfield: %w", ErrInvalid)
	case c.Particles.MinCount < 0 || c.Particles.MaxCount < c.Particles.MinCount:
		return fmt.Errorf("config: particle count range: %w", ErrInvalid)
	case c.Currency.Chance < 0 || c.Currency.Chance > 1:
		return fmt.Errorf("config: currency chance must be in [0, 1]: %w", ErrInvalid)
	case c.Difficulty.InitialMultiplier < MultiplierFloor || c.Difficulty.MaxMultiplier > MultiplierCeiling ||
		c.Difficulty.MaxMultiplier < c.Difficulty.InitialMultiplier:
		return fmt.Errorf("config: multiplier range must lie in [%g, %g]: %w", MultiplierFloor, MultiplierCeiling, ErrInvalid)
	case c.Difficulty.CatchIncrement < 0:
		return fmt.Errorf("config: catch_increment must not be negative: %w", ErrInvalid)
	case c.Difficulty.MaxMissed <= 0:
		return fmt.Errorf("config: max_missed must be positive: %w", ErrInvalid)
	case c.Difficulty.SpawnIntervals.Easy <= 0 || c.Difficulty.SpawnIntervals.Normal <= 0 || c.Difficulty.SpawnIntervals.Hard <= 0:
		return fmt.Errorf("config: spawn intervals must be positive: %w", ErrInvalid)
	case c.Rhythm.Lanes <= 0:
		return fmt.Errorf("config: rhythm lanes must be positive: %w", ErrInvalid)
	case c.Rhythm.MutedVolume < 0 || c.Rhythm.MutedVolume > 1:
		return fmt.Errorf("config: rhythm muted_volume must be in [0, 1]: %w", ErrInvalid)
	case c.Rhythm.MaxCatchUp <= 0:
		return fmt.Errorf("config: rhythm max_catch_up must be positive: %w", ErrInvalid)
	}
	for i, th := range c.Difficulty.BatchThresholds {
		if i > 0 && th < c.Difficulty.BatchThresholds[i-1] {
			return fmt.Errorf("config: batch_thresholds must be ascending: %w", ErrInvalid)
		}
	}
	return nil
}
