// Package config provides YAML-based configuration loading and difficulty
// management for the simulation.
package config

// Config contains all tunables for a session. Distances are playfield units,
// speeds are units per second and durations are seconds.
type Config struct {
	Playfield   PlayfieldConfig   `yaml:"playfield"`
	Actor       ActorConfig       `yaml:"actor"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Particles   ParticleConfig    `yaml:"particles"`
	Currency    CurrencyConfig    `yaml:"currency"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
	Rhythm      RhythmConfig      `yaml:"rhythm"`
	Audio       AudioConfig       `yaml:"audio"`
	Background  BackgroundConfig  `yaml:"background"`
	Shop        ShopConfig        `yaml:"shop"`
}

// PlayfieldConfig defines the virtual playfield the simulation runs in.
// It is scaled to the terminal when drawn.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ActorConfig defines the player-controlled collector.
type ActorConfig struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	BottomOffset       float64 `yaml:"bottom_offset"`        // Distance from the playfield bottom to the actor top
	BaseSpeed          float64 `yaml:"base_speed"`           // Speed at multiplier 1.0
	SpeedPerMultiplier float64 `yaml:"speed_per_multiplier"` // Added per unit of multiplier above 1.0
	MaxSpeed           float64 `yaml:"max_speed"`
	Color              string  `yaml:"color"`
}

// CollectibleConfig defines falling stars.
type CollectibleConfig struct {
	MinDepth      float64 `yaml:"min_depth"`
	MaxDepth      float64 `yaml:"max_depth"`
	MinSpeed      float64 `yaml:"min_speed"` // Base fall speed range before the multiplier
	MaxSpeed      float64 `yaml:"max_speed"`
	BasePoints    float64 `yaml:"base_points"`  // points = round(base - depth_points*z)
	DepthPoints   float64 `yaml:"depth_points"` //
	BaseSize      float64 `yaml:"base_size"`    // half-extent = base_size + depth_size*z
	DepthSize     float64 `yaml:"depth_size"`
	SpawnMargin   float64 `yaml:"spawn_margin"` // Horizontal margin from playfield edges
	SpawnMinY     float64 `yaml:"spawn_min_y"`
	SpawnMaxY     float64 `yaml:"spawn_max_y"`
	MinBlinkSpeed float64 `yaml:"min_blink_speed"`
	MaxBlinkSpeed float64 `yaml:"max_blink_speed"`
	MissPenalty   int     `yaml:"miss_penalty"`
	Color         string  `yaml:"color"`
}

// ParticleConfig defines catch bursts.
type ParticleConfig struct {
	MinCount    int     `yaml:"min_count"`
	MaxCount    int     `yaml:"max_count"`
	MaxVelocity float64 `yaml:"max_velocity"`
	MinRadius   float64 `yaml:"min_radius"`
	MaxRadius   float64 `yaml:"max_radius"`
	ShrinkRate  float64 `yaml:"shrink_rate"`
	MinLifetime float64 `yaml:"min_lifetime"`
	MaxLifetime float64 `yaml:"max_lifetime"`
}

// CurrencyConfig defines currency tokens.
type CurrencyConfig struct {
	Chance    float64 `yaml:"chance"` // Probability per spawn tick
	Reward    int     `yaml:"reward"`
	FallSpeed float64 `yaml:"fall_speed"`
	Size      float64 `yaml:"size"`
	Color     string  `yaml:"color"`
}

// DifficultyConfig defines the speed multiplier ramp and spawn cadence.
type DifficultyConfig struct {
	Tier              DifficultyPreset `yaml:"tier"`
	InitialMultiplier float64          `yaml:"initial_multiplier"`
	CatchIncrement    float64          `yaml:"catch_increment"`
	MaxMultiplier     float64          `yaml:"max_multiplier"`
	BatchThresholds   []float64        `yaml:"batch_thresholds"` // Multipliers at which batch size grows by one
	MaxMissed         int              `yaml:"max_missed"`
	SpawnIntervals    SpawnIntervals   `yaml:"spawn_intervals"`
}

// SpawnIntervals are the frames between spawn batches for each tier.
type SpawnIntervals struct {
	Easy   int `yaml:"easy"`
	Normal int `yaml:"normal"`
	Hard   int `yaml:"hard"`
}

// RhythmConfig defines rhythm mode.
type RhythmConfig struct {
	Lanes       int     `yaml:"lanes"`
	NoteSpeed   float64 `yaml:"note_speed"`
	NoteSize    float64 `yaml:"note_size"`
	NoteReward  int     `yaml:"note_reward"`
	GateWindow  float64 `yaml:"gate_window"`  // Seconds the track stays audible after a catch
	MutedVolume float64 `yaml:"muted_volume"` // Volume outside the gate window
	TrailLength int     `yaml:"trail_length"`
	MaxCatchUp  int     `yaml:"max_catch_up"` // Max notes spawned in one frame after a dt spike
	NoteColor   string  `yaml:"note_color"`
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	SampleRate    int     `yaml:"sample_rate"`
	MusicVolume   float64 `yaml:"music_volume"`
	EffectsVolume float64 `yaml:"effects_volume"`
}

// BackgroundConfig defines cosmetic decorations.
type BackgroundConfig struct {
	Stars int          `yaml:"stars"`
	Waves []WaveConfig `yaml:"waves"`
}

// WaveConfig defines one procedural sine wave.
type WaveConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Speed     float64 `yaml:"speed"`
	Offset    float64 `yaml:"offset"`
	Color     string  `yaml:"color"`
}

// ShopConfig lists purchasable cosmetics.
type ShopConfig struct {
	Items []ShopItem `yaml:"items"`
}

// Shop item categories.
const (
	CategoryColor  = "color"  // Star color
	CategoryBasket = "basket" // Actor width and color
)

// ShopItem is one cosmetic. Color applies to stars (color category) or the
// actor (basket category); Width overrides the actor width when non-zero.
type ShopItem struct {
	Category string  `yaml:"category"`
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Price    int     `yaml:"price"`
	Color    string  `yaml:"color"`
	Width    float64 `yaml:"width"`
}

// Item looks up a shop item by category and id.
func (s ShopConfig) Item(category, id string) (ShopItem, bool) {
	for _, it := range s.Items {
		if it.Category == category && it.ID == id {
			return it, true
		}
	}
	return ShopItem{}, false
}

// DifficultyPreset represents a named difficulty tier.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists tiers from easiest to hardest.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset converts a CLI value to a preset. Empty or unknown values report false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// Title returns the display name of the preset.
func (p DifficultyPreset) Title() string {
	switch p {
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Interval returns the spawn interval for a tier, falling back to normal.
func (s SpawnIntervals) Interval(p DifficultyPreset) int {
	switch p {
	case DifficultyEasy:
		return s.Easy
	case DifficultyHard:
		return s.Hard
	default:
		return s.Normal
	}
}
