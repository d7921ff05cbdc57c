package config

import (
	_ "embed"
)

//go:embed defaults/starcatcher.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration used when the embedded
// YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Playfield: PlayfieldConfig{
			Width:  500,
			Height: 800,
		},
		Actor: ActorConfig{
			Width:              100,
			Height:             20,
			BottomOffset:       80,
			BaseSpeed:          540,
			SpeedPerMultiplier: 180,
			MaxSpeed:           840,
			Color:              "white",
		},
		Collectible: CollectibleConfig{
			MinDepth:      0.1,
			MaxDepth:      1.0,
			MinSpeed:      84,
			MaxSpeed:      96,
			BasePoints:    15,
			DepthPoints:   10,
			BaseSize:      6,
			DepthSize:     8,
			SpawnMargin:   100,
			SpawnMinY:     -200,
			SpawnMaxY:     -20,
			MinBlinkSpeed: 2,
			MaxBlinkSpeed: 5,
			MissPenalty:   5,
			Color:         "bright_yellow",
		},
		Particles: ParticleConfig{
			MinCount:    8,
			MaxCount:    12,
			MaxVelocity: 150,
			MinRadius:   2,
			MaxRadius:   5,
			ShrinkRate:  5,
			MinLifetime: 0.2,
			MaxLifetime: 0.5,
		},
		Currency: CurrencyConfig{
			Chance:    0.05,
			Reward:    5,
			FallSpeed: 120,
			Size:      10,
			Color:     "yellow",
		},
		Difficulty: DifficultyConfig{
			Tier:              DifficultyNormal,
			InitialMultiplier: 1.0,
			CatchIncrement:    0.03,
			MaxMultiplier:     5.0,
			BatchThresholds:   []float64{2.0, 3.5},
			MaxMissed:         10,
			SpawnIntervals: SpawnIntervals{
				Easy:   90,
				Normal: 70,
				Hard:   50,
			},
		},
		Rhythm: RhythmConfig{
			Lanes:       3,
			NoteSpeed:   300,
			NoteSize:    14,
			NoteReward:  10,
			GateWindow:  0.5,
			MutedVolume: 0.05,
			TrailLength: 6,
			MaxCatchUp:  8,
			NoteColor:   "bright_magenta",
		},
		Audio: AudioConfig{
			Enabled:       true,
			SampleRate:    44100,
			MusicVolume:   0.8,
			EffectsVolume: 0.6,
		},
		Background: BackgroundConfig{
			Stars: 200,
			Waves: []WaveConfig{
				{Amplitude: 50, Frequency: 0.01, Speed: 1.2, Offset: 0.75, Color: "blue"},
				{Amplitude: 60, Frequency: 0.007, Speed: -0.9, Offset: 0.775, Color: "bright_blue"},
				{Amplitude: 40, Frequency: 0.012, Speed: 0.6, Offset: 0.7625, Color: "cyan"},
			},
		},
		Shop: ShopConfig{
			Items: []ShopItem{
				{Category: CategoryColor, ID: "gold", Name: "Gold Stars", Price: 0, Color: "bright_yellow"},
				{Category: CategoryColor, ID: "ice", Name: "Ice Stars", Price: 50, Color: "bright_cyan"},
				{Category: CategoryColor, ID: "rose", Name: "Rose Stars", Price: 75, Color: "bright_magenta"},
				{Category: CategoryColor, ID: "moss", Name: "Moss Stars", Price: 100, Color: "bright_green"},
				{Category: CategoryBasket, ID: "classic", Name: "Classic Basket", Price: 0, Color: "white"},
				{Category: CategoryBasket, ID: "ember", Name: "Ember Basket", Price: 60, Color: "bright_red"},
				{Category: CategoryBasket, ID: "wide", Name: "Wide Basket", Price: 150, Color: "bright_blue", Width: 140},
			},
		},
	}
}

// DefaultItems are the items every profile owns and has equipped from the start.
var DefaultItems = map[string]string{
	CategoryColor:  "gold",
	CategoryBasket: "classic",
}
