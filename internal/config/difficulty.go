package config

import "math"

// Bounds every speed multiplier must stay within.
const (
	MultiplierFloor   = 1.0
	MultiplierCeiling = 5.0
)

// DifficultyManager tracks the speed multiplier of a session and derives
// spawn cadence and speeds from it. The multiplier starts at the initial
// value, grows on every catch and never decreases until Reset.
type DifficultyManager struct {
	cfg        DifficultyConfig
	tier       DifficultyPreset
	multiplier float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	d := &DifficultyManager{cfg: cfg, tier: cfg.Tier}
	if d.tier == "" {
		d.tier = DifficultyNormal
	}
	d.Reset()
	return d
}

// Reset restores the initial multiplier.
func (d *DifficultyManager) Reset() {
	d.multiplier = math.Max(MultiplierFloor, math.Min(d.cfg.InitialMultiplier, MultiplierCeiling))
}

// SetTier overrides the spawn cadence tier.
func (d *DifficultyManager) SetTier(p DifficultyPreset) {
	d.tier = p
}

// Tier returns the current tier.
func (d *DifficultyManager) Tier() DifficultyPreset {
	return d.tier
}

// Multiplier returns the current speed multiplier.
func (d *DifficultyManager) Multiplier() float64 {
	return d.multiplier
}

// RegisterCatch raises the multiplier by one increment, capped at the maximum.
func (d *DifficultyManager) RegisterCatch() float64 {
	d.multiplier = math.Min(math.Min(d.cfg.MaxMultiplier, MultiplierCeiling), d.multiplier+d.cfg.CatchIncrement)
	return d.multiplier
}

// SpawnInterval returns the number of frames between spawn batches.
func (d *DifficultyManager) SpawnInterval() int {
	if n := d.cfg.SpawnIntervals.Interval(d.tier); n > 0 {
		return n
	}
	return 1
}

// BatchSize returns how many objects spawn per batch: one plus one for every
// threshold the multiplier has reached.
func (d *DifficultyManager) BatchSize() int {
	n := 1
	for _, th := range d.cfg.BatchThresholds {
		if d.multiplier >= th {
			n++
		}
	}
	return n
}

// ActorSpeed returns the actor's horizontal speed for the current multiplier.
func (d *DifficultyManager) ActorSpeed(a ActorConfig) float64 {
	return math.Min(a.MaxSpeed, a.BaseSpeed+(d.multiplier-1)*a.SpeedPerMultiplier)
}

// FallSpeed scales a base fall speed by the multiplier.
func (d *DifficultyManager) FallSpeed(base float64) float64 {
	return base * d.multiplier
}
