package game

import (
	"math/rand"

	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/entity"
)

// Emitter creates particle bursts.
type Emitter struct {
	cfg config.ParticleConfig
	rng *rand.Rand
}

// NewEmitter creates an emitter drawing randomness from rng.
func NewEmitter(cfg config.ParticleConfig, rng *rand.Rand) *Emitter {
	return &Emitter{cfg: cfg, rng: rng}
}

// Burst adds a burst of particles at (x, y) and returns how many were added.
func (e *Emitter) Burst(m *entity.Manager[entity.Entity], x, y float64, color core.Color) int {
	n := e.cfg.MinCount
	if e.cfg.MaxCount > e.cfg.MinCount {
		n += e.rng.Intn(e.cfg.MaxCount - e.cfg.MinCount + 1)
	}
	for range n {
		m.Add(&entity.Particle{
			X:          x,
			Y:          y,
			VX:         e.uniform(-e.cfg.MaxVelocity, e.cfg.MaxVelocity),
			VY:         e.uniform(-e.cfg.MaxVelocity, e.cfg.MaxVelocity),
			Radius:     e.uniform(e.cfg.MinRadius, e.cfg.MaxRadius),
			Life:       e.uniform(e.cfg.MinLifetime, e.cfg.MaxLifetime),
			ShrinkRate: e.cfg.ShrinkRate,
			Color:      color,
		})
	}
	return n
}

func (e *Emitter) uniform(lo, hi float64) float64 {
	return lo + e.rng.Float64()*(hi-lo)
}
