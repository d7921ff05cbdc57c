package entity

import "github.com/vovakirdan/star-catcher/internal/core"

// Particle is a fragment of a catch burst. It has no collision behavior.
type Particle struct {
	X, Y       float64
	VX, VY     float64 // Units per second
	Radius     float64
	Life       float64 // Seconds remaining
	ShrinkRate float64 // Radius lost per second
	Color      core.Color
}

// Kind implements Entity.
func (p *Particle) Kind() Kind { return KindParticle }

// Update moves, ages and shrinks the particle.
func (p *Particle) Update(dt float64, _ Context) bool {
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.Life -= dt
	p.Radius -= p.ShrinkRate * dt
	return p.Live()
}

// Live reports whether the particle is still visible.
func (p *Particle) Live() bool {
	return p.Life > 0 && p.Radius > 1
}

// Draw implements Entity.
func (p *Particle) Draw(dst *core.Screen, vp Viewport) {
	glyph := '·'
	if p.Radius > 3 {
		glyph = '•'
	}
	vp.Plot(dst, p.X, p.Y, glyph, p.Color)
}

// Bounds implements Entity.
func (p *Particle) Bounds() core.Rect {
	return core.RectAround(p.X, p.Y, p.Radius, p.Radius)
}
