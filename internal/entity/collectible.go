package entity

import (
	"math"

	"github.com/vovakirdan/star-catcher/internal/core"
)

// Collectible glyphs from far to near.
const (
	GlyphStarFar  = '·'
	GlyphStarMid  = '✦'
	GlyphStarNear = '★'
)

// Collectible is a falling star. Depth Z in [0.1, 1.0] sets its size and
// brightness; far stars are smaller and worth more.
type Collectible struct {
	X, Y       float64 // Center position
	Z          float64 // Depth
	Speed      float64 // Base fall speed, scaled by the speed multiplier
	Size       float64 // Half-extent of the collision box
	Points     int     // Score for catching it
	BlinkSpeed float64 // Radians per second
	Phase      float64 // Current blink phase
	Color      core.Color
}

// DepthPoints returns round(base - perDepth*z).
func DepthPoints(base, perDepth, z float64) int {
	return int(math.Round(base - perDepth*z))
}

// Kind implements Entity.
func (c *Collectible) Kind() Kind { return KindCollectible }

// Update moves the star down and advances its blink. Stars stay live until
// the resolver catches or sweeps them.
func (c *Collectible) Update(dt float64, ctx Context) bool {
	mult := ctx.SpeedMultiplier
	if mult <= 0 {
		mult = 1
	}
	c.Y += c.Speed * mult * dt
	c.Phase = math.Mod(c.Phase+c.BlinkSpeed*dt, 2*math.Pi)
	return true
}

// Brightness returns the current blink level in [0, 1]. Near stars are
// brighter on average.
func (c *Collectible) Brightness() float64 {
	base := 0.4 + 0.6*c.Z
	return core.ClampF(base*(0.75+0.25*math.Sin(c.Phase)), 0, 1)
}

// Draw implements Entity.
func (c *Collectible) Draw(dst *core.Screen, vp Viewport) {
	glyph := GlyphStarMid
	switch {
	case c.Z >= 0.7:
		glyph = GlyphStarNear
	case c.Z < 0.35:
		glyph = GlyphStarFar
	}
	color := c.Color
	if c.Brightness() < 0.35 {
		color = core.ColorGray
	}
	vp.Plot(dst, c.X, c.Y, glyph, color)
}

// Bounds implements Entity.
func (c *Collectible) Bounds() core.Rect {
	return core.RectAround(c.X, c.Y, c.Size, c.Size)
}
