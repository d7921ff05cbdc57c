package entity

import "github.com/vovakirdan/star-catcher/internal/core"

// CurrencyGlyph is drawn for currency tokens.
const CurrencyGlyph = '$'

// CurrencyToken is a falling coin that pays into the profile when caught.
// It ignores the speed multiplier.
type CurrencyToken struct {
	X, Y   float64
	Speed  float64
	Size   float64
	Reward int
	Color  core.Color
}

// Kind implements Entity.
func (t *CurrencyToken) Kind() Kind { return KindCurrency }

// Update implements Entity.
func (t *CurrencyToken) Update(dt float64, _ Context) bool {
	t.Y += t.Speed * dt
	return true
}

// Draw implements Entity.
func (t *CurrencyToken) Draw(dst *core.Screen, vp Viewport) {
	vp.Plot(dst, t.X, t.Y, CurrencyGlyph, t.Color)
}

// Bounds implements Entity.
func (t *CurrencyToken) Bounds() core.Rect {
	return core.RectAround(t.X, t.Y, t.Size, t.Size)
}
