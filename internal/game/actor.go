// Package game implements the two play modes: free play with falling stars
// and rhythm play synchronized to a song. It holds no terminal or audio
// device code; both arrive through interfaces.
package game

import (
	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/entity"
)

// ActorGlyph is drawn for every actor cell.
const ActorGlyph = '▀'

// Actor is the player-controlled collector. It only moves horizontally.
type Actor struct {
	X, Y     float64 // Top-left corner
	Width    float64
	Height   float64
	Velocity float64 // Signed speed applied on the last update
	Color    core.Color

	fieldW float64
}

// NewActor centers an actor near the bottom of the playfield.
func NewActor(cfg config.ActorConfig, field config.PlayfieldConfig, theme Theme) *Actor {
	w := cfg.Width
	if theme.ActorWidth > 0 {
		w = theme.ActorWidth
	}
	return &Actor{
		X:      (field.Width - w) / 2,
		Y:      field.Height - cfg.BottomOffset,
		Width:  w,
		Height: cfg.Height,
		Color:  theme.ActorColor,
		fieldW: field.Width,
	}
}

// SetWidth changes the width around the current center.
func (a *Actor) SetWidth(w float64) {
	cx := a.X + a.Width/2
	a.Width = w
	a.X = core.ClampF(cx-w/2, 0, max(0, a.fieldW-w))
}

// Update moves the actor by the held direction at the given speed.
// Holding both directions cancels out.
func (a *Actor) Update(in core.InputFrame, speed, dt float64) {
	dir := 0.0
	if in.IsHeld(core.ActionLeft) {
		dir--
	}
	if in.IsHeld(core.ActionRight) {
		dir++
	}
	a.Velocity = dir * speed
	a.X = core.ClampF(a.X+a.Velocity*dt, 0, max(0, a.fieldW-a.Width))
}

// Bounds returns the collision box.
func (a *Actor) Bounds() core.Rect {
	return core.NewRect(a.X, a.Y, a.Width, a.Height)
}

// Draw renders the actor as a bar.
func (a *Actor) Draw(dst *core.Screen, vp entity.Viewport) {
	vp.FillRect(dst, a.Bounds(), ActorGlyph, a.Color)
}
