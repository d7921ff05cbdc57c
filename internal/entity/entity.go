// Package entity defines the short-lived objects of a play session and the
// generic container that owns them.
//
// Every entity carries a Kind tag. Behavior that depends on the variant
// (catch, miss, scoring) lives in one switch over Kind in the game package
// rather than in the entities themselves.
package entity

import "github.com/vovakirdan/star-catcher/internal/core"

// Kind identifies an entity variant.
type Kind int

const (
	KindCollectible Kind = iota // Falling star
	KindParticle                // Catch burst fragment
	KindCurrency                // Falling coin
	KindRhythmNote              // Lane note in rhythm mode
	KindDecoration              // Background star or wave
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCollectible:
		return "collectible"
	case KindParticle:
		return "particle"
	case KindCurrency:
		return "currency"
	case KindRhythmNote:
		return "rhythm_note"
	case KindDecoration:
		return "decoration"
	default:
		return "unknown"
	}
}

// Context carries per-frame values shared by all entity updates.
type Context struct {
	SpeedMultiplier float64 // Current difficulty multiplier
	Elapsed         float64 // Seconds since the session started
}

// Entity is the capability set every managed object provides.
type Entity interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Update advances the entity by dt seconds and reports whether it is
	// still live. Entities that report false are dropped by the manager.
	Update(dt float64, ctx Context) bool
	// Draw renders the entity through the viewport.
	Draw(dst *core.Screen, vp Viewport)
	// Bounds returns the collision box in playfield units.
	Bounds() core.Rect
}
