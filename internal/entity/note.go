package entity

import (
	"slices"

	"github.com/vovakirdan/star-catcher/internal/core"
)

// Rhythm note glyphs.
const (
	NoteGlyph  = '♪'
	TrailGlyph = '¦'
)

// RhythmNote falls down a fixed lane. Its X never changes after spawn.
type RhythmNote struct {
	Lane  int
	X, Y  float64
	Speed float64
	Size  float64
	Color core.Color

	trail    []float64 // Previous Y positions, oldest first
	trailLen int
}

// NewRhythmNote creates a note in a lane with a trail of at most trailLen points.
func NewRhythmNote(lane int, x, y, speed, size float64, trailLen int, color core.Color) *RhythmNote {
	return &RhythmNote{
		Lane:     lane,
		X:        x,
		Y:        y,
		Speed:    speed,
		Size:     size,
		Color:    color,
		trail:    make([]float64, 0, max(trailLen, 0)),
		trailLen: max(trailLen, 0),
	}
}

// Kind implements Entity.
func (n *RhythmNote) Kind() Kind { return KindRhythmNote }

// Update records the current position in the trail and moves the note down.
func (n *RhythmNote) Update(dt float64, _ Context) bool {
	if n.trailLen > 0 {
		if len(n.trail) == n.trailLen {
			n.trail = slices.Delete(n.trail, 0, 1)
		}
		n.trail = append(n.trail, n.Y)
	}
	n.Y += n.Speed * dt
	return true
}

// Trail returns a copy of the recorded positions, oldest first.
func (n *RhythmNote) Trail() []float64 {
	return slices.Clone(n.trail)
}

// Draw implements Entity.
func (n *RhythmNote) Draw(dst *core.Screen, vp Viewport) {
	for _, y := range n.trail {
		vp.Plot(dst, n.X, y, TrailGlyph, core.ColorGray)
	}
	vp.Plot(dst, n.X, n.Y, NoteGlyph, n.Color)
}

// Bounds implements Entity.
func (n *RhythmNote) Bounds() core.Rect {
	return core.RectAround(n.X, n.Y, n.Size, n.Size)
}
