package entity

import (
	"math"

	"github.com/vovakirdan/star-catcher/internal/core"
)

// Viewport maps playfield coordinates onto a rectangle of screen cells.
type Viewport struct {
	Area   core.CellRect // Screen cells the playfield occupies
	Width  float64       // Playfield width in units
	Height float64       // Playfield height in units
}

// NewViewport creates a viewport for a playfield of w x h units drawn into area.
func NewViewport(w, h float64, area core.CellRect) Viewport {
	return Viewport{Area: area, Width: w, Height: h}
}

// ToCell converts a playfield point to screen cell coordinates.
func (v Viewport) ToCell(x, y float64) (int, int) {
	if v.Width <= 0 || v.Height <= 0 {
		return v.Area.X, v.Area.Y
	}
	cx := v.Area.X + int(math.Floor(x/v.Width*float64(v.Area.W)))
	cy := v.Area.Y + int(math.Floor(y/v.Height*float64(v.Area.H)))
	return cx, cy
}

// Visible reports whether a cell lies inside the viewport area.
func (v Viewport) Visible(cx, cy int) bool {
	return cx >= v.Area.X && cx < v.Area.Right() && cy >= v.Area.Y && cy < v.Area.Bottom()
}

// Plot draws a rune at a playfield point if it falls inside the area.
func (v Viewport) Plot(dst *core.Screen, x, y float64, r rune, c core.Color) {
	cx, cy := v.ToCell(x, y)
	if v.Visible(cx, cy) {
		dst.SetColored(cx, cy, r, c)
	}
}

// FillRect fills the cells covered by a playfield rectangle, clipped to the
// area. Rectangles smaller than a cell still cover one cell.
func (v Viewport) FillRect(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	x0, y0 := v.ToCell(r.X, r.Y)
	x1, y1 := v.ToCell(r.Right(), r.Bottom())
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)
	for y := max(y0, v.Area.Y); y < min(y1, v.Area.Bottom()); y++ {
		for x := max(x0, v.Area.X); x < min(x1, v.Area.Right()); x++ {
			dst.SetColored(x, y, ch, c)
		}
	}
}
