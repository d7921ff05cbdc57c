package entity

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
)

// BackgroundStar is a static twinkling point behind the playfield.
type BackgroundStar struct {
	X, Y  float64
	Phase float64
	Rate  float64
}

// Kind implements Entity.
func (s *BackgroundStar) Kind() Kind { return KindDecoration }

// Update implements Entity.
func (s *BackgroundStar) Update(dt float64, _ Context) bool {
	s.Phase = math.Mod(s.Phase+s.Rate*dt, 2*math.Pi)
	return true
}

// Draw implements Entity.
func (s *BackgroundStar) Draw(dst *core.Screen, vp Viewport) {
	if math.Sin(s.Phase) < -0.5 {
		return
	}
	vp.Plot(dst, s.X, s.Y, '.', core.ColorGray)
}

// Bounds implements Entity.
func (s *BackgroundStar) Bounds() core.Rect {
	return core.NewRect(s.X, s.Y, 0, 0)
}

// Wave is a procedural sine line drifting across the playfield.
type Wave struct {
	cfg    config.WaveConfig
	width  float64
	height float64
	phase  float64
	color  core.Color
}

// NewWave creates a wave spanning a playfield of w x h units.
func NewWave(cfg config.WaveConfig, w, h float64) *Wave {
	color, ok := core.ColorByName(cfg.Color)
	if !ok {
		color = core.ColorBlue
	}
	return &Wave{cfg: cfg, width: w, height: h, color: color}
}

// Kind implements Entity.
func (w *Wave) Kind() Kind { return KindDecoration }

// Update implements Entity.
func (w *Wave) Update(dt float64, _ Context) bool {
	w.phase = math.Mod(w.phase+w.cfg.Speed*dt, 2*math.Pi)
	return true
}

// YAt returns the wave height at playfield x.
func (w *Wave) YAt(x float64) float64 {
	return w.cfg.Offset*w.height + w.cfg.Amplitude*math.Sin(w.cfg.Frequency*x+w.phase)
}

// Draw plots one point per screen column.
func (w *Wave) Draw(dst *core.Screen, vp Viewport) {
	if vp.Area.W <= 0 {
		return
	}
	step := w.width / float64(vp.Area.W)
	for i := range vp.Area.W {
		x := (float64(i) + 0.5) * step
		vp.Plot(dst, x, w.YAt(x), '~', w.color)
	}
}

// Bounds implements Entity.
func (w *Wave) Bounds() core.Rect {
	top := w.cfg.Offset*w.height - w.cfg.Amplitude
	return core.NewRect(0, top, w.width, 2*w.cfg.Amplitude)
}

// Background owns the decorations. It is kept apart from gameplay managers
// so it can keep animating while a session is paused.
type Background struct {
	decor   *Manager[Entity]
	elapsed float64
}

// NewBackground scatters cfg.Stars stars over a w x h playfield and adds the
// configured waves.
func NewBackground(cfg config.BackgroundConfig, w, h float64, seed int64) *Background {
	rng := rand.New(rand.NewSource(seed))
	b := &Background{decor: NewManager[Entity]()}
	for range cfg.Stars {
		b.decor.Add(&BackgroundStar{
			X:     rng.Float64() * w,
			Y:     rng.Float64() * h,
			Phase: rng.Float64() * 2 * math.Pi,
			Rate:  0.5 + rng.Float64()*1.5,
		})
	}
	for _, wc := range cfg.Waves {
		b.decor.Add(NewWave(wc, w, h))
	}
	return b
}

// Update advances every decoration.
func (b *Background) Update(dt float64) {
	b.elapsed += dt
	b.decor.UpdateAll(dt, Context{SpeedMultiplier: 1, Elapsed: b.elapsed})
}

// Draw draws stars then waves.
func (b *Background) Draw(dst *core.Screen, vp Viewport) {
	b.decor.DrawAll(dst, vp)
}

// Len returns the number of decorations.
func (b *Background) Len() int {
	return b.decor.Len()
}
