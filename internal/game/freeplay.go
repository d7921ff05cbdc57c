package game

import (
	"fmt"

	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/entity"
)

// FreePlay is endless star catching until too many stars are missed.
type FreePlay struct {
	base
	spawner *Spawner
}

// NewFreePlay creates a fresh free play session.
func NewFreePlay(d Deps) *FreePlay {
	f := &FreePlay{base: newBase(d)}
	f.spawner = NewSpawner(f.cfg, f.difficulty, f.rng, f.theme)
	return f
}

// ID implements Mode.
func (f *FreePlay) ID() string { return ModeFreePlay }

// Title implements Mode.
func (f *FreePlay) Title() string { return "Free Play" }

// Update runs one frame: spawn, move entities, move the actor, resolve.
func (f *FreePlay) Update(dt float64, in core.InputFrame) {
	if f.session.Terminal {
		return
	}
	f.elapsed += dt

	f.spawner.Tick(f.entities)
	f.entities.UpdateAll(dt, entity.Context{
		SpeedMultiplier: f.difficulty.Multiplier(),
		Elapsed:         f.elapsed,
	})
	f.actor.Update(in, f.difficulty.ActorSpeed(f.cfg.Actor), dt)
	f.resolver.Resolve(f.entities, f.actor, &f.session)
}

// Draw implements Mode.
func (f *FreePlay) Draw(dst *core.Screen) {
	vp := f.Viewport(dst)
	f.drawField(dst, vp)

	hud{
		Left:   fmt.Sprintf("Score: %d  Combo: %d  Coins: +%d", f.session.Score, f.session.Combo, f.session.Earned),
		Right:  fmt.Sprintf("Missed: %d/%d", f.session.Missed, f.session.MaxMissed),
		Bottom: fmt.Sprintf("Speed x%.2f  Velocity %+.0f", f.difficulty.Multiplier(), f.actor.Velocity),
	}.draw(dst)
}

// Spawner exposes the spawner.
func (f *FreePlay) Spawner() *Spawner { return f.spawner }

// Pause implements Mode. Free play holds nothing time-based.
func (f *FreePlay) Pause() {}

// Resume implements Mode.
func (f *FreePlay) Resume() {}

// Finish implements Mode.
func (f *FreePlay) Finish() {}
