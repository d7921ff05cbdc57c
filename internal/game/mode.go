package game

import (
	"math/rand"

	"github.com/vovakirdan/star-catcher/internal/audio"
	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/entity"
	"github.com/vovakirdan/star-catcher/internal/profile"
)

// ModeFreePlay is the score mode for free play.
const ModeFreePlay = "freeplay"

// RhythmMode returns the score mode for a song.
func RhythmMode(songID string) string {
	return "rhythm:" + songID
}

// Mode is a running play session.
type Mode interface {
	// ID returns the score mode, e.g. "freeplay" or "rhythm:twinkle".
	ID() string
	// Title returns a display name.
	Title() string
	// Update advances the session by dt seconds.
	Update(dt float64, in core.InputFrame)
	// Draw renders entities, the actor and the HUD.
	Draw(dst *core.Screen)
	// Session returns a copy of the scoring state.
	Session() Session
	// Pause suspends time-based resources such as the audio track.
	Pause()
	// Resume undoes Pause.
	Resume()
	// Finish releases resources once the session is over or abandoned.
	Finish()
}

// Deps are the collaborators a mode needs.
type Deps struct {
	Config  config.Config
	Tier    config.DifficultyPreset
	Profile profile.Profile // May be nil
	Effects audio.Effects
	Seed    int64
}

// base holds what both modes share.
type base struct {
	cfg        *config.Config
	difficulty *config.DifficultyManager
	entities   *entity.Manager[entity.Entity]
	actor      *Actor
	session    Session
	resolver   *Resolver
	rng        *rand.Rand
	theme      Theme
	elapsed    float64
}

func newBase(d Deps) base {
	cfg := d.Config
	if d.Tier != "" {
		config.ApplyPreset(&cfg, d.Tier)
	}
	if d.Effects.Catch == nil {
		d.Effects = audio.NoEffects()
	}
	rng := rand.New(rand.NewSource(d.Seed))
	diff := config.NewDifficultyManager(cfg.Difficulty)
	theme := ResolveTheme(cfg, d.Profile)

	b := base{
		cfg:        &cfg,
		difficulty: diff,
		entities:   entity.NewManager[entity.Entity](),
		actor:      NewActor(cfg.Actor, cfg.Playfield, theme),
		session:    Session{MaxMissed: cfg.Difficulty.MaxMissed},
		rng:        rng,
		theme:      theme,
	}
	b.resolver = &Resolver{
		FieldHeight: cfg.Playfield.Height,
		MissPenalty: cfg.Collectible.MissPenalty,
		NoteReward:  cfg.Rhythm.NoteReward,
		Difficulty:  diff,
		Emitter:     NewEmitter(cfg.Particles, rng),
		Effects:     d.Effects,
		Profile:     d.Profile,
	}
	return b
}

// Session implements Mode.
func (b *base) Session() Session {
	return b.session
}

// Entities exposes the entity manager.
func (b *base) Entities() *entity.Manager[entity.Entity] {
	return b.entities
}

// Actor exposes the actor.
func (b *base) Actor() *Actor {
	return b.actor
}

// Difficulty exposes the difficulty manager.
func (b *base) Difficulty() *config.DifficultyManager {
	return b.difficulty
}

// Viewport returns the playfield viewport for a screen.
func (b *base) Viewport(dst *core.Screen) entity.Viewport {
	return Layout(dst.Width(), dst.Height(), b.cfg.Playfield)
}

// drawField draws the frame, entities and actor.
func (b *base) drawField(dst *core.Screen, vp entity.Viewport) {
	frame := core.NewCellRect(vp.Area.X-1, vp.Area.Y-1, vp.Area.W+2, vp.Area.H+2)
	dst.DrawBoxColored(frame, core.ColorGray)
	b.entities.DrawAll(dst, vp)
	b.actor.Draw(dst, vp)
}

// HUD rows above and below the playfield frame.
const (
	hudTop    = 1
	hudBottom = 1
)

// Layout fits the playfield into a screen, keeping its aspect ratio with
// terminal cells counted as twice as tall as they are wide. One row above
// and one below are left for the HUD, plus the frame around the field.
func Layout(screenW, screenH int, field config.PlayfieldConfig) entity.Viewport {
	rows := max(1, screenH-hudTop-hudBottom-2)
	cols := int(float64(rows) * field.Width / field.Height * 2)
	if maxCols := screenW - 2; cols > maxCols {
		cols = max(1, maxCols)
		rows = max(1, min(rows, int(float64(cols)*field.Height/field.Width/2)))
	}
	x := (screenW - cols) / 2
	y := hudTop + 1
	return entity.NewViewport(field.Width, field.Height, core.NewCellRect(x, y, cols, rows))
}
