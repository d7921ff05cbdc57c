// Package states holds the session state machine: menus, the two play
// modes and the overlays drawn on top of them. Exactly one state is active;
// it receives input and returns the state that should run next.
package states

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-catcher/internal/audio"
	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/entity"
	"github.com/vovakirdan/star-catcher/internal/game"
	"github.com/vovakirdan/star-catcher/internal/profile"
	"github.com/vovakirdan/star-catcher/internal/registry"
)

// State is one screen of the session.
type State interface {
	// Name identifies the state in logs and tests.
	Name() string
	// Update handles one frame and returns the next state. Returning the
	// receiver keeps the state; returning nil ends the session.
	Update(env *Env, dt float64, in core.InputFrame) State
	// Draw renders the state on top of the background.
	Draw(env *Env, dst *core.Screen)
}

// ScoreRecorder stores finished runs.
type ScoreRecorder interface {
	SaveScore(owner, mode string, score int) (int64, error)
}

// Env is what states share. It is owned by the machine and only touched on
// the frame loop.
type Env struct {
	Config  config.Config
	Tier    config.DifficultyPreset
	Profile profile.Profile
	Audio   audio.Player  // May be nil
	Scores  ScoreRecorder // May be nil
	Owner   string
	Muted   bool
	Logger  *log.Logger
	Seed    int64 // 0 seeds from the wall clock

	background *entity.Background
}

func (e *Env) nextSeed() int64 {
	if e.Seed == 0 {
		return time.Now().UnixNano()
	}
	e.Seed++
	return e.Seed
}

func (e *Env) deps(seed int64) game.Deps {
	return game.Deps{
		Config:  e.Config,
		Tier:    e.Tier,
		Profile: e.Profile,
		Effects: e.effects(),
		Seed:    seed,
	}
}

func (e *Env) effects() audio.Effects {
	if e.Muted || e.Audio == nil {
		return audio.NoEffects()
	}
	return audio.EffectsFrom(e.Audio)
}

func (e *Env) playSelect() {
	if !e.Muted && e.Audio != nil {
		e.Audio.Effect(audio.SoundSelect).Play()
	}
}

// track loads a song's track, falling back to a silent one that keeps time.
func (e *Env) track(song registry.Song) audio.Track {
	if e.Muted || e.Audio == nil {
		return audio.NewSilentTrack(song.Duration())
	}
	t, ok := e.Audio.LoadTrack(song.ID)
	if !ok {
		e.Logger.Warn("playing without music", "song", song.ID)
	}
	return t
}

// record stores a finished run and reports whether it set a new high score.
func (e *Env) record(mode string, score int) bool {
	e.Logger.Info("game over", "mode", mode, "score", score)
	best := false
	if e.Profile != nil {
		best = e.Profile.SetHighScore(score)
	}
	if e.Scores != nil && score > 0 {
		if _, err := e.Scores.SaveScore(e.Owner, mode, score); err != nil {
			e.Logger.Error("could not save score", "mode", mode, "err", err)
		}
	}
	return best
}

// Machine runs the active state and the background behind it.
type Machine struct {
	env     *Env
	current State
	done    bool
}

// NewMachine starts at the main menu.
func NewMachine(env *Env) *Machine {
	if env.Logger == nil {
		env.Logger = log.Default()
	}
	if env.Tier == "" {
		env.Tier = env.Config.Difficulty.Tier
	}
	pf := env.Config.Playfield
	env.background = entity.NewBackground(env.Config.Background, pf.Width, pf.Height, env.nextSeed())
	return &Machine{env: env, current: NewMenu()}
}

// Env returns the shared environment.
func (m *Machine) Env() *Env {
	return m.env
}

// Current returns the active state.
func (m *Machine) Current() State {
	return m.current
}

// Done reports whether the session has ended.
func (m *Machine) Done() bool {
	return m.done
}

// Update advances the background and the active state by one frame.
func (m *Machine) Update(dt float64, in core.InputFrame) {
	if m.done {
		return
	}
	m.env.background.Update(dt)

	next := m.current.Update(m.env, dt, in)
	switch {
	case next == nil:
		m.env.Logger.Debug("session ended", "from", m.current.Name())
		m.done = true
	case next != m.current:
		m.env.Logger.Debug("state change", "from", m.current.Name(), "to", next.Name())
		m.current = next
	}
}

// Draw renders the background and the active state.
func (m *Machine) Draw(dst *core.Screen) {
	dst.Clear()
	pf := m.env.Config.Playfield
	area := core.NewCellRect(0, 0, dst.Width(), dst.Height())
	m.env.background.Draw(dst, entity.NewViewport(pf.Width, pf.Height, area))
	m.current.Draw(m.env, dst)
}

// Close finishes a running session and releases audio.
func (m *Machine) Close() {
	if p, ok := m.current.(finisher); ok {
		p.finish()
	}
	if m.env.Audio != nil {
		m.env.Audio.Close()
	}
}
