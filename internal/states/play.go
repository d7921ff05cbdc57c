package states

import (
	"fmt"

	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/game"
)

// modeFactory builds a fresh play mode from a seed.
type modeFactory func(seed int64) (game.Mode, error)

// finisher is implemented by states holding a running mode.
type finisher interface {
	finish()
}

// Play runs a free play or rhythm session.
type Play struct {
	kind    string
	mode    game.Mode
	factory modeFactory
}

// newPlay builds a mode and wraps it, falling back to the menu when the mode
// cannot be created.
func newPlay(env *Env, kind string, factory modeFactory) State {
	mode, err := factory(env.nextSeed())
	if err != nil {
		env.Logger.Error("could not start game", "kind", kind, "err", err)
		return NewMenu()
	}
	env.Logger.Debug("game started", "mode", mode.ID(), "tier", env.Tier)
	return &Play{kind: kind, mode: mode, factory: factory}
}

// Name implements State.
func (p *Play) Name() string { return p.kind }

// Mode returns the running mode.
func (p *Play) Mode() game.Mode { return p.mode }

// Update implements State.
func (p *Play) Update(env *Env, dt float64, in core.InputFrame) State {
	if in.Has(core.ActionPause) || in.Has(core.ActionCancel) || in.Has(core.ActionQuit) {
		p.mode.Pause()
		return NewPaused(p)
	}
	p.mode.Update(dt, in)

	s := p.mode.Session()
	if !s.Terminal {
		return p
	}
	p.mode.Finish()
	best := env.record(p.mode.ID(), s.Score)
	return &GameOver{prior: p, best: best}
}

// Draw implements State.
func (p *Play) Draw(_ *Env, dst *core.Screen) {
	p.mode.Draw(dst)
}

func (p *Play) finish() {
	p.mode.Finish()
}

var pausedItems = []string{"Resume", "Quit to menu"}

// Paused freezes a play session. It can only be built from one, and resumes
// the very same session.
type Paused struct {
	prior  *Play
	cursor int
}

// NewPaused wraps a running session.
func NewPaused(prior *Play) *Paused {
	return &Paused{prior: prior}
}

// Name implements State.
func (p *Paused) Name() string { return "paused" }

// Prior returns the frozen session.
func (p *Paused) Prior() *Play { return p.prior }

// Update implements State.
func (p *Paused) Update(env *Env, _ float64, in core.InputFrame) State {
	p.cursor = moveCursor(p.cursor, len(pausedItems), in)
	resume := in.Has(core.ActionPause) || in.Has(core.ActionCancel) ||
		(in.Has(core.ActionConfirm) && p.cursor == 0)
	switch {
	case resume:
		p.prior.mode.Resume()
		return p.prior
	case in.Has(core.ActionConfirm), in.Has(core.ActionQuit):
		env.Logger.Debug("game abandoned", "mode", p.prior.mode.ID(), "score", p.prior.mode.Session().Score)
		p.prior.mode.Finish()
		return NewMenu()
	}
	return p
}

// Draw implements State.
func (p *Paused) Draw(env *Env, dst *core.Screen) {
	p.prior.Draw(env, dst)
	dst.Dim()
	lines := []string{"PAUSED", ""}
	for i, item := range pausedItems {
		if i == p.cursor {
			item = "> " + item + " <"
		}
		lines = append(lines, item)
	}
	drawModal(dst, lines, core.ColorCyan)
}

func (p *Paused) finish() {
	p.prior.finish()
}

var gameOverItems = []string{"Retry", "Menu"}

// GameOver shows the result of a finished session over its last frame.
type GameOver struct {
	prior  *Play
	best   bool
	cursor int
}

// Name implements State.
func (g *GameOver) Name() string { return "game-over" }

// Session returns the final scoring state.
func (g *GameOver) Session() game.Session { return g.prior.mode.Session() }

// Update implements State.
func (g *GameOver) Update(env *Env, _ float64, in core.InputFrame) State {
	g.cursor = moveCursor(g.cursor, len(gameOverItems), in)
	switch {
	case in.Has(core.ActionCancel), in.Has(core.ActionQuit):
		return NewMenu()
	case in.Has(core.ActionConfirm):
		if g.cursor == 0 {
			return newPlay(env, g.prior.kind, g.prior.factory)
		}
		return NewMenu()
	}
	return g
}

// Draw implements State.
func (g *GameOver) Draw(env *Env, dst *core.Screen) {
	g.prior.Draw(env, dst)
	dst.Dim()
	s := g.Session()
	lines := []string{"GAME OVER", s.Reason.String(), "", fmt.Sprintf("Score %d", s.Score)}
	if g.best {
		lines = append(lines, "New high score!")
	} else if env.Profile != nil {
		lines = append(lines, fmt.Sprintf("Best %d", env.Profile.HighScore()))
	}
	if s.Earned > 0 {
		lines = append(lines, fmt.Sprintf("+%d coins", s.Earned))
	}
	lines = append(lines, "")
	for i, item := range gameOverItems {
		if i == g.cursor {
			item = "> " + item + " <"
		}
		lines = append(lines, item)
	}
	drawModal(dst, lines, core.ColorRed)
}

var (
	_ finisher = (*Play)(nil)
	_ finisher = (*Paused)(nil)
)
