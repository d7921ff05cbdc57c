package game

import (
	"github.com/vovakirdan/star-catcher/internal/audio"
	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/entity"
	"github.com/vovakirdan/star-catcher/internal/profile"
)

// Resolver applies catches and misses. All scoring rules live in its two
// switches over entity.Kind.
type Resolver struct {
	FieldHeight float64
	MissPenalty int
	NoteReward  int
	Difficulty  *config.DifficultyManager
	Emitter     *Emitter
	Effects     audio.Effects   // Nil members are skipped
	Profile     profile.Profile // Receives currency; may be nil
	Gate        Opener          // Opened on note catches; may be nil
}

// Opener is the part of the audio gate the resolver drives.
type Opener interface {
	Open()
}

// Outcome counts what one Resolve call did.
type Outcome struct {
	Caught int
	Missed int
}

// Resolve tests every entity in a snapshot of m against the actor. Entities
// below the playfield are missed, entities touching the actor are caught.
// Catches are applied one at a time so each reads the combo left by the
// previous one. Resolution stops as soon as the session turns terminal.
func (r *Resolver) Resolve(m *entity.Manager[entity.Entity], actor *Actor, s *Session) Outcome {
	var out Outcome
	actorBox := actor.Bounds()
	for _, e := range m.Items() {
		if s.Terminal {
			break
		}
		switch e.Kind() {
		case entity.KindParticle, entity.KindDecoration:
			continue
		}

		b := e.Bounds()
		switch {
		case b.Bottom() > r.FieldHeight:
			m.Remove(e)
			r.miss(e, s)
			out.Missed++
		case b.Intersects(actorBox):
			m.Remove(e)
			r.catch(m, e, s)
			out.Caught++
		}
	}
	return out
}

func (r *Resolver) miss(e entity.Entity, s *Session) {
	switch e.Kind() {
	case entity.KindCollectible:
		s.Miss(r.MissPenalty)
		play(r.Effects.Miss)
	case entity.KindRhythmNote:
		s.End(ReasonNoteMissed)
		play(r.Effects.Miss)
	case entity.KindCurrency:
		// Coins fall away without consequence.
	}
}

func (r *Resolver) catch(m *entity.Manager[entity.Entity], e entity.Entity, s *Session) {
	switch e.Kind() {
	case entity.KindCollectible:
		c := e.(*entity.Collectible)
		s.Catch(c.Points)
		if r.Difficulty != nil {
			r.Difficulty.RegisterCatch()
		}
		r.burst(m, c.X, c.Y, c.Color)
		play(r.Effects.Catch)
	case entity.KindCurrency:
		t := e.(*entity.CurrencyToken)
		s.Earned += t.Reward
		if r.Profile != nil {
			r.Profile.AddCurrency(t.Reward)
		}
		play(r.Effects.Coin)
	case entity.KindRhythmNote:
		n := e.(*entity.RhythmNote)
		s.Score += r.NoteReward
		s.Caught++
		if r.Gate != nil {
			r.Gate.Open()
		}
		r.burst(m, n.X, n.Y, n.Color)
		play(r.Effects.Note)
	}
}

func (r *Resolver) burst(m *entity.Manager[entity.Entity], x, y float64, c core.Color) {
	if r.Emitter != nil {
		r.Emitter.Burst(m, x, y, c)
	}
}

func play(e audio.Effect) {
	if e != nil {
		e.Play()
	}
}
