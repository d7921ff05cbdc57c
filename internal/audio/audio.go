// Package audio plays synthesized song tracks and sound effects through the
// beep speaker, falling back to silent stand-ins when no device is available.
package audio

// Track is a loaded song.
type Track interface {
	// Play starts the track from the beginning. A looping track restarts
	// when it reaches the end and never reports finished.
	Play(loop bool)
	// SetVolume sets the level in [0, 1]; values outside are clamped.
	SetVolume(v float64)
	// IsPlaying reports whether the track has been started and has not
	// finished or been stopped. A paused track is still playing.
	IsPlaying() bool
	// Stop ends playback.
	Stop()
	// Pause freezes playback in place.
	Pause()
	// Resume continues a paused track.
	Resume()
}

// Effect is a one-shot sound.
type Effect interface {
	Play()
}

// Sound identifies a built-in effect.
type Sound int

const (
	SoundCatch  Sound = iota // Star caught
	SoundCoin                // Currency picked up
	SoundNote                // Rhythm note caught
	SoundMiss                // Star or note missed
	SoundSelect              // Menu confirm
)

// String returns the name of the sound.
func (s Sound) String() string {
	switch s {
	case SoundCatch:
		return "catch"
	case SoundCoin:
		return "coin"
	case SoundNote:
		return "note"
	case SoundMiss:
		return "miss"
	case SoundSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Player is what the session layer needs from an audio backend.
type Player interface {
	// Effect returns the effect for a sound. It never returns nil.
	Effect(s Sound) Effect
	// LoadTrack prepares the track for a song. ok is false when the song is
	// unknown or cannot be synthesized; the returned track is then a silent
	// stand-in that still keeps time.
	LoadTrack(songID string) (t Track, ok bool)
	// Enabled reports whether sound reaches a device.
	Enabled() bool
	// Close silences everything still playing.
	Close()
}

// Effects bundles the effects used by gameplay.
type Effects struct {
	Catch Effect
	Coin  Effect
	Note  Effect
	Miss  Effect
}

// EffectsFrom resolves every gameplay effect from a player.
func EffectsFrom(p Player) Effects {
	return Effects{
		Catch: p.Effect(SoundCatch),
		Coin:  p.Effect(SoundCoin),
		Note:  p.Effect(SoundNote),
		Miss:  p.Effect(SoundMiss),
	}
}

// NoEffects returns effects that do nothing.
func NoEffects() Effects {
	return Effects{Catch: nopEffect{}, Coin: nopEffect{}, Note: nopEffect{}, Miss: nopEffect{}}
}

type nopEffect struct{}

func (nopEffect) Play() {}
