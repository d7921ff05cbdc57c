package audio

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/star-catcher/internal/registry"
)

// Silent is a Player without a device. Its tracks keep time so rhythm
// sessions still end when the song would have.
type Silent struct {
	logger *log.Logger
}

// NewSilent creates a silent player.
func NewSilent(logger *log.Logger) *Silent {
	if logger == nil {
		logger = log.Default()
	}
	return &Silent{logger: logger}
}

// Enabled implements Player.
func (s *Silent) Enabled() bool { return false }

// Close implements Player.
func (s *Silent) Close() {}

// Effect implements Player.
func (s *Silent) Effect(Sound) Effect { return nopEffect{} }

// LoadTrack implements Player. Known songs load fine since nothing needs
// decoding.
func (s *Silent) LoadTrack(songID string) (Track, bool) {
	song, err := registry.Get(songID)
	if err != nil {
		s.logger.Warn("track unavailable", "song", songID, "err", err)
		return NewSilentTrack(0), false
	}
	return NewSilentTrack(song.Duration()), true
}

// SilentTrack measures playback against the wall clock.
type SilentTrack struct {
	length  time.Duration
	now     func() time.Time
	volume  float64
	loop    bool
	started bool
	stopped bool

	start    time.Time
	pausedAt time.Time
	paused   bool
}

// NewSilentTrack creates a track lasting the given number of seconds.
func NewSilentTrack(length float64) *SilentTrack {
	return &SilentTrack{length: seconds(length), now: time.Now, volume: 1}
}

// SetClock replaces the time source.
func (t *SilentTrack) SetClock(now func() time.Time) {
	t.now = now
}

// Play implements Track.
func (t *SilentTrack) Play(loop bool) {
	t.loop = loop
	t.started = true
	t.stopped = false
	t.paused = false
	t.start = t.now()
}

// SetVolume implements Track.
func (t *SilentTrack) SetVolume(v float64) {
	t.volume = max(0, min(1, v))
}

// Volume returns the last level set.
func (t *SilentTrack) Volume() float64 {
	return t.volume
}

// IsPlaying implements Track.
func (t *SilentTrack) IsPlaying() bool {
	if !t.started || t.stopped {
		return false
	}
	if t.loop {
		return true
	}
	return t.position() < t.length
}

// position returns how far playback has progressed.
func (t *SilentTrack) position() time.Duration {
	if t.paused {
		return t.pausedAt.Sub(t.start)
	}
	return t.now().Sub(t.start)
}

// Stop implements Track.
func (t *SilentTrack) Stop() {
	t.stopped = true
}

// Pause implements Track.
func (t *SilentTrack) Pause() {
	if !t.started || t.paused {
		return
	}
	t.paused = true
	t.pausedAt = t.now()
}

// Resume implements Track.
func (t *SilentTrack) Resume() {
	if !t.paused {
		return
	}
	t.start = t.start.Add(t.now().Sub(t.pausedAt))
	t.paused = false
}
