package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/registry"
)

// The beep speaker is process-wide and can only be initialized once, so the
// mixer it plays and its sample rate are shared by every Engine.
var (
	speakerOnce  sync.Once
	speakerErr   error
	speakerRate  beep.SampleRate
	speakerMixer = &beep.Mixer{}
)

// Engine plays through the beep speaker. All streamers hang off one mixer.
type Engine struct {
	cfg    config.AudioConfig
	rate   beep.SampleRate
	mixer  *beep.Mixer
	logger *log.Logger
}

// New returns a beep engine, or a silent player when audio is disabled or
// the device cannot be opened. The fallback is logged at warn level.
func New(cfg config.AudioConfig, logger *log.Logger) Player {
	if logger == nil {
		logger = log.Default()
	}
	if !cfg.Enabled {
		return NewSilent(logger)
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}

	speakerOnce.Do(func() {
		speakerRate = beep.SampleRate(cfg.SampleRate)
		speakerErr = speaker.Init(speakerRate, speakerRate.N(100*time.Millisecond))
		if speakerErr == nil {
			speaker.Play(speakerMixer)
		}
	})
	if speakerErr != nil {
		logger.Warn("audio device unavailable, continuing silently", "err", speakerErr)
		return NewSilent(logger)
	}

	return &Engine{cfg: cfg, rate: speakerRate, mixer: speakerMixer, logger: logger}
}

// Enabled implements Player.
func (e *Engine) Enabled() bool { return true }

// Effect implements Player.
func (e *Engine) Effect(s Sound) Effect {
	if effectStreamer(s, e.rate) == nil {
		e.logger.Warn("unknown sound effect", "sound", s)
		return nopEffect{}
	}
	return &beepEffect{engine: e, sound: s}
}

// LoadTrack implements Player.
func (e *Engine) LoadTrack(songID string) (Track, bool) {
	song, err := registry.Get(songID)
	if err != nil {
		e.logger.Warn("track unavailable", "song", songID, "err", err)
		return NewSilentTrack(0), false
	}
	m, err := newMelody(song, e.rate, WaveTriangle)
	if err != nil {
		e.logger.Warn("track unavailable", "song", songID, "err", err)
		return NewSilentTrack(song.Duration()), false
	}
	return &beepTrack{mixer: e.mixer, melody: m, music: e.cfg.MusicVolume, level: 1}, true
}

// Close implements Player.
func (e *Engine) Close() {
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
}

type beepEffect struct {
	engine *Engine
	sound  Sound
}

// Play builds a fresh streamer each time so overlapping plays mix.
func (b *beepEffect) Play() {
	s := newVolume(effectStreamer(b.sound, b.engine.rate), b.engine.cfg.EffectsVolume)
	speaker.Lock()
	b.engine.mixer.Add(s)
	speaker.Unlock()
}

// beepTrack is a melody behind a pause control and a volume effect.
type beepTrack struct {
	mixer  *beep.Mixer
	melody *melody
	music  float64 // Configured music volume
	level  float64 // Level requested through SetVolume

	ctrl    *beep.Ctrl
	volume  *effects.Volume
	playing atomic.Bool
}

func (t *beepTrack) Play(loop bool) {
	t.Stop()

	speaker.Lock()
	t.melody.rewind()
	t.melody.loop = loop
	t.volume = newVolume(t.melody, t.music*t.level)
	t.ctrl = &beep.Ctrl{Streamer: t.volume}
	t.playing.Store(true)
	ctrl := t.ctrl
	t.mixer.Add(beep.Seq(ctrl, beep.Callback(func() {
		// Only the current run may clear the flag.
		if t.ctrl == ctrl {
			t.playing.Store(false)
		}
	})))
	speaker.Unlock()
}

func (t *beepTrack) SetVolume(v float64) {
	speaker.Lock()
	defer speaker.Unlock()
	t.level = max(0, min(1, v))
	if t.volume != nil {
		setLevel(t.volume, t.music*t.level)
	}
}

func (t *beepTrack) IsPlaying() bool {
	return t.playing.Load()
}

func (t *beepTrack) Stop() {
	speaker.Lock()
	defer speaker.Unlock()
	if t.ctrl != nil {
		t.ctrl.Streamer = nil
		t.ctrl = nil
	}
	t.playing.Store(false)
}

func (t *beepTrack) Pause() {
	speaker.Lock()
	defer speaker.Unlock()
	if t.ctrl != nil {
		t.ctrl.Paused = true
	}
}

func (t *beepTrack) Resume() {
	speaker.Lock()
	defer speaker.Unlock()
	if t.ctrl != nil {
		t.ctrl.Paused = false
	}
}
