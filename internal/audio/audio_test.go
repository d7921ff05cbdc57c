package audio

import (
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/registry"
)

const testRate = beep.SampleRate(1000)

func init() {
	registry.Register(registry.Song{
		ID:     "audio-test",
		Title:  "Audio Test",
		BPM:    60,
		Offset: 0.5,
		Notes:  []string{"a4", "-", "c5:2"},
	})
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func drain(s beep.Streamer, limit int) int {
	buf := make([][2]float64, 64)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	return total
}

func TestMelodyLength(t *testing.T) {
	song, _ := registry.Get("audio-test")
	m, err := newMelody(song, testRate, WaveSine)
	if err != nil {
		t.Fatal(err)
	}

	// 0.5s offset + 4 beats at 60 bpm.
	if m.Len() != 4500 {
		t.Errorf("Len() = %d, want 4500", m.Len())
	}
	if got := drain(m, 100000); got != 4500 {
		t.Errorf("streamed %d samples, want 4500", got)
	}

	n, ok := m.Stream(make([][2]float64, 8))
	if n != 0 || ok {
		t.Errorf("drained melody Stream() = %d, %v; want 0, false", n, ok)
	}
}

func TestMelodyLoops(t *testing.T) {
	song, _ := registry.Get("audio-test")
	m, _ := newMelody(song, testRate, WaveSine)
	m.loop = true

	if got := drain(m, 10000); got < 10000 {
		t.Errorf("looping melody stopped after %d samples", got)
	}
}

func TestMelodyAmplitude(t *testing.T) {
	song, _ := registry.Get("audio-test")
	m, _ := newMelody(song, testRate, WaveSquare)
	buf := make([][2]float64, m.Len())
	m.Stream(buf)

	for i := range 500 {
		if buf[i][0] != 0 {
			t.Fatalf("offset sample %d = %v, want silence", i, buf[i][0])
		}
	}
	peak := 0.0
	for _, s := range buf {
		peak = math.Max(peak, math.Abs(s[0]))
		if s[0] != s[1] {
			t.Fatal("channels differ")
		}
	}
	if peak == 0 || peak > 0.35+1e-9 {
		t.Errorf("peak = %v, want in (0, 0.35]", peak)
	}
}

func TestEffectStreamersFinish(t *testing.T) {
	for _, s := range []Sound{SoundCatch, SoundCoin, SoundNote, SoundMiss, SoundSelect} {
		st := effectStreamer(s, testRate)
		if st == nil {
			t.Errorf("%s: no streamer", s)
			continue
		}
		if got := drain(st, 100000); got == 0 || got >= 100000 {
			t.Errorf("%s streamed %d samples, want a short finite effect", s, got)
		}
	}
	if effectStreamer(Sound(99), testRate) != nil {
		t.Error("unknown sound should have no streamer")
	}
}

func TestSetLevel(t *testing.T) {
	v := &effects.Volume{Base: 2}

	setLevel(v, 0.5)
	if v.Silent || v.Volume != -1 {
		t.Errorf("level 0.5: %+v", v)
	}
	setLevel(v, 0)
	if !v.Silent {
		t.Error("level 0 should be silent")
	}
	setLevel(v, 3)
	if v.Silent || v.Volume != 0 {
		t.Errorf("level above 1 should clamp to 1: %+v", v)
	}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestSilentTrackTiming(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	tr := NewSilentTrack(2)
	tr.SetClock(clk.now)

	if tr.IsPlaying() {
		t.Fatal("track playing before Play")
	}
	tr.Play(false)
	clk.advance(1500 * time.Millisecond)
	if !tr.IsPlaying() {
		t.Error("track should still play at 1.5s")
	}
	clk.advance(time.Second)
	if tr.IsPlaying() {
		t.Error("track should finish after 2s")
	}
}

func TestSilentTrackPauseResume(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	tr := NewSilentTrack(2)
	tr.SetClock(clk.now)

	tr.Play(false)
	clk.advance(time.Second)
	tr.Pause()
	clk.advance(10 * time.Second)
	if !tr.IsPlaying() {
		t.Error("paused track must not run out")
	}
	tr.Resume()
	clk.advance(900 * time.Millisecond)
	if !tr.IsPlaying() {
		t.Error("pause time should not count toward playback")
	}
	clk.advance(200 * time.Millisecond)
	if tr.IsPlaying() {
		t.Error("track should end 2s of playback after start")
	}
}

func TestSilentTrackLoopAndStop(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	tr := NewSilentTrack(1)
	tr.SetClock(clk.now)

	tr.Play(true)
	clk.advance(time.Hour)
	if !tr.IsPlaying() {
		t.Error("looping track should keep playing")
	}
	tr.Stop()
	if tr.IsPlaying() {
		t.Error("stopped track reports playing")
	}

	tr.SetVolume(0.05)
	if tr.Volume() != 0.05 {
		t.Errorf("Volume() = %v", tr.Volume())
	}
}

func TestNewDisabledIsSilent(t *testing.T) {
	cfg := config.DefaultConfig().Audio
	cfg.Enabled = false

	p := New(cfg, quietLogger())
	if p.Enabled() {
		t.Error("disabled audio should give a silent player")
	}

	tr, ok := p.LoadTrack("audio-test")
	if !ok || tr == nil {
		t.Fatal("silent player should load known songs")
	}
	if _, ok := p.LoadTrack("missing-song"); ok {
		t.Error("unknown song should report false")
	}

	fx := EffectsFrom(p)
	fx.Catch.Play()
	fx.Coin.Play()
	fx.Note.Play()
	fx.Miss.Play()
	p.Close()
}

func TestEnginesShareSpeakerMixer(t *testing.T) {
	logger := log.New(io.Discard)
	cfg := config.AudioConfig{Enabled: true, SampleRate: 44100, MusicVolume: 1, EffectsVolume: 1}
	first, ok := New(cfg, logger).(*Engine)
	if !ok {
		t.Skip("no audio device")
	}
	defer first.Close()

	cfg.SampleRate = 22050
	second, ok := New(cfg, logger).(*Engine)
	if !ok {
		t.Fatal("second engine fell back to silent")
	}
	if first.mixer != second.mixer {
		t.Error("engines stream through different mixers")
	}
	if second.rate != first.rate {
		t.Errorf("second engine rate = %v, want speaker rate %v", second.rate, first.rate)
	}
}
