package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/vovakirdan/star-catcher/internal/registry"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// sample returns the wave value at phase in [0, 1).
func (w WaveType) sample(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// tone is one synthesized note span.
type tone struct {
	freq    float64 // 0 for silence
	samples int
}

// melody renders a sequence of tones with a short attack and release per
// tone. Looping melodies restart at the first tone.
type melody struct {
	tones   []tone
	wave    WaveType
	rate    beep.SampleRate
	attack  int
	release int
	loop    bool

	idx   int // Current tone
	pos   int // Sample position inside the current tone
	phase float64
}

// newMelody builds a melody streamer for a song.
func newMelody(song registry.Song, rate beep.SampleRate, wave WaveType) (*melody, error) {
	beat := 60 / song.BPM
	tones := make([]tone, 0, len(song.Notes)+1)
	if song.Offset > 0 {
		tones = append(tones, tone{samples: rate.N(seconds(song.Offset))})
	}
	for _, n := range song.Notes {
		note, err := registry.ParseNote(n)
		if err != nil {
			return nil, err
		}
		tones = append(tones, tone{
			freq:    note.Frequency(),
			samples: rate.N(seconds(note.Beats * beat)),
		})
	}
	return &melody{
		tones:   tones,
		wave:    wave,
		rate:    rate,
		attack:  rate.N(10 * time.Millisecond),
		release: rate.N(60 * time.Millisecond),
	}, nil
}

// Len returns the total length in samples of one pass.
func (m *melody) Len() int {
	total := 0
	for _, t := range m.tones {
		total += t.samples
	}
	return total
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if m.idx >= len(m.tones) {
			if !m.loop || len(m.tones) == 0 {
				return i, i > 0
			}
			m.idx, m.pos = 0, 0
		}
		t := m.tones[m.idx]

		var val float64
		if t.freq > 0 {
			val = 0.35 * m.wave.sample(m.phase) * m.envelope(t)
			m.phase += t.freq / float64(m.rate)
			m.phase -= math.Floor(m.phase)
		}
		samples[i][0] = val
		samples[i][1] = val

		m.pos++
		if m.pos >= t.samples {
			m.idx++
			m.pos = 0
		}
	}
	return len(samples), true
}

// envelope returns the attack/release gain at the current position.
func (m *melody) envelope(t tone) float64 {
	gain := 1.0
	if m.attack > 0 && m.pos < m.attack {
		gain = float64(m.pos) / float64(m.attack)
	}
	if left := t.samples - m.pos; m.release > 0 && left < m.release {
		gain = math.Min(gain, float64(left)/float64(m.release))
	}
	return gain
}

func (m *melody) Err() error { return nil }

// rewind moves back to the first tone.
func (m *melody) rewind() {
	m.idx, m.pos, m.phase = 0, 0, 0
}

// chirp builds a short effect from a list of frequencies played in sequence.
func chirp(rate beep.SampleRate, wave WaveType, step time.Duration, freqs ...float64) beep.Streamer {
	tones := make([]tone, len(freqs))
	for i, f := range freqs {
		tones[i] = tone{freq: f, samples: rate.N(step)}
	}
	return &melody{
		tones:   tones,
		wave:    wave,
		rate:    rate,
		attack:  rate.N(5 * time.Millisecond),
		release: rate.N(step / 2),
	}
}

// effectStreamer returns a fresh streamer for a sound.
func effectStreamer(s Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case SoundCatch:
		return chirp(rate, WaveSine, 60*time.Millisecond, 880, 1320)
	case SoundCoin:
		// B5 then E6
		return chirp(rate, WaveSquare, 70*time.Millisecond, 987.77, 1318.51)
	case SoundNote:
		return chirp(rate, WaveTriangle, 80*time.Millisecond, 1046.5)
	case SoundMiss:
		return chirp(rate, WaveSquare, 90*time.Millisecond, 196, 147)
	case SoundSelect:
		return chirp(rate, WaveSine, 40*time.Millisecond, 660)
	default:
		return nil
	}
}

// newVolume wraps s in a volume effect. Volume is logarithmic in beep, so
// zero maps to the silent flag.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setLevel(v, vol)
	return v
}

// setLevel applies a linear level in [0, 1] to a volume effect.
func setLevel(v *effects.Volume, level float64) {
	level = math.Max(0, math.Min(1, level))
	if level <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(level)
	v.Silent = false
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
