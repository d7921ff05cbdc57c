// Package rhythm converts song playback time into note spawn events and
// gates track volume on successful catches.
package rhythm

import (
	"errors"
	"fmt"
)

// BeatsPerNote is the number of beats between two spawned notes. Notes land
// on alternating beats.
const BeatsPerNote = 2

// DefaultMaxCatchUp bounds how many notes one Advance call may report.
const DefaultMaxCatchUp = 8

// ErrInvalidTempo is returned for non-positive tempos.
var ErrInvalidTempo = errors.New("rhythm: tempo must be positive")

// Synchronizer accumulates elapsed playback time and reports when notes are due.
type Synchronizer struct {
	bpm        float64
	offset     float64
	elapsed    float64
	nextBeat   float64
	maxCatchUp int
}

// NewSynchronizer creates a synchronizer whose first note is due at offset
// seconds. maxCatchUp <= 0 selects DefaultMaxCatchUp.
func NewSynchronizer(bpm, offset float64, maxCatchUp int) (*Synchronizer, error) {
	if bpm <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTempo, bpm)
	}
	if maxCatchUp <= 0 {
		maxCatchUp = DefaultMaxCatchUp
	}
	s := &Synchronizer{bpm: bpm, offset: offset, maxCatchUp: maxCatchUp}
	s.Reset()
	return s, nil
}

// Reset rewinds to the start of the song.
func (s *Synchronizer) Reset() {
	s.elapsed = 0
	s.nextBeat = s.offset
}

// BeatInterval returns the length of one beat in seconds.
func (s *Synchronizer) BeatInterval() float64 {
	return 60 / s.bpm
}

// NoteInterval returns the time between two notes in seconds.
func (s *Synchronizer) NoteInterval() float64 {
	return BeatsPerNote * s.BeatInterval()
}

// Advance adds dt to the elapsed time and returns how many notes became due.
//
// After a long frame every overdue note is reported, up to the catch-up
// limit. Notes beyond the limit stay due and are reported by later calls, so
// none are skipped.
func (s *Synchronizer) Advance(dt float64) int {
	if dt > 0 {
		s.elapsed += dt
	}
	n := 0
	for s.elapsed >= s.nextBeat && n < s.maxCatchUp {
		s.nextBeat += s.NoteInterval()
		n++
	}
	return n
}

// Elapsed returns the accumulated playback time.
func (s *Synchronizer) Elapsed() float64 {
	return s.elapsed
}

// NextBeat returns the time at which the next note is due.
func (s *Synchronizer) NextBeat() float64 {
	return s.nextBeat
}

// BPM returns the tempo.
func (s *Synchronizer) BPM() float64 {
	return s.bpm
}
