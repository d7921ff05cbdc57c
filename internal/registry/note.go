package registry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Note is one parsed melody step.
type Note struct {
	Rest  bool
	Midi  int     // MIDI number, 69 is A4
	Beats float64 // Length in beats
}

var semitones = map[byte]int{
	'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11,
}

// ParseNote parses note names such as "c4", "F#3", "bb4:2" or "-:0.5".
// A rest is written "-" or "r". The optional ":n" suffix sets the length in
// beats and defaults to one.
func ParseNote(s string) (Note, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	name, length, hasLen := strings.Cut(s, ":")

	note := Note{Beats: 1}
	if hasLen {
		b, err := strconv.ParseFloat(length, 64)
		if err != nil || b <= 0 {
			return Note{}, fmt.Errorf("invalid note length %q", s)
		}
		note.Beats = b
	}

	if name == "-" || name == "r" {
		note.Rest = true
		return note, nil
	}
	if len(name) < 2 {
		return Note{}, fmt.Errorf("invalid note %q", s)
	}

	semi, ok := semitones[name[0]]
	if !ok {
		return Note{}, fmt.Errorf("invalid note letter in %q", s)
	}
	rest := name[1:]
	switch rest[0] {
	case '#':
		semi++
		rest = rest[1:]
	case 'b':
		if len(rest) > 1 {
			semi--
			rest = rest[1:]
		}
	}

	octave, err := strconv.Atoi(rest)
	if err != nil || octave < 0 || octave > 8 {
		return Note{}, fmt.Errorf("invalid octave in %q", s)
	}
	note.Midi = (octave+1)*12 + semi
	return note, nil
}

// Frequency returns the pitch in Hz, or 0 for a rest.
func (n Note) Frequency() float64 {
	if n.Rest {
		return 0
	}
	return 440 * math.Pow(2, float64(n.Midi-69)/12)
}
