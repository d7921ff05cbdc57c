package registry

import (
	"errors"
	"math"
	"testing"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		in    string
		midi  int
		beats float64
		rest  bool
	}{
		{"a4", 69, 1, false},
		{"C4", 60, 1, false},
		{"f#4", 66, 1, false},
		{"bb3", 58, 1, false},
		{"b3", 59, 1, false},
		{"e5:2", 76, 2, false},
		{"-", 0, 1, true},
		{"r:0.5", 0, 0.5, true},
	}

	for _, tt := range tests {
		n, err := ParseNote(tt.in)
		if err != nil {
			t.Errorf("ParseNote(%q) error = %v", tt.in, err)
			continue
		}
		if n.Rest != tt.rest || n.Beats != tt.beats || (!n.Rest && n.Midi != tt.midi) {
			t.Errorf("ParseNote(%q) = %+v, want midi %d beats %v rest %v", tt.in, n, tt.midi, tt.beats, tt.rest)
		}
	}
}

func TestParseNoteInvalid(t *testing.T) {
	for _, in := range []string{"", "h4", "c", "c#", "c9", "c4:0", "c4:x", "x"} {
		if _, err := ParseNote(in); err == nil {
			t.Errorf("ParseNote(%q) should fail", in)
		}
	}
}

func TestNoteFrequency(t *testing.T) {
	a4, _ := ParseNote("a4")
	if a4.Frequency() != 440 {
		t.Errorf("a4 = %v Hz, want 440", a4.Frequency())
	}
	a5, _ := ParseNote("a5")
	if math.Abs(a5.Frequency()-880) > 1e-9 {
		t.Errorf("a5 = %v Hz, want 880", a5.Frequency())
	}
	rest, _ := ParseNote("-")
	if rest.Frequency() != 0 {
		t.Errorf("rest frequency = %v, want 0", rest.Frequency())
	}
}

func TestSongDuration(t *testing.T) {
	s := Song{ID: "x", BPM: 120, Offset: 1, Notes: []string{"c4", "d4:2", "-"}}
	if s.Beats() != 4 {
		t.Errorf("Beats() = %v, want 4", s.Beats())
	}
	if s.Duration() != 3 {
		t.Errorf("Duration() = %v, want 3", s.Duration())
	}
}

func TestSongValidate(t *testing.T) {
	tests := []struct {
		name string
		song Song
	}{
		{"no id", Song{BPM: 100, Notes: []string{"c4"}}},
		{"zero bpm", Song{ID: "a", Notes: []string{"c4"}}},
		{"negative offset", Song{ID: "a", BPM: 100, Offset: -1, Notes: []string{"c4"}}},
		{"no notes", Song{ID: "a", BPM: 100}},
		{"bad note", Song{ID: "a", BPM: 100, Notes: []string{"c4", "zz"}}},
	}
	for _, tt := range tests {
		if err := tt.song.Validate(); err == nil {
			t.Errorf("%s: Validate() should fail", tt.name)
		}
	}
}

func TestAddAndGet(t *testing.T) {
	s := Song{ID: "registry-test-song", Title: "Test", BPM: 90, Notes: []string{"g4"}}
	if err := Add(s); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := Add(s); err == nil {
		t.Error("duplicate Add() should fail")
	}

	got, err := Get(s.ID)
	if err != nil || got.Title != "Test" {
		t.Errorf("Get() = %+v, %v", got, err)
	}
	if !Exists(s.ID) {
		t.Error("Exists() = false")
	}

	if _, err := Get("no-such-song"); !errors.Is(err, ErrUnknownSong) {
		t.Errorf("Get(unknown) error = %v, want ErrUnknownSong", err)
	}

	found := false
	for _, l := range List() {
		if l.ID == s.ID {
			found = true
		}
	}
	if !found {
		t.Error("List() missing added song")
	}
}

func TestRegisterPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register(invalid) should panic")
		}
	}()
	Register(Song{ID: "registry-bad"})
}
