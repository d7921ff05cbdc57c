// Package registry provides a global registry of playable songs.
// Built-in songs register themselves in init() functions; song files found
// at startup are added on top, allowing the platform to list and load songs
// without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownSong is returned when a song ID is not registered.
var ErrUnknownSong = errors.New("registry: unknown song")

// Song is a melody written in note names plus the timing used to spawn
// rhythm notes against it.
type Song struct {
	ID     string   `yaml:"id"`
	Title  string   `yaml:"title"`
	BPM    float64  `yaml:"bpm"`
	Offset float64  `yaml:"offset"` // Seconds of silence before the first note
	Notes  []string `yaml:"notes"`  // e.g. "c4", "f#4:2", "-" for a rest
}

// Validate checks the tempo and every note of the song.
func (s Song) Validate() error {
	if s.ID == "" {
		return errors.New("registry: song id is empty")
	}
	if s.BPM <= 0 {
		return fmt.Errorf("registry: song %q: bpm must be positive", s.ID)
	}
	if s.Offset < 0 {
		return fmt.Errorf("registry: song %q: offset must not be negative", s.ID)
	}
	if len(s.Notes) == 0 {
		return fmt.Errorf("registry: song %q has no notes", s.ID)
	}
	for i, n := range s.Notes {
		if _, err := ParseNote(n); err != nil {
			return fmt.Errorf("registry: song %q note %d: %w", s.ID, i, err)
		}
	}
	return nil
}

// Beats returns the total length of the melody in beats. Invalid notes count
// as one beat.
func (s Song) Beats() float64 {
	total := 0.0
	for _, n := range s.Notes {
		note, err := ParseNote(n)
		if err != nil {
			total++
			continue
		}
		total += note.Beats
	}
	return total
}

// Duration returns the playing time in seconds including the offset.
func (s Song) Duration() float64 {
	if s.BPM <= 0 {
		return 0
	}
	return s.Offset + s.Beats()*60/s.BPM
}

var (
	songs = make(map[string]Song)
	mu    sync.RWMutex
)

// Register adds a song to the registry.
// Typically called from an init() function.
// Panics if the song is invalid or the ID is already registered.
func Register(s Song) {
	if err := Add(s); err != nil {
		panic(err)
	}
}

// Add validates and adds a song, reporting duplicates as errors.
func Add(s Song) error {
	if err := s.Validate(); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := songs[s.ID]; exists {
		return fmt.Errorf("registry: song %q already registered", s.ID)
	}
	songs[s.ID] = s
	return nil
}

// List returns all registered songs, sorted by ID.
func List() []Song {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Song, 0, len(songs))
	for _, s := range songs {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a song by its ID.
func Get(id string) (Song, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := songs[id]
	if !ok {
		return Song{}, fmt.Errorf("%w %q", ErrUnknownSong, id)
	}
	return s, nil
}

// Exists checks if a song with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := songs[id]
	return ok
}
