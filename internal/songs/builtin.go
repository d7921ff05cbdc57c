// Package songs provides the built-in song catalog and loads extra songs
// from YAML files.
package songs

import "github.com/vovakirdan/star-catcher/internal/registry"

// Built-in song IDs.
const (
	Twinkle       = "twinkle"
	OdeToJoy      = "ode-to-joy"
	FrereJacques  = "frere-jacques"
	HappyBirthday = "happy-birthday"
)

func init() {
	registry.Register(registry.Song{
		ID:     Twinkle,
		Title:  "Twinkle, Twinkle, Little Star",
		BPM:    100,
		Offset: 1,
		Notes: []string{
			"c4", "c4", "g4", "g4", "a4", "a4", "g4:2",
			"f4", "f4", "e4", "e4", "d4", "d4", "c4:2",
			"g4", "g4", "f4", "f4", "e4", "e4", "d4:2",
			"g4", "g4", "f4", "f4", "e4", "e4", "d4:2",
			"c4", "c4", "g4", "g4", "a4", "a4", "g4:2",
			"f4", "f4", "e4", "e4", "d4", "d4", "c4:2",
		},
	})

	registry.Register(registry.Song{
		ID:     OdeToJoy,
		Title:  "Ode to Joy",
		BPM:    112,
		Offset: 1,
		Notes: []string{
			"e4", "e4", "f4", "g4", "g4", "f4", "e4", "d4",
			"c4", "c4", "d4", "e4", "e4:1.5", "d4:0.5", "d4:2",
			"e4", "e4", "f4", "g4", "g4", "f4", "e4", "d4",
			"c4", "c4", "d4", "e4", "d4:1.5", "c4:0.5", "c4:2",
			"d4", "d4", "e4", "c4", "d4", "e4:0.5", "f4:0.5", "e4", "c4",
			"d4", "e4:0.5", "f4:0.5", "e4", "d4", "c4", "d4", "g3:2",
			"e4", "e4", "f4", "g4", "g4", "f4", "e4", "d4",
			"c4", "c4", "d4", "e4", "d4:1.5", "c4:0.5", "c4:2",
		},
	})

	registry.Register(registry.Song{
		ID:     FrereJacques,
		Title:  "Frère Jacques",
		BPM:    120,
		Offset: 0.5,
		Notes: []string{
			"c4", "d4", "e4", "c4", "c4", "d4", "e4", "c4",
			"e4", "f4", "g4:2", "e4", "f4", "g4:2",
			"g4:0.5", "a4:0.5", "g4:0.5", "f4:0.5", "e4", "c4",
			"g4:0.5", "a4:0.5", "g4:0.5", "f4:0.5", "e4", "c4",
			"c4", "g3", "c4:2", "c4", "g3", "c4:2",
		},
	})

	registry.Register(registry.Song{
		ID:     HappyBirthday,
		Title:  "Happy Birthday",
		BPM:    96,
		Offset: 1,
		Notes: []string{
			"g4:0.75", "g4:0.25", "a4", "g4", "c5", "b4:2",
			"g4:0.75", "g4:0.25", "a4", "g4", "d5", "c5:2",
			"g4:0.75", "g4:0.25", "g5", "e5", "c5", "b4", "a4:2",
			"f5:0.75", "f5:0.25", "e5", "c5", "d5", "c5:2",
		},
	})
}
