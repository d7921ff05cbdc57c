package states

import (
	"fmt"

	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/game"
	"github.com/vovakirdan/star-catcher/internal/registry"
)

// SongSelect lists the registered songs for rhythm play.
type SongSelect struct {
	songs  []registry.Song
	cursor int
}

// NewSongSelect snapshots the song registry.
func NewSongSelect() *SongSelect {
	return &SongSelect{songs: registry.List()}
}

// Name implements State.
func (s *SongSelect) Name() string { return "song-select" }

// Update implements State.
func (s *SongSelect) Update(env *Env, _ float64, in core.InputFrame) State {
	if in.Has(core.ActionCancel) || in.Has(core.ActionQuit) {
		return NewMenu()
	}
	s.cursor = moveCursor(s.cursor, len(s.songs), in)
	if !in.Has(core.ActionConfirm) || len(s.songs) == 0 {
		return s
	}
	return startRhythm(env, s.songs[s.cursor])
}

func startRhythm(env *Env, song registry.Song) State {
	return newPlay(env, "rhythm", func(seed int64) (game.Mode, error) {
		return game.NewRhythmPlay(env.deps(seed), song, env.track(song))
	})
}

// Draw implements State.
func (s *SongSelect) Draw(_ *Env, dst *core.Screen) {
	drawTitle(dst, "SELECT A SONG", "up/down select  enter play  esc back")
	if len(s.songs) == 0 {
		dst.DrawTextCentered(5, "No songs registered")
		return
	}
	rows := make([]string, len(s.songs))
	for i, song := range s.songs {
		d := int(song.Duration())
		rows[i] = fmt.Sprintf("%-20s %3.0f bpm  %d:%02d", song.Title, song.BPM, d/60, d%60)
	}
	drawList(dst, 4, rows, s.cursor)
}
