package game

import (
	"fmt"

	"github.com/vovakirdan/star-catcher/internal/audio"
	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/entity"
	"github.com/vovakirdan/star-catcher/internal/registry"
	"github.com/vovakirdan/star-catcher/internal/rhythm"
)

// RhythmPlay drops one note per BeatsPerNote beats of a song. The session
// ends when the song stops or a note is missed.
type RhythmPlay struct {
	base
	song    registry.Song
	track   audio.Track
	sync    *rhythm.Synchronizer
	gate    *rhythm.Gate
	lanes   []float64
	started bool
	notes   int
}

// NewRhythmPlay creates a rhythm session for a song. The track is started
// on the first update.
func NewRhythmPlay(d Deps, song registry.Song, track audio.Track) (*RhythmPlay, error) {
	r := &RhythmPlay{base: newBase(d), song: song, track: track}

	sync, err := rhythm.NewSynchronizer(song.BPM, song.Offset, r.cfg.Rhythm.MaxCatchUp)
	if err != nil {
		return nil, fmt.Errorf("game: song %q: %w", song.ID, err)
	}
	r.sync = sync
	r.gate = rhythm.NewGate(track, r.cfg.Rhythm.GateWindow, r.cfg.Rhythm.MutedVolume)
	r.resolver.Gate = r.gate
	r.lanes = LaneCenters(r.cfg.Playfield.Width, r.cfg.Rhythm.Lanes)
	return r, nil
}

// LaneCenters splits a playfield width into evenly spaced lane centers.
func LaneCenters(width float64, lanes int) []float64 {
	out := make([]float64, max(lanes, 0))
	for i := range out {
		out[i] = width * float64(i+1) / float64(lanes+1)
	}
	return out
}

// ID implements Mode.
func (r *RhythmPlay) ID() string { return RhythmMode(r.song.ID) }

// Title implements Mode.
func (r *RhythmPlay) Title() string { return r.song.Title }

// Update runs one frame: end check, gate, note spawns, movement, resolve.
func (r *RhythmPlay) Update(dt float64, in core.InputFrame) {
	if r.session.Terminal {
		return
	}
	if !r.started {
		r.started = true
		r.track.Play(false)
		r.gate.Open()
	}
	if !r.track.IsPlaying() {
		r.session.End(ReasonTrackEnded)
		return
	}
	r.elapsed += dt

	r.gate.Update(dt)
	for range r.sync.Advance(dt) {
		r.spawnNote()
	}
	r.entities.UpdateAll(dt, entity.Context{SpeedMultiplier: 1, Elapsed: r.elapsed})
	r.actor.Update(in, r.difficulty.ActorSpeed(r.cfg.Actor), dt)
	r.resolver.Resolve(r.entities, r.actor, &r.session)

	if r.session.Terminal {
		r.track.Stop()
	}
}

func (r *RhythmPlay) spawnNote() {
	if len(r.lanes) == 0 {
		return
	}
	lane := r.rng.Intn(len(r.lanes))
	rc := r.cfg.Rhythm
	r.entities.Add(entity.NewRhythmNote(lane, r.lanes[lane], -rc.NoteSize, rc.NoteSpeed, rc.NoteSize, rc.TrailLength, r.theme.NoteColor))
	r.notes++
}

// Draw implements Mode.
func (r *RhythmPlay) Draw(dst *core.Screen) {
	vp := r.Viewport(dst)
	for _, x := range r.lanes {
		cx, _ := vp.ToCell(x, 0)
		dst.DrawVLine(cx, vp.Area.Y, vp.Area.H, '┊')
	}
	r.drawField(dst, vp)

	gate := "muted"
	if r.gate.IsOpen() {
		gate = "live"
	}
	hud{
		Left:   fmt.Sprintf("Score: %d  Notes: %d", r.session.Score, r.session.Caught),
		Right:  fmt.Sprintf("%s %.0fbpm", r.song.Title, r.song.BPM),
		Bottom: fmt.Sprintf("%s  track %s", clockText(r.song.Duration()-r.sync.Elapsed()), gate),
	}.draw(dst)
}

// Song returns the song being played.
func (r *RhythmPlay) Song() registry.Song { return r.song }

// Synchronizer exposes the beat synchronizer.
func (r *RhythmPlay) Synchronizer() *rhythm.Synchronizer { return r.sync }

// Gate exposes the audio gate.
func (r *RhythmPlay) Gate() *rhythm.Gate { return r.gate }

// NotesSpawned returns how many notes have been released.
func (r *RhythmPlay) NotesSpawned() int { return r.notes }

// Pause implements Mode.
func (r *RhythmPlay) Pause() {
	if r.started {
		r.track.Pause()
	}
}

// Resume implements Mode.
func (r *RhythmPlay) Resume() {
	if r.started {
		r.track.Resume()
	}
}

// Finish implements Mode.
func (r *RhythmPlay) Finish() {
	r.track.Stop()
}

var (
	_ Mode = (*FreePlay)(nil)
	_ Mode = (*RhythmPlay)(nil)
)
