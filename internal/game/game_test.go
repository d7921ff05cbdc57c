package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/star-catcher/internal/audio"
	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/entity"
	"github.com/vovakirdan/star-catcher/internal/profile"
	"github.com/vovakirdan/star-catcher/internal/registry"
)

const frame = 1.0 / 60

func testDeps() Deps {
	return Deps{Config: config.DefaultConfig(), Tier: config.DifficultyNormal, Seed: 7}
}

func newTestResolver(cfg config.Config) *Resolver {
	return &Resolver{
		FieldHeight: cfg.Playfield.Height,
		MissPenalty: cfg.Collectible.MissPenalty,
		NoteReward:  cfg.Rhythm.NoteReward,
		Difficulty:  config.NewDifficultyManager(cfg.Difficulty),
		Effects:     audio.NoEffects(),
	}
}

func testActor(cfg config.Config) *Actor {
	a := NewActor(cfg.Actor, cfg.Playfield, Theme{})
	a.X = 200
	return a
}

func star(x, y float64) *entity.Collectible {
	return &entity.Collectible{X: x, Y: y, Z: 0.5, Size: 6, Points: entity.DepthPoints(15, 10, 0.5), Speed: 90}
}

func TestCatchAddsPointsPlusCombo(t *testing.T) {
	cfg := config.DefaultConfig()
	r := newTestResolver(cfg)
	a := testActor(cfg)
	m := entity.NewManager[entity.Entity]()
	m.Add(star(250, a.Y))

	s := Session{Combo: 3, MaxMissed: 10}
	out := r.Resolve(m, a, &s)

	if out.Caught != 1 {
		t.Fatalf("caught = %d, want 1", out.Caught)
	}
	if s.Score != 13 {
		t.Errorf("score = %d, want 13", s.Score)
	}
	if s.Combo != 4 {
		t.Errorf("combo = %d, want 4", s.Combo)
	}
	if math.Abs(r.Difficulty.Multiplier()-1.03) > 1e-9 {
		t.Errorf("multiplier = %v, want 1.03", r.Difficulty.Multiplier())
	}
	if m.CountKind(entity.KindCollectible) != 0 {
		t.Error("caught star still managed")
	}
}

func TestResolverWithoutEffects(t *testing.T) {
	cfg := config.DefaultConfig()
	r := newTestResolver(cfg)
	r.Effects = audio.Effects{}
	a := testActor(cfg)
	m := entity.NewManager[entity.Entity]()
	m.Add(star(250, a.Y))
	m.Add(star(600, cfg.Playfield.Height+50))

	s := Session{MaxMissed: 10}
	out := r.Resolve(m, a, &s)
	if out.Caught != 1 || out.Missed != 1 {
		t.Errorf("outcome = %+v, want one catch and one miss", out)
	}
}

func TestCatchesApplySequentially(t *testing.T) {
	cfg := config.DefaultConfig()
	r := newTestResolver(cfg)
	a := testActor(cfg)
	m := entity.NewManager[entity.Entity]()
	m.Add(star(220, a.Y))
	m.Add(star(280, a.Y))

	s := Session{MaxMissed: 10}
	r.Resolve(m, a, &s)

	// 10 + 0, then 10 + 1.
	if s.Score != 21 || s.Combo != 2 {
		t.Errorf("score, combo = %d, %d, want 21, 2", s.Score, s.Combo)
	}
}

func TestMissLimitStopsResolving(t *testing.T) {
	cfg := config.DefaultConfig()
	r := newTestResolver(cfg)
	a := testActor(cfg)
	m := entity.NewManager[entity.Entity]()
	for range 3 {
		m.Add(star(50, cfg.Playfield.Height+20))
	}

	s := Session{Missed: 8, MaxMissed: 10, Score: 100, Combo: 5}
	r.Resolve(m, a, &s)

	if s.Missed != 10 {
		t.Errorf("missed = %d, want 10", s.Missed)
	}
	if !s.Terminal || s.Reason != ReasonMissLimit {
		t.Errorf("terminal, reason = %v, %v", s.Terminal, s.Reason)
	}
	if m.Len() != 1 {
		t.Errorf("remaining = %d, want the third star untouched", m.Len())
	}
	if s.Combo != 0 {
		t.Errorf("combo = %d, want 0", s.Combo)
	}
}

func TestScoreNeverNegative(t *testing.T) {
	s := Session{MaxMissed: 100}
	s.Catch(3)
	for range 5 {
		s.Miss(5)
		if s.Score < 0 {
			t.Fatalf("score = %d", s.Score)
		}
		if s.Combo != 0 {
			t.Fatalf("combo after miss = %d", s.Combo)
		}
	}
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}
}

func TestSessionEndKeepsFirstReason(t *testing.T) {
	var s Session
	s.End(ReasonNoteMissed)
	s.End(ReasonTrackEnded)
	if s.Reason != ReasonNoteMissed {
		t.Errorf("reason = %v", s.Reason)
	}
}

func TestCurrencyGoesToProfile(t *testing.T) {
	cfg := config.DefaultConfig()
	r := newTestResolver(cfg)
	p := profile.NewMemory(nil)
	r.Profile = p
	a := testActor(cfg)
	m := entity.NewManager[entity.Entity]()
	m.Add(&entity.CurrencyToken{X: 250, Y: a.Y, Size: 10, Reward: 5})
	m.Add(&entity.CurrencyToken{X: 50, Y: cfg.Playfield.Height + 30, Size: 10, Reward: 5})

	s := Session{Combo: 2, MaxMissed: 10}
	r.Resolve(m, a, &s)

	if p.Currency() != 5 || s.Earned != 5 {
		t.Errorf("currency = %d, earned = %d, want 5", p.Currency(), s.Earned)
	}
	if s.Combo != 2 || s.Missed != 0 || s.Score != 0 {
		t.Errorf("session changed by coins: %+v", s)
	}
	if m.Len() != 0 {
		t.Errorf("remaining = %d, want 0", m.Len())
	}
}

type countingOpener struct{ opened int }

func (o *countingOpener) Open() { o.opened++ }

func TestNoteCatchAndMiss(t *testing.T) {
	cfg := config.DefaultConfig()
	r := newTestResolver(cfg)
	gate := &countingOpener{}
	r.Gate = gate
	a := testActor(cfg)
	m := entity.NewManager[entity.Entity]()
	m.Add(entity.NewRhythmNote(1, 250, a.Y, 300, 14, 6, core.ColorMagenta))

	s := Session{Combo: 3}
	r.Resolve(m, a, &s)
	if s.Score != cfg.Rhythm.NoteReward || gate.opened != 1 {
		t.Fatalf("score = %d, gate opened %d times", s.Score, gate.opened)
	}
	if r.Difficulty.Multiplier() != 1.0 {
		t.Errorf("note catch changed multiplier to %v", r.Difficulty.Multiplier())
	}

	m.Add(entity.NewRhythmNote(0, 125, cfg.Playfield.Height+40, 300, 14, 6, core.ColorMagenta))
	r.Resolve(m, a, &s)
	if !s.Terminal || s.Reason != ReasonNoteMissed {
		t.Errorf("terminal, reason = %v, %v", s.Terminal, s.Reason)
	}
}

func TestSpawnerCadence(t *testing.T) {
	f := NewFreePlay(testDeps())
	m := entity.NewManager[entity.Entity]()
	interval := config.DefaultConfig().Difficulty.SpawnIntervals.Normal

	for i := 1; i < interval; i++ {
		if n := f.Spawner().Tick(m); n != 0 {
			t.Fatalf("frame %d spawned %d", i, n)
		}
	}
	if n := f.Spawner().Tick(m); n != 1 {
		t.Fatalf("frame %d spawned %d, want 1", interval, n)
	}
	if f.Spawner().Accumulator() != 0 {
		t.Errorf("accumulator = %d after spawn", f.Spawner().Accumulator())
	}
}

func TestSpawnerBatchGrowsWithMultiplier(t *testing.T) {
	f := NewFreePlay(testDeps())
	m := entity.NewManager[entity.Entity]()

	for range 34 {
		f.Difficulty().RegisterCatch()
	}
	if n := f.Spawner().SpawnBatch(m); n != 2 {
		t.Errorf("batch at x%.2f = %d, want 2", f.Difficulty().Multiplier(), n)
	}
	for range 50 {
		f.Difficulty().RegisterCatch()
	}
	if n := f.Spawner().SpawnBatch(m); n != 3 {
		t.Errorf("batch at x%.2f = %d, want 3", f.Difficulty().Multiplier(), n)
	}
}

func TestSpawnerPlacement(t *testing.T) {
	d := testDeps()
	d.Config.Currency.Chance = 1
	f := NewFreePlay(d)
	for range 40 {
		f.Difficulty().RegisterCatch()
	}
	m := entity.NewManager[entity.Entity]()
	f.Spawner().SpawnBatch(m)

	items := m.Items()
	if items[0].Kind() != entity.KindCurrency {
		t.Fatalf("first kind = %v, want currency", items[0].Kind())
	}
	if m.CountKind(entity.KindCurrency) != 1 {
		t.Errorf("currency tokens = %d, want 1", m.CountKind(entity.KindCurrency))
	}
	cc := d.Config.Collectible
	for _, e := range items[1:] {
		c := e.(*entity.Collectible)
		if c.X < cc.SpawnMargin || c.X > d.Config.Playfield.Width-cc.SpawnMargin {
			t.Errorf("x = %v outside margins", c.X)
		}
		if c.Y < cc.SpawnMinY || c.Y > cc.SpawnMaxY {
			t.Errorf("y = %v outside spawn band", c.Y)
		}
		if c.Z < cc.MinDepth || c.Z > cc.MaxDepth {
			t.Errorf("z = %v outside depth range", c.Z)
		}
	}
}

func TestFreePlayReachesMissLimit(t *testing.T) {
	f := NewFreePlay(testDeps())
	var in core.InputFrame
	for i := 0; i < 60*600 && !f.Session().Terminal; i++ {
		f.Update(frame, in)
	}
	s := f.Session()
	if !s.Terminal || s.Reason != ReasonMissLimit {
		t.Fatalf("session = %+v, want miss limit", s)
	}
	if s.Missed != s.MaxMissed {
		t.Errorf("missed = %d, want %d", s.Missed, s.MaxMissed)
	}

	n := f.Entities().Len()
	f.Update(frame, in)
	if f.Entities().Len() != n || f.Session() != s {
		t.Error("terminal session kept updating")
	}
}

func TestFreePlayActorMoves(t *testing.T) {
	f := NewFreePlay(testDeps())
	x := f.Actor().X
	var in core.InputFrame
	in.Hold(core.ActionRight)
	for range 30 {
		f.Update(frame, in)
	}
	if f.Actor().X <= x {
		t.Errorf("actor x = %v, want > %v", f.Actor().X, x)
	}
	if f.Actor().Velocity <= 0 {
		t.Errorf("velocity = %v", f.Actor().Velocity)
	}
}

func TestFreePlayPauseRoundTrip(t *testing.T) {
	f := NewFreePlay(testDeps())
	var in core.InputFrame
	for range 400 {
		f.Update(frame, in)
	}
	session := f.Session()
	boxes := bounds(f.Entities())

	f.Pause()
	screen := core.NewScreen(80, 24)
	for range 10 {
		f.Draw(screen)
	}
	f.Resume()

	if f.Session() != session {
		t.Errorf("session = %+v, want %+v", f.Session(), session)
	}
	after := bounds(f.Entities())
	if len(after) != len(boxes) {
		t.Fatalf("entities = %d, want %d", len(after), len(boxes))
	}
	for i := range boxes {
		if after[i] != boxes[i] {
			t.Errorf("entity %d moved: %+v -> %+v", i, boxes[i], after[i])
		}
	}
}

func bounds(m *entity.Manager[entity.Entity]) []core.Rect {
	var out []core.Rect
	for _, e := range m.Items() {
		out = append(out, e.Bounds())
	}
	return out
}

type fakeTrack struct {
	playing bool
	stopped bool
	paused  bool
	volume  float64
	plays   int
}

func (t *fakeTrack) Play(bool)           { t.playing = true; t.plays++ }
func (t *fakeTrack) SetVolume(v float64) { t.volume = v }
func (t *fakeTrack) IsPlaying() bool     { return t.playing }
func (t *fakeTrack) Stop()               { t.playing = false; t.stopped = true }
func (t *fakeTrack) Pause()              { t.paused = true }
func (t *fakeTrack) Resume()             { t.paused = false }

var testSong = registry.Song{ID: "test", Title: "Test", BPM: 120, Notes: []string{"c4", "e4", "g4", "c5"}}

func TestRhythmPlaySpawnsOnAlternateBeats(t *testing.T) {
	track := &fakeTrack{}
	r, err := NewRhythmPlay(testDeps(), testSong, track)
	if err != nil {
		t.Fatal(err)
	}
	var in core.InputFrame

	r.Update(frame, in)
	if track.plays != 1 || track.volume != 1 {
		t.Fatalf("plays = %d, volume = %v", track.plays, track.volume)
	}
	if r.NotesSpawned() != 1 {
		t.Fatalf("notes after first frame = %d, want 1", r.NotesSpawned())
	}
	for r.Synchronizer().Elapsed() < 0.9 {
		r.Update(frame, in)
	}
	if r.NotesSpawned() != 1 {
		t.Errorf("notes before 1s = %d, want 1", r.NotesSpawned())
	}
	for r.Synchronizer().Elapsed() < 1.01 {
		r.Update(frame, in)
	}
	if r.NotesSpawned() != 2 {
		t.Errorf("notes after 1s = %d, want 2", r.NotesSpawned())
	}
	if track.volume != config.DefaultConfig().Rhythm.MutedVolume {
		t.Errorf("volume = %v, want muted after the gate window", track.volume)
	}
}

func TestRhythmPlayEndsWithTrack(t *testing.T) {
	track := &fakeTrack{}
	r, err := NewRhythmPlay(testDeps(), testSong, track)
	if err != nil {
		t.Fatal(err)
	}
	var in core.InputFrame
	r.Update(frame, in)
	track.playing = false
	r.Update(frame, in)

	s := r.Session()
	if !s.Terminal || s.Reason != ReasonTrackEnded {
		t.Errorf("session = %+v, want track ended", s)
	}
}

func TestRhythmPlayEndsOnMissedNote(t *testing.T) {
	track := &fakeTrack{}
	r, err := NewRhythmPlay(testDeps(), testSong, track)
	if err != nil {
		t.Fatal(err)
	}
	var in core.InputFrame
	for i := 0; i < 60*120 && !r.Session().Terminal; i++ {
		r.Update(frame, in)
	}
	s := r.Session()
	if s.Reason != ReasonNoteMissed {
		t.Fatalf("reason = %v, want note missed", s.Reason)
	}
	if !track.stopped {
		t.Error("track still playing after the session ended")
	}
}

func TestRhythmPlayPauseHoldsTrack(t *testing.T) {
	track := &fakeTrack{}
	r, err := NewRhythmPlay(testDeps(), testSong, track)
	if err != nil {
		t.Fatal(err)
	}
	r.Pause()
	if track.paused {
		t.Error("paused a track that never started")
	}
	r.Update(frame, core.InputFrame{})
	r.Pause()
	if !track.paused {
		t.Error("track not paused")
	}
	r.Resume()
	if track.paused {
		t.Error("track not resumed")
	}
	r.Finish()
	if !track.stopped {
		t.Error("Finish did not stop the track")
	}
}

func TestRhythmPlayRejectsBadTempo(t *testing.T) {
	song := testSong
	song.BPM = 0
	if _, err := NewRhythmPlay(testDeps(), song, &fakeTrack{}); err == nil {
		t.Error("expected an error for a zero tempo")
	}
}

func TestLaneCenters(t *testing.T) {
	got := LaneCenters(500, 3)
	want := []float64{125, 250, 375}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("lane %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLayout(t *testing.T) {
	field := config.DefaultConfig().Playfield
	vp := Layout(80, 24, field)
	want := core.NewCellRect(27, 2, 25, 20)
	if vp.Area != want {
		t.Errorf("area = %+v, want %+v", vp.Area, want)
	}

	narrow := Layout(12, 40, field)
	if narrow.Area.W > 10 || narrow.Area.X < 1 {
		t.Errorf("narrow area = %+v", narrow.Area)
	}
}

func TestThemeFromProfile(t *testing.T) {
	cfg := config.DefaultConfig()
	p := profile.NewMemory(config.DefaultItems)
	p.AddCurrency(1000)
	if err := p.Buy(config.CategoryBasket, "wide", 150); err != nil {
		t.Fatal(err)
	}
	if err := p.Equip(config.CategoryBasket, "wide"); err != nil {
		t.Fatal(err)
	}
	th := ResolveTheme(cfg, p)
	if th.ActorWidth != 140 {
		t.Errorf("actor width = %v, want 140", th.ActorWidth)
	}
	a := NewActor(cfg.Actor, cfg.Playfield, th)
	if a.Width != 140 {
		t.Errorf("actor built with width %v", a.Width)
	}
}
