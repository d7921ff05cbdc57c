package states

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/game"
	"github.com/vovakirdan/star-catcher/internal/profile"
	_ "github.com/vovakirdan/star-catcher/internal/songs"
)

const frame = 1.0 / 60

type savedScore struct {
	owner, mode string
	score       int
}

type fakeScores struct {
	saved []savedScore
}

func (f *fakeScores) SaveScore(owner, mode string, score int) (int64, error) {
	f.saved = append(f.saved, savedScore{owner, mode, score})
	return int64(len(f.saved)), nil
}

func newTestMachine(t *testing.T) (*Machine, *fakeScores, *profile.Memory) {
	t.Helper()
	scores := &fakeScores{}
	p := profile.NewMemory(config.DefaultItems)
	m := NewMachine(&Env{
		Config:  config.DefaultConfig(),
		Profile: p,
		Scores:  scores,
		Owner:   "tester",
		Logger:  log.New(io.Discard),
		Seed:    42,
		Muted:   true,
	})
	return m, scores, p
}

func press(m *Machine, actions ...core.Action) {
	for _, a := range actions {
		m.Update(frame, core.Pressed(a))
	}
}

func idle(m *Machine, frames int) {
	for range frames {
		m.Update(frame, core.NewInputFrame())
	}
}

func snapshot(p *Play) (game.Session, []core.Rect) {
	var boxes []core.Rect
	if f, ok := p.Mode().(*game.FreePlay); ok {
		for _, e := range f.Entities().Items() {
			boxes = append(boxes, e.Bounds())
		}
	}
	return p.Mode().Session(), boxes
}

func TestMachineStartsAtMenu(t *testing.T) {
	m, _, _ := newTestMachine(t)
	if _, ok := m.Current().(*Menu); !ok {
		t.Fatalf("initial state = %s", m.Current().Name())
	}
	if m.Env().Tier != config.DifficultyNormal {
		t.Errorf("tier = %q, want normal", m.Env().Tier)
	}
}

func TestPauseRoundTrip(t *testing.T) {
	m, _, _ := newTestMachine(t)
	press(m, core.ActionConfirm)
	play, ok := m.Current().(*Play)
	if !ok {
		t.Fatalf("state after confirm = %s, want freeplay", m.Current().Name())
	}
	idle(m, 300)
	wantSession, wantBoxes := snapshot(play)
	if len(wantBoxes) == 0 {
		t.Fatal("no entities after 300 frames")
	}

	press(m, core.ActionPause)
	paused, ok := m.Current().(*Paused)
	if !ok {
		t.Fatalf("state after pause = %s", m.Current().Name())
	}
	if paused.Prior() != play {
		t.Fatal("paused state does not hold the running session")
	}
	idle(m, 120)
	m.Draw(core.NewScreen(80, 24))

	press(m, core.ActionPause)
	if m.Current() != play {
		t.Fatalf("resume returned %s, want the same session", m.Current().Name())
	}
	gotSession, gotBoxes := snapshot(play)
	if gotSession != wantSession {
		t.Errorf("session = %+v, want %+v", gotSession, wantSession)
	}
	if len(gotBoxes) != len(wantBoxes) {
		t.Fatalf("entities = %d, want %d", len(gotBoxes), len(wantBoxes))
	}
	for i := range wantBoxes {
		if gotBoxes[i] != wantBoxes[i] {
			t.Errorf("entity %d moved while paused", i)
		}
	}
}

func TestPausedAbandonGoesToMenu(t *testing.T) {
	m, scores, _ := newTestMachine(t)
	press(m, core.ActionConfirm)
	idle(m, 10)
	press(m, core.ActionCancel, core.ActionDown, core.ActionConfirm)
	if _, ok := m.Current().(*Menu); !ok {
		t.Fatalf("state = %s, want menu", m.Current().Name())
	}
	if len(scores.saved) != 0 {
		t.Errorf("abandoned run recorded: %+v", scores.saved)
	}
}

func TestGameOverRecordsAndRetries(t *testing.T) {
	m, scores, p := newTestMachine(t)
	press(m, core.ActionConfirm)
	first := m.Current().(*Play)

	for i := 0; i < 60*600; i++ {
		if _, ok := m.Current().(*GameOver); ok {
			break
		}
		m.Update(frame, core.NewInputFrame())
	}
	over, ok := m.Current().(*GameOver)
	if !ok {
		t.Fatalf("state = %s, want game over", m.Current().Name())
	}
	s := over.Session()
	if s.Reason != game.ReasonMissLimit {
		t.Errorf("reason = %v", s.Reason)
	}
	if p.HighScore() != s.Score {
		t.Errorf("high score = %d, want %d", p.HighScore(), s.Score)
	}
	if s.Score > 0 {
		if len(scores.saved) != 1 || scores.saved[0] != (savedScore{"tester", game.ModeFreePlay, s.Score}) {
			t.Errorf("saved = %+v", scores.saved)
		}
	}

	idle(m, 30)
	if m.Current() != over {
		t.Fatal("game over left without input")
	}

	press(m, core.ActionConfirm)
	retry, ok := m.Current().(*Play)
	if !ok || retry == first {
		t.Fatalf("retry state = %s", m.Current().Name())
	}
	if retry.Mode().ID() != game.ModeFreePlay || retry.Mode().Session().Score != 0 {
		t.Errorf("retry = %s with %+v", retry.Mode().ID(), retry.Mode().Session())
	}
}

func TestQuitConfirm(t *testing.T) {
	m, _, _ := newTestMachine(t)
	menu := m.Current()

	press(m, core.ActionCancel)
	if _, ok := m.Current().(*QuitConfirm); !ok {
		t.Fatalf("state = %s, want quit confirm", m.Current().Name())
	}
	press(m, core.ActionCancel)
	if m.Current() != menu {
		t.Fatal("cancel did not return to the menu")
	}

	press(m, core.ActionCancel, core.ActionConfirm)
	if m.Current() != menu || m.Done() {
		t.Fatal("confirming the default answer should stay")
	}

	press(m, core.ActionCancel, core.ActionLeft, core.ActionConfirm)
	if !m.Done() {
		t.Fatal("session did not end")
	}
}

func TestSettings(t *testing.T) {
	m, _, _ := newTestMachine(t)
	m.Env().Muted = false
	press(m, core.ActionDown, core.ActionDown, core.ActionDown, core.ActionConfirm)
	if _, ok := m.Current().(*Settings); !ok {
		t.Fatalf("state = %s, want settings", m.Current().Name())
	}

	press(m, core.ActionRight)
	if m.Env().Tier != config.DifficultyHard {
		t.Errorf("tier = %q, want hard", m.Env().Tier)
	}
	press(m, core.ActionRight)
	if m.Env().Tier != config.DifficultyEasy {
		t.Errorf("tier = %q, want easy after wrapping", m.Env().Tier)
	}
	press(m, core.ActionDown, core.ActionConfirm)
	if !m.Env().Muted {
		t.Error("sound not muted")
	}

	press(m, core.ActionCancel)
	if _, ok := m.Current().(*Menu); !ok {
		t.Fatalf("state = %s, want menu", m.Current().Name())
	}

	press(m, core.ActionConfirm)
	play := m.Current().(*Play)
	f := play.Mode().(*game.FreePlay)
	for range config.DefaultConfig().Difficulty.SpawnIntervals.Easy - 2 {
		m.Update(frame, core.NewInputFrame())
	}
	if f.Entities().Len() != 0 {
		t.Error("easy tier spawned early")
	}
}

func TestShopBuyAndEquip(t *testing.T) {
	m, _, p := newTestMachine(t)
	p.AddCurrency(200)
	press(m, core.ActionDown, core.ActionDown, core.ActionConfirm)
	if _, ok := m.Current().(*Shop); !ok {
		t.Fatalf("state = %s, want shop", m.Current().Name())
	}

	press(m, core.ActionRight, core.ActionDown, core.ActionDown, core.ActionConfirm)
	if p.Equipped(config.CategoryBasket) != "wide" {
		t.Errorf("equipped = %q, want wide", p.Equipped(config.CategoryBasket))
	}
	if p.Currency() != 50 {
		t.Errorf("currency = %d, want 50", p.Currency())
	}

	press(m, core.ActionUp, core.ActionConfirm)
	if p.Equipped(config.CategoryBasket) == "ember" || p.Currency() != 50 {
		t.Errorf("bought ember with too few coins: %q, %d", p.Equipped(config.CategoryBasket), p.Currency())
	}

	press(m, core.ActionCancel, core.ActionConfirm)
	play := m.Current().(*Play)
	if w := play.Mode().(*game.FreePlay).Actor().Width; w != 140 {
		t.Errorf("actor width = %v, want 140", w)
	}
}

func TestSongSelectStartsRhythm(t *testing.T) {
	m, _, _ := newTestMachine(t)
	press(m, core.ActionDown, core.ActionConfirm)
	sel, ok := m.Current().(*SongSelect)
	if !ok {
		t.Fatalf("state = %s, want song select", m.Current().Name())
	}
	if len(sel.songs) == 0 {
		t.Fatal("no songs registered")
	}

	press(m, core.ActionConfirm)
	play, ok := m.Current().(*Play)
	if !ok {
		t.Fatalf("state = %s, want rhythm", m.Current().Name())
	}
	if !strings.HasPrefix(play.Mode().ID(), "rhythm:") {
		t.Errorf("mode = %s", play.Mode().ID())
	}
	r := play.Mode().(*game.RhythmPlay)
	for r.Synchronizer().Elapsed() <= r.Song().Offset {
		m.Update(frame, core.NewInputFrame())
	}
	if r.NotesSpawned() != 1 {
		t.Errorf("notes = %d, want 1", r.NotesSpawned())
	}

	press(m, core.ActionPause, core.ActionDown, core.ActionConfirm)
	if _, ok := m.Current().(*Menu); !ok {
		t.Fatalf("state = %s, want menu", m.Current().Name())
	}
}

func TestMachineDraws(t *testing.T) {
	m, _, _ := newTestMachine(t)
	screen := core.NewScreen(80, 24)
	m.Draw(screen)
	if !strings.Contains(screen.String(), "S T A R") {
		t.Error("menu title not drawn")
	}
}
