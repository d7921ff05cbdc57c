package entity

import (
	"testing"

	"github.com/vovakirdan/star-catcher/internal/core"
)

// probe counts updates and can run a hook during its own update.
type probe struct {
	name    string
	updates int
	live    bool
	onTick  func()
	drawn   *[]string
}

func newProbe(name string) *probe { return &probe{name: name, live: true} }

func (p *probe) Kind() Kind { return KindCollectible }

func (p *probe) Update(float64, Context) bool {
	p.updates++
	if p.onTick != nil {
		p.onTick()
	}
	return p.live
}

func (p *probe) Draw(*core.Screen, Viewport) {
	if p.drawn != nil {
		*p.drawn = append(*p.drawn, p.name)
	}
}

func (p *probe) Bounds() core.Rect { return core.Rect{} }

func TestManagerAddRemoveOrder(t *testing.T) {
	m := NewManager[*probe]()
	a, b, c := newProbe("a"), newProbe("b"), newProbe("c")
	m.Add(a)
	m.Add(b)
	m.Add(c)

	if !m.Remove(b) {
		t.Fatal("Remove(b) = false")
	}
	if m.Remove(b) {
		t.Error("second Remove(b) should report false")
	}

	items := m.Items()
	if len(items) != 2 || items[0] != a || items[1] != c {
		t.Errorf("order after remove = %v, want [a c]", names(items))
	}
}

func TestManagerRemoveByIdentity(t *testing.T) {
	m := NewManager[*probe]()
	a1, a2 := newProbe("a"), newProbe("a")
	m.Add(a1)
	m.Add(a2)

	m.Remove(a2)
	if !m.Contains(a1) || m.Contains(a2) {
		t.Error("Remove must match by identity, not by value")
	}
}

func TestManagerUpdateSnapshotIsolation(t *testing.T) {
	m := NewManager[*probe]()
	a, b, c := newProbe("a"), newProbe("b"), newProbe("c")
	added := newProbe("added")

	// a removes b and adds a new entity mid-pass.
	a.onTick = func() {
		m.Remove(b)
		m.Add(added)
	}
	m.Add(a)
	m.Add(b)
	m.Add(c)

	m.UpdateAll(1.0/60, Context{})

	for _, p := range []*probe{a, b, c} {
		if p.updates != 1 {
			t.Errorf("%s updated %d times, want 1", p.name, p.updates)
		}
	}
	if added.updates != 0 {
		t.Errorf("entity added mid-pass updated %d times, want 0", added.updates)
	}
	if m.Contains(b) {
		t.Error("b should stay removed")
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}

func TestManagerUpdateDropsDead(t *testing.T) {
	m := NewManager[*probe]()
	a, b := newProbe("a"), newProbe("b")
	b.live = false
	m.Add(a)
	m.Add(b)

	m.UpdateAll(0.016, Context{})

	if m.Len() != 1 || !m.Contains(a) {
		t.Errorf("after update = %v, want [a]", names(m.Items()))
	}
}

func TestManagerDrawOrder(t *testing.T) {
	var drawn []string
	m := NewManager[*probe]()
	for _, n := range []string{"first", "second", "third"} {
		p := newProbe(n)
		p.drawn = &drawn
		m.Add(p)
	}

	m.DrawAll(core.NewScreen(1, 1), Viewport{})

	want := []string{"first", "second", "third"}
	for i := range want {
		if drawn[i] != want[i] {
			t.Fatalf("draw order = %v, want %v", drawn, want)
		}
	}
}

func TestManagerItemsIsSnapshot(t *testing.T) {
	m := NewManager[*probe]()
	a := newProbe("a")
	m.Add(a)

	items := m.Items()
	m.Clear()
	if len(items) != 1 || items[0] != a {
		t.Error("Items() result changed after Clear")
	}
	if m.Len() != 0 {
		t.Errorf("Len() after Clear = %d", m.Len())
	}
}

func TestManagerEmptyNoOps(t *testing.T) {
	m := NewManager[*probe]()
	m.UpdateAll(1, Context{})
	m.DrawAll(core.NewScreen(1, 1), Viewport{})
	m.Clear()
	if m.Remove(newProbe("x")) {
		t.Error("Remove on empty manager should report false")
	}
	if m.Len() != 0 || len(m.Items()) != 0 {
		t.Error("empty manager should stay empty")
	}
}

func TestManagerInterfaceElements(t *testing.T) {
	m := NewManager[Entity]()
	star := &Collectible{X: 10, Y: 10, Z: 0.5, Speed: 60, Size: 5}
	part := &Particle{Radius: 3, Life: 0.01, ShrinkRate: 5}
	m.Add(star)
	m.Add(part)

	if got := m.CountKind(KindParticle); got != 1 {
		t.Errorf("CountKind(particle) = %d, want 1", got)
	}

	m.UpdateAll(0.1, Context{SpeedMultiplier: 1})

	if m.Len() != 1 || !m.Contains(star) {
		t.Error("expired particle should be dropped, star kept")
	}
}

func names(ps []*probe) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.name
	}
	return out
}
