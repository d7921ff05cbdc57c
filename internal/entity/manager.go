package entity

import (
	"slices"

	"github.com/vovakirdan/star-catcher/internal/core"
)

// Manager owns a collection of entities in insertion order.
//
// Updates iterate over a snapshot taken at the start of the pass, so entities
// removed during the pass are still updated exactly once and entities added
// during the pass wait for the next one.
type Manager[T Entity] struct {
	items []T
}

// NewManager creates an empty manager.
func NewManager[T Entity]() *Manager[T] {
	return &Manager[T]{items: make([]T, 0, 32)}
}

// Add appends an entity.
func (m *Manager[T]) Add(e T) {
	m.items = append(m.items, e)
}

// Remove deletes the first entity identical to e, keeping the order of the
// rest. It reports whether anything was removed.
func (m *Manager[T]) Remove(e T) bool {
	for i, it := range m.items {
		if same(it, e) {
			m.items = slices.Delete(m.items, i, i+1)
			return true
		}
	}
	return false
}

// Contains reports whether e is still owned by the manager.
func (m *Manager[T]) Contains(e T) bool {
	for _, it := range m.items {
		if same(it, e) {
			return true
		}
	}
	return false
}

// UpdateAll updates every entity present at call start and drops those that
// report they are no longer live.
func (m *Manager[T]) UpdateAll(dt float64, ctx Context) {
	if len(m.items) == 0 {
		return
	}
	for _, e := range m.Items() {
		if !e.Update(dt, ctx) {
			m.Remove(e)
		}
	}
}

// DrawAll draws entities in insertion order, later ones on top.
func (m *Manager[T]) DrawAll(dst *core.Screen, vp Viewport) {
	for _, e := range m.items {
		e.Draw(dst, vp)
	}
}

// Clear removes all entities.
func (m *Manager[T]) Clear() {
	clear(m.items)
	m.items = m.items[:0]
}

// Len returns the number of entities.
func (m *Manager[T]) Len() int {
	return len(m.items)
}

// Items returns a snapshot of the entities. Mutating the manager does not
// affect the returned slice.
func (m *Manager[T]) Items() []T {
	return slices.Clone(m.items)
}

// CountKind returns how many entities carry the given kind.
func (m *Manager[T]) CountKind(k Kind) int {
	n := 0
	for _, e := range m.items {
		if e.Kind() == k {
			n++
		}
	}
	return n
}

// same compares entities by identity. Entities are pointers, so interface
// equality is pointer equality.
func same[T Entity](a, b T) bool {
	return any(a) == any(b)
}
