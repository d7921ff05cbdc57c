// Package profile holds the persistent player state the session reads and
// writes: high score, currency and shop inventory.
package profile

import (
	"slices"
	"sync"

	"github.com/vovakirdan/star-catcher/internal/storage"
)

// Errors returned by Buy and Equip.
var (
	ErrInsufficientFunds = storage.ErrInsufficientFunds
	ErrAlreadyOwned      = storage.ErrAlreadyOwned
	ErrNotOwned          = storage.ErrNotOwned
)

// Profile is the persistent player state.
type Profile interface {
	// HighScore returns the best score so far.
	HighScore() int
	// SetHighScore keeps the larger of the stored and given score and
	// reports whether the given score is a new record.
	SetHighScore(score int) bool
	// Currency returns the balance.
	Currency() int
	// AddCurrency changes the balance; it never drops below zero.
	AddCurrency(n int)
	// HasItem reports whether an item is owned.
	HasItem(category, id string) bool
	// Equip selects an owned item.
	Equip(category, id string) error
	// Equipped returns the selected item of a category, or "".
	Equipped(category string) string
	// Buy pays price and adds the item to the inventory.
	Buy(category, id string, price int) error
}

// Memory is a Profile kept in memory. It is safe for concurrent use.
type Memory struct {
	mu        sync.RWMutex
	highScore int
	currency  int
	owned     map[string][]string
	equipped  map[string]string
}

// NewMemory creates an empty profile that owns and equips the given
// default items (category -> id).
func NewMemory(defaults map[string]string) *Memory {
	m := &Memory{
		owned:    make(map[string][]string),
		equipped: make(map[string]string),
	}
	for cat, id := range defaults {
		m.owned[cat] = append(m.owned[cat], id)
		m.equipped[cat] = id
	}
	return m
}

// fromRecord builds a memory profile from a stored record on top of defaults.
func fromRecord(rec storage.ProfileRecord, defaults map[string]string) *Memory {
	m := NewMemory(defaults)
	m.highScore = rec.HighScore
	m.currency = rec.Currency
	for cat, ids := range rec.Owned {
		for _, id := range ids {
			if !slices.Contains(m.owned[cat], id) {
				m.owned[cat] = append(m.owned[cat], id)
			}
		}
	}
	for cat, id := range rec.Equipped {
		if slices.Contains(m.owned[cat], id) {
			m.equipped[cat] = id
		}
	}
	return m
}

// HighScore implements Profile.
func (m *Memory) HighScore() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.highScore
}

// SetHighScore implements Profile.
func (m *Memory) SetHighScore(score int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score <= m.highScore {
		return false
	}
	m.highScore = score
	return true
}

// Currency implements Profile.
func (m *Memory) Currency() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currency
}

// AddCurrency implements Profile.
func (m *Memory) AddCurrency(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currency = max(0, m.currency+n)
}

// HasItem implements Profile.
func (m *Memory) HasItem(category, id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Contains(m.owned[category], id)
}

// Equip implements Profile.
func (m *Memory) Equip(category, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !slices.Contains(m.owned[category], id) {
		return ErrNotOwned
	}
	m.equipped[category] = id
	return nil
}

// Equipped implements Profile.
func (m *Memory) Equipped(category string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.equipped[category]
}

// Buy implements Profile.
func (m *Memory) Buy(category, id string, price int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if slices.Contains(m.owned[category], id) {
		return ErrAlreadyOwned
	}
	if m.currency < price {
		return ErrInsufficientFunds
	}
	m.currency -= max(price, 0)
	m.owned[category] = append(m.owned[category], id)
	return nil
}

// Owned returns the owned items of a category.
func (m *Memory) Owned(category string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.owned[category])
}
