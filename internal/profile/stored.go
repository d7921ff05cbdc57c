package profile

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/star-catcher/internal/storage"
)

// Backend is the persistence a Stored profile writes through to.
type Backend interface {
	LoadProfile(owner string) (storage.ProfileRecord, error)
	SetHighScore(owner string, score int) error
	AddCurrency(owner string, delta int) (int, error)
	Buy(owner, category, id string, price int) error
	Grant(owner, category, id string) error
	Equip(owner, category, id string) error
}

// Stored is a Profile backed by a Backend. Reads come from memory; writes go
// to memory first and then to the backend. Backend failures are logged and
// never surface to gameplay.
type Stored struct {
	*Memory
	backend Backend
	owner   string
	logger  *log.Logger
}

// Load reads the owner's profile. Default items are granted in the backend
// so equipping them persists.
func Load(backend Backend, owner string, defaults map[string]string, logger *log.Logger) (*Stored, error) {
	if logger == nil {
		logger = log.Default()
	}
	rec, err := backend.LoadProfile(owner)
	if err != nil {
		return nil, fmt.Errorf("profile: load %s: %w", owner, err)
	}
	for cat, id := range defaults {
		if err := backend.Grant(owner, cat, id); err != nil {
			return nil, fmt.Errorf("profile: grant defaults: %w", err)
		}
	}
	return &Stored{
		Memory:  fromRecord(rec, defaults),
		backend: backend,
		owner:   owner,
		logger:  logger,
	}, nil
}

// Owner returns the profile owner.
func (s *Stored) Owner() string {
	return s.owner
}

// SetHighScore implements Profile.
func (s *Stored) SetHighScore(score int) bool {
	if !s.Memory.SetHighScore(score) {
		return false
	}
	if err := s.backend.SetHighScore(s.owner, score); err != nil {
		s.logger.Error("save high score", "owner", s.owner, "err", err)
	}
	return true
}

// AddCurrency implements Profile.
func (s *Stored) AddCurrency(n int) {
	s.Memory.AddCurrency(n)
	if _, err := s.backend.AddCurrency(s.owner, n); err != nil {
		s.logger.Error("save currency", "owner", s.owner, "err", err)
	}
}

// Equip implements Profile.
func (s *Stored) Equip(category, id string) error {
	if err := s.Memory.Equip(category, id); err != nil {
		return err
	}
	if err := s.backend.Equip(s.owner, category, id); err != nil {
		s.logger.Error("save equipped item", "owner", s.owner, "item", id, "err", err)
	}
	return nil
}

// Buy checks the purchase against the backend first so two sessions of the
// same owner cannot spend the same balance twice.
func (s *Stored) Buy(category, id string, price int) error {
	err := s.backend.Buy(s.owner, category, id, price)
	switch {
	case errors.Is(err, ErrInsufficientFunds), errors.Is(err, ErrAlreadyOwned):
		return err
	case err != nil:
		s.logger.Error("save purchase", "owner", s.owner, "item", id, "err", err)
		return fmt.Errorf("profile: buy %s: %w", id, err)
	}
	if err := s.Memory.Buy(category, id, price); err != nil {
		s.logger.Warn("profile out of sync with storage", "owner", s.owner, "err", err)
	}
	return nil
}

var (
	_ Profile = (*Memory)(nil)
	_ Profile = (*Stored)(nil)
)
