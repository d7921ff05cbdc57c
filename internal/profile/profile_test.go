package profile

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/star-catcher/internal/storage"
)

var defaults = map[string]string{"color": "gold", "basket": "classic"}

func TestMemoryHighScoreKeepsMax(t *testing.T) {
	p := NewMemory(defaults)

	if !p.SetHighScore(100) {
		t.Error("first score should be a record")
	}
	if p.SetHighScore(40) {
		t.Error("lower score should not be a record")
	}
	if p.HighScore() != 100 {
		t.Errorf("HighScore() = %d, want 100", p.HighScore())
	}
	p.SetHighScore(150)
	if p.HighScore() != 150 {
		t.Errorf("HighScore() = %d, want 150", p.HighScore())
	}
}

func TestMemoryCurrency(t *testing.T) {
	p := NewMemory(nil)
	p.AddCurrency(5)
	p.AddCurrency(5)
	if p.Currency() != 10 {
		t.Errorf("Currency() = %d, want 10", p.Currency())
	}
	p.AddCurrency(-50)
	if p.Currency() != 0 {
		t.Errorf("Currency() = %d, want 0", p.Currency())
	}
}

func TestMemoryShop(t *testing.T) {
	p := NewMemory(defaults)

	if !p.HasItem("color", "gold") || p.Equipped("color") != "gold" {
		t.Fatal("defaults should be owned and equipped")
	}

	if err := p.Buy("color", "ice", 50); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("Buy() broke = %v, want ErrInsufficientFunds", err)
	}
	p.AddCurrency(60)
	if err := p.Buy("color", "ice", 50); err != nil {
		t.Fatalf("Buy() = %v", err)
	}
	if p.Currency() != 10 {
		t.Errorf("Currency() after buy = %d, want 10", p.Currency())
	}
	if err := p.Buy("color", "ice", 0); !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("Buy() owned = %v, want ErrAlreadyOwned", err)
	}

	if err := p.Equip("color", "rose"); !errors.Is(err, ErrNotOwned) {
		t.Errorf("Equip() unowned = %v, want ErrNotOwned", err)
	}
	if err := p.Equip("color", "ice"); err != nil {
		t.Fatalf("Equip() = %v", err)
	}
	if p.Equipped("color") != "ice" {
		t.Errorf("Equipped() = %q, want ice", p.Equipped("color"))
	}
	if got := p.Owned("color"); len(got) != 2 {
		t.Errorf("Owned() = %v", got)
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	st, err := storage.Open(filepath.Join(t.TempDir(), "profile.db"))
	if err != nil {
		t.Fatalf("storage.Open() = %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestStoredRoundTrip(t *testing.T) {
	st := openStore(t)
	logger := log.New(io.Discard)

	p, err := Load(st, "alice", defaults, logger)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	p.SetHighScore(321)
	p.AddCurrency(80)
	if err := p.Buy("basket", "wide", 75); err != nil {
		t.Fatalf("Buy() = %v", err)
	}
	if err := p.Equip("basket", "wide"); err != nil {
		t.Fatalf("Equip() = %v", err)
	}
	if err := p.Equip("color", "gold"); err != nil {
		t.Fatalf("Equip(default) = %v", err)
	}

	again, err := Load(st, "alice", defaults, logger)
	if err != nil {
		t.Fatalf("reload = %v", err)
	}
	if again.HighScore() != 321 || again.Currency() != 5 {
		t.Errorf("reloaded high=%d currency=%d, want 321 and 5", again.HighScore(), again.Currency())
	}
	if !again.HasItem("basket", "wide") || again.Equipped("basket") != "wide" {
		t.Error("purchase and equip should persist")
	}
	if again.Equipped("color") != "gold" {
		t.Errorf("Equipped(color) = %q, want gold", again.Equipped("color"))
	}

	other, _ := Load(st, "bob", defaults, logger)
	if other.HighScore() != 0 || other.Currency() != 0 || other.Equipped("basket") != "classic" {
		t.Error("profiles must be separated by owner")
	}
}

func TestStoredBuyChecksBackend(t *testing.T) {
	st := openStore(t)
	logger := log.New(io.Discard)

	first, _ := Load(st, "carol", defaults, logger)
	second, _ := Load(st, "carol", defaults, logger)
	first.AddCurrency(50)

	// second has a stale zero balance but the backend has 50.
	if err := second.Buy("color", "ice", 50); err != nil {
		t.Fatalf("Buy() = %v", err)
	}
	if err := first.Buy("color", "ice", 50); !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("duplicate purchase = %v, want ErrAlreadyOwned", err)
	}
	if err := first.Buy("color", "rose", 10); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("overspend = %v, want ErrInsufficientFunds", err)
	}
}
