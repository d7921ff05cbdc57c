package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Profile errors.
var (
	ErrInsufficientFunds = errors.New("storage: not enough currency")
	ErrAlreadyOwned      = errors.New("storage: item already owned")
	ErrNotOwned          = errors.New("storage: item not owned")
)

// ProfileRecord is the persisted state of one player.
type ProfileRecord struct {
	Owner     string
	HighScore int
	Currency  int
	Owned     map[string][]string // category -> item IDs
	Equipped  map[string]string   // category -> item ID
}

// LoadProfile reads a player's profile. Unknown owners get an empty record.
func (s *Store) LoadProfile(owner string) (ProfileRecord, error) {
	rec := ProfileRecord{
		Owner:    owner,
		Owned:    make(map[string][]string),
		Equipped: make(map[string]string),
	}

	err := s.db.QueryRow(
		"SELECT high_score, currency FROM profiles WHERE owner = ?",
		owner,
	).Scan(&rec.HighScore, &rec.Currency)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return rec, fmt.Errorf("storage: cannot load profile: %w", err)
	}

	rows, err := s.db.Query(
		"SELECT category, item_id FROM inventory WHERE owner = ? ORDER BY bought_at, item_id",
		owner,
	)
	if err != nil {
		return rec, fmt.Errorf("storage: cannot load inventory: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var cat, id string
		if err := rows.Scan(&cat, &id); err != nil {
			return rec, fmt.Errorf("storage: cannot scan inventory: %w", err)
		}
		rec.Owned[cat] = append(rec.Owned[cat], id)
	}
	if err := rows.Err(); err != nil {
		return rec, fmt.Errorf("storage: inventory iteration error: %w", err)
	}

	eq, err := s.db.Query("SELECT category, item_id FROM equipped WHERE owner = ?", owner)
	if err != nil {
		return rec, fmt.Errorf("storage: cannot load equipped items: %w", err)
	}
	defer eq.Close()
	for eq.Next() {
		var cat, id string
		if err := eq.Scan(&cat, &id); err != nil {
			return rec, fmt.Errorf("storage: cannot scan equipped item: %w", err)
		}
		rec.Equipped[cat] = id
	}
	if err := eq.Err(); err != nil {
		return rec, fmt.Errorf("storage: equipped iteration error: %w", err)
	}

	return rec, nil
}

// SetHighScore stores score if it beats the saved high score.
func (s *Store) SetHighScore(owner string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO profiles (owner, high_score) VALUES (?, ?)
		 ON CONFLICT(owner) DO UPDATE SET
		   high_score = MAX(high_score, excluded.high_score),
		   updated_at = CURRENT_TIMESTAMP`,
		owner, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set high score: %w", err)
	}
	return nil
}

// AddCurrency adds delta to the balance and returns the new balance. The
// balance never drops below zero.
func (s *Store) AddCurrency(owner string, delta int) (int, error) {
	var balance int
	err := s.db.QueryRow(
		`INSERT INTO profiles (owner, currency) VALUES (?1, MAX(?2, 0))
		 ON CONFLICT(owner) DO UPDATE SET
		   currency = MAX(currency + ?2, 0),
		   updated_at = CURRENT_TIMESTAMP
		 RETURNING currency`,
		owner, delta,
	).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot add currency: %w", err)
	}
	return balance, nil
}

// Buy deducts price and records the item in one transaction.
func (s *Store) Buy(owner, category, itemID string, price int) (err error) {
	tx, err := s.db.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin purchase: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var owned int
	if err = tx.QueryRow(
		"SELECT COUNT(*) FROM inventory WHERE owner = ? AND category = ? AND item_id = ?",
		owner, category, itemID,
	).Scan(&owned); err != nil {
		return fmt.Errorf("storage: cannot check inventory: %w", err)
	}
	if owned > 0 {
		return ErrAlreadyOwned
	}

	var balance int
	err = tx.QueryRow("SELECT currency FROM profiles WHERE owner = ?", owner).Scan(&balance)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("storage: cannot read balance: %w", err)
	}
	if balance < price {
		return ErrInsufficientFunds
	}

	if _, err = tx.Exec(
		`INSERT INTO profiles (owner, currency) VALUES (?, 0)
		 ON CONFLICT(owner) DO UPDATE SET currency = currency - ?, updated_at = CURRENT_TIMESTAMP`,
		owner, price,
	); err != nil {
		return fmt.Errorf("storage: cannot charge purchase: %w", err)
	}
	if _, err = tx.Exec(
		"INSERT INTO inventory (owner, category, item_id) VALUES (?, ?, ?)",
		owner, category, itemID,
	); err != nil {
		return fmt.Errorf("storage: cannot record purchase: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit purchase: %w", err)
	}
	return nil
}

// Grant records an item as owned without charging for it. Granting an owned
// item is a no-op.
func (s *Store) Grant(owner, category, itemID string) error {
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO inventory (owner, category, item_id) VALUES (?, ?, ?)",
		owner, category, itemID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot grant item: %w", err)
	}
	return nil
}

// Equip selects an owned item for its category.
func (s *Store) Equip(owner, category, itemID string) error {
	var owned int
	if err := s.db.QueryRow(
		"SELECT COUNT(*) FROM inventory WHERE owner = ? AND category = ? AND item_id = ?",
		owner, category, itemID,
	).Scan(&owned); err != nil {
		return fmt.Errorf("storage: cannot check inventory: %w", err)
	}
	if owned == 0 {
		return ErrNotOwned
	}

	_, err := s.db.Exec(
		`INSERT INTO equipped (owner, category, item_id) VALUES (?, ?, ?)
		 ON CONFLICT(owner, category) DO UPDATE SET item_id = excluded.item_id`,
		owner, category, itemID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot equip item: %w", err)
	}
	return nil
}
