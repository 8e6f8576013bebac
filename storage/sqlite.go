package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/networth"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS assets (
	position     INTEGER PRIMARY KEY,
	id           TEXT NOT NULL UNIQUE,
	name         TEXT NOT NULL,
	category     TEXT NOT NULL,
	sub_id       TEXT NOT NULL,
	sub_name     TEXT NOT NULL,
	sub_default  INTEGER NOT NULL,
	balance      TEXT NOT NULL,
	currency     TEXT NOT NULL,
	institution  TEXT NOT NULL DEFAULT '',
	notes        TEXT NOT NULL DEFAULT '',
	last_updated TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS transactions (
	position     INTEGER PRIMARY KEY,
	id           TEXT NOT NULL UNIQUE,
	asset_id     TEXT NOT NULL REFERENCES assets(id) ON DELETE CASCADE,
	occurred_at  TEXT NOT NULL,
	amount_delta TEXT NOT NULL,
	kind         TEXT NOT NULL,
	note         TEXT NOT NULL DEFAULT ''
);
`

// SQLite persists the asset collection in a SQLite database file. Save
// rewrites the collection atomically in one database transaction, which
// keeps the storage a plain load/save collaborator.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (and if needed creates) the database at dbPath.
func NewSQLite(dbPath string) (*SQLite, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Load reads the full asset collection, assets and transactions both in
// insertion order.
func (s *SQLite) Load() ([]networth.Asset, error) {
	rows, err := s.db.Query(`SELECT id, name, category, sub_id, sub_name, sub_default,
		balance, currency, institution, notes, last_updated
		FROM assets ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query assets: %w", err)
	}
	defer rows.Close()

	var assets []networth.Asset
	for rows.Next() {
		var (
			a                           networth.Asset
			id, subID, balance, updated string
			subDefault                  int
		)
		if err := rows.Scan(&id, &a.Name, &a.Category, &subID, &a.Subcategory.Name, &subDefault,
			&balance, &a.Currency, &a.Institution, &a.Notes, &updated); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		if a.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("asset id %q: %w", id, err)
		}
		if a.Subcategory.ID, err = uuid.Parse(subID); err != nil {
			return nil, fmt.Errorf("subcategory id %q: %w", subID, err)
		}
		a.Subcategory.IsDefault = subDefault != 0
		if a.Balance, err = decimal.NewFromString(balance); err != nil {
			return nil, fmt.Errorf("asset balance %q: %w", balance, err)
		}
		if a.LastUpdated, err = time.Parse(time.RFC3339Nano, updated); err != nil {
			return nil, fmt.Errorf("asset last_updated %q: %w", updated, err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assets: %w", err)
	}

	for i := range assets {
		txs, err := s.loadTransactions(assets[i].ID)
		if err != nil {
			return nil, err
		}
		assets[i].Transactions = txs
	}
	return assets, nil
}

func (s *SQLite) loadTransactions(assetID uuid.UUID) ([]networth.Transaction, error) {
	rows, err := s.db.Query(`SELECT id, occurred_at, amount_delta, kind, note
		FROM transactions WHERE asset_id = ? ORDER BY position`, assetID.String())
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []networth.Transaction
	for rows.Next() {
		var (
			tx                  networth.Transaction
			id, occurred, delta string
		)
		if err := rows.Scan(&id, &occurred, &delta, &tx.Kind, &tx.Note); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if tx.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("transaction id %q: %w", id, err)
		}
		if tx.OccurredAt, err = time.Parse(time.RFC3339Nano, occurred); err != nil {
			return nil, fmt.Errorf("transaction occurred_at %q: %w", occurred, err)
		}
		if tx.AmountDelta, err = decimal.NewFromString(delta); err != nil {
			return nil, fmt.Errorf("transaction delta %q: %w", delta, err)
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// Save replaces the stored collection with the given one.
func (s *SQLite) Save(assets []networth.Asset) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM assets`); err != nil {
		return fmt.Errorf("clear assets: %w", err)
	}

	for _, a := range assets {
		subDefault := 0
		if a.Subcategory.IsDefault {
			subDefault = 1
		}
		if _, err := tx.Exec(`INSERT INTO assets
			(id, name, category, sub_id, sub_name, sub_default, balance, currency, institution, notes, last_updated)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID.String(), a.Name, string(a.Category), a.Subcategory.ID.String(), a.Subcategory.Name, subDefault,
			a.Balance.String(), a.Currency, a.Institution, a.Notes,
			a.LastUpdated.Format(time.RFC3339Nano)); err != nil {
			return fmt.Errorf("insert asset %q: %w", a.Name, err)
		}
		for _, t := range a.Transactions {
			if _, err := tx.Exec(`INSERT INTO transactions
				(id, asset_id, occurred_at, amount_delta, kind, note)
				VALUES (?, ?, ?, ?, ?, ?)`,
				t.ID.String(), a.ID.String(), t.OccurredAt.Format(time.RFC3339Nano),
				t.AmountDelta.String(), string(t.Kind), t.Note); err != nil {
				return fmt.Errorf("insert transaction of %q: %w", a.Name, err)
			}
		}
	}
	return tx.Commit()
}
