package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"hotelier/internal/models"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

// SQLiteStore is an embedded-database RecordStore backend. It keeps
// the same full-snapshot semantics as the file backend: Save replaces
// the whole table in one transaction.
type SQLiteStore struct {
	db     *sql.DB
	logger *zerolog.Logger
}

func NewSQLiteStore(path string, logger *zerolog.Logger) (*SQLiteStore, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create record store directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to record store: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS reservations (
        position      INTEGER PRIMARY KEY,
        id            INTEGER NOT NULL,
        customer_name TEXT NOT NULL,
        room_id       INTEGER NOT NULL,
        category      TEXT NOT NULL,
        nights        INTEGER NOT NULL,
        amount        REAL NOT NULL,
        active        BOOLEAN NOT NULL
    )`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create reservations table: %w", err)
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) ([]models.Reservation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, customer_name, room_id, category, nights, amount, active
         FROM reservations ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}
	defer rows.Close()

	var records []models.Reservation
	for rows.Next() {
		var rec models.Reservation
		var token string
		if err := rows.Scan(&rec.ID, &rec.CustomerName, &rec.RoomID, &token, &rec.Nights, &rec.Amount, &rec.Active); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		category, err := models.ParseCategory(token)
		if err != nil {
			// Parity with the file backend: bad rows are skipped, not fatal.
			s.logger.Warn().Err(err).Int("reservation_id", rec.ID).Msg("skipping reservation with unknown category")
			continue
		}
		rec.Category = category
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reservations: %w", err)
	}
	return records, nil
}

func (s *SQLiteStore) Save(ctx context.Context, records []models.Reservation) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM reservations`); err != nil {
		return fmt.Errorf("clear reservations: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO reservations (position, id, customer_name, room_id, category, nights, amount, active)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		if _, err := stmt.ExecContext(ctx, i, rec.ID, rec.CustomerName, rec.RoomID,
			string(rec.Category), rec.Nights, rec.Amount, rec.Active); err != nil {
			return fmt.Errorf("insert reservation %d: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
