// Package store holds the RecordStore implementations. The ledger is
// always persisted as a full snapshot: every Save overwrites the
// previous state, so after a successful Save the store equals the
// in-memory ledger exactly.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hotelier/internal/models"

	"github.com/rs/zerolog"
)

// FileStore keeps the ledger in a flat text file, one reservation per
// line. Malformed lines are skipped on load, never fatal.
type FileStore struct {
	path   string
	logger *zerolog.Logger
}

func NewFileStore(path string, logger *zerolog.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

func (s *FileStore) Load(ctx context.Context) ([]models.Reservation, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		// First run: no store yet.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read record store: %w", err)
	}

	var records []models.Reservation
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rec, err := decodeRecord(line)
		if err != nil {
			s.logger.Warn().Err(err).Int("line", i+1).Str("path", s.path).Msg("skipping malformed reservation record")
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *FileStore) Save(ctx context.Context, records []models.Reservation) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create record store directory: %w", err)
		}
	}

	var b strings.Builder
	for _, rec := range records {
		b.WriteString(encodeRecord(rec))
		b.WriteByte('\n')
	}

	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write record store: %w", err)
	}
	return nil
}
