package store

import (
	"context"
	"sync"

	"hotelier/internal/models"
)

// MemoryStore is a RecordStore that keeps the snapshot in memory.
// Used as a throwaway backend and as the test double for the service;
// LoadErr/SaveErr let tests exercise the persistence failure paths.
type MemoryStore struct {
	mu      sync.Mutex
	records []models.Reservation
	saves   int

	LoadErr error
	SaveErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) ([]models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return append([]models.Reservation(nil), s.records...), nil
}

func (s *MemoryStore) Save(ctx context.Context, records []models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.records = append([]models.Reservation(nil), records...)
	s.saves++
	return nil
}

// Seed replaces the stored snapshot without counting as a save.
func (s *MemoryStore) Seed(records []models.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]models.Reservation(nil), records...)
}

// SaveCount reports how many successful saves happened.
func (s *MemoryStore) SaveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
