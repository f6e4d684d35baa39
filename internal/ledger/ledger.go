// Package ledger implements the ordered reservation ledger. Records
// are append-only: cancellation flips the active flag but never
// removes the record, so the full booking history stays auditable.
package ledger

import (
	"hotelier/internal/domain"
	"hotelier/internal/models"
)

type Ledger struct {
	records []models.Reservation
	nextID  int
}

func New() *Ledger {
	return &Ledger{nextID: models.BaseReservationID}
}

// NextID returns a fresh identifier and advances the counter.
// Identifiers are never reused, even across restarts.
func (l *Ledger) NextID() int {
	id := l.nextID
	l.nextID++
	return id
}

// Add appends the record; insertion order is booking history.
func (l *Ledger) Add(res models.Reservation) {
	l.records = append(l.records, res)
}

func (l *Ledger) FindByID(id int) (models.Reservation, error) {
	for _, rec := range l.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return models.Reservation{}, domain.ErrReservationNotFound
}

// All returns every record, cancelled entries included.
func (l *Ledger) All() []models.Reservation {
	return append([]models.Reservation(nil), l.records...)
}

// Cancel marks the record inactive. The transition is terminal: a
// second cancel fails with ErrAlreadyCancelled rather than succeeding
// as a no-op.
func (l *Ledger) Cancel(id int) (models.Reservation, error) {
	for i := range l.records {
		if l.records[i].ID != id {
			continue
		}
		if !l.records[i].Active {
			return models.Reservation{}, domain.ErrAlreadyCancelled
		}
		l.records[i].Active = false
		return l.records[i], nil
	}
	return models.Reservation{}, domain.ErrReservationNotFound
}

// Restore replaces the ledger contents with loaded records and
// recomputes the id counter as 1 + max(existing ids), never below the
// base, so restarts keep allocation monotonic.
func (l *Ledger) Restore(records []models.Reservation) {
	l.records = append([]models.Reservation(nil), records...)
	l.nextID = models.BaseReservationID
	for _, rec := range records {
		if rec.ID >= l.nextID {
			l.nextID = rec.ID + 1
		}
	}
}
