package domain

import (
	"context"

	"hotelier/internal/models"
)

// Catalog holds the fixed room inventory and per-room occupancy.
// Occupancy is derived state: a room is occupied iff an active
// reservation references it.
type Catalog interface {
	ListAll() []models.Room
	FindByID(id int) (models.Room, error)
	ListAvailableByCategory(category models.RoomCategory) []models.Room
	SetOccupied(id int, occupied bool) error
}

// Ledger is the append-only, ordered collection of reservation
// records, active and cancelled alike.
type Ledger interface {
	NextID() int
	Add(res models.Reservation)
	FindByID(id int) (models.Reservation, error)
	All() []models.Reservation
	Cancel(id int) (models.Reservation, error)
	Restore(records []models.Reservation)
}

// RecordStore persists the full ledger snapshot. Save overwrites the
// previous snapshot entirely; Load of an absent store yields an empty
// sequence, not an error.
type RecordStore interface {
	Load(ctx context.Context) ([]models.Reservation, error)
	Save(ctx context.Context, records []models.Reservation) error
}

type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}

// ReservationService orchestrates bookings and cancellations across
// the catalog, the ledger and the record store.
type ReservationService interface {
	Restore(ctx context.Context) error
	Book(ctx context.Context, customerName string, roomID, nights int) (models.Reservation, error)
	Cancel(ctx context.Context, reservationID int) (models.Reservation, error)
	Rooms() []models.Room
	AvailableByCategory(category models.RoomCategory) []models.Room
	Reservations() []models.Reservation
	ReservationByID(id int) (models.Reservation, error)
}
