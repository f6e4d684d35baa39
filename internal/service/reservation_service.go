package service

import (
	"context"
	"fmt"
	"strings"

	"hotelier/internal/domain"
	"hotelier/internal/events"
	"hotelier/internal/metrics"
	"hotelier/internal/models"

	"github.com/rs/zerolog"
)

// ReservationService coordinates the room catalog, the reservation
// ledger and the record store. Domain failures abort an operation
// before any state changes; persistence failures never do, because by
// then the in-memory mutation has already succeeded and stays
// authoritative.
type ReservationService struct {
	catalog  domain.Catalog
	ledger   domain.Ledger
	store    domain.RecordStore
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewReservationService(catalog domain.Catalog, ledger domain.Ledger, store domain.RecordStore, eventBus domain.EventPublisher, logger *zerolog.Logger) *ReservationService {
	return &ReservationService{
		catalog:  catalog,
		ledger:   ledger,
		store:    store,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Restore loads the persisted ledger and replays active reservations
// onto the catalog occupancy. Active records pointing at rooms no
// longer in the inventory are kept in the ledger but logged.
func (s *ReservationService) Restore(ctx context.Context) error {
	records, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load reservation ledger: %w", err)
	}

	s.ledger.Restore(records)
	for _, rec := range records {
		if !rec.Active {
			continue
		}
		if err := s.catalog.SetOccupied(rec.RoomID, true); err != nil {
			s.logger.Warn().Int("reservation_id", rec.ID).Int("room_id", rec.RoomID).
				Msg("active reservation references a room missing from the inventory")
		}
	}

	s.logger.Info().Int("records", len(records)).Msg("reservation ledger restored")
	return nil
}

// Book reserves a free room for the customer. The charge is the room's
// nightly rate times the number of nights, computed once and stored on
// the reservation.
func (s *ReservationService) Book(ctx context.Context, customerName string, roomID, nights int) (models.Reservation, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return models.Reservation{}, fmt.Errorf("%w: customer name must not be empty", domain.ErrInvalidInput)
	}
	if nights <= 0 {
		return models.Reservation{}, fmt.Errorf("%w: nights must be a positive number", domain.ErrInvalidInput)
	}

	room, err := s.catalog.FindByID(roomID)
	if err != nil {
		return models.Reservation{}, err
	}
	if room.Occupied {
		return models.Reservation{}, domain.ErrRoomUnavailable
	}

	if err := s.catalog.SetOccupied(room.ID, true); err != nil {
		return models.Reservation{}, err
	}

	res := models.Reservation{
		ID:           s.ledger.NextID(),
		CustomerName: customerName,
		RoomID:       room.ID,
		Category:     room.Category,
		Nights:       nights,
		Amount:       room.Rate * float64(nights),
		Active:       true,
	}
	s.ledger.Add(res)
	s.persist(ctx)

	metrics.IncBooking()
	s.publish(events.EventReservationBooked, res)
	s.logger.Info().Int("reservation_id", res.ID).Int("room_id", res.RoomID).
		Int("nights", res.Nights).Float64("amount", res.Amount).Msg("reservation booked")
	return res, nil
}

// Cancel transitions a reservation to its terminal cancelled state and
// frees the room. A room that has since been removed from the
// inventory does not block the cancellation.
func (s *ReservationService) Cancel(ctx context.Context, reservationID int) (models.Reservation, error) {
	res, err := s.ledger.Cancel(reservationID)
	if err != nil {
		return models.Reservation{}, err
	}

	if err := s.catalog.SetOccupied(res.RoomID, false); err != nil {
		s.logger.Warn().Int("reservation_id", res.ID).Int("room_id", res.RoomID).
			Msg("cancelled reservation references a room missing from the inventory")
	}
	s.persist(ctx)

	metrics.IncCancellation()
	s.publish(events.EventReservationCancelled, res)
	s.logger.Info().Int("reservation_id", res.ID).Int("room_id", res.RoomID).Msg("reservation cancelled")
	return res, nil
}

// Rooms returns the full inventory in registration order.
func (s *ReservationService) Rooms() []models.Room {
	return s.catalog.ListAll()
}

// AvailableByCategory returns free rooms of the given category.
func (s *ReservationService) AvailableByCategory(category models.RoomCategory) []models.Room {
	return s.catalog.ListAvailableByCategory(category)
}

// Reservations returns the full ledger, cancelled records included.
func (s *ReservationService) Reservations() []models.Reservation {
	return s.ledger.All()
}

func (s *ReservationService) ReservationByID(id int) (models.Reservation, error) {
	return s.ledger.FindByID(id)
}

// persist writes the full ledger snapshot. A failed write is reported
// and counted but does not unwind the domain operation: the in-memory
// state stays authoritative for the rest of the process.
func (s *ReservationService) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.ledger.All()); err != nil {
		metrics.IncPersistenceError()
		s.logger.Error().Err(err).Msg("failed to persist reservation ledger")
	}
}

func (s *ReservationService) publish(eventType string, res models.Reservation) {
	if s.eventBus == nil {
		return
	}

	payload := events.ReservationEventPayload{
		ReservationID: res.ID,
		CustomerName:  res.CustomerName,
		RoomID:        res.RoomID,
		Category:      string(res.Category),
		Nights:        res.Nights,
		Amount:        res.Amount,
		Active:        res.Active,
	}

	if err := s.eventBus.PublishJSON(eventType, payload); err != nil {
		s.logger.Error().Err(err).Str("event_type", eventType).Int("reservation_id", res.ID).Msg("publish event error")
	}
}
