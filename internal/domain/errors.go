package domain

import "errors"

// Domain-level error values. Callers discriminate with errors.Is; the
// CLI maps them to user-facing messages.
var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomUnavailable     = errors.New("room is already booked")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrAlreadyCancelled    = errors.New("reservation is already cancelled")
	ErrInvalidInput        = errors.New("invalid input")
)
