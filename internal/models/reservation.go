package models

import "fmt"

// BaseReservationID is the first identifier the ledger hands out.
const BaseReservationID = 1000

// Reservation is one booking record. Category is captured at booking
// time and never re-derived from the catalog, so it stays historically
// accurate even if the inventory definition changes later.
type Reservation struct {
	ID           int          `json:"id"`
	CustomerName string       `json:"customer_name"`
	RoomID       int          `json:"room_id"`
	Category     RoomCategory `json:"category"`
	Nights       int          `json:"nights"`
	Amount       float64      `json:"amount"`
	Active       bool         `json:"active"`
}

// Status renders the active flag the way the ledger views do.
func (r Reservation) Status() string {
	if r.Active {
		return "ACTIVE"
	}
	return "CANCELLED"
}

func (r Reservation) String() string {
	return fmt.Sprintf("Reservation ID: %d, Name: %s, Room: %d (%s), Nights: %d, Amount: Rs. %.2f, Status: %s",
		r.ID, r.CustomerName, r.RoomID, r.Category.Label(), r.Nights, r.Amount, r.Status())
}
