package store

import (
	"fmt"
	"strconv"
	"strings"

	"hotelier/internal/models"
)

// recordFieldCount is the fixed layout of one persisted line:
// id,name,roomId,categoryToken,nights,amount,active
const recordFieldCount = 7

// encodeRecord renders one reservation as a comma-separated line.
// Commas inside the customer name are not escaped; such names corrupt
// the record on the next load. Known schema limitation.
func encodeRecord(r models.Reservation) string {
	return fmt.Sprintf("%d,%s,%d,%s,%d,%s,%t",
		r.ID, r.CustomerName, r.RoomID, r.Category,
		r.Nights, strconv.FormatFloat(r.Amount, 'f', -1, 64), r.Active)
}

// decodeRecord parses one line back into a reservation. Any field
// that fails to parse makes the whole line malformed; the caller
// skips it rather than failing the load.
func decodeRecord(line string) (models.Reservation, error) {
	parts := strings.Split(line, ",")
	if len(parts) != recordFieldCount {
		return models.Reservation{}, fmt.Errorf("expected %d fields, got %d", recordFieldCount, len(parts))
	}

	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return models.Reservation{}, fmt.Errorf("invalid reservation id %q: %w", parts[0], err)
	}

	roomID, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return models.Reservation{}, fmt.Errorf("invalid room id %q: %w", parts[2], err)
	}

	category, err := models.ParseCategory(parts[3])
	if err != nil {
		return models.Reservation{}, err
	}

	nights, err := strconv.Atoi(strings.TrimSpace(parts[4]))
	if err != nil {
		return models.Reservation{}, fmt.Errorf("invalid nights %q: %w", parts[4], err)
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(parts[5]), 64)
	if err != nil {
		return models.Reservation{}, fmt.Errorf("invalid amount %q: %w", parts[5], err)
	}

	active, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(parts[6])))
	if err != nil {
		return models.Reservation{}, fmt.Errorf("invalid active flag %q: %w", parts[6], err)
	}

	return models.Reservation{
		ID:           id,
		CustomerName: parts[1],
		RoomID:       roomID,
		Category:     category,
		Nights:       nights,
		Amount:       amount,
		Active:       active,
	}, nil
}
