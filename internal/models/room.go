package models

import (
	"fmt"
	"strings"
)

// RoomCategory is the persisted token for a room class.
type RoomCategory string

const (
	CategoryStandard RoomCategory = "STANDARD"
	CategoryDeluxe   RoomCategory = "DELUXE"
	CategorySuite    RoomCategory = "SUITE"
)

var categoryLabels = map[RoomCategory]string{
	CategoryStandard: "Standard",
	CategoryDeluxe:   "Deluxe",
	CategorySuite:    "Suite",
}

// Label returns the human-readable name of the category.
func (c RoomCategory) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Valid reports whether c is one of the known categories.
func (c RoomCategory) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory converts a stored token into a RoomCategory.
func ParseCategory(token string) (RoomCategory, error) {
	c := RoomCategory(strings.ToUpper(strings.TrimSpace(token)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown room category %q", token)
	}
	return c, nil
}

// CategoryFromChoice maps a menu selection (1..3) to a category.
func CategoryFromChoice(choice int) (RoomCategory, bool) {
	switch choice {
	case 1:
		return CategoryStandard, true
	case 2:
		return CategoryDeluxe, true
	case 3:
		return CategorySuite, true
	default:
		return "", false
	}
}

type Room struct {
	ID       int          `yaml:"id" json:"id"`
	Category RoomCategory `yaml:"category" json:"category"`
	Rate     float64      `yaml:"rate" json:"rate"`
	Occupied bool         `yaml:"-" json:"occupied"`
}

func (r Room) String() string {
	status := "Available"
	if r.Occupied {
		status = "Booked"
	}
	return fmt.Sprintf("Room %d (%s) - Rs. %.2f per night - %s", r.ID, r.Category.Label(), r.Rate, status)
}
