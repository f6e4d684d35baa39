// Package catalog implements the in-memory room inventory. The set of
// rooms is fixed at construction; only the occupied flag mutates, and
// only through SetOccupied. Occupancy is never persisted directly: it
// is replayed from active reservations on startup.
package catalog

import (
	"hotelier/internal/domain"
	"hotelier/internal/models"
)

type Catalog struct {
	rooms []models.Room // registration order
	index map[int]int   // room id -> position in rooms
}

func New(rooms []models.Room) *Catalog {
	c := &Catalog{
		rooms: make([]models.Room, 0, len(rooms)),
		index: make(map[int]int, len(rooms)),
	}
	for _, room := range rooms {
		if _, exists := c.index[room.ID]; exists {
			continue
		}
		room.Occupied = false
		c.index[room.ID] = len(c.rooms)
		c.rooms = append(c.rooms, room)
	}
	return c
}

// ListAll returns the rooms in registration order.
func (c *Catalog) ListAll() []models.Room {
	return append([]models.Room(nil), c.rooms...)
}

func (c *Catalog) FindByID(id int) (models.Room, error) {
	pos, ok := c.index[id]
	if !ok {
		return models.Room{}, domain.ErrRoomNotFound
	}
	return c.rooms[pos], nil
}

// ListAvailableByCategory returns free rooms of the given category in
// registration order. An empty result is not an error.
func (c *Catalog) ListAvailableByCategory(category models.RoomCategory) []models.Room {
	var result []models.Room
	for _, room := range c.rooms {
		if room.Category == category && !room.Occupied {
			result = append(result, room)
		}
	}
	return result
}

func (c *Catalog) SetOccupied(id int, occupied bool) error {
	pos, ok := c.index[id]
	if !ok {
		return domain.ErrRoomNotFound
	}
	c.rooms[pos].Occupied = occupied
	return nil
}
