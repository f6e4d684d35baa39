package catalog

import (
	"testing"

	"hotelier/internal/domain"
	"hotelier/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRooms() []models.Room {
	return []models.Room{
		{ID: 101, Category: models.CategoryStandard, Rate: 1500},
		{ID: 102, Category: models.CategoryStandard, Rate: 1500},
		{ID: 201, Category: models.CategoryDeluxe, Rate: 2500},
		{ID: 301, Category: models.CategorySuite, Rate: 4000},
	}
}

func TestListAllKeepsRegistrationOrder(t *testing.T) {
	c := New(testRooms())

	rooms := c.ListAll()
	require.Len(t, rooms, 4)
	assert.Equal(t, []int{101, 102, 201, 301}, []int{rooms[0].ID, rooms[1].ID, rooms[2].ID, rooms[3].ID})
}

func TestFindByID(t *testing.T) {
	c := New(testRooms())

	room, err := c.FindByID(201)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryDeluxe, room.Category)
	assert.Equal(t, 2500.0, room.Rate)

	_, err = c.FindByID(999)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestListAvailableByCategory(t *testing.T) {
	c := New(testRooms())

	standard := c.ListAvailableByCategory(models.CategoryStandard)
	require.Len(t, standard, 2)

	require.NoError(t, c.SetOccupied(101, true))
	standard = c.ListAvailableByCategory(models.CategoryStandard)
	require.Len(t, standard, 1)
	assert.Equal(t, 102, standard[0].ID)

	// no suite left once booked; empty result, not an error
	require.NoError(t, c.SetOccupied(301, true))
	assert.Empty(t, c.ListAvailableByCategory(models.CategorySuite))
}

func TestSetOccupied(t *testing.T) {
	c := New(testRooms())

	require.NoError(t, c.SetOccupied(101, true))
	room, err := c.FindByID(101)
	require.NoError(t, err)
	assert.True(t, room.Occupied)

	require.NoError(t, c.SetOccupied(101, false))
	room, _ = c.FindByID(101)
	assert.False(t, room.Occupied)

	assert.ErrorIs(t, c.SetOccupied(999, true), domain.ErrRoomNotFound)
}

func TestListAllReturnsCopy(t *testing.T) {
	c := New(testRooms())

	rooms := c.ListAll()
	rooms[0].Occupied = true

	fresh, err := c.FindByID(rooms[0].ID)
	require.NoError(t, err)
	assert.False(t, fresh.Occupied)
}

func TestDuplicateRoomIDsIgnored(t *testing.T) {
	c := New([]models.Room{
		{ID: 101, Category: models.CategoryStandard, Rate: 1500},
		{ID: 101, Category: models.CategorySuite, Rate: 4000},
	})

	require.Len(t, c.ListAll(), 1)
	room, err := c.FindByID(101)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryStandard, room.Category)
}
