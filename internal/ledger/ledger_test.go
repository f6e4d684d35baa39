package ledger

import (
	"testing"

	"hotelier/internal/domain"
	"hotelier/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reservation(id int, active bool) models.Reservation {
	return models.Reservation{
		ID:           id,
		CustomerName: "Guest",
		RoomID:       101,
		Category:     models.CategoryStandard,
		Nights:       2,
		Amount:       3000,
		Active:       active,
	}
}

func TestNextIDStartsAtBase(t *testing.T) {
	l := New()

	assert.Equal(t, 1000, l.NextID())
	assert.Equal(t, 1001, l.NextID())
	assert.Equal(t, 1002, l.NextID())
}

func TestAddAndFindByID(t *testing.T) {
	l := New()
	l.Add(reservation(1000, true))
	l.Add(reservation(1001, true))

	rec, err := l.FindByID(1001)
	require.NoError(t, err)
	assert.Equal(t, 1001, rec.ID)

	_, err = l.FindByID(2000)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestAllKeepsInsertionOrderAndCancelled(t *testing.T) {
	l := New()
	l.Add(reservation(1000, true))
	l.Add(reservation(1001, false))
	l.Add(reservation(1002, true))

	all := l.All()
	require.Len(t, all, 3)
	assert.Equal(t, 1000, all[0].ID)
	assert.Equal(t, 1001, all[1].ID)
	assert.False(t, all[1].Active)
	assert.Equal(t, 1002, all[2].ID)
}

func TestCancelIsTerminal(t *testing.T) {
	l := New()
	l.Add(reservation(1000, true))

	rec, err := l.Cancel(1000)
	require.NoError(t, err)
	assert.False(t, rec.Active)

	// second cancel is a failure, not a silent no-op
	_, err = l.Cancel(1000)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)

	rec, err = l.FindByID(1000)
	require.NoError(t, err)
	assert.False(t, rec.Active)
}

func TestCancelUnknownID(t *testing.T) {
	l := New()
	_, err := l.Cancel(1234)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestRestoreRecomputesNextID(t *testing.T) {
	l := New()
	l.Restore([]models.Reservation{
		reservation(1000, true),
		reservation(1005, false),
		reservation(1002, true),
	})

	assert.Equal(t, 1006, l.NextID())
	assert.Len(t, l.All(), 3)
}

func TestRestoreEmptyKeepsBase(t *testing.T) {
	l := New()
	l.Restore(nil)
	assert.Equal(t, 1000, l.NextID())
}

func TestRestoreNeverLowersCounterBelowBase(t *testing.T) {
	l := New()
	l.Restore([]models.Reservation{reservation(7, false)})
	assert.Equal(t, 1000, l.NextID())
}
