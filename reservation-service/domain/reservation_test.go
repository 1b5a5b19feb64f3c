package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

func TestNewReservation(t *testing.T) {
	checkIn := models.NewDate(2026, time.September, 10)
	checkOut := models.NewDate(2026, time.September, 13)

	t.Run("valid reservation", func(t *testing.T) {
		r, err := NewReservation(models.ID(7), models.ID(42), checkIn, checkOut, ReservationStatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, ReservationStatusConfirmed, r.Status)
		assert.Equal(t, 3, r.Nights())
		assert.True(t, r.Active())
	})

	t.Run("same-day stay counts one night", func(t *testing.T) {
		r, err := NewReservation(models.ID(7), models.ID(42), checkIn, checkIn, ReservationStatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, 1, r.Nights())
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		_, err := NewReservation(models.ID(7), models.ID(42), checkOut, checkIn, ReservationStatusConfirmed)
		assert.ErrorIs(t, err, ErrInvalidStay)
	})

	t.Run("missing guest reference", func(t *testing.T) {
		_, err := NewReservation(models.ID(0), models.ID(42), checkIn, checkOut, ReservationStatusConfirmed)
		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("missing room reference", func(t *testing.T) {
		_, err := NewReservation(models.ID(7), models.ID(0), checkIn, checkOut, ReservationStatusConfirmed)
		assert.ErrorIs(t, err, ErrInvalidReference)
	})
}

func TestNewReservationStatus(t *testing.T) {
	for _, valid := range []string{"confirmed", "checked-in", "checked-out", "cancelled"} {
		status, err := NewReservationStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, ReservationStatus(valid), status)
	}

	for _, invalid := range []string{"", "tentative", "CONFIRMED", "checked_out"} {
		_, err := NewReservationStatus(invalid)
		assert.ErrorIs(t, err, ErrInvalidStatus, "status %q", invalid)
	}
}

func TestReservation_Active(t *testing.T) {
	r := &Reservation{Status: ReservationStatusCheckedIn}
	assert.True(t, r.Active())

	r.SetStatus(ReservationStatusCheckedOut)
	assert.False(t, r.Active())

	r.SetStatus(ReservationStatusCancelled)
	assert.False(t, r.Active())
}

func TestReservation_SetStay(t *testing.T) {
	r, err := NewReservation(models.ID(7), models.ID(42),
		models.NewDate(2026, time.September, 10), models.NewDate(2026, time.September, 13),
		ReservationStatusConfirmed)
	require.NoError(t, err)

	err = r.SetStay(models.NewDate(2026, time.October, 1), models.NewDate(2026, time.October, 5))
	require.NoError(t, err)
	assert.Equal(t, 4, r.Nights())

	err = r.SetStay(models.NewDate(2026, time.October, 5), models.NewDate(2026, time.October, 1))
	assert.ErrorIs(t, err, ErrInvalidStay)
	// The failed update must not corrupt the stay window.
	assert.Equal(t, 4, r.Nights())
}

func TestReconciliationError(t *testing.T) {
	cause := assert.AnError
	recErr := &ReconciliationError{
		ReservationID: models.ID(99),
		RoomID:        models.ID(42),
		Compensation:  "release_room",
		Cause:         cause,
	}

	assert.ErrorIs(t, recErr, cause)
	assert.Contains(t, recErr.Error(), "release_room")
}
