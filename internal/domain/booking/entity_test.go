//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hospedagem-api/internal/domain/booking"
	"hospedagem-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stamp = time.Date(2026, 9, 10, 15, 4, 0, 0, time.UTC)

func newBooking(t *testing.T) *booking.Booking {
	t.Helper()
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	return b
}

func bookingInStatus(t *testing.T, status booking.Status) *booking.Booking {
	t.Helper()
	b := newBooking(t)
	switch status {
	case booking.StatusReserved:
	case booking.StatusActive:
		require.NoError(t, b.CheckIn(stamp))
	case booking.StatusFinalized:
		require.NoError(t, b.CheckIn(stamp))
		require.NoError(t, b.CheckOut(stamp.Add(48*time.Hour)))
	case booking.StatusCanceled:
		require.NoError(t, b.Cancel())
	}
	require.Equal(t, status, b.Status())
	return b
}

func TestNewBooking(t *testing.T) {
	b := newBooking(t)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, booking.StatusReserved, b.Status())
	assert.Nil(t, b.CheckedIn())
	assert.Nil(t, b.CheckedOut())
	assert.True(t, b.HoldsCapacity())
	assert.True(t, b.CanDelete())
}

func TestTransitionMatrix(t *testing.T) {
	tests := []struct {
		name  string
		from  booking.Status
		apply booking.Transition
		to    booking.Status
		errIs error
	}{
		{name: "reserved can check in", from: booking.StatusReserved, apply: booking.TransitionCheckIn, to: booking.StatusActive},
		{name: "reserved cannot check out", from: booking.StatusReserved, apply: booking.TransitionCheckOut, errIs: booking.ErrNotActive},
		{name: "reserved can cancel", from: booking.StatusReserved, apply: booking.TransitionCancel, to: booking.StatusCanceled},
		{name: "reserved cannot reinstate", from: booking.StatusReserved, apply: booking.TransitionReinstate, errIs: booking.ErrNotCanceled},

		{name: "active cannot check in again", from: booking.StatusActive, apply: booking.TransitionCheckIn, errIs: booking.ErrNotReserved},
		{name: "active can check out", from: booking.StatusActive, apply: booking.TransitionCheckOut, to: booking.StatusFinalized},
		{name: "active cannot cancel", from: booking.StatusActive, apply: booking.TransitionCancel, errIs: booking.ErrAlreadyCheckedIn},
		{name: "active cannot reinstate", from: booking.StatusActive, apply: booking.TransitionReinstate, errIs: booking.ErrNotCanceled},

		{name: "finalized cannot check in", from: booking.StatusFinalized, apply: booking.TransitionCheckIn, errIs: booking.ErrNotReserved},
		{name: "finalized cannot check out", from: booking.StatusFinalized, apply: booking.TransitionCheckOut, errIs: booking.ErrNotActive},
		{name: "finalized cannot cancel", from: booking.StatusFinalized, apply: booking.TransitionCancel, errIs: booking.ErrTerminal},
		{name: "finalized cannot reinstate", from: booking.StatusFinalized, apply: booking.TransitionReinstate, errIs: booking.ErrNotCanceled},

		{name: "canceled cannot check in", from: booking.StatusCanceled, apply: booking.TransitionCheckIn, errIs: booking.ErrNotReserved},
		{name: "canceled cannot check out", from: booking.StatusCanceled, apply: booking.TransitionCheckOut, errIs: booking.ErrNotActive},
		{name: "canceled cannot cancel again", from: booking.StatusCanceled, apply: booking.TransitionCancel, errIs: booking.ErrTerminal},
		{name: "canceled can reinstate", from: booking.StatusCanceled, apply: booking.TransitionReinstate, to: booking.StatusReserved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bookingInStatus(t, tt.from)
			err := b.Apply(tt.apply, stamp.Add(time.Hour))
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, tt.from, b.Status(), "failed transition must not move the booking")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, b.Status())
		})
	}
}

func TestCheckInStampsArrival(t *testing.T) {
	b := newBooking(t)
	require.NoError(t, b.CheckIn(stamp))

	require.NotNil(t, b.CheckedIn())
	assert.Equal(t, stamp, *b.CheckedIn())
	assert.Nil(t, b.CheckedOut())
}

func TestCheckOutStampsDeparture(t *testing.T) {
	b := bookingInStatus(t, booking.StatusActive)
	departure := stamp.Add(48 * time.Hour)
	require.NoError(t, b.CheckOut(departure))

	require.NotNil(t, b.CheckedOut())
	assert.Equal(t, departure, *b.CheckedOut())
	assert.Equal(t, booking.StatusFinalized, b.Status())
}

func TestReinstateClearsStamps(t *testing.T) {
	b := bookingInStatus(t, booking.StatusCanceled)
	require.NoError(t, b.Reinstate())

	assert.Equal(t, booking.StatusReserved, b.Status())
	assert.Nil(t, b.CheckedIn())
	assert.Nil(t, b.CheckedOut())
	assert.True(t, b.HoldsCapacity())
}

func TestUnknownTransition(t *testing.T) {
	b := newBooking(t)
	assert.ErrorIs(t, b.Apply(booking.Transition("upgrade"), stamp), booking.ErrUnknownTransition)
}

func TestCanDelete(t *testing.T) {
	assert.True(t, bookingInStatus(t, booking.StatusReserved).CanDelete())
	assert.True(t, bookingInStatus(t, booking.StatusCanceled).CanDelete())
	assert.False(t, bookingInStatus(t, booking.StatusActive).CanDelete())
	assert.False(t, bookingInStatus(t, booking.StatusFinalized).CanDelete())
}

func TestHoldsCapacity(t *testing.T) {
	assert.True(t, bookingInStatus(t, booking.StatusReserved).HoldsCapacity())
	assert.True(t, bookingInStatus(t, booking.StatusActive).HoldsCapacity())
	assert.False(t, bookingInStatus(t, booking.StatusFinalized).HoldsCapacity())
	assert.False(t, bookingInStatus(t, booking.StatusCanceled).HoldsCapacity())
}
