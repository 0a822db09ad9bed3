//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hospedagem-api/internal/domain/booking"
	"hospedagem-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerBooking(t *testing.T, checkIn, checkOut time.Time, beds *int, status booking.Status) *booking.Booking {
	t.Helper()

	b := builder.NewBookingBuilder().WithPeriod(checkIn, checkOut)
	if beds != nil {
		b.WithBeds(*beds)
	}
	entry, err := b.BuildDomain()
	require.NoError(t, err)

	switch status {
	case booking.StatusActive:
		require.NoError(t, entry.CheckIn(checkIn))
	case booking.StatusFinalized:
		require.NoError(t, entry.CheckIn(checkIn))
		require.NoError(t, entry.CheckOut(checkOut))
	case booking.StatusCanceled:
		require.NoError(t, entry.Cancel())
	}
	return entry
}

func intp(n int) *int { return &n }

func TestCheckAdmissibilityWholeRoom(t *testing.T) {
	period := mustPeriod(t, day(2026, 9, 10), day(2026, 9, 15))

	t.Run("empty ledger admits", func(t *testing.T) {
		err := booking.CheckAdmissibility(4, period, booking.WholeRoom(), nil)
		assert.NoError(t, err)
	})

	t.Run("rejected by overlapping whole-room booking", func(t *testing.T) {
		ledger := []*booking.Booking{
			ledgerBooking(t, day(2026, 9, 12), day(2026, 9, 14), nil, booking.StatusReserved),
		}
		err := booking.CheckAdmissibility(4, period, booking.WholeRoom(), ledger)
		assert.ErrorIs(t, err, booking.ErrRoomUnavailable)
	})

	t.Run("rejected by a single overlapping bed", func(t *testing.T) {
		ledger := []*booking.Booking{
			ledgerBooking(t, day(2026, 9, 14), day(2026, 9, 16), intp(1), booking.StatusActive),
		}
		err := booking.CheckAdmissibility(4, period, booking.WholeRoom(), ledger)
		assert.ErrorIs(t, err, booking.ErrRoomUnavailable)
	})

	t.Run("back-to-back stays do not collide", func(t *testing.T) {
		ledger := []*booking.Booking{
			ledgerBooking(t, day(2026, 9, 5), day(2026, 9, 10), nil, booking.StatusReserved),
			ledgerBooking(t, day(2026, 9, 15), day(2026, 9, 20), nil, booking.StatusReserved),
		}
		err := booking.CheckAdmissibility(4, period, booking.WholeRoom(), ledger)
		assert.NoError(t, err)
	})

	t.Run("terminal bookings release capacity", func(t *testing.T) {
		ledger := []*booking.Booking{
			ledgerBooking(t, day(2026, 9, 10), day(2026, 9, 15), nil, booking.StatusCanceled),
			ledgerBooking(t, day(2026, 9, 8), day(2026, 9, 12), intp(4), booking.StatusFinalized),
		}
		err := booking.CheckAdmissibility(4, period, booking.WholeRoom(), ledger)
		assert.NoError(t, err)
	})
}

func TestCheckAdmissibilityPerBed(t *testing.T) {
	period := mustPeriod(t, day(2026, 9, 10), day(2026, 9, 15))

	perBed := func(t *testing.T, n int) booking.BedAllocation {
		t.Helper()
		a, err := booking.PerBed(n)
		require.NoError(t, err)
		return a
	}

	t.Run("rejected by overlapping whole-room booking", func(t *testing.T) {
		// a whole-room conflict demands the full capacity, so no bed is left
		ledger := []*booking.Booking{
			ledgerBooking(t, day(2026, 9, 14), day(2026, 9, 16), nil, booking.StatusReserved),
		}
		err := booking.CheckAdmissibility(4, period, perBed(t, 1), ledger)
		assert.ErrorIs(t, err, booking.ErrInsufficientBeds)
	})

	t.Run("fits alongside existing beds", func(t *testing.T) {
		ledger := []*booking.Booking{
			ledgerBooking(t, day(2026, 9, 10), day(2026, 9, 15), intp(2), booking.StatusReserved),
		}
		err := booking.CheckAdmissibility(4, period, perBed(t, 2), ledger)
		assert.NoError(t, err)
	})

	t.Run("exact capacity boundary admits", func(t *testing.T) {
		ledger := []*booking.Booking{
			ledgerBooking(t, day(2026, 9, 10), day(2026, 9, 15), intp(3), booking.StatusReserved),
		}
		assert.NoError(t, booking.CheckAdmissibility(4, period, perBed(t, 1), ledger))
		assert.ErrorIs(t, booking.CheckAdmissibility(4, period, perBed(t, 2), ledger), booking.ErrInsufficientBeds)
	})

	t.Run("conflicting demand sums over the whole conflict list", func(t *testing.T) {
		// two staggered bookings of 2 beds each never share a night, but a
		// candidate spanning both sums against 2+2, not against either alone
		ledger := []*booking.Booking{
			ledgerBooking(t, day(2026, 9, 10), day(2026, 9, 11), intp(2), booking.StatusReserved),
			ledgerBooking(t, day(2026, 9, 11), day(2026, 9, 12), intp(2), booking.StatusReserved),
		}
		spanning := mustPeriod(t, day(2026, 9, 10), day(2026, 9, 12))
		assert.ErrorIs(t, booking.CheckAdmissibility(3, spanning, perBed(t, 1), ledger), booking.ErrInsufficientBeds)

		// a candidate overlapping only one of them fits
		single := mustPeriod(t, day(2026, 9, 11), day(2026, 9, 12))
		assert.NoError(t, booking.CheckAdmissibility(3, single, perBed(t, 1), ledger))
	})

	t.Run("admissibility is monotone in requested beds", func(t *testing.T) {
		ledger := []*booking.Booking{
			ledgerBooking(t, day(2026, 9, 10), day(2026, 9, 15), intp(2), booking.StatusReserved),
		}
		admitted := -1
		for n := 1; n <= 4; n++ {
			err := booking.CheckAdmissibility(4, period, perBed(t, n), ledger)
			if err == nil {
				admitted = n
				continue
			}
			assert.Greater(t, n, admitted, "a rejection must never precede an admission")
		}
		assert.Equal(t, 2, admitted)
	})

	t.Run("invalid mode is rejected before the ledger scan", func(t *testing.T) {
		var zero booking.BedAllocation
		err := booking.CheckAdmissibility(4, period, zero, nil)
		assert.ErrorIs(t, err, booking.ErrInvalidMode)
	})
}

func TestOccupiedBeds(t *testing.T) {
	ledger := []*booking.Booking{
		ledgerBooking(t, day(2026, 9, 10), day(2026, 9, 15), intp(2), booking.StatusReserved),
		ledgerBooking(t, day(2026, 9, 12), day(2026, 9, 14), intp(3), booking.StatusActive),
		ledgerBooking(t, day(2026, 9, 10), day(2026, 9, 15), intp(4), booking.StatusCanceled),
	}

	assert.Equal(t, 2, booking.OccupiedBeds(4, ledger, day(2026, 9, 10)))
	assert.Equal(t, 4, booking.OccupiedBeds(4, ledger, day(2026, 9, 12)), "sum is clamped to capacity")
	assert.Equal(t, 0, booking.OccupiedBeds(4, ledger, day(2026, 9, 15)), "check-out day is free")
}

func TestComputeOccupancy(t *testing.T) {
	tests := []struct {
		name   string
		ledger []*booking.Booking
		day    time.Time
		want   booking.RoomOccupancy
	}{
		{
			name: "no bookings",
			day:  day(2026, 9, 10),
			want: booking.OccupancyFree,
		},
		{
			name: "partially occupied",
			ledger: []*booking.Booking{
				ledgerBooking(t, day(2026, 9, 10), day(2026, 9, 12), intp(2), booking.StatusReserved),
			},
			day:  day(2026, 9, 10),
			want: booking.OccupancyPartially,
		},
		{
			name: "whole-room booking fills the room",
			ledger: []*booking.Booking{
				ledgerBooking(t, day(2026, 9, 10), day(2026, 9, 12), nil, booking.StatusActive),
			},
			day:  day(2026, 9, 11),
			want: booking.OccupancyFully,
		},
		{
			name: "beds summing to capacity fill the room",
			ledger: []*booking.Booking{
				ledgerBooking(t, day(2026, 9, 10), day(2026, 9, 12), intp(2), booking.StatusReserved),
				ledgerBooking(t, day(2026, 9, 10), day(2026, 9, 12), intp(2), booking.StatusReserved),
			},
			day:  day(2026, 9, 10),
			want: booking.OccupancyFully,
		},
		{
			name: "canceled booking does not occupy",
			ledger: []*booking.Booking{
				ledgerBooking(t, day(2026, 9, 10), day(2026, 9, 12), nil, booking.StatusCanceled),
			},
			day:  day(2026, 9, 10),
			want: booking.OccupancyFree,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.ComputeOccupancy(4, tt.ledger, tt.day))
		})
	}
}

func TestClassifyOccupancy(t *testing.T) {
	assert.Equal(t, booking.OccupancyFree, booking.ClassifyOccupancy(0, 4))
	assert.Equal(t, booking.OccupancyPartially, booking.ClassifyOccupancy(1, 4))
	assert.Equal(t, booking.OccupancyPartially, booking.ClassifyOccupancy(3, 4))
	assert.Equal(t, booking.OccupancyFully, booking.ClassifyOccupancy(4, 4))
	assert.Equal(t, booking.OccupancyFully, booking.ClassifyOccupancy(7, 4), "over-capacity input clamps to fully occupied")
}
