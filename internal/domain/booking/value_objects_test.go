//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hospedagem-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustPeriod(t *testing.T, checkIn, checkOut time.Time) booking.StayPeriod {
	t.Helper()
	p, err := booking.NewStayPeriod(checkIn, checkOut)
	require.NoError(t, err)
	return p
}

func TestNewStayPeriod(t *testing.T) {
	t.Run("normalizes to midnight UTC", func(t *testing.T) {
		loc := time.FixedZone("BRT", -3*60*60)
		in := time.Date(2026, 9, 10, 14, 30, 0, 0, loc)
		out := time.Date(2026, 9, 12, 9, 0, 0, 0, loc)

		p, err := booking.NewStayPeriod(in, out)
		require.NoError(t, err)

		assert.Equal(t, day(2026, 9, 10), p.CheckIn())
		assert.Equal(t, day(2026, 9, 12), p.CheckOut())
	})

	t.Run("rejects zero and negative length", func(t *testing.T) {
		_, err := booking.NewStayPeriod(day(2026, 9, 10), day(2026, 9, 10))
		assert.ErrorIs(t, err, booking.ErrInvalidPeriod)

		_, err = booking.NewStayPeriod(day(2026, 9, 12), day(2026, 9, 10))
		assert.ErrorIs(t, err, booking.ErrInvalidPeriod)
	})

	t.Run("same calendar day in different zones is still empty", func(t *testing.T) {
		loc := time.FixedZone("BRT", -3*60*60)
		in := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		out := time.Date(2026, 9, 10, 23, 0, 0, 0, loc)

		_, err := booking.NewStayPeriod(in, out)
		assert.Error(t, err)
	})
}

func TestStayPeriodOverlaps(t *testing.T) {
	base := mustPeriod(t, day(2026, 9, 10), day(2026, 9, 15))

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{"identical period", day(2026, 9, 10), day(2026, 9, 15), true},
		{"contained inside", day(2026, 9, 11), day(2026, 9, 13), true},
		{"overlaps the start", day(2026, 9, 8), day(2026, 9, 11), true},
		{"overlaps the end", day(2026, 9, 14), day(2026, 9, 17), true},
		{"covers entirely", day(2026, 9, 1), day(2026, 9, 30), true},
		{"back-to-back before", day(2026, 9, 5), day(2026, 9, 10), false},
		{"back-to-back after", day(2026, 9, 15), day(2026, 9, 20), false},
		{"well before", day(2026, 9, 1), day(2026, 9, 5), false},
		{"well after", day(2026, 9, 20), day(2026, 9, 25), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := mustPeriod(t, tt.checkIn, tt.checkOut)
			assert.Equal(t, tt.want, base.Overlaps(other))
			assert.Equal(t, tt.want, other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestStayPeriodContains(t *testing.T) {
	p := mustPeriod(t, day(2026, 9, 10), day(2026, 9, 12))

	assert.True(t, p.Contains(day(2026, 9, 10)))
	assert.True(t, p.Contains(day(2026, 9, 11)))
	assert.False(t, p.Contains(day(2026, 9, 12)), "check-out day is not occupied")
	assert.False(t, p.Contains(day(2026, 9, 9)))

	// time-of-day on the queried day is irrelevant
	assert.True(t, p.Contains(time.Date(2026, 9, 11, 18, 45, 0, 0, time.UTC)))
}

func TestStayPeriodNights(t *testing.T) {
	assert.Equal(t, 1, mustPeriod(t, day(2026, 9, 10), day(2026, 9, 11)).Nights())
	assert.Equal(t, 5, mustPeriod(t, day(2026, 9, 10), day(2026, 9, 15)).Nights())
}

func TestNewBedAllocation(t *testing.T) {
	two := 2
	zero := 0
	negative := -1

	tests := []struct {
		name  string
		mode  booking.Mode
		beds  *int
		errIs error
	}{
		{name: "whole room without count", mode: booking.ModeWholeRoom},
		{name: "whole room with count", mode: booking.ModeWholeRoom, beds: &two, errIs: booking.ErrBedsOnWholeRoom},
		{name: "per bed with count", mode: booking.ModePerBed, beds: &two},
		{name: "per bed without count", mode: booking.ModePerBed, errIs: booking.ErrMissingBedCount},
		{name: "per bed zero count", mode: booking.ModePerBed, beds: &zero, errIs: booking.ErrNonPositiveBeds},
		{name: "per bed negative count", mode: booking.ModePerBed, beds: &negative, errIs: booking.ErrNonPositiveBeds},
		{name: "unknown mode", mode: booking.Mode("suite"), errIs: booking.ErrInvalidMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := booking.NewBedAllocation(tt.mode, tt.beds)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mode, a.Mode())
		})
	}
}

func TestBedAllocationBedsFor(t *testing.T) {
	whole := booking.WholeRoom()
	assert.Equal(t, 4, whole.BedsFor(4), "whole room consumes the full capacity")
	assert.Equal(t, 6, whole.BedsFor(6), "whole room follows capacity changes")
	assert.Equal(t, 0, whole.Beds())

	perBed, err := booking.PerBed(2)
	require.NoError(t, err)
	assert.Equal(t, 2, perBed.BedsFor(4))
	assert.Equal(t, 2, perBed.BedsFor(6), "per-bed count is fixed regardless of capacity")
	assert.Equal(t, 2, perBed.Beds())
}
