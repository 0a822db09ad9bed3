package booking

import (
	"errors"
	"time"
)

var (
	ErrRoomUnavailable  = errors.New("room is unavailable for the requested period")
	ErrInsufficientBeds = errors.New("not enough free beds for the requested period")
)

// CheckAdmissibility decides whether a candidate request fits the room given
// the existing ledger of bookings for that room. The ledger may contain
// terminal bookings; they are skipped. Rules:
//
//   - a whole-room candidate is admissible only if no live booking overlaps
//   - a per-bed candidate must fit within the beds left after summing the
//     demand of every overlapping live booking, where a whole-room booking
//     demands the full capacity
//
// The sum runs over the whole conflict list, not per night: two staggered
// bookings inside the candidate period both count in full.
//
// The decision is pure: callers are responsible for serializing it with the
// insert (the room row lock in the unit of work).
func CheckAdmissibility(capacity int, period StayPeriod, allocation BedAllocation, ledger []*Booking) error {
	if !allocation.Mode().IsValid() {
		return ErrInvalidMode
	}

	conflicts := 0
	occupied := 0
	for _, b := range ledger {
		if !b.HoldsCapacity() {
			continue
		}
		if !b.Period().Overlaps(period) {
			continue
		}
		conflicts++
		occupied += b.Allocation().BedsFor(capacity)
	}

	if allocation.Mode() == ModeWholeRoom {
		if conflicts > 0 {
			return ErrRoomUnavailable
		}
		return nil
	}

	if occupied+allocation.BedsFor(capacity) > capacity {
		return ErrInsufficientBeds
	}
	return nil
}

// OccupiedBeds returns how many beds the live bookings in the ledger hold on
// the given day, clamped to capacity.
func OccupiedBeds(capacity int, ledger []*Booking, day time.Time) int {
	occupied := 0
	for _, b := range ledger {
		if !b.HoldsCapacity() {
			continue
		}
		if !b.Period().Contains(day) {
			continue
		}
		occupied += b.Allocation().BedsFor(capacity)
	}
	if occupied > capacity {
		occupied = capacity
	}
	return occupied
}

// ComputeOccupancy classifies a room on the given day from its ledger.
func ComputeOccupancy(capacity int, ledger []*Booking, day time.Time) RoomOccupancy {
	return ClassifyOccupancy(OccupiedBeds(capacity, ledger, day), capacity)
}
