package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidPeriod   = errors.New("check-out must be after check-in")
	ErrNonPositiveBeds = errors.New("bed count must be positive")
	ErrBedsOnWholeRoom = errors.New("whole-room booking does not carry a bed count")
	ErrMissingBedCount = errors.New("per-bed booking requires a bed count")
)

// StayPeriod is a half-open [CheckIn, CheckOut) span of whole days in UTC.
// The check-out day is not occupied, so back-to-back stays on the same room
// never collide.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	in := midnight(checkIn)
	out := midnight(checkOut)
	if !out.After(in) {
		return StayPeriod{}, ErrInvalidPeriod
	}
	return StayPeriod{checkIn: in, checkOut: out}, nil
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

// Overlaps reports whether the two half-open spans share at least one night.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && other.checkIn.Before(p.checkOut)
}

// Contains reports whether the given day falls inside the stay. The check-out
// day itself is outside.
func (p StayPeriod) Contains(day time.Time) bool {
	d := midnight(day)
	return !d.Before(p.checkIn) && d.Before(p.checkOut)
}

func (p StayPeriod) Nights() int {
	return int(p.checkOut.Sub(p.checkIn).Hours() / 24)
}

func midnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// BedAllocation is what a booking claims from a room: either the whole room
// or a specific number of beds. A whole-room allocation carries no bed count;
// the beds it consumes depend on the room's capacity at evaluation time.
type BedAllocation struct {
	mode Mode
	beds int
}

func WholeRoom() BedAllocation {
	return BedAllocation{mode: ModeWholeRoom}
}

func PerBed(beds int) (BedAllocation, error) {
	if beds <= 0 {
		return BedAllocation{}, ErrNonPositiveBeds
	}
	return BedAllocation{mode: ModePerBed, beds: beds}, nil
}

// NewBedAllocation builds an allocation from wire-level values: a per-bed
// request must carry a count and a whole-room request must not.
func NewBedAllocation(mode Mode, beds *int) (BedAllocation, error) {
	switch mode {
	case ModeWholeRoom:
		if beds != nil {
			return BedAllocation{}, ErrBedsOnWholeRoom
		}
		return WholeRoom(), nil
	case ModePerBed:
		if beds == nil {
			return BedAllocation{}, ErrMissingBedCount
		}
		return PerBed(*beds)
	default:
		return BedAllocation{}, ErrInvalidMode
	}
}

func (a BedAllocation) Mode() Mode {
	return a.mode
}

// Beds returns the requested bed count for per-bed allocations, 0 otherwise.
func (a BedAllocation) Beds() int {
	if a.mode == ModePerBed {
		return a.beds
	}
	return 0
}

// BedsFor resolves how many beds the allocation consumes on a room of the
// given capacity.
func (a BedAllocation) BedsFor(capacity int) int {
	if a.mode == ModeWholeRoom {
		return capacity
	}
	return a.beds
}
