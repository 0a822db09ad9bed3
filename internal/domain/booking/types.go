package booking

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid booking status")
	ErrInvalidMode   = errors.New("invalid booking mode")
)

// Status is the lifecycle state. Finalized and Canceled are terminal: the
// availability engine ignores bookings in either.
type Status string

const (
	StatusReserved  Status = "reserved"
	StatusActive    Status = "active"
	StatusFinalized Status = "finalized"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusActive, StatusFinalized, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the booking holds no capacity anymore.
func (s Status) IsTerminal() bool {
	return s == StatusFinalized || s == StatusCanceled
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Mode distinguishes exclusive whole-room bookings from per-bed ones that
// share the room with other per-bed bookings.
type Mode string

const (
	ModeWholeRoom Mode = "whole_room"
	ModePerBed    Mode = "per_bed"
)

func (m Mode) String() string {
	return string(m)
}

func (m Mode) IsValid() bool {
	return m == ModeWholeRoom || m == ModePerBed
}

func NewMode(s string) (Mode, error) {
	mode := Mode(s)
	if !mode.IsValid() {
		return "", ErrInvalidMode
	}
	return mode, nil
}

// RoomOccupancy classifies a room for a date, derived from the occupied bed
// count against capacity.
type RoomOccupancy string

const (
	OccupancyFree      RoomOccupancy = "free"
	OccupancyPartially RoomOccupancy = "partially_occupied"
	OccupancyFully     RoomOccupancy = "fully_occupied"
)

func (o RoomOccupancy) String() string {
	return string(o)
}

// ClassifyOccupancy maps occupied beds to a room classification. Occupied is
// clamped to capacity, so a whole-room booking on a 4-bed room reads as fully
// occupied rather than overbooked.
func ClassifyOccupancy(occupied, capacity int) RoomOccupancy {
	switch {
	case occupied <= 0:
		return OccupancyFree
	case occupied >= capacity:
		return OccupancyFully
	default:
		return OccupancyPartially
	}
}
