package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCheckedIn = errors.New("booking is already checked in")
	ErrNotCheckedIn     = errors.New("booking has not been checked in")
	ErrNotReserved      = errors.New("booking is not in reserved state")
	ErrNotActive        = errors.New("booking is not in active state")
	ErrNotCanceled      = errors.New("booking is not canceled")
	ErrTerminal         = errors.New("booking is in a terminal state")
	ErrDeleteNotAllowed = errors.New("only reserved or canceled bookings can be deleted")
	ErrPeriodInPast     = errors.New("check-in date is in the past")
)

// Booking ties a client to a room for a stay period with a bed allocation.
// Lifecycle: reserved -> active -> finalized, with reserved <-> canceled as
// the only detour. checkedIn/checkedOut are recorded moments, distinct from
// the planned period.
type Booking struct {
	id         uuid.UUID
	roomID     uuid.UUID
	clientID   uuid.UUID
	period     StayPeriod
	allocation BedAllocation
	status     Status
	checkedIn  *time.Time
	checkedOut *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBooking(roomID, clientID uuid.UUID, period StayPeriod, allocation BedAllocation) *Booking {
	return &Booking{
		id:         uuid.New(),
		roomID:     roomID,
		clientID:   clientID,
		period:     period,
		allocation: allocation,
		status:     StatusReserved,
	}
}

func ReconstructBooking(
	id, roomID, clientID uuid.UUID,
	period StayPeriod,
	allocation BedAllocation,
	status Status,
	checkedIn, checkedOut *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		roomID:     roomID,
		clientID:   clientID,
		period:     period,
		allocation: allocation,
		status:     status,
		checkedIn:  checkedIn,
		checkedOut: checkedOut,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// CheckIn marks arrival. Only a reserved booking can be checked in, and the
// transition moves it to active.
func (b *Booking) CheckIn(at time.Time) error {
	if b.status != StatusReserved {
		return ErrNotReserved
	}
	if b.checkedIn != nil {
		return ErrAlreadyCheckedIn
	}
	t := at.UTC()
	b.checkedIn = &t
	b.status = StatusActive
	return nil
}

// CheckOut marks departure and finalizes the booking. It requires a prior
// check-in, so a reserved booking can never jump straight to finalized.
func (b *Booking) CheckOut(at time.Time) error {
	if b.status != StatusActive {
		return ErrNotActive
	}
	if b.checkedIn == nil {
		return ErrNotCheckedIn
	}
	t := at.UTC()
	b.checkedOut = &t
	b.status = StatusFinalized
	return nil
}

// Cancel is only valid before arrival. An active stay must be checked out,
// and terminal bookings stay terminal.
func (b *Booking) Cancel() error {
	if b.status.IsTerminal() {
		return ErrTerminal
	}
	if b.status != StatusReserved {
		return ErrAlreadyCheckedIn
	}
	b.status = StatusCanceled
	return nil
}

// Reinstate returns a canceled booking to reserved. The caller must re-run
// admissibility first: cancellation released the capacity and someone else
// may hold it now.
func (b *Booking) Reinstate() error {
	if b.status != StatusCanceled {
		return ErrNotCanceled
	}
	b.status = StatusReserved
	b.checkedIn = nil
	b.checkedOut = nil
	return nil
}

// Transition names a lifecycle action for dispatch from wire-level input.
type Transition string

const (
	TransitionCheckIn   Transition = "checkin"
	TransitionCheckOut  Transition = "checkout"
	TransitionCancel    Transition = "cancel"
	TransitionReinstate Transition = "reinstate"
)

var ErrUnknownTransition = errors.New("unknown transition")

func (b *Booking) Apply(t Transition, at time.Time) error {
	switch t {
	case TransitionCheckIn:
		return b.CheckIn(at)
	case TransitionCheckOut:
		return b.CheckOut(at)
	case TransitionCancel:
		return b.Cancel()
	case TransitionReinstate:
		return b.Reinstate()
	default:
		return ErrUnknownTransition
	}
}

// CanDelete reports whether hard deletion is allowed. Active and finalized
// bookings are part of the occupancy history and must be kept.
func (b *Booking) CanDelete() bool {
	return b.status == StatusReserved || b.status == StatusCanceled
}

// HoldsCapacity reports whether the booking counts against room capacity.
func (b *Booking) HoldsCapacity() bool {
	return !b.status.IsTerminal()
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) RoomID() uuid.UUID         { return b.roomID }
func (b *Booking) ClientID() uuid.UUID       { return b.clientID }
func (b *Booking) Period() StayPeriod        { return b.period }
func (b *Booking) Allocation() BedAllocation { return b.allocation }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) CheckedIn() *time.Time     { return b.checkedIn }
func (b *Booking) CheckedOut() *time.Time    { return b.checkedOut }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
