package request

import (
	"time"

	"hospedagem-api/internal/domain/booking"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	RoomID   uuid.UUID `json:"room_id" binding:"required"`
	ClientID uuid.UUID `json:"client_id" binding:"required"`
	CheckIn  string    `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut string    `json:"check_out" binding:"required,datetime=2006-01-02"`
	Mode     string    `json:"mode" binding:"required,oneof=whole_room per_bed"`
	Beds     *int      `json:"beds,omitempty" binding:"omitempty,min=1"`
}

func (r CreateBookingRequest) ToDomain() (booking.StayPeriod, booking.BedAllocation, error) {
	checkIn, err := time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return booking.StayPeriod{}, booking.BedAllocation{}, booking.ErrInvalidPeriod
	}
	checkOut, err := time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return booking.StayPeriod{}, booking.BedAllocation{}, booking.ErrInvalidPeriod
	}

	period, err := booking.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return booking.StayPeriod{}, booking.BedAllocation{}, err
	}

	mode, err := booking.NewMode(r.Mode)
	if err != nil {
		return booking.StayPeriod{}, booking.BedAllocation{}, err
	}

	allocation, err := booking.NewBedAllocation(mode, r.Beds)
	if err != nil {
		return booking.StayPeriod{}, booking.BedAllocation{}, err
	}

	return period, allocation, nil
}
