//go:build unit || e2e

package builder

import (
	"time"

	"hospedagem-api/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	RoomID   uuid.UUID
	ClientID uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
	Mode     booking.Mode
	Beds     *int
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		RoomID:   uuid.New(),
		ClientID: uuid.New(),
		CheckIn:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Mode:     booking.ModeWholeRoom,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithRoomID(id uuid.UUID) *BookingBuilder {
	b.RoomID = id
	return b
}

func (b *BookingBuilder) WithClientID(id uuid.UUID) *BookingBuilder {
	b.ClientID = id
	return b
}

func (b *BookingBuilder) WithPeriod(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithBeds(beds int) *BookingBuilder {
	b.Mode = booking.ModePerBed
	b.Beds = &beds
	return b
}

func (b *BookingBuilder) WithWholeRoom() *BookingBuilder {
	b.Mode = booking.ModeWholeRoom
	b.Beds = nil
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	period, err := booking.NewStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}

	allocation, err := booking.NewBedAllocation(b.Mode, b.Beds)
	if err != nil {
		return nil, err
	}

	return booking.NewBooking(b.RoomID, b.ClientID, period, allocation), nil
}
