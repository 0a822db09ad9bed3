//go:build unit || e2e

package builder

import (
	"hospedagem-api/internal/domain/room"
)

type RoomBuilder struct {
	Number int
	Beds   int
	Group  string
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		Number: 101,
		Beds:   4,
		Group:  "terreo",
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) WithNumber(number int) *RoomBuilder {
	b.Number = number
	return b
}

func (b *RoomBuilder) WithBeds(beds int) *RoomBuilder {
	b.Beds = beds
	return b
}

func (b *RoomBuilder) WithGroup(group string) *RoomBuilder {
	b.Group = group
	return b
}

func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	return room.NewRoom(b.Number, b.Beds, b.Group)
}
