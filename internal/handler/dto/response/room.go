package response

import (
	"time"

	"hospedagem-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID        uuid.UUID `json:"id"`
	Number    int       `json:"number"`
	Beds      int       `json:"beds"`
	Group     string    `json:"group"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RoomListResponse struct {
	ID        uuid.UUID `json:"id"`
	Number    int       `json:"number"`
	Beds      int       `json:"beds"`
	Group     string    `json:"group"`
	Available bool      `json:"available"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:        v.ID,
		Number:    v.Number,
		Beds:      v.Beds,
		Group:     v.Group,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromRoomListItem(v *queries.RoomListItem) *RoomListResponse {
	return &RoomListResponse{
		ID:        v.ID,
		Number:    v.Number,
		Beds:      v.Beds,
		Group:     v.Group,
		Available: v.Available,
	}
}
