package response

import (
	"time"

	"hospedagem-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID         uuid.UUID  `json:"id"`
	RoomID     uuid.UUID  `json:"room_id"`
	RoomNumber int        `json:"room_number"`
	ClientID   uuid.UUID  `json:"client_id"`
	ClientName string     `json:"client_name"`
	Mode       string     `json:"mode"`
	Beds       *int       `json:"beds,omitempty"`
	CheckIn    string     `json:"check_in"`
	CheckOut   string     `json:"check_out"`
	Status     string     `json:"status"`
	CheckedIn  *time.Time `json:"checked_in,omitempty"`
	CheckedOut *time.Time `json:"checked_out,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:         v.ID,
		RoomID:     v.RoomID,
		RoomNumber: v.RoomNumber,
		ClientID:   v.ClientID,
		ClientName: v.ClientName,
		Mode:       v.Mode,
		Beds:       v.Beds,
		CheckIn:    v.CheckIn.Format(dateLayout),
		CheckOut:   v.CheckOut.Format(dateLayout),
		Status:     v.Status,
		CheckedIn:  v.CheckedIn,
		CheckedOut: v.CheckedOut,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}
